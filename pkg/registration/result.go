package registration

import (
	"sort"

	"github.com/dmitrymomot/regform/pkg/validator"
)

// Result is the verdict for one field. Error is empty iff Valid is true.
type Result struct {
	Valid          bool              `json:"isValid"`
	Error          string            `json:"error"`
	Kind           Kind              `json:"kind,omitempty"`
	Failure        Failure           `json:"failure,omitempty"`
	TranslationKey string            `json:"translationKey,omitempty"`
	Params         map[string]string `json:"params,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

func failed(field Field, ve validator.ValidationError) Result {
	failure := Failure(ve.Code)
	var params map[string]string
	if len(ve.TranslationValues) > 0 {
		params = make(map[string]string, len(ve.TranslationValues))
		for k, v := range ve.TranslationValues {
			if s, ok := v.(string); ok {
				params[k] = s
			}
		}
	}
	return Result{
		Error:          ve.Message,
		Kind:           failure.Kind(),
		Failure:        failure,
		TranslationKey: translationKey(field, failure),
		Params:         params,
	}
}

// FormResult is the verdict for a whole record. Errors contains only the
// fields that failed and is never nil.
type FormResult struct {
	Valid   bool             `json:"isValid"`
	Errors  map[Field]string `json:"errors"`
	Results map[Field]Result `json:"-"`
}

// Err converts a failed form into validator.ValidationErrors ordered by the
// form's display order. It returns nil when the form is valid.
func (fr FormResult) Err() error {
	if fr.Valid {
		return nil
	}

	fields := make([]Field, 0, len(fr.Errors))
	for field := range fr.Errors {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		oi, oj := fieldOrder(fields[i]), fieldOrder(fields[j])
		if oi != oj {
			return oi < oj
		}
		return fields[i] < fields[j]
	})

	rules := make([]validator.Rule, 0, len(fields))
	for _, field := range fields {
		res := fr.Results[field]
		values := make(map[string]any, len(res.Params))
		for k, v := range res.Params {
			values[k] = v
		}
		rules = append(rules, validator.Rule{
			Check: func() bool { return res.Valid },
			Error: validator.ValidationError{
				Field:             string(field),
				Code:              string(res.Failure),
				Message:           fr.Errors[field],
				TranslationKey:    res.TranslationKey,
				TranslationValues: values,
			},
		})
	}

	if err := validator.Apply(rules...); err != nil {
		return err
	}
	return validator.ValidationErrors{}
}
