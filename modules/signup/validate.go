package signup

import (
	"context"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/registration"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// ValidateFieldRequest checks one value. Record carries the other fields
// used by cross-field rules and may be omitted.
type ValidateFieldRequest struct {
	Field  string              `path:"field" json:"-"`
	Value  registration.Value  `json:"value"`
	Record registration.Record `json:"record,omitempty"`
}

// FormVerdict is the response of POST /validate.
type FormVerdict struct {
	registration.FormResult
	CanSubmit bool `json:"canSubmit"`
}

type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the advisory strength of a password.
type StrengthResponse struct {
	Strength validator.PasswordStrength `json:"strength"`
	Score    int                        `json:"score"`
	MaxScore int                        `json:"maxScore"`
	Label    string                     `json:"label"`
}

func (s *Service) validateField(ctx handler.Context, req ValidateFieldRequest) handler.Response {
	field := registration.Field(req.Field)
	if !field.Known() {
		return s.fail(ctx, handler.ErrNotFound, nil)
	}

	record := registration.Normalize(req.Record)
	value := registration.Normalize(registration.Record{field: string(req.Value)})[field]
	record[field] = value

	return handler.JSON(s.localize(ctx, s.validator.ValidateField(field, value, record)))
}

func (s *Service) validateForm(ctx handler.Context, req registration.Record) handler.Response {
	record := registration.Normalize(req)
	result := s.localizeForm(ctx, s.validator.ValidateForm(record))

	return handler.JSON(FormVerdict{
		FormResult: result,
		CanSubmit:  s.validator.CanSubmit(record),
	})
}

func (s *Service) strength(ctx handler.Context, req StrengthRequest) handler.Response {
	strength := s.validator.Strength(req.Password)
	return handler.JSON(StrengthResponse{
		Strength: strength,
		Score:    s.validator.Score(req.Password),
		MaxScore: validator.MaxPasswordScore,
		Label:    s.translate(ctx, "password.strength."+string(strength), string(strength), nil),
	})
}

func (s *Service) localize(ctx context.Context, res registration.Result) registration.Result {
	if res.Valid || res.TranslationKey == "" {
		return res
	}
	res.Error = s.translate(ctx, res.TranslationKey, res.Error, res.Params)
	return res
}

func (s *Service) localizeForm(ctx context.Context, fr registration.FormResult) registration.FormResult {
	for field, res := range fr.Results {
		res = s.localize(ctx, res)
		fr.Results[field] = res
		fr.Errors[field] = res.Error
	}
	return fr
}
