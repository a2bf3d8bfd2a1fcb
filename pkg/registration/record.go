package registration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrymomot/regform/pkg/sanitizer"
)

// termsAccepted is the value a checked terms box decodes to.
const termsAccepted = "accepted"

// Record holds the raw value of every field in one form, keyed by field.
// Absent keys read as the empty string.
type Record map[Field]string

// Get returns the value of field, or "" when it is absent.
func (r Record) Get(field Field) string {
	return r[field]
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// UnmarshalJSON decodes a JSON object of field values. Strings are kept as is,
// booleans map true to "accepted" and false to "", numbers keep their literal
// text and null becomes "".
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Record, len(raw))
	for key, value := range raw {
		s, err := decodeValue(value)
		if err != nil {
			return errors.Join(ErrInvalidRecordValue, fmt.Errorf("field %q: %w", key, err))
		}
		out[Field(key)] = s
	}
	*r = out
	return nil
}

// Value is a single field value decoded with the same rules as Record.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	s, err := decodeValue(data)
	if err != nil {
		return errors.Join(ErrInvalidRecordValue, err)
	}
	*v = Value(s)
	return nil
}

func decodeValue(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 {
		return "", nil
	}

	switch value[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(value, &b); err != nil {
			return "", err
		}
		if b {
			return termsAccepted, nil
		}
		return "", nil
	case 'n':
		if string(value) != "null" {
			return "", fmt.Errorf("unexpected token %s", value)
		}
		return "", nil
	case '{', '[':
		return "", fmt.Errorf("unsupported value %s", value)
	default:
		var n json.Number
		if err := json.Unmarshal(value, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	}
}

// Complete returns a copy of record holding every form field, with absent
// fields set to "".
func Complete(record Record) Record {
	out := record.Clone()
	for _, field := range Fields {
		if _, ok := out[field]; !ok {
			out[field] = ""
		}
	}
	return out
}

// Normalize returns a copy of record with surrounding whitespace trimmed from
// every value except the two password fields, which are kept verbatim.
func Normalize(record Record) Record {
	out := make(Record, len(record))
	for field, value := range record {
		switch field {
		case Password, ConfirmPassword:
			out[field] = value
		default:
			out[field] = sanitizer.Trim(value)
		}
	}
	return out
}

// RequiredFilled reports whether every required field has a non-empty value.
func RequiredFilled(record Record) bool {
	for _, field := range Fields {
		if defaultRules[field].required && record[field] == "" {
			return false
		}
	}
	return true
}
