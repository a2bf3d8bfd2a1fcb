package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/regform/pkg/validator"
)

func TestPasswordScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		strength validator.PasswordStrength
	}{
		{"empty", "", 0, validator.PasswordWeak},
		{"short lowercase", "abc", 1, validator.PasswordWeak},
		{"eight lowercase", "abcdefgh", 2, validator.PasswordWeak},
		{"mixed case with digit", "Abcdefgh1", 4, validator.PasswordMedium},
		{"short but varied", "Ab1!", 4, validator.PasswordMedium},
		{"long mixed with digit", "Abcdefghijk1", 5, validator.PasswordStrong},
		{"everything", "Abcdefghijk1!", 6, validator.PasswordStrong},
		{"accented letter is special", "abcdé", 2, validator.PasswordWeak},
		{"space is special", "ab cd", 2, validator.PasswordWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.score, validator.PasswordScore(tt.password))
			assert.Equal(t, tt.strength, validator.StrengthOf(tt.password))
		})
	}
}

func TestPasswordScoreBounds(t *testing.T) {
	for _, p := range []string{"", "a", "Password1!", "Zz9$Zz9$Zz9$Zz9$"} {
		score := validator.PasswordScore(p)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, validator.MaxPasswordScore)
	}
}
