package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/regform/pkg/validator"
)

func TestInteger(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"18", true},
		{" 42 ", true},
		{"-3", true},
		{"abc", false},
		{"18.5", false},
		{"25abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Integer("age", tt.value).Check())
		})
	}
}

func TestLeadingInteger(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"18", true},
		{"  42", true},
		{"+7", true},
		{"-3", true},
		{"18.5", true},
		{"25abc", true},
		{"abc", false},
		{"abc25", false},
		{"-", false},
		{"+-1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rule := validator.LeadingInteger("age", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "integer", rule.Error.Code)
		})
	}
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   int
		wantOK bool
	}{
		{"plain", "18", 18, true},
		{"leading whitespace", "\t 30", 30, true},
		{"fraction truncated", "18.9", 18, true},
		{"trailing text", "25abc", 25, true},
		{"explicit plus", "+42", 42, true},
		{"negative", "-5", -5, true},
		{"leading zeros", "007", 7, true},
		{"overflow saturates", "99999999999999999999", math.MaxInt, true},
		{"negative overflow saturates", "-99999999999999999999", math.MinInt, true},
		{"no digits", "abc", 0, false},
		{"sign only", "-", 0, false},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validator.ParseLeadingInt(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinMaxNum(t *testing.T) {
	t.Run("min boundary", func(t *testing.T) {
		rule := validator.MinNum("age", 18, 18)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be at least 18", rule.Error.Message)
		assert.False(t, validator.MinNum("age", 17, 18).Check())
	})

	t.Run("max boundary", func(t *testing.T) {
		rule := validator.MaxNum("age", 100, 100)
		assert.True(t, rule.Check())
		assert.Equal(t, "max", rule.Error.Code)
		assert.False(t, validator.MaxNum("age", 101, 100).Check())
	})

	t.Run("floats", func(t *testing.T) {
		assert.True(t, validator.MinNum("score", 1.5, 1.0).Check())
		assert.False(t, validator.MaxNum("score", 1.5, 1.0).Check())
	})
}
