package i18n_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/i18n"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"en": {
				"hello": "Hello",
				"registration": map[string]any{
					"phone": map[string]any{
						"countryCode": "Phone number must match the selected country code (%{prefix})",
					},
				},
				"only.en": "English only",
			},
			"es": {
				"hello": "Hola",
				"registration": map[string]any{
					"phone": map[string]any{
						"countryCode": "El número debe coincidir con el código del país (%{prefix})",
					},
				},
			},
		},
	}, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"": {"a": "b"}},
		})
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)
	})

	t.Run("supported languages sorted", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t)
		assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.DefaultLanguage())
	})
}

func TestTranslatorT(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"flat key", "es", "hello", nil, "Hola"},
		{"nested key with params", "es", "registration.phone.countryCode", []string{"prefix", "+91"},
			"El número debe coincidir con el código del país (+91)"},
		{"dotted flat key", "en", "only.en", nil, "English only"},
		{"falls back to default language", "es", "only.en", nil, "English only"},
		{"unknown language uses default", "fr", "hello", nil, "Hello"},
		{"missing key returns key", "en", "missing.key", nil, "missing.key"},
		{"partial path returns key", "en", "registration.phone", nil, "registration.phone"},
		{"unknown placeholder kept", "en", "registration.phone.countryCode", []string{"other", "x"},
			"Phone number must match the selected country code (%{prefix})"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslatorFallbacks(t *testing.T) {
	t.Parallel()

	t.Run("no fallback to key", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, tr.T("en", "missing"))
	})

	t.Run("td uses default value", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t)
		assert.Equal(t, "Hola", tr.Td("es", "hello", "Hi"))
		assert.Equal(t, "Fallback +44", tr.Td("es", "missing", "Fallback %{prefix}", "prefix", "+44"))
	})

	t.Run("context locale", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t)
		ctx := i18n.SetLocale(context.Background(), "es")
		assert.Equal(t, "Hola", tr.Tc(ctx, "hello"))
		assert.Equal(t, "x", tr.Tdc(ctx, "missing", "x"))
		assert.Equal(t, "Hello", tr.Tc(context.Background(), "hello"))
	})

	t.Run("has", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t)
		assert.True(t, tr.Has("es", "registration.phone.countryCode"))
		assert.False(t, tr.Has("es", "only.en"))
		assert.False(t, tr.Has("de", "hello"))
	})

	t.Run("logs missing translations", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		tr := newTranslator(t,
			i18n.WithLogger(slog.New(slog.NewTextHandler(buf, nil))),
			i18n.WithMissingTranslationsLogging(true),
		)
		tr.T("es", "only.en")
		assert.Contains(t, buf.String(), "translation not found")
	})
}

func TestTranslatorMatch(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", "en"},
		{"exact", "es", "es"},
		{"regional variant", "es-MX", "es"},
		{"quality ordering", "fr;q=0.9, es;q=0.8, en;q=0.1", "es"},
		{"unsupported", "de-DE", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.Match(tt.header))
		})
	}
}

func TestExportJSON(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	data, err := tr.ExportJSON("es")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Hola", decoded["hello"])

	_, err = tr.ExportJSON("de")
	assert.ErrorIs(t, err, i18n.ErrLanguageNotSupported)
}
