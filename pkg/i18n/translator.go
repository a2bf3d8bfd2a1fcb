package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preference matches a loaded language.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header we parse.
const maxAcceptLanguageLength = 4096

// Translator resolves dotted keys to localized strings. It is immutable
// after NewTranslator and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, values := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if values == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrInvalidStructure, lang)
		}
	}
	t.translations = translations
	t.buildMatcher()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// buildMatcher puts the default language first so the matcher falls back
// to it.
func (t *Translator) buildMatcher() {
	langs := make([]string, 0, len(t.translations)+1)
	langs = append(langs, t.defaultLang)
	rest := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		if lang != t.defaultLang {
			rest = append(rest, lang)
		}
	}
	slices.Sort(rest)
	langs = append(langs, rest...)

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
	}
	t.langs = langs
	t.matcher = language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded language codes in ascending order.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// DefaultLanguage returns the fallback language code.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the loaded language that best serves an Accept-Language
// header value. It returns the default language when nothing matches or
// the header cannot be parsed.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}
	_, idx, confidence := t.matcher.Match(prefs...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Has reports whether lang has a string translation for key.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from
// key/value pairs in args:
//
//	t.T("en", "welcome", "name", "John") // "Hello, John!"
//
// Missing translations fall back to the default language, then to the key
// itself unless WithFallbackToKey(false) was given.
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td works like T but returns defaultValue, with placeholders substituted,
// when no translation exists in lang or the default language.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	return substitute(defaultValue, args)
}

// Tc translates key using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Tdc translates key with a default using the language stored in ctx.
func (t *Translator) Tdc(ctx context.Context, key, defaultValue string, args ...string) string {
	return t.Td(GetLocale(ctx), key, defaultValue, args...)
}

// ExportJSON returns all translations for lang as a JSON document, for
// client-side rendering.
func (t *Translator) ExportJSON(lang string) ([]byte, error) {
	translations, ok := t.translations[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}
	data, err := json.Marshal(translations)
	if err != nil {
		return nil, errors.Join(ErrFailedToMarshalJSON, err)
	}
	return data, nil
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if s, ok := t.lookup(lang, key); ok {
		return s, true
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if lang != t.defaultLang {
		return t.lookup(t.defaultLang, key)
	}
	return "", false
}

// lookup walks nested maps along the dot-separated key. A flat entry whose
// name contains dots is found as well.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	if v, ok := current[key].(string); ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders. Unknown placeholders are kept.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
