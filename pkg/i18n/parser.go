package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser turns file content into translations keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser for the file's extension, or nil when
// the format is unknown.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// toLanguageMap checks that every top-level value is a map of translations.
func toLanguageMap(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, &StructureError{Lang: lang, Got: val}
		}
		result[lang] = m
	}
	return result, nil
}
