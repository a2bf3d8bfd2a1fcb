package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges json and yaml files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"locales/a.yaml":    {Data: []byte("en:\n  hello: Hello\n  bye: Bye\n")},
			"locales/b.json":    {Data: []byte(`{"en": {"bye": "Goodbye"}, "es": {"hello": "Hola"}}`)},
			"locales/notes.txt": {Data: []byte("ignored")},
		}

		data, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["hello"])
		assert.Equal(t, "Goodbye", data["en"]["bye"])
		assert.Equal(t, "Hola", data["es"]["hello"])
	})

	t.Run("no translation files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/readme.md": {Data: []byte("x")}}
		_, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"en.yaml": {Data: []byte("en: [unterminated")}}
		_, err := i18n.NewFSAdapter(fsys, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParsers(t *testing.T) {
	t.Parallel()

	t.Run("parser for file", func(t *testing.T) {
		t.Parallel()
		assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yml"))
		assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/en.YAML"))
		assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
		assert.Nil(t, i18n.NewParserForFile("en.toml"))
	})

	t.Run("rejects non-map language entry", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewYAMLParser().Parse(context.Background(), []byte("en: hello\n"))
		var structErr *i18n.StructureError
		require.ErrorAs(t, err, &structErr)
		assert.Equal(t, "en", structErr.Lang)
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)

		_, err = i18n.NewJSONParser().Parse(context.Background(), []byte(`{"en": 1}`))
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("bad json", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewJSONParser().Parse(context.Background(), []byte(`{`))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, i18n.NewYAMLParser().SupportsFileExtension(".yml"))
		assert.False(t, i18n.NewYAMLParser().SupportsFileExtension("json"))
		assert.True(t, i18n.NewJSONParser().SupportsFileExtension(".JSON"))
	})
}
