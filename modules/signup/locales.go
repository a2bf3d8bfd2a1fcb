package signup

import (
	"context"
	"embed"

	"github.com/dmitrymomot/regform/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the bundled English and Spanish messages.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"), opts...)
}
