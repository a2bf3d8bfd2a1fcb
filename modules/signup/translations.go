package signup

import (
	"encoding/json"

	"github.com/dmitrymomot/regform/handler"
)

type TranslationsRequest struct {
	Lang string `path:"lang"`
}

// translations serves a language's messages so the UI can render labels and
// client-side errors in the same wording as the API.
func (s *Service) translations(ctx handler.Context, req TranslationsRequest) handler.Response {
	if s.translator == nil {
		return s.fail(ctx, handler.ErrNotFound, nil)
	}
	data, err := s.translator.ExportJSON(req.Lang)
	if err != nil {
		return s.fail(ctx, handler.ErrNotFound, nil)
	}
	return handler.JSON(json.RawMessage(data), handler.WithJSONMeta(map[string]any{
		"lang":      req.Lang,
		"languages": s.translator.SupportedLanguages(),
	}))
}
