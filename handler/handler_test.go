package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
)

type echoRequest struct {
	Name string `json:"name"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := func(ctx handler.Context, req echoRequest) handler.Response {
		return handler.JSON(map[string]string{"name": req.Name})
	}

	t.Run("binds request and renders response", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(echo, handler.WithBinders[handler.Context, echoRequest](binder.JSON()))
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		body := decode(t, rec)
		assert.Equal(t, map[string]any{"name": "Jane"}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("binder error goes to error handler", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(echo,
			handler.WithBinders[handler.Context, echoRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, echoRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, got, binder.ErrFailedToParseJSON)
	})

	t.Run("default error handler renders json error", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(echo, handler.WithBinders[handler.Context, echoRequest](binder.JSON()))
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "unsupported_media_type", body.Error.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(func(ctx handler.Context, req echoRequest) handler.Response { return nil },
			handler.WithErrorHandler[handler.Context, echoRequest](func(ctx handler.Context, err error) {
				got = err
			}),
		)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("render failure is reported", func(t *testing.T) {
		t.Parallel()

		renderErr := errors.New("broken pipe")
		var got error
		h := handler.Wrap(func(ctx handler.Context, req echoRequest) handler.Response {
			return failingResponse{err: renderErr}
		}, handler.WithErrorHandler[handler.Context, echoRequest](func(ctx handler.Context, err error) {
			got = err
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrRenderFailed)
		assert.ErrorIs(t, got, renderErr)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()

		var order []string
		mark := func(name string) handler.Decorator[handler.Context, echoRequest] {
			return func(next handler.HandlerFunc[handler.Context, echoRequest]) handler.HandlerFunc[handler.Context, echoRequest] {
				return func(ctx handler.Context, req echoRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(echo, handler.WithDecorators(mark("outer"), mark("inner")))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("context exposes request and writer", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(func(ctx handler.Context, req echoRequest) handler.Response {
			assert.NotNil(t, ctx.ResponseWriter())
			assert.NoError(t, ctx.Err())
			return handler.JSON(ctx.Request().URL.Path)
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, "/ping", decode(t, rec).Data)
	})
}

type failingResponse struct {
	err error
}

func (f failingResponse) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}
