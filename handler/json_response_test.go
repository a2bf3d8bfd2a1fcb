package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
	"github.com/dmitrymomot/regform/pkg/validator"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	return rec
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		rec := render(t, handler.JSON([]string{"India", "Japan"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":["India","Japan"]}`, rec.Body.String())
	})

	t.Run("status and meta", func(t *testing.T) {
		t.Parallel()

		rec := render(t, handler.JSON(map[string]string{"id": "1"},
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"total": 1}),
		))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"data":{"id":"1"},"meta":{"total":1}}`, rec.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("validation errors become 422 with details", func(t *testing.T) {
		t.Parallel()

		errs := validator.ValidationErrors{
			{Field: "email", Message: "Email address is required"},
			{Field: "age", Message: "Age cannot exceed 100 years"},
		}
		rec := render(t, handler.JSONError(fmt.Errorf("submit: %w", errs)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"Email address is required"}, body.Error.Details["email"])
		assert.Equal(t, []string{"Age cannot exceed 100 years"}, body.Error.Details["age"])
	})

	t.Run("http error keeps its code", func(t *testing.T) {
		t.Parallel()

		rec := render(t, handler.JSONError(handler.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, rec.Body.String())
	})

	t.Run("internal error text is hidden", func(t *testing.T) {
		t.Parallel()

		rec := render(t, handler.JSONError(errors.New("db password leaked")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "leaked")
		assert.Equal(t, "internal_server_error", decode(t, rec).Error.Code)
	})

	t.Run("error detail with explicit status", func(t *testing.T) {
		t.Parallel()

		detail := &handler.ErrorDetail{Code: "retry", Message: "Please try again."}
		rec := render(t, handler.JSONError(detail, handler.WithJSONStatus(http.StatusServiceUnavailable)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"retry","message":"Please try again."}}`, rec.Body.String())
	})
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http error", handler.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"custom http error", handler.NewHTTPError(http.StatusConflict, "conflict"), http.StatusConflict},
		{"validation", validator.ValidationErrors{{Field: "x"}}, http.StatusUnprocessableEntity},
		{"too large", binder.ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"media type", binder.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"missing content type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType},
		{"bad json", errors.Join(binder.ErrFailedToParseJSON, errors.New("eof")), http.StatusBadRequest},
		{"bad path", binder.ErrFailedToParsePath, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, handler.StatusOf(tt.err))
		})
	}
}
