package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/regform/pkg/binder"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to their
// messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v in the envelope's data field with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}
	r.body.Data = v
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders an error envelope. A *ErrorDetail is sent as is with
// status 500 unless WithJSONStatus says otherwise; other errors are
// classified with StatusOf.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	var detail *ErrorDetail
	if errors.As(err, &detail) {
		r.body.Error = detail
	} else {
		r.status = StatusOf(err)
		r.body.Error = errorToDetail(err, r.status)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// StatusOf maps an error to an HTTP status code.
func StatusOf(err error) int {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case validator.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, binder.ErrRequestTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParsePath):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorToDetail(err error, status int) *ErrorDetail {
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		details := make(map[string][]string, len(errs))
		for _, e := range errs {
			details[e.Field] = append(details[e.Field], e.Message)
		}
		return &ErrorDetail{
			Code:    "validation_error",
			Message: http.StatusText(status),
			Details: details,
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	switch status {
	case http.StatusInternalServerError:
		// Internal error text stays in the logs.
		return &ErrorDetail{Code: ErrInternalServerError.Key, Message: http.StatusText(status)}
	case http.StatusRequestEntityTooLarge:
		return &ErrorDetail{Code: ErrRequestEntityTooLarge.Key, Message: err.Error()}
	case http.StatusUnsupportedMediaType:
		return &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}
	default:
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	}
}
