package signup

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/registration"
)

// errRegistrationFailed is reported when an accepted form could not be
// stored; the client may retry.
var errRegistrationFailed = handler.NewHTTPError(http.StatusInternalServerError, "registration_failed")

func (s *Service) register(ctx handler.Context, req registration.Record) handler.Response {
	receipt, err := s.submitter.Submit(ctx, req)

	var formErr *registration.FormError
	switch {
	case err == nil:
		receipt.Message = s.translate(ctx, "registration.success", receipt.Message, nil)
		return handler.JSON(receipt, handler.WithJSONStatus(http.StatusCreated))

	case errors.As(err, &formErr):
		result := s.localizeForm(ctx, formErr.Result)
		details := make(map[string][]string, len(result.Errors))
		for field, msg := range result.Errors {
			details[string(field)] = []string{msg}
		}
		return s.fail(ctx, handler.NewHTTPError(http.StatusUnprocessableEntity, "validation_error"), details)

	case errors.Is(err, registration.ErrSubmissionCancelled):
		s.logger.WarnContext(ctx, "registration cancelled", logger.Error(err))
		return s.fail(ctx, handler.ErrServiceUnavailable, nil)

	default:
		s.logger.ErrorContext(ctx, "registration failed", logger.Error(err))
		return handler.JSONError(&handler.ErrorDetail{
			Code:    errRegistrationFailed.Key,
			Message: s.translate(ctx, "registration.retry", registration.RetryMessage, nil),
		}, handler.WithJSONStatus(errRegistrationFailed.Code))
	}
}
