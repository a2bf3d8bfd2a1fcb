package signup

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
	"github.com/dmitrymomot/regform/pkg/i18n"
	"github.com/dmitrymomot/regform/pkg/location"
	"github.com/dmitrymomot/regform/pkg/ratelimiter"
	"github.com/dmitrymomot/regform/pkg/registration"
)

// Service serves location lookups, live validation and submission.
type Service struct {
	validator    *registration.Validator
	submitter    *registration.Submitter
	translator   *i18n.Translator
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	maxBodySize  int64
	limiter      *ratelimiter.Limiter
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithErrorHandler replaces the handler for malformed requests.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithMaxBodySize limits JSON request bodies to n bytes.
func WithMaxBodySize(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// WithRegisterLimiter throttles POST /register per client address.
func WithRegisterLimiter(l *ratelimiter.Limiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

// NewService creates the service. A nil translator serves the English
// messages of the rule table.
func NewService(v *registration.Validator, sub *registration.Submitter, t *i18n.Translator, opts ...Option) *Service {
	if v == nil {
		v = registration.New()
	}
	if sub == nil {
		sub = registration.NewSubmitter(v)
	}

	s := &Service{
		validator:   v,
		submitter:   sub,
		translator:  t,
		logger:      slog.Default(),
		maxBodySize: binder.DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger)
	}
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	jsonBody := binder.JSONWithLimit(s.maxBodySize)
	path := binder.Path(pathParam)

	r.Route("/locations/countries", func(r chi.Router) {
		r.Get("/", handler.Wrap(s.countries,
			handler.ErrorHandlerFor[struct{}](s.errorHandler),
		))
		r.Get("/{country}/states", handler.Wrap(s.states,
			handler.WithBinders[handler.Context, StatesRequest](path),
			handler.ErrorHandlerFor[StatesRequest](s.errorHandler),
		))
		r.Get("/{country}/states/{state}/cities", handler.Wrap(s.cities,
			handler.WithBinders[handler.Context, CitiesRequest](path),
			handler.ErrorHandlerFor[CitiesRequest](s.errorHandler),
		))
		r.Get("/{country}/phone", handler.Wrap(s.phone,
			handler.WithBinders[handler.Context, PhoneRequest](path),
			handler.ErrorHandlerFor[PhoneRequest](s.errorHandler),
		))
	})

	r.Get("/translations/{lang}", handler.Wrap(s.translations,
		handler.WithBinders[handler.Context, TranslationsRequest](path),
		handler.ErrorHandlerFor[TranslationsRequest](s.errorHandler),
	))

	r.Post("/validate", handler.Wrap(s.validateForm,
		handler.WithBinders[handler.Context, registration.Record](jsonBody),
		handler.ErrorHandlerFor[registration.Record](s.errorHandler),
	))
	r.Post("/validate/{field}", handler.Wrap(s.validateField,
		handler.WithBinders[handler.Context, ValidateFieldRequest](jsonBody, path),
		handler.ErrorHandlerFor[ValidateFieldRequest](s.errorHandler),
	))
	r.Post("/password/strength", handler.Wrap(s.strength,
		handler.WithBinders[handler.Context, StrengthRequest](jsonBody),
		handler.ErrorHandlerFor[StrengthRequest](s.errorHandler),
	))
	var register chi.Router = r
	if s.limiter != nil {
		register = r.With(ratelimiter.Middleware(s.limiter, ratelimiter.ByClientIP, http.HandlerFunc(s.tooManyRequests)))
	}
	register.Post("/register", handler.Wrap(s.register,
		handler.WithBinders[handler.Context, registration.Record](jsonBody),
		handler.ErrorHandlerFor[registration.Record](s.errorHandler),
	))

	return r
}

// pathParam returns the unescaped chi URL parameter, so names such as
// "United States" or "São Paulo" round-trip when chi routed on the raw path.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

func (s *Service) catalog() *location.Catalog {
	return s.validator.Catalog()
}

// translate resolves key in the request's locale, falling back to def.
func (s *Service) translate(ctx context.Context, key, def string, params map[string]string) string {
	if s.translator == nil {
		return def
	}
	return s.translator.Tdc(ctx, key, def, paramArgs(params)...)
}

// paramArgs flattens params into key/value pairs in key order.
func paramArgs(params map[string]string) []string {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(params)*2)
	for _, k := range keys {
		args = append(args, k, params[k])
	}
	return args
}

func (s *Service) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	_ = s.fail(r.Context(), handler.ErrTooManyRequests, nil).Render(w, r)
}

// fail renders an error envelope with a localized message.
func (s *Service) fail(ctx context.Context, err handler.HTTPError, details map[string][]string) handler.Response {
	return handler.JSONError(&handler.ErrorDetail{
		Code:    err.Key,
		Message: s.translate(ctx, "errors."+err.Key, http.StatusText(err.Code), nil),
		Details: details,
	}, handler.WithJSONStatus(err.Code))
}
