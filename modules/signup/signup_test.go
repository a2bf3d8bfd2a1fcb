package signup_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/modules/signup"
	"github.com/dmitrymomot/regform/pkg/i18n"
	"github.com/dmitrymomot/regform/pkg/location"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/ratelimiter"
	"github.com/dmitrymomot/regform/pkg/registration"
	"github.com/dmitrymomot/regform/pkg/requestid"
)

const validRecordJSON = `{
	"firstName": "Priya",
	"lastName": "Sharma",
	"email": "priya@example.com",
	"phone": "+91 98765 43210",
	"age": 28,
	"gender": "female",
	"address": "12 MG Road, Pune",
	"country": "India",
	"state": "Maharashtra",
	"city": "Pune",
	"password": "Abcdefgh1",
	"confirmPassword": "Abcdefgh1",
	"terms": true
}`

type memorySink struct {
	mu    sync.Mutex
	items []registration.Submission
}

func (s *memorySink) Store(_ context.Context, sub registration.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, sub)
	return nil
}

func (s *memorySink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func testCatalog() *location.Catalog {
	return location.MustNew(
		location.Country{
			Name:        "India",
			PhonePrefix: "+91",
			States: []location.State{
				{Name: "Maharashtra", Cities: []string{"Pune", "Mumbai"}},
			},
		},
		location.Country{
			Name:        "United States",
			PhonePrefix: "+1",
			States: []location.State{
				{Name: "New York", Cities: []string{"Buffalo"}},
			},
		},
	)
}

func newServer(t *testing.T, sink registration.Sink) http.Handler {
	t.Helper()

	translator, err := signup.NewTranslator(context.Background())
	require.NoError(t, err)

	v := registration.New(registration.WithCatalog(testCatalog()))
	sub := registration.NewSubmitter(v,
		registration.WithDelay(0),
		registration.WithBcryptCost(bcrypt.MinCost),
		registration.WithLogger(logger.Discard()),
		registration.WithSink(sink),
	)
	svc := signup.NewService(v, sub, translator, signup.WithLogger(logger.Discard()))

	return signup.Router(signup.RouterOptions{
		Signup:      svc,
		Middlewares: []func(http.Handler) http.Handler{requestid.Middleware, i18n.Middleware(translator)},
	})
}

type envelope[T any] struct {
	Data  T                    `json:"data"`
	Meta  map[string]any       `json:"meta"`
	Error *handler.ErrorDetail `json:"error"`
}

func do[T any](t *testing.T, srv http.Handler, method, target, body string, header ...string) (int, envelope[T]) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestLocations(t *testing.T) {
	t.Parallel()
	srv := newServer(t, &memorySink{})

	t.Run("countries", func(t *testing.T) {
		t.Parallel()

		code, env := do[[]string](t, srv, http.MethodGet, "/locations/countries", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"India", "United States"}, env.Data)
		assert.EqualValues(t, 2, env.Meta["total"])
	})

	t.Run("states", func(t *testing.T) {
		t.Parallel()

		code, env := do[[]string](t, srv, http.MethodGet, "/locations/countries/India/states", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"Maharashtra"}, env.Data)
	})

	t.Run("states of unknown country", func(t *testing.T) {
		t.Parallel()

		code, env := do[any](t, srv, http.MethodGet, "/locations/countries/Atlantis/states", "")
		assert.Equal(t, http.StatusNotFound, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "not_found", env.Error.Code)
	})

	t.Run("cities with escaped names", func(t *testing.T) {
		t.Parallel()

		code, env := do[[]string](t, srv, http.MethodGet, "/locations/countries/United%20States/states/New%20York/cities", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"Buffalo"}, env.Data)
	})

	t.Run("cities of mismatched pair", func(t *testing.T) {
		t.Parallel()

		code, _ := do[any](t, srv, http.MethodGet, "/locations/countries/India/states/New%20York/cities", "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("phone", func(t *testing.T) {
		t.Parallel()

		code, env := do[signup.PhoneInfo](t, srv, http.MethodGet, "/locations/countries/India/phone", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, signup.PhoneInfo{Prefix: "+91", Hint: "+91 XXXXX XXXXX"}, env.Data)
	})

	t.Run("phone of unknown country", func(t *testing.T) {
		t.Parallel()

		code, _ := do[any](t, srv, http.MethodGet, "/locations/countries/Atlantis/phone", "")
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestValidateField(t *testing.T) {
	t.Parallel()
	srv := newServer(t, &memorySink{})

	t.Run("cross-field phone check", func(t *testing.T) {
		t.Parallel()

		code, env := do[registration.Result](t, srv, http.MethodPost, "/validate/phone",
			`{"value":"+1 555 123 4567","record":{"country":"India"}}`)
		assert.Equal(t, http.StatusOK, code)
		assert.False(t, env.Data.Valid)
		assert.Equal(t, registration.FailureCountryCode, env.Data.Failure)
		assert.Equal(t, registration.CountryCodeMismatch, env.Data.Kind)
		assert.Equal(t, "Phone number must match the selected country code (+91)", env.Data.Error)
	})

	t.Run("translated message", func(t *testing.T) {
		t.Parallel()

		_, env := do[registration.Result](t, srv, http.MethodPost, "/validate/phone",
			`{"value":"+1 555 123 4567","record":{"country":"India"}}`,
			"Accept-Language", "es-ES,es;q=0.9")
		assert.Equal(t, "El teléfono debe coincidir con el prefijo del país seleccionado (+91)", env.Data.Error)
	})

	t.Run("lang query wins over header", func(t *testing.T) {
		t.Parallel()

		_, env := do[registration.Result](t, srv, http.MethodPost, "/validate/firstName?lang=es",
			`{"value":""}`, "Accept-Language", "en")
		assert.Equal(t, "El nombre es obligatorio", env.Data.Error)
	})

	t.Run("value is trimmed", func(t *testing.T) {
		t.Parallel()

		_, env := do[registration.Result](t, srv, http.MethodPost, "/validate/firstName", `{"value":"   "}`)
		assert.False(t, env.Data.Valid)
		assert.Equal(t, "First name is required", env.Data.Error)
	})

	t.Run("boolean terms", func(t *testing.T) {
		t.Parallel()

		_, env := do[registration.Result](t, srv, http.MethodPost, "/validate/terms", `{"value":true}`)
		assert.True(t, env.Data.Valid)
		assert.Empty(t, env.Data.Error)

		_, env = do[registration.Result](t, srv, http.MethodPost, "/validate/terms", `{"value":false}`)
		assert.False(t, env.Data.Valid)
		assert.Equal(t, "You must agree to the Terms & Conditions", env.Data.Error)
	})

	t.Run("numeric age", func(t *testing.T) {
		t.Parallel()

		_, env := do[registration.Result](t, srv, http.MethodPost, "/validate/age", `{"value":17}`)
		assert.Equal(t, "You must be at least 18 years old", env.Data.Error)
	})

	t.Run("fractional age reads whole years", func(t *testing.T) {
		t.Parallel()

		code, env := do[registration.Result](t, srv, http.MethodPost, "/validate/age", `{"value":18.5}`)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Data.Valid)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		code, env := do[any](t, srv, http.MethodPost, "/validate/nickname", `{"value":"x"}`)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "not_found", env.Error.Code)
	})

	t.Run("unknown body field", func(t *testing.T) {
		t.Parallel()

		code, env := do[any](t, srv, http.MethodPost, "/validate/firstName", `{"value":"Jane","extra":1}`)
		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bad_request", env.Error.Code)
		assert.NotEmpty(t, env.Meta["requestId"])
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()

		code, _ := do[any](t, srv, http.MethodPost, "/validate/firstName", `{"value":"Jane"}`,
			"Content-Type", "text/plain")
		assert.Equal(t, http.StatusUnsupportedMediaType, code)
	})
}

func TestValidateForm(t *testing.T) {
	t.Parallel()
	srv := newServer(t, &memorySink{})

	t.Run("valid record can be submitted", func(t *testing.T) {
		t.Parallel()

		code, env := do[signup.FormVerdict](t, srv, http.MethodPost, "/validate", validRecordJSON)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Data.Valid)
		assert.Empty(t, env.Data.Errors)
		assert.True(t, env.Data.CanSubmit)
	})

	t.Run("partial record", func(t *testing.T) {
		t.Parallel()

		_, env := do[signup.FormVerdict](t, srv, http.MethodPost, "/validate", `{"firstName":"J","email":"a@mailinator.com"}`)
		assert.False(t, env.Data.Valid)
		assert.False(t, env.Data.CanSubmit)
		assert.Equal(t, map[registration.Field]string{
			registration.FirstName: "First name must be at least 2 characters",
			registration.Email:     "Disposable email addresses are not allowed",
		}, env.Data.Errors)
	})

	t.Run("object values are rejected", func(t *testing.T) {
		t.Parallel()

		code, _ := do[any](t, srv, http.MethodPost, "/validate", `{"firstName":{"a":1}}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestPasswordStrength(t *testing.T) {
	t.Parallel()
	srv := newServer(t, &memorySink{})

	code, env := do[signup.StrengthResponse](t, srv, http.MethodPost, "/password/strength", `{"password":"Abcdefgh1"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, signup.StrengthResponse{Strength: "medium", Score: 4, MaxScore: 6, Label: "Medium"}, env.Data)

	_, env = do[signup.StrengthResponse](t, srv, http.MethodPost, "/password/strength", `{"password":"Abcdefgh1!xyz"}`,
		"Accept-Language", "es")
	assert.Equal(t, "strong", string(env.Data.Strength))
	assert.Equal(t, "Fuerte", env.Data.Label)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()

		sink := &memorySink{}
		srv := newServer(t, sink)

		code, env := do[registration.Receipt](t, srv, http.MethodPost, "/register", validRecordJSON)
		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, registration.SuccessMessage, env.Data.Message)
		assert.NotEmpty(t, env.Data.ID)
		assert.Equal(t, 1, sink.len())
	})

	t.Run("localized success", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, &memorySink{})
		_, env := do[registration.Receipt](t, srv, http.MethodPost, "/register", validRecordJSON, "Accept-Language", "es")
		assert.Equal(t, "¡Registro completado! Tu perfil se ha enviado correctamente.", env.Data.Message)
	})

	t.Run("invalid record", func(t *testing.T) {
		t.Parallel()

		sink := &memorySink{}
		srv := newServer(t, sink)

		code, env := do[any](t, srv, http.MethodPost, "/register", `{"firstName":"Priya","password":"Abcdefgh1","confirmPassword":"Abcdefgh2"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, "Please correct the highlighted fields", env.Error.Message)
		assert.Equal(t, []string{"Passwords do not match"}, env.Error.Details["confirmPassword"])
		assert.Equal(t, []string{"Email address is required"}, env.Error.Details["email"])
		assert.NotContains(t, env.Error.Details, "firstName")
		assert.Zero(t, sink.len())
	})

	t.Run("sink failure asks to retry", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, registration.SinkFunc(func(context.Context, registration.Submission) error {
			return errors.New("storage offline")
		}))

		code, env := do[any](t, srv, http.MethodPost, "/register", validRecordJSON)
		assert.Equal(t, http.StatusInternalServerError, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "registration_failed", env.Error.Code)
		assert.Equal(t, registration.RetryMessage, env.Error.Message)
	})
}

func TestRouterFallbacks(t *testing.T) {
	t.Parallel()
	srv := newServer(t, &memorySink{})

	code, env := do[any](t, srv, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", env.Error.Code)

	code, env = do[any](t, srv, http.MethodGet, "/register", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestRegisterRateLimit(t *testing.T) {
	t.Parallel()

	translator, err := signup.NewTranslator(context.Background())
	require.NoError(t, err)
	limiter, err := ratelimiter.New(ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	v := registration.New(registration.WithCatalog(testCatalog()))
	sub := registration.NewSubmitter(v,
		registration.WithDelay(0),
		registration.WithBcryptCost(bcrypt.MinCost),
		registration.WithLogger(logger.Discard()),
		registration.WithSink(&memorySink{}),
	)
	srv := signup.Router(signup.RouterOptions{
		Signup: signup.NewService(v, sub, translator,
			signup.WithLogger(logger.Discard()),
			signup.WithRegisterLimiter(limiter),
		),
		Middlewares: []func(http.Handler) http.Handler{i18n.Middleware(translator)},
	})

	code, _ := do[registration.Receipt](t, srv, http.MethodPost, "/register", validRecordJSON)
	assert.Equal(t, http.StatusCreated, code)

	code, env := do[any](t, srv, http.MethodPost, "/register", validRecordJSON)
	assert.Equal(t, http.StatusTooManyRequests, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "too_many_requests", env.Error.Code)
	assert.Equal(t, "Too many attempts. Please wait a moment and try again.", env.Error.Message)

	code, _ = do[signup.FormVerdict](t, srv, http.MethodPost, "/validate", validRecordJSON)
	assert.Equal(t, http.StatusOK, code, "only registration is throttled")
}

func TestTranslations(t *testing.T) {
	t.Parallel()
	srv := newServer(t, &memorySink{})

	code, env := do[map[string]any](t, srv, http.MethodGet, "/translations/es", "")
	assert.Equal(t, http.StatusOK, code)
	registrationMsgs, ok := env.Data["registration"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "¡Registro completado! Tu perfil se ha enviado correctamente.", registrationMsgs["success"])
	assert.Equal(t, []any{"en", "es"}, env.Meta["languages"])

	code, _ = do[any](t, srv, http.MethodGet, "/translations/fr", "")
	assert.Equal(t, http.StatusNotFound, code)
}
