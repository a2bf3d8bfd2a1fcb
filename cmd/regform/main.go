package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/regform/modules/signup"
	"github.com/dmitrymomot/regform/pkg/clientip"
	"github.com/dmitrymomot/regform/pkg/config"
	"github.com/dmitrymomot/regform/pkg/environment"
	"github.com/dmitrymomot/regform/pkg/httpserver"
	"github.com/dmitrymomot/regform/pkg/i18n"
	"github.com/dmitrymomot/regform/pkg/location"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/ratelimiter"
	"github.com/dmitrymomot/regform/pkg/registration"
	"github.com/dmitrymomot/regform/pkg/requestid"
	"github.com/dmitrymomot/regform/pkg/webhook"
)

type appConfig struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	AppName         string        `env:"APP_NAME" envDefault:"regform"`
	LogLevel        string        `env:"LOG_LEVEL"`
	CatalogFile     string        `env:"CATALOG_FILE"`
	SubmitDelay     time.Duration `env:"SUBMIT_DELAY" envDefault:"2s"`
	UnicodeNames    bool          `env:"UNICODE_NAMES" envDefault:"false"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	MaxBodySize     int64         `env:"MAX_BODY_SIZE" envDefault:"65536"`
	DisposableExtra []string      `env:"DISPOSABLE_DOMAINS" envSeparator:","`
	TrustedHeaders  []string      `env:"TRUSTED_IP_HEADERS" envSeparator:","`
	RateLimit       bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	WebhookURL      string        `env:"WEBHOOK_URL"`
	WebhookSecret   string        `env:"WEBHOOK_SECRET"`
	WebhookRetries  int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`

	HTTP     httpserver.Config
	Throttle ratelimiter.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("regform stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.AppEnv)
	log := logger.New(
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	catalog, err := loadCatalog(ctx, cfg.CatalogFile)
	if err != nil {
		return err
	}

	translator, err := signup.NewTranslator(ctx,
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(env == environment.Development),
	)
	if err != nil {
		return err
	}

	validatorOpts := []registration.Option{
		registration.WithCatalog(catalog),
		registration.WithDisposableDomains(cfg.DisposableExtra...),
	}
	if cfg.UnicodeNames {
		validatorOpts = append(validatorOpts, registration.WithUnicodeNames())
	}
	v := registration.New(validatorOpts...)

	sink, err := newSink(cfg, log)
	if err != nil {
		return err
	}
	submitter := registration.NewSubmitter(v,
		registration.WithDelay(cfg.SubmitDelay),
		registration.WithSink(sink),
		registration.WithLogger(log),
	)

	svcOpts := []signup.Option{
		signup.WithLogger(log),
		signup.WithMaxBodySize(cfg.MaxBodySize),
	}
	if cfg.RateLimit {
		limiter, err := ratelimiter.New(cfg.Throttle)
		if err != nil {
			return err
		}
		svcOpts = append(svcOpts, signup.WithRegisterLimiter(limiter))
	}
	svc := signup.NewService(v, submitter, translator, svcOpts...)

	r := signup.Router(signup.RouterOptions{
		Signup: svc,
		Middlewares: []func(http.Handler) http.Handler{
			requestid.Middleware,
			clientip.Middleware(clientip.NewResolver(cfg.TrustedHeaders...)),
			environment.Middleware(env),
			i18n.Middleware(translator),
		},
	})
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if len(catalog.Countries()) == 0 {
			return errors.New("location catalog is empty")
		}
		return nil
	}))

	log.InfoContext(ctx, "starting regform",
		slog.String("addr", cfg.HTTP.Addr),
		slog.Int("countries", len(catalog.Countries())),
		slog.Any("languages", translator.SupportedLanguages()),
	)

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

// loadCatalog reads the YAML catalog at path, or returns the built-in one
// when path is empty.
func loadCatalog(ctx context.Context, path string) (*location.Catalog, error) {
	if path == "" {
		return location.Default(), nil
	}
	return location.LoadFile(ctx, path)
}

// newSink logs accepted registrations and, when WEBHOOK_URL is set, posts
// them to the webhook first. A failed delivery fails the submission so the
// client is asked to retry.
func newSink(cfg appConfig, log *slog.Logger) (registration.Sink, error) {
	logSink := registration.LogSink{Logger: log}
	if cfg.WebhookURL == "" {
		return logSink, nil
	}

	opts := []webhook.Option{webhook.WithMaxRetries(cfg.WebhookRetries)}
	if cfg.WebhookSecret != "" {
		opts = append(opts, webhook.WithSecret(cfg.WebhookSecret))
	}
	sender, err := webhook.NewSender(cfg.WebhookURL, opts...)
	if err != nil {
		return nil, err
	}

	return registration.SinkFunc(func(ctx context.Context, sub registration.Submission) error {
		if err := sender.Send(ctx, "registration.accepted", sub); err != nil {
			return err
		}
		return logSink.Store(ctx, sub)
	}), nil
}
