package registration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// SuccessMessage is shown once a registration has been accepted.
const SuccessMessage = "Registration Successful! Your profile has been submitted successfully."

// RetryMessage is shown when an accepted form could not be stored.
const RetryMessage = "An error occurred during registration. Please try again."

// DefaultSubmitDelay is the pause before a submission is handed to the sink.
const DefaultSubmitDelay = 2 * time.Second

// bcryptMaxInput is the longest password bcrypt accepts.
const bcryptMaxInput = 72

// Submission is what a Sink receives for an accepted form. It never contains
// the plain-text password.
type Submission struct {
	ID               uuid.UUID                  `json:"id"`
	SubmittedAt      time.Time                  `json:"submittedAt"`
	Profile          Record                     `json:"profile"`
	PasswordHash     []byte                     `json:"-"`
	PasswordStrength validator.PasswordStrength `json:"passwordStrength"`
}

// Receipt confirms an accepted registration.
type Receipt struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Message     string    `json:"message"`
}

// Sink stores accepted submissions.
type Sink interface {
	Store(ctx context.Context, s Submission) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, s Submission) error

func (f SinkFunc) Store(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// LogSink writes accepted submissions to a logger.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Store(ctx context.Context, sub Submission) error {
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}
	log.InfoContext(ctx, "registration accepted",
		logger.SubmissionID(sub.ID.String()),
		logger.Country(sub.Profile.Get(Country)),
		slog.String("state", sub.Profile.Get(State)),
		slog.String("city", sub.Profile.Get(City)),
		slog.String("password_strength", string(sub.PasswordStrength)),
	)
	return nil
}

// Submitter runs the submit flow: validate, wait, hash, store.
type Submitter struct {
	validator  *Validator
	sink       Sink
	delay      time.Duration
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time
}

// SubmitOption configures a Submitter.
type SubmitOption func(*Submitter)

// WithSink sets where accepted submissions go. Defaults to LogSink.
func WithSink(sink Sink) SubmitOption {
	return func(s *Submitter) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithDelay sets the pause before storing. Zero disables it.
func WithDelay(d time.Duration) SubmitOption {
	return func(s *Submitter) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithBcryptCost sets the bcrypt cost used for password hashes.
func WithBcryptCost(cost int) SubmitOption {
	return func(s *Submitter) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

func WithLogger(l *slog.Logger) SubmitOption {
	return func(s *Submitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source for submission timestamps.
func WithClock(now func() time.Time) SubmitOption {
	return func(s *Submitter) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSubmitter creates a Submitter backed by v. A nil v uses New().
func NewSubmitter(v *Validator, opts ...SubmitOption) *Submitter {
	if v == nil {
		v = New()
	}
	s := &Submitter{
		validator:  v,
		delay:      DefaultSubmitDelay,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sink == nil {
		s.sink = LogSink{Logger: s.logger}
	}
	return s
}

// Submit validates the whole form and, if it passes, stores it.
//
// A record that fails validation yields a *FormError wrapping
// ErrInvalidForm. Cancelling ctx during the delay yields
// ErrSubmissionCancelled joined with ctx.Err(). A failing sink or hash
// yields ErrSubmissionFailed.
func (s *Submitter) Submit(ctx context.Context, record Record) (*Receipt, error) {
	record = Complete(Normalize(record))

	result := s.validator.ValidateForm(record)
	if !result.Valid {
		s.logger.DebugContext(ctx, "registration rejected", logger.Fields(fieldNames(result)...))
		return nil, &FormError{Result: result}
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	hash, err := hashPassword(record.Get(Password), s.bcryptCost)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", logger.Error(err))
		return nil, errors.Join(ErrSubmissionFailed, err)
	}

	sub := Submission{
		ID:               uuid.New(),
		SubmittedAt:      s.now().UTC(),
		Profile:          profile(record),
		PasswordHash:     hash,
		PasswordStrength: s.validator.Strength(record.Get(Password)),
	}

	if err := s.sink.Store(ctx, sub); err != nil {
		s.logger.ErrorContext(ctx, "failed to store registration",
			logger.SubmissionID(sub.ID.String()),
			logger.Error(err),
		)
		return nil, errors.Join(ErrSubmissionFailed, err)
	}

	return &Receipt{
		ID:          sub.ID,
		SubmittedAt: sub.SubmittedAt,
		Message:     SuccessMessage,
	}, nil
}

func (s *Submitter) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrSubmissionCancelled, err)
	}
	if s.delay == 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Join(ErrSubmissionCancelled, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// hashPassword hashes with bcrypt. Passwords longer than bcrypt's 72-byte
// limit are reduced to their hex SHA-256 digest first.
func hashPassword(password string, cost int) ([]byte, error) {
	input := []byte(password)
	if len(input) > bcryptMaxInput {
		sum := sha256.Sum256(input)
		input = []byte(hex.EncodeToString(sum[:]))
	}
	return bcrypt.GenerateFromPassword(input, cost)
}

// ComparePassword reports whether password matches a hash stored by Submit.
func ComparePassword(hash []byte, password string) bool {
	input := []byte(password)
	if len(input) > bcryptMaxInput {
		sum := sha256.Sum256(input)
		input = []byte(hex.EncodeToString(sum[:]))
	}
	return bcrypt.CompareHashAndPassword(hash, input) == nil
}

// profile drops the password fields from record.
func profile(record Record) Record {
	out := record.Clone()
	delete(out, Password)
	delete(out, ConfirmPassword)
	return out
}

func fieldNames(result FormResult) []string {
	names := make([]string, 0, len(result.Errors))
	for _, field := range Fields {
		if _, ok := result.Errors[field]; ok {
			names = append(names, string(field))
		}
	}
	return names
}
