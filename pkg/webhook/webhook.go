package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is the JSON body of every delivery.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	Data      any       `json:"data"`
}

// Sender posts events to one endpoint, retrying temporary failures with
// exponential backoff.
type Sender struct {
	url          string
	client       *http.Client
	secret       string
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	timeout      time.Duration
	headers      map[string]string
	now          func() time.Time
}

// NewSender validates endpoint and applies opts. Only http and https URLs
// with a host are accepted.
func NewSender(endpoint string, opts ...Option) (*Sender, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, endpoint)
	}

	s := &Sender{
		url:          endpoint,
		client:       &http.Client{},
		maxRetries:   3,
		initialDelay: 500 * time.Millisecond,
		maxDelay:     10 * time.Second,
		timeout:      10 * time.Second,
		headers:      make(map[string]string),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send delivers data as an event of the given type. It returns nil on a 2xx
// answer, an error wrapping ErrPermanentFailure for 4xx answers other than
// 408, 425 and 429, and an error wrapping ErrDeliveryFailed once retries
// are exhausted.
func (s *Sender) Send(ctx context.Context, eventType string, data any) error {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		CreatedAt: s.now().UTC(),
		Data:      data,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(s.backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(ErrDeliveryFailed, ctx.Err())
			case <-timer.C:
			}
		}

		status, err := s.deliver(ctx, event.ID, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if permanent(status) {
			return errors.Join(ErrPermanentFailure, err)
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrDeliveryFailed, s.maxRetries+1, lastErr)
}

// backoff doubles the initial delay per attempt, capped at maxDelay.
func (s *Sender) backoff(attempt int) time.Duration {
	d := s.initialDelay
	for i := 1; i < attempt && d < s.maxDelay; i++ {
		d *= 2
	}
	return min(d, s.maxDelay)
}

func (s *Sender) deliver(ctx context.Context, id string, payload []byte) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "regform-webhook/1.0")
	req.Header.Set(HeaderID, id)
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	if s.secret != "" {
		ts := s.now().Unix()
		sig, err := Sign(s.secret, ts, payload)
		if err != nil {
			return 0, err
		}
		req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(HeaderSignature, sig)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.ReplaceAll(strings.TrimSpace(string(body)), "\n", " ")
	return resp.StatusCode, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, msg)
}

func permanent(status int) bool {
	if status < 400 || status >= 500 {
		return false
	}
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	}
	return true
}
