package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/internal/monitoring"
	"github.com/charlesng35/ayumi/pkg/logger"
)

// Source tells where a served payload came from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

const defaultLookupTimeout = 2 * time.Second

// Submitter accepts background generation work for a day key.
type Submitter interface {
	Submit(dayKey string) bool
}

// Result is a payload ready to send to a client.
type Result struct {
	DayKey  string
	Payload json.RawMessage
	Source  Source
}

// Service serves today's dashboard. It answers from storage when possible and
// otherwise returns fallback content while generation runs in the background.
type Service struct {
	repo          Repository
	submitter     Submitter
	clock         Clock
	loc           *time.Location
	lookupTimeout time.Duration
	log           *zap.Logger
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithClock overrides the service clock.
func WithClock(clock Clock) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocation sets the timezone that defines calendar days.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLookupTimeout bounds the storage read on the request path.
func WithLookupTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.lookupTimeout = timeout
		}
	}
}

// NewService constructs a Service.
func NewService(repo Repository, submitter Submitter, opts ...ServiceOption) (*Service, error) {
	if repo == nil {
		return nil, errors.New("dashboard service: repository is required")
	}
	if submitter == nil {
		return nil, errors.New("dashboard service: submitter is required")
	}

	svc := &Service{
		repo:          repo,
		submitter:     submitter,
		clock:         SystemClock(),
		loc:           time.UTC,
		lookupTimeout: defaultLookupTimeout,
		log:           logger.WithModule("dashboard"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Location returns the timezone used for day keys.
func (s *Service) Location() *time.Location {
	return s.loc
}

// CurrentDayKey returns today's key in the service timezone.
func (s *Service) CurrentDayKey() string {
	return DayKey(s.clock.Now(), s.loc)
}

// Today returns today's payload. It never fails: storage errors degrade to
// fallback content, and a miss schedules generation without waiting for it.
func (s *Service) Today(ctx context.Context) Result {
	now := s.clock.Now()
	dayKey := DayKey(now, s.loc)

	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	payload, found, err := s.repo.Find(lookupCtx, dayKey)
	cancel()

	switch {
	case err != nil:
		monitoring.RecordDashboardLookup("error")
		s.log.Warn("daily content lookup failed, serving fallback", zap.String("day_key", dayKey), zap.Error(err))
	case found:
		monitoring.RecordDashboardLookup(string(SourceCache))
		return Result{DayKey: dayKey, Payload: payload, Source: SourceCache}
	}
	monitoring.RecordDashboardLookup(string(SourceFallback))

	if s.submitter.Submit(dayKey) {
		s.log.Debug("scheduled daily content generation", zap.String("day_key", dayKey))
	}

	return Result{
		DayKey:  dayKey,
		Payload: FallbackPayload(now.In(s.loc)),
		Source:  SourceFallback,
	}
}

// Warm schedules generation for today when nothing is stored yet. It reports
// whether a job was queued.
func (s *Service) Warm(ctx context.Context) (bool, error) {
	dayKey := s.CurrentDayKey()

	found, err := s.Stored(ctx, dayKey)
	if err != nil || found {
		return false, err
	}
	return s.submitter.Submit(dayKey), nil
}

// Stored reports whether content for dayKey is already persisted.
func (s *Service) Stored(ctx context.Context, dayKey string) (bool, error) {
	_, found, err := s.repo.Find(ctx, dayKey)
	return found, err
}
