package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/charlesng35/ayumi/internal/cache"
	"github.com/charlesng35/ayumi/internal/monitoring"
	"github.com/charlesng35/ayumi/pkg/logger"
)

// Job names reported to monitoring.
const (
	JobDashboardWarm = "dashboard_warm"
	JobCachePurge    = "cache_purge"
)

const (
	defaultWarmSpec  = "5 0 * * *"
	defaultPurgeSpec = "@hourly"
	defaultJobBudget = 2 * time.Minute
)

// Warmer queues generation for the current day when nothing is stored.
type Warmer interface {
	Warm(ctx context.Context) (bool, error)
}

// Scheduler runs housekeeping on cron schedules: warming the daily dashboard
// shortly after midnight and purging expired cache rows.
type Scheduler struct {
	warmer Warmer
	purger cache.Purger
	cron   *cron.Cron
	clock  clockwork.Clock
	loc    *time.Location
	budget time.Duration
	log    *zap.Logger

	warmSchedule  string
	purgeSchedule string
}

// Option customises the Scheduler.
type Option func(*Scheduler)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

// WithClock overrides the clock used to time job runs.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Scheduler) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocation evaluates cron specs in loc. The warm job should follow the
// timezone that defines day keys.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithWarmSchedule overrides the cron specification for dashboard warm-up.
func WithWarmSchedule(spec string) Option {
	return func(s *Scheduler) {
		if spec != "" {
			s.warmSchedule = spec
		}
	}
}

// WithPurgeSchedule overrides the cron specification for cache purging.
func WithPurgeSchedule(spec string) Option {
	return func(s *Scheduler) {
		if spec != "" {
			s.purgeSchedule = spec
		}
	}
}

// WithJobBudget bounds a single job run.
func WithJobBudget(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.budget = d
		}
	}
}

// NewScheduler constructs a Scheduler. A nil warmer or purger disables the
// corresponding job.
func NewScheduler(warmer Warmer, purger cache.Purger, opts ...Option) *Scheduler {
	s := &Scheduler{
		warmer:        warmer,
		purger:        purger,
		clock:         clockwork.NewRealClock(),
		loc:           time.UTC,
		budget:        defaultJobBudget,
		warmSchedule:  defaultWarmSpec,
		purgeSchedule: defaultPurgeSpec,
		log:           logger.WithModule("maintenance"),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cron == nil {
		s.cron = cron.New(cron.WithLocation(s.loc), cron.WithLogger(cron.DiscardLogger))
	}
	return s
}

// Start registers the enabled jobs and launches the cron scheduler.
func (s *Scheduler) Start() error {
	if s.warmer == nil && s.purger == nil {
		return nil
	}

	if s.warmer != nil {
		if _, err := s.cron.AddFunc(s.warmSchedule, func() { _ = s.run(JobDashboardWarm, s.warm) }); err != nil {
			return fmt.Errorf("maintenance: warm schedule %q: %w", s.warmSchedule, err)
		}
	}
	if s.purger != nil {
		if _, err := s.cron.AddFunc(s.purgeSchedule, func() { _ = s.run(JobCachePurge, s.purge) }); err != nil {
			return fmt.Errorf("maintenance: purge schedule %q: %w", s.purgeSchedule, err)
		}
	}

	s.cron.Start()
	return nil
}

// Stop halts the scheduler. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	if s.cron == nil {
		return context.Background()
	}
	return s.cron.Stop()
}

// RunOnce executes every enabled job in sequence and returns the combined errors.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var errs error
	if s.warmer != nil {
		errs = multierr.Append(errs, s.runWith(ctx, JobDashboardWarm, s.warm))
	}
	if s.purger != nil {
		errs = multierr.Append(errs, s.runWith(ctx, JobCachePurge, s.purge))
	}
	return errs
}

func (s *Scheduler) run(job string, fn func(context.Context) error) error {
	return s.runWith(context.Background(), job, fn)
}

func (s *Scheduler) runWith(ctx context.Context, job string, fn func(context.Context) error) (err error) {
	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	started := s.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("maintenance: %s panicked: %v", job, r)
		}
		elapsed := s.clock.Since(started)
		if err != nil {
			s.log.Warn("maintenance job failed", zap.String("job", job), zap.Duration("elapsed", elapsed), zap.Error(err))
			monitoring.RecordMaintenanceRun(job, "failure", err.Error(), elapsed)
			return
		}
		monitoring.RecordMaintenanceRun(job, "success", "", elapsed)
	}()

	return fn(ctx)
}

func (s *Scheduler) warm(ctx context.Context) error {
	queued, err := s.warmer.Warm(ctx)
	if err != nil {
		return fmt.Errorf("warm dashboard: %w", err)
	}
	if queued {
		s.log.Info("queued daily dashboard generation")
	}
	return nil
}

func (s *Scheduler) purge(ctx context.Context) error {
	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	if removed > 0 {
		s.log.Debug("purged expired cache entries", zap.Int64("removed", removed))
	}
	return nil
}

// Enabled reports whether any job is configured.
func (s *Scheduler) Enabled() bool {
	return s.warmer != nil || s.purger != nil
}
