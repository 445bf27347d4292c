// Package scheduler runs the periodic prompt check behind `dockprompt watch`.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// ActivityRecorder records a day of user activity.
type ActivityRecorder interface {
	RecordActivity()
}

// PromptSource selects the prompt to show and applies its side effects.
type PromptSource interface {
	GetPromptType() model.PromptType
	EvaluatePromptEligibility() model.PromptEligibility
}

// DueFunc is called when a tick finds a prompt to show.
type DueFunc func(p model.PromptType, e model.PromptEligibility)

// Config holds the scheduler's dependencies.
type Config struct {
	// Schedule is a cron spec with a seconds field.
	Schedule string
	// SleepThreshold is the tick gap treated as the machine waking up.
	SleepThreshold time.Duration

	Activity ActivityRecorder
	Prompts  PromptSource
	OnDue    DueFunc
	Now      func() time.Time
}

// Scheduler manages the prompt check using cron.
type Scheduler struct {
	cron           *cron.Cron
	schedule       string
	sleepThreshold time.Duration
	activity       ActivityRecorder
	prompts        PromptSource
	onDue          DueFunc
	now            func() time.Time

	mu        sync.Mutex
	lastCheck time.Time
	ticks     int
}

// NewScheduler creates a new scheduler.
func NewScheduler(cfg Config) *Scheduler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.OnDue == nil {
		cfg.OnDue = func(model.PromptType, model.PromptEligibility) {}
	}
	return &Scheduler{
		cron:           cron.New(cron.WithSeconds()),
		schedule:       cfg.Schedule,
		sleepThreshold: cfg.SleepThreshold,
		activity:       cfg.Activity,
		prompts:        cfg.Prompts,
		onDue:          cfg.OnDue,
		now:            cfg.Now,
	}
}

// scheduleParser matches the parser behind cron.WithSeconds.
var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSchedule reports whether spec is a cron spec Start would accept.
func ValidateSchedule(spec string) error {
	if _, err := scheduleParser.Parse(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// Start schedules the prompt check and starts cron.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.lastCheck = s.now()
	s.mu.Unlock()

	if _, err := s.cron.AddFunc(s.schedule, s.Tick); err != nil {
		return fmt.Errorf("failed to add prompt check %q: %w", s.schedule, err)
	}
	s.cron.Start()

	logging.DebugLog("scheduler started", "schedule", s.schedule)
	return nil
}

// Stop stops cron and waits for a running check to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logging.DebugLog("scheduler stopped")
}

// Tick runs one prompt check. The first tick after a gap longer than the
// sleep threshold records activity but shows nothing. Tick may be called
// without Start for a one-off check.
func (s *Scheduler) Tick() {
	now := s.now()

	s.mu.Lock()
	var elapsed time.Duration
	if !s.lastCheck.IsZero() {
		elapsed = now.Sub(s.lastCheck)
	}
	s.lastCheck = now
	s.ticks++
	s.mu.Unlock()

	if s.activity != nil {
		s.activity.RecordActivity()
	}

	if s.sleepThreshold > 0 && elapsed > s.sleepThreshold {
		logging.DebugLog("skipping prompt check after sleep", "elapsed", elapsed.Round(time.Second).String())
		return
	}

	p := s.prompts.GetPromptType()
	if p == model.PromptNone {
		return
	}
	e := s.prompts.EvaluatePromptEligibility()
	logging.DebugLog("prompt due",
		logging.KeyPrompt, string(p),
		logging.KeyEligibility, string(e))
	s.onDue(p, e)
}

// Ticks returns how many checks have run.
func (s *Scheduler) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// NextRun returns the next scheduled check, or the zero time before Start.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	next := entries[0].Next
	for _, e := range entries[1:] {
		if e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}
