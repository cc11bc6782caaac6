// internal/service/scheduling/scheduler.go

package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"clipforge/internal/config"
	"clipforge/internal/domain/content"
	"clipforge/internal/domain/platform"
	"clipforge/internal/domain/trend"
	"clipforge/internal/notify"
)

// Job names accepted by RunJob and wired to cron expressions.
const (
	JobTrendDiscovery    = "trendDiscovery"
	JobContentGeneration = "contentGeneration"
	JobContentPosting    = "contentPosting"
)

// Pipeline is the slice of the pipeline service the scheduler drives.
type Pipeline interface {
	GenerateCompleteContent(ctx context.Context, opts content.GenerateOptions) (*content.Artifact, error)
	PublishContent(ctx context.Context, artifact *content.Artifact, platforms []string) ([]platform.PublishResult, error)
}

// Discoverer is the slice of the discovery service the scheduler drives.
type Discoverer interface {
	TrendingTopicsForNiche(ctx context.Context, niche string) ([]trend.Record, error)
}

// RunSummary reports one job execution.
type RunSummary struct {
	Job        string    `json:"job"`
	StartedAt  time.Time `json:"startedAt"`
	DurationMS int64     `json:"durationMs"`
	Success    bool      `json:"success"`
	Detail     string    `json:"detail,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// JobStatus is the per-job view exposed on the jobs API.
type JobStatus struct {
	Name      string     `json:"name"`
	Schedule  string     `json:"schedule"`
	Running   bool       `json:"running"`
	Runs      int        `json:"runs"`
	LastRun   *time.Time `json:"lastRun,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}

type job struct {
	name     string
	schedule string
	run      func(ctx context.Context) (string, error)

	mu        sync.Mutex
	running   bool
	runs      int
	lastRun   time.Time
	lastError string
}

// Scheduler owns the cron entries, the job table, and the in-memory state.
// All execution paths (cron tick, manual trigger) funnel through a
// singleflight group keyed by job name, so an overlapping trigger joins the
// in-flight run instead of double-running it.
type Scheduler struct {
	cron      *cron.Cron
	group     singleflight.Group
	jobs      map[string]*job
	order     []string
	state     *State
	pipeline  Pipeline
	discovery Discoverer
	bus       *notify.Bus
	cfg       config.SchedulerConfig
	niche     string
	logger    *zap.Logger

	mu      sync.Mutex
	started bool
}

// New creates the scheduler and registers the three jobs.
func New(pipeline Pipeline, discovery Discoverer, state *State, bus *notify.Bus, cfg config.SchedulerConfig, contentCfg config.ContentConfig, logger *zap.Logger) *Scheduler {
	s := &Scheduler{
		cron:      cron.New(),
		jobs:      make(map[string]*job),
		state:     state,
		pipeline:  pipeline,
		discovery: discovery,
		bus:       bus,
		cfg:       cfg,
		niche:     contentCfg.DefaultNiche,
		logger:    logger,
	}

	s.register(JobTrendDiscovery, cfg.TrendDiscoveryCron, s.runTrendDiscovery)
	s.register(JobContentGeneration, cfg.ContentGenerationCron, s.runContentGeneration)
	s.register(JobContentPosting, cfg.ContentPostingCron, s.runContentPosting)

	return s
}

func (s *Scheduler) register(name, schedule string, run func(ctx context.Context) (string, error)) {
	s.jobs[name] = &job{name: name, schedule: schedule, run: run}
	s.order = append(s.order, name)
}

// Start schedules the cron entries. Returns an error for an unparseable
// expression; scheduled-run failures afterwards are logged, never fatal.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	for _, name := range s.order {
		j := s.jobs[name]
		name := name
		if _, err := s.cron.AddFunc(j.schedule, func() {
			summary := s.execute(context.Background(), name)
			if summary.Error != "" {
				s.logger.Error("scheduled job failed",
					zap.String("job", name),
					zap.String("error", summary.Error))
			}
		}); err != nil {
			return fmt.Errorf("scheduling %s (%q): %w", name, j.schedule, err)
		}
	}

	s.cron.Start()
	s.started = true
	s.logger.Info("scheduler started", zap.Strings("jobs", s.order))
	return nil
}

// Stop halts the cron loop and waits for in-flight jobs up to the context
// deadline.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil
	}
	s.started = false

	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Running reports whether the cron loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// RunJob triggers a job by name and waits for its summary. Unknown names
// fail with a NotFoundError naming the job.
func (s *Scheduler) RunJob(ctx context.Context, name string) (RunSummary, error) {
	if _, ok := s.jobs[name]; !ok {
		return RunSummary{}, content.NewNotFoundError("unknown job %q (want %s, %s, or %s)",
			name, JobTrendDiscovery, JobContentGeneration, JobContentPosting)
	}
	return s.execute(ctx, name), nil
}

// Status returns every job's status in registration order.
func (s *Scheduler) Status() []JobStatus {
	statuses := make([]JobStatus, 0, len(s.order))
	for _, name := range s.order {
		j := s.jobs[name]
		j.mu.Lock()
		status := JobStatus{
			Name:      j.name,
			Schedule:  j.schedule,
			Running:   j.running,
			Runs:      j.runs,
			LastError: j.lastError,
		}
		if !j.lastRun.IsZero() {
			t := j.lastRun
			status.LastRun = &t
		}
		j.mu.Unlock()
		statuses = append(statuses, status)
	}
	return statuses
}

// execute runs a job through the singleflight group and records its
// outcome. Concurrent callers of the same job share one execution and one
// summary.
func (s *Scheduler) execute(ctx context.Context, name string) RunSummary {
	result, _, _ := s.group.Do(name, func() (interface{}, error) {
		j := s.jobs[name]

		j.mu.Lock()
		j.running = true
		j.mu.Unlock()

		started := time.Now()
		s.bus.Publish(notify.SubjectJobStarted, map[string]string{"job": name})

		detail, err := j.run(ctx)

		summary := RunSummary{
			Job:        name,
			StartedAt:  started.UTC(),
			DurationMS: time.Since(started).Milliseconds(),
			Success:    err == nil,
			Detail:     detail,
		}
		if err != nil {
			summary.Error = err.Error()
		}

		j.mu.Lock()
		j.running = false
		j.runs++
		j.lastRun = started.UTC()
		j.lastError = summary.Error
		j.mu.Unlock()

		s.bus.Publish(notify.SubjectJobFinished, summary)
		return summary, nil
	})

	return result.(RunSummary)
}

func (s *Scheduler) runTrendDiscovery(ctx context.Context) (string, error) {
	records, err := s.discovery.TrendingTopicsForNiche(ctx, s.niche)
	if err != nil {
		return "", err
	}

	s.state.SetTrends(records)
	s.logger.Info("trend discovery completed",
		zap.String("niche", s.niche),
		zap.Int("records", len(records)))

	return fmt.Sprintf("cached %d trends for %s", len(records), s.niche), nil
}

func (s *Scheduler) runContentGeneration(ctx context.Context) (string, error) {
	artifact, err := s.pipeline.GenerateCompleteContent(ctx, content.GenerateOptions{
		Niche:     s.niche,
		Platforms: s.cfg.PostingPlatforms,
	})
	if err != nil {
		return "", err
	}

	s.state.AddArtifact(artifact)
	s.logger.Info("scheduled content generated",
		zap.String("id", artifact.ID),
		zap.String("topic", artifact.Topic))

	return fmt.Sprintf("generated artifact %s for topic %q", artifact.ID, artifact.Topic), nil
}

func (s *Scheduler) runContentPosting(ctx context.Context) (string, error) {
	artifact := s.state.Latest()
	if artifact == nil {
		return "no artifact available to post", nil
	}

	results, err := s.pipeline.PublishContent(ctx, artifact, s.cfg.PostingPlatforms)
	if err != nil {
		return "", err
	}

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	s.logger.Info("scheduled posting completed",
		zap.String("id", artifact.ID),
		zap.Int("succeeded", succeeded),
		zap.Int("attempted", len(results)))

	return fmt.Sprintf("published artifact %s to %d/%d platforms", artifact.ID, succeeded, len(results)), nil
}
