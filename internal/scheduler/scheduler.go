// Package scheduler runs recurring scans in watch mode.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"tradescan/pkg/logger"
)

// Job is one schedulable unit of work.
type Job interface {
	Name() string
	Schedule() string // cron expression with seconds
	Run(ctx context.Context) error
}

// FuncJob adapts a closure into a Job.
type FuncJob struct {
	JobName string
	Cron    string
	Fn      func(ctx context.Context) error
}

func (f FuncJob) Name() string                  { return f.JobName }
func (f FuncJob) Schedule() string              { return f.Cron }
func (f FuncJob) Run(ctx context.Context) error { return f.Fn(ctx) }

// JobResult records one execution.
type JobResult struct {
	JobName  string        `json:"job_name"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
}

const historyLimit = 50

// Scheduler manages cron jobs and keeps a bounded execution history.
type Scheduler struct {
	cron    *cron.Cron
	logger  *logger.Logger
	mu      sync.RWMutex
	jobs    map[string]Job
	history map[string][]JobResult
}

// New creates a scheduler. Schedules use second-resolution cron expressions.
func New(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		logger:  log,
		jobs:    make(map[string]Job),
		history: make(map[string][]JobResult),
	}
}

// AddJob registers a job under its schedule.
func (s *Scheduler) AddJob(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already exists", name)
	}

	if _, err := s.cron.AddFunc(job.Schedule(), func() {
		s.runJob(job)
	}); err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.jobs[name] = job
	s.logger.WithFields(map[string]interface{}{
		"job":      name,
		"schedule": job.Schedule(),
	}).Info("Job added to scheduler")

	return nil
}

// Start begins firing schedules.
func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler")
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// RunNow fires a job immediately, outside its schedule.
func (s *Scheduler) RunNow(name string) error {
	s.mu.RLock()
	job, exists := s.jobs[name]
	s.mu.RUnlock()
	if !exists {
		return fmt.Errorf("job %s not found", name)
	}

	go s.runJob(job)
	return nil
}

// History returns the recorded executions for a job, oldest first.
func (s *Scheduler) History(name string) []JobResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]JobResult, len(s.history[name]))
	copy(out, s.history[name])
	return out
}

func (s *Scheduler) runJob(job Job) {
	name := job.Name()
	started := time.Now()
	s.logger.WithField("job", name).Info("Job started")

	err := job.Run(context.Background())

	result := JobResult{
		JobName:  name,
		Started:  started,
		Duration: time.Since(started),
		Success:  err == nil,
	}
	if err != nil {
		result.Error = err.Error()
	}

	s.mu.Lock()
	h := append(s.history[name], result)
	if len(h) > historyLimit {
		h = h[len(h)-historyLimit:]
	}
	s.history[name] = h
	s.mu.Unlock()

	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"job":      name,
			"duration": result.Duration,
			"error":    err.Error(),
		}).Error("Job failed")
		return
	}
	s.logger.WithFields(map[string]interface{}{
		"job":      name,
		"duration": result.Duration,
	}).Info("Job completed")
}
