package scheduler

import (
	"context"
	"fmt"
	"sync"

	"scout/core/logger"

	"github.com/robfig/cron/v3"
)

// CronTask describes a scheduled job
type CronTask struct {
	Name        string
	Description string
	CronExpr    string
	Handler     func(ctx context.Context) error
	Enabled     bool
}

// CronScheduler registers and runs cron tasks
type CronScheduler struct {
	cron   *cron.Cron
	logger logger.Logger

	mu    sync.Mutex
	tasks map[string]*CronTask
}

// NewCronScheduler creates a scheduler. Start must be called to begin execution
func NewCronScheduler(log logger.Logger) *CronScheduler {
	return &CronScheduler{
		cron:   cron.New(),
		logger: log,
		tasks:  make(map[string]*CronTask),
	}
}

// RegisterTask schedules the task according to its cron expression.
// Disabled tasks are recorded but never scheduled
func (s *CronScheduler) RegisterTask(task *CronTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.Name]; exists {
		return fmt.Errorf("task %q already registered", task.Name)
	}
	s.tasks[task.Name] = task

	if !task.Enabled {
		return nil
	}

	_, err := s.cron.AddFunc(task.CronExpr, func() {
		if err := task.Handler(context.Background()); err != nil {
			s.logger.Error("scheduled task failed",
				logger.String("task", task.Name),
				logger.String("error", err.Error()))
			return
		}
		s.logger.Debug("scheduled task completed", logger.String("task", task.Name))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule task %q: %w", task.Name, err)
	}

	return nil
}

// Start begins executing scheduled tasks in their own goroutine
func (s *CronScheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *CronScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
