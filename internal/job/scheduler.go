package job

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler owns the cron engine and the registered background jobs.
type Scheduler struct {
	engine *cron.Cron
	logger zerolog.Logger
}

func NewScheduler(logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		engine: cron.New(),
		logger: logger,
	}
}

// Register adds a job under the given cron schedule (standard 5-field spec).
func (s *Scheduler) Register(schedule string, job cron.Job) error {
	_, err := s.engine.AddJob(schedule, job)
	return err
}

func (s *Scheduler) Start() {
	s.logger.Info().Msg("starting background scheduler")
	s.engine.Start()
}

// Stop halts scheduling; running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.logger.Info().Msg("stopping background scheduler")
	s.engine.Stop()
}
