package job

import (
	"context"
	"time"

	"github.com/gomatri/matrimony-backend/internal/usecase/profileview"
	"github.com/rs/zerolog"
)

// ViewPurgeJob removes profile views older than the retention window.
// It implements cron.Job.
type ViewPurgeJob struct {
	viewUseCase *profileview.ProfileViewUseCase
	retention   time.Duration
	logger      zerolog.Logger
}

func NewViewPurgeJob(
	viewUseCase *profileview.ProfileViewUseCase,
	retentionDays int,
	logger zerolog.Logger,
) *ViewPurgeJob {
	return &ViewPurgeJob{
		viewUseCase: viewUseCase,
		retention:   time.Duration(retentionDays) * 24 * time.Hour,
		logger:      logger,
	}
}

func (j *ViewPurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-j.retention)
	purged, err := j.viewUseCase.PurgeViewsOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error().Err(err).Int("purged", purged).Time("cutoff", cutoff).
			Msg("view purge finished with errors")
		return
	}
	j.logger.Info().Int("purged", purged).Time("cutoff", cutoff).Msg("view purge finished")
}
