package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ProfileService validates that a reported profile exists.
type ProfileService interface {
	GetProfileByID(ctx context.Context, id int) (*domain.Profile, error)
}

type ReportUseCase struct {
	reportRepo     repository.ReportRepository
	profileService ProfileService
	logger         zerolog.Logger
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	profileService ProfileService,
	logger zerolog.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:     reportRepo,
		profileService: profileService,
		logger:         logger,
	}
}

type AddReportRequest struct {
	ProfileID int    `json:"profile_id" binding:"required"`
	Reason    string `json:"reason" binding:"required,max=500"`
}

// Add files a report; the reporter id always comes from the caller's claims,
// never from the body.
func (uc *ReportUseCase) Add(ctx context.Context, reportedByID int, req *AddReportRequest) (*domain.Report, error) {
	if _, err := uc.profileService.GetProfileByID(ctx, req.ProfileID); err != nil {
		return nil, err
	}
	report := &domain.Report{
		ProfileID:    req.ProfileID,
		ReportedByID: reportedByID,
		Reason:       req.Reason,
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

func (uc *ReportUseCase) GetByID(ctx context.Context, id int) (*domain.Report, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

// GetAll lists reports whose profile still exists. Reports pointing at
// deleted profiles are skipped and logged rather than failing the listing;
// this is the one place a not-found is swallowed on purpose.
func (uc *ReportUseCase) GetAll(ctx context.Context) ([]*domain.Report, error) {
	reports, err := uc.reportRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	valid := make([]*domain.Report, 0, len(reports))
	for _, report := range reports {
		if _, err := uc.profileService.GetProfileByID(ctx, report.ProfileID); err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				uc.logger.Warn().Int("report_id", report.ID).Int("profile_id", report.ProfileID).
					Msg("skipping report for deleted profile")
				continue
			}
			return nil, err
		}
		valid = append(valid, report)
	}
	return valid, nil
}

func (uc *ReportUseCase) DeleteByID(ctx context.Context, id int) error {
	return uc.reportRepo.Delete(ctx, id)
}
