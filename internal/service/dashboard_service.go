package service

import (
	"context"

	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// DashboardService exposes the aggregate counters. Counts are computed fresh
// on every call; nothing is cached.
type DashboardService struct {
	dashboards repository.DashboardRepository
}

// NewDashboardService builds the service.
func NewDashboardService(dashboards repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboards: dashboards}
}

// AdminSummary returns the organisation-wide counters.
func (s *DashboardService) AdminSummary(ctx context.Context) (*domain.AdminDashboard, error) {
	summary, err := s.dashboards.AdminSummary(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return summary, nil
}

// StaffSummary returns the caller's personal counters. AttendancePercentage
// is nil when no attendance rows exist yet.
func (s *DashboardService) StaffSummary(ctx context.Context, staffID int64) (*domain.StaffDashboard, error) {
	summary, err := s.dashboards.StaffSummary(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return summary, nil
}
