package dashboardController

import (
	"context"

	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
)

const (
	upcomingWindowDays = 7
	recentActivity     = 5
)

type DashboardController struct {
	locationRepo repositories.LocationRepository
	memberRepo   repositories.MemberRepository
	teamRepo     repositories.TeamRepository
	sessionRepo  repositories.SessionRepository
	services     controllers.Services
	log          logger.Logger
}

func New(
	locationRepo repositories.LocationRepository,
	memberRepo repositories.MemberRepository,
	teamRepo repositories.TeamRepository,
	sessionRepo repositories.SessionRepository,
	services controllers.Services,
) *DashboardController {
	return &DashboardController{
		locationRepo: locationRepo,
		memberRepo:   memberRepo,
		teamRepo:     teamRepo,
		sessionRepo:  sessionRepo,
		services:     services,
		log:          logger.New("DashboardController"),
	}
}

// Stats counts locations, active members, teams running today and the
// sessions of the next seven days.
func (dc *DashboardController) Stats(ctx context.Context) (DashboardStats, error) {
	log := dc.log.Function("Stats")
	today := dc.services.Today()

	var stats DashboardStats
	var err error

	if stats.TotalLocations, err = dc.locationRepo.Count(ctx); err != nil {
		return DashboardStats{}, log.Err("failed to count locations", err)
	}
	if stats.ActiveMembers, err = dc.memberRepo.CountActive(ctx); err != nil {
		return DashboardStats{}, log.Err("failed to count members", err)
	}
	if stats.ActiveTeams, err = dc.teamRepo.CountActive(ctx, today); err != nil {
		return DashboardStats{}, log.Err("failed to count teams", err)
	}
	if stats.UpcomingSessions, err = dc.sessionRepo.CountBetween(ctx, today, today.AddDays(upcomingWindowDays)); err != nil {
		return DashboardStats{}, log.Err("failed to count sessions", err)
	}

	return stats, nil
}

func (dc *DashboardController) RecentActivity(ctx context.Context) ([]Activity, error) {
	return dc.memberRepo.RecentRegistrations(ctx, recentActivity)
}
