package services

import (
	"time"

	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/repository"
)

type dashboardService struct {
	repos *repository.Repositories
}

func newDashboardService(repos *repository.Repositories) *dashboardService {
	return &dashboardService{repos: repos}
}

// Summary aggregates the status breakdowns, total escrowed trust balance,
// compliance items due in the next 30 days and the latest fit scores.
func (s *dashboardService) Summary() (*DashboardSummary, error) {
	spacsByStatus, err := s.repos.SPAC.CountByStatus()
	if err != nil {
		return nil, apperrors.DatabaseError("failed to count SPACs", err)
	}

	filingsByStatus, err := s.repos.Filing.CountByStatus()
	if err != nil {
		return nil, apperrors.DatabaseError("failed to count filings", err)
	}

	totalTrust, err := s.repos.Trust.TotalBalance()
	if err != nil {
		return nil, apperrors.DatabaseError("failed to total trust balances", err)
	}

	upcoming, err := s.repos.Compliance.GetDueBefore(time.Now().AddDate(0, 0, 30))
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list upcoming compliance items", err)
	}

	recentScores, err := s.repos.FitScore.GetRecent(10)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list recent fit scores", err)
	}

	return &DashboardSummary{
		SPACsByStatus:      spacsByStatus,
		FilingsByStatus:    filingsByStatus,
		TotalTrustBalance:  totalTrust,
		UpcomingCompliance: upcoming,
		RecentFitScores:    recentScores,
	}, nil
}
