package service

import (
	"context"
	"log/slog"

	"rescueops/internal/domain"
	"rescueops/internal/metrics"
)

type statsService struct {
	reporter
	repo StatsRepository
}

func NewStatsService(repo StatsRepository, logger *slog.Logger, m *metrics.Metrics) StatsService {
	return &statsService{
		reporter: reporter{logger: logger.With(slog.String("component", "stats")), metrics: m},
		repo:     repo,
	}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.RequestStats, error) {
	const op = "stats.GetStats"

	counts, err := s.repo.CountByState(ctx)
	if err != nil {
		return nil, s.storageFailure(op, err)
	}

	nonPositive, err := s.repo.CountNonPositive(ctx)
	if err != nil {
		return nil, s.storageFailure(op, err)
	}

	stats := &domain.RequestStats{
		ByState:     make(map[string]int64, len(domain.AllStates)),
		NonPositive: nonPositive,
	}
	for _, st := range domain.AllStates {
		stats.ByState[st.String()] = counts[st]
		stats.Total += counts[st]
	}
	return stats, nil
}
