package service

import (
	"context"
	"fmt"

	"fintrack/internal/modules/insights/domain"
	insightsout "fintrack/internal/modules/insights/port/out"
	"fintrack/internal/platform/clock"
)

type InsightService struct {
	clock clock.Clock
	api   insightsout.API
}

func NewInsightService(clk clock.Clock, api insightsout.API) *InsightService {
	return &InsightService{clock: clk, api: api}
}

func (s *InsightService) Overview(ctx context.Context) (domain.Overview, error) {
	today := clock.Today(s.clock)
	summary, err := s.api.MonthlySummary(ctx, today.Year(), today.Month())
	if err != nil {
		return domain.Overview{}, fmt.Errorf("monthly summary: %w", err)
	}
	return domain.BuildOverview(summary), nil
}

func (s *InsightService) History(ctx context.Context, seriesType domain.SeriesType, period domain.Period) (domain.Series, error) {
	today := clock.Today(s.clock)
	points, err := s.api.HistoricalData(ctx, seriesType, period.Start(today), today)
	if err != nil {
		return domain.Series{}, fmt.Errorf("historical data: %w", err)
	}
	return domain.BuildSeries(seriesType, points), nil
}
