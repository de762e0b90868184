package out

import (
	"context"
	"time"

	"fintrack/internal/modules/insights/domain"
)

type API interface {
	MonthlySummary(ctx context.Context, year int, month time.Month) (domain.MonthlySummary, error)
	HistoricalData(ctx context.Context, seriesType domain.SeriesType, start, end time.Time) ([]domain.Point, error)
}
