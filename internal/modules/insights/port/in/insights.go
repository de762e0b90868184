package in

import (
	"context"

	"fintrack/internal/modules/insights/dto"
)

type Usecase interface {
	// Overview resolves the current month's summary into KPI cards and
	// category distributions.
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	History(ctx context.Context, input dto.HistoryInput) (dto.SeriesOutput, error)
}
