package in

import (
	"context"

	insightsdto "fintrack/internal/modules/insights/dto"
	insightsin "fintrack/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) (insightsdto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) History(ctx context.Context, dataType, period string) (insightsdto.SeriesOutput, error) {
	return h.usecase.History(ctx, insightsdto.HistoryInput{DataType: dataType, Period: period})
}
