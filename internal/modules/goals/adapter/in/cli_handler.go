package in

import (
	"context"

	goalsdto "fintrack/internal/modules/goals/dto"
	goalsin "fintrack/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (goalsdto.GoalsOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Set(ctx context.Context, kind string, value float64) error {
	return h.usecase.Set(ctx, kind, value)
}

func (h CLIHandler) Clear(ctx context.Context, kind string) error {
	return h.usecase.Clear(ctx, kind)
}
