package in

import (
	"context"

	"fintrack/internal/modules/goals/dto"
)

type Usecase interface {
	// Current returns the percentage in effect per kind, zero when none is set.
	Current(ctx context.Context) (dto.GoalsOutput, error)
	// Set replaces one kind's percentage, validating the combined sum
	// against the other goals currently in effect.
	Set(ctx context.Context, kind string, value float64) error
	SaveAll(ctx context.Context, input dto.SaveAllInput) error
	Clear(ctx context.Context, kind string) error
}
