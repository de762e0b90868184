package out

import (
	"context"
	"time"

	"fintrack/internal/modules/goals/domain"
	recdomain "fintrack/internal/modules/records/domain"
)

type API interface {
	Fetch(ctx context.Context, kind recdomain.Kind) ([]domain.Goal, error)
	Upsert(ctx context.Context, kind recdomain.Kind, date time.Time, value float64) error
	Clear(ctx context.Context, kind recdomain.Kind) error
}
