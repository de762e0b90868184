package in

import (
	"context"

	"fintrack/internal/modules/records/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddRecordInput) error
	AddIncome(ctx context.Context, input dto.AddIncomeInput) error
	List(ctx context.Context, input dto.ListInput) ([]dto.RecordOutput, error)
	// Recent returns the newest records of the current month, capped at
	// the overview table size.
	Recent(ctx context.Context, kind string) ([]dto.RecordOutput, error)
	Update(ctx context.Context, input dto.UpdateRecordInput) error
	Delete(ctx context.Context, kind string, id int64) error
	ImportCSV(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
}
