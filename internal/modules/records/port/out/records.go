package out

import (
	"context"
	"io"
	"time"

	"fintrack/internal/modules/records/domain"
)

type API interface {
	List(ctx context.Context, kind domain.Kind, start, end time.Time) ([]domain.Record, error)
	Create(ctx context.Context, record domain.Record) error
	Update(ctx context.Context, record domain.Record) error
	Delete(ctx context.Context, kind domain.Kind, id int64) error
	CreateIncome(ctx context.Context, income domain.Income) error
	ImportCSV(ctx context.Context, dataType domain.ImportType, filename string, file io.Reader) (domain.ImportReport, error)
}
