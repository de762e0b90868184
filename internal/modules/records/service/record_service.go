package service

import (
	"context"
	"io"
	"time"

	"fintrack/internal/modules/records/domain"
	recordsout "fintrack/internal/modules/records/port/out"
	"fintrack/internal/platform/clock"
)

// recentLimit caps the per-kind tables on the overview.
const recentLimit = 5

type RecordService struct {
	clock clock.Clock
	api   recordsout.API
}

func NewRecordService(clk clock.Clock, api recordsout.API) *RecordService {
	return &RecordService{clock: clk, api: api}
}

func (s *RecordService) Add(ctx context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	return s.api.Create(ctx, record)
}

func (s *RecordService) AddIncome(ctx context.Context, income domain.Income) error {
	if err := income.Validate(); err != nil {
		return err
	}
	return s.api.CreateIncome(ctx, income)
}

func (s *RecordService) List(ctx context.Context, kind domain.Kind, start, end time.Time) ([]domain.Record, error) {
	return s.api.List(ctx, kind, start, end)
}

// Recent fetches the running month and keeps the newest entries.
func (s *RecordService) Recent(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	today := clock.Today(s.clock)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	records, err := s.api.List(ctx, kind, monthStart, today)
	if err != nil {
		return nil, err
	}
	return domain.RecentFirst(records, recentLimit), nil
}

func (s *RecordService) Update(ctx context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	return s.api.Update(ctx, record)
}

func (s *RecordService) Delete(ctx context.Context, kind domain.Kind, id int64) error {
	return s.api.Delete(ctx, kind, id)
}

func (s *RecordService) ImportCSV(ctx context.Context, dataType domain.ImportType, filename string, file io.Reader) (domain.ImportReport, error) {
	return s.api.ImportCSV(ctx, dataType, filename, file)
}
