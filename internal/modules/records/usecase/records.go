package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fintrack/internal/modules/records/domain"
	"fintrack/internal/modules/records/dto"
	recordsin "fintrack/internal/modules/records/port/in"
	"fintrack/internal/modules/records/service"
	apperrors "fintrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) recordsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddRecordInput) error {
	kind, err := domain.ParseKind(input.Kind)
	if err != nil {
		return err
	}
	return i.svc.Add(ctx, domain.Record{
		Kind:     kind,
		Date:     input.Date,
		Amount:   input.Amount,
		Category: input.Category,
	})
}

func (i *Interactor) AddIncome(ctx context.Context, input dto.AddIncomeInput) error {
	return i.svc.AddIncome(ctx, domain.Income{Date: input.Date, Amount: input.Amount})
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.RecordOutput, error) {
	kind, err := domain.ParseKind(input.Kind)
	if err != nil {
		return nil, err
	}
	records, err := i.svc.List(ctx, kind, input.Start, input.End)
	if err != nil {
		return nil, err
	}
	return toOutputs(records), nil
}

func (i *Interactor) Recent(ctx context.Context, kindName string) ([]dto.RecordOutput, error) {
	kind, err := domain.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	records, err := i.svc.Recent(ctx, kind)
	if err != nil {
		return nil, err
	}
	return toOutputs(records), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateRecordInput) error {
	kind, err := domain.ParseKind(input.Kind)
	if err != nil {
		return err
	}
	if input.ID <= 0 {
		return fmt.Errorf("%w: record id is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Update(ctx, domain.Record{
		ID:       input.ID,
		Kind:     kind,
		Date:     input.Date,
		Amount:   input.Amount,
		Category: input.Category,
	})
}

func (i *Interactor) Delete(ctx context.Context, kindName string, id int64) error {
	kind, err := domain.ParseKind(kindName)
	if err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: record id is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Delete(ctx, kind, id)
}

func (i *Interactor) ImportCSV(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	dataType, err := domain.ParseImportType(input.DataType)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	if !strings.EqualFold(filepath.Ext(input.Path), ".csv") {
		return dto.ImportOutput{}, fmt.Errorf("%w: el archivo debe ser de tipo CSV", apperrors.ErrInvalidInput)
	}
	f, err := os.Open(input.Path)
	if err != nil {
		return dto.ImportOutput{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	report, err := i.svc.ImportCSV(ctx, dataType, filepath.Base(input.Path), f)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{Imported: report.Imported, Failed: report.Failed}, nil
}

func toOutputs(records []domain.Record) []dto.RecordOutput {
	out := make([]dto.RecordOutput, len(records))
	for i, r := range records {
		out[i] = dto.RecordOutput{
			ID:       r.ID,
			Kind:     string(r.Kind),
			Date:     r.Date,
			Amount:   r.Amount,
			Category: r.Category,
		}
	}
	return out
}
