package in

import (
	"context"
	"fmt"
	"time"

	recordsdto "fintrack/internal/modules/records/dto"
	recordsin "fintrack/internal/modules/records/port/in"
	apperrors "fintrack/internal/platform/errors"
)

// CLIHandler adapts the record usecase for the command surface. Dates arrive
// as flag strings and are parsed here.
type CLIHandler struct {
	usecase recordsin.Usecase
}

func NewCLIHandler(usecase recordsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, kind, date string, amount float64, category string) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	return h.usecase.Add(ctx, recordsdto.AddRecordInput{
		Kind:     kind,
		Date:     d,
		Amount:   amount,
		Category: category,
	})
}

func (h CLIHandler) AddIncome(ctx context.Context, date string, amount float64) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	return h.usecase.AddIncome(ctx, recordsdto.AddIncomeInput{Date: d, Amount: amount})
}

func (h CLIHandler) List(ctx context.Context, kind, start, end string) ([]recordsdto.RecordOutput, error) {
	from, err := parseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(end)
	if err != nil {
		return nil, err
	}
	return h.usecase.List(ctx, recordsdto.ListInput{Kind: kind, Start: from, End: to})
}

func (h CLIHandler) Update(ctx context.Context, kind string, id int64, date string, amount float64, category string) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	return h.usecase.Update(ctx, recordsdto.UpdateRecordInput{
		Kind:     kind,
		ID:       id,
		Date:     d,
		Amount:   amount,
		Category: category,
	})
}

func (h CLIHandler) Delete(ctx context.Context, kind string, id int64) error {
	return h.usecase.Delete(ctx, kind, id)
}

func (h CLIHandler) ImportCSV(ctx context.Context, dataType, path string) (recordsdto.ImportOutput, error) {
	return h.usecase.ImportCSV(ctx, recordsdto.ImportInput{DataType: dataType, Path: path})
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q, se espera AAAA-MM-DD", apperrors.ErrInvalidInput, s)
	}
	return t, nil
}
