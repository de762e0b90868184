package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fintrack/internal/modules/records/domain"
	"fintrack/internal/modules/records/dto"
	"fintrack/internal/modules/records/service"
	apperrors "fintrack/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

type fakeAPI struct {
	records    []domain.Record
	created    []domain.Record
	updated    []domain.Record
	deleted    []int64
	incomes    []domain.Income
	importType domain.ImportType
	importName string
	listStart  time.Time
	listEnd    time.Time
	err        error
}

func (f *fakeAPI) List(_ context.Context, kind domain.Kind, start, end time.Time) ([]domain.Record, error) {
	f.listStart, f.listEnd = start, end
	return f.records, f.err
}

func (f *fakeAPI) Create(_ context.Context, record domain.Record) error {
	f.created = append(f.created, record)
	return f.err
}

func (f *fakeAPI) Update(_ context.Context, record domain.Record) error {
	f.updated = append(f.updated, record)
	return f.err
}

func (f *fakeAPI) Delete(_ context.Context, _ domain.Kind, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeAPI) CreateIncome(_ context.Context, income domain.Income) error {
	f.incomes = append(f.incomes, income)
	return f.err
}

func (f *fakeAPI) ImportCSV(_ context.Context, dataType domain.ImportType, filename string, file io.Reader) (domain.ImportReport, error) {
	f.importType = dataType
	f.importName = filename
	if _, err := io.ReadAll(file); err != nil {
		return domain.ImportReport{}, err
	}
	return domain.ImportReport{Imported: 3, Failed: 1}, f.err
}

func newInteractor(api *fakeAPI, now time.Time) *Interactor {
	svc := service.NewRecordService(fakeClock{now: now}, api)
	return &Interactor{svc: svc}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddValidatesCategoryAgainstKind(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	uc := newInteractor(api, date(2024, time.March, 10))

	err := uc.Add(context.Background(), dto.AddRecordInput{
		Kind:     "saving",
		Date:     date(2024, time.March, 5),
		Amount:   100,
		Category: "vivienda", // expense category, not a saving one
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Add() error = %v, want ErrInvalidInput", err)
	}
	if len(api.created) != 0 {
		t.Fatalf("invalid record reached the API: %+v", api.created)
	}
}

func TestAddRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	uc := newInteractor(&fakeAPI{}, date(2024, time.March, 10))
	err := uc.Add(context.Background(), dto.AddRecordInput{
		Kind:     "expense",
		Date:     date(2024, time.March, 5),
		Amount:   0,
		Category: "vivienda",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Add() error = %v, want ErrInvalidInput", err)
	}
}

func TestAddUnknownKind(t *testing.T) {
	t.Parallel()

	uc := newInteractor(&fakeAPI{}, date(2024, time.March, 10))
	err := uc.Add(context.Background(), dto.AddRecordInput{Kind: "loan"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Add() error = %v, want ErrInvalidInput", err)
	}
}

func TestRecentQueriesCurrentMonthNewestFirst(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{records: []domain.Record{
		{ID: 1, Kind: domain.KindExpense, Date: date(2024, time.March, 2), Amount: 10, Category: "otros"},
		{ID: 2, Kind: domain.KindExpense, Date: date(2024, time.March, 9), Amount: 20, Category: "otros"},
		{ID: 3, Kind: domain.KindExpense, Date: date(2024, time.March, 5), Amount: 30, Category: "otros"},
		{ID: 4, Kind: domain.KindExpense, Date: date(2024, time.March, 1), Amount: 40, Category: "otros"},
		{ID: 5, Kind: domain.KindExpense, Date: date(2024, time.March, 8), Amount: 50, Category: "otros"},
		{ID: 6, Kind: domain.KindExpense, Date: date(2024, time.March, 3), Amount: 60, Category: "otros"},
	}}
	uc := newInteractor(api, time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC))

	got, err := uc.Recent(context.Background(), "expense")
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}

	if want := date(2024, time.March, 1); !api.listStart.Equal(want) {
		t.Fatalf("list start = %v, want %v", api.listStart, want)
	}
	if want := date(2024, time.March, 10); !api.listEnd.Equal(want) {
		t.Fatalf("list end = %v, want %v", api.listEnd, want)
	}

	if len(got) != 5 {
		t.Fatalf("Recent() returned %d records, want 5", len(got))
	}
	wantIDs := []int64{2, 5, 3, 6, 1}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("Recent()[%d].ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestUpdateRequiresID(t *testing.T) {
	t.Parallel()

	uc := newInteractor(&fakeAPI{}, date(2024, time.March, 10))
	err := uc.Update(context.Background(), dto.UpdateRecordInput{
		Kind:     "expense",
		Date:     date(2024, time.March, 5),
		Amount:   12,
		Category: "salud",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Update() error = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteForwardsID(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	uc := newInteractor(api, date(2024, time.March, 10))
	if err := uc.Delete(context.Background(), "investment", 42); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != 42 {
		t.Fatalf("deleted = %v, want [42]", api.deleted)
	}
}

func TestImportCSVRejectsNonCSVExtension(t *testing.T) {
	t.Parallel()

	uc := newInteractor(&fakeAPI{}, date(2024, time.March, 10))
	_, err := uc.ImportCSV(context.Background(), dto.ImportInput{
		DataType: "expenses",
		Path:     "gastos.xlsx",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("ImportCSV() error = %v, want ErrInvalidInput", err)
	}
}

func TestImportCSVRejectsUnknownDataType(t *testing.T) {
	t.Parallel()

	uc := newInteractor(&fakeAPI{}, date(2024, time.March, 10))
	_, err := uc.ImportCSV(context.Background(), dto.ImportInput{
		DataType: "receipts",
		Path:     "data.csv",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("ImportCSV() error = %v, want ErrInvalidInput", err)
	}
}

func TestImportCSVUploadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "gastos.csv")
	if err := os.WriteFile(path, []byte("date,amount,category\n2024-03-01,10,otros\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	api := &fakeAPI{}
	uc := newInteractor(api, date(2024, time.March, 10))

	out, err := uc.ImportCSV(context.Background(), dto.ImportInput{DataType: "expenses", Path: path})
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if api.importType != domain.ImportExpenses {
		t.Fatalf("data type = %q, want %q", api.importType, domain.ImportExpenses)
	}
	if api.importName != "gastos.csv" {
		t.Fatalf("filename = %q, want gastos.csv", api.importName)
	}
	if out.Imported != 3 || out.Failed != 1 {
		t.Fatalf("report = %+v, want {Imported:3 Failed:1}", out)
	}
}
