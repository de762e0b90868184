package domain_test

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/modules/records/domain"
	apperrors "fintrack/internal/platform/errors"
)

func TestParseKind(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"expense", "saving", "investment"} {
		if _, err := domain.ParseKind(s); err != nil {
			t.Fatalf("ParseKind(%q): %v", s, err)
		}
	}
	if _, err := domain.ParseKind("incomes"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestKindRoutes(t *testing.T) {
	t.Parallel()
	routes := map[domain.Kind]string{
		domain.KindExpense:    "expenses",
		domain.KindSaving:     "savings",
		domain.KindInvestment: "investments",
	}
	for kind, want := range routes {
		if got := kind.Route(); got != want {
			t.Fatalf("Route(%s) = %q, want %q", kind, got, want)
		}
	}
}

func TestLowerIsBetterOnlyForExpenses(t *testing.T) {
	t.Parallel()
	if !domain.KindExpense.LowerIsBetter() {
		t.Fatal("expense should be lower-is-better")
	}
	if domain.KindSaving.LowerIsBetter() || domain.KindInvestment.LowerIsBetter() {
		t.Fatal("saving and investment should be higher-is-better")
	}
}

func TestRecordValidateRejectsForeignCategory(t *testing.T) {
	t.Parallel()
	record := domain.Record{
		Kind:     domain.KindSaving,
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:   100,
		Category: "vivienda", // expense category on a saving record
	}
	if err := record.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	record.Category = "jubilacion"
	if err := record.Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
}

func TestRecentFirstOrdersAndCaps(t *testing.T) {
	t.Parallel()
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	records := []domain.Record{
		{ID: 1, Date: day(2)},
		{ID: 2, Date: day(20)},
		{ID: 3, Date: day(11)},
		{ID: 4, Date: day(5)},
	}

	got := domain.RecentFirst(records, 3)
	wantIDs := []int64{2, 3, 4}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d records, want %d", len(got), len(wantIDs))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Fatalf("position %d: got id %d, want %d", i, got[i].ID, want)
		}
	}
	if records[0].ID != 1 {
		t.Fatal("input slice was reordered")
	}
}

func TestParseImportType(t *testing.T) {
	t.Parallel()
	for _, it := range domain.ImportTypes() {
		if _, err := domain.ParseImportType(string(it)); err != nil {
			t.Fatalf("ParseImportType(%s): %v", it, err)
		}
	}
	if _, err := domain.ParseImportType("goals"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
