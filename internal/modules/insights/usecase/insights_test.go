package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/modules/insights/domain"
	"fintrack/internal/modules/insights/dto"
	"fintrack/internal/modules/insights/service"
	apperrors "fintrack/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

type fakeAPI struct {
	summary    domain.MonthlySummary
	points     []domain.Point
	gotYear    int
	gotMonth   time.Month
	gotType    domain.SeriesType
	gotStart   time.Time
	gotEnd     time.Time
	summaryErr error
	historyErr error
}

func (f *fakeAPI) MonthlySummary(_ context.Context, year int, month time.Month) (domain.MonthlySummary, error) {
	f.gotYear, f.gotMonth = year, month
	return f.summary, f.summaryErr
}

func (f *fakeAPI) HistoricalData(_ context.Context, seriesType domain.SeriesType, start, end time.Time) ([]domain.Point, error) {
	f.gotType, f.gotStart, f.gotEnd = seriesType, start, end
	return f.points, f.historyErr
}

func newInteractor(api *fakeAPI, now time.Time) *Interactor {
	return &Interactor{svc: service.NewInsightService(fakeClock{now: now}, api)}
}

func TestOverviewQueriesCurrentMonth(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{summary: domain.MonthlySummary{Income: 1000, Expenses: 250, ExpenseGoal: 30}}
	uc := newInteractor(api, time.Date(2024, time.November, 20, 10, 0, 0, 0, time.UTC))

	out, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if api.gotYear != 2024 || api.gotMonth != time.November {
		t.Fatalf("queried %d/%v, want 2024/November", api.gotYear, api.gotMonth)
	}
	if out.Income != 1000 {
		t.Fatalf("income = %v, want 1000", out.Income)
	}
	if out.KPIs[0].Current != 25 || out.KPIs[0].Status != "positive" {
		t.Fatalf("expense KPI = %+v", out.KPIs[0])
	}
}

func TestHistoryComputesWindowFromPeriod(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{points: []domain.Point{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Value: 100},
	}}
	uc := newInteractor(api, time.Date(2024, time.July, 15, 9, 0, 0, 0, time.UTC))

	out, err := uc.History(context.Background(), dto.HistoryInput{DataType: "expenses", Period: "6months"})
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC); !api.gotStart.Equal(want) {
		t.Fatalf("start = %v, want %v", api.gotStart, want)
	}
	if want := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC); !api.gotEnd.Equal(want) {
		t.Fatalf("end = %v, want %v", api.gotEnd, want)
	}
	if out.Title != "Gastos (Histórico)" {
		t.Fatalf("title = %q", out.Title)
	}
	if out.IsGoal {
		t.Fatal("expenses series should not be a goal series")
	}
	if out.Labels[0] != "ene 2024" {
		t.Fatalf("labels = %v", out.Labels)
	}
}

func TestHistoryRejectsUnknownInputs(t *testing.T) {
	t.Parallel()

	uc := newInteractor(&fakeAPI{}, time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC))

	if _, err := uc.History(context.Background(), dto.HistoryInput{DataType: "loans", Period: "1year"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown data type error = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.History(context.Background(), dto.HistoryInput{DataType: "income", Period: "2weeks"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown period error = %v, want ErrInvalidInput", err)
	}
}
