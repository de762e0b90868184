package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"fintrack/internal/modules/goals/domain"
	"fintrack/internal/modules/goals/dto"
	"fintrack/internal/modules/goals/service"
	recdomain "fintrack/internal/modules/records/domain"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/log"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

type upsertCall struct {
	kind  recdomain.Kind
	date  time.Time
	value float64
}

type fakeAPI struct {
	histories map[recdomain.Kind][]domain.Goal
	upserts   []upsertCall
	cleared   []recdomain.Kind
	fetchErr  error
}

func (f *fakeAPI) Fetch(_ context.Context, kind recdomain.Kind) ([]domain.Goal, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.histories[kind], nil
}

func (f *fakeAPI) Upsert(_ context.Context, kind recdomain.Kind, date time.Time, value float64) error {
	f.upserts = append(f.upserts, upsertCall{kind: kind, date: date, value: value})
	return nil
}

func (f *fakeAPI) Clear(_ context.Context, kind recdomain.Kind) error {
	f.cleared = append(f.cleared, kind)
	return nil
}

func newInteractor(api *fakeAPI, now time.Time) *Interactor {
	svc := service.NewGoalService(fakeClock{now: now}, api, log.New(io.Discard, "error"))
	return &Interactor{svc: svc}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentPicksNewestGoalPerKind(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{histories: map[recdomain.Kind][]domain.Goal{
		recdomain.KindExpense: {
			{Kind: recdomain.KindExpense, Date: day(2024, time.January, 1), Value: 50},
			{Kind: recdomain.KindExpense, Date: day(2024, time.March, 1), Value: 40},
			{Kind: recdomain.KindExpense, Date: day(2024, time.February, 1), Value: 45},
		},
		recdomain.KindSaving: {
			{Kind: recdomain.KindSaving, Date: day(2024, time.January, 1), Value: 20},
		},
	}}
	uc := newInteractor(api, day(2024, time.March, 10))

	got, err := uc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	want := dto.GoalsOutput{Expense: 40, Saving: 20, Investment: 0}
	if got != want {
		t.Fatalf("Current() = %+v, want %+v", got, want)
	}
}

func TestSaveAllRejectsSumOverHundred(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	uc := newInteractor(api, day(2024, time.March, 10))

	err := uc.SaveAll(context.Background(), dto.SaveAllInput{Expense: 50, Saving: 30, Investment: 25})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("SaveAll() error = %v, want ErrInvalidInput", err)
	}
	if len(api.upserts) != 0 || len(api.cleared) != 0 {
		t.Fatalf("invalid set reached the API: upserts=%v cleared=%v", api.upserts, api.cleared)
	}
}

func TestSaveAllStampsTodayAndClearsBelowThreshold(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	uc := newInteractor(api, time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC))

	err := uc.SaveAll(context.Background(), dto.SaveAllInput{Expense: 40, Saving: 0.05, Investment: 15})
	if err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	if len(api.upserts) != 2 {
		t.Fatalf("upserts = %v, want expense and investment", api.upserts)
	}
	today := day(2024, time.March, 10)
	for _, call := range api.upserts {
		if !call.date.Equal(today) {
			t.Fatalf("upsert date = %v, want %v", call.date, today)
		}
	}
	if api.upserts[0].kind != recdomain.KindExpense || api.upserts[0].value != 40 {
		t.Fatalf("first upsert = %+v", api.upserts[0])
	}
	if len(api.cleared) != 1 || api.cleared[0] != recdomain.KindSaving {
		t.Fatalf("cleared = %v, want [saving]", api.cleared)
	}
}

func TestSetValidatesAgainstOtherStoredGoals(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{histories: map[recdomain.Kind][]domain.Goal{
		recdomain.KindSaving:     {{Kind: recdomain.KindSaving, Date: day(2024, time.January, 1), Value: 30}},
		recdomain.KindInvestment: {{Kind: recdomain.KindInvestment, Date: day(2024, time.January, 1), Value: 20}},
	}}
	uc := newInteractor(api, day(2024, time.March, 10))

	err := uc.Set(context.Background(), "expense", 60)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Set() error = %v, want ErrInvalidInput", err)
	}

	if err := uc.Set(context.Background(), "expense", 50); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if len(api.upserts) != 1 || api.upserts[0].kind != recdomain.KindExpense || api.upserts[0].value != 50 {
		t.Fatalf("upserts = %+v, want one expense upsert of 50", api.upserts)
	}
}

func TestSetBelowThresholdClears(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	uc := newInteractor(api, day(2024, time.March, 10))

	if err := uc.Set(context.Background(), "saving", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if len(api.upserts) != 0 {
		t.Fatalf("unexpected upserts: %v", api.upserts)
	}
	if len(api.cleared) != 1 || api.cleared[0] != recdomain.KindSaving {
		t.Fatalf("cleared = %v, want [saving]", api.cleared)
	}
}

func TestSetUnknownKind(t *testing.T) {
	t.Parallel()

	uc := newInteractor(&fakeAPI{}, day(2024, time.March, 10))
	err := uc.Set(context.Background(), "retirement", 10)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("Set() error = %v, want ErrInvalidInput", err)
	}
}
