package service

import (
	"context"
	"errors"
	"fmt"

	"fintrack/internal/modules/goals/domain"
	goalsout "fintrack/internal/modules/goals/port/out"
	recdomain "fintrack/internal/modules/records/domain"
	"fintrack/internal/platform/clock"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/log"
)

type GoalService struct {
	clock  clock.Clock
	api    goalsout.API
	logger *log.Logger
}

func NewGoalService(clk clock.Clock, api goalsout.API, logger *log.Logger) *GoalService {
	return &GoalService{clock: clk, api: api, logger: logger.WithComponent("goals")}
}

// Current loads the percentage in effect per kind. A kind with no stored
// history reads as zero.
func (s *GoalService) Current(ctx context.Context) (domain.Set, error) {
	var set domain.Set
	for _, kind := range recdomain.Kinds() {
		history, err := s.api.Fetch(ctx, kind)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.logger.Warn("goal history unavailable", "kind", kind, "err", err)
				continue
			}
			return domain.Set{}, fmt.Errorf("fetch %s goals: %w", kind, err)
		}
		if current, ok := domain.Current(history); ok {
			set.SetValue(kind, current.Value)
		}
	}
	return set, nil
}

// Save persists the whole set, stamping today as the effective date. Values
// under the threshold delete the stored goal instead of writing a near-zero
// one.
func (s *GoalService) Save(ctx context.Context, set domain.Set) error {
	if err := set.Validate(); err != nil {
		return err
	}
	today := clock.Today(s.clock)
	for _, kind := range recdomain.Kinds() {
		value := set.ValueFor(kind)
		if value >= domain.ClearThreshold {
			if err := s.api.Upsert(ctx, kind, today, value); err != nil {
				return fmt.Errorf("save %s goal: %w", kind, err)
			}
			continue
		}
		if err := s.api.Clear(ctx, kind); err != nil {
			return fmt.Errorf("clear %s goal: %w", kind, err)
		}
	}
	return nil
}

// SaveOne changes a single kind, keeping the combined-sum rule by loading
// the other goals first.
func (s *GoalService) SaveOne(ctx context.Context, kind recdomain.Kind, value float64) error {
	set, err := s.Current(ctx)
	if err != nil {
		return err
	}
	set.SetValue(kind, value)
	if err := set.Validate(); err != nil {
		return err
	}
	if value >= domain.ClearThreshold {
		return s.api.Upsert(ctx, kind, clock.Today(s.clock), value)
	}
	return s.api.Clear(ctx, kind)
}

func (s *GoalService) Clear(ctx context.Context, kind recdomain.Kind) error {
	return s.api.Clear(ctx, kind)
}
