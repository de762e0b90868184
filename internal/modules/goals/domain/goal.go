package domain

import (
	"fmt"
	"time"

	recdomain "fintrack/internal/modules/records/domain"
	apperrors "fintrack/internal/platform/errors"
)

// ClearThreshold is the smallest percentage the server stores. Anything
// below it means the goal is removed rather than saved.
const ClearThreshold = 0.1

// Goal is one stored target percentage for a kind. The server keeps the
// full history; only the newest entry is in effect.
type Goal struct {
	Kind  recdomain.Kind
	Date  time.Time
	Value float64
}

// Current picks the goal in effect from a history, newest date wins.
func Current(goals []Goal) (Goal, bool) {
	if len(goals) == 0 {
		return Goal{}, false
	}
	best := goals[0]
	for _, g := range goals[1:] {
		if g.Date.After(best.Date) {
			best = g
		}
	}
	return best, true
}

// Set holds the three target percentages edited together on the profile.
type Set struct {
	Expense    float64
	Saving     float64
	Investment float64
}

func (s Set) ValueFor(kind recdomain.Kind) float64 {
	switch kind {
	case recdomain.KindExpense:
		return s.Expense
	case recdomain.KindSaving:
		return s.Saving
	default:
		return s.Investment
	}
}

func (s *Set) SetValue(kind recdomain.Kind, value float64) {
	switch kind {
	case recdomain.KindExpense:
		s.Expense = value
	case recdomain.KindSaving:
		s.Saving = value
	case recdomain.KindInvestment:
		s.Investment = value
	}
}

func (s Set) Validate() error {
	for _, kind := range recdomain.Kinds() {
		v := s.ValueFor(kind)
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: la meta de %s debe estar entre 0 y 100", apperrors.ErrInvalidInput, kind.Label())
		}
	}
	if s.Expense+s.Saving+s.Investment > 100 {
		return fmt.Errorf("%w: la suma de las metas financieras no puede exceder el 100%%", apperrors.ErrInvalidInput)
	}
	return nil
}
