package usecase

import (
	"context"

	"fintrack/internal/modules/goals/domain"
	"fintrack/internal/modules/goals/dto"
	goalsin "fintrack/internal/modules/goals/port/in"
	"fintrack/internal/modules/goals/service"
	recdomain "fintrack/internal/modules/records/domain"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Current(ctx context.Context) (dto.GoalsOutput, error) {
	set, err := i.svc.Current(ctx)
	if err != nil {
		return dto.GoalsOutput{}, err
	}
	return dto.GoalsOutput{
		Expense:    set.Expense,
		Saving:     set.Saving,
		Investment: set.Investment,
	}, nil
}

func (i *Interactor) Set(ctx context.Context, kindName string, value float64) error {
	kind, err := recdomain.ParseKind(kindName)
	if err != nil {
		return err
	}
	return i.svc.SaveOne(ctx, kind, value)
}

func (i *Interactor) SaveAll(ctx context.Context, input dto.SaveAllInput) error {
	return i.svc.Save(ctx, domain.Set{
		Expense:    input.Expense,
		Saving:     input.Saving,
		Investment: input.Investment,
	})
}

func (i *Interactor) Clear(ctx context.Context, kindName string) error {
	kind, err := recdomain.ParseKind(kindName)
	if err != nil {
		return err
	}
	return i.svc.Clear(ctx, kind)
}
