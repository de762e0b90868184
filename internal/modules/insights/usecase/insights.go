package usecase

import (
	"context"

	"fintrack/internal/modules/insights/domain"
	"fintrack/internal/modules/insights/dto"
	insightsin "fintrack/internal/modules/insights/port/in"
	"fintrack/internal/modules/insights/service"
)

type Interactor struct {
	svc *service.InsightService
}

func NewInteractor(svc *service.InsightService) insightsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	overview, err := i.svc.Overview(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}

	out := dto.OverviewOutput{Income: overview.Income}
	for _, kpi := range overview.KPIs {
		out.KPIs = append(out.KPIs, dto.KPIOutput{
			Kind:    string(kpi.Kind),
			Title:   kpi.Title,
			Amount:  kpi.Amount,
			Goal:    kpi.Goal,
			Current: kpi.Current,
			Status:  string(kpi.Status),
			Bar:     kpi.Bar,
		})
	}
	for _, dist := range overview.Distributions {
		slices := make([]dto.SliceOutput, 0, len(dist.Slices))
		for _, s := range dist.Slices {
			slices = append(slices, dto.SliceOutput{
				Name:       s.Name,
				Amount:     s.Amount,
				Percentage: s.Percentage,
			})
		}
		out.Distributions = append(out.Distributions, dto.DistributionOutput{
			Title:   dist.Title,
			Slices:  slices,
			HasData: dist.HasData,
		})
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) (dto.SeriesOutput, error) {
	seriesType, err := domain.ParseSeriesType(input.DataType)
	if err != nil {
		return dto.SeriesOutput{}, err
	}
	period, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return dto.SeriesOutput{}, err
	}

	series, err := i.svc.History(ctx, seriesType, period)
	if err != nil {
		return dto.SeriesOutput{}, err
	}

	out := dto.SeriesOutput{
		Title:  seriesType.Label() + " (Histórico)",
		IsGoal: seriesType.IsGoal(),
		Labels: series.Labels,
	}
	for _, ds := range series.Datasets {
		out.Datasets = append(out.Datasets, dto.DatasetOutput{Label: ds.Label, Values: ds.Values})
	}
	return out, nil
}
