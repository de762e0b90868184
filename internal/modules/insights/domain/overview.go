package domain

import (
	recdomain "fintrack/internal/modules/records/domain"
)

// KPI is one month-total card with its goal progress resolved.
type KPI struct {
	Kind    recdomain.Kind
	Title   string
	Amount  float64
	Goal    float64
	Current float64
	Status  Trend
	Bar     float64
}

// Distribution is one per-category breakdown ready to chart.
type Distribution struct {
	Title  string
	Slices []CategorySlice
	// HasData is false when every category is zero and the chart should
	// show a placeholder.
	HasData bool
}

// Overview is the dashboard's month view derived from a summary.
type Overview struct {
	Income        float64
	KPIs          []KPI
	Distributions []Distribution
}

// BuildOverview resolves a monthly summary into KPI cards and category
// distributions.
func BuildOverview(s MonthlySummary) Overview {
	kinds := []struct {
		kind      recdomain.Kind
		title     string
		amount    float64
		goal      float64
		breakdown map[string]float64
		pieTitle  string
	}{
		{recdomain.KindExpense, "Gasto Mensual Total", s.Expenses, s.ExpenseGoal, s.ExpensesByCategory, "Distribución de Gastos"},
		{recdomain.KindSaving, "Ahorro Mensual Total", s.Savings, s.SavingGoal, s.SavingsByCategory, "Distribución de Ahorros"},
		{recdomain.KindInvestment, "Inversión Mensual Total", s.Investments, s.InvestmentGoal, s.InvestmentsByCategory, "Distribución de Inversiones"},
	}

	overview := Overview{Income: s.Income}
	for _, k := range kinds {
		current := ShareOfIncome(k.amount, s.Income)
		overview.KPIs = append(overview.KPIs, KPI{
			Kind:    k.kind,
			Title:   k.title,
			Amount:  k.amount,
			Goal:    k.goal,
			Current: current,
			Status:  GoalStatus(current, k.goal, k.kind.LowerIsBetter()),
			Bar:     BarWidth(current, k.goal),
		})
		slices, hasData := AggregateCategories(k.breakdown)
		overview.Distributions = append(overview.Distributions, Distribution{
			Title:   k.pieTitle,
			Slices:  slices,
			HasData: hasData,
		})
	}
	return overview
}
