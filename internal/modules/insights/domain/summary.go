package domain

// MonthlySummary is the server's per-month rollup: totals, the goal
// percentages in effect, and the per-category breakdowns.
type MonthlySummary struct {
	Income      float64
	Expenses    float64
	Savings     float64
	Investments float64

	ExpenseGoal    float64
	SavingGoal     float64
	InvestmentGoal float64

	ExpensesByCategory    map[string]float64
	SavingsByCategory     map[string]float64
	InvestmentsByCategory map[string]float64
}
