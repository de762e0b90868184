package dto

type GoalsOutput struct {
	Expense    float64
	Saving     float64
	Investment float64
}

type SaveAllInput struct {
	Expense    float64
	Saving     float64
	Investment float64
}
