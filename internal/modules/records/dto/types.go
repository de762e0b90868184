package dto

import "time"

type AddRecordInput struct {
	Kind     string
	Date     time.Time
	Amount   float64
	Category string
}

type UpdateRecordInput struct {
	Kind     string
	ID       int64
	Date     time.Time
	Amount   float64
	Category string
}

type AddIncomeInput struct {
	Date   time.Time
	Amount float64
}

type ListInput struct {
	Kind  string
	Start time.Time
	End   time.Time
}

type RecordOutput struct {
	ID       int64
	Kind     string
	Date     time.Time
	Amount   float64
	Category string
}

type ImportInput struct {
	DataType string
	Path     string
}

type ImportOutput struct {
	Imported int
	Failed   int
}
