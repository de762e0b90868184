package domain

import (
	"fmt"

	apperrors "fintrack/internal/platform/errors"
)

// ImportType is the data_type accepted by the CSV import endpoint.
// Income and goal files are (date, amount); record files add a category
// column.
type ImportType string

const (
	ImportIncome          ImportType = "income"
	ImportExpenses        ImportType = "expenses"
	ImportSavings         ImportType = "savings"
	ImportInvestments     ImportType = "investments"
	ImportExpenseGoals    ImportType = "expense_goals"
	ImportSavingGoals     ImportType = "saving_goals"
	ImportInvestmentGoals ImportType = "investment_goals"
)

func ImportTypes() []ImportType {
	return []ImportType{
		ImportIncome, ImportExpenses, ImportSavings, ImportInvestments,
		ImportExpenseGoals, ImportSavingGoals, ImportInvestmentGoals,
	}
}

func ParseImportType(s string) (ImportType, error) {
	for _, t := range ImportTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown import data type %q", apperrors.ErrInvalidInput, s)
}

// ImportReport is the server's summary of a processed CSV upload.
type ImportReport struct {
	Imported int
	Failed   int
}
