package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "fintrack/internal/platform/errors"
)

// Period is a history window ending today.
type Period string

const (
	Period1Month  Period = "1month"
	Period6Months Period = "6months"
	Period1Year   Period = "1year"
	Period3Years  Period = "3years"
	Period5Years  Period = "5years"
)

func Periods() []Period {
	return []Period{Period1Month, Period6Months, Period1Year, Period3Years, Period5Years}
}

func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown period %q", apperrors.ErrInvalidInput, s)
}

func (p Period) Label() string {
	switch p {
	case Period1Month:
		return "1 Mes"
	case Period6Months:
		return "6 Meses"
	case Period1Year:
		return "1 Año"
	case Period3Years:
		return "3 Años"
	default:
		return "5 Años"
	}
}

// Start computes the window's start. The one-month window is a fixed 30
// days; the rest shift by calendar months or years.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Period1Month:
		return now.AddDate(0, 0, -30)
	case Period6Months:
		return now.AddDate(0, -6, 0)
	case Period1Year:
		return now.AddDate(-1, 0, 0)
	case Period3Years:
		return now.AddDate(-3, 0, 0)
	default:
		return now.AddDate(-5, 0, 0)
	}
}

// SeriesType selects which history the chart shows. Goal types carry both
// the target and the achieved percentage per point.
type SeriesType string

const (
	SeriesIncome          SeriesType = "income"
	SeriesExpenses        SeriesType = "expenses"
	SeriesSavings         SeriesType = "savings"
	SeriesInvestments     SeriesType = "investments"
	SeriesExpenseGoals    SeriesType = "expense_goals"
	SeriesSavingGoals     SeriesType = "saving_goals"
	SeriesInvestmentGoals SeriesType = "investment_goals"
)

func SeriesTypes() []SeriesType {
	return []SeriesType{
		SeriesIncome, SeriesExpenses, SeriesSavings, SeriesInvestments,
		SeriesExpenseGoals, SeriesSavingGoals, SeriesInvestmentGoals,
	}
}

func ParseSeriesType(s string) (SeriesType, error) {
	for _, t := range SeriesTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown series type %q", apperrors.ErrInvalidInput, s)
}

// IsGoal reports whether the series tracks percentages against a target
// rather than money amounts.
func (t SeriesType) IsGoal() bool {
	return strings.HasSuffix(string(t), "_goals")
}

func (t SeriesType) Label() string {
	switch t {
	case SeriesIncome:
		return "Ingresos"
	case SeriesExpenses:
		return "Gastos"
	case SeriesSavings:
		return "Ahorros"
	case SeriesInvestments:
		return "Inversiones"
	case SeriesExpenseGoals:
		return "Metas de Gasto"
	case SeriesSavingGoals:
		return "Metas de Ahorro"
	default:
		return "Metas de Inversión"
	}
}

// Point is one sample of a history series. Actual is only present on goal
// series, carrying the achieved percentage next to the target Value.
type Point struct {
	Date    time.Time
	Value   float64
	GoalMet bool
	Actual  *float64
}

type Dataset struct {
	Label  string
	Values []float64
}

// Series is chart-ready history data: one label per point and one or two
// datasets over them.
type Series struct {
	Labels   []string
	Datasets []Dataset
}

var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// MonthLabel formats a point's date the way the charts label their axis,
// Spanish short month plus year.
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", shortMonths[t.Month()-1], t.Year())
}

// BuildSeries shapes raw points into chart datasets. Goal series get a
// target line and an achieved line; the achieved value falls back to the
// target when the server omits it.
func BuildSeries(seriesType SeriesType, points []Point) Series {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = MonthLabel(p.Date)
	}

	if !seriesType.IsGoal() {
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		return Series{
			Labels:   labels,
			Datasets: []Dataset{{Label: seriesType.Label(), Values: values}},
		}
	}

	targets := make([]float64, len(points))
	actuals := make([]float64, len(points))
	for i, p := range points {
		targets[i] = p.Value
		if p.Actual != nil {
			actuals[i] = *p.Actual
		} else {
			actuals[i] = p.Value
		}
	}
	return Series{
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Meta (%)", Values: targets},
			{Label: "Real (%)", Values: actuals},
		},
	}
}
