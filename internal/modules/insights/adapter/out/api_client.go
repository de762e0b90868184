package out

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fintrack/internal/modules/insights/domain"
	recdomain "fintrack/internal/modules/records/domain"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/httpapi"
)

type APIClient struct {
	client *httpapi.Client
}

func NewAPIClient(client *httpapi.Client) *APIClient {
	return &APIClient{client: client}
}

func (c *APIClient) MonthlySummary(ctx context.Context, year int, month time.Month) (domain.MonthlySummary, error) {
	var body struct {
		TotalIncome              float64            `json:"total_income"`
		TotalExpenses            float64            `json:"total_expenses"`
		TotalSavings             float64            `json:"total_savings"`
		TotalInvestments         float64            `json:"total_investments"`
		ExpenseGoalPercentage    float64            `json:"expense_goal_percentage"`
		SavingGoalPercentage     float64            `json:"saving_goal_percentage"`
		InvestmentGoalPercentage float64            `json:"investment_goal_percentage"`
		ExpenseByCategory        map[string]float64 `json:"expense_by_category"`
		SavingByCategory         map[string]float64 `json:"saving_by_category"`
		InvestmentByCategory     map[string]float64 `json:"investment_by_category"`
	}
	path := fmt.Sprintf("/monthly-summary/%d/%d", year, int(month))
	if err := c.client.GetJSON(ctx, path, &body); err != nil {
		return domain.MonthlySummary{}, mapStatus(err)
	}
	return domain.MonthlySummary{
		Income:                body.TotalIncome,
		Expenses:              body.TotalExpenses,
		Savings:               body.TotalSavings,
		Investments:           body.TotalInvestments,
		ExpenseGoal:           body.ExpenseGoalPercentage,
		SavingGoal:            body.SavingGoalPercentage,
		InvestmentGoal:        body.InvestmentGoalPercentage,
		ExpensesByCategory:    body.ExpenseByCategory,
		SavingsByCategory:     body.SavingByCategory,
		InvestmentsByCategory: body.InvestmentByCategory,
	}, nil
}

func (c *APIClient) HistoricalData(ctx context.Context, seriesType domain.SeriesType, start, end time.Time) ([]domain.Point, error) {
	payload := map[string]string{
		"data_type":  string(seriesType),
		"start_date": start.Format(recdomain.DateLayout),
		"end_date":   end.Format(recdomain.DateLayout),
	}
	var body struct {
		DataPoints []struct {
			Date    string   `json:"date"`
			Value   float64  `json:"value"`
			GoalMet bool     `json:"goal_met"`
			Actual  *float64 `json:"actual"`
		} `json:"data_points"`
	}
	if err := c.client.PostJSON(ctx, "/historical-data", payload, &body); err != nil {
		return nil, mapStatus(err)
	}

	points := make([]domain.Point, 0, len(body.DataPoints))
	for _, dp := range body.DataPoints {
		date, err := parseDate(dp.Date)
		if err != nil {
			return nil, err
		}
		points = append(points, domain.Point{
			Date:    date,
			Value:   dp.Value,
			GoalMet: dp.GoalMet,
			Actual:  dp.Actual,
		})
	}
	return points, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(recdomain.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse point date %q: %w", s, err)
	}
	return t, nil
}

func mapStatus(err error) error {
	switch httpapi.StatusOf(err) {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
	default:
		return err
	}
}
