package out

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fintrack/internal/modules/goals/domain"
	recdomain "fintrack/internal/modules/records/domain"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/httpapi"
)

// APIClient maps the goal endpoints. The goal_type parameter and the path
// segment are the singular kind names.
type APIClient struct {
	client *httpapi.Client
}

func NewAPIClient(client *httpapi.Client) *APIClient {
	return &APIClient{client: client}
}

func (c *APIClient) Fetch(ctx context.Context, kind recdomain.Kind) ([]domain.Goal, error) {
	var rows []struct {
		Date  string  `json:"date"`
		Value float64 `json:"value"`
	}
	if err := c.client.GetJSON(ctx, "/goals?goal_type="+string(kind), &rows); err != nil {
		return nil, mapStatus(err)
	}

	goals := make([]domain.Goal, 0, len(rows))
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, err
		}
		goals = append(goals, domain.Goal{Kind: kind, Date: date, Value: row.Value})
	}
	return goals, nil
}

func (c *APIClient) Upsert(ctx context.Context, kind recdomain.Kind, date time.Time, value float64) error {
	payload := map[string]any{
		"date":  date.Format(recdomain.DateLayout),
		"value": value,
	}
	return mapStatus(c.client.PostJSON(ctx, "/goals/"+string(kind), payload, nil))
}

func (c *APIClient) Clear(ctx context.Context, kind recdomain.Kind) error {
	return mapStatus(c.client.Delete(ctx, "/goals/"+string(kind)))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(recdomain.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse goal date %q: %w", s, err)
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
