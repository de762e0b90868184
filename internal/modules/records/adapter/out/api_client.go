package out

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fintrack/internal/modules/records/domain"
	apperrors "fintrack/internal/platform/errors"
	"fintrack/internal/platform/httpapi"
)

// APIClient maps the record endpoints. Each kind has its own plural route;
// the payload shape is shared.
type APIClient struct {
	client *httpapi.Client
}

func NewAPIClient(client *httpapi.Client) *APIClient {
	return &APIClient{client: client}
}

type recordPayload struct {
	ID       int64   `json:"id,omitempty"`
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

type recordResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

func (c *APIClient) List(ctx context.Context, kind domain.Kind, start, end time.Time) ([]domain.Record, error) {
	query := url.Values{}
	query.Set("start_date", start.Format(domain.DateLayout))
	query.Set("end_date", end.Format(domain.DateLayout))

	// Reads live under /records; writes address the plural route directly.
	var rows []recordResponse
	path := fmt.Sprintf("/records/%s?%s", kind.Route(), query.Encode())
	if err := c.client.GetJSON(ctx, path, &rows); err != nil {
		return nil, mapStatus(err)
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, err
		}
		records = append(records, domain.Record{
			ID:       row.ID,
			Kind:     kind,
			Date:     date,
			Amount:   row.Amount,
			Category: row.Category,
		})
	}
	return records, nil
}

func (c *APIClient) Create(ctx context.Context, record domain.Record) error {
	payload := recordPayload{
		Date:     record.Date.Format(domain.DateLayout),
		Amount:   record.Amount,
		Category: record.Category,
	}
	return mapStatus(c.client.PostJSON(ctx, "/"+record.Kind.Route(), payload, nil))
}

func (c *APIClient) Update(ctx context.Context, record domain.Record) error {
	payload := recordPayload{
		Date:     record.Date.Format(domain.DateLayout),
		Amount:   record.Amount,
		Category: record.Category,
	}
	path := fmt.Sprintf("/%s/%d", record.Kind.Route(), record.ID)
	return mapStatus(c.client.PutJSON(ctx, path, payload, nil))
}

func (c *APIClient) Delete(ctx context.Context, kind domain.Kind, id int64) error {
	return mapStatus(c.client.Delete(ctx, fmt.Sprintf("/%s/%d", kind.Route(), id)))
}

func (c *APIClient) CreateIncome(ctx context.Context, income domain.Income) error {
	payload := map[string]any{
		"date":   income.Date.Format(domain.DateLayout),
		"amount": income.Amount,
	}
	return mapStatus(c.client.PostJSON(ctx, "/incomes", payload, nil))
}

func (c *APIClient) ImportCSV(ctx context.Context, dataType domain.ImportType, filename string, file io.Reader) (domain.ImportReport, error) {
	var out struct {
		Imported int `json:"imported_records"`
		Failed   int `json:"failed_records"`
	}
	path := "/import-csv?data_type=" + url.QueryEscape(string(dataType))
	if err := c.client.UploadFile(ctx, path, "file", filename, file, &out); err != nil {
		return domain.ImportReport{}, mapStatus(err)
	}
	return domain.ImportReport{Imported: out.Imported, Failed: out.Failed}, nil
}

// parseDate accepts both the plain calendar layout and RFC 3339 timestamps;
// the server is inconsistent across endpoints.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse record date %q: %w", s, err)
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
