package overview_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	insightsdto "fintrack/internal/modules/insights/dto"
	recordsdto "fintrack/internal/modules/records/dto"
	"fintrack/internal/platform/log"
	"fintrack/internal/ui/views/overview"
)

type fakeInsights struct{}

func (fakeInsights) Overview(context.Context) (insightsdto.OverviewOutput, error) {
	return insightsdto.OverviewOutput{}, nil
}

type fakeRecords struct{}

func (fakeRecords) Recent(context.Context, string) ([]recordsdto.RecordOutput, error) {
	return nil, nil
}

func TestSummaryFetchFailureKeepsLastOverview(t *testing.T) {
	t.Parallel()
	m := overview.New(fakeInsights{}, fakeRecords{}, log.New(io.Discard, "error"))

	m, _ = m.Update(overview.OverviewLoadedMsg{Overview: insightsdto.OverviewOutput{
		Income: 2500,
		KPIs: []insightsdto.KPIOutput{
			{Kind: "expense", Title: "Gasto Mensual Total", Amount: 900, Goal: 40, Current: 36, Status: "positive", Bar: 90},
		},
	}})
	m, _ = m.Update(overview.OverviewLoadedMsg{Err: errors.New("boom")})

	view := m.View()
	if !strings.Contains(view, "2,500.00") {
		t.Fatalf("last good summary dropped after fetch failure:\n%s", view)
	}
	if strings.Contains(view, "boom") || strings.Contains(view, "Error") {
		t.Fatalf("fetch failure surfaced in the view:\n%s", view)
	}
}

func TestRecentFetchFailureKeepsTableRows(t *testing.T) {
	t.Parallel()
	m := overview.New(fakeInsights{}, fakeRecords{}, log.New(io.Discard, "error"))
	m, _ = m.Update(overview.OverviewLoadedMsg{})

	m, _ = m.Update(overview.RecentLoadedMsg{Kind: "expense", Records: []recordsdto.RecordOutput{
		{ID: 1, Kind: "expense", Amount: 120, Category: "vivienda"},
	}})
	m, _ = m.Update(overview.RecentLoadedMsg{Kind: "expense", Err: errors.New("boom")})

	view := m.View()
	if !strings.Contains(view, "Vivienda") {
		t.Fatalf("recent rows dropped after fetch failure:\n%s", view)
	}
	if strings.Contains(view, "boom") {
		t.Fatalf("fetch failure surfaced in the view:\n%s", view)
	}
}
