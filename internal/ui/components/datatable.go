package components

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"fintrack/internal/ui/theme"
)

// PageSizes are the row counts the tables offer, in cycling order.
var PageSizes = []int{5, 10, 20, 50}

const noDataRow = "No hay datos disponibles."

// DataTable is a sortable, paginated table over string rows. Sorting never
// mutates the rows it was given; pagination is 1-based and clamped.
type DataTable struct {
	title    string
	columns  []string
	rows     [][]string
	sortCol  int
	sortAsc  bool
	pageSize int
	page     int
}

func NewDataTable(title string, columns []string) DataTable {
	return DataTable{
		title:    title,
		columns:  columns,
		sortCol:  -1,
		pageSize: PageSizes[0],
		page:     1,
	}
}

// SetRows replaces the data and snaps the page back into range.
func (t *DataTable) SetRows(rows [][]string) {
	t.rows = rows
	t.clampPage()
}

// SortBy sorts on a column, toggling direction when the column is already
// the sort key and resetting to ascending otherwise.
func (t *DataTable) SortBy(col int) {
	if col < 0 || col >= len(t.columns) {
		return
	}
	if t.sortCol == col {
		t.sortAsc = !t.sortAsc
	} else {
		t.sortCol = col
		t.sortAsc = true
	}
	t.clampPage()
}

// SetPageSize switches the page size and returns to the first page, so the
// visible window never starts past the end.
func (t *DataTable) SetPageSize(size int) {
	for _, s := range PageSizes {
		if s == size {
			t.pageSize = size
			t.page = 1
			return
		}
	}
}

// CyclePageSize advances to the next offered page size.
func (t *DataTable) CyclePageSize() {
	for i, s := range PageSizes {
		if s == t.pageSize {
			t.SetPageSize(PageSizes[(i+1)%len(PageSizes)])
			return
		}
	}
	t.SetPageSize(PageSizes[0])
}

func (t *DataTable) NextPage() {
	t.page++
	t.clampPage()
}

func (t *DataTable) PrevPage() {
	t.page--
	t.clampPage()
}

func (t *DataTable) Page() int     { return t.page }
func (t *DataTable) PageSize() int { return t.pageSize }

// TotalPages is zero when there are no rows.
func (t *DataTable) TotalPages() int {
	if len(t.rows) == 0 {
		return 0
	}
	return (len(t.rows) + t.pageSize - 1) / t.pageSize
}

// VisibleRows returns the current page of rows after sorting. The backing
// slice is copied before sorting so callers keep their original order.
func (t *DataTable) VisibleRows() [][]string {
	sorted := t.sortedRows()
	start := (t.page - 1) * t.pageSize
	if start >= len(sorted) {
		return nil
	}
	end := start + t.pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}

// Footer is the "Mostrando X a Y de Z" range line, empty when no rows.
func (t *DataTable) Footer() string {
	if len(t.rows) == 0 {
		return ""
	}
	start := (t.page-1)*t.pageSize + 1
	end := start + t.pageSize - 1
	if end > len(t.rows) {
		end = len(t.rows)
	}
	return fmt.Sprintf("Mostrando %d a %d de %d resultados", start, end, len(t.rows))
}

func (t *DataTable) View() string {
	w := table.NewWriter()
	w.SetStyle(table.StyleRounded)

	header := make(table.Row, len(t.columns))
	for i, col := range t.columns {
		label := col
		if i == t.sortCol {
			if t.sortAsc {
				label += " ↑"
			} else {
				label += " ↓"
			}
		}
		header[i] = label
	}
	w.AppendHeader(header)

	visible := t.VisibleRows()
	if len(visible) == 0 {
		w.AppendRow(table.Row{noDataRow})
	}
	for _, row := range visible {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		w.AppendRow(r)
	}

	var sb strings.Builder
	if t.title != "" {
		sb.WriteString(theme.Title.Render(t.title) + "\n")
	}
	sb.WriteString(w.Render())
	if footer := t.Footer(); footer != "" {
		sb.WriteString("\n" + theme.Muted.Render(footer))
	}
	return sb.String()
}

func (t *DataTable) clampPage() {
	total := t.TotalPages()
	if total == 0 {
		t.page = 1
		return
	}
	if t.page > total {
		t.page = total
	}
	if t.page < 1 {
		t.page = 1
	}
}

func (t *DataTable) sortedRows() [][]string {
	if t.sortCol < 0 {
		return t.rows
	}
	sorted := make([][]string, len(t.rows))
	copy(sorted, t.rows)
	col := t.sortCol
	sort.SliceStable(sorted, func(i, j int) bool {
		less := cellLess(sorted[i][col], sorted[j][col])
		if t.sortAsc {
			return less
		}
		return cellLess(sorted[j][col], sorted[i][col])
	})
	return sorted
}

// cellLess compares numerically when both cells parse as numbers and falls
// back to a string comparison otherwise. Money cells keep their $ prefix,
// so it is stripped before parsing.
func cellLess(a, b string) bool {
	na, aOK := parseNumeric(a)
	nb, bOK := parseNumeric(b)
	if aOK && bOK {
		return na < nb
	}
	return a < b
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
