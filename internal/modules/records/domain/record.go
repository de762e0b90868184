package domain

import (
	"fmt"
	"sort"
	"time"

	apperrors "fintrack/internal/platform/errors"
)

// DateLayout is the calendar-date format used across the API.
const DateLayout = "2006-01-02"

// Kind classifies a record. Income is tracked separately and carries no
// category, so it is not a Kind.
type Kind string

const (
	KindExpense    Kind = "expense"
	KindSaving     Kind = "saving"
	KindInvestment Kind = "investment"
)

func Kinds() []Kind {
	return []Kind{KindExpense, KindSaving, KindInvestment}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown kind %q", apperrors.ErrInvalidInput, s)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	return k == KindExpense || k == KindSaving || k == KindInvestment
}

// Route is the plural path segment used by the record endpoints.
func (k Kind) Route() string {
	switch k {
	case KindExpense:
		return "expenses"
	case KindSaving:
		return "savings"
	default:
		return "investments"
	}
}

func (k Kind) Label() string {
	switch k {
	case KindExpense:
		return "Gasto"
	case KindSaving:
		return "Ahorro"
	default:
		return "Inversión"
	}
}

// LowerIsBetter reports whether staying under the goal is the good outcome
// for this kind. Spending below target is positive; saving or investing
// below target is not.
func (k Kind) LowerIsBetter() bool {
	return k == KindExpense
}

type Category struct {
	Value string
	Label string
}

var categoriesByKind = map[Kind][]Category{
	KindExpense: {
		{Value: "vivienda", Label: "Vivienda"},
		{Value: "alimentacion", Label: "Alimentación"},
		{Value: "transporte", Label: "Transporte"},
		{Value: "salud", Label: "Salud"},
		{Value: "educacion", Label: "Educación"},
		{Value: "entretenimiento", Label: "Entretenimiento"},
		{Value: "ropa", Label: "Ropa"},
		{Value: "otros", Label: "Otros"},
	},
	KindSaving: {
		{Value: "fondo_emergencia", Label: "Fondo de Emergencia"},
		{Value: "jubilacion", Label: "Jubilación"},
		{Value: "vacaciones", Label: "Vacaciones"},
		{Value: "mantenimiento", Label: "Mantenimiento"},
		{Value: "otros", Label: "Otros"},
	},
	KindInvestment: {
		{Value: "fondo_inversion", Label: "Fondo de Inversión"},
		{Value: "acciones", Label: "Acciones"},
		{Value: "bienes_raices", Label: "Bienes Raíces"},
		{Value: "cripto", Label: "Criptomonedas"},
		{Value: "negocio", Label: "Negocio"},
		{Value: "otros", Label: "Otros"},
	},
}

func CategoriesFor(k Kind) []Category {
	return categoriesByKind[k]
}

func ValidCategory(k Kind, value string) bool {
	for _, c := range categoriesByKind[k] {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Record is a persisted expense/saving/investment entry. The server assigns
// the identity; update and delete always address records by it.
type Record struct {
	ID       int64
	Kind     Kind
	Date     time.Time
	Amount   float64
	Category string
}

func (r Record) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: el tipo de transacción es requerido", apperrors.ErrInvalidInput)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: la fecha es requerida", apperrors.ErrInvalidInput)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("%w: el monto debe ser mayor que cero", apperrors.ErrInvalidInput)
	}
	if !ValidCategory(r.Kind, r.Category) {
		return fmt.Errorf("%w: la categoría es requerida", apperrors.ErrInvalidInput)
	}
	return nil
}

type Income struct {
	Date   time.Time
	Amount float64
}

func (i Income) Validate() error {
	if i.Date.IsZero() || i.Amount <= 0 {
		return fmt.Errorf("%w: fecha y monto válidos son requeridos", apperrors.ErrInvalidInput)
	}
	return nil
}

// RecentFirst returns a copy of records ordered newest first, truncated to
// limit. The input slice is never reordered.
func RecentFirst(records []Record, limit int) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
