package domain

import (
	"math"
	"sort"
)

// CategorySlice is one wedge of a distribution, with its share of the
// total pre-rounded for display.
type CategorySlice struct {
	Name       string
	Amount     float64
	Percentage int
}

// AggregateCategories orders a category breakdown for display, biggest
// first. It returns false when every amount is zero or negative, which the
// views render as a no-data placeholder instead of an empty chart.
func AggregateCategories(byCategory map[string]float64) ([]CategorySlice, bool) {
	var total float64
	hasData := false
	for _, amount := range byCategory {
		if amount > 0 {
			hasData = true
		}
		total += amount
	}
	if !hasData {
		return nil, false
	}

	slices := make([]CategorySlice, 0, len(byCategory))
	for name, amount := range byCategory {
		slices = append(slices, CategorySlice{
			Name:       name,
			Amount:     amount,
			Percentage: int(math.Round(amount / total * 100)),
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Name < slices[j].Name
	})
	return slices, true
}
