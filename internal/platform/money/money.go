package money

import gomoney "github.com/Rhymond/go-money"

// Format renders an amount the way the dashboard shows money, dollar sign
// and two decimals.
func Format(amount float64) string {
	return gomoney.NewFromFloat(amount, gomoney.USD).Display()
}
