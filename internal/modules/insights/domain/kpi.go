package domain

import "math"

// Trend is the color direction of a KPI indicator.
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = "neutral"
)

// ClassifyTrend derives a trend from the sign of a change. An explicit
// override always wins; a zero change is neutral.
func ClassifyTrend(override Trend, change float64) Trend {
	if override != "" {
		return override
	}
	switch {
	case change > 0:
		return TrendPositive
	case change < 0:
		return TrendNegative
	default:
		return TrendNeutral
	}
}

// ChangeMagnitude is the displayed size of a change. The arrow carries the
// direction, so the number is always shown unsigned.
func ChangeMagnitude(change float64) float64 {
	return math.Abs(change)
}

// GoalStatus reports whether the current percentage sits on the good side
// of the target. Spending under target is good; saving or investing under
// target is not.
func GoalStatus(current, goal float64, lowerIsBetter bool) Trend {
	if lowerIsBetter {
		if current <= goal {
			return TrendPositive
		}
		return TrendNegative
	}
	if current >= goal {
		return TrendPositive
	}
	return TrendNegative
}

// BarWidth maps progress toward a goal onto a 0..100 bar. A missing or zero
// goal renders an empty bar rather than dividing by zero.
func BarWidth(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(100, current/goal*100)
}

// ShareOfIncome is the month's amount as a percentage of income. No income
// means the percentage is meaningless, so it reads as zero.
func ShareOfIncome(amount, income float64) float64 {
	if income <= 0 {
		return 0
	}
	return amount / income * 100
}
