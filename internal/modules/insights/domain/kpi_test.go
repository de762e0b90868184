package domain

import "testing"

func TestClassifyTrend(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		override Trend
		change   float64
		want     Trend
	}{
		{"override wins over sign", TrendNegative, 12.5, TrendNegative},
		{"positive change", "", 3.2, TrendPositive},
		{"negative change", "", -0.1, TrendNegative},
		{"zero change is neutral", "", 0, TrendNeutral},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyTrend(tc.override, tc.change); got != tc.want {
				t.Fatalf("ClassifyTrend(%q, %v) = %q, want %q", tc.override, tc.change, got, tc.want)
			}
		})
	}
}

func TestChangeMagnitudeDropsSign(t *testing.T) {
	t.Parallel()

	if got := ChangeMagnitude(-7.5); got != 7.5 {
		t.Fatalf("ChangeMagnitude(-7.5) = %v, want 7.5", got)
	}
	if got := ChangeMagnitude(7.5); got != 7.5 {
		t.Fatalf("ChangeMagnitude(7.5) = %v, want 7.5", got)
	}
}

func TestGoalStatusDependsOnDirection(t *testing.T) {
	t.Parallel()

	// Spending at or under target is good.
	if got := GoalStatus(30, 40, true); got != TrendPositive {
		t.Fatalf("spending under target = %q, want positive", got)
	}
	if got := GoalStatus(45, 40, true); got != TrendNegative {
		t.Fatalf("spending over target = %q, want negative", got)
	}
	// Saving at or over target is good.
	if got := GoalStatus(25, 20, false); got != TrendPositive {
		t.Fatalf("saving over target = %q, want positive", got)
	}
	if got := GoalStatus(15, 20, false); got != TrendNegative {
		t.Fatalf("saving under target = %q, want negative", got)
	}
	// Exactly on target is good either way.
	if got := GoalStatus(20, 20, true); got != TrendPositive {
		t.Fatalf("spending on target = %q, want positive", got)
	}
	if got := GoalStatus(20, 20, false); got != TrendPositive {
		t.Fatalf("saving on target = %q, want positive", got)
	}
}

func TestBarWidth(t *testing.T) {
	t.Parallel()

	if got := BarWidth(20, 40); got != 50 {
		t.Fatalf("BarWidth(20, 40) = %v, want 50", got)
	}
	if got := BarWidth(80, 40); got != 100 {
		t.Fatalf("overshoot should cap at 100, got %v", got)
	}
	if got := BarWidth(20, 0); got != 0 {
		t.Fatalf("zero goal should render empty, got %v", got)
	}
}

func TestShareOfIncomeGuardsZeroIncome(t *testing.T) {
	t.Parallel()

	if got := ShareOfIncome(500, 2000); got != 25 {
		t.Fatalf("ShareOfIncome(500, 2000) = %v, want 25", got)
	}
	if got := ShareOfIncome(500, 0); got != 0 {
		t.Fatalf("ShareOfIncome with no income = %v, want 0", got)
	}
}
