package entities

import "testing"

func TestComputeCoverage(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		remaining float64
		free      int64
		payable   int64
	}{
		{"fully covered", 120, 5, 120, 0},
		{"partially covered", 180, 1, 60, 120},
		{"no quota left", 60, 0, 0, 60},
		{"negative remaining clamps", 60, -3, 0, 60},
		{"fractional remaining", 120, 0.5, 30, 90},
		{"exactly covered", 90, 1.5, 90, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ComputeCoverage(tc.total, tc.remaining)
			if c.FreeMinutes != tc.free || c.PayableMinutes != tc.payable {
				t.Fatalf("expected free=%d payable=%d, got %+v", tc.free, tc.payable, c)
			}
			if c.FreeMinutes+c.PayableMinutes != c.TotalMinutes {
				t.Fatalf("free+payable must equal total: %+v", c)
			}
			if c.FreeMinutes < 0 || c.PayableMinutes < 0 {
				t.Fatalf("negative component: %+v", c)
			}
		})
	}
}

func TestCoverage_Hours(t *testing.T) {
	c := ComputeCoverage(150, 1)
	if c.TotalHours() != 2.5 || c.FreeHours() != 1 || c.PayableHours() != 1.5 {
		t.Fatalf("unexpected hours: total=%v free=%v payable=%v", c.TotalHours(), c.FreeHours(), c.PayableHours())
	}
	if !c.NeedsPayment() {
		t.Fatalf("expected payment needed")
	}
}

func TestRemainingHours(t *testing.T) {
	if got := RemainingHours(10, 4); got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
	if got := RemainingHours(10, 12); got != 0 {
		t.Fatalf("expected 0 for overage, got %v", got)
	}
}

func TestComputeAmount(t *testing.T) {
	cases := []struct {
		name    string
		minutes int64
		rate    int64
		tax     bool
		want    int64
	}{
		{"two hours taxed", 120, 500, true, 1050},
		{"two hours untaxed", 120, 500, false, 1000},
		{"one and a half hours taxed", 90, 500, true, 788},
		{"fractional base rounds up", 1, 500, false, 9},
		{"fractional tax rounds up", 1, 500, true, 10},
		{"nothing payable", 0, 500, true, 0},
		{"zero rate", 60, 0, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeAmount(tc.minutes, tc.rate, tc.tax); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestComputeAmount_AtLeastOneWhenPayable(t *testing.T) {
	for m := int64(1); m <= 600; m++ {
		if got := ComputeAmount(m, 1, true); got < 1 {
			t.Fatalf("minutes=%d produced amount %d", m, got)
		}
	}
}
