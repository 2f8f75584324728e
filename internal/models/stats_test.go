package models

import "testing"

func TestTimeRange_String(t *testing.T) {
	tests := []struct {
		r    TimeRange
		want string
	}{
		{TimeRangeWeekly, "Weekly"},
		{TimeRangeMonthly, "Monthly"},
		{TimeRangeAnnual, "Annual"},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestTimeRange_Days(t *testing.T) {
	if got := TimeRangeWeekly.Days(); got != 7 {
		t.Errorf("Weekly.Days = %d, want 7", got)
	}
	if got := TimeRangeMonthly.Days(); got != 30 {
		t.Errorf("Monthly.Days = %d, want 30", got)
	}
	if got := TimeRangeAnnual.Days(); got != 0 {
		t.Errorf("Annual.Days = %d, want 0 (unbounded)", got)
	}
}

func TestTimeRange_Next_Cycles(t *testing.T) {
	r := TimeRangeWeekly
	seen := map[TimeRange]bool{r: true}
	for i := 0; i < 2; i++ {
		r = r.Next()
		if seen[r] && i < 2 {
			t.Fatalf("Next revisited %v before completing the cycle", r)
		}
		seen[r] = true
	}
	if r.Next() != TimeRangeWeekly {
		t.Errorf("cycle did not return to Weekly, got %v", r.Next())
	}
}
