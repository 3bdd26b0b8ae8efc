package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-03-02 05:00 at +10 is still 2024-03-01 in UTC.
	tm := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(tm); got != "2024-03-01" {
		t.Errorf("DateKey = %q, want 2024-03-01", got)
	}
}

func TestRandSameDaySameSequence(t *testing.T) {
	morning := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	a, b := Rand(morning, "salt"), Rand(evening, "salt")
	for i := 0; i < 10; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSeedVariesByDayAndSalt(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s1, s2 := Seed(day, "salt")
	if n1, n2 := Seed(day.AddDate(0, 0, 1), "salt"); n1 == s1 && n2 == s2 {
		t.Error("next day produced the same seed")
	}
	if o1, o2 := Seed(day, "other"); o1 == s1 && o2 == s2 {
		t.Error("different salt produced the same seed")
	}
}
