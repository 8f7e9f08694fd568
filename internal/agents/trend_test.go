package agents

import (
	"math"
	"testing"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

func TestTrend(t *testing.T) {
	cases := []struct {
		name   string
		prices []float64
		want   float64
		ok     bool
	}{
		{"none", nil, 0, false},
		{"single", []float64{100}, 0, false},
		{"two rising", []float64{100, 110}, 0.10, true},
		{"three", []float64{100, 110, 120}, 0.10, true},   // recent avg 110 vs first 100
		{"five", []float64{90, 110, 110, 120, 130}, 0.2, true}, // 120 vs avg(90,110)=100
		{"falling", []float64{200, 150}, -0.25, true},
		{"zero baseline", []float64{0, 100}, 0, true},
	}
	for _, tc := range cases {
		got, ok := Trend(tc.prices)
		if ok != tc.ok {
			t.Errorf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: trend = %.6f, want %.6f", tc.name, got, tc.want)
		}
	}
}

func TestAnalyzeTrendsKeepsPreviousWithoutData(t *testing.T) {
	m := NewTradeMemory()
	m.Record(galaxy.Quadrant{X: 0, Y: 0}, pricesAll(100), 0)

	var prev Trends
	prev[economy.Food] = 0.3
	got := AnalyzeTrends(m, prev)
	if got[economy.Food] != 0.3 {
		t.Fatalf("expected previous trend kept with one observation, got %v", got[economy.Food])
	}

	m.Record(galaxy.Quadrant{X: 1, Y: 0}, pricesAll(110), 1)
	got = AnalyzeTrends(m, got)
	if math.Abs(got[economy.Food]-0.1) > 1e-9 {
		t.Fatalf("expected trend 0.1, got %v", got[economy.Food])
	}
}

func TestAnalyzeTrendsDeterministic(t *testing.T) {
	build := func() *TradeMemory {
		m := NewTradeMemory()
		for i := 0; i < 6; i++ {
			m.Record(galaxy.Quadrant{X: i, Y: i}, pricesAll(100+float64(i*i)), float64(i))
		}
		return m
	}
	a := AnalyzeTrends(build(), Trends{})
	b := AnalyzeTrends(build(), Trends{})
	if a != b {
		t.Fatalf("trend analysis not deterministic: %v vs %v", a, b)
	}
}
