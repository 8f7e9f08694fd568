package agents

import "github.com/mnky9800n/egatrader/internal/economy"

// TrendInterval is the minimum simulated time between trend refreshes.
const TrendInterval = 5.0

// Trends holds the estimated direction of each commodity's price.
// Positive means recent observations are above older ones.
type Trends [economy.NumCommodities]float64

// AnalyzeTrends refreshes trends from memory. Commodities with fewer than two
// remembered prices keep their previous estimate.
func AnalyzeTrends(m *TradeMemory, prev Trends) Trends {
	out := prev
	for _, c := range economy.AllCommodities {
		if t, ok := Trend(m.Prices(c)); ok {
			out[c] = t
		}
	}
	return out
}

// Trend compares the average of the last three prices with the average of
// everything before them. With three or fewer prices the oldest price is
// the baseline; with fewer than three the latest price alone is "recent".
// Returns false when there are fewer than two prices.
func Trend(prices []float64) (float64, bool) {
	n := len(prices)
	if n < 2 {
		return 0, false
	}

	recent := prices[n-1]
	if n >= 3 {
		recent = mean(prices[n-3:])
	}
	older := prices[0]
	if n > 3 {
		older = mean(prices[:n-3])
	}

	if older <= 0 {
		return 0, true
	}
	return (recent - older) / older, true
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
