package agents

import (
	"testing"

	"github.com/mnky9800n/egatrader/internal/economy"
	"github.com/mnky9800n/egatrader/internal/galaxy"
)

func pricesAll(v float64) [economy.NumCommodities]float64 {
	var p [economy.NumCommodities]float64
	for i := range p {
		p[i] = v
	}
	return p
}

func TestTradeMemoryKeepsFirstInsertionOrder(t *testing.T) {
	m := NewTradeMemory()
	a := galaxy.Quadrant{X: 1, Y: 1}
	b := galaxy.Quadrant{X: 2, Y: 5}

	m.Record(a, pricesAll(100), 1)
	m.Record(b, pricesAll(110), 2)
	m.Record(a, pricesAll(120), 3)

	if m.Len() != 2 {
		t.Fatalf("expected 2 quadrants, got %d", m.Len())
	}
	got := m.Prices(economy.Food)
	if len(got) != 2 || got[0] != 120 || got[1] != 110 {
		t.Fatalf("expected [120 110], got %v", got)
	}
	qs := m.Quadrants()
	if qs[0] != a || qs[1] != b {
		t.Fatalf("unexpected quadrant order %v", qs)
	}
}

func TestTradeMemoryLookupTimestamps(t *testing.T) {
	m := NewTradeMemory()
	q := galaxy.Quadrant{X: 0, Y: 3}
	if _, ok := m.Lookup(q); ok {
		t.Fatalf("expected empty lookup")
	}
	m.Record(q, pricesAll(80), 4.5)
	entry, ok := m.Lookup(q)
	if !ok {
		t.Fatalf("expected entry")
	}
	if entry[economy.Fuel].Price != 80 || entry[economy.Fuel].Time != 4.5 {
		t.Fatalf("unexpected observation %+v", entry[economy.Fuel])
	}
}
