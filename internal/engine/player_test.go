package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/mnky9800n/egatrader/internal/agents"
	"github.com/mnky9800n/egatrader/internal/economy"
)

func TestMoveCost(t *testing.T) {
	cases := []struct {
		from, to [4]int
		want     int
	}{
		{[4]int{1, 1, 3, 3}, [4]int{1, 1, 3, 3}, 0},
		{[4]int{1, 1, 3, 3}, [4]int{1, 1, 5, 0}, 5},
		{[4]int{1, 1, 3, 3}, [4]int{2, 3, 3, 3}, 300},
		{[4]int{0, 0, 0, 0}, [4]int{7, 7, 7, 7}, 1414},
	}
	for _, tc := range cases {
		from := at(tc.from[0], tc.from[1], tc.from[2], tc.from[3])
		to := at(tc.to[0], tc.to[1], tc.to[2], tc.to[3])
		if got := MoveCost(from, to); got != tc.want {
			t.Errorf("MoveCost(%v, %v) = %d, want %d", from, to, got, tc.want)
		}
	}
}

func TestMoveToSpendsEnergy(t *testing.T) {
	s := testSim()
	cost, err := s.MoveTo(at(4, 2, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	// 3+1 quadrants and 3+3 sectors.
	if cost != 406 {
		t.Fatalf("expected cost 406, got %d", cost)
	}
	if s.Player.Energy != 594 || s.Player.Position != at(4, 2, 0, 0) {
		t.Fatalf("unexpected ship state: energy %d at %v", s.Player.Energy, s.Player.Position)
	}
}

func TestMoveToInsufficientEnergyChangesNothing(t *testing.T) {
	s := testSim()
	s.Player.Energy = 50
	_, err := s.MoveTo(at(2, 1, 3, 3))
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("expected ErrInsufficientEnergy, got %v", err)
	}
	if s.Player.Energy != 50 || s.Player.Position != at(1, 1, 3, 3) {
		t.Fatal("failed move changed the ship")
	}
}

func TestMoveToOutOfRange(t *testing.T) {
	s := testSim()
	if _, err := s.MoveTo(at(8, 0, 0, 0)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := s.MoveSector(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestMoveSectorStaysInQuadrant(t *testing.T) {
	s := testSim()
	cost, err := s.MoveSector(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cost != 6 || s.Player.Position != at(1, 1, 0, 0) {
		t.Fatalf("expected cost 6 at Q1,1 S0,0, got %d at %v", cost, s.Player.Position)
	}
}

func TestDockWithinOneSector(t *testing.T) {
	s := testSim()
	st, docked, err := s.Dock()
	if err != nil {
		t.Fatal(err)
	}
	if !docked || st.Name != "Alpha Station 1" || s.Player.Position != st.Position {
		t.Fatalf("expected to dock at Alpha, got %v docked=%v at %v", st, docked, s.Player.Position)
	}

	st, docked, err = s.Dock()
	if err != nil || docked || st.Name != "Alpha Station 1" {
		t.Fatalf("second dock should report already docked, got %v %v %v", st, docked, err)
	}
}

func TestDockOutOfRange(t *testing.T) {
	s := testSim()
	s.Player.Position = at(1, 1, 5, 5)
	if _, _, err := s.Dock(); !errors.Is(err, ErrNoStationInRange) {
		t.Fatalf("expected ErrNoStationInRange, got %v", err)
	}
	if s.Player.Position != at(1, 1, 5, 5) {
		t.Fatal("failed dock moved the ship")
	}
}

func TestTradeRequiresStation(t *testing.T) {
	s := testSim()
	if _, err := s.Buy(economy.Food, 1); !errors.Is(err, ErrNotDocked) {
		t.Fatalf("expected ErrNotDocked, got %v", err)
	}
	if _, err := s.Sell(economy.Food, 1); !errors.Is(err, ErrNotDocked) {
		t.Fatalf("expected ErrNotDocked, got %v", err)
	}
	if _, err := s.MarketAt(); !errors.Is(err, ErrNotDocked) {
		t.Fatalf("expected ErrNotDocked, got %v", err)
	}
}

func TestBuyMovesMarket(t *testing.T) {
	s := testSim()
	if _, _, err := s.Dock(); err != nil {
		t.Fatal(err)
	}
	st := s.CurrentStation()

	tr, err := s.Buy(economy.Food, 10)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Side != agents.SideBuy || tr.Price != 100 || tr.Quantity != 10 {
		t.Fatalf("unexpected trade %+v", tr)
	}
	if s.Player.Cargo[economy.Food] != 10 || s.Player.Credits != 4000 {
		t.Fatalf("expected 10 food and 4000 credits, got %d and %.2f", s.Player.Cargo[economy.Food], s.Player.Credits)
	}
	// Impact +10/100 × 0.1 = 1%.
	if math.Abs(st.Market.Price(economy.Food)-101) > 1e-9 || st.Market.Stock(economy.Food) != 40 {
		t.Fatalf("market not adjusted: %.4f / %d", st.Market.Price(economy.Food), st.Market.Stock(economy.Food))
	}
	if len(s.Events) != 2 || s.Stats.Trades != 1 {
		t.Fatalf("expected dock and trade events, got %d events, %d trades", len(s.Events), s.Stats.Trades)
	}
}

func TestBuyLimits(t *testing.T) {
	s := testSim()
	s.Dock()

	// Luxuries at 800: 5000 credits affords 6.
	n, err := s.MaxBuy(economy.Luxuries)
	if err != nil || n != 6 {
		t.Fatalf("expected max 6, got %d (%v)", n, err)
	}
	if _, err := s.Buy(economy.Luxuries, 7); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := s.Buy(economy.Luxuries, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if s.Player.Credits != 5000 || s.Player.Cargo.Total() != 0 {
		t.Fatal("rejected buys changed the ship")
	}

	// Stock caps Food at 50 even with credits for more.
	if n, _ := s.MaxBuy(economy.Food); n != 50 {
		t.Fatalf("expected stock-limited max 50, got %d", n)
	}

	// Cargo space caps Fuel.
	s.Player.Cargo[economy.Minerals] = 95
	if n, _ := s.MaxBuy(economy.Fuel); n != 5 {
		t.Fatalf("expected space-limited max 5, got %d", n)
	}
}

func TestSell(t *testing.T) {
	s := testSim()
	s.Dock()

	if _, err := s.Sell(economy.Technology, 1); !errors.Is(err, ErrNothingToSell) {
		t.Fatalf("expected ErrNothingToSell, got %v", err)
	}

	s.Player.Cargo[economy.Technology] = 4
	if _, err := s.Sell(economy.Technology, 5); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	tr, err := s.Sell(economy.Technology, 4)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Side != agents.SideSell || s.Player.Cargo[economy.Technology] != 0 || s.Player.Credits != 7000 {
		t.Fatalf("unexpected result %+v, credits %.2f", tr, s.Player.Credits)
	}
	if st := s.CurrentStation(); st.Market.Price(economy.Technology) >= 500 || st.Market.Stock(economy.Technology) != 54 {
		t.Fatal("selling should lower price and raise stock")
	}
}

func TestScan(t *testing.T) {
	s := testSim()
	res := s.Scan()
	if res.Quadrant.X != 1 || res.Quadrant.Y != 1 {
		t.Fatalf("unexpected quadrant %+v", res.Quadrant)
	}
	if len(res.Stations) != 1 || res.Stations[0].Distance != 1 {
		t.Fatalf("expected Alpha at distance 1, got %+v", res.Stations)
	}
	if len(res.Ships) != 0 {
		t.Fatalf("expected no ships, got %d", len(res.Ships))
	}
}
