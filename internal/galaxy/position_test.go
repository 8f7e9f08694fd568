package galaxy

import "testing"

func TestDistanceSameQuadrantIsSectorManhattan(t *testing.T) {
	a := Position{1, 2, 0, 0}
	b := Position{1, 2, 3, 4}
	if got := a.DistanceTo(b); got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestDistanceAcrossQuadrantsIgnoresSectors(t *testing.T) {
	a := Position{0, 0, 7, 7}
	b := Position{2, 1, 0, 0}
	if got := a.DistanceTo(b); got != 24 {
		t.Fatalf("expected 3 quadrant steps × 8 = 24, got %v", got)
	}
}

func TestDistanceSymmetricAndNonNegative(t *testing.T) {
	var all []Position
	for q := 0; q < GridSize; q += 3 {
		for s := 0; s < GridSize; s += 2 {
			all = append(all, Position{q, GridSize - 1 - q, s, q}, Position{q, q, s, GridSize - 1 - s})
		}
	}
	for _, a := range all {
		if a.DistanceTo(a) != 0 {
			t.Fatalf("%v: self distance %v", a, a.DistanceTo(a))
		}
		for _, b := range all {
			d := a.DistanceTo(b)
			if d < 0 {
				t.Fatalf("negative distance %v -> %v", a, b)
			}
			if d != b.DistanceTo(a) {
				t.Fatalf("asymmetric distance %v <-> %v", a, b)
			}
		}
	}
}

func TestPositionValid(t *testing.T) {
	if !(Position{0, 7, 7, 0}).Valid() {
		t.Errorf("expected corner position valid")
	}
	if (Position{8, 0, 0, 0}).Valid() {
		t.Errorf("expected quadrant 8 invalid")
	}
	if (Position{0, 0, -1, 0}).Valid() {
		t.Errorf("expected negative sector invalid")
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{1, 2, 3, 4}).String(); got != "Q1,2 S3,4" {
		t.Fatalf("unexpected string %q", got)
	}
}
