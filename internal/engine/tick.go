// Package engine provides the turn-based game clock and the simulation that
// ties the galaxy, the player ship, and the autonomous traders together.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Default turn schedule.
const (
	DefaultTimeStep       = 0.1 // Stardate advance per processed command
	DefaultAIInterval     = 3   // Traders update every 3 turns
	DefaultReportInterval = 30  // Market report every 30 turns
)

// Engine drives the simulation forward one turn at a time. In the
// interactive game a turn is one processed command; in headless mode Run
// advances turns on a wall-clock interval.
type Engine struct {
	Turn           uint64  // Turns processed (monotonic, never resets)
	Stardate       float64 // Simulated time
	TimeStep       float64 // Stardate advance per turn
	AIInterval     uint64  // Turns between trader updates
	ReportInterval uint64  // Turns between market reports (0 = never)

	Interval time.Duration // Wall-clock time per turn in Run
	Speed    float64       // Multiplier for Run: 1.0 = real-time, 0 = paused

	// Callbacks for each schedule layer, populated during setup.
	OnTurn     func(turn uint64, stardate float64) // Every turn
	OnAIUpdate func(turn uint64, stardate float64) // Every AIInterval turns
	OnReport   func(turn uint64, stardate float64) // Every ReportInterval turns
}

// NewEngine creates an engine with the default schedule.
func NewEngine() *Engine {
	return &Engine{
		TimeStep:       DefaultTimeStep,
		AIInterval:     DefaultAIInterval,
		ReportInterval: DefaultReportInterval,
		Interval:       time.Second,
		Speed:          1.0,
	}
}

// Advance processes one turn: the stardate moves forward by TimeStep, the
// turn counter increments, and any callbacks due this turn fire.
func (e *Engine) Advance() {
	e.Stardate += e.TimeStep
	e.Turn++

	if e.OnTurn != nil {
		e.OnTurn(e.Turn, e.Stardate)
	}

	if e.AIInterval > 0 && e.Turn%e.AIInterval == 0 && e.OnAIUpdate != nil {
		e.OnAIUpdate(e.Turn, e.Stardate)
	}

	if e.ReportInterval > 0 && e.Turn%e.ReportInterval == 0 && e.OnReport != nil {
		e.OnReport(e.Turn, e.Stardate)
	}
}

// Run advances turns on the wall clock until ctx is done or maxTurns turns
// have been processed (0 = unlimited).
func (e *Engine) Run(ctx context.Context, maxTurns uint64) {
	slog.Info("simulation engine started", "turn", e.Turn, "stardate", FormatStardate(e.Stardate), "speed", e.Speed)

	var done uint64
	for maxTurns == 0 || done < maxTurns {
		if e.Speed <= 0 {
			// Paused; check again shortly.
			if !sleep(ctx, 100*time.Millisecond) {
				break
			}
			continue
		}

		start := time.Now()
		e.Advance()
		done++

		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target && !sleep(ctx, target-elapsed) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	slog.Info("simulation engine stopped", "turn", e.Turn, "stardate", FormatStardate(e.Stardate))
}

// sleep waits for d or until ctx is done. It reports whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// FormatStardate renders a stardate with one decimal place.
func FormatStardate(sd float64) string {
	return fmt.Sprintf("%.1f", sd)
}
