package game

import (
	"fmt"
	"math"
)

// Metrics is the end-of-run snapshot submitted to the leaderboard.
type Metrics struct {
	Points     int     `json:"points"`
	Time       float64 `json:"time"`
	ComboTime  float64 `json:"combo_time"`
	ObjectsCut int     `json:"objects_cut"`
}

// Score tracks points, fails and the combo chain of a run.
type Score struct {
	Points     int
	Fails      int
	Combo      int
	ObjectsCut int

	ComboTimer      float64 // seconds left before the combo drops
	Elapsed         float64 // seconds of simulated play
	ComboActiveTime float64 // seconds spent with a live combo
}

// Multiplier returns the point multiplier for the current combo.
func (s *Score) Multiplier() float64 {
	if s.Combo < 1 {
		return 1
	}
	return 1 + float64(s.Combo-1)*ComboStep
}

// CutGood scores a good cut and returns the points gained and the multiplier used.
func (s *Score) CutGood() (gained int, multiplier float64) {
	s.Combo++
	s.ComboTimer = ComboDuration
	multiplier = s.Multiplier()
	gained = int(math.Floor(BasePoints * multiplier))
	s.Points += gained
	s.ObjectsCut++
	return gained, multiplier
}

// StormCut scores one entity cleared by a storm. Storm clears do not count
// towards ObjectsCut.
func (s *Score) StormCut() int {
	before := s.Points
	s.Points++
	s.Combo++
	s.ComboTimer = ComboDuration
	s.Points += int(math.Floor(float64(s.Points) * (s.Multiplier() - 1)))
	return s.Points - before
}

// CutHazard records a hazard cut. Returns true when the run is over.
func (s *Score) CutHazard() bool {
	return s.fail()
}

// Miss records a good entity leaving the screen. Returns true when the run is over.
func (s *Score) Miss() bool {
	return s.fail()
}

func (s *Score) fail() bool {
	s.Fails++
	s.Combo = 0
	return s.GameOver()
}

// GameOver reports whether the fail limit has been reached.
func (s *Score) GameOver() bool {
	return s.Fails >= MaxFails
}

// Tick advances the run clock and decays the combo.
func (s *Score) Tick(dt float64) {
	s.Elapsed += dt
	if s.Combo <= 0 {
		return
	}
	s.ComboTimer -= dt
	if s.ComboTimer > 0 {
		s.ComboActiveTime += dt
	} else {
		s.Combo = 0
	}
}

// Metrics snapshots the run for submission.
func (s *Score) Metrics() Metrics {
	return Metrics{
		Points:     s.Points,
		Time:       s.Elapsed,
		ComboTime:  s.ComboActiveTime,
		ObjectsCut: s.ObjectsCut,
	}
}

// Reset zeroes every counter.
func (s *Score) Reset() {
	*s = Score{}
}

// ComboLabel formats the multiplier the way the HUD shows it.
func ComboLabel(multiplier float64) string {
	return fmt.Sprintf("Combo x%.1f", multiplier)
}
