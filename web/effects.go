package web

import (
	"math"
	"time"

	"github.com/simukka/ninja-slice/common"
	"github.com/simukka/ninja-slice/game"
)

// Animation timings in seconds
const (
	PopupGrow = 0.2
	PopupBack = 0.2
	PopupFade = 0.3
	PopupLife = PopupGrow + PopupBack + PopupFade

	HalfLife = 0.5
)

// Popup is a floating combo label.
type Popup struct {
	X, Y  float64
	Label string
	Age   float64
}

// Offset returns the vertical jump, scale and alpha of the popup at its age.
func (p Popup) Offset() (dy, scale, alpha float64) {
	switch {
	case p.Age < PopupGrow:
		t := easeOutBack(p.Age / PopupGrow)
		return -30 * t, 1.3 * t, 1
	case p.Age < PopupGrow+PopupBack:
		t := (p.Age - PopupGrow) / PopupBack
		return -30 * (1 - t), 1.3 - 0.3*t, 1
	case p.Age < PopupLife:
		t := (p.Age - PopupGrow - PopupBack) / PopupFade
		return 0, 1, 1 - t
	default:
		return 0, 1, 0
	}
}

func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Half is one side of a sliced entity flying apart.
type Half struct {
	X, Y     float64
	Radius   float64
	Rotation float64
	Icon     string
	Kind     game.Kind
	Left     bool
	Age      float64
}

// Transform returns the position offset, extra rotation in radians and alpha.
func (h Half) Transform() (dx, dy, rotation, alpha float64) {
	t := math.Min(h.Age/HalfLife, 1)
	side := 1.0
	if h.Left {
		side = -1
	}
	return side * 50 * t, -100 * t, side * math.Pi / 4 * t, 1 - t
}

// Shake is a decaying camera shake.
type Shake struct {
	remaining float64
	intensity float64
}

// Start begins a shake, replacing any running one.
func (s *Shake) Start(d time.Duration, intensity float64) {
	s.remaining = d.Seconds()
	s.intensity = intensity
}

// Active reports whether the shake is still running.
func (s *Shake) Active() bool { return s.remaining > 0 }

// Update advances the shake by dt seconds.
func (s *Shake) Update(dt float64) {
	if s.remaining > 0 {
		s.remaining = math.Max(0, s.remaining-dt)
	}
}

// Offset returns a random view offset proportional to the view size.
func (s *Shake) Offset(rng *common.SeededRNG, width, height float64) (dx, dy float64) {
	if !s.Active() {
		return 0, 0
	}
	return rng.RandomFloat(-1, 1) * s.intensity * width, rng.RandomFloat(-1, 1) * s.intensity * height
}

// Effects holds every transient animation drawn over the session.
type Effects struct {
	Popups []Popup
	Halves []Half
	Shake  Shake
}

// AddCut splits a cut entity into two halves.
func (fx *Effects) AddCut(e *game.Entity) {
	for _, left := range []bool{true, false} {
		fx.Halves = append(fx.Halves, Half{
			X:        e.X,
			Y:        e.Y,
			Radius:   e.Radius,
			Rotation: e.Rotation,
			Icon:     e.Icon,
			Kind:     e.Kind,
			Left:     left,
		})
	}
}

// AddPopup shows a label above the given point.
func (fx *Effects) AddPopup(x, y float64, label string) {
	fx.Popups = append(fx.Popups, Popup{X: x, Y: y - 30, Label: label})
}

// Update ages every animation by dt seconds and drops the finished ones.
func (fx *Effects) Update(dt float64) {
	fx.Shake.Update(dt)

	for i := len(fx.Popups) - 1; i >= 0; i-- {
		fx.Popups[i].Age += dt
		if fx.Popups[i].Age >= PopupLife {
			fx.Popups = append(fx.Popups[:i], fx.Popups[i+1:]...)
		}
	}
	for i := len(fx.Halves) - 1; i >= 0; i-- {
		fx.Halves[i].Age += dt
		if fx.Halves[i].Age >= HalfLife {
			fx.Halves = append(fx.Halves[:i], fx.Halves[i+1:]...)
		}
	}
}

// Clear drops every animation.
func (fx *Effects) Clear() {
	fx.Popups = fx.Popups[:0]
	fx.Halves = fx.Halves[:0]
	fx.Shake = Shake{}
}
