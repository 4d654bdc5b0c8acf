package game

import (
	"math"
	"testing"

	"github.com/simukka/ninja-slice/common"
)

// recorder is a Host that keeps every event.
type recorder struct {
	events []Event
}

func (r *recorder) Handle(ev Event) {
	r.events = append(r.events, ev)
}

func countEvents[T Event](r *recorder) int {
	n := 0
	for _, ev := range r.events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func lastEvent[T Event](r *recorder) (T, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if ev, ok := r.events[i].(T); ok {
			return ev, true
		}
	}
	var zero T
	return zero, false
}

// newTestSession builds a session without icons, so the scheduler never spawns
// on its own and tests control the live set.
func newTestSession(mode Mode) (*Session, *recorder) {
	rec := &recorder{}
	s := NewSession(DefaultConfig(mode), nil, common.NewSeededRNG(1), rec)
	return s, rec
}

type bogusKind struct{}

func (bogusKind) isKind()        {}
func (bogusKind) String() string { return "bogus" }

func TestSession_SliceScenario(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	e := &Entity{X: 100, Y: 100, Radius: 40, Kind: Good{}}
	s.Spawn(e)

	s.Dispatch(PointerDown{X: 0, Y: 0})
	if e.IsCut() {
		t.Fatal("Expected no cut 141 units away")
	}
	s.Dispatch(PointerMove{X: 110, Y: 105})

	if !e.IsCut() {
		t.Fatal("Expected entity to be cut at distance ~11.18")
	}
	score := s.Score()
	if score.Points != 10 || score.ObjectsCut != 1 || score.Combo != 1 {
		t.Errorf("Expected 10 points, 1 cut, combo 1, got %+v", score)
	}
	if len(s.Entities()) != 0 || s.Grid().Len() != 0 {
		t.Error("Expected entity removed from the live set and grid")
	}
	fb, ok := lastEvent[ComboFeedback](rec)
	if !ok || fb.Label != "Combo x1.0" || fb.Y != 70 {
		t.Errorf("Unexpected combo feedback %+v", fb)
	}
}

func TestSession_AtMostOneCutPerEvent(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	for i := 0; i < 3; i++ {
		s.Spawn(&Entity{X: 200, Y: 200, Radius: 50, Kind: Good{}})
	}

	s.Dispatch(PointerDown{X: 200, Y: 200})

	if n := countEvents[EntityCut](rec); n != 1 {
		t.Errorf("Expected 1 cut, got %d", n)
	}
	if n := len(s.Entities()); n != 2 {
		t.Errorf("Expected 2 entities left, got %d", n)
	}

	s.Dispatch(PointerMove{X: 201, Y: 201})
	if n := countEvents[EntityCut](rec); n != 2 {
		t.Errorf("Expected a second cut on the next move, got %d", n)
	}
}

func TestSession_CutIsIdempotent(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	e := &Entity{X: 300, Y: 300, Radius: 40, Kind: Good{}}
	s.Spawn(e)

	if !s.Cut(e) {
		t.Fatal("Expected first cut to resolve")
	}
	if s.Cut(e) {
		t.Error("Expected second cut to be a no-op")
	}

	if s.Score().Points != 10 || s.Score().Combo != 1 {
		t.Errorf("Expected a single score update, got %+v", s.Score())
	}
	if n := countEvents[EntityCut](rec); n != 1 {
		t.Errorf("Expected 1 cut event, got %d", n)
	}
}

func TestSession_CutIgnoresEntitiesNotLive(t *testing.T) {
	s, _ := newTestSession(ModeRanked)
	if s.Cut(&Entity{X: 10, Y: 10, Radius: 10, Kind: Good{}}) {
		t.Error("Expected cut of an unknown entity to be rejected")
	}
	if s.Cut(nil) {
		t.Error("Expected cut of nil to be rejected")
	}
}

func TestSession_ComboDecay(t *testing.T) {
	s, _ := newTestSession(ModeCasual)
	e := &Entity{X: 300, Y: 300, Radius: 40, Kind: Good{}}
	s.Spawn(e)
	s.Cut(e)

	for _, dt := range []float64{0.5, 0.5, 0.5, 0.4} {
		s.Dispatch(Tick{DT: dt})
	}
	if s.Score().Combo != 1 {
		t.Fatalf("Expected combo alive after 1.9s, got %d", s.Score().Combo)
	}
	s.Dispatch(Tick{DT: 0.2})
	if s.Score().Combo != 0 {
		t.Errorf("Expected combo reset after 2s, got %d", s.Score().Combo)
	}
}

func TestSession_ThreeHazardCutsEndRun(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	s.Dispatch(Tick{DT: 1})

	good := &Entity{X: 50, Y: 50, Radius: 30, Kind: Good{}}
	s.Spawn(good)
	s.Cut(good)

	for i := 0; i < 3; i++ {
		x := 200 + float64(i)*200
		s.Spawn(&Entity{X: x, Y: 400, Radius: 40, Kind: Hazard{}})
		s.Dispatch(PointerDown{X: x, Y: 400})
		s.Dispatch(PointerUp{})
	}

	if n := countEvents[CameraShake](rec); n != 3 {
		t.Errorf("Expected 3 camera shakes, got %d", n)
	}
	if n := countEvents[GameOver](rec); n != 1 {
		t.Fatalf("Expected exactly 1 game over, got %d", n)
	}
	over, _ := lastEvent[GameOver](rec)
	if over.Metrics != (Metrics{Points: 10, Time: 1, ObjectsCut: 1}) || over.Mode != ModeRanked {
		t.Errorf("Unexpected game over %+v", over)
	}

	if s.Score() != (Score{}) {
		t.Errorf("Expected zeroed score, got %+v", s.Score())
	}
	if len(s.Entities()) != 0 || s.Grid().Len() != 0 || len(s.Trail()) != 0 {
		t.Error("Expected live set, grid and trail to be cleared")
	}
	if !s.Over() {
		t.Error("Expected session to wait for restart")
	}

	// Further input is ignored until Restart.
	h := &Entity{X: 500, Y: 500, Radius: 40, Kind: Hazard{}}
	s.Spawn(h)
	s.Dispatch(PointerDown{X: 500, Y: 500})
	s.Dispatch(Tick{DT: 1})
	if h.IsCut() || s.Score().Elapsed != 0 {
		t.Error("Expected input to be ignored after game over")
	}
	if n := countEvents[GameOver](rec); n != 1 {
		t.Errorf("Expected game over to fire once, got %d", n)
	}

	s.Restart()
	if s.Over() || len(s.Entities()) != 0 {
		t.Error("Expected a fresh run after restart")
	}
}

func TestSession_ExpiryCountsAsFail(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	e := &Entity{X: 300, Y: HEIGHT + 50, VY: -100, Radius: 40, Kind: Good{}}
	s.Spawn(e)

	frames := 0
	for ; frames < 600 && len(s.Entities()) > 0; frames++ {
		s.Dispatch(Tick{DT: 1.0 / 60})
	}

	if len(s.Entities()) != 0 {
		t.Fatal("Expected entity to expire")
	}
	if frames < 2 {
		t.Errorf("Expected entity to rise before expiring, expired after %d frames", frames)
	}
	ev, ok := lastEvent[EntityExpired](rec)
	if !ok || !ev.Missed || ev.Entity != e {
		t.Errorf("Expected a missed expiry, got %+v", ev)
	}
	if s.Score().Fails != 1 || s.Score().Combo != 0 {
		t.Errorf("Expected 1 fail, got %+v", s.Score())
	}
}

func TestSession_HazardExpiryIsSilent(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	s.Spawn(&Entity{X: -40, Y: 300, VX: -200, Radius: 40, Kind: Hazard{}})

	s.Dispatch(Tick{DT: 0.1})

	if len(s.Entities()) != 0 {
		t.Fatal("Expected hazard to leave through the left edge")
	}
	if ev, _ := lastEvent[EntityExpired](rec); ev.Missed {
		t.Error("Expected hazard expiry not to count as a miss")
	}
	if s.Score().Fails != 0 {
		t.Errorf("Expected no fails, got %d", s.Score().Fails)
	}
}

func TestSession_MissesEndRunOnce(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	for i := 0; i < 4; i++ {
		s.Spawn(&Entity{X: 100 + float64(i)*100, Y: HEIGHT + 60, VY: 100, Radius: 40, Kind: Good{}})
	}

	s.Dispatch(Tick{DT: 1.0 / 60})

	if n := countEvents[GameOver](rec); n != 1 {
		t.Errorf("Expected 1 game over, got %d", n)
	}
	if n := countEvents[EntityExpired](rec); n != 3 {
		t.Errorf("Expected the run to stop at the third miss, got %d expiries", n)
	}
}

func TestSession_Motion(t *testing.T) {
	s, _ := newTestSession(ModeRanked)
	e := &Entity{X: 500, Y: 300, VX: 100, Radius: 40, RotationSpeed: 2, Kind: Good{}}
	p := &Entity{X: 200, Y: 100, VY: 50, Radius: PowerUpRadius, Kind: PowerUp{Effect: EffectShield}}
	s.Spawn(e)
	s.Spawn(p)

	s.Dispatch(Tick{DT: 0.1})

	if math.Abs(e.VY-80) > 1e-9 {
		t.Errorf("Expected vy 80, got %v", e.VY)
	}
	if math.Abs(e.X-510) > 1e-9 {
		t.Errorf("Expected x 510, got %v", e.X)
	}
	expectedY := 300 + 80*0.1 - math.Sin(100*ArcFrequency)*ArcAmplitude*0.1
	if math.Abs(e.Y-expectedY) > 1e-9 {
		t.Errorf("Expected y %v, got %v", expectedY, e.Y)
	}
	if math.Abs(e.Rotation-0.2) > 1e-9 {
		t.Errorf("Expected rotation 0.2, got %v", e.Rotation)
	}

	if p.VY != 50 || math.Abs(p.Y-105) > 1e-9 {
		t.Errorf("Expected power-up to drift without gravity, got y=%v vy=%v", p.Y, p.VY)
	}
}

func TestSession_GridTracksMovement(t *testing.T) {
	s, _ := newTestSession(ModeRanked)
	e := &Entity{X: 195, Y: 300, VX: 100, Radius: 40, Kind: Good{}}
	s.Spawn(e)

	s.Dispatch(Tick{DT: 0.1})

	key, ok := s.Grid().KeyOf(e)
	if !ok || key != s.Grid().Key(e.X, e.Y) {
		t.Errorf("Expected grid key to follow position, got %v for %v", key, e)
	}
}

func TestSession_Storm(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	g1 := &Entity{X: 100, Y: 300, Radius: 40, Kind: Good{}}
	g2 := &Entity{X: 300, Y: 300, Radius: 40, Kind: Good{}}
	hz := &Entity{X: 500, Y: 300, Radius: 40, Kind: Hazard{}}
	storm := &Entity{X: 700, Y: 300, Radius: PowerUpRadius, Kind: PowerUp{Effect: EffectStorm}}
	for _, e := range []*Entity{g1, g2, hz, storm} {
		s.Spawn(e)
	}

	s.Dispatch(PointerDown{X: 700, Y: 300})

	live := s.Entities()
	if len(live) != 1 || live[0] != hz {
		t.Fatalf("Expected only the hazard to remain, got %v", live)
	}
	if !g1.IsCut() || !g2.IsCut() {
		t.Error("Expected good entities marked cut")
	}
	score := s.Score()
	if score.Points != 3 || score.Combo != 2 || score.ObjectsCut != 0 {
		t.Errorf("Expected 3 points, combo 2, no objects cut, got %+v", score)
	}
	storms := 0
	for _, ev := range rec.events {
		if cut, ok := ev.(EntityCut); ok && cut.Storm {
			storms++
		}
	}
	if storms != 2 {
		t.Errorf("Expected 2 storm cuts, got %d", storms)
	}
	snd, _ := lastEvent[PlaySound](rec)
	if snd.Category != SoundPowerUps || snd.Sub != SubKunaiStorm {
		t.Errorf("Expected storm sound, got %+v", snd)
	}
}

func TestSession_Shield(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	shield := &Entity{X: 100, Y: 100, Radius: PowerUpRadius, Kind: PowerUp{Effect: EffectShield}}
	s.Spawn(shield)

	s.Cut(shield)

	if n := countEvents[ShieldActivated](rec); n != 1 {
		t.Errorf("Expected shield activation, got %d", n)
	}
	if s.Score() != (Score{}) {
		t.Errorf("Expected shield to leave the score alone, got %+v", s.Score())
	}
}

func TestSession_Slowmo(t *testing.T) {
	s, rec := newTestSession(ModeRanked)
	s.Spawn(&Entity{X: 100, Y: 100, Radius: PowerUpRadius, Kind: PowerUp{Effect: EffectSlowmo}})
	s.Spawn(&Entity{X: 300, Y: 100, Radius: PowerUpRadius, Kind: PowerUp{Effect: EffectSlowmo}})
	e := &Entity{X: 500, Y: 300, Radius: 40, Kind: Good{}}
	s.Spawn(e)

	s.Dispatch(PointerDown{X: 100, Y: 100})
	s.Dispatch(PointerMove{X: 300, Y: 100})

	if !s.SlowmoActive() || s.SlowFactor() != SlowmoFactor {
		t.Fatal("Expected slow motion to be active")
	}
	if n := countEvents[SlowmoChanged](rec); n != 1 {
		t.Errorf("Expected re-trigger to be ignored, got %d changes", n)
	}

	s.Dispatch(Tick{DT: 0.1})
	if math.Abs(e.VY-800*0.1*SlowmoFactor) > 1e-9 {
		t.Errorf("Expected slowed gravity, got vy=%v", e.VY)
	}
	if math.Abs(e.Y-(300+e.VY*0.1*SlowmoFactor)) > 1e-9 {
		t.Errorf("Expected slowed fall, got y=%v", e.Y)
	}

	for i := 0; i < 48; i++ {
		s.Dispatch(Tick{DT: 0.1})
	}
	if !s.SlowmoActive() {
		t.Fatal("Expected slow motion to last 5 seconds")
	}
	s.Dispatch(Tick{DT: 0.2})
	if s.SlowmoActive() {
		t.Error("Expected slow motion to end")
	}
	if ev, _ := lastEvent[SlowmoChanged](rec); ev.Active {
		t.Error("Expected an end-of-slowmo event")
	}
}

func TestSession_Pause(t *testing.T) {
	s, rec := newTestSession(ModeCasual)
	e := &Entity{X: 100, Y: 100, Radius: 40, Kind: Good{}}
	s.Spawn(e)

	s.Dispatch(TogglePause{})
	s.Dispatch(Tick{DT: 1})
	s.Dispatch(PointerDown{X: 100, Y: 100})

	if s.Score().Elapsed != 0 || e.IsCut() || e.Y != 100 {
		t.Error("Expected a paused session to ignore ticks and pointer input")
	}

	s.Dispatch(TogglePause{})
	s.Dispatch(Tick{DT: 1})
	if s.Score().Elapsed != 1 {
		t.Errorf("Expected resumed session to tick, got %v", s.Score().Elapsed)
	}
	if n := countEvents[PauseChanged](rec); n != 2 {
		t.Errorf("Expected 2 pause changes, got %d", n)
	}
}

func TestSession_PauseEndsGesture(t *testing.T) {
	s, _ := newTestSession(ModeCasual)

	s.Dispatch(PointerDown{X: 0, Y: 0})
	s.Dispatch(TogglePause{})
	s.Dispatch(TogglePause{})

	if s.Cutting() || len(s.Trail()) != 0 {
		t.Fatal("Expected pausing to end the gesture")
	}

	e := &Entity{X: 500, Y: 500, Radius: 40, Kind: Good{}}
	s.Spawn(e)
	s.Dispatch(PointerMove{X: 500, Y: 500})
	if e.IsCut() {
		t.Error("Expected a hover after resume not to cut")
	}
}

func TestSession_TickIgnoresInvalidDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(ModeRanked)
			e := &Entity{X: 100, Y: 100, VY: 10, Radius: 40, Kind: Good{}}
			s.Spawn(e)

			s.Dispatch(Tick{DT: tt.dt})
			if s.Score().Elapsed != 0 || e.Y != 100 {
				t.Fatalf("Expected tick to be ignored, got elapsed=%v y=%v", s.Score().Elapsed, e.Y)
			}

			s.Dispatch(Tick{DT: 0.1})
			if got := s.Score().Elapsed; math.Abs(got-0.1) > 1e-9 {
				t.Errorf("Expected elapsed 0.1 after a valid tick, got %v", got)
			}
		})
	}
}

func TestSession_PointerGesture(t *testing.T) {
	s, _ := newTestSession(ModeCasual)
	e := &Entity{X: 100, Y: 100, Radius: 40, Kind: Good{}}
	s.Spawn(e)

	s.Dispatch(PointerMove{X: 100, Y: 100})
	if e.IsCut() || len(s.Trail()) != 0 {
		t.Fatal("Expected moves outside a gesture to be ignored")
	}

	s.Dispatch(PointerDown{X: 500, Y: 500})
	for i := 0; i < 20; i++ {
		s.Dispatch(PointerMove{X: 500 + float64(i), Y: 500})
	}
	if n := len(s.Trail()); n != CasualTrailLength {
		t.Errorf("Expected trail capped at %d, got %d", CasualTrailLength, n)
	}

	s.Dispatch(PointerUp{})
	if s.Cutting() || len(s.Trail()) != 0 {
		t.Error("Expected pointer up to end the gesture and clear the trail")
	}
}

func TestSession_Resize(t *testing.T) {
	s, _ := newTestSession(ModeRanked)
	s.Dispatch(Resize{Width: 400, Height: 300})

	if w, h := s.Size(); w != 400 || h != 300 {
		t.Errorf("Expected 400x300, got %vx%v", w, h)
	}

	s.Spawn(&Entity{X: 460, Y: 100, Radius: 20, Kind: Hazard{}})
	s.Dispatch(Tick{DT: 0.01})
	if len(s.Entities()) != 0 {
		t.Error("Expected expiry to use the resized width")
	}
}

func TestSession_SpawnsFromAssets(t *testing.T) {
	rec := &recorder{}
	s := NewSession(DefaultConfig(ModeRanked), testAssets(), common.NewSeededRNG(2024), rec)

	// Slice every good entity as soon as it appears so the run never ends.
	for i := 0; i < 60*31; i++ {
		s.Dispatch(Tick{DT: 1.0 / 60})
		for _, e := range s.Entities() {
			if e.IsGood() {
				s.Cut(e)
			}
		}
	}
	if s.Over() {
		t.Fatal("Expected the run to survive")
	}

	spawned := 0
	powerUps := 0
	for _, ev := range rec.events {
		if sp, ok := ev.(EntitySpawned); ok {
			spawned++
			if sp.Entity.IsPowerUp() {
				powerUps++
			}
		}
	}
	if spawned == 0 {
		t.Error("Expected the scheduler to spawn entities")
	}
	if powerUps != 1 {
		t.Errorf("Expected 1 power-up in 31s, got %d", powerUps)
	}
	if n := countEvents[PlaySound](rec); n == 0 {
		t.Error("Expected jump sound cues")
	}
}

func TestSession_UnknownKindPanics(t *testing.T) {
	s, _ := newTestSession(ModeRanked)
	s.Spawn(&Entity{X: 100, Y: 100, Radius: 10, Kind: bogusKind{}})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on an unknown kind")
		}
	}()
	s.Dispatch(Tick{DT: 0.1})
}
