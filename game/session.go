package game

import (
	"fmt"
	"math"

	"github.com/simukka/ninja-slice/common"
)

// Session runs one game mode: it owns the live entities, the grid, the trail,
// the score and the spawn timers. A Session is not safe for concurrent use;
// every call is expected from the host's frame or input callback.
type Session struct {
	cfg     Config
	assets  *Assets
	rng     *common.SeededRNG
	host    Host
	spawner *Spawner

	width, height float64

	entities []*Entity
	grid     *SpatialGrid
	trail    *Trail
	score    Score
	sched    Scheduler
	slowmo   slowmo

	cutting bool
	paused  bool
	over    bool
}

// NewSession creates a session sized to the default viewport.
// A nil rng uses seed 0; a nil host discards events.
func NewSession(cfg Config, assets *Assets, rng *common.SeededRNG, host Host) *Session {
	if rng == nil {
		rng = common.NewSeededRNG(0)
	}
	if host == nil {
		host = nopHost{}
	}
	if cfg.TrailLength <= 0 {
		cfg.TrailLength = DefaultConfig(cfg.Mode).TrailLength
	}
	if cfg.BurstMax < cfg.BurstMin {
		cfg.BurstMax = cfg.BurstMin
	}
	return &Session{
		cfg:     cfg,
		assets:  assets,
		rng:     rng,
		host:    host,
		spawner: NewSpawner(cfg, rng, assets),
		width:   WIDTH,
		height:  HEIGHT,
		grid:    NewSpatialGrid(cfg.CellSize),
		trail:   NewTrail(cfg.TrailLength),
	}
}

// Dispatch applies one input command.
func (s *Session) Dispatch(cmd Command) {
	switch c := cmd.(type) {
	case PointerDown:
		if s.over || s.paused {
			return
		}
		s.cutting = true
		s.trail.Clear()
		s.pointer(c.X, c.Y)
	case PointerMove:
		if !s.cutting || s.over || s.paused {
			return
		}
		s.pointer(c.X, c.Y)
	case PointerUp:
		s.cutting = false
		s.trail.Clear()
	case Tick:
		s.tick(c.DT)
	case Resize:
		if c.Width > 0 && c.Height > 0 {
			s.width, s.height = c.Width, c.Height
		}
	case TogglePause:
		if s.over {
			return
		}
		s.paused = !s.paused
		// A gesture never spans a pause.
		s.cutting = false
		s.trail.Clear()
		s.host.Handle(PauseChanged{Paused: s.paused})
	default:
		panic(fmt.Sprintf("game: unhandled command %T", cmd))
	}
}

// Restart clears the session and starts a new run.
func (s *Session) Restart() {
	s.reset()
	s.over = false
	s.host.Handle(ScoreChanged{Score: s.score})
}

// Spawn adds an entity to the live set and the grid.
func (s *Session) Spawn(e *Entity) {
	if e == nil {
		return
	}
	if e.ID == 0 {
		e.ID = s.spawner.NextID()
	}
	s.entities = append(s.entities, e)
	s.grid.Insert(e)
	s.host.Handle(EntitySpawned{Entity: e})
}

// Cut resolves a slice on a live entity. Cutting an entity twice, or one that
// is no longer live, is a no-op. Returns whether the cut happened.
func (s *Session) Cut(e *Entity) bool {
	if e == nil || e.cut || s.over {
		return false
	}
	idx := s.indexOf(e)
	if idx < 0 {
		return false
	}
	e.cut = true
	s.grid.Remove(e)
	s.removeAt(idx)

	switch k := e.Kind.(type) {
	case Good:
		gained, mult := s.score.CutGood()
		s.host.Handle(EntityCut{Entity: e, Points: gained})
		s.host.Handle(ComboFeedback{X: e.X, Y: e.Y - 30, Multiplier: mult, Label: ComboLabel(mult)})
		s.host.Handle(PlaySound{Category: SoundCuts, Sub: SubDefault})
		s.host.Handle(ScoreChanged{Score: s.score})
	case Hazard:
		over := s.score.CutHazard()
		s.host.Handle(EntityCut{Entity: e})
		s.host.Handle(CameraShake{Duration: ShakeDuration, Intensity: ShakeIntensity})
		s.host.Handle(PlaySound{Category: SoundCuts, Sub: SubHazard})
		s.host.Handle(ScoreChanged{Score: s.score})
		if over {
			s.gameOver()
		}
	case PowerUp:
		s.host.Handle(EntityCut{Entity: e})
		s.activate(k.Effect)
	default:
		panic(unhandledKind(e.Kind))
	}
	return true
}

func (s *Session) pointer(x, y float64) {
	s.trail.Push(x, y)
	s.hitTest(x, y)
}

// hitTest cuts the first live entity whose centre lies within its radius of
// (x, y). At most one entity is cut per call.
func (s *Session) hitTest(x, y float64) *Entity {
	for _, key := range s.grid.NeighborhoodKeys(x, y) {
		// Iterate a snapshot: cutting mutates the bucket.
		for _, e := range s.grid.Bucket(key) {
			if e.cut {
				continue
			}
			if math.Hypot(e.X-x, e.Y-y) < e.Radius {
				s.grid.Remove(e)
				s.Cut(e)
				return e
			}
		}
	}
	return nil
}

func (s *Session) tick(dt float64) {
	if s.paused || s.over || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	s.score.Tick(dt)
	s.tickSlowmo(dt)

	spawn, powerUp := s.sched.Advance(dt, s.score.Elapsed, s.slowmo.factor(), s.cfg.PowerUps)
	if spawn {
		n := s.spawner.BurstSize()
		for i := 0; i < n; i++ {
			e := s.spawner.SpawnEntity(s.entities, s.width, s.height, s.slowmo.factor())
			if e == nil {
				continue
			}
			s.Spawn(e)
			s.host.Handle(PlaySound{Category: SoundEffects, Sub: SubJump})
		}
	}
	if powerUp {
		s.Spawn(s.spawner.SpawnPowerUp(s.width))
	}

	s.step(dt)
}

// step integrates every live entity and expires those that left the play area.
func (s *Session) step(dt float64) {
	slow := s.slowmo.factor()

	// Reverse order so expiry can remove in place.
	for i := len(s.entities) - 1; i >= 0; i-- {
		e := s.entities[i]
		integrate(e, dt, slow)
		s.grid.Update(e)

		if !s.offscreen(e) {
			continue
		}
		s.expire(i)
		if s.over {
			return
		}
	}
}

func integrate(e *Entity, dt, slow float64) {
	switch e.Kind.(type) {
	case Good, Hazard:
		e.VY += Gravity * dt * slow
		e.X += e.VX * dt
		e.Y += e.VY*dt*slow - math.Sin(e.VX*ArcFrequency)*ArcAmplitude*dt*slow
	case PowerUp:
		e.X += e.VX * dt
		e.Y += e.VY * dt
	default:
		panic(unhandledKind(e.Kind))
	}
	e.Rotation += e.RotationSpeed * dt
}

// offscreen reports whether e has left the play area. The bottom edge only
// counts while falling, so entities launched from below the view survive
// their first frames.
func (s *Session) offscreen(e *Entity) bool {
	if e.X < -ExpiryMargin || e.X > s.width+ExpiryMargin {
		return true
	}
	return e.Y > s.height+ExpiryMargin && e.VY > 0
}

func (s *Session) expire(i int) {
	e := s.entities[i]
	s.grid.Remove(e)
	s.removeAt(i)

	switch e.Kind.(type) {
	case Good:
		over := s.score.Miss()
		s.host.Handle(EntityExpired{Entity: e, Missed: true})
		s.host.Handle(ScoreChanged{Score: s.score})
		if over {
			s.gameOver()
		}
	case Hazard, PowerUp:
		s.host.Handle(EntityExpired{Entity: e})
	default:
		panic(unhandledKind(e.Kind))
	}
}

// gameOver resets the session and reports the finished run. It fires once;
// the session ignores input until Restart.
func (s *Session) gameOver() {
	if s.over {
		return
	}
	metrics := s.score.Metrics()
	s.reset()
	s.over = true
	s.host.Handle(GameOver{Mode: s.cfg.Mode, Metrics: metrics})
}

func (s *Session) reset() {
	s.stopSlowmo()
	s.entities = nil
	s.grid.Clear()
	s.trail.Clear()
	s.score.Reset()
	s.sched.Reset()
	s.cutting = false
	s.paused = false
}

func (s *Session) indexOf(e *Entity) int {
	for i, other := range s.entities {
		if other == e {
			return i
		}
	}
	return -1
}

func (s *Session) removeAt(i int) {
	copy(s.entities[i:], s.entities[i+1:])
	s.entities[len(s.entities)-1] = nil
	s.entities = s.entities[:len(s.entities)-1]
}

// Entities returns a copy of the live set in spawn order.
func (s *Session) Entities() []*Entity {
	return append([]*Entity(nil), s.entities...)
}

// Score returns a copy of the current score.
func (s *Session) Score() Score { return s.score }

// Trail returns the current slice trail, oldest first.
func (s *Session) Trail() []Point { return s.trail.Points() }

// Grid exposes the spatial index for inspection.
func (s *Session) Grid() *SpatialGrid { return s.grid }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Mode returns the session's game mode.
func (s *Session) Mode() Mode { return s.cfg.Mode }

// Assets returns the registry the session spawns from.
func (s *Session) Assets() *Assets { return s.assets }

// Size returns the play area.
func (s *Session) Size() (width, height float64) { return s.width, s.height }

// Cutting reports whether a slice gesture is in progress.
func (s *Session) Cutting() bool { return s.cutting }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Over reports whether the run has ended and the session awaits Restart.
func (s *Session) Over() bool { return s.over }

// SlowmoActive reports whether slow motion is in effect.
func (s *Session) SlowmoActive() bool { return s.slowmo.active }

// SlowFactor returns the current slow-motion factor, 1 when inactive.
func (s *Session) SlowFactor() float64 { return s.slowmo.factor() }
