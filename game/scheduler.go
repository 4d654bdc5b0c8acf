package game

import (
	"math"

	"github.com/samber/lo"

	"github.com/simukka/ninja-slice/common"
)

// SpawnInterval returns the seconds between spawn bursts after elapsed seconds
// of play. slow is the active slow-motion factor (1 when inactive); a slowed
// session spawns proportionally less often.
func SpawnInterval(elapsed, slow float64) float64 {
	steps := math.Floor(elapsed / SpawnRampPeriod)
	interval := lo.Clamp(BaseSpawnInterval-steps*SpawnRampStep, MinSpawnInterval, BaseSpawnInterval)
	if slow > 0 && slow != 1 {
		interval /= slow
	}
	return interval
}

// Scheduler decides when bursts and power-ups are due.
type Scheduler struct {
	SpawnTimer   float64
	PowerUpTimer float64
}

// Advance accumulates dt and reports which spawns are due. Timers that fire are reset.
func (s *Scheduler) Advance(dt, elapsed, slow float64, powerUps bool) (spawn, powerUp bool) {
	s.SpawnTimer += dt
	if s.SpawnTimer > SpawnInterval(elapsed, slow) {
		s.SpawnTimer = 0
		spawn = true
	}
	if !powerUps {
		return spawn, false
	}
	s.PowerUpTimer += dt
	if s.PowerUpTimer > PowerUpInterval {
		s.PowerUpTimer = 0
		powerUp = true
	}
	return spawn, powerUp
}

// Reset zeroes both timers.
func (s *Scheduler) Reset() {
	*s = Scheduler{}
}

// Spawner creates entities from the asset registry using a seeded RNG.
type Spawner struct {
	cfg    Config
	rng    *common.SeededRNG
	assets *Assets
	nextID uint64
}

// NewSpawner creates a spawner for a session configuration.
func NewSpawner(cfg Config, rng *common.SeededRNG, assets *Assets) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, assets: assets}
}

// NextID hands out a unique entity id.
func (sp *Spawner) NextID() uint64 {
	sp.nextID++
	return sp.nextID
}

// BurstSize draws how many entities the next burst holds.
func (sp *Spawner) BurstSize() int {
	return sp.rng.Between(sp.cfg.BurstMin, sp.cfg.BurstMax)
}

// SpawnEntity creates a good entity or hazard just below the bottom edge,
// launched upwards. live is the current live set, used to keep hazards apart
// and to cap how many are on screen. Returns nil when no icon is available.
func (sp *Spawner) SpawnEntity(live []*Entity, width, height, slow float64) *Entity {
	rng := sp.rng
	r := rng.Between(40, 60)
	w := int(width)

	x := rng.Between(r, w-r)
	for attempt := 0; attempt < SpawnRetries; attempt++ {
		tooClose := lo.SomeBy(live, func(e *Entity) bool {
			return e.IsHazard() && math.Abs(e.X-float64(x)) < HazardClearance
		})
		if !tooClose {
			break
		}
		x = rng.Between(r, w-r)
	}

	var kind Kind = Good{}
	hazards := lo.CountBy(live, func(e *Entity) bool { return e.IsHazard() })
	if hazards < MaxHazards && !rng.Chance(1-HazardChance) {
		kind = Hazard{}
	}

	var icons []Asset
	if _, ok := kind.(Hazard); ok {
		icons = sp.assets.Icons(CategoryHazards)
	} else {
		icons = sp.assets.GoodIcons()
	}
	if len(icons) == 0 {
		return nil
	}
	icon := icons[rng.Between(0, len(icons)-1)]

	vy := -math.Sqrt(2 * LaunchGravity * float64(rng.Between(sp.cfg.LaunchHeightMin, sp.cfg.LaunchHeightMax)))
	if slow != 1 {
		vy *= slow
	}
	e := &Entity{
		ID:            sp.NextID(),
		X:             float64(x),
		Y:             height + float64(r),
		VX:            float64(rng.Between(-100, 100)),
		VY:            vy,
		RotationSpeed: rng.RandomFloat(-5, 5),
		Radius:        float64(r) * ResponsiveScale(width),
		Kind:          kind,
		Icon:          icon.Key,
	}
	if e.IsHazard() {
		e.VY *= rng.RandomFloat(0.8, 1.2)
		e.VX *= rng.RandomFloat(0.5, 1.5)
	}
	if sp.cfg.Mode == ModeRanked {
		e.VY *= rng.RandomFloat(1.0, 1.3)
	}
	return e
}

// SpawnPowerUp creates a power-up drifting down from above the top edge.
// Only icons that map to a known effect are eligible. Returns nil when there are none.
func (sp *Spawner) SpawnPowerUp(width float64) *Entity {
	icons := lo.Filter(sp.assets.Icons(CategoryPowerUps), func(a Asset, _ int) bool {
		_, ok := EffectForIcon(a.Key)
		return ok
	})
	if len(icons) == 0 {
		return nil
	}
	icon := icons[sp.rng.Between(0, len(icons)-1)]
	effect, _ := EffectForIcon(icon.Key)

	return &Entity{
		ID:            sp.NextID(),
		X:             float64(sp.rng.Between(50, int(width)-50)),
		Y:             -50,
		VY:            float64(sp.rng.Between(50, 100)),
		RotationSpeed: sp.rng.RandomFloat(-1, 1),
		Radius:        PowerUpRadius,
		Kind:          PowerUp{Effect: effect},
		Icon:          icon.Key,
	}
}
