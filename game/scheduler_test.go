package game

import (
	"math"
	"testing"

	"github.com/simukka/ninja-slice/common"
)

func testAssets() *Assets {
	return NewAssets(map[string][]string{
		CategorySubreddits: {"assets/images/subreddits/golang.png", "assets/images/subreddits/gaming.png"},
		CategoryMemes:      {"assets/images/memes/doge.png"},
		CategoryHazards:    {"assets/images/hazards/bomb.png"},
		CategoryPowerUps: {
			"assets/images/powerUps/kunai.png",
			"assets/images/powerUps/shield.png",
			"assets/images/powerUps/clock.png",
		},
	}, map[string]map[string][]string{
		SoundCuts:    {SubDefault: {"assets/sounds/cuts/default/slice.wav"}},
		SoundEffects: {SubJump: {"assets/sounds/effects/jump/whoosh.wav"}},
	})
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float64
		slow     float64
		expected float64
	}{
		{"start", 0, 1, 3},
		{"before first step", 9.99, 1, 3},
		{"first step", 10, 1, 2.8},
		{"five steps", 55, 1, 2.0},
		{"floor", 90, 1, 1.2},
		{"far past floor", 1e6, 1, 1.2},
		{"slow motion stretches interval", 0, SlowmoFactor, 3 / SlowmoFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpawnInterval(tt.elapsed, tt.slow); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSpawnInterval_NeverBelowFloor(t *testing.T) {
	prev := math.Inf(1)
	for elapsed := 0.0; elapsed < 1000; elapsed += 0.5 {
		got := SpawnInterval(elapsed, 1)
		if got < MinSpawnInterval {
			t.Fatalf("Interval %v below floor at %vs", got, elapsed)
		}
		if got > prev {
			t.Fatalf("Interval grew from %v to %v at %vs", prev, got, elapsed)
		}
		prev = got
	}
	if prev != MinSpawnInterval {
		t.Errorf("Expected convergence to %v, got %v", MinSpawnInterval, prev)
	}
}

func TestScheduler_Advance(t *testing.T) {
	var s Scheduler

	spawn, _ := s.Advance(3, 0, 1, false)
	if spawn {
		t.Error("Expected no spawn at exactly the interval")
	}
	spawn, _ = s.Advance(0.1, 0, 1, false)
	if !spawn {
		t.Error("Expected spawn once the interval is exceeded")
	}
	if s.SpawnTimer != 0 {
		t.Errorf("Expected spawn timer reset, got %v", s.SpawnTimer)
	}
}

func TestScheduler_PowerUps(t *testing.T) {
	var s Scheduler

	if _, powerUp := s.Advance(31, 0, 1, false); powerUp {
		t.Error("Expected no power-up when disabled")
	}
	if s.PowerUpTimer != 0 {
		t.Errorf("Expected power-up timer untouched, got %v", s.PowerUpTimer)
	}
	if _, powerUp := s.Advance(31, 0, 1, true); !powerUp {
		t.Error("Expected power-up after 30s")
	}
}

func TestSpawner_SpawnEntity(t *testing.T) {
	sp := NewSpawner(DefaultConfig(ModeRanked), common.NewSeededRNG(7), testAssets())

	for i := 0; i < 200; i++ {
		e := sp.SpawnEntity(nil, WIDTH, HEIGHT, 1)
		if e == nil {
			t.Fatal("Expected an entity")
		}
		if e.VY >= 0 {
			t.Errorf("Expected upward launch, got vy=%v", e.VY)
		}
		r := math.Round(e.Radius / ResponsiveScale(WIDTH))
		if r < 40 || r > 60 {
			t.Errorf("Expected base radius in [40,60], got %v", r)
		}
		if e.Y != HEIGHT+r {
			t.Errorf("Expected spawn just below the view, got y=%v", e.Y)
		}
		if e.X < r || e.X > WIDTH-r {
			t.Errorf("Expected x within [r, W-r], got %v", e.X)
		}
		if e.IsPowerUp() {
			t.Error("Expected no power-ups from SpawnEntity")
		}
		if _, ok := testAssets().URL(e.Icon); !ok {
			t.Errorf("Expected icon %q to resolve", e.Icon)
		}
	}
}

func TestSpawner_Deterministic(t *testing.T) {
	a := NewSpawner(DefaultConfig(ModeRanked), common.NewSeededRNG(99), testAssets())
	b := NewSpawner(DefaultConfig(ModeRanked), common.NewSeededRNG(99), testAssets())

	for i := 0; i < 20; i++ {
		ea := a.SpawnEntity(nil, WIDTH, HEIGHT, 1)
		eb := b.SpawnEntity(nil, WIDTH, HEIGHT, 1)
		if *ea != *eb {
			t.Fatalf("Spawn %d differs: %v vs %v", i, ea, eb)
		}
	}
}

func TestSpawner_HazardCap(t *testing.T) {
	sp := NewSpawner(DefaultConfig(ModeRanked), common.NewSeededRNG(3), testAssets())
	live := []*Entity{
		{X: 100, Kind: Hazard{}},
		{X: 900, Kind: Hazard{}},
	}

	for i := 0; i < 100; i++ {
		if e := sp.SpawnEntity(live, WIDTH, HEIGHT, 1); e.IsHazard() {
			t.Fatal("Expected only good entities with two hazards on screen")
		}
	}
}

func TestSpawner_EmptyIconsSkips(t *testing.T) {
	sp := NewSpawner(DefaultConfig(ModeCasual), common.NewSeededRNG(1), NewAssets(nil, nil))

	if e := sp.SpawnEntity(nil, WIDTH, HEIGHT, 1); e != nil {
		t.Errorf("Expected nil without icons, got %v", e)
	}
	if e := sp.SpawnPowerUp(WIDTH); e != nil {
		t.Errorf("Expected nil power-up without icons, got %v", e)
	}
}

func TestSpawner_SpawnPowerUp(t *testing.T) {
	sp := NewSpawner(DefaultConfig(ModeRanked), common.NewSeededRNG(11), testAssets())

	for i := 0; i < 50; i++ {
		e := sp.SpawnPowerUp(WIDTH)
		if !e.IsPowerUp() {
			t.Fatalf("Expected power-up, got %v", e.Kind)
		}
		if e.Y != -50 || e.VX != 0 || e.VY < 50 || e.VY > 100 {
			t.Errorf("Unexpected power-up motion %+v", e)
		}
		if e.X < 50 || e.X > WIDTH-50 {
			t.Errorf("Expected x within [50, W-50], got %v", e.X)
		}
		if e.Radius != PowerUpRadius {
			t.Errorf("Expected radius %v, got %v", PowerUpRadius, e.Radius)
		}
		effect, _ := EffectForIcon(e.Icon)
		if e.Kind.(PowerUp).Effect != effect {
			t.Errorf("Expected effect %v for %s, got %v", effect, e.Icon, e.Kind)
		}
	}
}

func TestSpawner_CasualBurstIsOne(t *testing.T) {
	sp := NewSpawner(DefaultConfig(ModeCasual), common.NewSeededRNG(5), testAssets())
	for i := 0; i < 20; i++ {
		if n := sp.BurstSize(); n != 1 {
			t.Fatalf("Expected casual burst of 1, got %d", n)
		}
	}
}
