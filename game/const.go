package game

import "time"

// Physics constants
const (
	// Gravity is the downward acceleration applied to non power-up entities (units/s²).
	Gravity = 800.0
	// ArcAmplitude scales the velocity-dependent flutter added to the vertical motion.
	ArcAmplitude = 50.0
	// ArcFrequency converts horizontal velocity into the flutter phase.
	ArcFrequency = 0.01
	// ExpiryMargin is how far outside the view an entity may travel before it expires.
	ExpiryMargin = 50.0
	// LaunchGravity is the gravity used to derive launch speed from a target apex height.
	LaunchGravity = 600.0
)

// Grid constants
const (
	// DefaultCellSize is tuned to the typical entity radius (20-60).
	DefaultCellSize = 100.0
)

// Scoring constants
const (
	BasePoints    = 10
	ComboStep     = 0.5
	ComboDuration = 2.0 // seconds a combo survives without a good cut
	MaxFails      = 3

	ShakeDuration  = 150 * time.Millisecond
	ShakeIntensity = 0.02
)

// Spawn scheduler constants
const (
	BaseSpawnInterval = 3.0
	MinSpawnInterval  = 1.2
	SpawnRampStep     = 0.2
	SpawnRampPeriod   = 10.0 // seconds between difficulty steps

	PowerUpInterval = 30.0
	PowerUpRadius   = 30.0

	MaxHazards      = 2
	HazardChance    = 0.2
	SpawnRetries    = 10
	HazardClearance = 80.0
)

// Power-up constants
const (
	SlowmoFactor   = 0.3
	SlowmoDuration = 5.0
)

// Trail lengths per mode
const (
	CasualTrailLength = 10
	RankedTrailLength = 15
)

// Default viewport, matching the page layout the web host starts with.
const (
	WIDTH  = 1024
	HEIGHT = 768
)

// Mode selects the rule set a session runs with.
type Mode int

const (
	ModeCasual Mode = iota
	ModeRanked
)

func (m Mode) String() string {
	switch m {
	case ModeCasual:
		return "Casual"
	case ModeRanked:
		return "Ranked"
	default:
		return "Unknown"
	}
}

// Config holds the tunables for one session.
type Config struct {
	Mode        Mode
	CellSize    float64
	TrailLength int

	// BurstMin and BurstMax bound the number of entities spawned per burst.
	BurstMin int
	BurstMax int

	// LaunchHeightMin and LaunchHeightMax bound the apex height used for launch speed.
	LaunchHeightMin int
	LaunchHeightMax int

	// PowerUps enables the periodic power-up spawner.
	PowerUps bool
}

// DefaultConfig returns the configuration the given mode ships with.
func DefaultConfig(mode Mode) Config {
	cfg := Config{
		Mode:            mode,
		CellSize:        DefaultCellSize,
		TrailLength:     CasualTrailLength,
		BurstMin:        1,
		BurstMax:        1,
		LaunchHeightMin: 300,
		LaunchHeightMax: 500,
	}
	if mode == ModeRanked {
		cfg.TrailLength = RankedTrailLength
		cfg.BurstMax = 4
		cfg.LaunchHeightMin = 400
		cfg.PowerUps = true
	}
	return cfg
}

// ResponsiveScale returns the display scale applied to entity size for a viewport width.
func ResponsiveScale(width float64) float64 {
	if width < 600 {
		return 0.8
	}
	if width < 1200 {
		return 1.2
	}
	return 1.6
}
