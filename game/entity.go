package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the closed set of entity variants: Good, Hazard and PowerUp.
// Code that branches on a Kind uses a type switch and panics on anything else.
type Kind interface {
	isKind()
	String() string
}

// Good entities score when cut and count as a miss when they fall off screen.
type Good struct{}

// Hazard entities cost a fail when cut and expire silently.
type Hazard struct{}

// PowerUp entities trigger Effect when cut and expire silently.
type PowerUp struct {
	Effect PowerUpEffect
}

func (Good) isKind()    {}
func (Hazard) isKind()  {}
func (PowerUp) isKind() {}

func (Good) String() string   { return "good" }
func (Hazard) String() string { return "hazard" }
func (p PowerUp) String() string {
	return "powerUp:" + p.Effect.String()
}

// PowerUpEffect identifies what a power-up does when cut.
type PowerUpEffect int

const (
	EffectStorm PowerUpEffect = iota
	EffectShield
	EffectSlowmo
)

func (e PowerUpEffect) String() string {
	switch e {
	case EffectStorm:
		return "storm"
	case EffectShield:
		return "shield"
	case EffectSlowmo:
		return "slowmo"
	default:
		return "unknown"
	}
}

// EffectForIcon maps a power-up icon key ("powerUps_<n>") to its effect.
func EffectForIcon(key string) (PowerUpEffect, bool) {
	idx, ok := strings.CutPrefix(key, CategoryPowerUps+"_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return 0, false
	}
	switch PowerUpEffect(n) {
	case EffectStorm, EffectShield, EffectSlowmo:
		return PowerUpEffect(n), true
	}
	return 0, false
}

// Entity is a falling target tracked by the simulation.
type Entity struct {
	ID uint64

	X, Y          float64 // Position
	VX, VY        float64 // Velocity (units/s)
	Rotation      float64 // Radians
	RotationSpeed float64 // Radians/s
	Radius        float64 // Hit-test threshold

	Kind Kind
	Icon string // Asset key of the rendered icon

	// Handle is owned by the rendering host.
	Handle any

	cut bool
}

// IsCut reports whether the entity has already been resolved as cut.
func (e *Entity) IsCut() bool {
	return e.cut
}

// GetPosition returns the entity's position.
func (e *Entity) GetPosition() (x, y float64) {
	return e.X, e.Y
}

// GetRadius returns the entity's hit radius.
func (e *Entity) GetRadius() float64 {
	return e.Radius
}

// IsGood reports whether the entity is a Good target.
func (e *Entity) IsGood() bool {
	_, ok := e.Kind.(Good)
	return ok
}

// IsHazard reports whether the entity is a Hazard.
func (e *Entity) IsHazard() bool {
	_, ok := e.Kind.(Hazard)
	return ok
}

// IsPowerUp reports whether the entity is a PowerUp.
func (e *Entity) IsPowerUp() bool {
	_, ok := e.Kind.(PowerUp)
	return ok
}

func (e *Entity) String() string {
	return fmt.Sprintf("entity#%d(%s @ %.1f,%.1f r=%.1f)", e.ID, e.Kind, e.X, e.Y, e.Radius)
}

func unhandledKind(k Kind) string {
	return fmt.Sprintf("game: unhandled entity kind %T", k)
}
