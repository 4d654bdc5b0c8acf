package game

import "time"

// Event is something a Session reports to its Host.
type Event interface {
	isEvent()
}

// Host renders and plays what the simulation reports.
type Host interface {
	Handle(Event)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(Event)

func (f HostFunc) Handle(ev Event) { f(ev) }

type nopHost struct{}

func (nopHost) Handle(Event) {}

// EntitySpawned is sent after an entity joins the live set.
type EntitySpawned struct {
	Entity *Entity
}

// EntityCut is sent after an entity has been sliced and removed.
type EntityCut struct {
	Entity *Entity
	Points int  // points gained; zero for hazards and power-ups
	Storm  bool // cleared by a storm power-up
}

// EntityExpired is sent after an entity leaves the play area.
type EntityExpired struct {
	Entity *Entity
	Missed bool // a good entity fell off screen and cost a fail
}

// ComboFeedback asks the host to pop up the multiplier at the cut point.
type ComboFeedback struct {
	X, Y       float64
	Multiplier float64
	Label      string
}

// ScoreChanged carries a copy of the score after any change.
type ScoreChanged struct {
	Score Score
}

// CameraShake asks the host to shake the view.
type CameraShake struct {
	Duration  time.Duration
	Intensity float64
}

// PlaySound asks the host to play a sound cue from the registry.
type PlaySound struct {
	Category string
	Sub      string
}

// PowerUpActivated is sent when a power-up takes effect.
type PowerUpActivated struct {
	Effect PowerUpEffect
}

// ShieldActivated is sent when the shield power-up is cut. It has no gameplay effect yet.
type ShieldActivated struct{}

// SlowmoChanged is sent when slow motion starts or ends.
type SlowmoChanged struct {
	Active bool
	Factor float64
}

// GameOver is sent once per run, after the session has reset.
type GameOver struct {
	Mode    Mode
	Metrics Metrics
}

// PauseChanged is sent when the session is paused or resumed.
type PauseChanged struct {
	Paused bool
}

func (EntitySpawned) isEvent()    {}
func (EntityCut) isEvent()        {}
func (EntityExpired) isEvent()    {}
func (ComboFeedback) isEvent()    {}
func (ScoreChanged) isEvent()     {}
func (CameraShake) isEvent()      {}
func (PlaySound) isEvent()        {}
func (PowerUpActivated) isEvent() {}
func (ShieldActivated) isEvent()  {}
func (SlowmoChanged) isEvent()    {}
func (GameOver) isEvent()         {}
func (PauseChanged) isEvent()     {}
