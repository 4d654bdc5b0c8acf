package game

// Command is an input consumed by Session.Dispatch.
type Command interface {
	isCommand()
}

// PointerDown starts a slice gesture.
type PointerDown struct {
	X, Y float64
}

// PointerMove samples the pointer while a gesture may be active.
type PointerMove struct {
	X, Y float64
}

// PointerUp ends the slice gesture and clears the trail.
type PointerUp struct{}

// Tick advances the simulation by DT seconds.
type Tick struct {
	DT float64
}

// Resize changes the play area.
type Resize struct {
	Width, Height float64
}

// TogglePause pauses or resumes the session.
type TogglePause struct{}

func (PointerDown) isCommand() {}
func (PointerMove) isCommand() {}
func (PointerUp) isCommand()   {}
func (Tick) isCommand()        {}
func (Resize) isCommand()      {}
func (TogglePause) isCommand() {}
