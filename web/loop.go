//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ninja-slice/game"
)

// MaxFrameDelta caps the step after a stall, in seconds.
const MaxFrameDelta = 0.1

// frame is the requestAnimationFrame callback.
func (a *App) frame(currentTime float64) {
	a.animationFrameID = js.Global.Call("requestAnimationFrame", a.frame).Int()

	dt := 0.0
	if a.lastFrameTime > 0 {
		dt = (currentTime - a.lastFrameTime) / 1000
	}
	a.lastFrameTime = currentTime
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	if a.screen == ScreenPlaying && a.session != nil {
		a.session.Dispatch(game.Tick{DT: dt})
		if a.screen == ScreenPlaying {
			a.fx.Update(dt)
		}
	}
	a.render()
}

// Stop cancels the frame loop.
func (a *App) Stop() {
	js.Global.Call("cancelAnimationFrame", a.animationFrameID)
}
