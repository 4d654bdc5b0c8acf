//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ninja-slice/game"
)

// Key codes
const (
	KeySpace  = 32
	KeyEscape = 27
	KeyF      = 70
)

// pointerPos converts a mouse or touch event to canvas coordinates.
func (a *App) pointerPos(event *js.Object) (x, y float64, ok bool) {
	src := event
	if touches := event.Get("touches"); touches != js.Undefined && touches != nil {
		if touches.Length() == 0 {
			touches = event.Get("changedTouches")
			if touches == js.Undefined || touches == nil || touches.Length() == 0 {
				return 0, 0, false
			}
		}
		src = touches.Index(0)
	}
	rect := a.Canvas.Call("getBoundingClientRect")
	return src.Get("clientX").Float() - rect.Get("left").Float(),
		src.Get("clientY").Float() - rect.Get("top").Float(), true
}

func (a *App) pointerDown(event *js.Object) {
	x, y, ok := a.pointerPos(event)
	if !ok {
		return
	}
	a.player.Resume()

	if b, hit := HitButton(a.buttons, x, y); hit {
		a.press(b.Action)
		return
	}
	if a.screen == ScreenPlaying {
		a.session.Dispatch(game.PointerDown{X: x, Y: y})
	}
}

func (a *App) pointerMove(event *js.Object) {
	x, y, ok := a.pointerPos(event)
	if !ok {
		return
	}
	a.hover = -1
	for i, b := range a.buttons {
		if !b.Disabled && b.Contains(x, y) {
			a.hover = i
			break
		}
	}
	if a.screen == ScreenPlaying {
		a.session.Dispatch(game.PointerMove{X: x, Y: y})
	}
}

// pointerUp always reaches the session so a release on another screen
// still ends the gesture.
func (a *App) pointerUp(*js.Object) {
	if a.session != nil {
		a.session.Dispatch(game.PointerUp{})
	}
}

func (a *App) requestFullscreen() {
	canvas := a.Canvas
	for _, name := range []string{"requestFullscreen", "webkitRequestFullscreen", "mozRequestFullScreen"} {
		if fn := canvas.Get(name); fn != nil && fn != js.Undefined {
			canvas.Call(name)
			return
		}
	}
}

// SetupInputHandlers initializes pointer, touch, keyboard and resize handlers.
func (a *App) SetupInputHandlers() {
	canvas := a.Canvas
	canvas.Call("addEventListener", "mousedown", a.pointerDown)
	canvas.Call("addEventListener", "mousemove", a.pointerMove)
	js.Global.Get("document").Call("addEventListener", "mouseup", a.pointerUp)

	passive := js.M{"passive": false}
	canvas.Call("addEventListener", "touchstart", func(event *js.Object) {
		event.Call("preventDefault")
		a.pointerDown(event)
	}, passive)
	canvas.Call("addEventListener", "touchmove", func(event *js.Object) {
		event.Call("preventDefault")
		a.pointerMove(event)
	}, passive)
	canvas.Call("addEventListener", "touchend", func(event *js.Object) {
		event.Call("preventDefault")
		a.pointerUp(event)
	}, passive)

	js.Global.Get("document").Call("addEventListener", "keydown",
		func(event *js.Object) {
			switch event.Get("keyCode").Int() {
			// Pause toggle (Space, also Esc)
			case KeySpace, KeyEscape:
				if a.screen == ScreenPlaying || a.screen == ScreenPaused {
					a.session.Dispatch(game.TogglePause{})
				}
				event.Call("preventDefault")
			case KeyF:
				a.requestFullscreen()
			}
		})

	js.Global.Call("addEventListener", "resize", func(*js.Object) {
		a.resize()
	})

	// Pause when the tab is hidden
	js.Global.Get("document").Call("addEventListener", "visibilitychange", func(*js.Object) {
		if js.Global.Get("document").Get("hidden").Bool() && a.screen == ScreenPlaying {
			a.session.Dispatch(game.TogglePause{})
		}
	})
}
