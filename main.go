//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ninja-slice/web"
)

func main() {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	app := web.NewApp(canvas)

	// Expose identity and debug hooks to the embedding page
	js.Global.Set("NinjaSlice", map[string]interface{}{
		"setIdentity": func(userID, username string) {
			app.SetIdentity(userID, username)
		},
		"debug": func(on bool) {
			web.EnableDebug = on
		},
	})

	js.Global.Call("addEventListener", "beforeunload", func() {
		app.Stop()
	})

	app.Start()

	select {}
}
