//go:build js
// +build js

package web

import "github.com/gopherjs/gopherjs/js"

var EnableDebug = false

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", args...)
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("warn", args...)
	}
}

// DebugError logs an error to the browser console. Errors are always logged.
func DebugError(args ...interface{}) {
	js.Global.Get("console").Call("error", args...)
}
