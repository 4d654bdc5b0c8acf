//go:build js
// +build js

package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ninja-slice/game"
)

// LoadImage starts loading an image element.
func LoadImage(url string) *js.Object {
	img := js.Global.Get("Image").New()
	img.Set("onerror", func() {
		DebugWarn("graphics: failed to load", url)
	})
	img.Set("src", url)
	return img
}

func imageReady(img *js.Object) bool {
	return img != nil && img.Get("complete").Bool() && img.Get("naturalWidth").Int() > 0
}

// drawText draws stroked text, the style every label in the game uses.
func drawText(ctx *js.Object, text string, x, y float64, font, color, align string) {
	ctx.Set("font", font)
	ctx.Set("textAlign", align)
	ctx.Set("textBaseline", "middle")
	ctx.Set("lineJoin", "round")
	ctx.Set("lineWidth", Theme.TextStrokeWidth)
	ctx.Set("strokeStyle", Theme.TextStroke)
	ctx.Call("strokeText", text, x, y)
	ctx.Set("fillStyle", color)
	ctx.Call("fillText", text, x, y)
}

func drawButton(ctx *js.Object, b Button, hover bool) {
	fill, border := Theme.ButtonColor, Theme.ButtonBorder
	if b.Alt {
		fill, border = Theme.ButtonAltColor, Theme.ButtonAltBorder
	}
	if hover {
		fill = Theme.ButtonHoverColor
	}
	text := Theme.TextColor
	if b.Disabled {
		fill, text = Theme.ButtonColor, Theme.MutedColor
	}
	ctx.Set("fillStyle", fill)
	ctx.Call("fillRect", b.X-b.W/2, b.Y-b.H/2, b.W, b.H)
	ctx.Set("lineWidth", 3)
	ctx.Set("strokeStyle", border)
	ctx.Call("strokeRect", b.X-b.W/2, b.Y-b.H/2, b.W, b.H)
	drawText(ctx, b.Label, b.X, b.Y, Theme.ButtonFont, text, "center")
}

// drawIcon draws an icon clipped to a circle with a kind-colored border.
// Without a loaded image only the disc and border are drawn.
func drawIcon(ctx *js.Object, img *js.Object, x, y, radius, rotation float64, kind game.Kind) {
	ctx.Call("save")
	ctx.Call("translate", x, y)
	ctx.Call("rotate", rotation)

	ctx.Call("beginPath")
	ctx.Call("arc", 0, 0, radius, 0, 2*math.Pi)
	ctx.Call("closePath")
	if imageReady(img) {
		ctx.Call("save")
		ctx.Call("clip")
		ctx.Call("drawImage", img, -radius, -radius, radius*2, radius*2)
		ctx.Call("restore")
	} else {
		ctx.Set("fillStyle", "#444444")
		ctx.Call("fill")
	}
	ctx.Set("lineWidth", Theme.BorderLineWidth)
	ctx.Set("strokeStyle", BorderColor(kind))
	ctx.Call("stroke")

	ctx.Call("restore")
}

// drawHalf draws one side of a sliced icon.
func drawHalf(ctx *js.Object, img *js.Object, h Half) {
	dx, dy, spin, alpha := h.Transform()

	ctx.Call("save")
	ctx.Set("globalAlpha", alpha)
	ctx.Call("translate", h.X+dx, h.Y+dy)
	ctx.Call("rotate", h.Rotation+spin)
	ctx.Call("beginPath")
	if h.Left {
		ctx.Call("rect", -h.Radius, -h.Radius, h.Radius, h.Radius*2)
	} else {
		ctx.Call("rect", 0, -h.Radius, h.Radius, h.Radius*2)
	}
	ctx.Call("clip")
	drawIcon(ctx, img, 0, 0, h.Radius, 0, h.Kind)
	ctx.Call("restore")
}

// drawTrail draws the slice trail, fading and thickening toward the newest point.
func drawTrail(ctx *js.Object, points []game.Point) {
	n := len(points)
	if n < 2 {
		return
	}
	ctx.Set("lineCap", "round")
	for i := 1; i < n; i++ {
		f := float64(i) / float64(n)
		ctx.Set("lineWidth", Theme.TrailMinWidth+f*(Theme.TrailMaxWidth-Theme.TrailMinWidth))
		ctx.Set("strokeStyle", "rgba("+Theme.TrailColor+","+strconv.FormatFloat(f, 'f', 2, 64)+")")
		ctx.Call("beginPath")
		ctx.Call("moveTo", points[i-1].X, points[i-1].Y)
		ctx.Call("lineTo", points[i].X, points[i].Y)
		ctx.Call("stroke")
	}
}

// drawPopup draws a floating combo label.
func drawPopup(ctx *js.Object, p Popup) {
	dy, scale, alpha := p.Offset()
	if scale <= 0 || alpha <= 0 {
		return
	}
	ctx.Call("save")
	ctx.Set("globalAlpha", alpha)
	ctx.Call("translate", p.X, p.Y+dy)
	ctx.Call("scale", scale, scale)
	drawText(ctx, p.Label, 0, 0, Theme.ComboFont, Theme.ComboColor, "center")
	ctx.Call("restore")
}
