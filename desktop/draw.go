//go:build !js
// +build !js

package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/simukka/ninja-slice/game"
	"github.com/simukka/ninja-slice/web"
)

// Debug font cell size
const (
	charWidth  = 6
	lineHeight = 16
)

var (
	fallbackFill = color.RGBA{0x44, 0x44, 0x44, 0xff}
	overlayFill  = color.RGBA{0, 0, 0, 0x99}
)

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	bg := web.Theme.BackgroundColor
	if a.slowmo {
		bg = web.Theme.SlowmoBackgroundColor
	}
	screen.Fill(web.RGBA(bg))

	if a.metrics != nil {
		a.drawGameOver(screen)
		return
	}

	dx, dy := a.fx.Shake.Offset(a.rng, float64(a.width), float64(a.height))
	for _, e := range a.session.Entities() {
		a.drawEntity(screen, e.X+dx, e.Y+dy, e.Radius, e.Rotation, e.Icon, e.Kind)
	}
	for _, h := range a.fx.Halves {
		a.drawHalf(screen, h, dx, dy)
	}
	drawTrail(screen, a.session.Trail())
	for _, p := range a.fx.Popups {
		offset, _, alpha := p.Offset()
		if alpha > 0 {
			printCentered(screen, p.Label, p.X+dx, p.Y+dy+offset)
		}
	}

	left, right := web.HUDLines(a.session.Score())
	for i, line := range left {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*lineHeight)
	}
	ebitenutil.DebugPrintAt(screen, right, a.width-10-len(right)*charWidth, 10)

	if a.session.Paused() {
		vector.FillRect(screen, 0, 0, float32(a.width), float32(a.height), overlayFill, false)
		printCentered(screen, "Paused - Space to resume", float64(a.width)/2, float64(a.height)/2)
	}
}

func (a *App) drawEntity(screen *ebiten.Image, x, y, radius, rotation float64, icon string, kind game.Kind) {
	if img, ok := a.images[icon]; ok {
		w, h := iconSize(img)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(2*radius/w, 2*radius/h)
		op.GeoM.Rotate(rotation)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	} else {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), fallbackFill, true)
	}
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius),
		float32(web.Theme.BorderLineWidth), web.RGBA(web.BorderColor(kind)), true)
}

func (a *App) drawHalf(screen *ebiten.Image, h web.Half, shakeX, shakeY float64) {
	dx, dy, spin, alpha := h.Transform()
	x, y := h.X+dx+shakeX, h.Y+dy+shakeY

	img, ok := a.images[h.Icon]
	if !ok {
		c := web.RGBA(web.BorderColor(h.Kind))
		c.A = uint8(alpha * 0xff)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(h.Radius/2), 2, c, true)
		return
	}

	w, ih := iconSize(img)
	half := img.SubImage(halfRect(img, h.Left)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	if h.Left {
		op.GeoM.Translate(-w/2, -ih/2)
	} else {
		op.GeoM.Translate(0, -ih/2)
	}
	op.GeoM.Scale(2*h.Radius/w, 2*h.Radius/ih)
	op.GeoM.Rotate(h.Rotation + spin)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(half, op)
}

// drawTrail draws the slice trail, fading and thickening toward the newest point.
func drawTrail(screen *ebiten.Image, points []game.Point) {
	n := len(points)
	for i := 1; i < n; i++ {
		f := float64(i) / float64(n)
		width := web.Theme.TrailMinWidth + f*(web.Theme.TrailMaxWidth-web.Theme.TrailMinWidth)
		c := color.RGBA{0xff, 0xff, 0xff, uint8(f * 0xff)}
		vector.StrokeLine(screen,
			float32(points[i-1].X), float32(points[i-1].Y),
			float32(points[i].X), float32(points[i].Y),
			float32(width), c, true)
	}
}

func (a *App) drawGameOver(screen *ebiten.Image) {
	cx := float64(a.width) / 2
	y := float64(a.height) * 0.3
	printCentered(screen, "Game Over", cx, y)
	for i, line := range web.StatsLines(*a.metrics) {
		printCentered(screen, line, cx, y+float64(i+2)*lineHeight)
	}
	printCentered(screen, "Click or R to play again, Esc to quit", cx, y+8*lineHeight)
}

func printCentered(screen *ebiten.Image, text string, x, y float64) {
	ebitenutil.DebugPrintAt(screen, text, int(x)-len(text)*charWidth/2, int(y)-lineHeight/2)
}
