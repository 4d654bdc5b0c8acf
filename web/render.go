//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ninja-slice/game"
)

// render draws the current screen.
func (a *App) render() {
	ctx := a.Ctx

	bg := Theme.BackgroundColor
	if a.slowmo && a.screen == ScreenPlaying {
		bg = Theme.SlowmoBackgroundColor
	}
	ctx.Set("fillStyle", bg)
	ctx.Call("fillRect", 0, 0, a.width, a.height)

	switch a.screen {
	case ScreenMenu:
		a.renderMenu()
	case ScreenTutorial:
		a.renderTutorial()
	case ScreenPlaying:
		a.renderSession()
	case ScreenPaused:
		a.renderSession()
		ctx.Set("fillStyle", Theme.OverlayColor)
		ctx.Call("fillRect", 0, 0, a.width, a.height)
		drawText(ctx, "Paused", a.width/2, a.height/2-200, Theme.TitleFont, Theme.TextColor, "center")
	case ScreenGameOver:
		a.renderGameOver()
	case ScreenLeaderboard:
		a.renderLeaderboard()
	}

	for i, b := range a.buttons {
		drawButton(ctx, b, i == a.hover)
	}
}

func (a *App) renderMenu() {
	drawText(a.Ctx, "Ninja Slice", a.width/2, a.height*0.2, Theme.TitleFont, Theme.TextColor, "center")
}

func (a *App) renderTutorial() {
	drawText(a.Ctx, "How to Play", a.width/2, a.height*0.15, Theme.TitleFont, Theme.TextColor, "center")
	for i, line := range TutorialLines {
		drawText(a.Ctx, line, a.width/2, a.height*0.3+float64(i)*40, Theme.HUDFont, Theme.TextColor, "center")
	}
}

func (a *App) renderSession() {
	s := a.session
	if s == nil {
		return
	}
	ctx := a.Ctx

	ctx.Call("save")
	dx, dy := a.fx.Shake.Offset(a.rng, a.width, a.height)
	ctx.Call("translate", dx, dy)

	for _, e := range s.Entities() {
		drawIcon(ctx, a.image(e.Icon), e.X, e.Y, e.Radius, e.Rotation, e.Kind)
	}
	for _, h := range a.fx.Halves {
		drawHalf(ctx, a.image(h.Icon), h)
	}
	drawTrail(ctx, s.Trail())
	for _, p := range a.fx.Popups {
		drawPopup(ctx, p)
	}
	ctx.Call("restore")

	left, right := HUDLines(s.Score())
	for i, line := range left {
		drawText(ctx, line, 20, 30+float64(i)*30, Theme.HUDFont, Theme.TextColor, "left")
	}
	drawText(ctx, right, a.width-20, 30, Theme.HUDFont, Theme.TextColor, "right")
	if s.Mode() == game.ModeRanked {
		drawText(ctx, "Daily Challenge", a.width/2, 30, Theme.HUDFont, Theme.StatsColor, "center")
	}
}

func (a *App) image(key string) *js.Object {
	return a.images[key]
}

func (a *App) renderGameOver() {
	ctx := a.Ctx
	drawText(ctx, "Game Over", a.width/2, a.height*0.2, Theme.TitleFont, Theme.TextColor, "center")
	for i, line := range StatsLines(a.lastMetrics) {
		drawText(ctx, line, a.width/2, a.height*0.35+float64(i)*45, Theme.HUDFont, Theme.StatsColor, "center")
	}
}

func (a *App) renderLeaderboard() {
	ctx := a.Ctx
	drawText(ctx, "Leaderboard", a.width/2, a.height*0.1, Theme.TitleFont, Theme.TextColor, "center")

	switch {
	case a.boardErr != nil:
		drawText(ctx, "Leaderboard unavailable", a.width/2, a.height/2, Theme.HUDFont, Theme.MutedColor, "center")
		return
	case a.board == nil:
		drawText(ctx, "Loading...", a.width/2, a.height/2, Theme.HUDFont, Theme.MutedColor, "center")
		return
	}

	board := a.board
	title, subtitle := ChallengeLines(a.challenge, board.ChallengeType)
	if title != "" {
		drawText(ctx, title, a.width/2, a.height*0.16, Theme.HUDFont, Theme.StatsColor, "center")
	}
	if subtitle != "" {
		drawText(ctx, subtitle, a.width/2, a.height*0.2, Theme.RowFont, Theme.MutedColor, "center")
	}

	const rowHeight = 44.0
	rowWidth := a.width * 0.6
	if rowWidth > 500 {
		rowWidth = 500
	}
	y := a.height * 0.25
	for i, e := range board.Top {
		fill := Theme.RowColor
		if i < len(Theme.MedalColors) {
			fill = Theme.MedalColors[i]
		}
		ctx.Set("fillStyle", fill)
		ctx.Call("fillRect", a.width/2-rowWidth/2, y, rowWidth, rowHeight-6)
		if i < len(Theme.MedalBorders) {
			ctx.Set("strokeStyle", Theme.MedalBorders[i])
			ctx.Set("lineWidth", 2)
			ctx.Call("strokeRect", a.width/2-rowWidth/2, y, rowWidth, rowHeight-6)
		}
		drawText(ctx, EntryLabel(i, e), a.width/2, y+(rowHeight-6)/2, Theme.RowFont, Theme.RowTextColor, "center")
		y += rowHeight
	}
	if len(board.Top) == 0 {
		drawText(ctx, "No scores yet today", a.width/2, y+rowHeight/2, Theme.RowFont, Theme.MutedColor, "center")
		y += rowHeight
	}

	if board.Me != nil {
		y += rowHeight / 2
		ctx.Set("fillStyle", Theme.MeRowColor)
		ctx.Call("fillRect", a.width/2-rowWidth/2, y, rowWidth, rowHeight-6)
		drawText(ctx, MeLabel(*board.Me), a.width/2, y+(rowHeight-6)/2, Theme.RowFont, Theme.RowTextColor, "center")
	}
}
