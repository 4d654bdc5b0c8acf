package web

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/simukka/ninja-slice/client"
	"github.com/simukka/ninja-slice/common"
	"github.com/simukka/ninja-slice/game"
)

// Screen is the view the host is showing.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenTutorial
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
	ScreenLeaderboard
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "Menu"
	case ScreenTutorial:
		return "Tutorial"
	case ScreenPlaying:
		return "Playing"
	case ScreenPaused:
		return "Paused"
	case ScreenGameOver:
		return "GameOver"
	case ScreenLeaderboard:
		return "Leaderboard"
	default:
		return "Unknown"
	}
}

// Action is what a button does when pressed.
type Action int

const (
	ActionRanked Action = iota
	ActionCasual
	ActionLeaderboard
	ActionTutorial
	ActionToggleSound
	ActionResume
	ActionExit
	ActionMenu
)

// Button is a clickable rectangle centred on X, Y.
type Button struct {
	Label    string
	X, Y     float64
	W, H     float64
	Alt      bool
	Disabled bool
	Action   Action
}

// Contains reports whether the point lies inside the button.
func (b Button) Contains(x, y float64) bool {
	return x >= b.X-b.W/2 && x <= b.X+b.W/2 && y >= b.Y-b.H/2 && y <= b.Y+b.H/2
}

// HitButton returns the first enabled button under the point.
func HitButton(buttons []Button, x, y float64) (Button, bool) {
	return lo.Find(buttons, func(b Button) bool { return !b.Disabled && b.Contains(x, y) })
}

const (
	buttonWidth  = 250
	buttonHeight = 60
)

// stackButtons lays buttons out vertically from startY, spaced by a share of the height.
func stackButtons(buttons []Button, width, height, startY, spacing float64) []Button {
	for i := range buttons {
		buttons[i].X = width / 2
		buttons[i].Y = height * (startY + float64(i)*spacing)
		buttons[i].W = buttonWidth
		buttons[i].H = buttonHeight
	}
	return buttons
}

func soundLabel(on bool) string {
	if on {
		return "Sound: On"
	}
	return "Sound: Off"
}

// MenuButtons lays out the main menu. Until the assets are ready the play
// buttons are disabled, since a run started without icons never spawns.
func MenuButtons(width, height float64, soundOn, ready bool) []Button {
	return stackButtons([]Button{
		{Label: playLabel("Try Daily Challenge", ready), Alt: true, Disabled: !ready, Action: ActionRanked},
		{Label: playLabel("Start Game", ready), Disabled: !ready, Action: ActionCasual},
		{Label: "Leaderboard", Action: ActionLeaderboard},
		{Label: "How to Play", Action: ActionTutorial},
		{Label: soundLabel(soundOn), Action: ActionToggleSound},
	}, width, height, 0.4, 0.11)
}

func playLabel(label string, ready bool) string {
	if !ready {
		return "Loading..."
	}
	return label
}

// PauseButtons lays out the pause menu around the centre.
func PauseButtons(width, height float64, soundOn bool) []Button {
	const spacing = 100
	buttons := []Button{
		{Label: soundLabel(soundOn), Action: ActionToggleSound},
		{Label: "Resume", Action: ActionResume},
		{Label: "Exit", Action: ActionExit},
	}
	for i := range buttons {
		buttons[i].X = width / 2
		buttons[i].Y = height/2 + float64(i-1)*spacing
		buttons[i].W = buttonWidth
		buttons[i].H = buttonHeight
	}
	return buttons
}

// GameOverButtons lays out the confirm button under the run stats.
func GameOverButtons(width, height float64) []Button {
	return stackButtons([]Button{{Label: "Confirm", Action: ActionMenu}}, width, height, 0.8, 0)
}

// BackButtons lays out the return-to-menu button of the leaderboard and tutorial.
func BackButtons(width, height float64) []Button {
	return stackButtons([]Button{{Label: "<- Back to menu", Action: ActionMenu}}, width, height, 0.9, 0)
}

// HUDLines returns the top-left labels and the top-right time label.
func HUDLines(s game.Score) (left []string, right string) {
	return []string{
		"Points: " + strconv.Itoa(s.Points),
		"Fails: " + strconv.Itoa(s.Fails),
	}, "Time: " + strconv.Itoa(int(s.Elapsed))
}

// StatsLines formats the metrics of a finished run.
func StatsLines(m game.Metrics) []string {
	return []string{
		"Points: " + strconv.Itoa(m.Points),
		"Time: " + strconv.FormatFloat(m.Time, 'f', 1, 64),
		"Combo Time: " + strconv.FormatFloat(m.ComboTime, 'f', 1, 64),
		"Objects Cut: " + strconv.Itoa(m.ObjectsCut),
	}
}

// ChallengeLines returns the heading and subtitle of the leaderboard screen.
// Without a fetched challenge the heading falls back to the ranking metric.
func ChallengeLines(c *common.Challenge, metric common.ChallengeType) (title, subtitle string) {
	if c == nil {
		if metric == "" {
			return "", ""
		}
		return "Ranked by " + string(metric), ""
	}
	return c.Name, c.Description
}

var medals = [3]string{"🥇 ", "🥈 ", "🥉 "}

// EntryLabel formats a leaderboard row at index i of the top list.
func EntryLabel(i int, e client.Entry) string {
	prefix := ""
	if i < len(medals) {
		prefix = medals[i]
	}
	return fmt.Sprintf("%s%d. %s — %s", prefix, i+1, e.Username, formatScore(e.Score))
}

// MeLabel formats the player's own row.
func MeLabel(e client.Entry) string {
	return fmt.Sprintf("⭐ %d. %s — %s", e.Rank, e.Username, formatScore(e.Score))
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TutorialLines explains the rules.
var TutorialLines = []string{
	"Drag across the screen to slice.",
	"Slice icons to score. Chain cuts within 2s for a combo multiplier.",
	"Avoid red hazards: slicing one costs a fail.",
	"Letting an icon fall off screen costs a fail. 3 fails ends the run.",
	"Green power-ups: Kunai Storm clears the screen, Slowmo slows time.",
	"Space pauses. The Daily Challenge ranks one metric per day.",
}
