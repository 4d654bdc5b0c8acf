package web

import (
	"image/color"
	"strconv"

	"github.com/simukka/ninja-slice/game"
)

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background colors
	BackgroundColor       string
	SlowmoBackgroundColor string
	OverlayColor          string

	// Entity borders
	GoodBorderColor    string
	HazardBorderColor  string
	PowerUpBorderColor string
	BorderLineWidth    float64

	// Slice trail
	TrailColor    string
	TrailMinWidth float64
	TrailMaxWidth float64

	// UI/HUD colors
	TextColor       string
	TextStroke      string
	TextStrokeWidth float64
	ComboColor      string
	StatsColor      string
	MutedColor      string

	// Buttons
	ButtonColor      string
	ButtonHoverColor string
	ButtonBorder     string
	ButtonAltColor   string
	ButtonAltBorder  string

	// Leaderboard rows
	RowColor     string
	RowTextColor string
	MeRowColor   string
	MedalColors  [3]string
	MedalBorders [3]string

	// Fonts
	HUDFont    string
	ComboFont  string
	TitleFont  string
	ButtonFont string
	RowFont    string
}{
	BackgroundColor:       "#222222",
	SlowmoBackgroundColor: "#4B0082",
	OverlayColor:          "rgba(0, 0, 0, 0.6)",

	GoodBorderColor:    "#ffff00",
	HazardBorderColor:  "#ff0000",
	PowerUpBorderColor: "#00ff00",
	BorderLineWidth:    5,

	TrailColor:    "255, 255, 255",
	TrailMinWidth: 3,
	TrailMaxWidth: 5,

	TextColor:       "#ffffff",
	TextStroke:      "#000000",
	TextStrokeWidth: 4,
	ComboColor:      "#ffff00",
	StatsColor:      "#d562ff",
	MutedColor:      "#888888",

	ButtonColor:      "#330066",
	ButtonHoverColor: "#6600cc",
	ButtonBorder:     "#000000",
	ButtonAltColor:   "#000000",
	ButtonAltBorder:  "#330066",

	RowColor:     "#ffffff",
	RowTextColor: "#4e0e78",
	MeRowColor:   "#4b0082",
	MedalColors:  [3]string{"#ffd700", "#c0c0c0", "#cd7f32"},
	MedalBorders: [3]string{"#b8860b", "#808080", "#8b4513"},

	HUDFont:    "25px Helvetica, Arial, sans-serif",
	ComboFont:  "40px Helvetica, Arial, sans-serif",
	TitleFont:  "bold 48px Helvetica, Arial, sans-serif",
	ButtonFont: "20px Helvetica, Arial, sans-serif",
	RowFont:    "20px Helvetica, Arial, sans-serif",
}

// BorderColor returns the outline color for an entity kind.
func BorderColor(k game.Kind) string {
	switch k.(type) {
	case game.Hazard:
		return Theme.HazardBorderColor
	case game.PowerUp:
		return Theme.PowerUpBorderColor
	default:
		return Theme.GoodBorderColor
	}
}

// RGBA parses a "#rrggbb" theme color. Anything else yields opaque black.
func RGBA(hex string) color.RGBA {
	c := color.RGBA{A: 0xff}
	if len(hex) != 7 || hex[0] != '#' {
		return c
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return c
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c
}
