package audio

import "github.com/simukka/ninja-slice/game"

// Catalogue keys
const (
	SfxCutDefault = "cut_default"
	SfxCutHazard  = "cut_hazard"
	SfxCutPowerUp = "cut_powerUp"
	SfxJump       = "jump"
	SfxKunaiStorm = "kunai_storm"
	SfxSlowmo     = "slowmo"
	SfxUIClick    = "ui_click"
)

// Library holds the procedural stand-ins for every sound cue the game emits.
var Library = []*SoundEffect{
	MustSoundEffect(SfxCutDefault, game.SoundCuts, game.SubDefault, "Blade slices a good target",
		"3,,.08,.21,.19,.52,,-.42,,,,,,,,,,,1,,,.31,,.35"),
	MustSoundEffect(SfxCutHazard, game.SoundCuts, game.SubHazard, "Blade hits a hazard",
		"3,.0704,.0462,.3388,.4099,.1599,,.0109,-.3247,.0006,,-.1592,.4477,.1028,.1787,,-.0157,-.3372,.1896,.1628,,.0016,-.0003,.5"),
	MustSoundEffect(SfxCutPowerUp, game.SoundCuts, game.SubPowerUp, "Power-up collected",
		"0,.09,.1099,.0733,.0854,.1099,,-.1891,.827,,,.9826,,,.4642,,-.1194,.2327,.8815,-.2364,.0992,.0076,.8314,.5"),
	MustSoundEffect(SfxJump, game.SoundEffects, game.SubJump, "Target launched from below",
		"0,,.1812,,.1349,.3,,.2,,,,,,.2,,,,,1,,,.1,,.25"),
	MustSoundEffect(SfxKunaiStorm, game.SoundPowerUps, game.SubKunaiStorm, "Kunai storm clears the screen",
		"3,.05,.3365,.4591,.4922,.1051,,.015,,,,-.6646,.7394,,,,,,1,,,,,.6"),
	MustSoundEffect(SfxSlowmo, game.SoundPowerUps, game.SubSlowmo, "Time slows down",
		"1,.1299,.27,.1299,.4199,.1599,,-.2383,,,,-.6399,,,-.4799,.7099,,,1,,,,,.5"),
	MustSoundEffect(SfxUIClick, "ui", "click", "Menu button pressed",
		"0,,.0398,,.11,.44,,,,,,,,.3,,,,,1,,,.1,,.3"),
}

// Lookup returns the effect standing in for a sound cue.
func Lookup(category, sub string) (*SoundEffect, bool) {
	for _, sfx := range Library {
		if sfx.Category == category && sfx.Sub == sub {
			return sfx, true
		}
	}
	return nil, false
}

// ByKey returns the catalogue entry with the given key.
func ByKey(key string) (*SoundEffect, bool) {
	for _, sfx := range Library {
		if sfx.Key == key {
			return sfx, true
		}
	}
	return nil, false
}
