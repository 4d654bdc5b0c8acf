package audio

import (
	"math"
	"strings"
	"testing"
)

func floatNear(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestParseParams_Basic(t *testing.T) {
	p, err := ParseParams("0,.1,.2,.3,.4,.5,.6,.7,.8,.9,.1,.11,.12,.13,.14,.15,.16,.17,.18,.19,.2,.21,.22,.5")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if p.Wave != WaveSquare {
		t.Errorf("Wave: expected Square, got %s", p.Wave)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Attack", p.Attack, 0.1},
		{"Sustain", p.Sustain, 0.2},
		{"Punch", p.Punch, 0.3},
		{"Decay", p.Decay, 0.4},
		{"StartFrequency", p.StartFrequency, 0.5},
		{"MinFrequency", p.MinFrequency, 0.6},
		{"Slide", p.Slide, 0.7},
		{"DeltaSlide", p.DeltaSlide, 0.8},
		{"VibratoDepth", p.VibratoDepth, 0.9},
		{"VibratoSpeed", p.VibratoSpeed, 0.1},
		{"ChangeAmount", p.ChangeAmount, 0.11},
		{"ChangeSpeed", p.ChangeSpeed, 0.12},
		{"SquareDuty", p.SquareDuty, 0.13},
		{"DutySweep", p.DutySweep, 0.14},
		{"RepeatSpeed", p.RepeatSpeed, 0.15},
		{"PhaserOffset", p.PhaserOffset, 0.16},
		{"PhaserSweep", p.PhaserSweep, 0.17},
		{"LPCutoff", p.LPCutoff, 0.18},
		{"LPCutoffSweep", p.LPCutoffSweep, 0.19},
		{"LPResonance", p.LPResonance, 0.2},
		{"HPCutoff", p.HPCutoff, 0.21},
		{"HPCutoffSweep", p.HPCutoffSweep, 0.22},
		{"Volume", p.Volume, 0.5},
	}

	for _, tt := range tests {
		if !floatNear(tt.got, tt.want, 0.001) {
			t.Errorf("%s: expected %v, got %f", tt.name, tt.want, tt.got)
		}
	}
}

func TestParseParams_EmptyAndMissingAreZero(t *testing.T) {
	p, err := ParseParams("3,,.3,,-.363")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if p.Wave != WaveNoise {
		t.Errorf("Wave: expected Noise, got %s", p.Wave)
	}
	if p.Attack != 0 {
		t.Errorf("Attack: expected 0, got %f", p.Attack)
	}
	if !floatNear(p.Decay, -0.363, 0.001) {
		t.Errorf("Decay: expected -0.363, got %f", p.Decay)
	}
	if p.Volume != 0 {
		t.Errorf("Volume: expected 0, got %f", p.Volume)
	}
}

func TestParseParams_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a number", "0,abc"},
		{"negative wave", "-1,.1"},
		{"unknown wave", "7,.1"},
		{"too many values", strings.Repeat("0,", 25) + "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseParams(tt.input); err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
		})
	}
}

func TestParams_StringRoundTrip(t *testing.T) {
	for _, sfx := range Library {
		back, err := ParseParams(sfx.Params.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", sfx.Key, err)
		}
		if back != sfx.Params {
			t.Errorf("%s: expected %+v, got %+v", sfx.Key, sfx.Params, back)
		}
	}
}

func TestParams_StringEmptiesZeroes(t *testing.T) {
	s := Params{Wave: WaveSine, Sustain: 0.25, Volume: 0.5}.String()

	if !strings.HasPrefix(s, "2,,0.25,") {
		t.Errorf("Expected prefix 2,,0.25, got %q", s)
	}
	if n := strings.Count(s, ","); n != 23 {
		t.Errorf("Expected 23 separators, got %d", n)
	}
}

func TestMustSoundEffect_PanicsOnMalformed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for malformed params")
		}
	}()
	MustSoundEffect("bad", "cuts", "default", "", "x")
}

func TestLibrary_KeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, sfx := range Library {
		if seen[sfx.Key] {
			t.Errorf("Duplicate key %q", sfx.Key)
		}
		seen[sfx.Key] = true
		if sfx.Params.Volume <= 0 {
			t.Errorf("%s: expected positive volume, got %f", sfx.Key, sfx.Params.Volume)
		}
	}
}

func TestLookup_CoversGameCues(t *testing.T) {
	cues := []struct {
		category, sub, key string
	}{
		{"cuts", "default", SfxCutDefault},
		{"cuts", "hazard", SfxCutHazard},
		{"cuts", "powerUp", SfxCutPowerUp},
		{"effects", "jump", SfxJump},
		{"powerUps", "kunaiStorm", SfxKunaiStorm},
		{"powerUps", "Slowmo", SfxSlowmo},
	}

	for _, c := range cues {
		sfx, ok := Lookup(c.category, c.sub)
		if !ok {
			t.Errorf("Expected effect for %s/%s", c.category, c.sub)
			continue
		}
		if sfx.Key != c.key {
			t.Errorf("%s/%s: expected %s, got %s", c.category, c.sub, c.key, sfx.Key)
		}
	}

	if _, ok := Lookup("cuts", "nope"); ok {
		t.Error("Expected no effect for unknown cue")
	}
}

func TestByKey(t *testing.T) {
	sfx, ok := ByKey(SfxUIClick)
	if !ok {
		t.Fatal("Expected ui click effect")
	}
	if sfx.Category != "ui" {
		t.Errorf("Expected category ui, got %s", sfx.Category)
	}
	if _, ok := ByKey("missing"); ok {
		t.Error("Expected missing key to fail")
	}
}
