package audio

import (
	"fmt"
	"strconv"
	"strings"
)

// WaveType is the oscillator waveform of a sound effect.
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSawtooth
	WaveSine
	WaveNoise
)

func (w WaveType) String() string {
	switch w {
	case WaveSquare:
		return "Square"
	case WaveSawtooth:
		return "Sawtooth"
	case WaveSine:
		return "Sine"
	case WaveNoise:
		return "Noise"
	default:
		return "Unknown"
	}
}

// Params are the synthesis parameters of one effect, in the order of the
// comma separated sfxr parameter string. Values are normalised (0..1, or -1..1
// for sweeps).
type Params struct {
	Wave WaveType

	// Envelope
	Attack  float64
	Sustain float64
	Punch   float64
	Decay   float64

	// Pitch
	StartFrequency float64
	MinFrequency   float64
	Slide          float64
	DeltaSlide     float64
	VibratoDepth   float64
	VibratoSpeed   float64
	ChangeAmount   float64 // Arpeggio jump
	ChangeSpeed    float64

	// Square duty
	SquareDuty float64
	DutySweep  float64

	// Unused by the renderer, kept so parameter strings round-trip.
	RepeatSpeed  float64
	PhaserOffset float64
	PhaserSweep  float64

	// Filters
	LPCutoff      float64
	LPCutoffSweep float64
	LPResonance   float64
	HPCutoff      float64
	HPCutoffSweep float64

	Volume float64
}

// fields lists the float parameters in string order, after the wave type.
func (p *Params) fields() []*float64 {
	return []*float64{
		&p.Attack, &p.Sustain, &p.Punch, &p.Decay,
		&p.StartFrequency, &p.MinFrequency, &p.Slide, &p.DeltaSlide,
		&p.VibratoDepth, &p.VibratoSpeed, &p.ChangeAmount, &p.ChangeSpeed,
		&p.SquareDuty, &p.DutySweep,
		&p.RepeatSpeed, &p.PhaserOffset, &p.PhaserSweep,
		&p.LPCutoff, &p.LPCutoffSweep, &p.LPResonance,
		&p.HPCutoff, &p.HPCutoffSweep,
		&p.Volume,
	}
}

// ParseParams parses an sfxr parameter string. Empty entries are zero and
// missing trailing entries are zero.
func ParseParams(s string) (Params, error) {
	var p Params
	parts := strings.Split(s, ",")
	fields := p.fields()
	if len(parts) > len(fields)+1 {
		return Params{}, fmt.Errorf("parse sound params: %d values, want at most %d", len(parts), len(fields)+1)
	}

	for i, raw := range parts {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Params{}, fmt.Errorf("parse sound params: value %d: %w", i, err)
		}
		if i == 0 {
			if f < 0 || f > float64(WaveNoise) {
				return Params{}, fmt.Errorf("parse sound params: unknown wave type %v", f)
			}
			p.Wave = WaveType(f)
			continue
		}
		*fields[i-1] = f
	}
	return p, nil
}

// String formats the parameters back into an sfxr parameter string.
func (p Params) String() string {
	fields := p.fields()
	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, strconv.Itoa(int(p.Wave)))
	for _, f := range fields {
		if *f == 0 {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, strconv.FormatFloat(*f, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

// SoundEffect is a named procedural sound bound to a sound cue.
type SoundEffect struct {
	Key         string // Catalogue key, e.g. "cut_default"
	Category    string // Sound category of the cue it stands in for
	Sub         string // Sound subcategory of the cue it stands in for
	Description string

	Params Params
}

// MustSoundEffect builds a catalogue entry, panicking on a malformed parameter string.
func MustSoundEffect(key, category, sub, desc, params string) *SoundEffect {
	p, err := ParseParams(params)
	if err != nil {
		panic(fmt.Sprintf("audio: sound %q: %v", key, err))
	}
	return &SoundEffect{Key: key, Category: category, Sub: sub, Description: desc, Params: p}
}
