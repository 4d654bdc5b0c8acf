package audio

import (
	"math"

	"github.com/simukka/ninja-slice/common"
)

// SampleRate of every rendered effect.
const SampleRate = 44100

// oversample is the number of sub-samples averaged into one output sample.
const oversample = 8

// envelope is a three stage attack / sustain / decay volume curve measured in samples.
type envelope struct {
	attack, sustain, decay float64
	punch                  float64
}

func newEnvelope(p Params) envelope {
	sustain := p.Sustain
	if sustain < 0.01 {
		sustain = 0.01
	}
	env := envelope{
		attack:  p.Attack * p.Attack * 100000,
		sustain: sustain * sustain * 100000,
		decay:   p.Decay*p.Decay*100000 + 10,
		punch:   p.Punch,
	}
	// Very short effects click; stretch them to a minimum length.
	if minLen := 0.18 * 0.18 * 100000; env.length() < minLen {
		scale := minLen / env.length()
		env.attack *= scale
		env.sustain *= scale
		env.decay *= scale
	}
	return env
}

func (e envelope) length() float64 {
	return e.attack + e.sustain + e.decay
}

// level returns the volume at sample t, and false once the envelope has ended.
func (e envelope) level(t float64) (float64, bool) {
	switch {
	case t < e.attack:
		return t / e.attack, true
	case t < e.attack+e.sustain:
		return 1 + (1-(t-e.attack)/e.sustain)*2*e.punch, true
	case t < e.length():
		return 1 - (t-e.attack-e.sustain)/e.decay, true
	default:
		return 0, false
	}
}

// oscillator produces the raw waveform with pitch slide, vibrato and arpeggio.
type oscillator struct {
	wave WaveType
	rng  *common.SeededRNG

	period, maxPeriod float64
	slide, deltaSlide float64
	stopAtMin         bool

	vibratoPhase, vibratoSpeed, vibratoDepth float64

	change, changeAt float64

	duty, dutySweep float64

	phase float64
	noise [32]float64
}

func newOscillator(p Params, rng *common.SeededRNG) *oscillator {
	o := &oscillator{
		wave:         p.Wave,
		rng:          rng,
		period:       100 / (p.StartFrequency*p.StartFrequency + 0.001),
		maxPeriod:    100 / (p.MinFrequency*p.MinFrequency + 0.001),
		slide:        1 - p.Slide*p.Slide*p.Slide*0.01,
		deltaSlide:   -p.DeltaSlide * p.DeltaSlide * p.DeltaSlide * 0.000001,
		stopAtMin:    p.MinFrequency > 0,
		vibratoSpeed: p.VibratoSpeed * p.VibratoSpeed * 0.01,
		vibratoDepth: p.VibratoDepth / 2,
		duty:         0.5 - p.SquareDuty/2,
		dutySweep:    -p.DutySweep * 0.00005,
	}
	if p.ChangeAmount > 0 {
		o.change = 1 - p.ChangeAmount*p.ChangeAmount*0.9
	} else {
		o.change = 1 + p.ChangeAmount*p.ChangeAmount*10
	}
	if p.ChangeSpeed != 1 {
		o.changeAt = (1-p.ChangeSpeed)*(1-p.ChangeSpeed)*20000 + 32
	}
	o.refreshNoise()
	return o
}

func (o *oscillator) refreshNoise() {
	for i := range o.noise {
		o.noise[i] = o.rng.RandomFloat(-1, 1)
	}
}

// advance moves the pitch state forward by one output sample and returns the
// current period. It returns false when the pitch has slid below the minimum frequency.
func (o *oscillator) advance(t float64) (float64, bool) {
	if o.changeAt != 0 && t >= o.changeAt {
		o.period *= o.change
		o.changeAt = 0
	}

	o.slide += o.deltaSlide
	o.period *= o.slide
	if o.period > o.maxPeriod {
		o.period = o.maxPeriod
		if o.stopAtMin {
			return 0, false
		}
	}

	period := o.period
	if o.vibratoDepth > 0 {
		o.vibratoPhase += o.vibratoSpeed
		period *= 1 + math.Sin(o.vibratoPhase)*o.vibratoDepth
	}
	period = math.Max(8, math.Floor(period))

	if o.wave == WaveSquare {
		o.duty = math.Min(0.5, math.Max(0, o.duty+o.dutySweep))
	}
	return period, true
}

// sample returns the next sub-sample for the given period.
func (o *oscillator) sample(period float64) float64 {
	o.phase++
	if o.phase >= period {
		o.phase = math.Mod(o.phase, period)
		if o.wave == WaveNoise {
			o.refreshNoise()
		}
	}
	pos := o.phase / period

	switch o.wave {
	case WaveSquare:
		if pos < o.duty {
			return 0.5
		}
		return -0.5
	case WaveSawtooth:
		return 1 - pos*2
	case WaveSine:
		return math.Sin(pos * 2 * math.Pi)
	case WaveNoise:
		return o.noise[int(pos*32)%32]
	default:
		return 0
	}
}

// filter is the resonant low-pass followed by a one pole high-pass.
type filter struct {
	enabled bool

	lpOn                bool
	lpCutoff, lpDelta   float64
	lpDamping           float64
	lpPos, lpVel, lpOld float64

	hpCutoff, hpDelta float64
	hpPos             float64
}

func newFilter(p Params) *filter {
	lp := p.LPCutoff * p.LPCutoff * p.LPCutoff * 0.1
	damping := 5 / (1 + p.LPResonance*p.LPResonance*20) * (0.01 + lp)
	return &filter{
		enabled:   p.LPCutoff != 1 || p.HPCutoff != 0,
		lpOn:      p.LPCutoff != 1,
		lpCutoff:  lp,
		lpDelta:   1 + p.LPCutoffSweep*0.0001,
		lpDamping: 1 - math.Min(0.8, damping),
		hpCutoff:  p.HPCutoff * p.HPCutoff * 0.1,
		hpDelta:   1 + p.HPCutoffSweep*0.0003,
	}
}

// sweep updates the high-pass cutoff once per output sample.
func (f *filter) sweep() {
	if !f.enabled || f.hpDelta == 1 {
		return
	}
	f.hpCutoff = math.Min(0.1, math.Max(0.00001, f.hpCutoff*f.hpDelta))
}

func (f *filter) apply(in float64) float64 {
	if !f.enabled {
		return in
	}
	f.lpOld = f.lpPos
	f.lpCutoff = math.Min(0.1, math.Max(0, f.lpCutoff*f.lpDelta))
	if f.lpOn {
		f.lpVel += (in - f.lpPos) * f.lpCutoff
		f.lpVel *= f.lpDamping
	} else {
		f.lpPos = in
		f.lpVel = 0
	}
	f.lpPos += f.lpVel

	f.hpPos += f.lpPos - f.lpOld
	f.hpPos *= 1 - f.hpCutoff
	return f.hpPos
}

// Render synthesises an effect into 16-bit mono samples at SampleRate.
// Noise is drawn from seed so the same parameters always render the same samples.
func Render(p Params, seed uint32) []int16 {
	env := newEnvelope(p)
	osc := newOscillator(p, common.NewSeededRNG(seed))
	flt := newFilter(p)
	volume := p.Volume * p.Volume

	total := int(env.length())
	out := make([]int16, 0, total)
	for i := 0; i < total; i++ {
		t := float64(i)
		level, ok := env.level(t)
		if !ok {
			break
		}
		period, ok := osc.advance(t)
		if !ok {
			break
		}
		flt.sweep()

		var sum float64
		for j := 0; j < oversample; j++ {
			sum += flt.apply(osc.sample(period))
		}
		out = append(out, toPCM(sum/oversample*level*volume))
	}
	return out
}

func toPCM(v float64) int16 {
	switch {
	case v >= 1:
		return math.MaxInt16
	case v <= -1:
		return math.MinInt16
	default:
		return int16(v * math.MaxInt16)
	}
}

// RenderWAV renders an effect and wraps it in a WAV container.
func RenderWAV(p Params, seed uint32) []byte {
	return EncodeWAV(Render(p, seed), SampleRate)
}
