//go:build js
// +build js

package audio

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ninja-slice/common"
	"github.com/simukka/ninja-slice/game"
)

// MasterVolume is the default gain of the player.
const MasterVolume = 0.7

// Player plays sound cues through the Web Audio API. Cues resolve to a random
// file from the asset registry, falling back to the procedural catalogue.
type Player struct {
	ctx        *js.Object
	masterGain *js.Object
	buffers    map[string]*js.Object
	rng        *common.SeededRNG
	pending    *game.Assets

	// Enabled mirrors the sound toggle of the host settings.
	Enabled bool
}

// NewPlayer creates a player. Init must be called from a user gesture.
func NewPlayer(rng *common.SeededRNG) *Player {
	return &Player{
		buffers: make(map[string]*js.Object),
		rng:     rng,
		Enabled: true,
	}
}

// Init creates the audio context. Returns false when Web Audio is unavailable.
func (p *Player) Init() bool {
	if p.ctx != nil {
		return true
	}
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return false
	}

	p.ctx = ctor.New()
	p.masterGain = p.ctx.Call("createGain")
	p.masterGain.Call("connect", p.ctx.Get("destination"))
	p.masterGain.Get("gain").Set("value", MasterVolume)

	for i, sfx := range Library {
		p.Load(sfx.Key, DataURL(RenderWAV(sfx.Params, uint32(i+1))))
	}
	if p.pending != nil {
		p.LoadAssets(p.pending)
	}
	return true
}

// Resume wakes a context suspended by the browser's autoplay policy.
func (p *Player) Resume() {
	if p.ctx != nil && p.ctx.Get("state").String() == "suspended" {
		p.ctx.Call("resume")
	}
}

// LoadAssets fetches and decodes every sound file in the registry. Before
// Init the registry is kept and loaded once the context exists.
func (p *Player) LoadAssets(assets *game.Assets) {
	if p.ctx == nil {
		p.pending = assets
		return
	}
	p.pending = nil
	for _, key := range assets.Keys() {
		url, _ := assets.URL(key)
		if isSoundURL(url) {
			p.Load(key, url)
		}
	}
}

func isSoundURL(url string) bool {
	return strings.HasSuffix(url, ".wav") || strings.HasSuffix(url, ".mp3")
}

// Load fetches and decodes one sound under key.
func (p *Player) Load(key, url string) {
	if p.ctx == nil {
		return
	}
	js.Global.Call("fetch", url).Call("then", func(response *js.Object) *js.Object {
		return response.Call("arrayBuffer")
	}).Call("then", func(data *js.Object) *js.Object {
		return p.ctx.Call("decodeAudioData", data)
	}).Call("then", func(buffer *js.Object) {
		p.buffers[key] = buffer
	}).Call("catch", func(err *js.Object) {
		js.Global.Get("console").Call("warn", "audio: failed to load", key, err)
	})
}

// Play plays a loaded sound by key.
func (p *Player) Play(key string) {
	if !p.Enabled || p.ctx == nil {
		return
	}
	buffer, ok := p.buffers[key]
	if !ok {
		return
	}
	p.Resume()

	source := p.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", p.masterGain)
	source.Call("start", 0)
}

// PlayCue plays a random registry sound for the cue, or its procedural stand-in.
func (p *Player) PlayCue(assets *game.Assets, category, sub string) {
	if sounds := assets.Sounds(category, sub); len(sounds) > 0 {
		p.Play(sounds[p.rng.Between(0, len(sounds)-1)].Key)
		return
	}
	if sfx, ok := Lookup(category, sub); ok {
		p.Play(sfx.Key)
	}
}
