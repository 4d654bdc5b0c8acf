//go:build !js
// +build !js

// Package desktop runs a session in a native window.
package desktop

import (
	"context"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	_ "golang.org/x/image/webp"

	"github.com/simukka/ninja-slice/client"
	"github.com/simukka/ninja-slice/common"
	"github.com/simukka/ninja-slice/game"
	"github.com/simukka/ninja-slice/manifest"
	"github.com/simukka/ninja-slice/web"
)

// Options configure a desktop run.
type Options struct {
	Mode game.Mode
	// Seed overrides the run seed. Zero picks the day's seed for ranked runs
	// and a random one for casual runs.
	Seed      uint32
	StaticDir string
	// Client submits ranked runs when set.
	Client *client.Client
	Logger *slog.Logger
}

// App implements ebiten.Game and game.Host.
type App struct {
	opts Options
	log  *slog.Logger

	assets *game.Assets
	images map[string]*ebiten.Image
	rng    *common.SeededRNG
	runs   int

	session *game.Session
	fx      web.Effects
	slowmo  bool
	metrics *game.Metrics

	width, height int
	touchID       ebiten.TouchID
	touching      bool
}

// New loads the assets under opts.StaticDir and starts the first run.
// Missing assets leave the icons undrawn; they are not fatal.
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	a := &App{
		opts:   opts,
		log:    opts.Logger,
		rng:    common.NewSeededRNG(uint32(time.Now().UnixNano())),
		images: make(map[string]*ebiten.Image),
		width:  game.WIDTH,
		height: game.HEIGHT,
	}
	a.loadAssets()
	a.start()
	return a
}

func (a *App) loadAssets() {
	icons, err := manifest.ScanIcons(os.DirFS(filepath.Join(a.opts.StaticDir, manifest.ImagesPrefix)))
	if err != nil {
		a.log.Warn("Failed to scan icons", "error", err)
	}
	sounds, err := manifest.ScanSounds(os.DirFS(filepath.Join(a.opts.StaticDir, manifest.SoundsPrefix)))
	if err != nil {
		a.log.Warn("Failed to scan sounds", "error", err)
	}
	a.assets = manifest.Assets(icons, sounds)

	for _, category := range manifest.IconCategories {
		for _, icon := range a.assets.Icons(category) {
			img, _, err := ebitenutil.NewImageFromFile(filepath.Join(a.opts.StaticDir, filepath.FromSlash(icon.URL)))
			if err != nil {
				a.log.Warn("Failed to load icon", "key", icon.Key, "error", err)
				continue
			}
			a.images[icon.Key] = img
		}
	}
	a.log.Info("Assets loaded", "icons", len(a.images))
}

func (a *App) seed() uint32 {
	switch {
	case a.opts.Seed != 0:
		return common.RunSeed(a.opts.Seed, a.runs)
	case a.opts.Mode == game.ModeRanked:
		return common.DaySeed(time.Now())
	default:
		return common.RunSeed(a.rng.Seed(), a.runs)
	}
}

// start begins a new run in the configured mode.
func (a *App) start() {
	seed := a.seed()
	a.runs++
	a.fx.Clear()
	a.slowmo = false
	a.metrics = nil
	a.touching = false
	a.session = game.NewSession(game.DefaultConfig(a.opts.Mode), a.assets, common.NewSeededRNG(seed), a)
	a.session.Dispatch(game.Resize{Width: float64(a.width), Height: float64(a.height)})
	a.log.Info("Run started", "mode", a.opts.Mode.String(), "seed", seed)
	if a.opts.Mode == game.ModeRanked && a.opts.Client != nil {
		go a.announceChallenge()
	}
}

func (a *App) announceChallenge() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c, err := a.opts.Client.Challenge(ctx)
	if err != nil {
		a.log.Warn("Failed to fetch challenge", "error", err)
		return
	}
	a.log.Info("Daily challenge", "name", c.Name, "metric", string(c.ID), "description", c.Description)
}

// Handle implements game.Host.
func (a *App) Handle(ev game.Event) {
	switch e := ev.(type) {
	case game.EntityCut:
		a.fx.AddCut(e.Entity)
	case game.ComboFeedback:
		a.fx.AddPopup(e.X, e.Y, e.Label)
	case game.CameraShake:
		a.fx.Shake.Start(e.Duration, e.Intensity)
	case game.SlowmoChanged:
		a.slowmo = e.Active
	case game.PowerUpActivated:
		a.log.Debug("Power-up activated", "effect", e.Effect.String())
	case game.PlaySound:
		a.log.Debug("Sound cue", "category", e.Category, "sub", e.Sub)
	case game.GameOver:
		m := e.Metrics
		a.metrics = &m
		a.fx.Clear()
		a.slowmo = false
		a.log.Info("Game over", "mode", e.Mode.String(), "points", m.Points, "time", m.Time, "objects_cut", m.ObjectsCut)
		if e.Mode == game.ModeRanked && a.opts.Client != nil {
			go a.submit(m)
		}
	}
}

func (a *App) submit(m game.Metrics) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := a.opts.Client.Submit(ctx, m)
	if err != nil {
		a.log.Error("Failed to submit score", "error", err)
		return
	}
	a.log.Info("Score submitted", "status", res.Status)
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.start()
		return nil
	}
	if a.session.Over() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			a.start()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.session.Dispatch(game.TogglePause{})
	}

	a.updatePointer()

	dt := 1 / float64(ebiten.TPS())
	a.session.Dispatch(game.Tick{DT: dt})
	if !a.session.Paused() {
		a.fx.Update(dt)
	}
	return nil
}

// updatePointer turns mouse and first-touch input into pointer commands.
func (a *App) updatePointer() {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 && !a.touching {
		a.touchID, a.touching = ids[0], true
		x, y := ebiten.TouchPosition(a.touchID)
		a.session.Dispatch(game.PointerDown{X: float64(x), Y: float64(y)})
		return
	}
	if a.touching {
		if inpututil.IsTouchJustReleased(a.touchID) {
			a.touching = false
			a.session.Dispatch(game.PointerUp{})
			return
		}
		x, y := ebiten.TouchPosition(a.touchID)
		a.session.Dispatch(game.PointerMove{X: float64(x), Y: float64(y)})
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.session.Dispatch(game.PointerDown{X: float64(x), Y: float64(y)})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.session.Dispatch(game.PointerUp{})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		a.session.Dispatch(game.PointerMove{X: float64(x), Y: float64(y)})
	}
}

// Layout implements ebiten.Game. The session follows the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.session.Dispatch(game.Resize{Width: float64(a.width), Height: float64(a.height)})
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(a *App) error {
	ebiten.SetWindowSize(game.WIDTH, game.HEIGHT)
	ebiten.SetWindowTitle("Ninja Slice - " + a.opts.Mode.String())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// iconSize returns the source size of an icon image.
func iconSize(img *ebiten.Image) (w, h float64) {
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// halfRect returns the left or right half of an image's bounds.
func halfRect(img *ebiten.Image, left bool) image.Rectangle {
	b := img.Bounds()
	mid := b.Min.X + b.Dx()/2
	if left {
		return image.Rect(b.Min.X, b.Min.Y, mid, b.Max.Y)
	}
	return image.Rect(mid, b.Min.Y, b.Max.X, b.Max.Y)
}
