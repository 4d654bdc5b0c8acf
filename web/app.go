//go:build js
// +build js

package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ninja-slice/audio"
	"github.com/simukka/ninja-slice/client"
	"github.com/simukka/ninja-slice/common"
	"github.com/simukka/ninja-slice/game"
	"github.com/simukka/ninja-slice/manifest"
)

// Manifest locations relative to the page.
const (
	IconsURL  = manifest.ImagesPrefix + "/" + manifest.IconsFile
	SoundsURL = manifest.SoundsPrefix + "/" + manifest.SoundsFile
)

// App is the browser host: it owns the canvas, the menus and the running session.
type App struct {
	Canvas *js.Object
	Ctx    *js.Object

	width, height float64

	assets *game.Assets
	ready  bool
	images map[string]*js.Object
	player *audio.Player
	api    *client.Client
	rng    *common.SeededRNG
	runs   int

	session *game.Session
	fx      Effects
	slowmo  bool

	screen  Screen
	soundOn bool
	buttons []Button
	hover   int

	lastMetrics game.Metrics
	board       *client.Board
	boardErr    error
	challenge   *common.Challenge

	animationFrameID int
	lastFrameTime    float64
}

// NewApp creates the host for a canvas. Assets load in the background.
func NewApp(canvas *js.Object) *App {
	a := &App{
		Canvas:  canvas,
		Ctx:     canvas.Call("getContext", "2d"),
		assets:  game.NewAssets(nil, nil),
		images:  make(map[string]*js.Object),
		api:     client.New(""),
		rng:     common.NewSeededRNG(uint32(time.Now().UnixNano())),
		soundOn: true,
		hover:   -1,
	}
	a.player = audio.NewPlayer(a.rng)
	a.resize()
	a.showMenu()
	return a
}

// Start loads the assets and runs the frame loop.
func (a *App) Start() {
	a.SetupInputHandlers()
	go a.loadAssets()
	a.animationFrameID = js.Global.Call("requestAnimationFrame", a.frame).Int()
}

// SetIdentity sets the player sent with leaderboard requests.
func (a *App) SetIdentity(userID, username string) {
	a.api.UserID = userID
	a.api.Username = username
}

func fetchBytes(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (a *App) loadAssets() {
	var icons manifest.Icons
	var sounds manifest.Sounds

	if data, err := fetchBytes(IconsURL); err != nil {
		DebugError("assets: icons manifest:", err.Error())
	} else if icons, err = manifest.DecodeIcons(data); err != nil {
		DebugError("assets:", err.Error())
	}
	if data, err := fetchBytes(SoundsURL); err != nil {
		DebugWarn("assets: sounds manifest:", err.Error())
	} else if sounds, err = manifest.DecodeSounds(data); err != nil {
		DebugError("assets:", err.Error())
	}

	a.assets = manifest.Assets(icons, sounds)
	for _, category := range manifest.IconCategories {
		for _, icon := range a.assets.Icons(category) {
			a.images[icon.Key] = LoadImage(icon.URL)
		}
	}
	a.player.LoadAssets(a.assets)
	a.ready = true
	a.layout()
	Debug("assets: loaded", len(a.images), "icons")
}

func (a *App) resize() {
	a.width = js.Global.Get("innerWidth").Float()
	a.height = js.Global.Get("innerHeight").Float()
	a.Canvas.Set("width", a.width)
	a.Canvas.Set("height", a.height)
	if a.session != nil {
		a.session.Dispatch(game.Resize{Width: a.width, Height: a.height})
	}
	a.layout()
}

// layout rebuilds the buttons of the current screen.
func (a *App) layout() {
	switch a.screen {
	case ScreenMenu:
		a.buttons = MenuButtons(a.width, a.height, a.soundOn, a.ready)
	case ScreenPaused:
		a.buttons = PauseButtons(a.width, a.height, a.soundOn)
	case ScreenGameOver:
		a.buttons = GameOverButtons(a.width, a.height)
	case ScreenLeaderboard, ScreenTutorial:
		a.buttons = BackButtons(a.width, a.height)
	default:
		a.buttons = nil
	}
	a.hover = -1
}

func (a *App) setScreen(s Screen) {
	Debug("screen:", a.screen.String(), "->", s.String())
	a.screen = s
	a.layout()
}

func (a *App) showMenu() {
	a.session = nil
	a.fx.Clear()
	a.slowmo = false
	a.setScreen(ScreenMenu)
}

// play starts a run. Ranked runs share the day's seed.
func (a *App) play(mode game.Mode) {
	if !a.ready {
		return
	}
	a.player.Init()

	seed := common.RunSeed(a.rng.Seed(), a.runs)
	if mode == game.ModeRanked {
		seed = common.DaySeed(time.Now())
	}
	a.runs++

	a.fx.Clear()
	a.slowmo = false
	a.session = game.NewSession(game.DefaultConfig(mode), a.assets, common.NewSeededRNG(seed), a)
	a.session.Dispatch(game.Resize{Width: a.width, Height: a.height})
	a.setScreen(ScreenPlaying)
}

func (a *App) showLeaderboard() {
	a.board, a.boardErr, a.challenge = nil, nil, nil
	a.setScreen(ScreenLeaderboard)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		challenge, err := a.api.Challenge(ctx)
		if err != nil {
			DebugWarn("Failed to fetch challenge", err.Error())
			return
		}
		a.challenge = challenge
	}()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		board, err := a.api.Top(ctx)
		if err != nil {
			DebugError("Failed to fetch leaderboard", err.Error())
			a.boardErr = err
			return
		}
		a.board = board
	}()
}

// submit posts a ranked run without blocking the game over screen.
func (a *App) submit(m game.Metrics) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := a.api.Submit(ctx, m); err != nil {
			DebugError("Failed to submit score", err.Error())
			return
		}
		Debug("Score submitted successfully")
	}()
}

func (a *App) press(action Action) {
	if a.soundOn {
		a.player.Init()
		a.player.PlayCue(a.assets, game.SoundCuts, game.SubDefault)
	}
	switch action {
	case ActionRanked:
		a.play(game.ModeRanked)
	case ActionCasual:
		a.play(game.ModeCasual)
	case ActionLeaderboard:
		a.showLeaderboard()
	case ActionTutorial:
		a.setScreen(ScreenTutorial)
	case ActionToggleSound:
		a.soundOn = !a.soundOn
		a.player.Enabled = a.soundOn
		a.layout()
	case ActionResume:
		a.session.Dispatch(game.TogglePause{})
	case ActionExit, ActionMenu:
		a.showMenu()
	}
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
	case game.PlaySound:
		a.player.PlayCue(a.assets, e.Category, e.Sub)
	case game.SlowmoChanged:
		a.slowmo = e.Active
	case game.ShieldActivated:
		Debug("Shield activated! (no effect)")
	case game.PauseChanged:
		if e.Paused {
			a.setScreen(ScreenPaused)
		} else {
			a.setScreen(ScreenPlaying)
		}
	case game.GameOver:
		a.lastMetrics = e.Metrics
		if e.Mode == game.ModeRanked {
			a.submit(e.Metrics)
		}
		a.fx.Clear()
		a.slowmo = false
		a.setScreen(ScreenGameOver)
	case game.EntitySpawned, game.EntityExpired, game.ScoreChanged, game.PowerUpActivated:
	default:
		DebugWarn("unhandled event", fmt.Sprintf("%T", ev))
	}
}
