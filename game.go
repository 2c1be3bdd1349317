package main

import (
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"coinshower/config"
	"coinshower/engine"
	"coinshower/logging"
	"coinshower/model"
	"coinshower/timeline"
)

// main game object
type Game struct {
	cfg *config.Config

	// window resolution
	screenWidth  int
	screenHeight int
	fullscreen   bool
	vsync        bool

	renderer  *engine.Renderer
	scheduler *timeline.Scheduler
	loader    *engine.Loader
	rng       *rand.Rand

	// shower is the effect attached once assets are ready
	shower *model.CoinShower

	hud       *HUD
	showDebug bool
}

// NewGame builds the renderer and scheduler and starts loading the coin
// textures. The coin shower is attached when loading completes.
func NewGame(cfg *config.Config) *Game {
	logging.Log.Printf("initializing game %dx%d", cfg.Window.Width, cfg.Window.Height)

	g := &Game{
		cfg:          cfg,
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		fullscreen:   cfg.Window.Fullscreen,
		vsync:        cfg.Window.Vsync,
		showDebug:    cfg.Debug,
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	g.setResolution(g.screenWidth, g.screenHeight)
	g.setFullscreen(g.fullscreen)
	g.setVsyncEnabled(g.vsync)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.renderer = engine.NewRenderer(engine.NewTextureCache(), model.RGBA(cfg.Background))
	g.scheduler = timeline.NewScheduler(g.renderer.Stage(), timeline.SystemClock{})
	g.hud = NewHUD(engine.NewFace(13))

	g.loadContent()

	return g
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	return ebiten.RunGame(g)
}

func (g *Game) assetFS() fs.FS {
	if g.cfg.AssetsDir != "" {
		return os.DirFS(g.cfg.AssetsDir)
	}
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		logging.Warnf("embedded assets unavailable: %v", err)
		return assets
	}
	return sub
}

// loadContent queues every coin texture and moves the timeline to loading.
func (g *Game) loadContent() {
	g.loader = engine.NewLoader(g.assetFS())
	for i := 0; i < model.CoinTextureCount; i++ {
		g.loader.Add(model.CoinTextureName(i), model.CoinTexturePath(i))
	}
	g.scheduler.BeginLoading()
	g.loader.Load()
}

// onLoad fills the texture cache, attaches the coin shower and starts the timeline.
func (g *Game) onLoad(res engine.LoadResult) {
	textures := g.renderer.Textures()
	for name, tex := range res.Textures {
		textures.Put(name, tex)
	}
	if len(res.Failed) > 0 {
		logging.Warnf("%d texture(s) failed to load: %v", len(res.Failed), res.Failed)
	}
	logging.Log.Printf("loaded %d texture(s)", textures.Len())

	g.shower = model.NewCoinShower(g.renderer, g.cfg.Effect, g.rng)
	g.scheduler.AddEffect(g.shower)
	g.scheduler.Start()
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	switch g.scheduler.State() {
	case timeline.StateLoading:
		if res, ok := g.loader.Poll(); ok {
			g.onLoad(res)
		}
	case timeline.StateRunning:
		g.scheduler.Tick()
	}

	if g.showDebug {
		g.hud.Update(g.status())
	}
	return nil
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen)

	if g.showDebug {
		g.drawUI(screen)
	}
}

func (g *Game) setResolution(screenWidth, screenHeight int) {
	g.screenWidth, g.screenHeight = screenWidth, screenHeight
	ebiten.SetWindowSize(screenWidth, screenHeight)
}

func (g *Game) setFullscreen(fullscreen bool) {
	g.fullscreen = fullscreen
	ebiten.SetFullscreen(fullscreen)
}

func (g *Game) setVsyncEnabled(enableVsync bool) {
	g.vsync = enableVsync
	ebiten.SetVsyncEnabled(enableVsync)
}
