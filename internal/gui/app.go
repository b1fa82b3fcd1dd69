// Package gui hosts the pointer effects in a raylib window: the starfield
// behind a tilting glass card, a custom cursor, and an optional audio pad.
package gui

import (
	"fmt"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/starfield/internal/anim"
	"github.com/san-kum/starfield/internal/audio"
	"github.com/san-kum/starfield/internal/audio/output"
	"github.com/san-kum/starfield/internal/config"
	"github.com/san-kum/starfield/internal/geom"
	"github.com/san-kum/starfield/internal/logging"
	"github.com/san-kum/starfield/internal/scene"
	"github.com/san-kum/starfield/internal/starfield"
	"github.com/san-kum/starfield/internal/viz"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

type App struct {
	cfg *config.Config
	log *logging.Logger

	page    *scene.Page
	scene   *scene.Scene
	loop    *anim.Loop
	surface *Surface
	theme   viz.Theme
	colors  palette
	font    rl.Font

	synth *audio.Synth
	audio *output.Stream
	muted bool

	stats    starfield.FrameStats
	pointer  geom.Point
	onScreen bool
	paused   bool
	showHUD  bool
	quit     bool
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Render.Width), int32(cfg.Render.Height), "starfield")
	rl.SetTargetFPS(int32(cfg.Render.FPS))
	rl.SetExitKey(0)
	rl.HideCursor()
}

// loadFont prefers Liberation Mono and falls back to raylib's built-in font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp mounts the scene on a page sized to the window. The window must
// already be open.
func NewApp(cfg *config.Config, log *logging.Logger) (*App, error) {
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	page := scene.NewPage(w, h)

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	sc, err := scene.Mount(page.Doc, scene.Options{
		Starfield: cfg.StarfieldConfig(),
		Rand:      rng,
		Card:      cfg.TiltCard(),
	})
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		log:     log,
		page:    page,
		scene:   sc,
		font:    loadFont(),
		showHUD: true,
	}
	a.setTheme(viz.GetTheme(cfg.Render.Theme))
	a.surface = NewSurface(a.colors)
	a.loop = anim.New(sc, a.surface, nil)

	if cfg.Audio.Enabled {
		a.startAudio()
	}

	log.Info("window %gx%g, %d stars, theme %s", w, h, cfg.Starfield.Stars, a.theme.Name)
	return a, nil
}

// startAudio wires the pad to the frame loop. Device errors leave the window
// running silent.
func (a *App) startAudio() {
	synth := audio.NewSynth(a.cfg.Starfield.Stars)
	synth.SetVolume(a.cfg.Audio.Volume)

	stream, err := output.Open(synth, a.log.With("audio"))
	if err != nil {
		a.log.Warn("audio disabled: %v", err)
		return
	}
	a.synth, a.audio = synth, stream
	a.loop.AddObserver(synth)
}

func (a *App) setTheme(t viz.Theme) {
	a.theme = t
	a.colors = newPalette(t)
	if a.surface != nil {
		a.surface.setPalette(a.colors)
	}
}

func (a *App) Close() {
	if err := a.audio.Close(); err != nil {
		a.log.Warn("%v", err)
	}
	if a.font.Texture.ID != rl.GetFontDefault().Texture.ID {
		rl.UnloadFont(a.font)
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *logging.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	app, err := NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("start window: %w", err)
	}
	defer app.Close()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		a.paused = !a.paused
	case rl.IsKeyPressed(rl.KeyH):
		a.showHUD = !a.showHUD
	case rl.IsKeyPressed(rl.KeyT):
		a.setTheme(viz.NextTheme(a.theme))
	case rl.IsKeyPressed(rl.KeyM):
		a.toggleMute()
	}

	if rl.IsWindowResized() {
		w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
		a.page.Layout(w, h)
		a.scene.Resize(w, h)
		a.log.Debug("resized to %gx%g", w, h)
	}

	a.updatePointer()
}

func (a *App) toggleMute() {
	if a.synth == nil {
		return
	}
	a.muted = !a.muted
	if a.muted {
		a.synth.SetVolume(0)
	} else {
		a.synth.SetVolume(a.cfg.Audio.Volume)
	}
}

// updatePointer forwards motion only when the position changed, and a single
// leave when the cursor exits the window.
func (a *App) updatePointer() {
	if !rl.IsCursorOnScreen() {
		if a.onScreen {
			a.onScreen = false
			a.scene.PointerLeave()
		}
		return
	}

	m := rl.GetMousePosition()
	p := geom.Point{X: float64(m.X), Y: float64(m.Y)}
	if a.onScreen && p == a.pointer {
		return
	}
	a.onScreen, a.pointer = true, p
	a.scene.PointerMove(p)
}

func (a *App) Draw() {
	rl.BeginDrawing()

	switch {
	case a.paused && a.scene.Field != nil:
		a.scene.Field.Draw(a.surface)
	case a.paused:
		a.surface.Clear(0, 0)
	default:
		a.stats = a.loop.Step()
	}

	a.drawNav()
	a.drawCard()
	if a.showHUD {
		a.drawHUD()
	}
	a.drawCursor()

	rl.EndDrawing()
}
