package vitrine

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS overrides ebiten's tick rate when positive.
	TPS int
	// ExitWhenDone ends the game loop once the scene's script runner is done.
	ExitWhenDone bool
	// HUD, when set, is drawn over every frame.
	HUD *HUD
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cam   *Camera
	cfg   RunConfig
}

func (g *game) Update() error {
	if err := g.scene.Update(1 / float64(ebiten.TPS())); err != nil {
		return err
	}
	if r := g.scene.runner; r != nil && g.cfg.ExitWhenDone && r.Done() {
		if err := r.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.cam)
	if g.cfg.HUD != nil {
		g.cfg.HUD.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene with ebiten's game loop, drawing from
// cam. A camera with an empty viewport is given the whole window.
func Run(scene *Scene, cam *Camera, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	if cfg.Title == "" {
		cfg.Title = "vitrine"
	}
	if cam != nil && cam.Viewport.Width == 0 && cam.Viewport.Height == 0 {
		cam.Viewport = Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(&game{scene: scene, cam: cam, cfg: cfg})
}

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	// Hz is the simulated tick rate; dt is 1/Hz. Defaults to 60.
	Hz int
	// Ticks stops the run after this many ticks (0 = until the script is
	// done, or forever without a script).
	Ticks uint64
	// Realtime paces ticks with a wall-clock ticker instead of running them
	// back to back.
	Realtime bool
}

// RunHeadless drives scene without opening a window. It returns nil when
// the tick limit is reached or the script runner finishes, the runner's
// error if it recorded one, or ctx.Err() on cancellation.
func RunHeadless(ctx context.Context, scene *Scene, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	dt := 1 / float64(cfg.Hz)

	var tick <-chan time.Time
	if cfg.Realtime {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var n uint64
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := scene.Update(dt); err != nil {
			return err
		}
		scene.dropScreenshots()

		n++
		if r := scene.runner; r != nil && r.Done() {
			return r.Err()
		}
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			return nil
		}
	}
}
