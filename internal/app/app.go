//go:build ebiten

package app

import (
	"image/color"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 160

// Game adapts a generation sequence to the ebiten.Game interface.
type Game struct {
	player  *Player
	clock   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD

	engine string
	rule   string

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game that replays res at fps frames per second.
func New(res core.Result[*core.Grid], engine string, rule core.Rule, scale, fps int) *Game {
	w, h, _ := render.Plane(res.Generations[0])
	return &Game{
		player:   NewPlayer(res),
		clock:    core.NewFixedStep(fps),
		painter:  render.NewGridPainter(w, h),
		hud:      ui.NewHUD(hudWidth),
		engine:   engine,
		rule:     rule.String(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    max(scale, 1),
	}
}

// Update handles per-frame input and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.player.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.player.Restart()
	}
	g.player.Advance(g.clock.ShouldStep())

	grid, idx := g.player.Current()
	g.hud.Update(ui.Status{
		Engine:      g.engine,
		Rule:        g.rule,
		Shape:       grid.Shape(),
		Generation:  idx,
		Total:       g.player.Len(),
		Population:  grid.Population(),
		Termination: g.player.Termination().String(),
		Paused:      g.player.Paused(),
	})
	return nil
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	grid, _ := g.player.Current()
	g.painter.Blit(screen, grid, g.onColor, g.offColor, g.scale)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}
