// Package app is the interactive demo: an ebiten window where dragging from
// either side edge pulls out the slide-back affordance.
package app

import (
	"context"
	"fmt"
	"time"

	"go-slideback/internal/backend/ebitenbackend"
	"go-slideback/internal/config"
	"go-slideback/internal/event"
	"go-slideback/internal/host"
	"go-slideback/internal/logging"
	"go-slideback/pkg/slideback"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

const backFlashDuration = 250 * time.Millisecond

// Game implements ebiten.Game around a single slideback.Renderer.
type Game struct {
	renderer *slideback.Renderer
	tracker  *host.Tracker
	surface  *ebitenbackend.Surface
	panel    *ebiten.Image
	log      *zerolog.Logger

	lastUpdateTime time.Time
	backCount      int
	lastBack       time.Time
}

func NewGame(ctx context.Context, renderer *slideback.Renderer) *Game {
	g := &Game{
		renderer:       renderer,
		tracker:        host.NewTracker(ctx, renderer, config.ScreenWidth, config.ScreenHeight),
		surface:        ebitenbackend.NewSurface(),
		panel:          ebiten.NewImage(renderer.Width(), renderer.Height()),
		log:            logging.FromContext(logging.WithComponent(ctx, "demo")),
		lastUpdateTime: time.Now(),
	}
	g.tracker.Events().Subscribe(event.BackTriggered, g)
	return g
}

// OnEvent handles BackTriggered; a real host would pop its navigation stack
// here.
func (g *Game) OnEvent(e event.Event) {
	pull, _ := e.Data.(event.Pull)
	g.backCount++
	g.lastBack = time.Now()
	g.log.Info().Str("side", pull.Side.String()).Int("count", g.backCount).Msg("navigate back")
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.lastUpdateTime = now

	g.tracker.Update(pollPointer(), deltaTime)
	return nil
}

// pollPointer reads the first touch, falling back to the left mouse button.
func pollPointer() host.Pointer {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return host.Pointer{Down: true, X: float32(x), Y: float32(y)}
	}
	x, y := ebiten.CursorPosition()
	return host.Pointer{
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:    float32(x),
		Y:    float32(y),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if time.Since(g.lastBack) < backFlashDuration {
		screen.Fill(config.BackFlashColor)
	} else {
		screen.Fill(config.ScreenColor)
	}

	g.panel.Clear()
	g.surface.SetTarget(g.panel)
	g.renderer.Draw(g.surface, g.tracker.Distance())

	x, y := g.tracker.Overlay()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(g.panel, op)

	text.Draw(screen, statusLine(g.tracker, g.backCount), basicfont.Face7x13, config.StatusX, config.StatusY, config.StatusTextColor)
}

func statusLine(t *host.Tracker, backs int) string {
	return fmt.Sprintf("%-8s %-5s pull %5.1f  progress %.2f  back %d",
		t.Phase(), t.Side(), t.Distance(), t.Progress(), backs)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Run opens the demo window and blocks until it is closed.
func Run(ctx context.Context, renderer *slideback.Renderer) error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("slideback")

	log := logging.FromContext(ctx)
	log.Info().
		Str("side", renderer.Side().String()).
		Int("width", renderer.Width()).
		Int("height", renderer.Height()).
		Msg("starting demo")

	if err := ebiten.RunGame(NewGame(ctx, renderer)); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
