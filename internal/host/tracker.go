// Package host drives a slideback.View from pointer input: it picks the
// edge, turns the drag into a pull distance, positions the panel and fires
// the back action. It is the demo's stand-in for a UI toolkit.
package host

import (
	"context"

	"go-slideback/internal/config"
	"go-slideback/internal/event"
	"go-slideback/internal/logging"
	"go-slideback/internal/state"
	"go-slideback/internal/utils"
	"go-slideback/pkg/slideback"

	"github.com/rs/zerolog"
)

// Pointer is the polled pointer state for one frame.
type Pointer struct {
	Down bool
	X, Y float32
}

// Tracker turns pointer frames into a pull distance for view.
type Tracker struct {
	view    slideback.View
	screenW float32
	screenH float32
	log     *zerolog.Logger
	sm      *state.StateMachine
	events  *event.Dispatcher

	pointer      Pointer
	prevDown     bool
	justPressed  bool
	justReleased bool

	side     slideback.Side
	startX   float32
	distance float32
	y        float32
}

func NewTracker(ctx context.Context, view slideback.View, screenW, screenH int) *Tracker {
	t := &Tracker{
		view:    view,
		screenW: float32(screenW),
		screenH: float32(screenH),
		log:     logging.FromContext(logging.WithComponent(ctx, "tracker")),
		sm:      state.NewStateMachine(),
		events:  event.NewDispatcher(),
		y:       float32(screenH) / 2,
	}
	t.sm.SetState(&idleState{t: t})
	return t
}

// Update feeds one frame of pointer input and advances the gesture.
func (t *Tracker) Update(p Pointer, deltaTime float64) {
	t.justPressed = p.Down && !t.prevDown
	t.justReleased = !p.Down && t.prevDown
	t.pointer = p
	t.sm.Update(deltaTime)
	t.prevDown = p.Down
}

// Events delivers PullStarted, BackTriggered, PullReleased and Settled.
func (t *Tracker) Events() *event.Dispatcher { return t.events }

func (t *Tracker) emit(typ event.EventType) {
	t.events.Dispatch(event.Event{
		Type: typ,
		Data: event.Pull{Side: t.side, Distance: t.distance},
	})
}

// Distance is the pull distance to hand to View.Draw.
func (t *Tracker) Distance() float32 { return t.distance }

func (t *Tracker) Side() slideback.Side { return t.side }

// Phase names the current gesture phase: idle, pulling or settling.
func (t *Tracker) Phase() string { return t.sm.CurrentName() }

// Progress is Distance relative to the panel width.
func (t *Tracker) Progress() float32 {
	return t.distance / float32(t.view.Width())
}

// Overlay returns the top-left screen position of the panel: flush with the
// active edge and centred on the pointer, kept on screen.
func (t *Tracker) Overlay() (x, y float32) {
	w, h := float32(t.view.Width()), float32(t.view.Height())
	if t.side == slideback.RightEdge {
		x = t.screenW - w
	}
	y = utils.Clamp(t.y-h/2, 0, max(t.screenH-h, 0))
	return x, y
}

func (t *Tracker) edgeAt(x float32) (slideback.Side, bool) {
	switch {
	case x <= config.EdgeSlop:
		return slideback.LeftEdge, true
	case x >= t.screenW-config.EdgeSlop:
		return slideback.RightEdge, true
	}
	return slideback.LeftEdge, false
}

// pull is the drag away from the press point toward the screen interior,
// clamped to the panel width.
func (t *Tracker) pull() float32 {
	d := t.pointer.X - t.startX
	if t.side == slideback.RightEdge {
		d = -d
	}
	return utils.Clamp(d, 0, float32(t.view.Width()))
}

type idleState struct{ t *Tracker }

func (s *idleState) Name() string { return "idle" }
func (s *idleState) Enter()       { s.t.distance = 0 }
func (s *idleState) Exit()        {}

func (s *idleState) Update(float64) {
	t := s.t
	if !t.justPressed {
		return
	}
	side, ok := t.edgeAt(t.pointer.X)
	if !ok {
		return
	}
	t.side = side
	t.startX = t.pointer.X
	t.y = t.pointer.Y
	t.view.SetSide(side)
	t.log.Debug().Str("side", side.String()).Float32("x", t.pointer.X).Msg("pull started")
	t.sm.SetState(&pullingState{t: t})
	t.emit(event.PullStarted)
}

type pullingState struct{ t *Tracker }

func (s *pullingState) Name() string { return "pulling" }
func (s *pullingState) Enter()       {}
func (s *pullingState) Exit()        {}

func (s *pullingState) Update(float64) {
	t := s.t
	if t.justReleased || !t.pointer.Down {
		if t.distance >= float32(t.view.Width()) {
			t.log.Info().Str("side", t.side.String()).Msg("back triggered")
			t.emit(event.BackTriggered)
		} else {
			t.emit(event.PullReleased)
		}
		t.sm.SetState(&settlingState{t: t})
		return
	}
	t.distance = t.pull()
	if t.view.ScrollVertical() {
		t.y = t.pointer.Y
	}
}

type settlingState struct{ t *Tracker }

func (s *settlingState) Name() string { return "settling" }
func (s *settlingState) Enter()       {}
func (s *settlingState) Exit()        {}

func (s *settlingState) Update(deltaTime float64) {
	t := s.t
	t.distance -= float32(config.SettleSpeed * deltaTime)
	if t.distance <= 0 {
		t.sm.SetState(&idleState{t: t})
		t.emit(event.Settled)
	}
}
