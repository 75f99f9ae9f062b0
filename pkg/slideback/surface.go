package slideback

import (
	"image/color"

	"go-slideback/pkg/render"
)

// Surface is the 2D drawing target a View paints onto.
type Surface interface {
	// FillPath fills the closed path p.
	FillPath(p *Path, clr color.Color)
	// StrokeLine strokes a single segment with round caps.
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
}

// View is a slide-back style. The host sizes its overlay from Width and
// Height and calls Draw once per frame with the current pull distance.
type View interface {
	// ScrollVertical reports whether the panel follows the pointer along
	// the vertical axis.
	ScrollVertical() bool
	Width() int
	Height() int
	SetSide(side Side)
	Draw(s Surface, currentWidth float32)
}

type CommandKind int

const (
	CommandFillPath CommandKind = iota
	CommandStrokeLine
)

func (k CommandKind) String() string {
	switch k {
	case CommandFillPath:
		return "fill"
	case CommandStrokeLine:
		return "stroke"
	default:
		return "unknown"
	}
}

// Command is one primitive captured by a Recorder.
type Command struct {
	Kind  CommandKind
	Path  *Path   // CommandFillPath
	Line  Segment // CommandStrokeLine
	Width float32 // CommandStrokeLine
	Color color.NRGBA
}

// Recorder is a Surface that keeps the primitives instead of rasterising
// them.
type Recorder struct {
	commands []Command
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) FillPath(p *Path, clr color.Color) {
	r.commands = append(r.commands, Command{
		Kind:  CommandFillPath,
		Path:  p.clone(),
		Color: render.ToNRGBA(clr),
	})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	r.commands = append(r.commands, Command{
		Kind:  CommandStrokeLine,
		Line:  Segment{From: Point{x0, y0}, To: Point{x1, y1}},
		Width: width,
		Color: render.ToNRGBA(clr),
	})
}

// Commands returns the recorded primitives in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset drops recorded commands, keeping the backing storage.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}
