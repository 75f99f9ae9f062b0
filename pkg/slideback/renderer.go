// Package slideback renders the edge pull-to-go-back affordance: a
// translucent petal bulging out of a screen edge and an arrow that grows from
// a dot into a chevron as the pull distance increases.
//
// Rendering is a pure function of the pull distance supplied by the host.
// The package does not read input, recognise gestures or navigate.
package slideback

import (
	"image/color"

	"go-slideback/internal/config"
	"go-slideback/internal/utils"
	"go-slideback/pkg/render"
)

// Density converts device-independent units to pixels.
type Density float32

// Px resolves dp to whole pixels, rounding half up.
func (d Density) Px(dp float32) int {
	return int(dp*float32(d) + 0.5)
}

// Renderer is the default slide-back style. It is not safe for concurrent
// use; set colours and side from the goroutine that paints.
type Renderer struct {
	width       int
	height      int
	arrowWidth  int
	strokeWidth float32

	background color.NRGBA
	arrow      color.NRGBA
	side       Side
}

var _ View = (*Renderer)(nil)

// NewRenderer resolves the panel dimensions for density. A non-positive
// density falls back to config.DefaultDensity.
func NewRenderer(density Density) *Renderer {
	if density <= 0 {
		density = config.DefaultDensity
	}
	return &Renderer{
		width:       density.Px(config.PanelWidthDp),
		height:      density.Px(config.PanelHeightDp),
		arrowWidth:  density.Px(config.ArrowWidthDp),
		strokeWidth: float32(density.Px(config.StrokeWidthDp)),
		background:  config.DefaultBackgroundColor,
		arrow:       config.DefaultArrowColor,
		side:        LeftEdge,
	}
}

func (r *Renderer) ScrollVertical() bool { return true }
func (r *Renderer) Width() int           { return r.width }
func (r *Renderer) Height() int          { return r.height }

// ArrowWidth is the resolved arrow half-size in pixels.
func (r *Renderer) ArrowWidth() int { return r.arrowWidth }

func (r *Renderer) StrokeWidth() float32 { return r.strokeWidth }

// SetBackgroundColor sets the petal colour. Its alpha is replaced by the
// progress-derived opacity at paint time.
func (r *Renderer) SetBackgroundColor(c color.Color) {
	r.background = render.ToNRGBA(c)
}

func (r *Renderer) BackgroundColor() color.NRGBA { return r.background }

// SetArrowColor sets the arrow colour. Like the background, its alpha is
// driven by progress.
func (r *Renderer) SetArrowColor(c color.Color) {
	r.arrow = render.ToNRGBA(c)
}

func (r *Renderer) ArrowColor() color.NRGBA { return r.arrow }

func (r *Renderer) SetSide(side Side) { r.side = side }
func (r *Renderer) Side() Side        { return r.side }

// Progress returns currentWidth relative to the panel width. It is not
// clamped; the host keeps the pull distance within [0, Width()].
func (r *Renderer) Progress(currentWidth float32) float32 {
	return currentWidth / float32(r.width)
}

// Draw paints one frame for the pull distance currentWidth. Nothing is drawn
// at zero progress.
func (r *Renderer) Draw(s Surface, currentWidth float32) {
	f, ok := r.Frame(currentWidth)
	if !ok {
		return
	}
	f.Paint(s)
}

// Frame computes the drawing instructions for currentWidth without painting
// them. ok is false when progress is exactly zero.
func (r *Renderer) Frame(currentWidth float32) (f Frame, ok bool) {
	progress := r.Progress(currentWidth)
	if progress == 0 {
		return Frame{}, false
	}

	height := float32(r.height)
	centerY := height / 2

	f = Frame{
		Progress:    progress,
		Petal:       r.petal(currentWidth / 2),
		Background:  render.WithAlpha(r.background, render.AlphaFor(config.BackgroundMaxAlpha, progress)),
		Arrow:       r.arrowSegments(currentWidth, progress, centerY),
		ArrowColor:  render.WithAlpha(r.arrow, render.AlphaFor(config.ArrowMaxAlpha, progress)),
		StrokeWidth: r.strokeWidth,
	}
	return f, true
}

// petal builds the lens anchored at the edge, bulging inward by bulge at the
// vertical centre.
//
//	edge ·
//	     |
//	     *
//	          *
//	          |
//	          · bulge
//	          |
//	          *
//	     *
//	     |
//	edge ·
func (r *Renderer) petal(bulge float32) Path {
	h := float32(r.height)
	return Path{
		Start: r.point(0, 0),
		Curves: []Cubic{
			{C1: r.point(0, h/4), C2: r.point(bulge, h*3/8), End: r.point(bulge, h/2)},
			{C1: r.point(bulge, h*5/8), C2: r.point(0, h*3/4), End: r.point(0, h)},
		},
	}
}

func (r *Renderer) arrowSegments(currentWidth, progress, centerY float32) []Segment {
	inset := currentWidth / config.ArrowInsetDivisor
	arrowWidth := float32(r.arrowWidth)

	switch {
	case progress <= config.ArrowAppearProgress:
		return nil
	case progress <= config.ArrowMorphProgress:
		// vertical bar growing from the centre
		half := arrowWidth * utils.InverseLerp(config.ArrowAppearProgress, config.ArrowMorphProgress, progress)
		return []Segment{
			{From: r.point(inset, centerY-half), To: r.point(inset, centerY+half)},
		}
	default:
		// bar folds into a chevron whose vertex stays on the edge side
		tips := inset + arrowWidth*utils.InverseLerp(config.ArrowMorphProgress, 1, progress)
		return []Segment{
			{From: r.point(tips, centerY-arrowWidth), To: r.point(inset, centerY)},
			{From: r.point(inset, centerY), To: r.point(tips, centerY+arrowWidth)},
		}
	}
}

func (r *Renderer) point(inset, y float32) Point {
	return Point{X: r.side.x(inset, float32(r.width)), Y: y}
}
