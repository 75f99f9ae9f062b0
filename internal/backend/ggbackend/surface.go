// Package ggbackend rasterises slideback frames with the gg software
// renderer, for headless previews and PNG export.
package ggbackend

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"go-slideback/pkg/slideback"

	"github.com/gogpu/gg"
)

// ErrNoFrames is returned by RenderStrip when no pull distances are given.
var ErrNoFrames = errors.New("no frames to render")

// Surface adapts a *gg.Context to slideback.Surface. gg reports fill and
// stroke failures as errors; the first one is kept and exposed by Err.
type Surface struct {
	dc  *gg.Context
	err error
}

var _ slideback.Surface = (*Surface)(nil)

func NewSurface(dc *gg.Context) *Surface {
	return &Surface{dc: dc}
}

func (s *Surface) FillPath(p *slideback.Path, clr color.Color) {
	s.dc.ClearPath()
	s.dc.MoveTo(float64(p.Start.X), float64(p.Start.Y))
	for _, c := range p.Curves {
		s.dc.CubicTo(
			float64(c.C1.X), float64(c.C1.Y),
			float64(c.C2.X), float64(c.C2.Y),
			float64(c.End.X), float64(c.End.Y),
		)
	}
	s.dc.ClosePath()
	s.dc.SetColor(clr)
	s.keep(s.dc.Fill(), "fill petal")
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	s.dc.ClearPath()
	s.dc.SetColor(clr)
	s.dc.SetLineWidth(float64(width))
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	s.keep(s.dc.Stroke(), "stroke arrow")
}

// Err returns the first drawing error, if any.
func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) keep(err error, op string) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("%s: %w", op, err)
	}
}

// RenderPNG paints a single frame of view at currentWidth into a panel-sized
// image and encodes it as PNG.
func RenderPNG(w io.Writer, view slideback.View, currentWidth float32) error {
	return RenderStrip(w, view, []float32{currentWidth})
}

// RenderStrip paints one panel per pull distance, left to right, into a
// single image and encodes it as PNG.
func RenderStrip(w io.Writer, view slideback.View, distances []float32) error {
	if len(distances) == 0 {
		return ErrNoFrames
	}

	dc := gg.NewContext(view.Width()*len(distances), view.Height())
	defer dc.Close()

	if err := PaintStrip(dc, view, distances); err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PaintStrip draws the frames onto an existing context.
func PaintStrip(dc *gg.Context, view slideback.View, distances []float32) error {
	s := NewSurface(dc)
	for i, d := range distances {
		dc.Push()
		dc.Translate(float64(i*view.Width()), 0)
		view.Draw(s, d)
		dc.Pop()
		if err := s.Err(); err != nil {
			return fmt.Errorf("frame %d (pull %.2f): %w", i, d, err)
		}
	}
	return nil
}

// EvenDistances returns n pull distances spread evenly over (0, width].
func EvenDistances(width, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(width) * float32(i+1) / float32(n)
	}
	return out
}
