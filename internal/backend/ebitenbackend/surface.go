package ebitenbackend

import (
	"image/color"

	"go-slideback/pkg/render"
	"go-slideback/pkg/slideback"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface paints slideback primitives onto an *ebiten.Image. Vertex and
// index buffers are reused across frames.
type Surface struct {
	target   *ebiten.Image
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

var _ slideback.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &Surface{
		whiteImg: whiteImg,
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 96),
	}
}

// SetTarget selects the image subsequent calls draw into.
func (s *Surface) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) FillPath(p *slideback.Path, clr color.Color) {
	if s.target == nil {
		return
	}
	path := buildPath(p)
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	tint(s.vs, clr)
	s.target.DrawTriangles(s.vs, s.is, s.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	if s.target == nil {
		return
	}
	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)

	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:   width,
		LineCap: vector.LineCapRound,
	})
	tint(s.vs, clr)
	s.target.DrawTriangles(s.vs, s.is, s.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func buildPath(p *slideback.Path) *vector.Path {
	path := &vector.Path{}
	path.MoveTo(p.Start.X, p.Start.Y)
	for _, c := range p.Curves {
		path.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.End.X, c.End.Y)
	}
	path.Close()
	return path
}

// tint sets straight-alpha vertex colours, the mode DrawTriangles uses by
// default.
func tint(vs []ebiten.Vertex, clr color.Color) {
	c := render.ToNRGBA(clr)
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255
	for i := range vs {
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
