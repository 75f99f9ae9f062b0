package slideback

import "image/color"

type Point struct {
	X, Y float32
}

// Cubic is one cubic Bézier segment continuing from the previous end point.
type Cubic struct {
	C1, C2, End Point
}

// Path is a closed outline made of cubic segments starting at Start.
type Path struct {
	Start  Point
	Curves []Cubic
}

// Points returns every point of the path in drawing order, control points
// included.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, 1+3*len(p.Curves))
	pts = append(pts, p.Start)
	for _, c := range p.Curves {
		pts = append(pts, c.C1, c.C2, c.End)
	}
	return pts
}

func (p *Path) clone() *Path {
	return &Path{
		Start:  p.Start,
		Curves: append([]Cubic(nil), p.Curves...),
	}
}

type Segment struct {
	From, To Point
}

// HalfLength returns half the vertical extent of the segment.
func (s Segment) HalfLength() float32 {
	d := s.To.Y - s.From.Y
	if d < 0 {
		d = -d
	}
	return d / 2
}

// Frame holds the drawing instructions for one paint call.
type Frame struct {
	Progress    float32
	Petal       Path
	Background  color.NRGBA
	Arrow       []Segment
	ArrowColor  color.NRGBA
	StrokeWidth float32
}

// Paint issues the frame's primitives onto s: the petal first, then each
// arrow segment.
func (f *Frame) Paint(s Surface) {
	s.FillPath(&f.Petal, f.Background)
	for _, seg := range f.Arrow {
		s.StrokeLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, f.StrokeWidth, f.ArrowColor)
	}
}
