package slideback

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func newTestRenderer(side Side) *Renderer {
	r := NewRenderer(1)
	r.SetSide(side)
	return r
}

func TestNewRenderer_Dimensions(t *testing.T) {
	r := NewRenderer(1)
	assert.Equal(t, 50, r.Width())
	assert.Equal(t, 200, r.Height())
	assert.Equal(t, 4, r.ArrowWidth())
	assert.Equal(t, float32(2), r.StrokeWidth(), "1.5dp rounds half up")
	assert.True(t, r.ScrollVertical())
	assert.Equal(t, LeftEdge, r.Side())
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, r.BackgroundColor())
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, r.ArrowColor())

	hd := NewRenderer(3)
	assert.Equal(t, 150, hd.Width())
	assert.Equal(t, 600, hd.Height())
	assert.Equal(t, 12, hd.ArrowWidth())
	assert.Equal(t, float32(5), hd.StrokeWidth())

	fallback := NewRenderer(0)
	assert.Equal(t, 50, fallback.Width())
}

func TestDensity_Px(t *testing.T) {
	assert.Equal(t, 50, Density(1).Px(50))
	assert.Equal(t, 75, Density(1.5).Px(50))
	assert.Equal(t, 3, Density(2).Px(1.5))
	assert.Equal(t, 7, Density(2.75).Px(2.5), "6.875 rounds to 7")
}

func TestDraw_ZeroProgressDrawsNothing(t *testing.T) {
	for _, side := range []Side{LeftEdge, RightEdge} {
		rec := NewRecorder()
		newTestRenderer(side).Draw(rec, 0)
		assert.Zero(t, rec.Len(), side.String())

		_, ok := newTestRenderer(side).Frame(0)
		assert.False(t, ok)
	}
}

func TestDraw_CommandOrder(t *testing.T) {
	rec := NewRecorder()
	newTestRenderer(LeftEdge).Draw(rec, 50)

	cmds := rec.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, CommandFillPath, cmds[0].Kind)
	assert.Equal(t, CommandStrokeLine, cmds[1].Kind)
	assert.Equal(t, CommandStrokeLine, cmds[2].Kind)
	assert.Equal(t, float32(2), cmds[1].Width)
}

func TestFrame_ScenarioArrowHidden(t *testing.T) {
	f, ok := newTestRenderer(LeftEdge).Frame(10)
	require.True(t, ok)

	assert.Equal(t, float32(0.2), f.Progress)
	assert.Empty(t, f.Arrow, "0.2 belongs to the hidden regime")

	// petal bulges half the pull distance inward at the centre
	assert.Equal(t, Point{0, 0}, f.Petal.Start)
	require.Len(t, f.Petal.Curves, 2)
	assert.Equal(t, Point{5, 100}, f.Petal.Curves[0].End)
	assert.Equal(t, Point{0, 200}, f.Petal.Curves[1].End)

	rec := NewRecorder()
	f.Paint(rec)
	assert.Equal(t, 1, rec.Len(), "only the petal is filled")
}

func TestFrame_ScenarioVerticalBar(t *testing.T) {
	f, ok := newTestRenderer(LeftEdge).Frame(35)
	require.True(t, ok)
	require.Len(t, f.Arrow, 1)

	seg := f.Arrow[0]
	x := float32(35.0 / 6)
	assert.InDelta(t, x, seg.From.X, eps)
	assert.InDelta(t, x, seg.To.X, eps)
	assert.InDelta(t, 96, seg.From.Y, eps)
	assert.InDelta(t, 104, seg.To.Y, eps)
	assert.InDelta(t, 4, seg.HalfLength(), eps)
}

func TestFrame_ScenarioFullChevron(t *testing.T) {
	f, ok := newTestRenderer(LeftEdge).Frame(50)
	require.True(t, ok)
	require.Len(t, f.Arrow, 2)

	vertex := float32(50.0 / 6)
	upper, lower := f.Arrow[0], f.Arrow[1]

	assert.InDelta(t, vertex+4, upper.From.X, eps)
	assert.InDelta(t, 96, upper.From.Y, eps)
	assert.InDelta(t, vertex, upper.To.X, eps)
	assert.InDelta(t, 100, upper.To.Y, eps)

	assert.Equal(t, upper.To, lower.From, "segments share the vertex")
	assert.InDelta(t, vertex+4, lower.To.X, eps)
	assert.InDelta(t, 104, lower.To.Y, eps)

	assert.Equal(t, uint8(200), f.Background.A)
	assert.Equal(t, uint8(255), f.ArrowColor.A)
}

func TestFrame_RegimeContinuity(t *testing.T) {
	r := newTestRenderer(LeftEdge)

	// just above 0.2 the bar is (almost) a dot
	f, _ := r.Frame(10.001)
	require.Len(t, f.Arrow, 1)
	assert.InDelta(t, 0, f.Arrow[0].HalfLength(), 1e-3)

	// at 0.7 the bar reaches full height; just above, the chevron has no offset
	f, _ = r.Frame(35)
	require.Len(t, f.Arrow, 1)
	bar := f.Arrow[0].HalfLength()

	f, _ = r.Frame(35.001)
	require.Len(t, f.Arrow, 2)
	assert.InDelta(t, bar, f.Arrow[0].HalfLength()*2, 1e-3)
	assert.InDelta(t, f.Arrow[0].To.X, f.Arrow[0].From.X, 1e-3, "vertex offset is zero at 0.7")
}

func TestFrame_OpacityMonotonic(t *testing.T) {
	r := newTestRenderer(RightEdge)
	var prevBg, prevArrow uint8
	for d := 1; d <= 50; d++ {
		f, ok := r.Frame(float32(d))
		require.True(t, ok)
		assert.GreaterOrEqual(t, f.Background.A, prevBg)
		assert.GreaterOrEqual(t, f.ArrowColor.A, prevArrow)
		prevBg, prevArrow = f.Background.A, f.ArrowColor.A
	}
	assert.Equal(t, uint8(200), prevBg)
	assert.Equal(t, uint8(255), prevArrow)
}

func TestFrame_ArrowOpacityIsContinuous(t *testing.T) {
	// opacity follows progress even while the arrow geometry is hidden
	f, _ := newTestRenderer(LeftEdge).Frame(5)
	assert.Empty(t, f.Arrow)
	assert.Equal(t, uint8(25), f.ArrowColor.A)
	assert.Equal(t, uint8(20), f.Background.A)
}

func TestFrame_RightIsMirrorOfLeft(t *testing.T) {
	left := newTestRenderer(LeftEdge)
	right := newTestRenderer(RightEdge)
	width := float32(left.Width())

	for _, d := range []float32{1, 10, 12.5, 20, 35, 40, 47.3, 50} {
		lf, ok := left.Frame(d)
		require.True(t, ok)
		rf, ok := right.Frame(d)
		require.True(t, ok)

		lp, rp := lf.Petal.Points(), rf.Petal.Points()
		require.Len(t, rp, len(lp))
		for i := range lp {
			assert.Equal(t, width-lp[i].X, rp[i].X, "petal x at %v", d)
			assert.Equal(t, lp[i].Y, rp[i].Y, "petal y at %v", d)
		}

		require.Len(t, rf.Arrow, len(lf.Arrow))
		for i := range lf.Arrow {
			assert.Equal(t, width-lf.Arrow[i].From.X, rf.Arrow[i].From.X)
			assert.Equal(t, width-lf.Arrow[i].To.X, rf.Arrow[i].To.X)
			assert.Equal(t, lf.Arrow[i].From.Y, rf.Arrow[i].From.Y)
			assert.Equal(t, lf.Arrow[i].To.Y, rf.Arrow[i].To.Y)
		}

		assert.Equal(t, lf.Background, rf.Background)
		assert.Equal(t, lf.ArrowColor, rf.ArrowColor)
	}
}

func TestFrame_RightEdgeAnchors(t *testing.T) {
	f, _ := newTestRenderer(RightEdge).Frame(50)
	assert.Equal(t, Point{50, 0}, f.Petal.Start)
	assert.Equal(t, Point{25, 100}, f.Petal.Curves[0].End)
	assert.Equal(t, Point{50, 200}, f.Petal.Curves[1].End)

	// vertex sits nearer the right edge than the tips
	assert.Greater(t, f.Arrow[0].To.X, f.Arrow[0].From.X)
}

func TestColorSettersDoNotChangeGeometry(t *testing.T) {
	r := newTestRenderer(LeftEdge)
	before, _ := r.Frame(42)

	r.SetBackgroundColor(color.NRGBA{0x33, 0x66, 0x99, 0x10})
	r.SetArrowColor(color.RGBA{255, 0, 0, 255})
	after, _ := r.Frame(42)

	assert.Equal(t, before.Petal, after.Petal)
	assert.Equal(t, before.Arrow, after.Arrow)
	assert.Equal(t, before.StrokeWidth, after.StrokeWidth)

	assert.Equal(t, color.NRGBA{0x33, 0x66, 0x99, before.Background.A}, after.Background,
		"background alpha comes from progress, not the colour")
	assert.Equal(t, color.NRGBA{255, 0, 0, before.ArrowColor.A}, after.ArrowColor)
}

func TestFrame_UnclampedProgress(t *testing.T) {
	f, ok := newTestRenderer(LeftEdge).Frame(75)
	require.True(t, ok)
	assert.Equal(t, float32(1.5), f.Progress)
	assert.Equal(t, Point{37.5, 100}, f.Petal.Curves[0].End)
	assert.Equal(t, uint8(255), f.ArrowColor.A)
	assert.Equal(t, uint8(255), f.Background.A)
}

func TestFrame_NegativeProgressHasNoArrow(t *testing.T) {
	f, ok := newTestRenderer(LeftEdge).Frame(-10)
	require.True(t, ok)
	assert.Empty(t, f.Arrow)
	assert.Zero(t, f.Background.A)
}

func TestSide(t *testing.T) {
	s, err := ParseSide("Right")
	require.NoError(t, err)
	assert.Equal(t, RightEdge, s)

	s, err = ParseSide(" left ")
	require.NoError(t, err)
	assert.Equal(t, LeftEdge, s)

	_, err = ParseSide("top")
	assert.ErrorIs(t, err, ErrInvalidSide)

	assert.Equal(t, "left", LeftEdge.String())
	assert.Equal(t, "right", RightEdge.String())
	assert.Equal(t, "Side(7)", Side(7).String())
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	p := &Path{Start: Point{1, 2}, Curves: []Cubic{{End: Point{3, 4}}}}
	rec.FillPath(p, color.RGBA{0, 0, 0, 255})
	p.Curves[0].End = Point{9, 9}

	rec.StrokeLine(0, 1, 2, 3, 1.5, color.White)

	cmds := rec.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, Point{3, 4}, cmds[0].Path.Curves[0].End, "recorded path is a copy")
	assert.Equal(t, Segment{Point{0, 1}, Point{2, 3}}, cmds[1].Line)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, cmds[1].Color)
	assert.Equal(t, "fill", cmds[0].Kind.String())
	assert.Equal(t, "stroke", cmds[1].Kind.String())

	rec.Reset()
	assert.Zero(t, rec.Len())
}
