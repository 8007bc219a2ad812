package simpleplot

import (
	"errors"
	"testing"

	"github.com/jack-dinsmore/SimplePlots/window"
)

// freePlots deregisters test plots at cleanup, clearing any leftover
// canvas back-reference first.
func freePlots(t *testing.T, ids ...PlotID) {
	t.Helper()
	t.Cleanup(func() {
		for _, id := range ids {
			plotReg.disassociate(id)
			if err := DeletePlot(id); err != nil {
				t.Errorf("DeletePlot(%d) = %v", id, err)
			}
		}
	})
}

func memberTypes(c *Canvas) []PlotType {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]PlotType, 0, len(c.plots))
	for _, id := range c.plots {
		pt, _ := plotReg.typeOf(id)
		out = append(out, pt)
	}
	return out
}

func TestCanvas_MembershipOrdered(t *testing.T) {
	series := NewSeries(1, []float64{1, 2}, nil)
	scatter := NewScatter([]Point2{{X: 0, Y: 1}}, nil)
	hist := NewHistogram(1, []float64{2, 3}, nil)
	series2 := NewSeries(1, []float64{4, 5}, nil)
	freePlots(t, series, scatter, hist, series2)

	// Construction order is arbitrary; membership must come out sorted
	// by descending type precedence regardless.
	c, err := newCanvas([]PlotID{series, hist, scatter}, defaultCanvasOptions())
	if err != nil {
		t.Fatalf("newCanvas: %v", err)
	}
	want := []PlotType{TypeHistogram, TypeScatter, TypeSeries}
	if got := memberTypes(c); !typesEqual(got, want) {
		t.Fatalf("member types = %v, want %v", got, want)
	}

	if err := c.addPlot(series2); err != nil {
		t.Fatalf("addPlot: %v", err)
	}
	want = []PlotType{TypeHistogram, TypeScatter, TypeSeries, TypeSeries}
	if got := memberTypes(c); !typesEqual(got, want) {
		t.Fatalf("member types after insert = %v, want %v", got, want)
	}
}

func typesEqual(a, b []PlotType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCanvas_RemovePlot(t *testing.T) {
	series := NewSeries(1, []float64{1, 2}, nil)
	scatter := NewScatter([]Point2{{X: 0, Y: 1}}, nil)
	freePlots(t, series, scatter)

	c, err := newCanvas([]PlotID{series, scatter}, defaultCanvasOptions())
	if err != nil {
		t.Fatalf("newCanvas: %v", err)
	}

	c.removePlot(scatter)
	if got := memberTypes(c); !typesEqual(got, []PlotType{TypeSeries}) {
		t.Fatalf("member types after removal = %v", got)
	}

	// Removing a non-member is a silent no-op.
	c.removePlot(PlotID(1 << 60))
	if got := memberTypes(c); !typesEqual(got, []PlotType{TypeSeries}) {
		t.Fatalf("member types after no-op removal = %v", got)
	}

	c.removePlot(series)
	if !c.IsEmpty() {
		t.Error("canvas not empty after removing every plot")
	}
}

func TestCanvas_AxisCompatibility(t *testing.T) {
	series := NewSeries(1, []float64{1, 2}, nil)
	pie := NewPie([]float64{1, 2}, nil)
	polar := RegisterPlot(polarPlot{})
	freePlots(t, series, pie, polar)

	tests := []struct {
		name    string
		plots   []PlotID
		wantErr error
	}{
		{name: "series alone", plots: []PlotID{series}},
		{name: "pie alone", plots: []PlotID{pie}},
		{name: "pie then series", plots: []PlotID{pie, series}, wantErr: ErrSpecialAxisShared},
		{name: "series then pie", plots: []PlotID{series, pie}, wantErr: ErrSpecialAxisShared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newCanvas(tt.plots, defaultCanvasOptions())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("newCanvas = %v, want %v", err, tt.wantErr)
			}
			if err == nil {
				for _, id := range c.plots {
					plotReg.disassociate(id)
				}
			}
		})
	}

	var ate *AxisTypeError
	if _, err := newCanvas([]PlotID{polar}, defaultCanvasOptions()); !errors.As(err, &ate) {
		t.Errorf("newCanvas(polar) = %v, want AxisTypeError", err)
	}

	var upe *UnknownPlotError
	if _, err := newCanvas([]PlotID{1 << 60}, defaultCanvasOptions()); !errors.As(err, &upe) {
		t.Errorf("newCanvas(unknown) = %v, want UnknownPlotError", err)
	}
}

func TestCanvas_StaticSnapshotsMembers(t *testing.T) {
	data := []float64{1, 3, 2, 5, 4}
	series := NewSeries(1, data, nil)
	freePlots(t, series)

	o := defaultCanvasOptions()
	o.framerate = Static
	c, err := newCanvas([]PlotID{series}, o)
	if err != nil {
		t.Fatalf("newCanvas: %v", err)
	}

	// A static canvas isolates its members' data on join: caller
	// mutation must not show in the shared limits.
	data[3] = 100
	lim, ok := c.reduceLimits()
	if !ok || lim.MaxY != 5 {
		t.Fatalf("static reduceLimits = (%+v, %v), want MaxY 5", lim, ok)
	}

	// Leaving static mode reverts to the caller's buffer.
	c.setFramerate(30)
	if lim, _ := c.reduceLimits(); lim.MaxY != 100 {
		t.Fatalf("animated reduceLimits MaxY = %v, want 100", lim.MaxY)
	}

	// Re-entering static mode takes a fresh snapshot.
	c.setFramerate(Static)
	data[3] = 7
	if lim, _ := c.reduceLimits(); lim.MaxY != 100 {
		t.Fatalf("re-frozen reduceLimits MaxY = %v, want 100", lim.MaxY)
	}

	// A plot leaving a static canvas gets its snapshot released too.
	c.removePlot(series)
	e, _ := plotReg.get(series)
	if lim := e.plot.AxisLimits(); lim.MaxY != 7 {
		t.Fatalf("removed plot still isolated: MaxY = %v, want 7", lim.MaxY)
	}
}

func TestCanvas_ReduceLimits(t *testing.T) {
	series := NewSeries(1, []float64{1, 3, 2, 5, 4}, nil)
	hist := NewHistogram(1, []float64{2, 5, 3}, nil)
	freePlots(t, series, hist)

	c, err := newCanvas([]PlotID{series, hist}, defaultCanvasOptions())
	if err != nil {
		t.Fatalf("newCanvas: %v", err)
	}

	lim, ok := c.reduceLimits()
	if !ok {
		t.Fatal("reduceLimits found no data")
	}
	want := Limits{MinX: 0, MaxX: 4, MinY: 0, MaxY: 5}
	if lim != want {
		t.Errorf("reduceLimits = %+v, want %+v", lim, want)
	}

	empty, _ := newCanvas(nil, defaultCanvasOptions())
	if _, ok := empty.reduceLimits(); ok {
		t.Error("reduceLimits on an empty canvas reported data")
	}
}

func TestCanvas_PaintCartesian(t *testing.T) {
	series := NewSeries(1, []float64{1, 3, 2, 5, 4}, nil)
	freePlots(t, series)

	c, err := newCanvas([]PlotID{series}, defaultCanvasOptions())
	if err != nil {
		t.Fatalf("newCanvas: %v", err)
	}
	h := window.NewHeadless(window.Options{Width: 400, Height: 300})
	c.win = h

	c.paint()

	frame := h.Frame()
	if frame == nil {
		t.Fatal("no frame presented")
	}
	if b := frame.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("frame bounds = %v, want 400x300", b)
	}
	// Background fills the border region.
	if px := frame.RGBAAt(1, 1); px.R != 255 || px.G != 255 || px.B != 255 {
		t.Errorf("border pixel = %v, want white background", px)
	}

	if c.cart.limits != (Limits{MinX: 0, MaxX: 4, MinY: 1, MaxY: 5}) {
		t.Errorf("shared limits = %+v", c.cart.limits)
	}

	// The draw space depends only on geometry: unlabeled axes clear
	// axisPad+tickLength+tickFontSize+axisPad on their sides.
	margin := axisPad + tickLength + tickFontSize + axisPad
	space := c.cart.space
	if space.Origin.X != margin || space.Origin.Y != 300-margin {
		t.Errorf("space origin = %v", space.Origin)
	}
	if space.XEnd.X != 400-borderWidth || space.XEnd.Y != 300-margin {
		t.Errorf("space x end = %v", space.XEnd)
	}
	if space.YEnd.X != margin || space.YEnd.Y != borderWidth {
		t.Errorf("space y end = %v", space.YEnd)
	}
	if space.Far.X != 400-borderWidth || space.Far.Y != borderWidth {
		t.Errorf("space far corner = %v", space.Far)
	}

	// Same size, same backbuffer: no reallocation between frames.
	buf := c.back
	c.paint()
	if c.back != buf {
		t.Error("backbuffer reallocated without a size change")
	}

	h.SetSize(512, 256)
	c.paint()
	if c.back == buf {
		t.Error("backbuffer not reallocated after resize")
	}
	if b := h.Frame().Bounds(); b.Dx() != 512 || b.Dy() != 256 {
		t.Errorf("frame bounds after resize = %v", b)
	}
}

func TestCanvas_PaintSpecial(t *testing.T) {
	pie := NewPie([]float64{3, 1, 2}, nil)
	freePlots(t, pie)

	c, err := newCanvas([]PlotID{pie}, defaultCanvasOptions())
	if err != nil {
		t.Fatalf("newCanvas: %v", err)
	}
	h := window.NewHeadless(window.Options{Width: 200, Height: 200})
	c.win = h

	c.paint()

	frame := h.Frame()
	if frame == nil {
		t.Fatal("no frame presented")
	}
	// The pie owns the whole window; its wedges cover the center.
	if px := frame.RGBAAt(100, 100); px.R == 255 && px.G == 255 && px.B == 255 {
		t.Error("center pixel still background, pie did not draw")
	}
}
