package simpleplot

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// PlotID identifies a registered plot. IDs ascend from 1; zero is never a
// valid id.
type PlotID uint64

// CanvasID identifies a live canvas. IDs ascend from 1; zero means "no
// canvas" in plot back-references.
type CanvasID uint64

// AxisType classifies the coordinate system a plot requires. All plots in
// a canvas must share one axis type.
type AxisType int

const (
	// AxisCart2D is the standard two-dimensional Cartesian system and
	// the only one with a full implementation.
	AxisCart2D AxisType = iota

	// AxisSpecial marks plots that manage their own coordinate space
	// (pie charts). A special plot cannot share a canvas with any other
	// plot.
	AxisSpecial

	// AxisPolar2D is reserved; canvas construction fails fast on it.
	AxisPolar2D
)

func (t AxisType) String() string {
	switch t {
	case AxisCart2D:
		return "cart2d"
	case AxisSpecial:
		return "special"
	case AxisPolar2D:
		return "polar2d"
	default:
		return "invalid"
	}
}

// PlotType orders plots for drawing. A canvas keeps its membership list
// sorted by descending PlotType, so higher values paint first and end up
// behind lower ones: background fills before line series.
type PlotType int

const (
	TypeSeries    PlotType = 10
	TypeScatter   PlotType = 20
	TypeHistogram PlotType = 30
	TypePie       PlotType = 40
)

// Limits is the shared data range of a canvas, one min/max pair per axis.
type Limits struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// union widens l to cover o.
func (l Limits) union(o Limits) Limits {
	if o.MinX < l.MinX {
		l.MinX = o.MinX
	}
	if o.MaxX > l.MaxX {
		l.MaxX = o.MaxX
	}
	if o.MinY < l.MinY {
		l.MinY = o.MinY
	}
	if o.MaxY > l.MaxY {
		l.MaxY = o.MaxY
	}
	return l
}

// DrawSpace is the plotting rectangle in window coordinates. Origin is
// the bottom-left corner where the axes meet, XEnd the bottom-right, YEnd
// the top-left, and Far the top-right.
type DrawSpace struct {
	Origin image.Point
	XEnd   image.Point
	YEnd   image.Point
	Far    image.Point
}

// X maps a data x value into the draw space given the shared limits.
func (s DrawSpace) X(lim Limits, x float64) float64 {
	if lim.MaxX == lim.MinX {
		return float64(s.Origin.X)
	}
	f := (x - lim.MinX) / (lim.MaxX - lim.MinX)
	return float64(s.Origin.X) + f*float64(s.XEnd.X-s.Origin.X)
}

// Y maps a data y value into the draw space given the shared limits.
func (s DrawSpace) Y(lim Limits, y float64) float64 {
	if lim.MaxY == lim.MinY {
		return float64(s.Origin.Y)
	}
	f := (y - lim.MinY) / (lim.MaxY - lim.MinY)
	return float64(s.Origin.Y) + f*float64(s.YEnd.Y-s.Origin.Y)
}

// Plot is one renderable data series or shape. Implementations are
// registered with RegisterPlot and afterwards referenced by id only.
//
// AxisLimits and Draw are called by the owning canvas's render goroutine
// with the canvas lock held. IsolateData and ReleaseData are called only
// when the owning canvas toggles static mode: IsolateData copies the
// caller-shared buffer into private ownership, ReleaseData drops the copy
// and reverts to sharing.
type Plot interface {
	Type() PlotType
	Axes() AxisType
	AxisLimits() Limits
	Draw(dc *gg.Context, lim Limits, space DrawSpace)
	IsolateData()
	ReleaseData()
}

// plotEntry is one row of the global plot table. canvas is the owning
// canvas back-reference, zero when unowned.
type plotEntry struct {
	plot   Plot
	canvas CanvasID
}

// plotTable is the process-wide plot registry.
type plotTable struct {
	mu      sync.RWMutex
	entries map[PlotID]*plotEntry
}

var (
	plotReg    = &plotTable{entries: make(map[PlotID]*plotEntry)}
	nextPlotID atomic.Uint64
)

// RegisterPlot adds a plot to the global registry and returns its id.
// Plot factories (NewSeries, NewScatter, ...) call this; host code only
// needs it when providing a custom Plot implementation.
func RegisterPlot(p Plot) PlotID {
	id := PlotID(nextPlotID.Add(1))
	plotReg.mu.Lock()
	plotReg.entries[id] = &plotEntry{plot: p}
	plotReg.mu.Unlock()
	return id
}

// DeletePlot removes a plot from the registry. The plot must not be a
// member of any canvas.
func DeletePlot(id PlotID) error {
	plotReg.mu.Lock()
	defer plotReg.mu.Unlock()
	e, ok := plotReg.entries[id]
	if !ok {
		return &UnknownPlotError{ID: id}
	}
	if e.canvas != 0 {
		return ErrCanvasClosed
	}
	delete(plotReg.entries, id)
	return nil
}

// PlotCanvas returns the canvas currently owning the plot, zero when the
// plot is unowned.
func PlotCanvas(id PlotID) (CanvasID, error) {
	plotReg.mu.RLock()
	defer plotReg.mu.RUnlock()
	e, ok := plotReg.entries[id]
	if !ok {
		return 0, &UnknownPlotError{ID: id}
	}
	return e.canvas, nil
}

func (t *plotTable) get(id PlotID) (*plotEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[id]
	return e, ok
}

func (t *plotTable) typeOf(id PlotID) (PlotType, bool) {
	if e, ok := t.get(id); ok {
		return e.plot.Type(), true
	}
	return 0, false
}

func (t *plotTable) axesOf(id PlotID) (AxisType, bool) {
	if e, ok := t.get(id); ok {
		return e.plot.Axes(), true
	}
	return 0, false
}

func (t *plotTable) limitsOf(id PlotID) (Limits, bool) {
	if e, ok := t.get(id); ok {
		return e.plot.AxisLimits(), true
	}
	return Limits{}, false
}

func (t *plotTable) draw(id PlotID, dc *gg.Context, lim Limits, space DrawSpace) {
	if e, ok := t.get(id); ok {
		e.plot.Draw(dc, lim, space)
	}
}

func (t *plotTable) isolate(id PlotID) {
	if e, ok := t.get(id); ok {
		e.plot.IsolateData()
	}
}

func (t *plotTable) release(id PlotID) {
	if e, ok := t.get(id); ok {
		e.plot.ReleaseData()
	}
}

// associate records the owning-canvas back-reference.
func (t *plotTable) associate(id PlotID, canvas CanvasID) {
	t.mu.Lock()
	if e, ok := t.entries[id]; ok {
		e.canvas = canvas
	}
	t.mu.Unlock()
}

// disassociate clears the back-reference.
func (t *plotTable) disassociate(id PlotID) {
	t.mu.Lock()
	if e, ok := t.entries[id]; ok {
		e.canvas = 0
	}
	t.mu.Unlock()
}

// canvasOf returns the back-reference without an existence error.
func (t *plotTable) canvasOf(id PlotID) CanvasID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e, ok := t.entries[id]; ok {
		return e.canvas
	}
	return 0
}
