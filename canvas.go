package simpleplot

import (
	"image"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/jack-dinsmore/SimplePlots/window"
)

// Static is the sentinel frame rate meaning the plot data will not
// change. A static canvas paints once, snapshots its members' data, and
// then idles until something invalidates it.
const Static = 0

const (
	defaultFramerate = 30

	// borderWidth is the margin between the plotting rectangle and the
	// window edges that carry no axis.
	borderWidth = 10

	// idlePollInterval is how often a static canvas wakes to pump window
	// events while idling between repaints.
	idlePollInterval = 100 * time.Millisecond
)

var nextCanvasID atomic.Uint64

// cart2D is the per-canvas state of the 2D Cartesian axis type: exactly
// two axes, one shared limits rectangle, and one four-corner draw space.
// Other axis types would carry their own fixed struct instead of
// reinterpreting this one.
type cart2D struct {
	x, y   *Axis
	limits Limits
	space  DrawSpace
}

// Canvas owns one window, a backbuffer, and an ordered list of plots
// sharing a coordinate system. A dedicated render goroutine repaints it
// until the canvas is deleted; host goroutines mutate it through the
// package-level functions, which route through the canvas registry's
// locks.
//
// mu serializes membership changes AND painting, so a paint pass always
// observes a consistent plot list. bufMu additionally guards backbuffer
// replacement so a resize cannot race a frame in progress.
type Canvas struct {
	id    CanvasID
	style Style

	mu         sync.Mutex
	axisType   AxisType
	plots      []PlotID
	cart       *cart2D
	framerate  int
	killed     bool
	xLabel     string
	yLabel     string
	logX, logY bool

	bufMu sync.Mutex
	back  *gg.Context

	win window.Window

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	redraw   chan struct{}
}

// newCanvas validates plot compatibility and builds the canvas. The
// window is attached separately so construction stays testable without a
// driver.
func newCanvas(plotIDs []PlotID, o canvasOptions) (*Canvas, error) {
	c := &Canvas{
		id:        CanvasID(nextCanvasID.Add(1)),
		style:     o.style,
		framerate: o.framerate,
		xLabel:    o.xLabel,
		yLabel:    o.yLabel,
		logX:      o.logX,
		logY:      o.logY,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
		redraw:    make(chan struct{}, 1),
	}

	for _, id := range plotIDs {
		if err := c.addPlotLocked(id); err != nil {
			for _, added := range c.plots {
				plotReg.release(added)
			}
			return nil, err
		}
	}
	for _, id := range c.plots {
		plotReg.associate(id, c.id)
	}
	return c, nil
}

// ID returns the canvas identifier.
func (c *Canvas) ID() CanvasID { return c.id }

// setAxisType configures the per-axis-type state. Only the 2D Cartesian
// system has a real configuration; the special type carries none, and
// everything else is an explicit unimplemented failure.
func (c *Canvas) setAxisType(at AxisType) error {
	switch at {
	case AxisCart2D:
		c.cart = &cart2D{
			x: NewAxis(c.xLabel, c.logX, c.style),
			y: NewAxis(c.yLabel, c.logY, c.style),
		}
	case AxisSpecial:
		c.cart = nil
	default:
		return &AxisTypeError{Type: at}
	}
	c.axisType = at
	return nil
}

// addPlot inserts a plot under the canvas lock.
func (c *Canvas) addPlot(id PlotID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.killed {
		return ErrCanvasClosed
	}
	return c.addPlotLocked(id)
}

// addPlotLocked maintains the membership list ordered by descending
// plot-type precedence, so higher-precedence (background) plots draw
// first. Insertion position comes from a binary search over the sorted
// list; finding the list unsorted beforehand is a bookkeeping bug
// surfaced as ErrPlotOrder.
func (c *Canvas) addPlotLocked(id PlotID) error {
	e, ok := plotReg.get(id)
	if !ok {
		return &UnknownPlotError{ID: id}
	}
	at := e.plot.Axes()
	t := e.plot.Type()

	if len(c.plots) == 0 {
		if err := c.setAxisType(at); err != nil {
			return err
		}
		c.plots = append(c.plots, id)
		if c.framerate == Static {
			plotReg.isolate(id)
		}
		return nil
	}

	if at == AxisSpecial || c.axisType == AxisSpecial {
		return ErrSpecialAxisShared
	}
	if at != c.axisType {
		return &AxisMismatchError{Canvas: c.axisType, Plot: at}
	}

	for i := 1; i < len(c.plots); i++ {
		prev, _ := plotReg.typeOf(c.plots[i-1])
		cur, _ := plotReg.typeOf(c.plots[i])
		if prev < cur {
			return ErrPlotOrder
		}
	}

	idx := sort.Search(len(c.plots), func(i int) bool {
		ti, _ := plotReg.typeOf(c.plots[i])
		return ti < t
	})
	c.plots = append(c.plots, 0)
	copy(c.plots[idx+1:], c.plots[idx:])
	c.plots[idx] = id

	if c.framerate == Static {
		plotReg.isolate(id)
	}
	return nil
}

// removePlot drops a plot from the membership list. Removing a plot that
// is not a member is a no-op.
func (c *Canvas) removePlot(id PlotID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, pid := range c.plots {
		if pid != id {
			continue
		}
		c.plots = append(c.plots[:i], c.plots[i+1:]...)
		if c.framerate == Static {
			// The snapshot belongs to this canvas's static mode; a plot
			// leaving it reverts to the caller's buffer.
			plotReg.release(id)
		}
		return
	}
}

// IsEmpty reports whether no plots remain.
func (c *Canvas) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.plots) == 0
}

// Framerate returns the current frame rate, Static for static mode.
func (c *Canvas) Framerate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.framerate
}

// setFramerate switches the repaint rate. Entering static mode snapshots
// every member plot's data so later caller mutation is ignored; leaving
// it releases the snapshots and reverts to the callers' buffers.
func (c *Canvas) setFramerate(rate int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rate == Static && c.framerate != Static {
		for _, id := range c.plots {
			plotReg.isolate(id)
		}
	}
	if rate != Static && c.framerate == Static {
		for _, id := range c.plots {
			plotReg.release(id)
		}
	}
	c.framerate = rate
	c.invalidate()
}

// invalidate nudges an idle render loop to repaint.
func (c *Canvas) invalidate() {
	select {
	case c.redraw <- struct{}{}:
	default:
	}
}

// terminate starts cooperative teardown. Safe to call multiple times.
func (c *Canvas) terminate() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// run is the render loop. It owns the canvas from here on: when the stop
// signal arrives it releases every resource and closes done, which is the
// only signal that the canvas is safe to forget.
func (c *Canvas) run() {
	defer close(c.done)
	Logger().Info("canvas render loop started", "canvas", c.id, "framerate", c.Framerate())
	for {
		select {
		case <-c.stop:
			c.teardown()
			return
		default:
		}

		c.paint()

		if ev, ok := c.win.PollEvent(); ok {
			c.handleEvent(ev)
		}

		rate := c.Framerate()
		if rate == Static {
			// Painted once; idle, but keep pumping window events.
			select {
			case <-c.stop:
				c.teardown()
				return
			case <-c.redraw:
			case <-time.After(idlePollInterval):
			}
			continue
		}

		select {
		case <-c.stop:
			c.teardown()
			return
		case <-time.After(time.Second / time.Duration(rate)):
		}
	}
}

func (c *Canvas) handleEvent(ev window.Event) {
	switch ev {
	case window.EventClose:
		// Invalidate the registry entry before teardown so no caller can
		// reach a canvas that is going away.
		canvases.drop(c.id)
		c.terminate()
	case window.EventResize:
		// The next paint reallocates the backbuffer from the new size.
		c.invalidate()
	}
}

// paint renders one frame into the backbuffer and presents it. A failed
// frame is logged and superseded by the next one; paint never aborts the
// loop.
func (c *Canvas) paint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.killed {
		return
	}
	c.bufMu.Lock()
	defer c.bufMu.Unlock()

	w, h := c.win.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if c.back == nil || c.back.Width() != w || c.back.Height() != h {
		if c.back != nil {
			if err := c.back.Close(); err != nil {
				Logger().Warn("backbuffer release failed", "canvas", c.id, "error", err)
			}
		}
		c.back = gg.NewContext(w, h)
		Logger().Debug("backbuffer allocated", "canvas", c.id, "width", w, "height", h)
	}
	dc := c.back
	dc.ClearWithColor(c.style.Background.Resolve())

	if len(c.plots) > 0 {
		lim, ok := c.reduceLimits()
		switch {
		case c.axisType == AxisSpecial:
			space := DrawSpace{
				Origin: image.Pt(0, h),
				XEnd:   image.Pt(w, h),
				YEnd:   image.Pt(0, 0),
				Far:    image.Pt(w, 0),
			}
			for _, id := range c.plots {
				plotReg.draw(id, dc, lim, space)
			}
		case c.cart != nil && ok:
			c.cart.x.SetEnds(lim.MinX, lim.MaxX)
			c.cart.y.SetEnds(lim.MinY, lim.MaxY)
			space := c.drawSpace(w, h)
			c.cart.limits = lim
			c.cart.space = space

			c.cart.x.DrawGrid(dc, space.Origin, space.XEnd, space.YEnd)
			c.cart.y.DrawGrid(dc, space.Origin, space.YEnd, space.XEnd)
			for _, id := range c.plots {
				plotReg.draw(id, dc, lim, space)
			}
			c.cart.x.DrawAxis(dc, space.Origin, space.XEnd, space.YEnd)
			c.cart.y.DrawAxis(dc, space.Origin, space.YEnd, space.XEnd)
		}
	}

	c.win.Present(dc.Image())
}

// reduceLimits folds every member plot's data range into one shared
// min/max per axis.
func (c *Canvas) reduceLimits() (Limits, bool) {
	var lim Limits
	first := true
	for _, id := range c.plots {
		l, ok := plotReg.limitsOf(id)
		if !ok {
			continue
		}
		if first {
			lim = l
			first = false
		} else {
			lim = lim.union(l)
		}
	}
	return lim, !first
}

// drawSpace derives the plotting rectangle from the window size and the
// clearance each axis needs for its decorations. It depends only on
// geometry, never on the data.
func (c *Canvas) drawSpace(w, h int) DrawSpace {
	clearH := c.cart.x.Clearance()
	clearV := c.cart.y.Clearance()
	return DrawSpace{
		Origin: image.Pt(clearV, h-clearH),
		XEnd:   image.Pt(w-borderWidth, h-clearH),
		YEnd:   image.Pt(clearV, borderWidth),
		Far:    image.Pt(w-borderWidth, borderWidth),
	}
}

// teardown releases the backbuffer, the static snapshots, and the
// window. It runs exactly once, on the render goroutine, as the last
// thing before done closes.
func (c *Canvas) teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.killed {
		return
	}
	c.killed = true

	var errs *multierror.Error

	c.bufMu.Lock()
	if c.back != nil {
		if err := c.back.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
		c.back = nil
	}
	c.bufMu.Unlock()

	if c.framerate == Static {
		for _, id := range c.plots {
			plotReg.release(id)
		}
	}
	for _, id := range c.plots {
		plotReg.disassociate(id)
	}

	if err := c.win.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		Logger().Warn("canvas teardown finished with errors", "canvas", c.id, "error", err)
	} else {
		Logger().Info("canvas torn down", "canvas", c.id)
	}
}

// rename, setPos, and setSize forward to the window. They live on the
// canvas because the window is shared state also touched by the render
// goroutine.
func (c *Canvas) rename(title string) {
	c.win.SetTitle(title)
}

func (c *Canvas) setPos(x, y int) {
	c.win.SetPos(x, y)
}

func (c *Canvas) setSize(w, h int) {
	c.win.SetSize(w, h)
	c.invalidate()
}
