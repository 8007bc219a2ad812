package simpleplot

import (
	"image"
	"image/draw"
	"sort"
	"sync"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/jack-dinsmore/SimplePlots/window"
)

// canvasEntry pairs a live canvas with its fine-grained lock.
type canvasEntry struct {
	mu     sync.Mutex
	canvas *Canvas
}

// canvasRegistry is the process-wide canvas table: one service holding
// the id→canvas association and both lock levels, instead of parallel
// maps kept in sync by convention. The coarse lock guards the table
// itself; each entry's lock guards mutations of that canvas reached
// through the table. Cross-canvas operations hold the coarse lock for
// their whole duration and acquire the per-canvas locks involved in
// ascending id order, so concurrent moves between the same two canvases
// cannot deadlock.
type canvasRegistry struct {
	mu      sync.Mutex
	entries map[CanvasID]*canvasEntry
}

var canvases = &canvasRegistry{entries: make(map[CanvasID]*canvasEntry)}

// add registers a canvas. Called once, before the render goroutine
// starts.
func (r *canvasRegistry) add(c *Canvas) {
	r.mu.Lock()
	r.entries[c.id] = &canvasEntry{canvas: c}
	r.mu.Unlock()
}

// drop invalidates a canvas's entry. After drop returns no caller can
// reach the canvas through the registry; the render goroutine is then
// free to release it.
func (r *canvasRegistry) drop(id CanvasID) *Canvas {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	delete(r.entries, id)
	return e.canvas
}

// ids returns a snapshot of all registered canvas ids.
func (r *canvasRegistry) ids() []CanvasID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CanvasID, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	return out
}

// canvasGuard is the combined coarse+fine lock over a set of canvases.
type canvasGuard struct {
	registry *canvasRegistry
	locked   []*canvasEntry
}

// lockCanvases acquires the coarse registry lock plus the per-canvas
// locks for the given ids, deduplicated and in ascending order. The
// guard must be released exactly once; locks release in reverse
// acquisition order.
func (r *canvasRegistry) lockCanvases(ids ...CanvasID) (*canvasGuard, error) {
	sorted := make([]CanvasID, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		dup := false
		for _, s := range sorted {
			if s == id {
				dup = true
				break
			}
		}
		if !dup {
			sorted = append(sorted, id)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	r.mu.Lock()
	g := &canvasGuard{registry: r}
	for _, id := range sorted {
		e, ok := r.entries[id]
		if !ok {
			g.releaseFine()
			r.mu.Unlock()
			return nil, &UnknownCanvasError{ID: id}
		}
		e.mu.Lock()
		g.locked = append(g.locked, e)
	}
	return g, nil
}

func (g *canvasGuard) releaseFine() {
	for i := len(g.locked) - 1; i >= 0; i-- {
		g.locked[i].mu.Unlock()
	}
	g.locked = nil
}

// release drops all locks held by the guard.
func (g *canvasGuard) release() {
	g.releaseFine()
	g.registry.mu.Unlock()
}

// get returns the locked entry for id. The guard must hold it.
func (g *canvasGuard) get(id CanvasID) *Canvas {
	for _, e := range g.locked {
		if e.canvas.id == id {
			return e.canvas
		}
	}
	return nil
}

// MakeCanvas creates a canvas showing the given plots and returns its
// id. All plots must share one axis type; a special-axis plot must be
// alone. The canvas opens its window before this returns, then repaints
// on its own goroutine until DeleteCanvas.
//
// Window-creation failure fails the whole call; no half-built canvas is
// left behind.
func MakeCanvas(plotIDs []PlotID, opts ...CanvasOption) (CanvasID, error) {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, err := newCanvas(plotIDs, o)
	if err != nil {
		return 0, err
	}

	win, err := openWindow(o)
	if err != nil {
		for _, id := range c.plots {
			plotReg.disassociate(id)
			plotReg.release(id)
		}
		return 0, err
	}
	c.win = win

	canvases.add(c)
	go c.run()
	return c.id, nil
}

// openWindow creates the canvas window through the driver registry.
func openWindow(o canvasOptions) (window.Window, error) {
	wo := window.Options{
		Title:  o.title,
		Width:  o.width,
		Height: o.height,
		X:      o.x,
		Y:      o.y,
	}
	if o.driver != "" {
		return window.NewByName(o.driver, wo)
	}
	return window.New(wo)
}

// DeleteCanvas tears a canvas down: the registry entry is invalidated
// first, then the render goroutine is signalled and joined, so when
// DeleteCanvas returns the window and backbuffer are released and the
// member plots are unowned.
func DeleteCanvas(id CanvasID) error {
	c := canvases.drop(id)
	if c == nil {
		return &UnknownCanvasError{ID: id}
	}
	c.terminate()
	<-c.done
	return nil
}

// Shutdown deletes every live canvas and aggregates the failures. Meant
// for host teardown paths.
func Shutdown() error {
	var errs *multierror.Error
	for _, id := range canvases.ids() {
		if err := DeleteCanvas(id); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// AddPlotToCanvas moves a plot into a canvas, removing it from its
// current canvas first. Both canvases' membership lists and the plot's
// back-reference change under one combined registry lock, so concurrent
// moves of the same plot serialize and the plot always ends up owned by
// exactly one canvas.
func AddPlotToCanvas(canvasID CanvasID, plotID PlotID) error {
	if _, ok := plotReg.get(plotID); !ok {
		return &UnknownPlotError{ID: plotID}
	}

	for {
		src := plotReg.canvasOf(plotID)
		if src == canvasID {
			return nil
		}

		ids := []CanvasID{canvasID}
		if src != 0 {
			ids = append(ids, src)
		}
		g, err := canvases.lockCanvases(ids...)
		if err != nil {
			// The source canvas may have been deleted between the owner
			// read and the lock; in that case the plot is unowned now.
			if src != 0 && plotReg.canvasOf(plotID) != src {
				continue
			}
			return err
		}

		// The owner can change between the unlocked read and the lock;
		// retry with the right lock set if it did.
		if now := plotReg.canvasOf(plotID); now != src {
			g.release()
			continue
		}

		if src != 0 {
			g.get(src).removePlot(plotID)
			plotReg.disassociate(plotID)
		}
		err = g.get(canvasID).addPlot(plotID)
		if err == nil {
			plotReg.associate(plotID, canvasID)
		}
		g.release()
		return err
	}
}

// RemovePlotFromCanvas removes a plot from a canvas. Removing a plot
// that is not a member is a no-op.
func RemovePlotFromCanvas(canvasID CanvasID, plotID PlotID) error {
	g, err := canvases.lockCanvases(canvasID)
	if err != nil {
		return err
	}
	defer g.release()

	g.get(canvasID).removePlot(plotID)
	if plotReg.canvasOf(plotID) == canvasID {
		plotReg.disassociate(plotID)
	}
	return nil
}

// SetCanvasFramerate changes a canvas's repaint rate. Pass Static to
// freeze the data: the canvas snapshots every member plot and ignores
// later caller-side mutation until the rate leaves Static again.
func SetCanvasFramerate(id CanvasID, rate int) error {
	g, err := canvases.lockCanvases(id)
	if err != nil {
		return err
	}
	defer g.release()
	g.get(id).setFramerate(rate)
	return nil
}

// CanvasIsEmpty reports whether the canvas has no plots.
func CanvasIsEmpty(id CanvasID) (bool, error) {
	g, err := canvases.lockCanvases(id)
	if err != nil {
		return false, err
	}
	defer g.release()
	return g.get(id).IsEmpty(), nil
}

// CanvasImage returns a copy of the canvas's most recent frame, or nil
// before the first paint. Useful for snapshots and tests; the render
// loop is not disturbed.
func CanvasImage(id CanvasID) (image.Image, error) {
	g, err := canvases.lockCanvases(id)
	if err != nil {
		return nil, err
	}
	defer g.release()

	c := g.get(id)
	c.bufMu.Lock()
	defer c.bufMu.Unlock()
	if c.back == nil {
		return nil, nil
	}
	src := c.back.Image()
	b := src.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, src, b.Min, draw.Src)
	return out, nil
}

// RenameCanvas retitles the canvas window.
func RenameCanvas(id CanvasID, title string) error {
	g, err := canvases.lockCanvases(id)
	if err != nil {
		return err
	}
	defer g.release()
	g.get(id).rename(title)
	return nil
}

// SetCanvasPos moves the canvas window.
func SetCanvasPos(id CanvasID, x, y int) error {
	g, err := canvases.lockCanvases(id)
	if err != nil {
		return err
	}
	defer g.release()
	g.get(id).setPos(x, y)
	return nil
}

// SetCanvasSize resizes the canvas window's client area. The backbuffer
// follows on the next frame.
func SetCanvasSize(id CanvasID, width, height int) error {
	g, err := canvases.lockCanvases(id)
	if err != nil {
		return err
	}
	defer g.release()
	g.get(id).setSize(width, height)
	return nil
}
