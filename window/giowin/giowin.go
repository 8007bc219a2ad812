// Package giowin provides a Gio-backed window driver. Importing it
// registers the driver under the name "gio" at priority 100, above the
// headless driver, so canvases open real desktop windows:
//
//	import _ "github.com/jack-dinsmore/SimplePlots/window/giowin"
//
// Gio requires control of the process main thread. Hosts must call
// [Main] from func main after setting up their canvases; it does not
// return.
package giowin

import (
	"image"
	"image/draw"
	"sync"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/jack-dinsmore/SimplePlots/window"
)

func init() {
	window.Register("gio", 100, func(opts window.Options) (window.Window, error) {
		return newWindow(opts), nil
	}, nil)
}

// Main hands the main thread to Gio. It must be called from func main
// and never returns; the process exits when the last window closes.
func Main() {
	app.Main()
}

// gioWindow adapts one *app.Window to the window.Window contract. The
// render goroutine presents frames from the canvas side while a driver
// goroutine services the Gio event loop; the two meet under mu.
type gioWindow struct {
	win *app.Window

	mu     sync.Mutex
	frame  image.Image
	size   image.Point
	events []window.Event
	closed bool
}

var _ window.Window = (*gioWindow)(nil)

func newWindow(opts window.Options) *gioWindow {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	g := &gioWindow{
		win: app.NewWindow(
			app.Title(opts.Title),
			app.Size(unit.Px(float32(w)), unit.Px(float32(h))),
		),
		size: image.Pt(w, h),
	}
	go g.loop()
	return g
}

// loop services Gio events until the window is destroyed.
func (g *gioWindow) loop() {
	for e := range g.win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			ops := new(op.Ops)
			gtx := layout.NewContext(ops, e)
			max := gtx.Constraints.Max

			g.mu.Lock()
			if max != g.size {
				g.size = max
				g.events = append(g.events, window.EventResize)
			}
			img := g.frame
			g.mu.Unlock()

			if img != nil {
				clip.Rect{Max: max}.Add(gtx.Ops)
				paint.NewImageOp(img).Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
			}
			e.Frame(ops)

		case key.Event:
			switch e.Name {
			case "Q", key.NameEscape:
				g.push(window.EventClose)
			}

		case system.DestroyEvent:
			g.push(window.EventClose)
			window.Logger().Debug("gio window destroyed")
			return
		}
	}
}

func (g *gioWindow) push(ev window.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.events = append(g.events, ev)
}

// Present stores a copy of the frame and asks Gio for a redraw. The
// copy decouples the Gio event loop from the canvas backbuffer, which
// the render goroutine reuses for the next frame.
func (g *gioWindow) Present(img image.Image) {
	b := img.Bounds()
	frame := image.NewRGBA(b)
	draw.Draw(frame, b, img, b.Min, draw.Src)

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.frame = frame
	g.mu.Unlock()
	g.win.Invalidate()
}

// PollEvent pops one pending event.
func (g *gioWindow) PollEvent() (window.Event, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.events) == 0 {
		return window.EventNone, false
	}
	ev := g.events[0]
	g.events = g.events[1:]
	return ev, true
}

// SetTitle is unsupported after creation in this Gio version.
func (g *gioWindow) SetTitle(string) {
	window.Logger().Debug("gio driver ignores SetTitle after creation")
}

// SetPos is unsupported; Gio does not expose window placement.
func (g *gioWindow) SetPos(int, int) {
	window.Logger().Debug("gio driver ignores SetPos")
}

// SetSize is unsupported after creation; the user resizes the window.
func (g *gioWindow) SetSize(int, int) {
	window.Logger().Debug("gio driver ignores SetSize after creation")
}

// Size returns the client-area size from the latest frame.
func (g *gioWindow) Size() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.size.X, g.size.Y
}

// Pos always reports the origin; Gio does not expose window placement.
func (g *gioWindow) Pos() (int, int) {
	return 0, 0
}

// Close destroys the window. Idempotent.
func (g *gioWindow) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	g.mu.Unlock()
	g.win.Close()
	return nil
}
