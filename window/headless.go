package window

import (
	"image"
	"image/draw"
	"sync"
)

// Headless is an in-memory window: frames land in a pixel buffer instead
// of on screen. It backs the test suite and lets plot code run on
// machines with no display at all.
//
// Geometry setters synthesize the same events a real toolkit would, so
// the render loop exercises its resize path against it unchanged.
type Headless struct {
	mu     sync.Mutex
	title  string
	x, y   int
	width  int
	height int
	frame  *image.RGBA
	events []Event
	closed bool
}

var _ Window = (*Headless)(nil)

// NewHeadless creates a headless window. Zero or negative dimensions
// fall back to 640x480.
func NewHeadless(opts Options) *Headless {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	return &Headless{
		title:  opts.Title,
		x:      opts.X,
		y:      opts.Y,
		width:  w,
		height: h,
	}
}

// Present stores a copy of the frame for inspection via Frame.
func (w *Headless) Present(img image.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	b := img.Bounds()
	frame := image.NewRGBA(b)
	draw.Draw(frame, b, img, b.Min, draw.Src)
	w.frame = frame
}

// Frame returns the most recently presented frame, nil before the first
// Present.
func (w *Headless) Frame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frame
}

// PollEvent pops one queued event.
func (w *Headless) PollEvent() (Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.events) == 0 {
		return EventNone, false
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev, true
}

// PushEvent queues an event as if the user produced it. Tests use this
// to drive close and resize paths.
func (w *Headless) PushEvent(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.events = append(w.events, ev)
}

// SetTitle renames the window.
func (w *Headless) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

// Title returns the current title.
func (w *Headless) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetPos moves the window.
func (w *Headless) SetPos(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x, w.y = x, y
}

// SetSize resizes the client area and queues an EventResize.
func (w *Headless) SetSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || width <= 0 || height <= 0 {
		return
	}
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.events = append(w.events, EventResize)
}

// Size returns the client-area size.
func (w *Headless) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Pos returns the window position.
func (w *Headless) Pos() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y
}

// Close marks the window closed and drops the stored frame.
func (w *Headless) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.frame = nil
	w.events = nil
	return nil
}

// Closed reports whether Close has been called.
func (w *Headless) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
