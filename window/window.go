// Package window abstracts the desktop window system behind a driver
// registry. The core library only needs to open a window, present a
// frame, and pump one pending event per render-loop iteration; each
// driver maps that contract onto a concrete toolkit.
//
// The headless in-memory driver registers itself here and is always
// available. Importing the giowin subpackage registers a Gio-backed
// driver at a higher priority, so hosts that want real windows only add
// one blank import.
package window

import "image"

// Event is one input or lifecycle event drained from a window. The core
// render loop drains at most one event per frame.
type Event int

const (
	// EventNone is the zero Event; PollEvent never returns it with ok=true.
	EventNone Event = iota

	// EventResize signals that the window's client area changed size and
	// the backbuffer must be reallocated.
	EventResize

	// EventClose signals that the user asked the window to close.
	EventClose
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventResize:
		return "resize"
	case EventClose:
		return "close"
	default:
		return "invalid"
	}
}

// Options configures window creation.
type Options struct {
	Title  string
	Width  int
	Height int
	X      int
	Y      int
}

// Window is one native (or simulated) window owned by a canvas render
// goroutine.
//
// Present and PollEvent are called from the render goroutine; the
// geometry setters may be called from any goroutine. Implementations
// must make all methods safe for that pattern.
type Window interface {
	// Present displays a finished frame. The implementation copies what
	// it needs before returning; the caller may reuse the image.
	Present(img image.Image)

	// PollEvent returns one pending event without blocking. ok is false
	// when no event is queued.
	PollEvent() (ev Event, ok bool)

	// SetTitle renames the window. Drivers without title support after
	// creation log and ignore the call.
	SetTitle(title string)

	// SetPos moves the window. Drivers without placement support log and
	// ignore the call.
	SetPos(x, y int)

	// SetSize resizes the client area. The driver reports the change
	// back through an EventResize.
	SetSize(width, height int)

	// Size returns the current client-area size in pixels.
	Size() (width, height int)

	// Pos returns the current window position.
	Pos() (x, y int)

	// Close destroys the window. Close is idempotent.
	Close() error
}
