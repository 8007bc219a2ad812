package window

import (
	"image"
	"image/color"
	"testing"
)

var _ Window = (*Headless)(nil)

func TestHeadless_Present(t *testing.T) {
	w := NewHeadless(Options{Width: 4, Height: 4})
	if w.Frame() != nil {
		t.Fatal("frame set before the first Present")
	}

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 2, color.RGBA{R: 255, A: 255})
	w.Present(src)

	frame := w.Frame()
	if frame == nil {
		t.Fatal("no frame after Present")
	}
	if got := frame.RGBAAt(1, 2); got.R != 255 || got.A != 255 {
		t.Errorf("pixel (1,2) = %v", got)
	}

	// Present copies: later mutation of the source must not show.
	src.SetRGBA(1, 2, color.RGBA{G: 255, A: 255})
	if got := w.Frame().RGBAAt(1, 2); got.G == 255 {
		t.Error("stored frame aliases the presented image")
	}
}

func TestHeadless_Events(t *testing.T) {
	w := NewHeadless(Options{Width: 10, Height: 10})

	if ev, ok := w.PollEvent(); ok {
		t.Fatalf("PollEvent on a fresh window = (%v, true)", ev)
	}

	w.PushEvent(EventClose)
	w.PushEvent(EventResize)

	if ev, ok := w.PollEvent(); !ok || ev != EventClose {
		t.Errorf("first event = (%v, %v), want (close, true)", ev, ok)
	}
	if ev, ok := w.PollEvent(); !ok || ev != EventResize {
		t.Errorf("second event = (%v, %v), want (resize, true)", ev, ok)
	}
	if _, ok := w.PollEvent(); ok {
		t.Error("events remain after draining")
	}
}

func TestHeadless_Geometry(t *testing.T) {
	w := NewHeadless(Options{Title: "t", Width: 10, Height: 20, X: 3, Y: 4})

	if width, height := w.Size(); width != 10 || height != 20 {
		t.Errorf("Size() = (%d, %d)", width, height)
	}
	if x, y := w.Pos(); x != 3 || y != 4 {
		t.Errorf("Pos() = (%d, %d)", x, y)
	}
	if w.Title() != "t" {
		t.Errorf("Title() = %q", w.Title())
	}

	w.SetTitle("renamed")
	if w.Title() != "renamed" {
		t.Errorf("Title() after SetTitle = %q", w.Title())
	}
	w.SetPos(7, 8)
	if x, y := w.Pos(); x != 7 || y != 8 {
		t.Errorf("Pos() after SetPos = (%d, %d)", x, y)
	}

	// A real size change queues one resize event.
	w.SetSize(30, 40)
	if width, height := w.Size(); width != 30 || height != 40 {
		t.Errorf("Size() after SetSize = (%d, %d)", width, height)
	}
	if ev, ok := w.PollEvent(); !ok || ev != EventResize {
		t.Errorf("event after SetSize = (%v, %v), want (resize, true)", ev, ok)
	}

	// Same size and invalid sizes are ignored.
	w.SetSize(30, 40)
	w.SetSize(0, 40)
	w.SetSize(30, -1)
	if _, ok := w.PollEvent(); ok {
		t.Error("ignored SetSize queued an event")
	}
}

func TestHeadless_DefaultSize(t *testing.T) {
	w := NewHeadless(Options{})
	if width, height := w.Size(); width != 640 || height != 480 {
		t.Errorf("default Size() = (%d, %d), want (640, 480)", width, height)
	}
}

func TestHeadless_Close(t *testing.T) {
	w := NewHeadless(Options{Width: 4, Height: 4})
	w.Present(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	w.PushEvent(EventResize)

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !w.Closed() {
		t.Error("Closed() = false after Close")
	}
	if w.Frame() != nil {
		t.Error("frame survives Close")
	}
	if _, ok := w.PollEvent(); ok {
		t.Error("events survive Close")
	}

	// Closed windows ignore further frames and events.
	w.Present(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	w.PushEvent(EventClose)
	if w.Frame() != nil || func() bool { _, ok := w.PollEvent(); return ok }() {
		t.Error("closed window accepted input")
	}

	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{ev: EventNone, want: "none"},
		{ev: EventResize, want: "resize"},
		{ev: EventClose, want: "close"},
		{ev: Event(99), want: "invalid"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Event(%d).String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
