package simpleplot

import "testing"

func TestCanvasOptions(t *testing.T) {
	o := defaultCanvasOptions()
	if o.title != "SimplePlots" || o.width != 640 || o.height != 480 || o.framerate != defaultFramerate {
		t.Errorf("defaults = %+v", o)
	}

	opts := []CanvasOption{
		WithTitle("demo"),
		WithSize(800, 600),
		WithPos(10, 20),
		WithFramerate(60),
		WithStyle(Dark),
		WithWindowDriver("headless"),
		WithAxisLabels("time", "value"),
		WithLogAxes(false, true),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.title != "demo" || o.width != 800 || o.height != 600 {
		t.Errorf("geometry options not applied: %+v", o)
	}
	if o.x != 10 || o.y != 20 {
		t.Errorf("position = (%d, %d)", o.x, o.y)
	}
	if o.framerate != 60 || o.style != Dark || o.driver != "headless" {
		t.Errorf("options not applied: %+v", o)
	}
	if o.xLabel != "time" || o.yLabel != "value" || o.logX || !o.logY {
		t.Errorf("axis options not applied: %+v", o)
	}
}

func TestWithFramerate_ClampsToStatic(t *testing.T) {
	o := defaultCanvasOptions()
	WithFramerate(-5)(&o)
	if o.framerate != Static {
		t.Errorf("framerate = %d, want Static", o.framerate)
	}
	WithFramerate(Static)(&o)
	if o.framerate != Static {
		t.Errorf("framerate = %d, want Static", o.framerate)
	}
}
