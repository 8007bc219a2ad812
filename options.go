package simpleplot

// CanvasOption configures a canvas during creation.
//
// Example:
//
//	id, err := simpleplot.MakeCanvas(plots,
//	    simpleplot.WithTitle("latency"),
//	    simpleplot.WithSize(800, 600),
//	    simpleplot.WithFramerate(simpleplot.Static),
//	)
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for canvas creation.
type canvasOptions struct {
	title     string
	width     int
	height    int
	x         int
	y         int
	framerate int
	style     Style
	driver    string
	xLabel    string
	yLabel    string
	logX      bool
	logY      bool
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		title:     "SimplePlots",
		width:     640,
		height:    480,
		framerate: defaultFramerate,
		style:     DefaultStyle,
	}
}

// WithTitle sets the window title.
func WithTitle(title string) CanvasOption {
	return func(o *canvasOptions) {
		o.title = title
	}
}

// WithSize sets the window client-area size in pixels.
func WithSize(width, height int) CanvasOption {
	return func(o *canvasOptions) {
		o.width = width
		o.height = height
	}
}

// WithPos sets the initial window position.
func WithPos(x, y int) CanvasOption {
	return func(o *canvasOptions) {
		o.x = x
		o.y = y
	}
}

// WithFramerate sets the repaint rate in frames per second. Pass Static
// for a canvas whose data will not change; it paints once and snapshots
// its members' data.
func WithFramerate(rate int) CanvasOption {
	return func(o *canvasOptions) {
		if rate < Static {
			rate = Static
		}
		o.framerate = rate
	}
}

// WithStyle sets the style shared by the canvas background, grid, and
// axes.
func WithStyle(st Style) CanvasOption {
	return func(o *canvasOptions) {
		o.style = st
	}
}

// WithWindowDriver pins the canvas to a named window driver instead of
// the best available one. Useful to force the headless driver while a
// toolkit driver is imported.
func WithWindowDriver(name string) CanvasOption {
	return func(o *canvasOptions) {
		o.driver = name
	}
}

// WithAxisLabels titles the x and y axes. Empty strings hide a label and
// shrink that axis's clearance.
func WithAxisLabels(x, y string) CanvasOption {
	return func(o *canvasOptions) {
		o.xLabel = x
		o.yLabel = y
	}
}

// WithLogAxes switches either axis to a logarithmic scale with
// geometric tick spacing.
func WithLogAxes(x, y bool) CanvasOption {
	return func(o *canvasOptions) {
		o.logX = x
		o.logY = y
	}
}
