package simpleplot

// Style is a bundle of palette references shared by a canvas and its
// plots. A nil *Style passed to any factory selects Grayscale.
type Style struct {
	// Background fills the whole backbuffer before anything else draws.
	Background Color

	// Axis colors the axis lines, tick marks, and text.
	Axis Color

	// Grid colors the major gridlines; minor gridlines draw in the same
	// color at a thinner width.
	Grid Color

	// Line colors stroked plot geometry (series polylines, scatter rings).
	Line Color

	// Fill colors filled plot geometry (histogram bars, pie wedges).
	Fill Color

	// LineWidth is the stroke width in pixels for plot geometry.
	LineWidth float64
}

// Built-in styles.
var (
	Grayscale = Style{
		Background: White,
		Axis:       Black,
		Grid:       LightGray,
		Line:       DarkGray,
		Fill:       Gray,
		LineWidth:  1.5,
	}

	Dark = Style{
		Background: Navy,
		Axis:       White,
		Grid:       DarkGray,
		Line:       Orange,
		Fill:       Blue,
		LineWidth:  1.5,
	}
)

// DefaultStyle is used wherever the caller passes a nil style.
var DefaultStyle = Grayscale

// styleOrDefault resolves an optional style pointer.
func styleOrDefault(s *Style) Style {
	if s == nil {
		return DefaultStyle
	}
	return *s
}
