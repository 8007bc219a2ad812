package simpleplot

import "github.com/gogpu/gg"

// Color identifies an entry in the fixed palette used by styles. Plots and
// axes never carry raw RGB values; they reference palette entries so a
// whole canvas can be restyled by swapping its Style.
type Color int

// Palette entries.
const (
	White Color = iota
	Black
	LightGray
	Gray
	DarkGray
	Red
	Green
	Blue
	Orange
	Navy
)

var palette = [...]gg.RGBA{
	White:     gg.RGB(1, 1, 1),
	Black:     gg.RGB(0, 0, 0),
	LightGray: gg.RGB(0.85, 0.85, 0.85),
	Gray:      gg.RGB(0.5, 0.5, 0.5),
	DarkGray:  gg.RGB(0.25, 0.25, 0.25),
	Red:       gg.RGB(0.86, 0.2, 0.18),
	Green:     gg.RGB(0.18, 0.65, 0.3),
	Blue:      gg.RGB(0.2, 0.4, 0.85),
	Orange:    gg.RGB(0.95, 0.6, 0.1),
	Navy:      gg.RGB(0.1, 0.12, 0.3),
}

// Resolve maps the palette entry to a concrete paint color. Out-of-range
// values resolve to black rather than panicking, since a Color may travel
// through a Style literal written by the caller.
func (c Color) Resolve() gg.RGBA {
	if c < 0 || int(c) >= len(palette) {
		return palette[Black]
	}
	return palette[c]
}

func (c Color) String() string {
	names := [...]string{
		"white", "black", "lightgray", "gray", "darkgray",
		"red", "green", "blue", "orange", "navy",
	}
	if c < 0 || int(c) >= len(names) {
		return "invalid"
	}
	return names[c]
}
