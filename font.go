package simpleplot

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
)

// defaultFontSource returns the Go Regular font shared by all axes. The
// returned source may be nil if parsing fails; text drawing then degrades
// to a no-op rather than failing the frame.
func defaultFontSource() *text.FontSource {
	fontOnce.Do(func() {
		var err error
		fontSrc, err = text.NewFontSource(goregular.TTF)
		if err != nil {
			Logger().Warn("font source unavailable, axis text disabled", "error", err)
		}
	})
	return fontSrc
}
