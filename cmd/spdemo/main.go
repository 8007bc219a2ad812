// Command spdemo opens a demo canvas with a histogram, a scatter, and a
// live sine series, or renders one headless frame to a PNG.
package main

import (
	"errors"
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	sp "github.com/jack-dinsmore/SimplePlots"
	"github.com/jack-dinsmore/SimplePlots/window/giowin"
)

func main() {
	var (
		fps     = flag.Int("fps", 30, "frame rate (0 = static)")
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		dark    = flag.Bool("dark", false, "use the dark style")
		output  = flag.String("output", "", "render one headless frame to this PNG and exit")
		verbose = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		sp.SetLogger(slog.Default())
	}

	style := sp.Grayscale
	if *dark {
		style = sp.Dark
	}

	wave := make([]float64, 256)
	fillWave(wave, 0)
	series := sp.NewSeries(1, wave, &style)

	points := make([]sp.Point2, 80)
	for i := range points {
		points[i] = sp.Point2{X: rand.Float64() * 255, Y: rand.Float64()*2 - 1}
	}
	scatter := sp.NewScatter(points, &style)

	bins := make([]float64, 16)
	for i := range bins {
		bins[i] = rand.Float64()
	}
	hist := sp.NewHistogram(16, bins, &style)

	opts := []sp.CanvasOption{
		sp.WithTitle("spdemo"),
		sp.WithSize(*width, *height),
		sp.WithFramerate(*fps),
		sp.WithStyle(style),
		sp.WithAxisLabels("t", "amplitude"),
	}
	if *output != "" {
		opts = append(opts, sp.WithWindowDriver("headless"), sp.WithFramerate(sp.Static))
	}

	id, err := sp.MakeCanvas([]sp.PlotID{series, scatter, hist}, opts...)
	if err != nil {
		log.Fatalf("canvas creation failed: %v", err)
	}

	if *output != "" {
		writeSnapshot(id, *output)
		if err := sp.DeleteCanvas(id); err != nil {
			log.Fatalf("canvas teardown failed: %v", err)
		}
		return
	}

	// Animate the shared series buffer; the canvas picks the new values
	// up on its next frame.
	go func() {
		phase := 0.0
		for range time.Tick(50 * time.Millisecond) {
			phase += 0.1
			fillWave(wave, phase)
		}
	}()

	giowin.Main()
}

func fillWave(wave []float64, phase float64) {
	for i := range wave {
		x := float64(i) / 16
		wave[i] = math.Sin(x+phase) * (1 + 0.25*math.Sin(x/3))
	}
}

func writeSnapshot(id sp.CanvasID, path string) {
	img, err := waitForFrame(id)
	if err != nil {
		log.Fatalf("snapshot failed: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("snapshot written to %s", path)
}

// waitForFrame polls until the render goroutine has painted its first
// frame.
func waitForFrame(id sp.CanvasID) (image.Image, error) {
	for i := 0; i < 100; i++ {
		img, err := sp.CanvasImage(id)
		if err != nil {
			return nil, err
		}
		if img != nil {
			return img, nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, errors.New("no frame painted")
}
