// Package simpleplot renders live 2D data plots into desktop windows.
//
// # Overview
//
// simpleplot manages a set of canvases. Each canvas owns one window, a
// backbuffer, and an ordered list of plots sharing a single coordinate
// system. A dedicated render goroutine repaints the canvas at a fixed
// frame rate while the host application mutates plots and canvas
// membership from its own goroutines.
//
// # Quick Start
//
//	import (
//	    sp "github.com/jack-dinsmore/SimplePlots"
//	)
//
//	data := []float64{1, 3, 2, 5, 4}
//	series := sp.NewSeries(1, data, nil)
//
//	id, err := sp.MakeCanvas([]sp.PlotID{series}, sp.WithTitle("signal"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sp.DeleteCanvas(id)
//
// # Windows
//
// Window creation goes through the driver registry in the window
// subpackage. Importing window/giowin registers a Gio-backed driver that
// opens real desktop windows; without it the headless in-memory driver is
// used, which is what the tests run against.
//
// # Concurrency
//
// All exported functions are safe for concurrent use. Plot data buffers
// remain owned by the caller unless a canvas is switched into static mode,
// in which case the canvas keeps a private snapshot until the mode is
// toggled back.
package simpleplot
