package simpleplot

import (
	"errors"
	"fmt"
)

// Errors reported synchronously by canvas construction and mutation.
// They indicate caller contract violations and are never retried
// internally.
var (
	// ErrSpecialAxisShared is returned when a plot with the special axis
	// type is combined with any other plot in one canvas.
	ErrSpecialAxisShared = errors.New("simpleplot: special-axis plots cannot share a canvas")

	// ErrPlotOrder is returned when the ordered membership list of a
	// canvas is found out of type-precedence order. It indicates a bug in
	// membership bookkeeping, not a caller mistake.
	ErrPlotOrder = errors.New("simpleplot: plot ordering invariant violated")

	// ErrCanvasClosed is returned when an operation targets a canvas
	// whose teardown has already begun.
	ErrCanvasClosed = errors.New("simpleplot: canvas closed")
)

// AxisTypeError indicates a coordinate system that the library does not
// implement yet. Cartesian 2D and the special type are the only live
// paths; everything else fails fast at canvas construction.
type AxisTypeError struct {
	Type AxisType
}

func (e *AxisTypeError) Error() string {
	return fmt.Sprintf("simpleplot: axis type %v is not implemented", e.Type)
}

// AxisMismatchError indicates an attempt to mix plots with different axis
// types in one canvas.
type AxisMismatchError struct {
	Canvas AxisType
	Plot   AxisType
}

func (e *AxisMismatchError) Error() string {
	return fmt.Sprintf("simpleplot: plot axis type %v does not match canvas axis type %v", e.Plot, e.Canvas)
}

// UnknownPlotError indicates a plot id that is not registered.
type UnknownPlotError struct {
	ID PlotID
}

func (e *UnknownPlotError) Error() string {
	return fmt.Sprintf("simpleplot: unknown plot %d", e.ID)
}

// UnknownCanvasError indicates a canvas id that is not registered, either
// because it never existed or because the canvas has been deleted.
type UnknownCanvasError struct {
	ID CanvasID
}

func (e *UnknownCanvasError) Error() string {
	return fmt.Sprintf("simpleplot: unknown canvas %d", e.ID)
}
