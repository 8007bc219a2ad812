package simpleplot

import (
	"math"
	"testing"
)

var (
	_ Ticker = LinearTicks{}
	_ Ticker = LogTicks{}
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		span float64
		want float64
	}{
		{span: 1, want: 0.2},
		{span: 4, want: 1},
		{span: 5, want: 1},
		{span: 10, want: 2},
		{span: 25, want: 5},
		{span: 100, want: 20},
		{span: 0.5, want: 0.1},
		{span: 1000, want: 200},
	}

	for _, tt := range tests {
		got := niceStep(tt.span)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("niceStep(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestLinearTicks(t *testing.T) {
	ticks := LinearTicks{}.Ticks(0, 10)
	if len(ticks) == 0 {
		t.Fatal("Ticks(0, 10) returned no ticks")
	}

	var majors []float64
	for _, tk := range ticks {
		if tk.Value < 0 || tk.Value > 10 {
			t.Errorf("tick %v outside [0, 10]", tk.Value)
		}
		if tk.Minor {
			if tk.Label != "" {
				t.Errorf("minor tick %v carries label %q", tk.Value, tk.Label)
			}
			continue
		}
		if tk.Label == "" {
			t.Errorf("major tick %v has no label", tk.Value)
		}
		majors = append(majors, tk.Value)
	}

	want := []float64{0, 2, 4, 6, 8, 10}
	if len(majors) != len(want) {
		t.Fatalf("major ticks = %v, want %v", majors, want)
	}
	for i := range want {
		if math.Abs(majors[i]-want[i]) > 1e-9 {
			t.Fatalf("major ticks = %v, want %v", majors, want)
		}
	}
}

func TestLinearTicks_DegenerateRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{name: "empty", min: 5, max: 5},
		{name: "inverted", min: 10, max: 0},
		{name: "nan", min: math.NaN(), max: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ticks := (LinearTicks{}).Ticks(tt.min, tt.max); ticks != nil {
				t.Errorf("Ticks(%v, %v) = %v, want nil", tt.min, tt.max, ticks)
			}
		})
	}
}

func TestLogTicks(t *testing.T) {
	ticks := LogTicks{}.Ticks(1, 1000)

	var majors []float64
	minorCount := 0
	for _, tk := range ticks {
		if tk.Minor {
			minorCount++
			continue
		}
		majors = append(majors, tk.Value)
	}

	want := []float64{1, 10, 100, 1000}
	if len(majors) != len(want) {
		t.Fatalf("decade ticks = %v, want %v", majors, want)
	}
	for i := range want {
		if math.Abs(majors[i]-want[i]) > 1e-9 {
			t.Fatalf("decade ticks = %v, want %v", majors, want)
		}
	}
	// 2..9 inside each of the three full decades.
	if minorCount != 24 {
		t.Errorf("minor tick count = %d, want 24", minorCount)
	}
}

func TestLogTicks_NonPositive(t *testing.T) {
	if ticks := (LogTicks{}).Ticks(0, 10); ticks != nil {
		t.Errorf("Ticks(0, 10) = %v, want nil", ticks)
	}
	if ticks := (LogTicks{}).Ticks(-1, 10); ticks != nil {
		t.Errorf("Ticks(-1, 10) = %v, want nil", ticks)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 0, want: "0"},
		{v: 2, want: "2"},
		{v: -4, want: "-4"},
		{v: 1000000, want: "1000000"},
		{v: 0.5, want: "0.5"},
		{v: 1.0 / 3.0, want: "0.3333"},
	}

	for _, tt := range tests {
		if got := formatTick(tt.v); got != tt.want {
			t.Errorf("formatTick(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestMajorStep(t *testing.T) {
	ticks := LinearTicks{}.Ticks(0, 10)
	if got := majorStep(ticks); math.Abs(got-2) > 1e-9 {
		t.Errorf("majorStep = %v, want 2", got)
	}
	if got := majorStep(nil); got != 0 {
		t.Errorf("majorStep(nil) = %v, want 0", got)
	}
	if got := majorStep([]Tick{{Value: 3}}); got != 0 {
		t.Errorf("majorStep with one major = %v, want 0", got)
	}
}
