package simpleplot

import "testing"

var _ Plot = (*Scatter)(nil)

func TestScatter_AxisLimits(t *testing.T) {
	tests := []struct {
		name   string
		points []Point2
		want   Limits
	}{
		{
			name:   "bounding box",
			points: []Point2{{X: 1, Y: 4}, {X: -2, Y: 0}, {X: 3, Y: -1}},
			want:   Limits{MinX: -2, MaxX: 3, MinY: -1, MaxY: 4},
		},
		{
			name:   "single point",
			points: []Point2{{X: 2, Y: 5}},
			want:   Limits{MinX: 2, MaxX: 2, MinY: 5, MaxY: 5},
		},
		{
			name: "empty",
			want: Limits{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scatter{shared: tt.points}
			if got := s.AxisLimits(); got != tt.want {
				t.Errorf("AxisLimits() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScatter_IsolateData(t *testing.T) {
	pts := []Point2{{X: 0, Y: 1}, {X: 1, Y: 2}}
	s := &Scatter{shared: pts}

	s.IsolateData()
	pts[1].Y = 50
	if got := s.AxisLimits(); got.MaxY != 2 {
		t.Errorf("isolated scatter saw caller mutation: MaxY = %v, want 2", got.MaxY)
	}
	s.ReleaseData()
	if got := s.AxisLimits(); got.MaxY != 50 {
		t.Errorf("released scatter still isolated: MaxY = %v, want 50", got.MaxY)
	}
}
