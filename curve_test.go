package branchline

import "testing"

func TestCubicBezEndpoints(t *testing.T) {
	c := CubicBez{
		P0: Vec2{X: 0, Y: 0},
		P1: Vec2{X: 10, Y: -20},
		P2: Vec2{X: 30, Y: 20},
		P3: Vec2{X: 40, Y: 0},
	}
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %+v, want P0", got)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %+v, want P3", got)
	}
	// Symmetric control points cross the midpoint at t = 0.5.
	mid := c.Eval(0.5)
	assertNear(t, "mid.X", mid.X, 20)
	assertNear(t, "mid.Y", mid.Y, 0)
}

func TestCubicBezFlatten(t *testing.T) {
	c := CubicBez{P3: Vec2{X: 30}}
	pts := c.Flatten(3, nil)
	if len(pts) != 4 {
		t.Fatalf("Flatten(3) = %d points, want 4", len(pts))
	}
	if pts[0] != c.P0 || pts[3] != c.P3 {
		t.Errorf("Flatten endpoints = %+v, %+v", pts[0], pts[3])
	}
	if got := len(c.Flatten(0, nil)); got != defaultCurveSegments+1 {
		t.Errorf("Flatten(0) = %d points, want default %d", got, defaultCurveSegments+1)
	}
	buf := make([]Vec2, 0, 8)
	if got := c.Flatten(3, buf); cap(got) != cap(buf) {
		t.Error("Flatten should append into the buffer")
	}
}

func TestCubicBezSVGPath(t *testing.T) {
	c, _ := DefaultLayout().BranchCurve(260, 1)
	want := "M 260 300 C 313.33 240, 366.67 360, 340 400"
	if got := c.SVGPath(); got != want {
		t.Errorf("SVGPath = %q, want %q", got, want)
	}
}

func TestPolylineLength(t *testing.T) {
	p := Polyline{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}
	assertNear(t, "Length", p.Length(), 11)
	if got := (Polyline{}).Length(); got != 0 {
		t.Errorf("empty Length = %v", got)
	}
}

func TestPolylineTrim(t *testing.T) {
	p := Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	tests := []struct {
		name     string
		fraction float64
		want     Polyline
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"quarter", 0.25, Polyline{{X: 0, Y: 0}, {X: 5, Y: 0}}},
		{"half", 0.5, Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{"three quarters", 0.75, Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}},
		{"full", 1, p},
		{"over", 2, p},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Trim(tt.fraction, nil)
			if len(got) != len(tt.want) {
				t.Fatalf("Trim(%v) = %v, want %v", tt.fraction, got, tt.want)
			}
			for i := range got {
				if !approxEqual(got[i].X, tt.want[i].X, 1e-9) || !approxEqual(got[i].Y, tt.want[i].Y, 1e-9) {
					t.Errorf("Trim(%v)[%d] = %+v, want %+v", tt.fraction, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPolylineBounds(t *testing.T) {
	p := Polyline{{X: 5, Y: -2}, {X: -3, Y: 4}, {X: 1, Y: 1}}
	want := Rect{X: -3, Y: -2, Width: 8, Height: 6}
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}
