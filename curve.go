package branchline

import (
	"fmt"
	"math"
	"strconv"
)

// defaultCurveSegments is the subdivision count used when flattening branch
// curves for drawing and hit bounds.
const defaultCurveSegments = 32

// CubicBez is a cubic Bézier segment from P0 to P3 with control points P1, P2.
type CubicBez struct {
	P0, P1, P2, P3 Vec2
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Vec2 {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	return Vec2{
		X: u2*u*c.P0.X + 3*u2*t*c.P1.X + 3*u*t2*c.P2.X + t2*t*c.P3.X,
		Y: u2*u*c.P0.Y + 3*u2*t*c.P1.Y + 3*u*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Flatten appends segments+1 evenly parameterized points to buf and returns
// the result. segments <= 0 uses the default subdivision.
func (c CubicBez) Flatten(segments int, buf []Vec2) Polyline {
	if segments <= 0 {
		segments = defaultCurveSegments
	}
	for i := 0; i <= segments; i++ {
		buf = append(buf, c.Eval(float64(i)/float64(segments)))
	}
	return buf
}

// Bounds returns the axis-aligned bounds of the flattened curve.
func (c CubicBez) Bounds() Rect {
	return c.Flatten(defaultCurveSegments, nil).Bounds()
}

// SVGPath formats the curve as SVG path data: "M x y C x1 y1, x2 y2, x y".
func (c CubicBez) SVGPath() string {
	return fmt.Sprintf("M %s %s C %s %s, %s %s, %s %s",
		svgNum(c.P0.X), svgNum(c.P0.Y),
		svgNum(c.P1.X), svgNum(c.P1.Y),
		svgNum(c.P2.X), svgNum(c.P2.Y),
		svgNum(c.P3.X), svgNum(c.P3.Y))
}

// svgNum prints at most two decimals and drops trailing zeros.
func svgNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// Polyline is an open path through a sequence of points.
type Polyline []Vec2

// Length returns the total arc length of the polyline.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i].Sub(p[i-1]).Len()
	}
	return total
}

// Trim appends to buf the leading part of p covering fraction of its arc
// length and returns the result. fraction is clamped to [0, 1]; 0 yields an
// empty path and 1 yields p unchanged.
func (p Polyline) Trim(fraction float64, buf []Vec2) Polyline {
	fraction = clamp01(fraction)
	if len(p) < 2 || fraction == 0 {
		return buf
	}
	if fraction == 1 {
		return append(buf, p...)
	}

	remaining := p.Length() * fraction
	buf = append(buf, p[0])
	for i := 1; i < len(p); i++ {
		seg := p[i].Sub(p[i-1]).Len()
		if seg >= remaining {
			if seg > 0 {
				buf = append(buf, p[i-1].Lerp(p[i], remaining/seg))
			}
			return buf
		}
		remaining -= seg
		buf = append(buf, p[i])
	}
	return buf
}

// Bounds returns the axis-aligned bounding rectangle of the points.
func (p Polyline) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
