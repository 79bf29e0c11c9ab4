package branchline

import "math"

// Default layout metrics, in pixels (DrawDuration in seconds).
const (
	DefaultCenterY          = 300.0
	DefaultBranchLength     = 100.0
	DefaultHorizontalOffset = 160.0
	DefaultMargin           = 100.0
	DefaultHeight           = 600.0
	DefaultMinHeight        = 400.0
	DefaultLineInset        = 50.0
	DefaultDrawDuration     = 3.0
	DefaultNodeRadius       = 12.0
	DefaultDotRadius        = 5.0
)

// control point shaping for the branch S-curve
const branchControlLift = 0.6

// Layout maps an ordered event sequence to canvas coordinates. The zero value
// is not useful; start from DefaultLayout.
type Layout struct {
	CenterY          float64 // y of the main line
	BranchLength     float64 // vertical offset per branch unit
	HorizontalOffset float64 // spacing between consecutive events
	Margin           float64 // x of the first event
	Height           float64 // canvas height
	MinHeight        float64 // lower bound for Height on small viewports
	LineInset        float64 // main line starts and ends this far inside the canvas
	DrawDuration     float64 // seconds for the main line draw-in
	NodeRadius       float64 // event node radius, also the hover hit radius
	DotRadius        float64 // radius of the branch indicator dot
}

// DefaultLayout returns the stock metrics.
func DefaultLayout() Layout {
	return Layout{
		CenterY:          DefaultCenterY,
		BranchLength:     DefaultBranchLength,
		HorizontalOffset: DefaultHorizontalOffset,
		Margin:           DefaultMargin,
		Height:           DefaultHeight,
		MinHeight:        DefaultMinHeight,
		LineInset:        DefaultLineInset,
		DrawDuration:     DefaultDrawDuration,
		NodeRadius:       DefaultNodeRadius,
		DotRadius:        DefaultDotRadius,
	}
}

// HorizontalPosition returns the x of the event at index on the main line.
func (l Layout) HorizontalPosition(index int) float64 {
	return float64(index)*l.HorizontalOffset + l.Margin
}

// BranchEndpoint returns where an event's node sits. Main-line events stay at
// (startX, CenterY); branched events move half a spacing right and
// branch*BranchLength vertically.
func (l Layout) BranchEndpoint(startX float64, branch int) Vec2 {
	if branch == 0 {
		return Vec2{X: startX, Y: l.CenterY}
	}
	return Vec2{
		X: startX + l.HorizontalOffset/2,
		Y: l.CenterY + float64(branch)*l.BranchLength,
	}
}

// BranchCurve returns the S-curve from the main line to the branch endpoint.
// ok is false for main-line events, which draw no curve.
func (l Layout) BranchCurve(startX float64, branch int) (c CubicBez, ok bool) {
	if branch == 0 {
		return CubicBez{}, false
	}
	lift := float64(branch) * l.BranchLength * branchControlLift
	return CubicBez{
		P0: Vec2{X: startX, Y: l.CenterY},
		P1: Vec2{X: startX + l.HorizontalOffset/3, Y: l.CenterY - lift},
		P2: Vec2{X: startX + l.HorizontalOffset/1.5, Y: l.CenterY + lift},
		P3: l.BranchEndpoint(startX, branch),
	}, true
}

// TotalWidth returns count*HorizontalOffset.
func (l Layout) TotalWidth(count int) float64 {
	return float64(count) * l.HorizontalOffset
}

// CanvasHeight returns Height, never less than MinHeight.
func (l Layout) CanvasHeight() float64 {
	return math.Max(l.Height, l.MinHeight)
}

// Delay returns the entrance delay in seconds for the event at index, in sync
// with the main line draw-in. It is 0 when fewer than two events exist or the
// formula degenerates, and is clamped to [0, DrawDuration].
func (l Layout) Delay(index, count int) float64 {
	if count < 2 {
		return 0
	}
	denom := l.TotalWidth(count) - l.Margin
	if denom <= 0 {
		return 0
	}
	d := (float64(index)*l.HorizontalOffset + l.Margin) / denom * l.DrawDuration
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return math.Max(0, math.Min(d, l.DrawDuration))
}

// MainLine returns the endpoints of the main line. ok is false when there is
// nothing to draw.
func (l Layout) MainLine(count int) (from, to Vec2, ok bool) {
	if count == 0 {
		return Vec2{}, Vec2{}, false
	}
	x1 := l.LineInset
	x2 := l.TotalWidth(count) - l.LineInset
	if x2 < x1 {
		return Vec2{}, Vec2{}, false
	}
	return Vec2{X: x1, Y: l.CenterY}, Vec2{X: x2, Y: l.CenterY}, true
}

// Placement is the resolved geometry of one event.
type Placement struct {
	Index     int
	Event     Event
	Anchor    Vec2     // point on the main line the branch leaves from
	Endpoint  Vec2     // where the event node is drawn
	Curve     CubicBez // valid only when HasBranch
	HasBranch bool
	Delay     float64
}

// Place resolves the geometry of every event.
func (l Layout) Place(events []Event) []Placement {
	out := make([]Placement, len(events))
	for i, e := range events {
		x := l.HorizontalPosition(i)
		curve, ok := l.BranchCurve(x, e.Branch)
		out[i] = Placement{
			Index:     i,
			Event:     e,
			Anchor:    Vec2{X: x, Y: l.CenterY},
			Endpoint:  l.BranchEndpoint(x, e.Branch),
			Curve:     curve,
			HasBranch: ok,
			Delay:     l.Delay(i, len(events)),
		}
	}
	return out
}

// CanvasBounds returns the drawable area: the formula canvas of
// TotalWidth x CanvasHeight grown to contain every endpoint and curve,
// padded by NodeRadius.
func (l Layout) CanvasBounds(events []Event) Rect {
	b := Rect{Width: l.TotalWidth(len(events)), Height: l.CanvasHeight()}
	for _, p := range l.Place(events) {
		r := l.NodeRadius
		b = b.Union(Rect{X: p.Endpoint.X - r, Y: p.Endpoint.Y - r, Width: 2 * r, Height: 2 * r})
		if p.HasBranch {
			b = b.Union(p.Curve.Bounds())
		}
	}
	if len(events) == 0 {
		b.Width = 0
	}
	return b
}
