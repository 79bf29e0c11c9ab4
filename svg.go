package branchline

import (
	"fmt"
	"io"
	"strings"
)

// Spring curves are approximated in CSS by overshooting cubic-beziers.
const (
	svgBranchEasing   = "cubic-bezier(0.34, 1.56, 0.64, 1)"
	svgBranchDuration = 1.0
	svgNodeEasing     = "cubic-bezier(0.34, 1.8, 0.64, 1)"
	svgNodeDuration   = 0.5
	svgCardRadius     = 8
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// WriteSVG writes a standalone animated SVG of the timeline to w. The main
// line draws in over DrawDuration, branches and nodes follow with the same
// per-event delays as the live component, and hovering a node shows its card.
// An empty event list produces an empty, valid document.
func WriteSVG(w io.Writer, events []Event, l Layout) error {
	if err := ValidateEvents(events); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}

	b := l.CanvasBounds(events)
	// Leave room below the lowest node for its card.
	cardBottom := l.CenterY
	placements := l.Place(events)
	for _, p := range placements {
		cardBottom = max(cardBottom, p.Endpoint.Y+CardOffsetY+cardHeight())
	}
	if len(events) > 0 {
		b = b.Union(Rect{X: b.X, Y: b.Y, Width: b.Width, Height: cardBottom - b.Y})
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">
`, svgNum(b.X), svgNum(b.Y), svgNum(b.Width), svgNum(b.Height), svgNum(b.Width), svgNum(b.Height))

	if len(events) == 0 {
		svg.WriteString("</svg>\n")
		_, err := io.WriteString(w, svg.String())
		return err
	}

	accent := ColorAccent.Hex()
	fmt.Fprintf(&svg, `<style>
@keyframes draw { from { stroke-dashoffset: 1; } to { stroke-dashoffset: 0; } }
@keyframes branch { from { stroke-dashoffset: 1; opacity: 0; } to { stroke-dashoffset: 0; opacity: 1; } }
@keyframes pop { from { transform: scale(0); opacity: 0; } to { transform: scale(1); opacity: 1; } }
.main { stroke-dasharray: 1; stroke-dashoffset: 1; animation: draw %ss linear forwards; }
.branch { stroke-dasharray: 1; stroke-dashoffset: 1; opacity: 0; animation: branch %ss %s forwards; }
.pop { transform-box: fill-box; transform-origin: center; opacity: 0; animation: pop %ss %s forwards; }
.card { opacity: 0; pointer-events: none; transition: opacity 0.15s ease-out; }
.event:hover .card { opacity: 1; }
.event { cursor: pointer; }
.title { fill: %s; font: 500 16px sans-serif; }
.date { fill: %s; font: 14px sans-serif; }
</style>
`, svgNum(l.DrawDuration), svgNum(svgBranchDuration), svgBranchEasing,
		svgNum(svgNodeDuration), svgNodeEasing, accent, ColorCardDetail.Hex())

	if from, to, ok := l.MainLine(len(events)); ok {
		fmt.Fprintf(&svg, `<line class="main" x1="%s" y1="%s" x2="%s" y2="%s" pathLength="1" stroke="%s" stroke-width="%s" stroke-opacity="%s"/>
`, svgNum(from.X), svgNum(from.Y), svgNum(to.X), svgNum(to.Y), accent, svgNum(mainLineWidth), svgNum(mainLineOpacity))
	}

	for _, p := range placements {
		delay := svgNum(p.Delay)
		if p.HasBranch {
			fmt.Fprintf(&svg, `<path class="branch" d="%s" pathLength="1" stroke="%s" stroke-width="%s" fill="none" style="animation-delay: %ss"/>
`, p.Curve.SVGPath(), accent, svgNum(branchWidth), delay)
			fmt.Fprintf(&svg, `<circle class="pop" cx="%s" cy="%s" r="%s" fill="%s" style="animation-delay: %ss"/>
`, svgNum(p.Anchor.X), svgNum(p.Anchor.Y), svgNum(l.DotRadius), accent, delay)
		}
	}

	// Event nodes go last so their cards paint above every line.
	for _, p := range placements {
		writeSVGEvent(&svg, p, l, accent)
	}

	svg.WriteString("</svg>\n")
	_, err := io.WriteString(w, svg.String())
	return err
}

func writeSVGEvent(svg *strings.Builder, p Placement, l Layout, accent string) {
	c := CardContent{Title: p.Event.Title, Detail: p.Event.Date}
	f := c.frame()
	title := c.titleOrigin()
	detail := c.detailOrigin()
	x, y := p.Endpoint.X, p.Endpoint.Y

	fmt.Fprintf(svg, `<g class="event" data-id="%d">
<circle class="pop" cx="%s" cy="%s" r="%s" fill="%s" style="animation-delay: %ss"/>
<g class="card">
<rect x="%s" y="%s" width="%s" height="%s" rx="%d" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="%s"/>
<text class="title" x="%s" y="%s" dominant-baseline="hanging">%s</text>
<text class="date" x="%s" y="%s" dominant-baseline="hanging">%s</text>
</g>
</g>
`,
		p.Event.ID,
		svgNum(x), svgNum(y), svgNum(l.NodeRadius), accent, svgNum(p.Delay),
		svgNum(x+f.X), svgNum(y+f.Y), svgNum(f.Width), svgNum(f.Height), svgCardRadius,
		ColorCardFill.Hex(), svgNum(ColorCardFill.A), accent, svgNum(CardBorderWidth),
		svgNum(x+title.X), svgNum(y+title.Y), xmlEscaper.Replace(p.Event.Title),
		svgNum(x+detail.X), svgNum(y+detail.Y), xmlEscaper.Replace(p.Event.Date),
	)
}
