package branchline

import (
	"bytes"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// CommandType identifies the kind of draw a RenderCommand performs.
type CommandType uint8

const (
	CommandStroke CommandType = iota // ribbon along Points
	CommandCircle                    // filled circle
	CommandCard                      // detail card panel and text
)

// RenderCommand is one screen-space draw produced by traversing the scene.
// Building commands is a pure function of node state; submitting them is the
// only step that touches the GPU.
type RenderCommand struct {
	Type        CommandType
	Node        *Node
	Color       Color // alpha includes the node's world alpha
	RenderLayer uint8

	// Stroke
	Points []Vec2
	Width  float64

	// Circle
	Center Vec2
	Radius float64

	// Card
	Frame    Rect
	Card     *CardContent
	TitleAt  Vec2
	DetailAt Vec2
	Scale    float64

	treeOrder int
}

// Commands returns the commands built by the most recent Draw or
// BuildCommands call. The returned slice MUST NOT be mutated.
func (s *Scene) Commands() []RenderCommand {
	return s.commands
}

// BuildCommands refreshes transforms and rebuilds the command list as seen
// through cam (nil for the identity view) without drawing anything.
func (s *Scene) BuildCommands(cam *Camera) []RenderCommand {
	view := identityTransform
	if cam != nil {
		view = cam.computeViewMatrix()
	}
	s.buildCommands(view)
	return s.commands
}

// buildCommands traverses the tree into s.commands, sorted by render layer
// with tree order as the tiebreaker.
func (s *Scene) buildCommands(view [6]float64) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.commands = s.commands[:0]
	treeOrder := 0
	s.traverse(s.root, view, &treeOrder)
	slices.SortStableFunc(s.commands, func(a, b RenderCommand) int {
		if a.RenderLayer != b.RenderLayer {
			return int(a.RenderLayer) - int(b.RenderLayer)
		}
		return a.treeOrder - b.treeOrder
	})
}

// traverse emits commands for n and its subtree. Invisible or fully
// transparent subtrees emit nothing.
func (s *Scene) traverse(n *Node, view [6]float64, treeOrder *int) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	m := multiplyAffine(view, n.worldTransform)
	col := n.Color.WithAlpha(n.worldAlpha)

	switch n.Type {
	case NodeTypeStroke:
		n.trimBuf = n.Points.Trim(n.PathLength, n.trimBuf[:0])
		if len(n.trimBuf) >= 2 && n.StrokeWidth > 0 {
			pts := make([]Vec2, len(n.trimBuf))
			for i, p := range n.trimBuf {
				pts[i].X, pts[i].Y = transformPoint(m, p.X, p.Y)
			}
			*treeOrder++
			s.commands = append(s.commands, RenderCommand{
				Type: CommandStroke, Node: n, Color: col, RenderLayer: n.RenderLayer,
				Points: pts, Width: n.StrokeWidth * transformScale(m),
				treeOrder: *treeOrder,
			})
		}
	case NodeTypeCircle:
		r := n.Radius * transformScale(m)
		if r > 0 {
			cx, cy := transformPoint(m, 0, 0)
			*treeOrder++
			s.commands = append(s.commands, RenderCommand{
				Type: CommandCircle, Node: n, Color: col, RenderLayer: n.RenderLayer,
				Center: Vec2{X: cx, Y: cy}, Radius: r,
				treeOrder: *treeOrder,
			})
		}
	case NodeTypeCard:
		if n.Card != nil {
			tx, ty := transformPoint(m, n.Card.titleOrigin().X, n.Card.titleOrigin().Y)
			dx, dy := transformPoint(m, n.Card.detailOrigin().X, n.Card.detailOrigin().Y)
			*treeOrder++
			s.commands = append(s.commands, RenderCommand{
				Type: CommandCard, Node: n, Color: col, RenderLayer: n.RenderLayer,
				Frame: transformRect(m, n.Card.frame()), Card: n.Card,
				TitleAt: Vec2{X: tx, Y: ty}, DetailAt: Vec2{X: dx, Y: dy},
				Scale:     transformScale(m),
				treeOrder: *treeOrder,
			})
		}
	}

	for _, child := range n.children {
		s.traverse(child, view, treeOrder)
	}
}

// --- Submission ---

func (s *Scene) submitCommands(target *ebiten.Image) {
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandStroke:
			s.drawStroke(target, cmd)
		case CommandCircle:
			vector.DrawFilledCircle(target,
				float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius),
				cmd.Color.toRGBA(), true)
		case CommandCard:
			drawCard(target, cmd)
		}
	}
}

// drawStroke renders a polyline as a ribbon mesh: two vertices per point
// offset along the miter normal, two triangles per segment.
func (s *Scene) drawStroke(target *ebiten.Image, cmd *RenderCommand) {
	verts, inds := buildRibbon(cmd.Points, cmd.Width, cmd.Color)
	if len(inds) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	target.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}

// buildRibbon expands points into a triangle strip of the given width with
// premultiplied vertex colors. Returns nil slices for fewer than two points.
func buildRibbon(points []Vec2, width float64, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 2 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n*2)
	inds := make([]uint16, (n-1)*6)
	halfW := width / 2

	a := float32(clamp01(c.A))
	cr := float32(clamp01(c.R)) * a
	cg := float32(clamp01(c.G)) * a
	cb := float32(clamp01(c.B)) * a

	for i := 0; i < n; i++ {
		var nx, ny float64
		switch i {
		case 0:
			nx, ny = perpendicular(points[0], points[1])
		case n - 1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			if ln := math.Hypot(nx, ny); ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			// Keep the ribbon width at the joint, at most 2x.
			if dot := nx0*nx + ny0*ny; dot > 0.1 {
				scale := math.Min(1/dot, 2)
				nx *= scale
				ny *= scale
			}
		}
		p := points[i]
		verts[i*2] = ebiten.Vertex{
			DstX: float32(p.X + nx*halfW), DstY: float32(p.Y + ny*halfW),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a,
		}
		verts[i*2+1] = ebiten.Vertex{
			DstX: float32(p.X - nx*halfW), DstY: float32(p.Y - ny*halfW),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a,
		}
	}
	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		inds[ii+0] = v
		inds[ii+1] = v + 1
		inds[ii+2] = v + 2
		inds[ii+3] = v + 1
		inds[ii+4] = v + 3
		inds[ii+5] = v + 2
	}
	return verts, inds
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Hypot(dx, dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// drawCard renders the card panel, its accent border, and both text lines.
func drawCard(target *ebiten.Image, cmd *RenderCommand) {
	f := cmd.Frame
	alpha := cmd.Color.A
	vector.DrawFilledRect(target, float32(f.X), float32(f.Y), float32(f.Width), float32(f.Height),
		ColorCardFill.WithAlpha(alpha).toRGBA(), true)
	vector.StrokeRect(target, float32(f.X), float32(f.Y), float32(f.Width), float32(f.Height),
		float32(CardBorderWidth*cmd.Scale), ColorAccent.WithAlpha(alpha).toRGBA(), true)

	drawCardText(target, cmd.Card.Title, cardTitleSize, cmd.TitleAt, cmd.Scale, ColorAccent.WithAlpha(alpha).toRGBA())
	drawCardText(target, cmd.Card.Detail, cardDetailSize, cmd.DetailAt, cmd.Scale, ColorCardDetail.WithAlpha(alpha).toRGBA())
}

func drawCardText(target *ebiten.Image, s string, size float64, at Vec2, scale float64, c color.Color) {
	if s == "" {
		return
	}
	face := cardFace(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(target, s, face, op)
}

// --- Shared GPU resources (single-threaded, no sync.Once) ---

var (
	whitePixelImage *ebiten.Image
	cardFontSource  *text.GoTextFaceSource
	cardFontFailed  bool
)

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source texture for stroke meshes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// cardFace returns a Go Regular face of the given size, or nil if the font
// could not be parsed.
func cardFace(size float64) *text.GoTextFace {
	if cardFontSource == nil && !cardFontFailed {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			cardFontFailed = true
			debugf("card font: %v", err)
			return nil
		}
		cardFontSource = src
	}
	if cardFontSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: cardFontSource, Size: size}
}
