package branchline

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// wheelScrollSpeed converts one wheel notch to world pixels.
const wheelScrollSpeed = 40.0

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

type pointerState struct {
	hoverNode        *Node
	screenX, screenY float64
	lastX, lastY     float64 // world position at the last evaluation
	seen             bool
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Only nodes with a HitShape are hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	return n.HitShape != nil && n.HitShape.Contains(lx, ly)
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes with hit shapes to buf. Skips Visible=false or Interactable=false
// subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Nodes with a singular transform (scaled to zero) cannot be hit.
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly, ok := n.WorldToLocal(worldX, worldY)
		if ok && nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// primaryCamera returns the camera used for screen-to-world conversion.
func (s *Scene) primaryCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// screenToWorld converts screen coordinates to world coordinates using the primary camera.
func screenToWorld(cam *Camera, sx, sy float64) (float64, float64) {
	if cam != nil {
		return cam.ScreenToWorld(sx, sy)
	}
	return sx, sy
}

// processInput is called from Scene.update to handle pointer and wheel
// input. Injected events take priority over the live mouse.
func (s *Scene) processInput(live bool) {
	cam := s.primaryCamera()
	if s.processInjectedInput(cam) {
		return
	}
	if !live {
		s.refreshHover(cam)
		return
	}

	if cam != nil {
		if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
			s.scrollBy(cam, -dx*wheelScrollSpeed, -dy*wheelScrollSpeed)
		}
	}

	mx, my := ebiten.CursorPosition()
	s.movePointer(cam, float64(mx), float64(my))
}

// movePointer records a new screen position and evaluates hover there.
func (s *Scene) movePointer(cam *Camera, sx, sy float64) {
	s.pointer.screenX, s.pointer.screenY = sx, sy
	wx, wy := screenToWorld(cam, sx, sy)
	s.processPointer(wx, wy)
}

// refreshHover re-evaluates hover under a stationary pointer: nodes may have
// moved, scrolled, or finished scaling in beneath it.
func (s *Scene) refreshHover(cam *Camera) {
	if s.pointer.seen {
		s.movePointer(cam, s.pointer.screenX, s.pointer.screenY)
	}
}

// scrollBy moves the primary camera. Vertical wheel motion also scrolls
// horizontally when the camera cannot move vertically, so a plain mouse wheel
// pans a wide timeline.
func (s *Scene) scrollBy(cam *Camera, dx, dy float64) {
	if cam == nil {
		return
	}
	prevY := cam.Y
	cam.ScrollBy(0, dy)
	if cam.Y == prevY && dx == 0 {
		dx = dy
	}
	cam.ScrollBy(dx, 0)
	if s.debug {
		debugf("scroll camera to (%.1f, %.1f)", cam.X, cam.Y)
	}
}

// processPointer updates the hover target for a pointer at world (wx, wy)
// and fires leave/enter/move callbacks.
func (s *Scene) processPointer(wx, wy float64) {
	ps := &s.pointer
	target := s.hitTest(wx, wy)

	if ps.hoverNode != nil && (ps.hoverNode.IsDisposed() || !ps.hoverNode.inTree()) {
		// Hovered node left the tree; drop it without a leave callback.
		ps.hoverNode = nil
	}

	// Fire hover leave before enter when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(EventPointerLeave, ps.hoverNode, wx, wy)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, wx, wy)
		}
		ps.hoverNode = target
	}

	if !ps.seen || wx != ps.lastX || wy != ps.lastY {
		if target != nil {
			s.firePointer(EventPointerMove, target, wx, wy)
		}
	}
	ps.lastX, ps.lastY = wx, wy
	ps.seen = true
}

// firePointer dispatches a pointer callback on node and forwards it to the
// ECS bridge.
func (s *Scene) firePointer(typ EventType, node *Node, wx, wy float64) {
	lx, ly, _ := node.WorldToLocal(wx, wy)
	ctx := PointerContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
	}
	switch typ {
	case EventPointerEnter:
		if node.OnPointerEnter != nil {
			node.OnPointerEnter(ctx)
		}
	case EventPointerLeave:
		if node.OnPointerLeave != nil {
			node.OnPointerLeave(ctx)
		}
	case EventPointerMove:
		if node.OnPointerMove != nil {
			node.OnPointerMove(ctx)
		}
	}

	e := InteractionEvent{
		Type: typ, NodeID: node.ID,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
	}
	if id, ok := node.UserData.(eventRef); ok {
		e.EventID, e.HasEvent = id.id, true
	}
	s.emit(e)
}

// HoveredNode returns the node currently under the pointer, if any.
func (s *Scene) HoveredNode() *Node {
	return s.pointer.hoverNode
}
