package branchline

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node     *Node
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// nodeIDCounter is a plain counter (single-threaded, no atomic).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. A single flat struct is used for all node
// types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Scale applies around the node origin.
	X, Y   float64
	ScaleX float64
	ScaleY float64

	// Computed during traversal.
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Ordering: higher layers draw later.
	RenderLayer uint8

	// Extent is the local area of a container node, measured by intersection
	// observers. Visual nodes derive their bounds from their geometry.
	Extent Rect

	// Metadata
	UserData any

	Color Color

	// Stroke fields (NodeTypeStroke). Points are in local space.
	Points      Polyline
	StrokeWidth float64
	PathLength  float64 // visible fraction of the path, in [0, 1]
	trimBuf     []Vec2

	// Circle fields (NodeTypeCircle)
	Radius float64

	// Card fields (NodeTypeCard)
	Card *CardContent

	// Hit testing
	HitShape HitShape

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnUpdate       func(dt float64)

	disposed bool
	isRoot   bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.PathLength = 1
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewStroke creates a stroke node drawing the polyline points with the given
// width. PathLength trims it from the first point.
func NewStroke(name string, points Polyline, width float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeStroke, Points: points, StrokeWidth: width}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewCircle creates a filled circle of the given radius centered on the node.
func NewCircle(name string, radius float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle, Radius: radius}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewCard creates a detail card node. The card is laid out below and centered
// on the node origin.
func NewCard(name string, content CardContent) *Node {
	n := &Node{Name: name, Type: NodeTypeCard, Card: &content}
	nodeDefaults(n)
	n.RenderLayer = cardRenderLayer
	return n
}

// --- Tree operations ---

// AddChild appends child to this node's children. If child already has a
// parent it is removed from that parent first.
func (n *Node) AddChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "AddChild")
		debugCheckDisposed(child, "AddChild")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	child.transformDirty = true
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node. No-op if child is not a child.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.Parent = nil
			return
		}
	}
}

// RemoveFromParent detaches this node from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// Dispose detaches the node and releases its subtree. Disposed nodes must not
// be reused.
func (n *Node) Dispose() {
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	for _, c := range n.children {
		c.Parent = nil
		c.dispose()
	}
	n.children = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnPointerMove = nil
	n.OnUpdate = nil
	n.HitShape = nil
	n.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// localBounds returns the node's visual extent in local space.
func (n *Node) localBounds() Rect {
	switch n.Type {
	case NodeTypeContainer:
		return n.Extent
	case NodeTypeStroke:
		b := n.Points.Bounds()
		hw := n.StrokeWidth / 2
		return Rect{X: b.X - hw, Y: b.Y - hw, Width: b.Width + n.StrokeWidth, Height: b.Height + n.StrokeWidth}
	case NodeTypeCircle:
		return Rect{X: -n.Radius, Y: -n.Radius, Width: 2 * n.Radius, Height: 2 * n.Radius}
	case NodeTypeCard:
		if n.Card != nil {
			return n.Card.frame()
		}
	}
	return Rect{}
}

// WorldBounds returns the axis-aligned world-space bounds of the node's own
// visual extent (children excluded), as of the last transform update.
func (n *Node) WorldBounds() Rect {
	return transformRect(n.worldTransform, n.localBounds())
}
