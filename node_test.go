package branchline

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewStrokeDefaults(t *testing.T) {
	pts := Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}
	n := NewStroke("line", pts, 4, ColorAccent)
	assertNodeDefaults(t, n, "line", NodeTypeStroke)
	if len(n.Points) != 2 || n.StrokeWidth != 4 || n.PathLength != 1 {
		t.Errorf("stroke fields = %v, %v, %v", n.Points, n.StrokeWidth, n.PathLength)
	}
	if n.Color != ColorAccent {
		t.Errorf("Color = %v, want accent", n.Color)
	}
}

func TestNewCircleDefaults(t *testing.T) {
	n := NewCircle("dot", 5, ColorAccent)
	assertNodeDefaults(t, n, "dot", NodeTypeCircle)
	if n.Radius != 5 {
		t.Errorf("Radius = %v, want 5", n.Radius)
	}
}

func TestNewCardDefaults(t *testing.T) {
	n := NewCard("card", CardContent{Title: "a", Detail: "b"})
	assertNodeDefaults(t, n, "card", NodeTypeCard)
	if n.RenderLayer != cardRenderLayer {
		t.Errorf("RenderLayer = %d, want %d", n.RenderLayer, cardRenderLayer)
	}
	if n.Card == nil || n.Card.Title != "a" {
		t.Errorf("Card = %+v", n.Card)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %v, want %v", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs collide: %d", a.ID)
	}
}

// --- Tree operations ---

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewCircle("child", 1, ColorWhite)
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if len(parent.Children()) != 1 || parent.Children()[0] != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children()) != 0 {
		t.Error("child still listed under the old parent")
	}
	if child.Parent != b || len(b.Children()) != 1 {
		t.Error("child not moved to the new parent")
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)
	kids := parent.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != c {
		t.Errorf("children after remove = %v", kids)
	}
	if b.Parent != nil {
		t.Error("removed child keeps its parent")
	}

	// Not a child: no-op.
	parent.RemoveChild(b)
	if len(parent.Children()) != 2 {
		t.Error("removing a non-child changed the list")
	}
}

func TestRemoveFromParentDetached(t *testing.T) {
	n := NewContainer("loose")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("loose node gained a parent")
	}
}

func TestDispose(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	child := NewCircle("child", 1, ColorWhite)
	child.OnUpdate = func(float64) {}
	parent.AddChild(child)
	s.Root().AddChild(parent)

	parent.Dispose()
	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("subtree not disposed")
	}
	if len(s.Root().Children()) != 0 {
		t.Error("disposed node still attached")
	}
	if child.OnUpdate != nil || child.Parent != nil {
		t.Error("disposed child keeps callbacks or parent")
	}
}

func TestInTree(t *testing.T) {
	s := NewScene()
	group := NewContainer("group")
	leaf := NewContainer("leaf")
	group.AddChild(leaf)

	if leaf.inTree() {
		t.Error("leaf of a detached group reported in tree")
	}
	s.Root().AddChild(group)
	if !leaf.inTree() {
		t.Error("leaf not in tree after attaching its group")
	}
}

// --- Bounds ---

func TestLocalBounds(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want Rect
	}{
		{"circle", NewCircle("c", 5, ColorWhite), Rect{X: -5, Y: -5, Width: 10, Height: 10}},
		{"stroke", NewStroke("s", Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}, 4, ColorWhite),
			Rect{X: -2, Y: -2, Width: 14, Height: 4}},
		{"card", NewCard("k", CardContent{}), Rect{X: -CardWidth / 2, Y: CardOffsetY, Width: CardWidth, Height: cardHeight()}},
		{"container", &Node{Type: NodeTypeContainer, Extent: Rect{X: 0, Y: -40, Width: 100, Height: 80}},
			Rect{X: 0, Y: -40, Width: 100, Height: 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.localBounds(); got != tt.want {
				t.Errorf("localBounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWorldBounds(t *testing.T) {
	s := NewScene()
	group := NewContainer("group")
	group.SetPosition(100, 50)
	c := NewCircle("c", 5, ColorWhite)
	c.SetPosition(10, 10)
	c.SetScale(2, 2)
	group.AddChild(c)
	s.Root().AddChild(group)
	updateWorldTransform(s.root, identityTransform, 1, false)

	b := c.WorldBounds()
	assertNear(t, "x", b.X, 100)
	assertNear(t, "y", b.Y, 50)
	assertNear(t, "w", b.Width, 20)
	assertNear(t, "h", b.Height, 20)
}
