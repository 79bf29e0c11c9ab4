package branchline

import "testing"

func TestHitShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape HitShape
		x, y  float64
		want  bool
	}{
		{"circle center", HitCircle{Radius: 12}, 0, 0, true},
		{"circle edge", HitCircle{Radius: 12}, 12, 0, true},
		{"circle outside", HitCircle{Radius: 12}, 9, 9, false},
		{"offset circle", HitCircle{CenterX: 10, CenterY: 10, Radius: 2}, 11, 11, true},
		{"rect inside", HitRect{Width: 10, Height: 5}, 5, 2, true},
		{"rect corner", HitRect{Width: 10, Height: 5}, 10, 5, true},
		{"rect outside", HitRect{Width: 10, Height: 5}, 11, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// hitScene returns a scene with one interactable circle at (100, 100).
func hitScene() (*Scene, *Node) {
	s := NewScene()
	n := NewCircle("target", 10, ColorAccent)
	n.SetPosition(100, 100)
	n.Interactable = true
	n.HitShape = HitCircle{Radius: 10}
	s.Root().AddChild(n)
	updateWorldTransform(s.root, identityTransform, 1, false)
	return s, n
}

func TestHitTest(t *testing.T) {
	s, n := hitScene()
	if got := s.hitTest(105, 100); got != n {
		t.Errorf("hitTest inside = %v, want target", got)
	}
	if got := s.hitTest(200, 200); got != nil {
		t.Errorf("hitTest outside = %v, want nil", got)
	}

	n.Visible = false
	if s.hitTest(100, 100) != nil {
		t.Error("invisible node was hit")
	}
	n.Visible = true

	n.Interactable = false
	if s.hitTest(100, 100) != nil {
		t.Error("non-interactable node was hit")
	}
	n.Interactable = true

	n.SetScale(0, 0)
	updateWorldTransform(s.root, identityTransform, 1, false)
	if s.hitTest(100, 100) != nil {
		t.Error("zero-scale node was hit")
	}
}

func TestHitTestTopmost(t *testing.T) {
	s, _ := hitScene()
	above := NewCircle("above", 10, ColorAccent)
	above.SetPosition(100, 100)
	above.Interactable = true
	above.HitShape = HitCircle{Radius: 10}
	s.Root().AddChild(above)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if got := s.hitTest(100, 100); got != above {
		t.Errorf("hitTest = %v, want the later sibling", got)
	}
}

func TestPointerEnterLeave(t *testing.T) {
	s, n := hitScene()
	var log []string
	n.OnPointerEnter = func(PointerContext) { log = append(log, "enter") }
	n.OnPointerLeave = func(PointerContext) { log = append(log, "leave") }
	n.OnPointerMove = func(ctx PointerContext) {
		log = append(log, "move")
		if ctx.Node != n {
			t.Errorf("move ctx node = %v", ctx.Node)
		}
	}

	s.InjectMove(100, 100)
	s.update(1.0/60, false)
	if s.HoveredNode() != n {
		t.Fatal("node not hovered after moving over it")
	}
	// Stationary pointer: no further callbacks.
	s.update(1.0/60, false)

	s.InjectMove(300, 300)
	s.update(1.0/60, false)
	if s.HoveredNode() != nil {
		t.Error("node still hovered after moving away")
	}

	want := []string{"enter", "move", "leave"}
	if len(log) != len(want) {
		t.Fatalf("callbacks = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("callbacks = %v, want %v", log, want)
			break
		}
	}
}

func TestInjectHoverSpreadsFrames(t *testing.T) {
	s, n := hitScene()
	entered := 0
	n.OnPointerEnter = func(PointerContext) { entered++ }

	s.InjectHover(0, 0, 100, 100, 4)
	if len(s.injectQueue) != 4 {
		t.Fatalf("queued %d events, want 4", len(s.injectQueue))
	}
	for i := 0; i < 3; i++ {
		s.update(1.0/60, false)
	}
	if entered != 0 {
		t.Error("entered before the path reached the node")
	}
	s.update(1.0/60, false)
	if entered != 1 {
		t.Errorf("entered %d times, want 1", entered)
	}
}

func TestInjectScrollRefreshesHover(t *testing.T) {
	s, n := hitScene()
	s.NewCamera(Rect{Width: 800, Height: 600})
	left := 0
	n.OnPointerLeave = func(PointerContext) { left++ }

	s.InjectMove(100, 100)
	s.update(1.0/60, false)
	if s.HoveredNode() != n {
		t.Fatal("node not hovered")
	}

	// The pointer stays put on screen while the world scrolls under it.
	s.InjectScroll(0, 200)
	s.update(1.0/60, false)
	if s.HoveredNode() != nil || left != 1 {
		t.Errorf("after scroll: hovered %v, leaves %d", s.HoveredNode(), left)
	}
	if cam := s.Cameras()[0]; cam.Y != 500 {
		t.Errorf("camera Y = %v, want 500", cam.Y)
	}
}

func TestHoverDropsDetachedNode(t *testing.T) {
	s, n := hitScene()
	left := 0
	n.OnPointerLeave = func(PointerContext) { left++ }

	s.InjectMove(100, 100)
	s.update(1.0/60, false)
	n.RemoveFromParent()
	s.update(1.0/60, false)
	if s.HoveredNode() != nil {
		t.Error("detached node still hovered")
	}
	if left != 0 {
		t.Error("leave fired for a detached node")
	}
}

func TestScrollByPansHorizontallyWhenPinned(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{Width: 2000, Height: 600})

	s.scrollBy(cam, 0, 100)
	if cam.Y != 300 || cam.X != 500 {
		t.Errorf("camera at (%v, %v), want (500, 300)", cam.X, cam.Y)
	}
}

func TestTimelineHoverThroughPointer(t *testing.T) {
	store := &recordingStore{}
	s, _, tl := mountedTimeline(t, []Event{{ID: 1, Title: "a"}, {ID: 2, Title: "b", Branch: 1}}, 0)
	s.SetEntityStore(store)
	step(s, 1)
	step(s, 5*60)

	// Event 2's node sits at (340, 400).
	s.InjectMove(340, 400)
	s.update(1.0/60, false)
	if id, ok := tl.Hovered(); !ok || id != 2 {
		t.Fatalf("Hovered = %d, %v; want 2", id, ok)
	}
	if !tl.CardNode(2).Visible {
		t.Error("card 2 hidden while hovered")
	}

	enters := store.ofType(EventPointerEnter)
	if len(enters) != 1 || !enters[0].HasEvent || enters[0].EventID != 2 {
		t.Errorf("pointer enter events = %+v", enters)
	}

	s.InjectMove(10, 10)
	s.update(1.0/60, false)
	if _, ok := tl.Hovered(); ok {
		t.Error("hover not cleared after leaving the node")
	}
}

func TestHiddenNodesCannotBeHovered(t *testing.T) {
	s, _, tl := mountedTimeline(t, []Event{{ID: 1}, {ID: 2, Branch: 1}}, 2000)
	s.InjectMove(340, 2400)
	s.update(1.0/60, false)
	if _, ok := tl.Hovered(); ok {
		t.Error("a node that has not animated in was hovered")
	}
}
