package branchline

// DefaultVisibilityThreshold is the fraction of a target's area that must be
// inside the viewport for it to count as intersecting.
const DefaultVisibilityThreshold = 0.2

// IntersectionEntry describes one observation of a target against the
// viewport.
type IntersectionEntry struct {
	Target         *Node
	Bounds         Rect    // target world bounds
	RootBounds     Rect    // viewport world bounds
	Ratio          float64 // visible fraction of the target area, in [0, 1]
	IsIntersecting bool
}

type observation struct {
	node    *Node
	checked bool
	last    bool
}

// IntersectionObserver watches nodes against the scene viewport and reports
// when they cross its threshold. Observers are checked once per Scene.Update;
// the callback runs on the first check after Observe and whenever the
// intersecting state changes. After Disconnect the callback never runs again.
type IntersectionObserver struct {
	scene     *Scene
	threshold float64
	callback  func(IntersectionEntry)
	targets   []observation
	connected bool
}

// NewIntersectionObserver registers an observer with the scene. threshold is
// clamped to [0, 1]; a threshold of 0 counts any overlap.
func (s *Scene) NewIntersectionObserver(threshold float64, fn func(IntersectionEntry)) *IntersectionObserver {
	o := &IntersectionObserver{
		scene:     s,
		threshold: clamp01(threshold),
		callback:  fn,
		connected: true,
	}
	s.observers = append(s.observers, o)
	return o
}

// Threshold returns the observer's threshold.
func (o *IntersectionObserver) Threshold() float64 {
	return o.threshold
}

// Observe starts watching n. Observing the same node twice is a no-op.
func (o *IntersectionObserver) Observe(n *Node) {
	if !o.connected || n == nil {
		return
	}
	for _, t := range o.targets {
		if t.node == n {
			return
		}
	}
	o.targets = append(o.targets, observation{node: n})
}

// Unobserve stops watching n.
func (o *IntersectionObserver) Unobserve(n *Node) {
	for i, t := range o.targets {
		if t.node == n {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			return
		}
	}
}

// Connected reports whether the observer is still registered.
func (o *IntersectionObserver) Connected() bool {
	return o.connected
}

// Disconnect stops all observation and unregisters from the scene.
func (o *IntersectionObserver) Disconnect() {
	if !o.connected {
		return
	}
	o.connected = false
	o.targets = nil
	o.callback = nil
	o.scene.removeObserver(o)
}

// check evaluates every target against viewport.
func (o *IntersectionObserver) check(viewport Rect) {
	for i := 0; i < len(o.targets) && o.connected; i++ {
		t := &o.targets[i]
		if t.node.IsDisposed() {
			continue
		}
		entry := intersect(t.node, viewport, o.threshold)
		if t.checked && entry.IsIntersecting == t.last {
			continue
		}
		t.checked = true
		t.last = entry.IsIntersecting
		if o.callback != nil {
			o.callback(entry)
		}
	}
}

// intersect computes the entry for n against viewport. Targets with zero area
// never intersect.
func intersect(n *Node, viewport Rect, threshold float64) IntersectionEntry {
	b := n.WorldBounds()
	e := IntersectionEntry{Target: n, Bounds: b, RootBounds: viewport}
	area := b.Area()
	if area == 0 || !n.attached() {
		return e
	}
	e.Ratio = clamp01(b.Intersection(viewport).Area() / area)
	e.IsIntersecting = e.Ratio > 0 && e.Ratio >= threshold
	return e
}

// inTree reports whether n is connected to a scene root.
func (n *Node) inTree() bool {
	p := n
	for p.Parent != nil {
		p = p.Parent
	}
	return p.isRoot
}

// attached reports whether n is visible and reachable through visible
// ancestors; detached subtrees are not measurable.
func (n *Node) attached() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
		if p.Parent == nil {
			return p.isRoot
		}
	}
	return false
}
