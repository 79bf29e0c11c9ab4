package branchline

import (
	"errors"
	"fmt"
)

// ErrAlreadyMounted is returned by Mount when the timeline is already in a scene.
var ErrAlreadyMounted = errors.New("branchline: timeline already mounted")

// Stroke widths and opacity of the timeline lines.
const (
	mainLineWidth   = 6.0
	mainLineOpacity = 0.6
	branchWidth     = 4.0
)

// eventRef tags event nodes so pointer events can be traced back to the
// timeline event they belong to.
type eventRef struct{ id int }

// Option configures a Timeline.
type Option func(*Timeline)

// WithLayout replaces the default layout metrics.
func WithLayout(l Layout) Option {
	return func(t *Timeline) { t.layout = l }
}

// WithVisibilityThreshold sets the fraction of the timeline that must be on
// screen before it animates in.
func WithVisibilityThreshold(threshold float64) Option {
	return func(t *Timeline) { t.threshold = threshold }
}

// WithHoverHandler registers fn to run whenever the hovered event changes.
// hovered is false when the hover was cleared.
func WithHoverHandler(fn func(id int, hovered bool)) Option {
	return func(t *Timeline) { t.onHover = fn }
}

// WithVisibleHandler registers fn to run once when the timeline first
// scrolls into view.
func WithVisibleHandler(fn func()) Option {
	return func(t *Timeline) { t.onVisible = fn }
}

// element groups the nodes and animations belonging to one event.
type element struct {
	placement Placement

	branch *Node // nil for main-line events
	dot    *Node // nil for main-line events
	node   *Node
	card   *Node

	branchAnim *Animation
	dotAnim    *Animation
	nodeAnim   *Animation
	cardAnim   *Animation
}

// Timeline is the branching timeline component: a node subtree holding the
// main line, branch curves, event nodes and hover cards, plus the state that
// drives them. Nothing animates until the timeline's bounds scroll into the
// scene viewport; after that the visible state never reverts while mounted.
type Timeline struct {
	layout     Layout
	events     []Event
	placements []Placement
	bounds     Rect
	threshold  float64

	root     *Node
	mainLine *Node
	mainAnim *Animation
	elements []*element
	byID     map[int]*element

	scene    *Scene
	observer *IntersectionObserver
	mounted  bool

	visible  bool
	hovered  int
	hasHover bool

	onHover   func(id int, hovered bool)
	onVisible func()
}

// New builds a timeline for events. A nil slice uses DefaultEvents; an empty
// non-nil slice yields an empty timeline. The slice is copied.
func New(events []Event, opts ...Option) (*Timeline, error) {
	if events == nil {
		events = DefaultEvents()
	}
	if err := ValidateEvents(events); err != nil {
		return nil, fmt.Errorf("new timeline: %w", err)
	}
	t := &Timeline{
		layout:    DefaultLayout(),
		events:    append([]Event(nil), events...),
		threshold: DefaultVisibilityThreshold,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.build()
	return t, nil
}

// build creates the node subtree. All animated nodes start hidden.
func (t *Timeline) build() {
	l := t.layout
	t.placements = l.Place(t.events)
	t.bounds = l.CanvasBounds(t.events)

	t.root = NewContainer("timeline")
	t.root.Extent = t.bounds
	t.root.Interactable = true
	t.root.OnUpdate = t.update

	if from, to, ok := l.MainLine(len(t.events)); ok {
		t.mainLine = NewStroke("main-line", Polyline{from, to}, mainLineWidth,
			ColorAccent.WithAlpha(mainLineOpacity))
		t.mainAnim = NewAnimation(t.mainLine, MainLinePreset(l))
		t.root.AddChild(t.mainLine)
	}

	t.elements = make([]*element, 0, len(t.placements))
	t.byID = make(map[int]*element, len(t.placements))
	for _, p := range t.placements {
		el := &element{placement: p}
		id := p.Event.ID

		if p.HasBranch {
			el.branch = NewStroke(fmt.Sprintf("branch-%d", id),
				p.Curve.Flatten(defaultCurveSegments, nil), branchWidth, ColorAccent)
			el.branchAnim = NewAnimation(el.branch, BranchPreset(p.Delay))
			t.root.AddChild(el.branch)

			el.dot = NewCircle(fmt.Sprintf("dot-%d", id), l.DotRadius, ColorAccent)
			el.dot.SetPosition(p.Anchor.X, p.Anchor.Y)
			el.dotAnim = NewAnimation(el.dot, NodePreset(p.Delay))
			t.root.AddChild(el.dot)
		}

		el.node = NewCircle(fmt.Sprintf("event-%d", id), l.NodeRadius, ColorAccent)
		el.node.SetPosition(p.Endpoint.X, p.Endpoint.Y)
		el.node.Interactable = true
		el.node.HitShape = HitCircle{Radius: l.NodeRadius}
		el.node.UserData = eventRef{id: id}
		el.node.OnPointerEnter = func(PointerContext) { t.SetHovered(id) }
		el.node.OnPointerLeave = func(PointerContext) { t.ClearHovered(id) }
		el.nodeAnim = NewAnimation(el.node, NodePreset(p.Delay))
		t.root.AddChild(el.node)

		el.card = NewCard(fmt.Sprintf("card-%d", id), CardContent{Title: p.Event.Title, Detail: p.Event.Date})
		el.card.SetPosition(p.Endpoint.X, p.Endpoint.Y)
		el.card.Visible = false
		el.cardAnim = NewAnimation(el.card, CardPreset())
		t.root.AddChild(el.card)

		t.elements = append(t.elements, el)
		t.byID[id] = el
	}
}

// Mount attaches the timeline to scene and starts watching its bounds against
// the viewport. Mounting resets the timeline to its hidden state.
func (t *Timeline) Mount(scene *Scene) error {
	if t.mounted {
		return ErrAlreadyMounted
	}
	t.reset()
	t.scene = scene
	t.mounted = true
	scene.Root().AddChild(t.root)
	t.observer = scene.NewIntersectionObserver(t.threshold, t.handleIntersection)
	t.observer.Observe(t.root)
	scene.addTagger(t)
	if scene.debug {
		debugf("timeline mounted: %d events, bounds %.0fx%.0f", len(t.events), t.bounds.Width, t.bounds.Height)
	}
	return nil
}

// Unmount disconnects the visibility observer, drops any hover and detaches
// the timeline from its scene. No hover event is emitted. It is safe to call
// at any time, including before the timeline was ever seen, and more than
// once.
func (t *Timeline) Unmount() {
	if !t.mounted {
		return
	}
	t.mounted = false
	if t.hasHover {
		t.hideCard(t.byID[t.hovered])
		t.hasHover = false
		t.hovered = 0
	}
	if t.observer != nil {
		t.observer.Disconnect()
		t.observer = nil
	}
	t.root.RemoveFromParent()
	t.scene.removeTagger(t)
	if t.scene.debug {
		debugf("timeline unmounted")
	}
}

// reset returns every animation and the hover and visible state to their
// initial values.
func (t *Timeline) reset() {
	t.visible = false
	t.hasHover = false
	t.hovered = 0
	if t.mainAnim != nil {
		t.mainAnim.Start(VariantHidden)
	}
	for _, el := range t.elements {
		for _, a := range el.anims() {
			a.Start(VariantHidden)
		}
		el.card.Visible = false
		el.cardAnim.Start(VariantHidden)
	}
}

// handleIntersection latches visible on the first intersecting entry.
func (t *Timeline) handleIntersection(e IntersectionEntry) {
	if !t.mounted || t.visible || !e.IsIntersecting {
		return
	}
	t.visible = true
	if t.mainAnim != nil {
		t.mainAnim.Start(VariantVisible)
	}
	for _, el := range t.elements {
		for _, a := range el.anims() {
			a.Start(VariantVisible)
		}
	}
	if t.scene.debug {
		debugf("timeline visible (ratio %.2f)", e.Ratio)
	}
	t.scene.emit(InteractionEvent{Type: EventVisible, NodeID: t.root.ID})
	if t.onVisible != nil {
		t.onVisible()
	}
}

// anims returns the entrance animations of an element; the card fade is
// driven by hover instead.
func (el *element) anims() []*Animation {
	out := make([]*Animation, 0, 3)
	if el.branchAnim != nil {
		out = append(out, el.branchAnim)
	}
	if el.dotAnim != nil {
		out = append(out, el.dotAnim)
	}
	return append(out, el.nodeAnim)
}

// update advances all animations. It runs as the root node's OnUpdate.
func (t *Timeline) update(dt float64) {
	step := float32(dt)
	if t.mainAnim != nil {
		t.mainAnim.Update(step)
	}
	for _, el := range t.elements {
		if el.branchAnim != nil {
			el.branchAnim.Update(step)
		}
		if el.dotAnim != nil {
			el.dotAnim.Update(step)
		}
		el.nodeAnim.Update(step)
		el.cardAnim.Update(step)
	}
}

// SetHovered makes id the hovered event, hiding any other card. Unknown IDs
// are ignored.
func (t *Timeline) SetHovered(id int) {
	el, ok := t.byID[id]
	if !ok || !t.mounted {
		return
	}
	if t.hasHover && t.hovered == id {
		return
	}
	if t.hasHover {
		t.hideCard(t.byID[t.hovered])
	}
	t.hovered, t.hasHover = id, true
	el.card.Visible = true
	el.cardAnim.Start(VariantVisible)
	t.hoverChanged(el.node, id, true)
}

// ClearHovered clears the hover if id is the hovered event. A stale leave for
// an event that is no longer hovered does nothing.
func (t *Timeline) ClearHovered(id int) {
	if !t.mounted || !t.hasHover || t.hovered != id {
		return
	}
	el := t.byID[id]
	t.hideCard(el)
	t.hasHover = false
	t.hovered = 0
	t.hoverChanged(el.node, id, false)
}

func (t *Timeline) hideCard(el *element) {
	el.card.Visible = false
	el.cardAnim.Start(VariantHidden)
}

func (t *Timeline) hoverChanged(node *Node, id int, hovered bool) {
	if t.scene == nil {
		return
	}
	if t.scene.debug {
		debugf("hover event %d: %v", id, hovered)
	}
	t.scene.emit(InteractionEvent{Type: EventHoverChanged, NodeID: node.ID, EventID: id, HasEvent: hovered})
	if t.onHover != nil {
		t.onHover(id, hovered)
	}
}

// stateTag names the timeline state for screenshot files: "hidden",
// "visible", or "visible-hover<id>" while an event is hovered.
func (t *Timeline) stateTag() string {
	if !t.visible {
		return "hidden"
	}
	if t.hasHover {
		return fmt.Sprintf("visible-hover%d", t.hovered)
	}
	return "visible"
}

// Visible reports whether the timeline has scrolled into view since mount.
func (t *Timeline) Visible() bool {
	return t.visible
}

// Hovered returns the hovered event ID, if any.
func (t *Timeline) Hovered() (int, bool) {
	return t.hovered, t.hasHover
}

// Mounted reports whether the timeline is attached to a scene.
func (t *Timeline) Mounted() bool {
	return t.mounted
}

// Events returns a copy of the timeline's events.
func (t *Timeline) Events() []Event {
	return append([]Event(nil), t.events...)
}

// Placements returns the resolved geometry of every event. The returned
// slice MUST NOT be mutated.
func (t *Timeline) Placements() []Placement {
	return t.placements
}

// Layout returns the layout metrics in use.
func (t *Timeline) Layout() Layout {
	return t.layout
}

// Bounds returns the canvas area covered by the timeline, in its local space.
func (t *Timeline) Bounds() Rect {
	return t.bounds
}

// Root returns the timeline's container node. Position it to move the whole
// timeline within the scene.
func (t *Timeline) Root() *Node {
	return t.root
}

// CardNode returns the detail card node of event id, or nil.
func (t *Timeline) CardNode(id int) *Node {
	if el, ok := t.byID[id]; ok {
		return el.card
	}
	return nil
}

// EventNode returns the hoverable node of event id, or nil.
func (t *Timeline) EventNode(id int) *Node {
	if el, ok := t.byID[id]; ok {
		return el.node
	}
	return nil
}
