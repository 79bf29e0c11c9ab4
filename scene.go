package branchline

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction and timeline events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	NodeID   uint32
	EventID  int  // timeline event involved, when HasEvent
	HasEvent bool // false for hover cleared and pointer events off timeline nodes
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, cameras, input
// state, intersection observers and render buffers.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cameras []*Camera
	screen  Rect // last known screen size, the viewport when no camera exists

	observers []*IntersectionObserver

	// Render state
	commands []RenderCommand

	// Input state
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent

	updateFunc func() error

	// Automation
	frame           uint64 // updates run so far
	testRunner      *TestRunner
	screenshotQueue []screenshotRequest
	taggers         []stateTagger
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	root.isRoot = true
	return &Scene{
		root:          root,
		ScreenshotDir: "screenshots",
		commands:      make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetScreenSize records the screen size. Without a camera, the screen is the
// viewport intersection observers measure against.
func (s *Scene) SetScreenSize(width, height float64) {
	s.screen = Rect{Width: width, Height: height}
}

// Viewport returns the world-space area currently on screen: the primary
// camera's visible bounds, or the screen rectangle when there is no camera.
func (s *Scene) Viewport() Rect {
	if len(s.cameras) > 0 {
		return s.cameras[0].VisibleBounds()
	}
	return s.screen
}

// Update runs the user update callback, processes input, advances animations
// and cameras, and checks intersection observers.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.update(1.0/float64(ebiten.TPS()), true)
	return nil
}

// SetUpdateFunc registers a callback run at the start of every Update.
// Returning an error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// update runs one frame. live selects whether the real mouse is polled when
// no injected event is pending.
func (s *Scene) update(dt float64, live bool) {
	s.frame++
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	updateNodes(s.root, dt)
	for _, cam := range s.cameras {
		cam.update(float32(dt))
	}

	// Refresh world transforms so hit testing and observers see this frame's
	// animated positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput(live)
	s.checkObservers()
}

// updateNodes runs OnUpdate callbacks depth-first.
func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for i := 0; i < len(n.children); i++ {
		updateNodes(n.children[i], dt)
	}
}

// checkObservers evaluates every connected observer against the viewport.
// Callbacks may disconnect observers, so iterate over a snapshot.
func (s *Scene) checkObservers() {
	if len(s.observers) == 0 {
		return
	}
	viewport := s.Viewport()
	snapshot := append([]*IntersectionObserver(nil), s.observers...)
	for _, o := range snapshot {
		if o.connected {
			o.check(viewport)
		}
	}
}

func (s *Scene) removeObserver(o *IntersectionObserver) {
	for i, c := range s.observers {
		if c == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Observers returns the number of connected intersection observers.
func (s *Scene) Observers() int {
	return len(s.observers)
}

// Draw traverses the scene tree, emits render commands, sorts them, and
// submits them to the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.screen = Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	if len(s.cameras) == 0 {
		s.drawWithCamera(screen, nil)
	} else {
		for _, cam := range s.cameras {
			vp := cam.Viewport
			viewportImg := screen.SubImage(image.Rect(
				int(vp.X), int(vp.Y),
				int(vp.X+vp.Width), int(vp.Y+vp.Height),
			)).(*ebiten.Image)
			s.drawWithCamera(viewportImg, cam)
		}
	}

	s.flushScreenshots(screen)
}

// drawWithCamera renders the scene from a camera's perspective.
// If cam is nil, uses identity view (no camera).
func (s *Scene) drawWithCamera(target *ebiten.Image, cam *Camera) {
	view := identityTransform
	if cam != nil {
		view = cam.computeViewMatrix()
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.buildCommands(view)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	s.submitCommands(target)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// The first camera is the primary camera used for input and visibility.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// emit forwards an event to the ECS bridge, if any.
func (s *Scene) emit(e InteractionEvent) {
	if s.store != nil {
		s.store.EmitEvent(e)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, child count warnings are printed, and per-frame timing
// stats and timeline state changes are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
