package branchline

// syntheticPointerEvent represents a single injected pointer or scroll event.
// Screen coordinates are used and converted to world coordinates via the
// primary camera, identical to real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	scroll           bool
	scrollX, scrollY float64 // world pixels, only when scroll is set
}

// InjectMove queues a pointer move to the given screen coordinates. The event
// is consumed on the next frame's input processing.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectHover queues a move along a straight path from (fromX, fromY) to
// (toX, toY) spread over frames frames (minimum 1).
func (s *Scene) InjectHover(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// InjectScroll queues a camera scroll by (dx, dy) world pixels.
func (s *Scene) InjectScroll(dx, dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		scroll: true, scrollX: dx, scrollY: dy,
	})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real mouse input should be skipped).
func (s *Scene) processInjectedInput(cam *Camera) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.scroll {
		if cam != nil {
			cam.ScrollBy(evt.scrollX, evt.scrollY)
		}
		s.refreshHover(cam)
		return true
	}

	s.movePointer(cam, evt.screenX, evt.screenY)
	return true
}
