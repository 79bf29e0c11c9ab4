package ecs

import (
	"github.com/phanxgames/branchline"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type every branchline event is
// published on. Besides raw pointer enter, leave and move events it carries
// the timeline events:
//
//   - EventVisible, once per mount, when a timeline first scrolls into view
//     (NodeID is the timeline root);
//   - EventHoverChanged, when the hovered timeline event changes. EventID
//     names the event; HasEvent is false when the hover was cleared.
//
// Pointer events on timeline nodes also set EventID and HasEvent.
var InteractionEventType = events.NewEventType[branchline.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) branchline.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event branchline.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// TimelineHandlers are the callbacks SubscribeTimeline routes timeline events
// to. Nil handlers are skipped.
type TimelineHandlers struct {
	// Visible runs when a timeline scrolls into view.
	Visible func(rootID uint32)
	// Hover runs when event id becomes hovered (hovered true) or stops being
	// hovered (hovered false).
	Hover func(id int, hovered bool)
}

// SubscribeTimeline subscribes h to the timeline events of world, ignoring
// raw pointer events. Delivery happens during ProcessEvents.
func SubscribeTimeline(world donburi.World, h TimelineHandlers) {
	InteractionEventType.Subscribe(world, func(_ donburi.World, e branchline.InteractionEvent) {
		switch e.Type {
		case branchline.EventVisible:
			if h.Visible != nil {
				h.Visible(e.NodeID)
			}
		case branchline.EventHoverChanged:
			if h.Hover != nil {
				h.Hover(e.EventID, e.HasEvent)
			}
		}
	})
}
