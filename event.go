package branchline

import (
	"errors"
	"fmt"
)

// ErrDuplicateEventID is returned when two events share an ID.
var ErrDuplicateEventID = errors.New("branchline: duplicate event id")

// Event is one entry on the timeline. Branch 0 sits on the main line,
// positive values branch toward larger y and negative values toward smaller
// y. In Ebitengine's y-down screen space positive branches draw below the
// line.
type Event struct {
	ID     int    `yaml:"id" toml:"id"`
	Title  string `yaml:"title" toml:"title"`
	Date   string `yaml:"date" toml:"date"`
	Branch int    `yaml:"branch" toml:"branch"`
}

// Direction returns -1, 0 or 1 following the sign of Branch.
func (e Event) Direction() int {
	switch {
	case e.Branch > 0:
		return 1
	case e.Branch < 0:
		return -1
	default:
		return 0
	}
}

// OnMainLine reports whether the event has no branch.
func (e Event) OnMainLine() bool {
	return e.Branch == 0
}

// DefaultEvents returns the built-in sample sequence used when no events are
// supplied. It exercises every branch direction.
func DefaultEvents() []Event {
	return []Event{
		{ID: 1, Title: "Root Timeline", Date: "Start", Branch: 0},
		{ID: 2, Title: "Branching Event", Date: "Split Occurred", Branch: 1},
		{ID: 3, Title: "Divergence", Date: "New Growth", Branch: -1},
		{ID: 4, Title: "Correction", Date: "Path Adjusted", Branch: 1},
		{ID: 5, Title: "Correction", Date: "Path Adjusted", Branch: -1},
		{ID: 6, Title: "Further Growth", Date: "Expanded", Branch: 1},
		{ID: 7, Title: "Main Path", Date: "Continued", Branch: 0},
	}
}

// ValidateEvents checks that every event ID is unique.
func ValidateEvents(events []Event) error {
	seen := make(map[int]int, len(events))
	for i, e := range events {
		if j, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: %d at index %d and %d", ErrDuplicateEventID, e.ID, j, i)
		}
		seen[e.ID] = i
	}
	return nil
}
