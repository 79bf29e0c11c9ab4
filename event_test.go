package branchline

import (
	"errors"
	"testing"
)

func TestEventDirection(t *testing.T) {
	tests := []struct {
		branch int
		want   int
		main   bool
	}{
		{0, 0, true},
		{1, 1, false},
		{3, 1, false},
		{-1, -1, false},
		{-2, -1, false},
	}
	for _, tt := range tests {
		e := Event{Branch: tt.branch}
		if got := e.Direction(); got != tt.want {
			t.Errorf("Direction(%d) = %d, want %d", tt.branch, got, tt.want)
		}
		if got := e.OnMainLine(); got != tt.main {
			t.Errorf("OnMainLine(%d) = %v, want %v", tt.branch, got, tt.main)
		}
	}
}

func TestDefaultEvents(t *testing.T) {
	events := DefaultEvents()
	if len(events) != 7 {
		t.Fatalf("DefaultEvents = %d events, want 7", len(events))
	}
	if err := ValidateEvents(events); err != nil {
		t.Errorf("DefaultEvents invalid: %v", err)
	}
	var up, down, main int
	for _, e := range events {
		switch e.Direction() {
		case 1:
			up++
		case -1:
			down++
		default:
			main++
		}
	}
	if up == 0 || down == 0 || main == 0 {
		t.Errorf("DefaultEvents should cover every direction: up %d down %d main %d", up, down, main)
	}
	events[0].Title = "changed"
	if DefaultEvents()[0].Title == "changed" {
		t.Error("DefaultEvents returned shared storage")
	}
}

func TestValidateEvents(t *testing.T) {
	if err := ValidateEvents(nil); err != nil {
		t.Errorf("nil events: %v", err)
	}
	err := ValidateEvents([]Event{{ID: 1}, {ID: 2}, {ID: 1}})
	if !errors.Is(err, ErrDuplicateEventID) {
		t.Errorf("err = %v, want ErrDuplicateEventID", err)
	}
}
