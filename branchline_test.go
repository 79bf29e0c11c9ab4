package branchline

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#f8861e", "#f8861e", false},
		{"f8861e", "#f8861e", false},
		{"#fff", "#ffffff", false},
		{" #1F2937 ", "#1f2937", false},
		{"#12345", "", true},
		{"#zzzzzz", "", true},
	}
	for _, tt := range tests {
		c, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got := c.Hex(); got != tt.want {
			t.Errorf("ParseHexColor(%q).Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAccentColor(t *testing.T) {
	if got := ColorAccent.Hex(); got != "#f8861e" {
		t.Errorf("accent = %s, want #f8861e", got)
	}
}

func TestColorToRGBAPremultiplied(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("toRGBA = %+v, want %+v", got, want)
	}
}

func TestColorWithAlphaMultiplies(t *testing.T) {
	c := ColorAccent.WithAlpha(0.6).WithAlpha(0.5)
	assertNear(t, "alpha", c.A, 0.3)
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name string
		b    Rect
		area float64
	}{
		{"contained", Rect{X: 10, Y: 10, Width: 20, Height: 20}, 400},
		{"overlap", Rect{X: 50, Y: 50, Width: 100, Height: 100}, 2500},
		{"disjoint", Rect{X: 200, Y: 0, Width: 10, Height: 10}, 0},
		{"touching", Rect{X: 100, Y: 0, Width: 10, Height: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersection(tt.b).Area(); got != tt.area {
				t.Errorf("intersection area = %v, want %v", got, tt.area)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	got := Rect{X: 0, Y: 0, Width: 10, Height: 10}.Union(Rect{X: -5, Y: 5, Width: 10, Height: 20})
	want := Rect{X: -5, Y: 0, Width: 15, Height: 25}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventHoverChanged.String() != "hover-changed" || EventVisible.String() != "visible" {
		t.Error("unexpected EventType names")
	}
	if EventType(99).String() != "unknown" {
		t.Error("out of range EventType should be unknown")
	}
}
