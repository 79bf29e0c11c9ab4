package branchline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hover-first", "hover-first"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"Event7", "Event7"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueRecordsFrame(t *testing.T) {
	s := NewScene()
	s.Screenshot("a")
	step(s, 3)
	s.Screenshot("b")
	want := []screenshotRequest{{label: "a", frame: 0}, {label: "b", frame: 3}}
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != want[0] || s.screenshotQueue[1] != want[1] {
		t.Errorf("queue = %+v, want %+v", s.screenshotQueue, want)
	}
}

func TestScreenshotName(t *testing.T) {
	tests := []struct {
		name string
		req  screenshotRequest
		tags []string
		want string
	}{
		{"no timeline", screenshotRequest{label: "start", frame: 7}, nil, "000007_start.png"},
		{"one timeline", screenshotRequest{label: "hover first", frame: 240}, []string{"visible-hover2"}, "000240_hover_first_visible-hover2.png"},
		{"two timelines", screenshotRequest{frame: 1}, []string{"hidden", "visible"}, "000001_unlabeled_hidden_visible.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screenshotName(tt.req, tt.tags); got != tt.want {
				t.Errorf("screenshotName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenshotTagsFollowTimeline(t *testing.T) {
	s, _, tl := mountedTimeline(t, DefaultEvents(), 2000)
	if tags := s.stateTags(); len(tags) != 1 || tags[0] != "hidden" {
		t.Fatalf("tags before scrolling = %v, want [hidden]", tags)
	}

	tl.Root().SetPosition(0, 0)
	step(s, 1)
	if tags := s.stateTags(); tags[0] != "visible" {
		t.Errorf("tags once visible = %v, want [visible]", tags)
	}

	tl.SetHovered(5)
	if tags := s.stateTags(); tags[0] != "visible-hover5" {
		t.Errorf("tags while hovered = %v, want [visible-hover5]", tags)
	}

	tl.Unmount()
	if tags := s.stateTags(); len(tags) != 0 {
		t.Errorf("tags after unmount = %v, want none", tags)
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff})
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := got.At(1, 1).RGBA(); r>>8 != 0x4f {
		t.Errorf("pixel red = %#x, want 0x4f", r>>8)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
