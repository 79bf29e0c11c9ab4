package branchline

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotRequest is a capture queued by Screenshot.
type screenshotRequest struct {
	label string
	frame uint64
}

// stateTagger is implemented by components that describe their state in
// screenshot file names. Mounted timelines register themselves.
type stateTagger interface {
	stateTag() string
}

// Screenshot queues a PNG capture of the frame drawn at the end of this
// update. The file lands in ScreenshotDir as
//
//	<frame>_<label>_<state>.png
//
// where frame is the update count and state describes each mounted timeline,
// e.g. "000240_hover-first_visible-hover2.png". Frame numbers keep scripted
// runs reproducible.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, screenshotRequest{label: label, frame: s.frame})
}

// flushScreenshots writes every queued capture of screen. Called at the end
// of Scene.Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		debugf("screenshot: %v", err)
		return
	}

	img := captureFrame(screen)
	tags := s.stateTags()
	for _, req := range s.screenshotQueue {
		path := filepath.Join(s.ScreenshotDir, screenshotName(req, tags))
		if err := writePNG(path, img); err != nil {
			debugf("screenshot: %v", err)
			continue
		}
		if s.debug {
			debugf("screenshot %s", path)
		}
	}
}

// captureFrame copies screen into an RGBA image. Ebitengine pixels are
// premultiplied, matching image.RGBA, so no conversion is needed.
func captureFrame(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// stateTags collects the tags of every registered component in mount order.
func (s *Scene) stateTags() []string {
	tags := make([]string, 0, len(s.taggers))
	for _, t := range s.taggers {
		tags = append(tags, t.stateTag())
	}
	return tags
}

func (s *Scene) addTagger(t stateTagger) {
	s.taggers = append(s.taggers, t)
}

func (s *Scene) removeTagger(t stateTagger) {
	for i, c := range s.taggers {
		if c == t {
			s.taggers = append(s.taggers[:i], s.taggers[i+1:]...)
			return
		}
	}
}

// screenshotName builds the file name for req with the given state tags.
func screenshotName(req screenshotRequest, tags []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%06d_%s", req.frame, sanitizeLabel(req.label))
	for _, tag := range tags {
		b.WriteByte('_')
		b.WriteString(sanitizeLabel(tag))
	}
	b.WriteString(".png")
	return b.String()
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	if err := pngEncoder.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write screenshot %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
