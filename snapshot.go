package elements

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Composite flattens every mounted element buffer into one image the size of
// the root, honoring layout bounds and opacity. Call Paint first for current
// content.
func (d *Document) Composite() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(d.root.width, 1), max(d.root.height, 1)))
	ox, oy := d.root.offset()
	compositeTree(dst, d.root, ox, oy, 1)
	return dst
}

func compositeTree(dst *image.RGBA, e *Element, x, y int, alpha float64) {
	if !e.mounted || e.kind == KindText {
		return
	}
	if e.hasOpacity {
		alpha *= e.opacity
	}
	if src := e.surface.rgba; src != nil && alpha > 0 {
		r := image.Rect(x, y, x+e.width, y+e.height)
		mask := image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})
		draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
	}
	for _, c := range e.children {
		cx, cy := c.offset()
		compositeTree(dst, c, x+cx, y+cy, alpha)
	}
}

// SaveSnapshot paints and composites the document and writes it as a PNG to
// dir with a timestamped, label-derived file name. Returns the file path.
func (d *Document) SaveSnapshot(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	d.Paint()
	img := d.Composite()
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
