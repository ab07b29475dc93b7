package elements

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// imageState is one resolution of an image element's src. A new src replaces
// the state, so late completions of an older load are ignored.
type imageState struct {
	src    string
	loaded bool
	img    image.Image
}

// imageInit starts at 0x0 unless a size is declared; the decoded image sets
// the real geometry.
func imageInit(e *Element) {
	e.width = declaredInt(e.attributes, "width", 0)
	e.height = declaredInt(e.attributes, "height", 0)
	e.img = &imageState{}
	if src, ok := e.attributes.Get("src"); ok {
		e.setSrc(src)
	}
}

func setImageSrc(e *Element, src string) error {
	e.setSrc(src)
	return nil
}

// Src returns the image source.
func (e *Element) Src() string {
	if e.img == nil {
		return ""
	}
	return e.img.src
}

// Loaded reports whether the image resource has been decoded and applied.
func (e *Element) Loaded() bool {
	return e.img != nil && e.img.loaded
}

// setSrc starts decoding src in the background and returns immediately. The
// completion is posted to the document loop, so it always runs after the
// caller (and the constructor) returned.
func (e *Element) setSrc(src string) {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	st := &imageState{src: src}
	e.img = st
	if src == "" {
		return
	}
	d := e.doc
	ctx, cancel := context.WithCancel(d.ctx)
	e.cancel = cancel
	fsys := d.loader.FS
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		img, err := decodeImage(fsys, src)
		if ctx.Err() != nil {
			return
		}
		d.Post(func() { e.completeImage(st, img, err) })
	}()
}

func (e *Element) completeImage(st *imageState, img image.Image, err error) {
	if e.disposed || e.img != st {
		return
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if err != nil {
		e.doc.Logger.Error("image load failed", "src", st.src, "err", err)
		return
	}
	st.loaded, st.img = true, img
	e.Fire(EventImageLoad, img)
	b := img.Bounds()
	e.SetSize(b.Dx(), b.Dy())
	e.RequestPaint()
}

func decodeImage(fsys fs.FS, src string) (image.Image, error) {
	f, err := fsys.Open(fsPath(src))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

func imagePaint(e *Element, dc *gg.Context) {
	if e.Loaded() {
		dc.DrawImage(e.img.img, 0, 0)
	}
}
