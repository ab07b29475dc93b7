package elements

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Background color.Color
}

// RunConfigFrom builds a RunConfig from the document configuration.
func RunConfigFrom(cfg Config) RunConfig {
	return RunConfig{Title: cfg.Window.Title, Width: cfg.Window.Width, Height: cfg.Window.Height, Background: color.White}
}

// Run opens a window and drives doc until the window closes: pointer input
// and Document.Update every tick, Document.Paint and compositing every frame.
func Run(doc *Document, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	defer doc.Close()
	return ebiten.RunGame(NewGame(doc, cfg))
}

// Game adapts a Document to ebiten.Game. Use it directly to embed a document
// in an existing ebiten loop.
type Game struct {
	doc      *Document
	cfg      RunConfig
	textures map[*Element]*texture
	seen     map[*Element]bool
}

// texture is the GPU copy of one element buffer.
type texture struct {
	img *ebiten.Image
	gen uint64
}

// NewGame returns an ebiten.Game for doc.
func NewGame(doc *Document, cfg RunConfig) *Game {
	return &Game{
		doc:      doc,
		cfg:      cfg,
		textures: make(map[*Element]*texture),
		seen:     make(map[*Element]bool),
	}
}

// Update feeds mouse input to the document, then advances it one tick.
func (g *Game) Update() error {
	if !g.doc.InjectPending() {
		x, y := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.doc.PointerDown(x, y)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.doc.PointerUp(x, y)
		}
	}
	g.doc.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Draw repaints dirty elements and composites the tree onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	g.doc.Paint()
	clear(g.seen)
	root := g.doc.Root()
	ox, oy := root.offset()
	g.drawTree(screen, root, float64(ox), float64(oy), 1)
	for e, tex := range g.textures {
		if !g.seen[e] {
			tex.img.Deallocate()
			delete(g.textures, e)
		}
	}
}

// Layout reports the configured size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) drawTree(screen *ebiten.Image, e *Element, x, y, alpha float64) {
	if !e.mounted || e.kind == KindText {
		return
	}
	if e.hasOpacity {
		alpha *= e.opacity
	}
	if img := g.upload(e); img != nil && alpha > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(img, op)
	}
	for _, c := range e.children {
		cx, cy := c.offset()
		g.drawTree(screen, c, x+float64(cx), y+float64(cy), alpha)
	}
}

// upload returns e's texture, refreshing it when the buffer changed.
func (g *Game) upload(e *Element) *ebiten.Image {
	src := e.surface.rgba
	if src == nil {
		return nil
	}
	g.seen[e] = true
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tex := g.textures[e]
	if tex != nil && (tex.img.Bounds().Dx() != w || tex.img.Bounds().Dy() != h) {
		tex.img.Deallocate()
		tex = nil
	}
	if tex == nil {
		tex = &texture{img: ebiten.NewImage(w, h), gen: e.surface.gen - 1}
		g.textures[e] = tex
	}
	if tex.gen != e.surface.gen {
		tex.img.WritePixels(src.Pix)
		tex.gen = e.surface.gen
	}
	return tex.img
}
