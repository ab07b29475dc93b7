package elements

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"weak"

	"github.com/phanxgames/elements/nml"
)

// Document is the top-level object that owns the element tree, the tag
// registry, the resource loader and the single-threaded update loop.
//
// All tree operations run on the goroutine that calls Update. The only
// cross-goroutine entry point is Post, used by background image decodes.
type Document struct {
	root   *Element
	reg    *Registry
	cfg    Config
	loader *Loader
	rng    *rand.Rand
	store  EventStore
	debug  bool

	// Logger receives soft-failure diagnostics.
	Logger *slog.Logger

	// nodes indexes live elements by ID. Entries go on Dispose; an element
	// collected without Dispose is dropped on its next Lookup.
	nodes          map[NodeID]weak.Pointer[Element]
	faces          faceCache
	nextID         NodeID
	nextListenerID uint32
	pendingMount   bool
	tweens         []*Tween

	// Posted callbacks and in-flight background work.
	mu       sync.Mutex
	posted   []func()
	inflight sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc

	// Pointer and scripted input
	pressed     *Element
	injectQueue []syntheticPointerEvent
	script      *Script
}

// NewDocument creates a document using reg for tag lookups. The root element
// is a generic element sized to cfg.Window.
func NewDocument(reg *Registry, cfg Config) *Document {
	if reg == nil {
		panic("elements: nil registry")
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	seed1, seed2 := cfg.Seed, cfg.Seed
	if cfg.Seed == 0 {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}
	assets := cfg.Assets
	if assets == "" {
		assets = "."
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Document{
		reg:    reg,
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed1, seed2)),
		debug:  cfg.Debug,
		Logger: logger,
		nodes:  make(map[NodeID]weak.Pointer[Element]),
		faces:  make(faceCache),
		ctx:    ctx,
		cancel: cancel,
	}
	d.loader = &Loader{FS: os.DirFS(assets), Logger: logger}
	d.root = newElement(d, KindElement, NewAttributes())
	d.root.SetSize(cfg.Window.Width, cfg.Window.Height)
	d.pendingMount = true
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// Registry returns the registry the document creates elements with.
func (d *Document) Registry() *Registry {
	return d.reg
}

// Config returns the configuration the document was created with.
func (d *Document) Config() Config {
	return d.cfg
}

// Loader returns the document's resource loader.
func (d *Document) Loader() *Loader {
	return d.loader
}

// SetLogger replaces the logger used by the document and its loader.
func (d *Document) SetLogger(l *slog.Logger) {
	d.Logger = l
	d.loader.Logger = l
}

// SetEventStore sets the optional event bridge.
func (d *Document) SetEventStore(store EventStore) {
	d.store = store
}

// SetDebugMode enables or disables debug checks on tree operations.
func (d *Document) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// CreateElement creates a detached element through the registry.
func (d *Document) CreateElement(tag string, attrs Attributes) (*Element, error) {
	return d.reg.Create(d, tag, attrs)
}

// Lookup returns the element created by d with the given ID, or false when it
// was disposed or never existed.
func (d *Document) Lookup(id NodeID) (*Element, bool) {
	p, ok := d.nodes[id]
	if !ok {
		return nil, false
	}
	e := p.Value()
	if e == nil {
		delete(d.nodes, id)
		return nil, false
	}
	return e, true
}

func (d *Document) nextNodeID() NodeID {
	d.nextID++
	return d.nextID
}

// Post queues fn to run on the update loop. Safe to call from any goroutine.
func (d *Document) Post(fn func()) {
	d.mu.Lock()
	d.posted = append(d.posted, fn)
	d.mu.Unlock()
}

func (d *Document) drainPosted() {
	d.mu.Lock()
	fns := d.posted
	d.posted = nil
	d.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Settle blocks until background work started so far has finished, then runs
// the callbacks it posted. Useful in tests and offline rendering.
func (d *Document) Settle() {
	d.inflight.Wait()
	d.drainPosted()
}

// Close cancels background work. Completions that arrive later are dropped.
func (d *Document) Close() {
	d.cancel()
}

// Update runs one step of the loop: posted callbacks, scripted and injected
// input, mounting of newly attached elements, then tweens advanced by dt
// seconds.
func (d *Document) Update(dt float32) {
	d.drainPosted()
	if d.script != nil {
		d.script.step(d)
	}
	d.processInjectedInput()
	if d.pendingMount {
		d.pendingMount = false
		d.mountTree(d.root)
	}
	d.updateTweens(dt)
}

// mountTree mounts e and its descendants in document order.
func (d *Document) mountTree(e *Element) {
	e.mount()
	// children may be added by mount hooks; index loop sees them
	for i := 0; i < len(e.children); i++ {
		d.mountTree(e.children[i])
	}
}

// mount is the one-time transition from constructed to mounted: the surface
// becomes usable, "load" fires, the kind hook runs, then "mount" fires.
func (e *Element) mount() {
	if e.mounted || e.disposed {
		return
	}
	e.mounted = true
	if !kinds[e.kind].noSurface {
		e.surface.context(e.width, e.height)
		e.dirty = true
	}
	e.Fire(EventLoad, nil)
	if hook := kinds[e.kind].mount; hook != nil {
		hook(e)
	}
	e.Fire(EventMount, nil)
}

// IsMounted reports whether the element has been mounted.
func (e *Element) IsMounted() bool {
	return e.mounted
}

// Paint repaints every dirty mounted element reachable from the root.
func (d *Document) Paint() {
	paintTree(d.root)
}

func paintTree(e *Element) {
	e.paint()
	for _, c := range e.children {
		paintTree(c)
	}
}

// Build parses markup and appends the resulting elements to the root.
// Top-level <layout> nodes are replaced by the markup their src (or inline
// text) resolves to.
func (d *Document) Build(markup string) ([]*Element, error) {
	built, err := d.BuildFragment(markup)
	if err != nil {
		return nil, err
	}
	for _, e := range built {
		if err := d.root.AddChild(e); err != nil {
			return nil, err
		}
	}
	return built, nil
}

// BuildFragment parses markup into detached elements without attaching them.
func (d *Document) BuildFragment(markup string) ([]*Element, error) {
	nodes, err := nml.Parse(markup)
	if err != nil {
		return nil, err
	}
	return d.buildNodes(nodes, 0)
}

const maxLayoutDepth = 8

func (d *Document) buildNodes(nodes []*nml.Node, depth int) ([]*Element, error) {
	var out []*Element
	for _, n := range nodes {
		if n.IsText() {
			out = append(out, d.CreateTextNode(n.Text))
			continue
		}
		if n.Tag == "layout" {
			if depth >= maxLayoutDepth {
				return nil, fmt.Errorf("layout nested deeper than %d", maxLayoutDepth)
			}
			sub, err := nml.Parse(d.loader.Load(n))
			if err != nil {
				return nil, fmt.Errorf("layout %q: %w", layoutName(n), err)
			}
			built, err := d.buildNodes(sub, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, built...)
			continue
		}
		var attrs Attributes
		for _, a := range n.Attrs {
			attrs.Set(a.Name, a.Value)
		}
		e, err := d.CreateElement(n.Tag, attrs)
		if err != nil {
			return nil, err
		}
		if !e.IsAutonomous() {
			children, err := d.buildNodes(n.Children, depth)
			if err != nil {
				return nil, err
			}
			for _, c := range children {
				if err := e.AddChild(c); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func layoutName(n *nml.Node) string {
	if src, ok := n.GetAttribute("src"); ok {
		return src
	}
	return "inline"
}
