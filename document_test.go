package elements

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"
	"testing/fstest"
)

// newTestDoc returns a seeded 200x100 document with an in-memory asset FS and
// a discarded log.
func newTestDoc(t *testing.T) *Document {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.Window.Width, cfg.Window.Height = 200, 100
	doc := NewDocument(NewRegistry(), cfg)
	doc.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	doc.Loader().FS = fstest.MapFS{}
	t.Cleanup(doc.Close)
	return doc
}

// captureLog redirects the document log into the returned buffer.
func captureLog(doc *Document) *bytes.Buffer {
	var buf bytes.Buffer
	doc.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func mustCreate(t *testing.T, doc *Document, tag string, pairs ...string) *Element {
	t.Helper()
	e, err := doc.CreateElement(tag, NewAttributes(pairs...))
	if err != nil {
		t.Fatalf("CreateElement(%q): %v", tag, err)
	}
	return e
}

func mustAdd(t *testing.T, parent, child *Element) {
	t.Helper()
	if err := parent.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
}

func TestNewDocumentRoot(t *testing.T) {
	doc := newTestDoc(t)
	root := doc.Root()
	if root.Kind() != KindElement {
		t.Errorf("root kind = %v, want element", root.Kind())
	}
	if root.Width() != 200 || root.Height() != 100 {
		t.Errorf("root size = %dx%d, want 200x100", root.Width(), root.Height())
	}
	if root.IsMounted() {
		t.Error("root should mount on first Update")
	}
	doc.Update(0)
	if !root.IsMounted() {
		t.Error("root should be mounted after Update")
	}
}

func TestNewDocumentNilRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil registry")
		}
	}()
	NewDocument(nil, DefaultConfig())
}

func TestMountFiresOnce(t *testing.T) {
	doc := newTestDoc(t)
	e := mustCreate(t, doc, "section")

	var got []string
	e.On(EventLoad, func(*Event) { got = append(got, "load") })
	e.On(EventMount, func(*Event) { got = append(got, "mount") })
	mustAdd(t, doc.Root(), e)

	doc.Update(0)
	doc.Update(0)
	e.RemoveFromParent()
	mustAdd(t, doc.Root(), e)
	doc.Update(0)

	if len(got) != 2 || got[0] != "load" || got[1] != "mount" {
		t.Errorf("events = %v, want [load mount]", got)
	}
}

func TestMountPreOrder(t *testing.T) {
	doc := newTestDoc(t)
	sec := mustCreate(t, doc, "section")
	div := mustCreate(t, doc, "div")
	mustAdd(t, sec, div)

	var got []string
	for _, e := range []*Element{sec, div} {
		e.On(EventMount, func(ev *Event) { got = append(got, ev.Target.Name()) })
	}
	mustAdd(t, doc.Root(), sec)
	doc.Update(0)

	if len(got) != 2 || got[0] != "section" || got[1] != "div" {
		t.Errorf("mount order = %v, want [section div]", got)
	}
}

func TestDetachedElementNotMounted(t *testing.T) {
	doc := newTestDoc(t)
	e := mustCreate(t, doc, "section")
	doc.Update(0)
	if e.IsMounted() {
		t.Error("detached element should not mount")
	}
	if e.Image() != nil {
		t.Error("detached element should have no buffer")
	}
}

func TestPostRunsOnUpdate(t *testing.T) {
	doc := newTestDoc(t)

	ran := 0
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		doc.Post(func() { ran++ })
	}()
	wg.Wait()

	if ran != 0 {
		t.Fatal("posted callback ran before Update")
	}
	doc.Update(0)
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
	doc.Update(0)
	if ran != 1 {
		t.Errorf("ran = %d after second Update, want 1", ran)
	}
}

func TestPaintClearsDirty(t *testing.T) {
	doc := newTestDoc(t)
	e := mustCreate(t, doc, "element", "width", "4", "height", "4", "background", "#ff0000")
	mustAdd(t, doc.Root(), e)
	doc.Update(0)

	if !e.IsDirty() {
		t.Fatal("mounted element should be dirty")
	}
	doc.Paint()
	if e.IsDirty() {
		t.Error("Paint should clear dirty")
	}
	if e.Image() == nil {
		t.Fatal("expected a buffer after Paint")
	}
}

func TestBuildAppendsToRoot(t *testing.T) {
	doc := newTestDoc(t)
	built, err := doc.Build(`<section height="40"><uibutton>ok</uibutton></section><div></div>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(built) != 2 {
		t.Fatalf("built %d elements, want 2", len(built))
	}
	if doc.Root().NumChildren() != 2 || doc.Root().ChildAt(0) != built[0] {
		t.Error("built elements should be appended to the root in order")
	}
	btn := built[0].FirstChild()
	if btn == nil || btn.Kind() != KindButton {
		t.Fatalf("section child = %v, want uibutton", btn)
	}
	if txt := btn.FirstChild(); txt == nil || txt.NodeValue() != "ok" {
		t.Errorf("button text child = %v, want text node %q", txt, "ok")
	}
}

func TestBuildUnknownTag(t *testing.T) {
	doc := newTestDoc(t)
	_, err := doc.Build(`<section><blink></blink></section>`)
	if err == nil {
		t.Fatal("expected error for unknown tag")
	}
	if doc.Root().NumChildren() != 0 {
		t.Error("failed build should not attach anything")
	}
}

func TestBuildLayoutFromSrc(t *testing.T) {
	doc := newTestDoc(t)
	doc.Loader().FS = fstest.MapFS{
		"header.nml": {Data: []byte(`<div height="5">x</div><section></section>`)},
	}
	built, err := doc.Build(`<layout src="header.nml"></layout><uibutton></uibutton>`)
	if err != nil {
		t.Fatal(err)
	}
	var tags []string
	for _, e := range built {
		tags = append(tags, e.Name())
	}
	if len(tags) != 3 || tags[0] != "div" || tags[1] != "section" || tags[2] != "uibutton" {
		t.Errorf("built = %v, want [div section uibutton]", tags)
	}
}

func TestBuildLayoutInline(t *testing.T) {
	doc := newTestDoc(t)
	built, err := doc.Build(`<layout><![CDATA[<section label="inline"></section>]]></layout>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(built) != 1 || built[0].Kind() != KindSection {
		t.Fatalf("built = %v, want one section", built)
	}
	if v, _ := built[0].GetAttribute("label"); v != "inline" {
		t.Errorf("label = %q, want inline", v)
	}
}

func TestBuildLayoutMissingSrc(t *testing.T) {
	doc := newTestDoc(t)
	buf := captureLog(doc)
	built, err := doc.Build(`<layout src="nope.nml"></layout>`)
	if err != nil {
		t.Fatalf("missing layout should be soft, got %v", err)
	}
	if len(built) != 0 {
		t.Errorf("built = %v, want nothing", built)
	}
	if !bytes.Contains(buf.Bytes(), []byte("failed to load resource")) {
		t.Errorf("expected load failure in log, got %q", buf.String())
	}
}

func TestBuildLayoutRecursionLimit(t *testing.T) {
	doc := newTestDoc(t)
	doc.Loader().FS = fstest.MapFS{
		"loop.nml": {Data: []byte(`<layout src="loop.nml"></layout>`)},
	}
	if _, err := doc.Build(`<layout src="loop.nml"></layout>`); err == nil {
		t.Error("expected error for self-including layout")
	}
}

func TestBuildFragmentDetached(t *testing.T) {
	doc := newTestDoc(t)
	built, err := doc.BuildFragment(`<div></div>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(built) != 1 || built[0].Parent() != nil {
		t.Error("fragment elements should be detached")
	}
	if doc.Root().NumChildren() != 0 {
		t.Error("BuildFragment should not touch the root")
	}
}

func TestLookup(t *testing.T) {
	doc := newTestDoc(t)
	sec := mustCreate(t, doc, "section")
	div := mustCreate(t, doc, "div")
	mustAdd(t, sec, div)

	if got, ok := doc.Lookup(sec.ID); !ok || got != sec {
		t.Errorf("Lookup(%d) = %v, %v, want section", sec.ID, got, ok)
	}
	if got, ok := doc.Lookup(doc.Root().ID); !ok || got != doc.Root() {
		t.Error("root should be found by ID")
	}
	if _, ok := doc.Lookup(9999); ok {
		t.Error("unknown ID should not be found")
	}

	sec.Dispose()
	if got, ok := doc.Lookup(sec.ID); ok || got != nil {
		t.Errorf("Lookup after Dispose = %v, %v, want nil, false", got, ok)
	}
	if _, ok := doc.Lookup(div.ID); ok {
		t.Error("disposed descendant should not be found")
	}
}

func TestLookupPerDocument(t *testing.T) {
	a, b := newTestDoc(t), newTestDoc(t)
	e := mustCreate(t, a, "div")
	if got, ok := b.Lookup(e.ID); ok && got == e {
		t.Error("element should only be found in its own document")
	}
}
