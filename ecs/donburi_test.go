package ecs

import (
	"slices"
	"testing"

	"github.com/phanxgames/elements"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []elements.EventRecord
	EventRecordType.Subscribe(world, func(w donburi.World, r elements.EventRecord) {
		received = append(received, r)
	})

	store.EmitEvent(elements.EventRecord{Name: elements.EventMouseDown, NodeID: 42, Tag: "uibutton", X: 100, Y: 200})
	store.EmitEvent(elements.EventRecord{Name: elements.EventTextChanged, NodeID: 7, Tag: "div", Data: "hello"})

	// Events are queued until processed.
	EventRecordType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	r0 := received[0]
	if r0.Name != elements.EventMouseDown || r0.NodeID != 42 || r0.X != 100 || r0.Y != 200 {
		t.Errorf("event 0: %+v", r0)
	}
	r1 := received[1]
	if r1.Name != elements.EventTextChanged || r1.Data != "hello" {
		t.Errorf("event 1: %+v", r1)
	}
}

func TestDonburiStore_DocumentEvents(t *testing.T) {
	world := donburi.NewWorld()
	cfg := elements.DefaultConfig()
	cfg.Seed = 1
	doc := elements.NewDocument(elements.NewRegistry(), cfg)
	doc.SetEventStore(NewDonburiStore(world))

	var names []string
	EventRecordType.Subscribe(world, func(w donburi.World, r elements.EventRecord) {
		names = append(names, r.Tag+":"+r.Name)
	})

	if _, err := doc.Build(`<div width="20" height="20"></div>`); err != nil {
		t.Fatal(err)
	}
	doc.Update(0)
	events.ProcessAllEvents(world)

	want := []string{"element:load", "element:mount", "div:load", "div:mount"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	EventRecordType.Subscribe(world, func(w donburi.World, r elements.EventRecord) {
		count1++
	})
	EventRecordType.Subscribe(world, func(w donburi.World, r elements.EventRecord) {
		count2++
	})

	store.EmitEvent(elements.EventRecord{Name: elements.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_LookupFromRecord(t *testing.T) {
	world := donburi.NewWorld()
	cfg := elements.DefaultConfig()
	cfg.Seed = 1
	doc := elements.NewDocument(elements.NewRegistry(), cfg)
	defer doc.Close()
	doc.SetEventStore(NewDonburiStore(world))

	built, err := doc.Build(`<uibutton>go</uibutton>`)
	if err != nil {
		t.Fatal(err)
	}
	var found []*elements.Element
	EventRecordType.Subscribe(world, func(w donburi.World, r elements.EventRecord) {
		if r.Name != elements.EventMount {
			return
		}
		if e, ok := doc.Lookup(r.NodeID); ok {
			found = append(found, e)
		}
	})
	doc.Update(0)
	EventRecordType.ProcessEvents(world)

	if !slices.Contains(found, built[0]) {
		t.Errorf("mounted elements = %v, want the button among them", found)
	}
}
