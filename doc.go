// Package elements is a retained-mode UI element tree for [Ebitengine].
//
// A [Document] owns a tree of [Element] values built from NML markup, a small
// XML-like layout language. Every element owns a pixel surface it repaints
// when dirty; the host composites the surfaces each frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg, _ := elements.LoadConfig("elements.yaml")
//	doc := elements.NewDocument(elements.NewRegistry(), cfg)
//	doc.Build(`<section height="120" label="Hello"><uibutton>OK</uibutton></section>`)
//	elements.Run(doc, elements.RunConfigFrom(cfg))
//
// To embed a document in an existing game, drive it yourself with
// [Document.Update] and [Document.Paint], or wrap it with [NewGame].
//
// # Element tree
//
// Tags resolve to kinds through a [Registry]: element (alias none), textnode,
// canvas, uibutton, section, div and img. Text between tags becomes text
// nodes; a text node pushes its value into its parent's text buffer when it
// mounts and whenever its value changes.
//
// Elements attached under [Document.Root] are mounted on the next Update:
// the surface is allocated, "load" fires, the kind hook runs, then "mount"
// fires. Mounting happens once per element.
//
//	btn, _ := doc.CreateElement("uibutton", elements.NewAttributes("left", "10"))
//	doc.Root().AddChild(btn)
//	btn.SetTextContent("Press me")
//	btn.On(elements.EventMouseUp, func(ev *elements.Event) { ... })
//
// # Attributes
//
// Declared attributes are fixed at construction and serialized by
// [Element.NMLContent]. [Element.SetAttribute] reflects a value onto the typed
// property (width, height, left, top, opacity, position, cursor, style
// colors, img src) and records it as a computed attribute.
//
// # Resources
//
// A <layout src="..."> node in markup is replaced by the markup the
// [Loader] resolves. Images decode in the background and apply their natural
// size when the decode completes on the update loop.
//
// # Events
//
// Lifecycle and text events fire on the element only. Pointer events
// (mousedown, mouseup, click) bubble to ancestors until a listener calls
// [Event.StopPropagation]. Install an [EventStore] (see the ecs subpackage)
// to mirror every event into an ECS world.
//
// [Ebitengine]: https://ebitengine.org
package elements
