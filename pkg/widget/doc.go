// Package widget defines the contract every Viewy widget satisfies and the
// capability mixins that give widgets uniform, chainable modifiers.
//
// # Declaring a widget
//
// A widget embeds Base, parameterized by its own pointer type, plus one
// mixin per capability it supports, and binds them in its constructor:
//
//	type Badge struct {
//	    widget.Base[*Badge]
//	    widget.Classable[*Badge]
//	    widget.Colorable[*Badge]
//	    label string
//	}
//
//	func NewBadge(label string) *Badge {
//	    b := &Badge{label: label}
//	    b.Init(b, "Badge", node.New("span"), &b.Classable, &b.Colorable)
//	    return b
//	}
//
//	func (b *Badge) Render() {
//	    b.Node().AddClass("badge").SetText(node.EscapeText(b.label))
//	}
//
// Every modifier returns the concrete widget, so calls chain:
//
//	NewBadge("new").AddClass("badge--accent").Color("var(--on-accent)")
//
// # Rendering
//
// ToNode runs the widget's Render method once and returns the finished node.
// Calling ToNode again returns the same node without rendering twice.
//
// # Style registry
//
// Widget packages register their stylesheet and script from an init
// function. The asset compiler reads the registry once; after the first
// read it is sealed and further registrations are rejected.
package widget
