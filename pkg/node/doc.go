// Package node provides the DOM-like value type rendered by Viewy.
//
// A Node is an in-memory HTML element: a tag, a set of classes, ordered
// inline style pairs, attributes, optional raw text and ordered children.
// Widgets build and mutate nodes during the build phase; a page then walks
// the finished tree read-only and writes it as HTML.
//
// # Kinds
//
// Three kinds of nodes exist:
//
//   - KindNormal renders as <tag ...>children</tag>
//   - KindSelfClosing renders as <tag .../>
//   - KindComment renders as <!--text-->
//
// # Raw text
//
// Text set with SetText replaces the children of a normal node and is
// written verbatim. The renderer never escapes it; widgets that place
// untrusted content in a node must escape it first (see EscapeText).
//
// # Root nodes
//
// Overlays such as popovers and popups must escape the stacking context of
// the widget that opens them. They are attached with AddRootNode and
// gathered for the whole tree with CollectRootNodes, so the page can write
// them at the top level of <body>.
package node
