package node

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindNormal      Kind = iota // <div>...</div>
	KindSelfClosing             // <input/>
	KindComment                 // <!--text-->
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindSelfClosing:
		return "SelfClosing"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// StylePair is one inline CSS declaration.
type StylePair struct {
	Name  string
	Value string
}

// Noder is anything that can be converted into a Node.
// Widgets implement it by finalizing themselves and returning their node.
type Noder interface {
	ToNode() *Node
}

// Node is the DOM-like tree value rendered to HTML.
//
// The zero value is not usable; create nodes with New, NewSelfClosing,
// NewComment or Default.
type Node struct {
	// ID is the opaque identifier of the node. It is stable for the
	// lifetime of the node and used as the equality key for root nodes.
	ID string

	// Kind selects how the node is rendered.
	Kind Kind

	// Tag is the element name for normal and self-closing nodes.
	Tag string

	// Children are rendered in order when no text is set.
	Children []*Node

	text    string
	hasText bool

	classes    []string
	classIndex map[string]struct{}

	styles []StylePair
	attrs  map[string]string

	rootNodes []*Node
	rootIndex map[string]struct{}
}

// New creates a normal node with the given tag.
func New(tag string) *Node {
	return &Node{
		ID:   newID(),
		Kind: KindNormal,
		Tag:  tag,
	}
}

// NewSelfClosing creates a self-closing node with the given tag.
func NewSelfClosing(tag string) *Node {
	return &Node{
		ID:   newID(),
		Kind: KindSelfClosing,
		Tag:  tag,
	}
}

// NewComment creates a comment node.
func NewComment(text string) *Node {
	return &Node{
		ID:      newID(),
		Kind:    KindComment,
		text:    text,
		hasText: true,
	}
}

// Default creates an empty div.
func Default() *Node {
	return New("div")
}

// ToNode implements Noder.
func (n *Node) ToNode() *Node {
	return n
}

// SetTag changes the element name. Void elements become self-closing and
// other tags become normal. Comment nodes are left untouched.
func (n *Node) SetTag(tag string) *Node {
	if n.Kind == KindComment {
		return n
	}
	n.Tag = tag
	if IsVoidElement(tag) {
		n.Kind = KindSelfClosing
	} else {
		n.Kind = KindNormal
	}
	return n
}

// =============================================================================
// Text
// =============================================================================

// SetText sets raw text that replaces the children when rendered.
// The text is written verbatim.
func (n *Node) SetText(text string) *Node {
	n.text = text
	n.hasText = true
	return n
}

// ClearText removes the text so children are rendered again.
func (n *Node) ClearText() *Node {
	if n.Kind == KindComment {
		return n
	}
	n.text = ""
	n.hasText = false
	return n
}

// Text returns the raw text and whether it is set.
func (n *Node) Text() (string, bool) {
	return n.text, n.hasText
}

// =============================================================================
// Classes
// =============================================================================

// AddClass adds a class. Adding an existing class is a no-op.
// Values containing spaces add each token separately.
func (n *Node) AddClass(class string) *Node {
	if n.Kind == KindComment {
		return n
	}
	for _, token := range strings.Fields(class) {
		if _, ok := n.classIndex[token]; ok {
			continue
		}
		if n.classIndex == nil {
			n.classIndex = make(map[string]struct{})
		}
		n.classIndex[token] = struct{}{}
		n.classes = append(n.classes, token)
	}
	return n
}

// RemoveClass removes a class if present.
func (n *Node) RemoveClass(class string) *Node {
	for _, token := range strings.Fields(class) {
		if _, ok := n.classIndex[token]; !ok {
			continue
		}
		delete(n.classIndex, token)
		for i, c := range n.classes {
			if c == token {
				n.classes = append(n.classes[:i], n.classes[i+1:]...)
				break
			}
		}
	}
	return n
}

// HasClass reports whether the class is set.
func (n *Node) HasClass(class string) bool {
	_, ok := n.classIndex[class]
	return ok
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	out := make([]string, len(n.classes))
	copy(out, n.classes)
	return out
}

// =============================================================================
// Styles
// =============================================================================

// SetStyle appends an inline style declaration. When the same property is
// set more than once, the last value wins on render.
func (n *Node) SetStyle(name, value string) *Node {
	if n.Kind == KindComment {
		return n
	}
	n.styles = append(n.styles, StylePair{Name: name, Value: value})
	return n
}

// Style returns the effective value of a style property.
func (n *Node) Style(name string) (string, bool) {
	for i := len(n.styles) - 1; i >= 0; i-- {
		if n.styles[i].Name == name {
			return n.styles[i].Value, true
		}
	}
	return "", false
}

// Styles returns a copy of the raw style declarations in insertion order,
// duplicates included.
func (n *Node) Styles() []StylePair {
	out := make([]StylePair, len(n.styles))
	copy(out, n.styles)
	return out
}

// EffectiveStyles returns the declarations as written by the renderer:
// one entry per property, holding its last value, in the order of the
// last write.
func (n *Node) EffectiveStyles() []StylePair {
	if len(n.styles) == 0 {
		return nil
	}
	last := make(map[string]int, len(n.styles))
	for i, s := range n.styles {
		last[s.Name] = i
	}
	out := make([]StylePair, 0, len(last))
	for i, s := range n.styles {
		if last[s.Name] == i {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// Attributes
// =============================================================================

// SetAttr sets an attribute. The reserved keys class and style are
// ignored because the renderer synthesizes them.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Kind == KindComment || reservedAttrs[key] {
		return n
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	return n
}

// UnsetAttr removes an attribute.
func (n *Node) UnsetAttr(key string) *Node {
	delete(n.attrs, key)
	return n
}

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// Attrs returns a copy of the attribute map.
func (n *Node) Attrs() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// =============================================================================
// Children
// =============================================================================

// AppendChild converts c to a node and appends it to the children.
func (n *Node) AppendChild(c Noder) *Node {
	if n.Kind == KindComment || c == nil {
		return n
	}
	if child := c.ToNode(); child != nil {
		n.Children = append(n.Children, child)
	}
	return n
}

// PrependChild converts c to a node and inserts it before the first child.
func (n *Node) PrependChild(c Noder) *Node {
	if n.Kind == KindComment || c == nil {
		return n
	}
	if child := c.ToNode(); child != nil {
		n.Children = append([]*Node{child}, n.Children...)
	}
	return n
}

// =============================================================================
// Root nodes
// =============================================================================

// AddRootNode attaches a node to be hoisted to the document root.
// A node whose ID is already attached is ignored.
func (n *Node) AddRootNode(r *Node) *Node {
	if r == nil {
		return n
	}
	if _, ok := n.rootIndex[r.ID]; ok {
		return n
	}
	if n.rootIndex == nil {
		n.rootIndex = make(map[string]struct{})
	}
	n.rootIndex[r.ID] = struct{}{}
	n.rootNodes = append(n.rootNodes, r)
	return n
}

// RootNodes returns the nodes attached directly to n.
func (n *Node) RootNodes() []*Node {
	out := make([]*Node, len(n.rootNodes))
	copy(out, n.rootNodes)
	return out
}
