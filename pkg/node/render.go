package node

import (
	"bytes"
	"io"
	"sort"
	"strings"
)

// Render writes the node and its subtree as HTML.
//
// Attributes are written in sorted key order, followed by the synthesized
// class and style attributes. Root nodes are not written; see
// CollectRootNodes.
func (n *Node) Render(w io.Writer) error {
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = &stringWriter{w: w}
	}
	r := renderer{w: sw}
	r.node(n)
	return r.err
}

// String renders the node into a string.
func (n *Node) String() string {
	var buf bytes.Buffer
	_ = n.Render(&buf)
	return buf.String()
}

// renderer accumulates the first write error so the walk stays simple.
type renderer struct {
	w   io.StringWriter
	err error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = r.w.WriteString(s)
}

func (r *renderer) node(n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindComment:
		r.write("<!--")
		r.write(n.text)
		r.write("-->")
	case KindSelfClosing:
		r.open(n)
		r.write("/>")
	default:
		r.open(n)
		r.write(">")
		if n.hasText {
			r.write(n.text)
		} else {
			for _, child := range n.Children {
				r.node(child)
			}
		}
		r.write("</")
		r.write(n.Tag)
		r.write(">")
	}
}

// open writes "<tag attrs class style" without the closing bracket.
func (r *renderer) open(n *Node) {
	r.write("<")
	r.write(n.Tag)

	keys := make([]string, 0, len(n.attrs))
	for key := range n.attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		r.write(" ")
		r.write(key)
		r.write(`="`)
		r.write(escapeAttr(n.attrs[key]))
		r.write(`"`)
	}

	if len(n.classes) > 0 {
		r.write(` class="`)
		r.write(escapeAttr(strings.Join(n.classes, " ")))
		r.write(`"`)
	}

	if styles := n.EffectiveStyles(); len(styles) > 0 {
		parts := make([]string, len(styles))
		for i, s := range styles {
			parts[i] = s.Name + ": " + s.Value + ";"
		}
		r.write(` style="`)
		r.write(escapeAttr(strings.Join(parts, " ")))
		r.write(`"`)
	}
}

type stringWriter struct {
	w io.Writer
}

func (s *stringWriter) WriteString(str string) (int, error) {
	return s.w.Write([]byte(str))
}
