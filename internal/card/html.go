package card

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML serializes the tree as an HTML fragment. Text and attribute
// values are escaped by the html package.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	return html.Render(w, toHTML(n))
}

// HTML returns the serialized fragment.
func (n *Node) HTML() string {
	var buf bytes.Buffer
	_ = WriteHTML(&buf, n)
	return buf.String()
}

func toHTML(n *Node) *html.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Role != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "data-role", Val: string(n.Role)})
	}
	for _, a := range n.Attrs {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if len(n.Style) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "style", Val: n.Style.String()})
	}
	if n.Text != "" {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		h.AppendChild(toHTML(c))
	}
	return h
}
