package card

import "strings"

// Role tags a node with what it shows so callers and tests can find
// elements without depending on geometry.
type Role string

const (
	RoleCard        Role = "card"
	RolePlaceholder Role = "placeholder"
	RolePhoto       Role = "photo"
	RoleScrim       Role = "scrim"
	RoleBadge       Role = "badge"
	RolePrice       Role = "price"
	RoleAddress     Role = "address"
	RoleSpecs       Role = "specs"
	RoleSpec        Role = "spec"
	RoleAgent       Role = "agent"
	RoleLogo        Role = "logo"
	RoleHeader      Role = "header"
	RoleBody        Role = "body"
	RoleFooter      Role = "footer"
	RoleImageRegion Role = "image-region"
	RoleTextPanel   Role = "text-panel"
	RoleDecoration  Role = "decoration"
	RoleIcon        Role = "icon"
	RoleNote        Role = "note"
)

type Decl struct {
	Prop  string `json:"prop"`
	Value string `json:"value"`
}

// CSS is an ordered list of inline style declarations.
type CSS []Decl

func css(kv ...string) CSS {
	var out CSS
	for i := 0; i+1 < len(kv); i += 2 {
		out = out.set(kv[i], kv[i+1])
	}
	return out
}

// Get returns the value declared for prop, or "".
func (c CSS) Get(prop string) string {
	for _, d := range c {
		if d.Prop == prop {
			return d.Value
		}
	}
	return ""
}

func (c CSS) set(prop, value string) CSS {
	for i, d := range c {
		if d.Prop == prop {
			out := append(CSS(nil), c...)
			out[i].Value = value
			return out
		}
	}
	return append(append(CSS(nil), c...), Decl{prop, value})
}

// with returns c overlaid with o; o wins on conflicting properties.
func (c CSS) with(o CSS) CSS {
	out := append(CSS(nil), c...)
	for _, d := range o {
		out = out.set(d.Prop, d.Value)
	}
	return out
}

func (c CSS) String() string {
	var b strings.Builder
	for i, d := range c {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.Prop)
		b.WriteString(": ")
		b.WriteString(d.Value)
	}
	return b.String()
}

type Attr struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Node is one element of a rendered card.
type Node struct {
	Tag      string  `json:"tag"`
	Role     Role    `json:"role,omitempty"`
	Style    CSS     `json:"style,omitempty"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func (n *Node) Attr(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Walk visits n and its descendants depth-first, stopping early when fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindAll returns every node carrying role, in document order.
func (n *Node) FindAll(role Role) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if x.Role == role {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Find returns the first node carrying role, or nil.
func (n *Node) Find(role Role) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if x.Role == role {
			found = x
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates all text in the subtree, separated by spaces.
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(x *Node) bool {
		if x.Text != "" {
			parts = append(parts, x.Text)
		}
		return true
	})
	return strings.Join(parts, " ")
}

func el(tag string, role Role, style CSS, children ...*Node) *Node {
	n := &Node{Tag: tag, Role: role, Style: style}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func box(role Role, style CSS, children ...*Node) *Node {
	return el("div", role, style, children...)
}

func txt(tag string, role Role, style CSS, s string) *Node {
	return &Node{Tag: tag, Role: role, Style: style, Text: s}
}

func img(role Role, src, alt string, style CSS) *Node {
	return &Node{Tag: "img", Role: role, Style: style, Attrs: []Attr{{"src", src}, {"alt", alt}}}
}

// icon is a named glyph the page shell resolves to an SVG sprite.
func icon(name string, style CSS) *Node {
	return &Node{Tag: "i", Role: RoleIcon, Style: style, Attrs: []Attr{{"data-icon", name}, {"aria-hidden", "true"}}}
}

// wrap returns nil when child is nil so empty containers never reserve
// space.
func wrap(role Role, style CSS, child *Node) *Node {
	if child == nil {
		return nil
	}
	return box(role, style, child)
}
