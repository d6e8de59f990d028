package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element wraps a single element node. The zero value is not usable; obtain
// Elements from Parse, NewElement, or traversal methods. A nil *Element is a
// safe receiver for read-only methods and reports empty results.
type Element struct {
	node *html.Node
}

// FromNode wraps an element node. Returns nil for nil or non-element nodes.
func FromNode(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// Node exposes the underlying html.Node. Identity comparisons (one pagination
// state per container) key off this pointer.
func (e *Element) Node() *html.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// Document wraps a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document. The parser normalizes fragments into an
// html/head/body skeleton, which is fine for both files and test snippets.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render serializes the document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Root returns the document's root element (usually <html>).
func (d *Document) Root() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return &Element{node: c}
		}
	}
	return nil
}

// Body returns the document body, or nil when the document has none.
func (d *Document) Body() *Element {
	return d.Query("body")
}

// QueryAll returns all elements in the document matching the selector, in
// document order. An invalid selector yields no matches.
func (d *Document) QueryAll(selector string) []*Element {
	return matchAll(d.root, selector)
}

// Query returns the first match in document order, or nil.
func (d *Document) Query(selector string) *Element {
	return matchFirst(d.root, selector)
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.node.Data
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, regardless of value.
func (e *Element) HasAttr(name string) bool {
	if e == nil {
		return false
	}
	for _, a := range e.node.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the named attribute.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

// HasClass reports whether the class attribute contains the given token.
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	for _, c := range strings.Fields(e.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends a class token unless already present.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	existing := e.Attr("class")
	if existing == "" {
		e.SetAttr("class", class)
		return
	}
	e.SetAttr("class", existing+" "+class)
}

// RemoveClass removes a class token; the attribute is dropped when it
// becomes empty.
func (e *Element) RemoveClass(class string) {
	fields := strings.Fields(e.Attr("class"))
	kept := fields[:0]
	for _, c := range fields {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// Parent returns the nearest element ancestor, or nil at the tree root.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &Element{node: p}
		}
	}
	return nil
}

// Children returns the direct element children in document order.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &Element{node: c})
		}
	}
	return out
}

// Text returns the concatenated text content of the subtree, trimmed.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.TrimSpace(sb.String())
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(text string) {
	e.RemoveChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// RemoveChildren detaches every child node.
func (e *Element) RemoveChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// AppendChild attaches child as the element's last child. The child is
// detached from any previous parent first.
func (e *Element) AppendChild(child *Element) {
	child.Detach()
	e.node.AppendChild(child.node)
}

// InsertAfter places e immediately after the given sibling.
func (e *Element) InsertAfter(sibling *Element) {
	parent := sibling.node.Parent
	if parent == nil {
		return
	}
	e.Detach()
	if next := sibling.node.NextSibling; next != nil {
		parent.InsertBefore(e.node, next)
		return
	}
	parent.AppendChild(e.node)
}

// Detach removes the element from its parent, if any.
func (e *Element) Detach() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// OuterHTML serializes the element subtree. Intended for tests and debugging.
func (e *Element) OuterHTML() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	_ = html.Render(&sb, e.node)
	return sb.String()
}

// NewElement creates a detached element with optional name/value attribute
// pairs. An odd trailing name is set with an empty value (presence flag).
func NewElement(tag string, attrPairs ...string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	e := &Element{node: n}
	for i := 0; i < len(attrPairs); i += 2 {
		if i+1 < len(attrPairs) {
			e.SetAttr(attrPairs[i], attrPairs[i+1])
		} else {
			e.SetAttr(attrPairs[i], "")
		}
	}
	return e
}
