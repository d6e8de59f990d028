package dom

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Compiled selectors are cached process-wide; pagination re-runs the same
// handful of selectors on every recomputation.
var (
	selectorMu    sync.RWMutex
	selectorCache = make(map[string]cascadia.Selector)
)

func compile(selector string) (cascadia.Selector, bool) {
	selectorMu.RLock()
	sel, ok := selectorCache[selector]
	selectorMu.RUnlock()
	if ok {
		return sel, sel != nil
	}

	compiled, err := cascadia.Compile(selector)
	selectorMu.Lock()
	if err != nil {
		// Negative-cache invalid selectors; they degrade to "no matches".
		selectorCache[selector] = nil
	} else {
		selectorCache[selector] = compiled
	}
	selectorMu.Unlock()
	return compiled, err == nil
}

// ValidSelector reports whether the selector parses.
func ValidSelector(selector string) bool {
	_, ok := compile(selector)
	return ok
}

func matchAll(root *html.Node, selector string) []*Element {
	sel, ok := compile(selector)
	if !ok {
		return nil
	}
	nodes := sel.MatchAll(root)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Element{node: n})
	}
	return out
}

func matchFirst(root *html.Node, selector string) *Element {
	sel, ok := compile(selector)
	if !ok {
		return nil
	}
	if n := sel.MatchFirst(root); n != nil {
		return &Element{node: n}
	}
	return nil
}

// QueryAll returns descendant elements matching the selector, in document
// order. The element itself is never included. Invalid selectors match
// nothing.
func (e *Element) QueryAll(selector string) []*Element {
	if e == nil {
		return nil
	}
	sel, ok := compile(selector)
	if !ok {
		return nil
	}
	var out []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && sel.Match(c) {
				out = append(out, &Element{node: c})
			}
			walk(c)
		}
	}
	walk(e.node)
	return out
}

// Query returns the first matching descendant, or nil.
func (e *Element) Query(selector string) *Element {
	all := e.QueryAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// Matches reports whether the element itself matches the selector.
func (e *Element) Matches(selector string) bool {
	if e == nil {
		return false
	}
	sel, ok := compile(selector)
	if !ok {
		return false
	}
	return sel.Match(e.node)
}

// Closest returns the element itself if it matches, otherwise the nearest
// matching ancestor, or nil.
func (e *Element) Closest(selector string) *Element {
	if e == nil {
		return nil
	}
	sel, ok := compile(selector)
	if !ok {
		return nil
	}
	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			return &Element{node: n}
		}
	}
	return nil
}
