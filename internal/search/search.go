// Package search is the external filtering collaborator of the paginator:
// it marks items as search-hidden by text match and leaves recomputation to
// a following Refresh call, per the attribute contract in package paginator.
package search

import (
	"strings"

	"github.com/stokpanel/paginate/internal/dom"
	"github.com/stokpanel/paginate/internal/paginator"
)

// Filter applies a case-insensitive substring filter over a container's
// items: non-matching items get the search-hidden flag, matching ones have
// it cleared. An empty query clears every flag. Returns the number of items
// left visible to pagination.
//
// The candidate rule mirrors the paginator's classifier: descendants
// matching the container's item selector when configured, otherwise direct
// children, never the generated controls.
func Filter(container *dom.Element, query string) int {
	if container == nil {
		return 0
	}

	var candidates []*dom.Element
	if selector := container.Attr(paginator.AttrItemSelector); selector != "" {
		candidates = container.QueryAll(selector)
	} else {
		candidates = container.Children()
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matches := 0
	for _, item := range candidates {
		if item.Closest("[" + paginator.AttrControls + "]") != nil {
			continue
		}
		if query == "" || strings.Contains(strings.ToLower(item.Text()), query) {
			item.RemoveAttr(paginator.AttrSearchHidden)
			matches++
			continue
		}
		item.SetAttr(paginator.AttrSearchHidden, "true")
	}
	return matches
}

// FilterAll runs Filter over every registered container of a controller and
// refreshes them, returning the total match count. This is the integration
// path the CLI and TUI use after a query change.
func FilterAll(ctrl *paginator.Controller, query string) int {
	total := 0
	for _, state := range ctrl.States() {
		total += Filter(state.Container(), query)
	}
	ctrl.Refresh(nil)
	return total
}
