package paginator

import "github.com/stokpanel/paginate/internal/dom"

// classify partitions the container's candidate items into available
// (pageable) and externally-filtered sets, preserving document order. The
// candidate set is descendants matching the item selector when one is
// configured, otherwise direct children. Generated controls are never
// candidates.
func (s *State) classify() (available, filtered []*dom.Element) {
	var candidates []*dom.Element
	if s.itemSelector != "" {
		candidates = s.container.QueryAll(s.itemSelector)
	} else {
		candidates = s.container.Children()
	}

	for _, item := range candidates {
		if item.Closest(controlsSelector) != nil {
			continue
		}
		if isExternallyFiltered(item) {
			filtered = append(filtered, item)
		} else {
			available = append(available, item)
		}
	}
	return available, filtered
}

// isExternallyFiltered checks the per-item filter contract: any of the
// filter-hidden class, the search-hidden data flag, or the native hidden
// attribute excludes an item from paging.
func isExternallyFiltered(item *dom.Element) bool {
	return item.HasClass(ClassFilterHidden) ||
		item.Attr(AttrSearchHidden) == "true" ||
		item.HasAttr("hidden")
}

// ensureDisplayCaptured records the item's inline display value the first
// time the engine touches it, so showing it later restores whatever styling
// the page author set rather than clobbering it.
func ensureDisplayCaptured(item *dom.Element) {
	if item.HasAttr(AttrOriginalDisplay) {
		return
	}
	item.SetAttr(AttrOriginalDisplay, item.StyleProperty("display"))
}

// showItem makes an item visible again, restoring its remembered display
// value and clearing the pagination-hidden marker.
func showItem(item *dom.Element) {
	ensureDisplayCaptured(item)
	if original := item.Attr(AttrOriginalDisplay); original != "" {
		item.SetStyleProperty("display", original)
	} else {
		item.RemoveStyleProperty("display")
	}
	item.RemoveAttr(AttrPaginationHidden)
}

// hideItem hides an item that falls outside the current page window.
func hideItem(item *dom.Element) {
	ensureDisplayCaptured(item)
	item.SetStyleProperty("display", "none")
	item.SetAttr(AttrPaginationHidden, "true")
}
