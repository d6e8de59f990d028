package paginator

import (
	"strings"

	"github.com/stokpanel/paginate/internal/dom"
)

// Meta is a read-only snapshot of one container's pagination state, shaped
// for structured output (inspect command, TUI status line).
type Meta struct {
	Container     string `json:"container"      yaml:"container"`
	ItemSelector  string `json:"item_selector"  yaml:"item_selector"`
	CurrentPage   int    `json:"current_page"   yaml:"current_page"`
	PageSize      int    `json:"page_size"      yaml:"page_size"`
	TotalPages    int    `json:"total_pages"    yaml:"total_pages"`
	TotalItems    int    `json:"total_items"    yaml:"total_items"`
	FilteredItems int    `json:"filtered_items" yaml:"filtered_items"`
	HasPrevious   bool   `json:"has_previous"   yaml:"has_previous"`
	HasNext       bool   `json:"has_next"       yaml:"has_next"`
}

// Meta returns the snapshot as of the last recomputation.
func (s *State) Meta() Meta {
	return Meta{
		Container:     containerLabel(s.container),
		ItemSelector:  s.itemSelector,
		CurrentPage:   s.currentPage,
		PageSize:      s.pageSize,
		TotalPages:    s.totalPages,
		TotalItems:    len(s.available),
		FilteredItems: len(s.filtered),
		HasPrevious:   s.currentPage > 1,
		HasNext:       s.currentPage < s.totalPages,
	}
}

// containerLabel renders a short human identifier for a container, favoring
// id over class over bare tag name.
func containerLabel(container *dom.Element) string {
	if id := container.Attr("id"); id != "" {
		return container.Tag() + "#" + id
	}
	if fields := strings.Fields(container.Attr("class")); len(fields) > 0 {
		return container.Tag() + "." + fields[0]
	}
	return container.Tag()
}
