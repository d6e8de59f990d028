package paginator

import (
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stokpanel/paginate/internal/dom"
)

// AttrTargetPage carries a page button's navigation target. Only enabled
// buttons get it.
const AttrTargetPage = "data-page"

// maxPlainPages is the largest page count rendered without windowing.
const maxPlainPages = 7

const (
	labelPrevious = "‹" // ‹
	labelNext     = "›" // ›
	labelEllipsis = "…" // …
	noRecordsText = "No records"
)

// Locale-aware printer for thousand separators in the info label.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// buildControls creates the controls block once, at registration. Tabular
// containers get the block as an adjacent sibling after the enclosing table;
// anything else gets it appended inside.
func (s *State) buildControls() {
	s.controls = dom.NewElement("div", "class", "pagination-controls", AttrControls, "")
	s.info = dom.NewElement("span", "class", "pagination-info")
	s.nav = dom.NewElement("nav", "class", "pagination-nav", "aria-label", "Pagination")
	s.pageList = dom.NewElement("ul", "class", "pagination")

	s.nav.AppendChild(s.pageList)
	s.controls.AppendChild(s.info)
	s.controls.AppendChild(s.nav)

	if anchor := tableAnchor(s.container); anchor != nil {
		s.controls.InsertAfter(anchor)
		return
	}
	s.container.AppendChild(s.controls)
}

// tableAnchor returns the enclosing table when the container is a tabular
// element, so controls land next to the table instead of inside it.
func tableAnchor(container *dom.Element) *dom.Element {
	switch container.Tag() {
	case "table", "thead", "tbody", "tfoot", "tr":
		return container.Closest("table")
	default:
		return nil
	}
}

// renderInfo updates the info label: a no-records message when empty,
// otherwise the 1-based inclusive range of the visible window.
func (s *State) renderInfo(totalItems int) {
	if totalItems == 0 {
		s.info.SetText(noRecordsText)
		return
	}
	s.info.SetText(printer.Sprintf("%d–%d / %d records", s.startIndex+1, s.endIndex, totalItems))
}

// renderControls rebuilds the page-button list from scratch. The button
// count is bounded by the window rule, so a full rebuild per recomputation
// stays cheap and keeps rendering stateless.
func (s *State) renderControls() {
	s.pageList.RemoveChildren()

	if s.totalPages <= 1 {
		s.nav.SetStyleProperty("display", "none")
		return
	}
	s.nav.RemoveStyleProperty("display")

	s.pageList.AppendChild(s.navButton(labelPrevious, s.currentPage-1, s.currentPage <= 1))

	previous := 0
	for _, page := range pageWindow(s.currentPage, s.totalPages) {
		if previous != 0 && page-previous > 1 {
			s.pageList.AppendChild(ellipsisMarker())
		}
		s.pageList.AppendChild(s.pageButton(page))
		previous = page
	}

	s.pageList.AppendChild(s.navButton(labelNext, s.currentPage+1, s.currentPage >= s.totalPages))
}

// pageWindow selects which page numbers to render. Small page counts render
// fully; larger ones render the edges plus a neighborhood around the current
// page, deduplicated and ascending.
func pageWindow(current, total int) []int {
	if total <= maxPlainPages {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	seen := make(map[int]bool)
	var pages []int
	for _, page := range []int{1, 2, total - 1, total, current - 1, current, current + 1} {
		if page < 1 || page > total || seen[page] {
			continue
		}
		seen[page] = true
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages
}

// navButton renders the previous/next arrow. Disabled arrows carry no
// navigation target.
func (s *State) navButton(label string, target int, disabled bool) *dom.Element {
	item := dom.NewElement("li", "class", "page-item")
	button := dom.NewElement("button", "type", "button", "class", "page-link")
	button.SetText(label)
	if disabled {
		item.AddClass("disabled")
		button.SetAttr("disabled", "")
	} else {
		button.SetAttr(AttrTargetPage, strconv.Itoa(target))
	}
	item.AppendChild(button)
	return item
}

// pageButton renders one numbered button; the current page is marked active.
func (s *State) pageButton(page int) *dom.Element {
	item := dom.NewElement("li", "class", "page-item")
	button := dom.NewElement("button", "type", "button", "class", "page-link")
	button.SetText(strconv.Itoa(page))
	button.SetAttr(AttrTargetPage, strconv.Itoa(page))
	if page == s.currentPage {
		item.AddClass("active")
	}
	item.AppendChild(button)
	return item
}

// ellipsisMarker renders the non-interactive gap indicator.
func ellipsisMarker() *dom.Element {
	item := dom.NewElement("li", "class", "page-item ellipsis")
	span := dom.NewElement("span", "class", "page-ellipsis")
	span.SetText(labelEllipsis)
	item.AppendChild(span)
	return item
}
