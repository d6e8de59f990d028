package paginator

import (
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/stokpanel/paginate/internal/dom"
)

// State is the live pagination state of one container. It is created and
// owned by a Controller; there is exactly one per container node, and its
// controls block is built once and mutated in place thereafter.
type State struct {
	id           string
	container    *dom.Element
	itemSelector string
	pageSize     int
	currentPage  int

	controls *dom.Element
	info     *dom.Element
	nav      *dom.Element
	pageList *dom.Element

	// Snapshot of the last recomputation, for Meta and PageItems.
	available  []*dom.Element
	filtered   []*dom.Element
	totalPages int
	startIndex int
	endIndex   int

	logger zerolog.Logger
}

// ID returns the state's registration identifier, used in logs.
func (s *State) ID() string { return s.id }

// Container returns the container element this state manages.
func (s *State) Container() *dom.Element { return s.container }

// Controls returns the generated controls block.
func (s *State) Controls() *dom.Element { return s.controls }

// PageSize returns the effective page size.
func (s *State) PageSize() int { return s.pageSize }

// CurrentPage returns the clamped current page (1-based).
func (s *State) CurrentPage() int { return s.currentPage }

// PageItems returns the available items on the current page, in document
// order, as of the last recomputation.
func (s *State) PageItems() []*dom.Element {
	if s.startIndex >= s.endIndex {
		return nil
	}
	out := make([]*dom.Element, s.endIndex-s.startIndex)
	copy(out, s.available[s.startIndex:s.endIndex])
	return out
}

// FilteredItems returns the externally-filtered items as of the last
// recomputation. They are always visible and never counted.
func (s *State) FilteredItems() []*dom.Element {
	out := make([]*dom.Element, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// totalPagesFor is the page-count rule: at least one page always exists,
// even for an empty item set.
func totalPagesFor(totalItems, pageSize int) int {
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// apply is the full recomputation: classify, clamp, toggle visibility,
// update the info label, rebuild controls. It is idempotent; running it
// twice with no intervening change produces identical output.
func (s *State) apply() {
	available, filtered := s.classify()
	s.available = available
	s.filtered = filtered

	totalItems := len(available)
	s.totalPages = totalPagesFor(totalItems, s.pageSize)

	switch {
	case totalItems == 0:
		s.currentPage = 1
	case s.currentPage > s.totalPages:
		s.currentPage = s.totalPages
	case s.currentPage < 1:
		s.currentPage = 1
	}

	s.startIndex, s.endIndex = 0, 0
	if totalItems > 0 {
		s.startIndex = (s.currentPage - 1) * s.pageSize
		s.endIndex = s.startIndex + s.pageSize
		if s.endIndex > totalItems {
			s.endIndex = totalItems
		}
	}

	for i, item := range available {
		if i >= s.startIndex && i < s.endIndex {
			showItem(item)
		} else {
			hideItem(item)
		}
	}
	// Items the external filter excluded are never suppressed here; they are
	// simply not counted or paged.
	for _, item := range filtered {
		showItem(item)
	}

	s.renderInfo(totalItems)
	if totalItems == 0 {
		s.controls.SetStyleProperty("display", "none")
	} else {
		s.controls.RemoveStyleProperty("display")
		s.renderControls()
	}

	s.logger.Debug().
		Int("total_items", totalItems).
		Int("filtered_items", len(filtered)).
		Int("current_page", s.currentPage).
		Int("total_pages", s.totalPages).
		Msg("recomputed pagination")
}

// Goto navigates to the given page and recomputes. Any finite value is
// accepted; the recomputation clamps it into [1, totalPages]. Non-finite
// values are ignored, non-integer values truncate toward zero.
func (s *State) Goto(page float64) {
	if math.IsNaN(page) || math.IsInf(page, 0) {
		return
	}
	// Keep the conversion in int range; clamping tightens it afterwards.
	page = math.Trunc(page)
	if page > math.MaxInt32 {
		page = math.MaxInt32
	} else if page < math.MinInt32 {
		page = math.MinInt32
	}
	s.currentPage = int(page)
	s.apply()
}

// Activate handles a page-button activation: enabled buttons carry their
// target page in data-page. Disabled buttons and ellipsis markers do not,
// making them non-interactive. Reports whether navigation happened.
func (s *State) Activate(button *dom.Element) bool {
	if button == nil || button.HasAttr("disabled") {
		return false
	}
	page, err := strconv.Atoi(button.Attr(AttrTargetPage))
	if err != nil {
		return false
	}
	s.Goto(float64(page))
	return true
}
