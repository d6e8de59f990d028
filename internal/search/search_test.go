package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpanel/paginate/internal/dom"
	"github.com/stokpanel/paginate/internal/paginator"
)

func parseList(t *testing.T) (*dom.Document, *dom.Element) {
	t.Helper()
	doc, err := dom.ParseString(`<html><body>
		<div id="list" data-paginate data-paginate-size="2">
			<div class="entry">Ankara office</div>
			<div class="entry">Istanbul office</div>
			<div class="entry">Izmir warehouse</div>
			<div class="entry">ANKARA depot</div>
		</div>
	</body></html>`)
	require.NoError(t, err)
	container := doc.Query("#list")
	require.NotNil(t, container)
	return doc, container
}

func TestFilterMarksNonMatches(t *testing.T) {
	_, container := parseList(t)

	matched := Filter(container, "ankara")
	assert.Equal(t, 2, matched, "matching is case-insensitive")

	entries := container.QueryAll(".entry")
	assert.False(t, entries[0].HasAttr(paginator.AttrSearchHidden))
	assert.Equal(t, "true", entries[1].Attr(paginator.AttrSearchHidden))
	assert.Equal(t, "true", entries[2].Attr(paginator.AttrSearchHidden))
	assert.False(t, entries[3].HasAttr(paginator.AttrSearchHidden))
}

func TestFilterEmptyQueryClearsFlags(t *testing.T) {
	_, container := parseList(t)

	Filter(container, "warehouse")
	matched := Filter(container, "")
	assert.Equal(t, 4, matched)
	for _, entry := range container.QueryAll(".entry") {
		assert.False(t, entry.HasAttr(paginator.AttrSearchHidden))
	}
}

func TestFilterNilContainer(t *testing.T) {
	assert.Zero(t, Filter(nil, "x"))
}

func TestFilterAllRefreshesPagination(t *testing.T) {
	doc, container := parseList(t)
	ctrl := paginator.New(doc)
	state := ctrl.Register(container)
	require.NotNil(t, state)
	require.Equal(t, 2, state.Meta().TotalPages)
	state.Goto(2)

	matched := FilterAll(ctrl, "izmir")
	assert.Equal(t, 1, matched)

	meta := state.Meta()
	assert.Equal(t, 1, meta.TotalItems)
	assert.Equal(t, 3, meta.FilteredItems)
	assert.Equal(t, 1, meta.CurrentPage, "refresh clamps the page after the set shrinks")

	// Clearing the filter restores the full set.
	FilterAll(ctrl, "")
	assert.Equal(t, 4, state.Meta().TotalItems)
}

func TestFilterSkipsGeneratedControls(t *testing.T) {
	doc, container := parseList(t)
	ctrl := paginator.New(doc)
	require.NotNil(t, ctrl.Register(container))

	// "records" appears in the generated info label; the controls block must
	// not be treated as an item even without an item selector.
	matched := Filter(container, "records")
	assert.Zero(t, matched)
	controls := container.Query("[" + paginator.AttrControls + "]")
	require.NotNil(t, controls)
	assert.False(t, controls.HasAttr(paginator.AttrSearchHidden))
}
