package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpanel/paginate/internal/dom"
)

func TestClassifyWithItemSelector(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
		<div id="list" data-paginate data-paginate-items=".row">
			<h2>Heading stays out of the item set</h2>
			<div class="group">
				<div class="row">One</div>
				<div class="row filter-hidden">Two</div>
			</div>
			<div class="row" hidden>Three</div>
			<div class="row">Four</div>
		</div>
	</body></html>`)
	require.NoError(t, err)

	state := New(doc).Register(doc.Query("#list"))
	require.NotNil(t, state)

	available, filtered := state.classify()
	require.Len(t, available, 2)
	require.Len(t, filtered, 2)
	assert.Equal(t, "One", available[0].Text())
	assert.Equal(t, "Four", available[1].Text(), "document order is pagination order")
	assert.Equal(t, "Two", filtered[0].Text())
	assert.Equal(t, "Three", filtered[1].Text())
}

func TestClassifyDefaultsToDirectChildren(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
		<div id="list" data-paginate>
			<div>Outer <span>nested spans are not items</span></div>
			<div data-search-hidden="true">Hidden by search</div>
		</div>
	</body></html>`)
	require.NoError(t, err)

	state := New(doc).Register(doc.Query("#list"))
	require.NotNil(t, state)

	available, filtered := state.classify()
	assert.Len(t, available, 1)
	assert.Len(t, filtered, 1)
}

func TestIsExternallyFiltered(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   bool
	}{
		{name: "plain item", markup: `<div class="row">x</div>`, want: false},
		{name: "filter-hidden class", markup: `<div class="row filter-hidden">x</div>`, want: true},
		{name: "search-hidden flag", markup: `<div data-search-hidden="true">x</div>`, want: true},
		{name: "search flag not true", markup: `<div data-search-hidden="false">x</div>`, want: false},
		{name: "native hidden", markup: `<div hidden>x</div>`, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := dom.ParseString("<html><body>" + tt.markup + "</body></html>")
			require.NoError(t, err)
			item := doc.Body().Children()[0]
			assert.Equal(t, tt.want, isExternallyFiltered(item))
		})
	}
}

func TestDisplayCapturedLazilyOnce(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div style="display: grid">x</div></body></html>`)
	require.NoError(t, err)
	item := doc.Body().Children()[0]

	hideItem(item)
	assert.Equal(t, "grid", item.Attr(AttrOriginalDisplay))
	assert.Equal(t, "none", item.StyleProperty("display"))

	// A second hide must not overwrite the remembered value with "none".
	hideItem(item)
	assert.Equal(t, "grid", item.Attr(AttrOriginalDisplay))

	showItem(item)
	assert.Equal(t, "grid", item.StyleProperty("display"))
}
