package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpanel/paginate/internal/dom"
)

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "absent falls back", raw: "", want: 20},
		{name: "valid value", raw: "7", want: 7},
		{name: "non-numeric falls back", raw: "abc", want: 20},
		{name: "zero falls back", raw: "0", want: 20},
		{name: "negative falls back", raw: "-5", want: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePageSize(tt.raw, DefaultPageSize))
		})
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	doc, container := buildListDoc(t, "", numberedItems(25)...)
	ctrl := New(doc)

	first := ctrl.Register(container)
	require.NotNil(t, first)
	second := ctrl.Register(container)

	assert.Same(t, first, second)
	assert.Len(t, doc.QueryAll("[data-paginate-controls]"), 1, "re-registration must not duplicate controls")
	assert.Len(t, ctrl.States(), 1)
}

func TestRegisterResolvesNearestMarkedAncestor(t *testing.T) {
	doc, container := buildListDoc(t, "", numberedItems(5)...)
	ctrl := New(doc)

	item := container.Query(".row")
	require.NotNil(t, item)
	state := ctrl.Register(item)
	require.NotNil(t, state)
	assert.Same(t, container.Node(), state.Container().Node())
}

func TestRegisterUnresolvableTarget(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="plain"><p>text</p></div></body></html>`)
	require.NoError(t, err)
	ctrl := New(doc)

	assert.Nil(t, ctrl.Register(doc.Query("#plain")))
	assert.Nil(t, ctrl.Register(nil))
	assert.Nil(t, ctrl.RegisterSelector("#missing"))
	assert.Empty(t, ctrl.States())
}

func TestInitAllDiscoversEveryContainer(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
		<div id="a" data-paginate><div class="row">A1</div><div class="row">A2</div></div>
		<section>
			<ul id="b" data-paginate data-paginate-size="1">
				<li>B1</li><li>B2</li><li>B3</li>
			</ul>
		</section>
	</body></html>`)
	require.NoError(t, err)

	ctrl := New(doc)
	states := ctrl.InitAll(nil)
	require.Len(t, states, 2)
	assert.Equal(t, "div#a", states[0].Meta().Container)
	assert.Equal(t, "ul#b", states[1].Meta().Container)
	assert.Equal(t, 3, states[1].Meta().TotalPages)

	// A second scan finds the same states.
	again := ctrl.InitAll(nil)
	require.Len(t, again, 2)
	assert.Same(t, states[0], again[0])
}

func TestInitAllScopedToSubtree(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
		<div id="outer" data-paginate><div class="row">O1</div></div>
		<section id="scope">
			<div id="inner" data-paginate><div class="row">I1</div></div>
		</section>
	</body></html>`)
	require.NoError(t, err)

	ctrl := New(doc)
	states := ctrl.InitAll(doc.Query("#scope"))
	require.Len(t, states, 1)
	assert.Equal(t, "div#inner", states[0].Meta().Container)
	assert.Len(t, ctrl.States(), 1)
}

func TestRefreshAllAfterExternalFiltering(t *testing.T) {
	doc, container := buildListDoc(t, `data-paginate-size="5"`, numberedItems(10)...)
	ctrl := New(doc)
	state := ctrl.Register(container)
	require.NotNil(t, state)
	require.Equal(t, 2, state.Meta().TotalPages)
	state.Goto(2)

	// An external feature hides most items, then asks for a global refresh.
	for i, row := range container.QueryAll(".row") {
		if i >= 3 {
			row.SetAttr(AttrSearchHidden, "true")
		}
	}
	ctrl.Refresh(nil)

	meta := state.Meta()
	assert.Equal(t, 3, meta.TotalItems)
	assert.Equal(t, 7, meta.FilteredItems)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 1, meta.CurrentPage, "current page must clamp after shrink")
}

func TestRefreshRegistersUnknownTarget(t *testing.T) {
	doc, container := buildListDoc(t, "", numberedItems(4)...)
	ctrl := New(doc)

	ctrl.Refresh(container)
	require.Len(t, ctrl.States(), 1)

	// Unresolvable refresh targets are silent no-ops.
	ctrl.RefreshSelector("#no-such-node")
	assert.Len(t, ctrl.States(), 1)
}

func TestWithDefaultPageSize(t *testing.T) {
	doc, container := buildListDoc(t, "", numberedItems(6)...)
	state := New(doc, WithDefaultPageSize(2)).Register(container)
	require.NotNil(t, state)

	assert.Equal(t, 2, state.PageSize())
	assert.Equal(t, 3, state.Meta().TotalPages)
}

func TestLookup(t *testing.T) {
	doc, container := buildListDoc(t, "", numberedItems(2)...)
	ctrl := New(doc)

	assert.Nil(t, ctrl.Lookup(container), "lookup never registers")
	state := ctrl.Register(container)
	assert.Same(t, state, ctrl.Lookup(container))
}
