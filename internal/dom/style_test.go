package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleProperty(t *testing.T) {
	tests := []struct {
		name  string
		style string
		prop  string
		want  string
	}{
		{name: "single property", style: "display: none", prop: "display", want: "none"},
		{name: "among others", style: "color: red; display: flex; margin: 0", prop: "display", want: "flex"},
		{name: "absent property", style: "color: red", prop: "display", want: ""},
		{name: "no style attribute", style: "", prop: "display", want: ""},
		{name: "case-insensitive property", style: "DISPLAY: block", prop: "display", want: "block"},
		{name: "last declaration wins", style: "display: block; display: none", prop: "display", want: "none"},
		{name: "malformed chunk skipped", style: "display; color: red", prop: "color", want: "red"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewElement("div")
			if tt.style != "" {
				el.SetAttr("style", tt.style)
			}
			assert.Equal(t, tt.want, el.StyleProperty(tt.prop))
		})
	}
}

func TestSetStyleProperty(t *testing.T) {
	el := NewElement("div")

	el.SetStyleProperty("display", "none")
	assert.Equal(t, "display: none", el.Attr("style"))

	// Other declarations survive a replacement, in order.
	el.SetAttr("style", "color: red; display: block")
	el.SetStyleProperty("display", "none")
	assert.Equal(t, "color: red; display: none", el.Attr("style"))
	assert.Equal(t, "none", el.StyleProperty("display"))
}

func TestRemoveStyleProperty(t *testing.T) {
	el := NewElement("div")
	el.SetAttr("style", "color: red; display: none")

	el.RemoveStyleProperty("display")
	assert.Equal(t, "color: red", el.Attr("style"))

	el.RemoveStyleProperty("color")
	assert.False(t, el.HasAttr("style"), "empty style attribute is dropped")

	require.NotPanics(t, func() { el.RemoveStyleProperty("display") })
}
