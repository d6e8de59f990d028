package dom

import "strings"

// styleDecl is one "property: value" declaration from an inline style
// attribute. Order is preserved when the attribute is rewritten.
type styleDecl struct {
	prop  string
	value string
}

func parseStyle(style string) []styleDecl {
	var decls []styleDecl
	for _, chunk := range strings.Split(style, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		prop, value, found := strings.Cut(chunk, ":")
		if !found {
			continue
		}
		decls = append(decls, styleDecl{
			prop:  strings.ToLower(strings.TrimSpace(prop)),
			value: strings.TrimSpace(value),
		})
	}
	return decls
}

func renderStyle(decls []styleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// StyleProperty returns the value of an inline style property, or "".
// The last declaration wins, matching browser behavior.
func (e *Element) StyleProperty(prop string) string {
	if e == nil {
		return ""
	}
	prop = strings.ToLower(prop)
	value := ""
	for _, d := range parseStyle(e.Attr("style")) {
		if d.prop == prop {
			value = d.value
		}
	}
	return value
}

// SetStyleProperty sets or replaces an inline style property.
func (e *Element) SetStyleProperty(prop, value string) {
	prop = strings.ToLower(prop)
	decls := parseStyle(e.Attr("style"))
	replaced := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, styleDecl{prop: prop, value: value})
	}
	e.SetAttr("style", renderStyle(decls))
}

// RemoveStyleProperty deletes an inline style property; the style attribute
// is dropped when it becomes empty.
func (e *Element) RemoveStyleProperty(prop string) {
	prop = strings.ToLower(prop)
	decls := parseStyle(e.Attr("style"))
	kept := decls[:0]
	for _, d := range decls {
		if d.prop != prop {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", renderStyle(kept))
}
