package style

import (
	"github.com/npillmayer/guistyle/css"
)

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties. Every group of the
// returned map holds the default of each of its property types, so group
// chains of styled nodes always end in a group where a lookup succeeds.
//
// Additional properties override the built-in defaults.
func InitializeDefaultPropertyValues(additionalProps []css.Property) *PropertyMap {
	pmap := NewPropertyMap()
	for _, name := range GroupNames() {
		pmap.SetGroup(NewPropertyGroup(name))
	}
	for _, t := range css.PropertyTypes() {
		pmap.Add(css.DefaultFor(t))
	}
	for _, p := range additionalProps {
		pmap.Add(p)
	}
	return pmap
}

// DisplayForTag returns the default `display` CSS property for a node tag,
// as produced by dom.NodeType.Tag().
func DisplayForTag(tag string) css.LayoutDisplay {
	switch tag {
	case "body", "div", "p":
		return css.DisplayBlock
	case "img", "texture", "iframe":
		return css.DisplayInlineBlock
	case "":
		return css.DisplayNone
	}
	tracer().Infof("unknown node tag %q will be set to display: block", tag)
	return css.DisplayBlock
}
