package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/guistyle/css"
)

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property types into groups is documented with
// GroupNameFor(…).
type PropertyGroup struct {
	name   string
	Parent *PropertyGroup
	props  map[css.PropertyType]css.Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	var b strings.Builder
	b.WriteString("[" + pg.name + "] =\n")
	for _, p := range pg.Properties() {
		b.WriteString(fmt.Sprintf("  %s\n", p))
	}
	return b.String()
}

// Properties returns all properties of a group, ordered by property type.
func (pg *PropertyGroup) Properties() []css.Property {
	r := make([]css.Property, 0, len(pg.props))
	for _, p := range pg.props {
		r = append(r, p)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Type() < r[j].Type() })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(t css.PropertyType) bool {
	if pg == nil || pg.props == nil {
		return false
	}
	p, ok := pg.props[t]
	return ok && p.IsValid()
}

// Get a property's value.
func (pg *PropertyGroup) Get(t css.PropertyType) (css.Property, bool) {
	if pg == nil || pg.props == nil {
		return css.Property{}, false
	}
	p, ok := pg.props[t]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pg *PropertyGroup) Set(p css.Property) {
	if !p.IsValid() {
		return
	}
	if pg.props == nil {
		pg.props = make(map[css.PropertyType]css.Property)
	}
	pg.props[p.Type()] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(p css.Property) {
	if pg.IsSet(p.Type()) {
		return
	}
	pg.Set(p)
}

// ForkOnProperty creates a new PropertyGroup, pre-filled with a given property.
// The new group links to pg as its parent. If 'cascade' is true and the
// ancesting PropertyGroup containing this property already holds an equal
// value, pg is returned unchanged and the second return value is false.
func (pg *PropertyGroup) ForkOnProperty(p css.Property, cascade bool) (*PropertyGroup, bool) {
	var ancestor *PropertyGroup
	if cascade {
		ancestor = pg.Cascade(p.Type())
		if ancestor != nil {
			p2, _ := ancestor.Get(p.Type())
			if p2.Equal(p) {
				return pg, false
			}
		}
	}
	npg := NewPropertyGroup(pg.name)
	npg.Parent = pg
	npg.Set(p)
	return npg, true
}

// Cascade finds the ancesting PropertyGroup containing the given property
// type. It returns nil if no group in the chain sets the property.
func (pg *PropertyGroup) Cascade(t css.PropertyType) *PropertyGroup {
	it := pg
	for it != nil && !it.IsSet(t) { // stopper is the defaults group
		it = it.Parent
	}
	if it == nil {
		tracer().Debugf("styling: no property group %s found with key '%s'", pg.Name(), t.Key())
	}
	return it
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins    = "Margins"
	PGPadding    = "Padding"
	PGBorder     = "Border"
	PGDimension  = "Dimension"
	PGDisplay    = "Display"
	PGFlex       = "Flex"
	PGColor      = "Color"
	PGBackground = "Background"
	PGText       = "Text"
	PGEffects    = "Effects"
	PGScrollbar  = "Scrollbar"
)

// GroupNames returns the names of all property groups.
func GroupNames() []string {
	return []string{PGMargins, PGPadding, PGBorder, PGDimension, PGDisplay, PGFlex,
		PGColor, PGBackground, PGText, PGEffects, PGScrollbar}
}

// GroupNameFor returns the style property group name for a property type.
// Example:
//
//    GroupNameFor(css.PropMarginTop) => "Margins"
//
func GroupNameFor(t css.PropertyType) string {
	switch t {
	case css.PropMarginTop, css.PropMarginRight, css.PropMarginBottom, css.PropMarginLeft:
		return PGMargins
	case css.PropPaddingTop, css.PropPaddingRight, css.PropPaddingBottom, css.PropPaddingLeft:
		return PGPadding
	case css.PropWidth, css.PropHeight, css.PropMinWidth, css.PropMinHeight,
		css.PropMaxWidth, css.PropMaxHeight, css.PropBoxSizing:
		return PGDimension
	case css.PropDisplay, css.PropFloat, css.PropPosition, css.PropTop, css.PropRight,
		css.PropBottom, css.PropLeft, css.PropOverflowX, css.PropOverflowY:
		return PGDisplay
	case css.PropFlexWrap, css.PropFlexDirection, css.PropFlexGrow, css.PropFlexShrink,
		css.PropJustifyContent, css.PropAlignItems, css.PropAlignContent:
		return PGFlex
	case css.PropTextColor:
		return PGColor
	case css.PropBackgroundContent, css.PropBackgroundPosition, css.PropBackgroundSize,
		css.PropBackgroundRepeat:
		return PGBackground
	case css.PropFontSize, css.PropFontFamily, css.PropTextAlign, css.PropLetterSpacing,
		css.PropLineHeight, css.PropWordSpacing, css.PropTabWidth, css.PropCursor,
		css.PropWhiteSpace, css.PropDirection, css.PropHyphens:
		return PGText
	case css.PropScrollbarStyle:
		return PGScrollbar
	}
	if t >= css.PropBorderTopLeftRadius && t <= css.PropBorderBottomWidth {
		return PGBorder
	}
	return PGEffects
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(t css.PropertyType) bool {
	return t.IsInheritable()
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a DOM node links to a property map,
// which contains zero or more property groups. Property maps may share property groups.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	if pmap != nil {
		for _, name := range GroupNames() {
			if g := pmap.m[name]; g != nil {
				b.WriteString(g.String())
			}
		}
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// SetGroup links a property group to the map, replacing an existing group
// of the same name.
func (pmap *PropertyMap) SetGroup(group *PropertyGroup) {
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	pmap.m[group.name] = group
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed.
func (pmap *PropertyMap) Property(t css.PropertyType) (css.Property, bool) {
	group := pmap.Group(GroupNameFor(t))
	if group == nil {
		return css.Property{}, false
	}
	return group.Get(t)
}

// Properties returns all properties set locally in the map, ordered by
// property type.
func (pmap *PropertyMap) Properties() []css.Property {
	var r []css.Property
	if pmap == nil {
		return r
	}
	for _, g := range pmap.m {
		r = append(r, g.Properties()...)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Type() < r[j].Type() })
	return r
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
//
// If the property map does not yet contain a group of this kind, it will
// simply set this group (instead of copying values).
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	g := pmap.Group(group.name)
	if g == nil {
		pmap.SetGroup(group)
		return pmap
	}
	for _, p := range group.props {
		if overwrite {
			g.Set(p)
		} else {
			g.Add(p)
		}
	}
	return pmap
}

// Add adds a property to this property map, overwriting an existing
// value, e.g.,
//
//    pm.Add(css.Exactly(css.PropWidth, css.PxOf[css.LayoutWidth](10)))
//
func (pmap *PropertyMap) Add(p css.Property) {
	if pmap == nil || !p.IsValid() {
		return
	}
	groupname := GroupNameFor(p.Type())
	group := pmap.Group(groupname)
	if group == nil {
		group = NewPropertyGroup(groupname)
		pmap.SetGroup(group)
	}
	group.Set(p)
}

// ScaleForDPI returns a copy of the map with all pixel values scaled.
// Group parents are not copied.
func (pmap *PropertyMap) ScaleForDPI(factor float32) *PropertyMap {
	scaled := NewPropertyMap()
	for _, p := range pmap.Properties() {
		scaled.Add(p.ScaleForDPI(factor))
	}
	return scaled
}
