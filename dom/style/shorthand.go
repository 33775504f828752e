package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/guistyle/css"
)

// KeyValue is a CSS declaration in textual form, e.g.
//
//     margin-top: 3px
//
type KeyValue struct {
	Key   string
	Value string
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value
}

// IsShorthand returns true if key denotes a shorthand property, which
// SplitCompoundProperty is able to expand.
func IsShorthand(key string) bool {
	if _, ok := css.CombinedPropertyTypeFromKey(key); ok {
		return true
	}
	switch key {
	case "border-width", "border-style", "border-color":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//    SplitCompoundProperty("padding", "3px 6px")
//
// will return
//
//    "padding-top"    => "3px"
//    "padding-right"  => "6px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "6px"
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value string) ([]KeyValue, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: empty value for %s", css.ErrInvalidValue, key)
	}
	fields := css.SplitComponents(value)
	switch key {
	case "margin", "padding":
		return feazeCompound4(key, "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		if strings.Contains(value, "/") {
			return nil, fmt.Errorf("%w: elliptical border-radius not supported", css.ErrInvalidValue)
		}
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "overflow":
		switch len(fields) {
		case 1:
			return []KeyValue{{"overflow-x", fields[0]}, {"overflow-y", fields[0]}}, nil
		case 2:
			return []KeyValue{{"overflow-x", fields[0]}, {"overflow-y", fields[1]}}, nil
		}
		return nil, fmt.Errorf("%w: expecting 1 or 2 values for overflow", css.ErrInvalidValue)
	case "border":
		return splitBorder(fourDirs[:], value, fields)
	case "border-top", "border-right", "border-bottom", "border-left":
		return splitBorder([]string{strings.TrimPrefix(key, "border-")}, value, fields)
	case "box-shadow":
		r := make([]KeyValue, 4)
		for i, dir := range fourDirs {
			r[i] = KeyValue{"-azul-box-shadow-" + dir, value}
		}
		return r, nil
	case "background-color", "background-image":
		return []KeyValue{{"background", value}}, nil
	}
	return nil, fmt.Errorf("%w: not recognized as compound property: %s", css.ErrUnknownProperty, key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
//
// dirs is ordered top, right, bottom, left, or for corners top-left,
// top-right, bottom-right, bottom-left.
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("%w: expecting 1-4 values for %s", css.ErrInvalidValue, p(pre, suf, "*"))
	}
	var v [4]string
	switch l {
	case 1:
		v = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		v = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		v = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		v = [4]string{fields[0], fields[1], fields[2], fields[3]}
	}
	r := make([]KeyValue, 4)
	for i := range r {
		r[i] = KeyValue{p(pre, suf, dirs[i]), v[i]}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// Border widths for the CSS keywords.
var borderWidthKeywords = map[string]string{
	"thin":   "1px",
	"medium": "3px",
	"thick":  "5px",
}

// splitBorder distributes 'width style color' to the given sides. Parts
// may appear in any order; missing parts are set to 'initial'.
func splitBorder(sides []string, value string, fields []string) ([]KeyValue, error) {
	width, style, color := "initial", "initial", "initial"
	switch strings.ToLower(value) {
	case "initial", "inherit":
		width, style, color = value, value, value
		fields = nil
	}
	var haveWidth, haveStyle, haveColor bool
	for _, f := range fields {
		lf := strings.ToLower(f)
		if w, ok := borderWidthKeywords[lf]; ok && !haveWidth {
			width, haveWidth = w, true
			continue
		}
		if _, err := css.ParseBorderStyle(lf); err == nil && !haveStyle {
			style, haveStyle = lf, true
			continue
		}
		if px, err := css.ParsePixelValue(f); err == nil && !haveWidth && !px.IsPercent() {
			width, haveWidth = f, true
			continue
		}
		if _, err := css.ParseColor(f); err == nil && !haveColor {
			color, haveColor = f, true
			continue
		}
		return nil, fmt.Errorf("%w: cannot interpret %q in border %q", css.ErrInvalidValue, f, value)
	}
	r := make([]KeyValue, 0, 3*len(sides))
	for _, side := range sides {
		r = append(r, KeyValue{p("border", "width", side), width})
	}
	for _, side := range sides {
		r = append(r, KeyValue{p("border", "style", side), style})
	}
	for _, side := range sides {
		r = append(r, KeyValue{p("border", "color", side), color})
	}
	return r, nil
}

// ExpandDeclaration parses a declaration into typed properties. Longhand
// keys produce a single property, shorthands one property per longhand.
func ExpandDeclaration(key, value string) ([]css.Property, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := css.PropertyTypeFromKey(key); ok {
		prop, err := css.ParsePropertyByKey(key, value)
		if err != nil {
			return nil, err
		}
		return []css.Property{prop}, nil
	}
	kvs, err := SplitCompoundProperty(key, value)
	if err != nil {
		return nil, err
	}
	props := make([]css.Property, 0, len(kvs))
	for _, kv := range kvs {
		prop, err := css.ParsePropertyByKey(kv.Key, kv.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		props = append(props, prop)
	}
	tracer().Debugf("expanded %s into %d properties", key, len(props))
	return props, nil
}
