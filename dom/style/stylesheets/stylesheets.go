/*
Package stylesheets provides the CSS entry points of the GUI: the native
stylesheet of the built-in node types and widgets, and stylesheets parsed
from CSS text.

Parsing CSS text never fails as a whole. Rules with invalid selectors and
invalid or unknown declarations are dropped and reported:

    c, errs := stylesheets.OverrideNative(`.big { color: blue }`)
    for _, err := range errs {
        log.Println(err) // e.g. "3:5: invalid CSS value: … (in "colr: red")"
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stylesheets

import (
	_ "embed"
	"sync"

	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("guistyle.cssom")
}

//go:embed native.css
var nativeCSS string

var native struct {
	once  sync.Once
	sheet *cssom.Stylesheet
}

// NativeSource returns the CSS text of the native stylesheet.
func NativeSource() string {
	return nativeCSS
}

// Native returns the built-in stylesheet for body, paragraphs, images,
// scrollbars and the native widgets (buttons, labels, text inputs).
// The returned Css may be modified by clients; the native rules are shared.
func Native() *cssom.Css {
	native.once.Do(func() {
		var errs []*cssom.ParseError
		native.sheet, errs = parseSheet(nativeCSS)
		for _, err := range errs {
			tracer().Errorf("native stylesheet: %v", err)
		}
	})
	return cssom.NewCss(native.sheet)
}

// FromString parses CSS text into a Css holding a single stylesheet.
// Problems are reported as parse errors; the stylesheet contains every
// rule and declaration which survived.
func FromString(s string) (*cssom.Css, []*cssom.ParseError) {
	sheet, errs := parseSheet(s)
	return cssom.NewCss(sheet), errs
}

// OverrideNative parses CSS text and appends it to the native stylesheet.
// Rules of s win over native rules of equal specificity.
func OverrideNative(s string) (*cssom.Css, []*cssom.ParseError) {
	user, errs := FromString(s)
	return Native().Append(user), errs
}

// FromStrings parses multiple CSS texts into a Css with one stylesheet
// per text, in order.
func FromStrings(texts ...string) (*cssom.Css, []*cssom.ParseError) {
	c := cssom.NewCss()
	var errs []*cssom.ParseError
	for _, text := range texts {
		sheet, e := parseSheet(text)
		c.Stylesheets = append(c.Stylesheets, sheet)
		errs = append(errs, e...)
	}
	return c, errs
}

func parseSheet(s string) (*cssom.Stylesheet, []*cssom.ParseError) {
	sheet, errs := cssom.Compile(douceuradapter.Parse(s))
	tracer().Debugf("stylesheet with %d rules, %d errors", len(sheet.Rules), len(errs))
	return sheet, errs
}
