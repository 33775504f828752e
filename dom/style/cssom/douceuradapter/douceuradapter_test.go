package douceuradapter

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var sampleCSS = `/* sample */
body {
    font-size: 14px;
    color: black;
}
div.box > p:first { margin: 3px 6px; width: [[ pwidth | 100px ]] !important }
`

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	sheet := Parse(sampleCSS)
	require.Empty(t, sheet.Errors())
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "body", rules[0].Selector())
	assert.Equal(t, []string{"font-size", "color"}, rules[0].Properties())
	assert.Equal(t, "14px", rules[0].Value(0))
	line, col := sheet.Location(rules[0].PropertyOffset(1))
	if line != 4 || col != 5 {
		t.Errorf("expected 'color' at 4:5, is %d:%d", line, col)
	}
	assert.Equal(t, "div.box > p:first", rules[1].Selector())
	assert.True(t, rules[1].IsImportant(1))
	assert.Equal(t, "[[ pwidth | 100px ]]", rules[1].Value(1))
	line, _ = sheet.Location(rules[1].Offset())
	assert.Equal(t, 6, line)
}

func TestParseRecovers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	text := `div { width: 10px; oops; height: 5px }
@media screen { p { color: red } }
p { color: blue }
span {`
	sheet := Parse(text)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, []string{"width", "height"}, rules[0].Properties())
	assert.Equal(t, "p", rules[1].Selector())
	errs := sheet.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, 1, errs[0].Line)
	assert.Equal(t, 20, errs[0].Column)
	assert.Equal(t, "oops", errs[0].Snippet)
	assert.True(t, errors.Is(errs[1], ErrAtRule))
	assert.Equal(t, 2, errs[1].Line)
	assert.True(t, errors.Is(errs[2], ErrSyntax))
	assert.Equal(t, 4, errs[2].Line)
}

func TestCompileParsedSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	sheet, errs := cssom.Compile(Parse(sampleCSS + "\np { colour: red }"))
	require.Len(t, errs, 1)
	assert.Equal(t, 8, errs[0].Line)
	assert.True(t, cssom.IsParseError(errs[0], css.ErrUnknownProperty))
	require.Len(t, sheet.Rules, 3)
	decls := sheet.Rules[1].Declarations
	require.Len(t, decls, 5) // 4 margins + width
	assert.True(t, decls[4].IsDynamic())
	t.Logf("\n%s", sheet)
	// a compiled sheet prints to CSS text which compiles to an equal sheet
	again, errs := cssom.Compile(Parse(sheet.String()))
	require.Empty(t, errs)
	require.Len(t, again.Rules, len(sheet.Rules))
	for i := range again.Rules {
		assert.Equal(t, sheet.Rules[i].String(), again.Rules[i].String())
	}
}

func TestParseInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	r, errs := ParseInline("width: 100px; ; color: rgb(1, 2, 3); bad")
	require.Len(t, errs, 1)
	assert.Equal(t, 38, errs[0].Column)
	assert.Equal(t, []string{"width", "color"}, r.Properties())
	assert.Equal(t, "", r.Selector())
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head><style>p { color: red }</style></head>
<body><style>div { width: 1px } img { height: 2px }</style><style></style></body></html>`))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Len(t, sheets[0].Rules(), 1)
	assert.Len(t, sheets[1].Rules(), 2)
}
