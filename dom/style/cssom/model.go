package cssom

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/guistyle/css"
)

// ErrDynamicSyntax is wrapped by errors from parsing dynamic declarations
// of the form '[[ id | default ]]'.
var ErrDynamicSyntax = errors.New("invalid dynamic CSS declaration")

// Declaration is a CSS declaration. It is either static, holding a fixed
// property value, or dynamic, holding an id which nodes may override at
// runtime together with a default value.
type Declaration struct {
	dynamicID string
	prop      css.Property // static value, or default of a dynamic declaration
}

// Static creates a static declaration.
func Static(p css.Property) Declaration {
	return Declaration{prop: p}
}

// Dynamic creates a dynamic declaration, overridable at runtime under id.
func Dynamic(id string, def css.Property) Declaration {
	return Declaration{dynamicID: id, prop: def}
}

// IsDynamic is true for dynamic declarations.
func (d Declaration) IsDynamic() bool { return d.dynamicID != "" }

// DynamicID returns the id of a dynamic declaration or "".
func (d Declaration) DynamicID() string { return d.dynamicID }

// Property returns the value of a static declaration or the default value
// of a dynamic one.
func (d Declaration) Property() css.Property { return d.prop }

// Type returns the property type of the declaration.
func (d Declaration) Type() css.PropertyType { return d.prop.Type() }

func (d Declaration) String() string {
	if d.IsDynamic() {
		return fmt.Sprintf("%s: [[ %s | %s ]]", d.prop.Key(), d.dynamicID, d.prop.ValueString())
	}
	return d.prop.String()
}

// Equal compares two declarations by value.
func (d Declaration) Equal(other Declaration) bool {
	return d.dynamicID == other.dynamicID && d.prop.Equal(other.prop)
}

// IsDynamicValue checks if a value text is written in dynamic syntax,
// i.e. starts with '[[' or ends with ']]'.
func IsDynamicValue(value string) bool {
	value = strings.TrimSpace(value)
	return strings.HasPrefix(value, "[[") || strings.HasSuffix(value, "]]")
}

// ParseDeclaration parses the value text of a longhand property, which may
// be static or dynamic.
func ParseDeclaration(t css.PropertyType, value string) (Declaration, error) {
	value = strings.TrimSpace(value)
	open, closed := strings.HasPrefix(value, "[["), strings.HasSuffix(value, "]]")
	switch {
	case open && closed:
		return parseDynamic(t, value)
	case open || closed:
		return Declaration{}, fmt.Errorf("%w: unclosed braces in %q", ErrDynamicSyntax, value)
	}
	p, err := css.ParseProperty(t, value)
	if err != nil {
		return Declaration{}, err
	}
	return Static(p), nil
}

// parseDynamic parses "[[ id | 400px ]]".
func parseDynamic(t css.PropertyType, value string) (Declaration, error) {
	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(value, "[["), "]]"))
	id, def, hasPipe := strings.Cut(inner, "|")
	id, def = strings.TrimSpace(id), strings.TrimSpace(def)
	if !hasPipe {
		if id == "" {
			return Declaration{}, fmt.Errorf("%w: empty braces", ErrDynamicSyntax)
		}
		if _, err := css.ParseProperty(t, id); err == nil {
			return Declaration{}, fmt.Errorf("%w: no id in %q", ErrDynamicSyntax, value)
		}
		return Declaration{}, fmt.Errorf("%w: no default value in %q", ErrDynamicSyntax, value)
	}
	switch {
	case id == "" && def == "":
		return Declaration{}, fmt.Errorf("%w: empty braces", ErrDynamicSyntax)
	case id == "":
		return Declaration{}, fmt.Errorf("%w: no id in %q", ErrDynamicSyntax, value)
	case def == "":
		return Declaration{}, fmt.Errorf("%w: no default value in %q", ErrDynamicSyntax, value)
	}
	if unicode.IsDigit([]rune(id)[0]) {
		return Declaration{}, fmt.Errorf("%w: invalid id %q", ErrDynamicSyntax, id)
	}
	if _, err := css.ParseProperty(t, id); err == nil {
		return Declaration{}, fmt.Errorf("%w: id %q is a CSS value", ErrDynamicSyntax, id)
	}
	p, err := css.ParseProperty(t, def)
	if err != nil {
		return Declaration{}, err
	}
	return Dynamic(id, p), nil
}

// --- Rule blocks and stylesheets ---------------------------------------------

// RuleBlock is a selector path together with its declarations.
type RuleBlock struct {
	Path         Path
	Declarations []Declaration
}

func (rb RuleBlock) String() string {
	var b strings.Builder
	b.WriteString(rb.Path.String())
	b.WriteString(" {\n")
	for _, d := range rb.Declarations {
		b.WriteString("    ")
		b.WriteString(d.String())
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Stylesheet is a list of rule blocks in source order.
type Stylesheet struct {
	Rules []RuleBlock
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// String serialises the stylesheet to CSS text, which parses back to an
// equal stylesheet.
func (sheet *Stylesheet) String() string {
	if sheet == nil {
		return ""
	}
	parts := make([]string, len(sheet.Rules))
	for i, r := range sheet.Rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n")
}

// Css is a list of stylesheets. Rules of later stylesheets win over rules
// of earlier ones with equal specificity.
type Css struct {
	Stylesheets []*Stylesheet
}

// NewCss creates a Css from stylesheets.
func NewCss(sheets ...*Stylesheet) *Css {
	return &Css{Stylesheets: sheets}
}

// Append appends the stylesheets of other.
func (c *Css) Append(other *Css) *Css {
	if other != nil {
		c.Stylesheets = append(c.Stylesheets, other.Stylesheets...)
	}
	return c
}

// IsEmpty checks if c contains no rules.
func (c *Css) IsEmpty() bool {
	if c == nil {
		return true
	}
	for _, s := range c.Stylesheets {
		if !s.Empty() {
			return false
		}
	}
	return true
}

// RuleCount returns the number of rule blocks of all stylesheets.
func (c *Css) RuleCount() int {
	n := 0
	if c != nil {
		for _, s := range c.Stylesheets {
			n += len(s.Rules)
		}
	}
	return n
}

// String serialises all stylesheets, separated by a comment line.
func (c *Css) String() string {
	if c == nil {
		return ""
	}
	parts := make([]string, 0, len(c.Stylesheets))
	for i, s := range c.Stylesheets {
		parts = append(parts, fmt.Sprintf("/* stylesheet %d */\n%s", i, s))
	}
	return strings.Join(parts, "\n")
}

// MatchedRule is a rule block selected for a node, with its position in
// the cascade.
type MatchedRule struct {
	Rule        *RuleBlock
	Specificity Specificity
	Sheet       int // index of the stylesheet
	Index       int // index of the rule within its stylesheet
}

// Less orders matched rules by specificity, then stylesheet order, then
// rule order. Later rules in this order win.
func (m MatchedRule) Less(other MatchedRule) bool {
	if m.Specificity != other.Specificity {
		return m.Specificity.Less(other.Specificity)
	}
	if m.Sheet != other.Sheet {
		return m.Sheet < other.Sheet
	}
	return m.Index < other.Index
}
