package dom

import (
	"strconv"
	"strings"

	"github.com/npillmayer/guistyle/callbacks"
	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/style/cssom/douceuradapter"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dom is a tree of nodes.
type Dom struct {
	Root      NodeData
	Children  []*Dom
	estimated int // number of descendants
}

func newDom(t NodeType) *Dom {
	return &Dom{Root: NodeData{Type: t}}
}

// Div creates a div node.
func Div() *Dom { return newDom(NodeType{kind: KindDiv}) }

// Body creates a body node.
func Body() *Dom { return newDom(NodeType{kind: KindBody}) }

// Label creates a label node showing s.
func Label(s string) *Dom { return newDom(NodeType{kind: KindLabel, label: s}) }

// Text creates a node showing a cached text.
func Text(id TextID) *Dom { return newDom(NodeType{kind: KindText, id: uint32(id)}) }

// Image creates a node showing an image.
func Image(id ImageID) *Dom { return newDom(NodeType{kind: KindImage, id: uint32(id)}) }

// GlTexture creates a node showing a texture rendered by cb.
func GlTexture(cb callbacks.GlCallback, data *callbacks.RefAny) *Dom {
	return newDom(NodeType{kind: KindGlTexture, gl: cb, data: data})
}

// IFrame creates a node whose content is created by cb.
func IFrame(cb IFrameCallback, data *callbacks.RefAny) *Dom {
	return newDom(NodeType{kind: KindIFrame, iframe: cb, data: data})
}

// FromChildren creates a div with the given children.
func FromChildren(children ...*Dom) *Dom {
	return Div().WithChildren(children...)
}

// EstimatedTotalChildren returns the number of descendants of d.
func (d *Dom) EstimatedTotalChildren() int { return d.estimated }

// NodeCount returns the estimated number of nodes of d, including d. Node
// ids are counted with Size.
func (d *Dom) NodeCount() int { return d.estimated + 1 }

// AddChild appends a child.
func (d *Dom) AddChild(child *Dom) {
	if child == nil {
		return
	}
	d.estimated += child.estimated + 1
	d.Children = append(d.Children, child)
}

// WithChild appends a child.
func (d *Dom) WithChild(child *Dom) *Dom {
	d.AddChild(child)
	return d
}

// WithChildren appends children.
func (d *Dom) WithChildren(children ...*Dom) *Dom {
	for _, c := range children {
		d.AddChild(c)
	}
	return d
}

// AddID adds an id.
func (d *Dom) AddID(id string) { d.Root.IDs = append(d.Root.IDs, id) }

// WithID adds an id.
func (d *Dom) WithID(id string) *Dom {
	d.AddID(id)
	return d
}

// AddClass adds a class.
func (d *Dom) AddClass(class string) { d.Root.Classes = append(d.Root.Classes, class) }

// WithClass adds a class.
func (d *Dom) WithClass(class string) *Dom {
	d.AddClass(class)
	return d
}

// AddCallback registers a callback for events matching filter.
func (d *Dom) AddCallback(filter callbacks.EventFilter, cb callbacks.Callback, data *callbacks.RefAny) {
	d.Root.Callbacks = append(d.Root.Callbacks, CallbackData{Filter: filter, Callback: cb, Data: data})
}

// WithCallback registers a callback for events matching filter.
func (d *Dom) WithCallback(filter callbacks.EventFilter, cb callbacks.Callback, data *callbacks.RefAny) *Dom {
	d.AddCallback(filter, cb, data)
	return d
}

// AddDynamicOverride overrides the dynamic CSS declaration id for the node.
func (d *Dom) AddDynamicOverride(id string, p css.Property) {
	d.Root.DynamicOverrides = append(d.Root.DynamicOverrides, DynamicOverride{ID: id, Property: p})
}

// WithDynamicOverride overrides the dynamic CSS declaration id for the node.
func (d *Dom) WithDynamicOverride(id string, p css.Property) *Dom {
	d.AddDynamicOverride(id, p)
	return d
}

// AddInlineStyle parses CSS declarations as found in a style attribute,
// e.g. "width: 10px; color: red", and adds them to the node. Declarations
// with errors are dropped and reported.
func (d *Dom) AddInlineStyle(style string) []*cssom.ParseError {
	rule, errs := douceuradapter.ParseInline(style)
	for i, key := range rule.Properties() {
		decls, err := cssom.CompileDeclaration(key, rule.Value(i))
		if err != nil {
			tracer().Infof("dropping inline declaration: %v", err)
			line, col := position(style, rule.PropertyOffset(i))
			errs = append(errs, &cssom.ParseError{Line: line, Column: col,
				Snippet: rule.PropertySnippet(i), Err: err})
			continue
		}
		d.Root.InlineStyle = append(d.Root.InlineStyle, decls...)
	}
	return errs
}

// position returns line and column of a byte offset, starting at 1.
func position(text string, offset int) (int, int) {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return line, col
}

// WithInlineStyle parses CSS declarations as found in a style attribute.
// Errors are traced and the offending declarations are dropped.
func (d *Dom) WithInlineStyle(style string) *Dom {
	for _, err := range d.AddInlineStyle(style) {
		tracer().Errorf("inline style of %s: %v", d.Root.String(), err)
	}
	return d
}

// WithInlineProperty adds a property to the inline style of the node.
func (d *Dom) WithInlineProperty(p css.Property) *Dom {
	d.Root.InlineStyle = append(d.Root.InlineStyle, cssom.Static(p))
	return d
}

// SetTabIndex sets the tab index of the node.
func (d *Dom) SetTabIndex(ti TabIndex) { d.Root.SetTabIndex(ti) }

// WithTabIndex sets the tab index of the node.
func (d *Dom) WithTabIndex(ti TabIndex) *Dom {
	d.SetTabIndex(ti)
	return d
}

// SetDraggable sets the draggable flag of the node.
func (d *Dom) SetDraggable(draggable bool) { d.Root.IsDraggable = draggable }

// WithDraggable sets the draggable flag of the node.
func (d *Dom) WithDraggable(draggable bool) *Dom {
	d.SetDraggable(draggable)
	return d
}

// SetDataset attaches arbitrary data to the node.
func (d *Dom) SetDataset(data *callbacks.RefAny) { d.Root.Dataset = data }

// WithDataset attaches arbitrary data to the node.
func (d *Dom) WithDataset(data *callbacks.RefAny) *Dom {
	d.SetDataset(data)
	return d
}

// Clone returns a deep copy of the tree. State cells are shared between
// the copies.
func (d *Dom) Clone() *Dom {
	c := &Dom{Root: d.Root.clone(), estimated: d.estimated}
	if len(d.Children) > 0 {
		c.Children = make([]*Dom, len(d.Children))
		for i, ch := range d.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// --- Debug output ----------------------------------------------------------

// HTMLString renders d as pretty-printed pseudo-HTML. Nodes without
// children and without content are rendered as self-closing tags.
//
//	<div id="a" class="b c" tabindex="0">
//	    <p>
//	        Hello
//	    </p>
//	</div>
func (d *Dom) HTMLString() string {
	var b strings.Builder
	d.writeHTML(&b, 0)
	return b.String()
}

func (d *Dom) writeHTML(b *strings.Builder, indent int) {
	tabs := strings.Repeat("    ", indent)
	content, hasContent := d.Root.Type.Content()
	selfClosing := len(d.Children) == 0 && !hasContent
	path := d.Root.Type.Path()
	b.WriteString(tabs)
	b.WriteString("<" + path + d.Root.attributes())
	if selfClosing {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">\n")
	if hasContent {
		b.WriteString(tabs + "    ")
		b.WriteString(html.EscapeString(content))
		b.WriteString("\n")
	}
	for _, c := range d.Children {
		c.writeHTML(b, indent+1)
	}
	b.WriteString(tabs)
	b.WriteString("</" + path + ">\n")
}

// attributes renders id, class, tabindex, draggable, callbacks,
// css-overrides and style, in this order.
func (nd *NodeData) attributes() string {
	var b strings.Builder
	attr := func(name, value string) {
		b.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
	}
	if len(nd.IDs) > 0 {
		attr("id", strings.Join(nd.IDs, " "))
	}
	if len(nd.Classes) > 0 {
		attr("class", strings.Join(nd.Classes, " "))
	}
	if ti, ok := nd.TabIndex().Get(); ok {
		attr("tabindex", strconv.Itoa(ti.Index()))
	}
	if nd.IsDraggable {
		attr("draggable", "true")
	}
	if len(nd.Callbacks) > 0 {
		filters := make([]string, len(nd.Callbacks))
		for i, cb := range nd.Callbacks {
			filters[i] = cb.Filter.String()
		}
		attr("callbacks", strings.Join(filters, " "))
	}
	if len(nd.DynamicOverrides) > 0 {
		overrides := make([]string, len(nd.DynamicOverrides))
		for i, o := range nd.DynamicOverrides {
			overrides[i] = o.ID + "=" + o.Property.ValueString() + ";"
		}
		attr("css-overrides", strings.Join(overrides, " "))
	}
	if len(nd.InlineStyle) > 0 {
		decls := make([]string, len(nd.InlineStyle))
		for i, decl := range nd.InlineStyle {
			decls[i] = decl.String()
		}
		attr("style", strings.Join(decls, "; "))
	}
	return b.String()
}

// Dump renders the tree structure of d.
func (d *Dom) Dump() string {
	t := treeprint.NewWithRoot(d.Root.String())
	for _, c := range d.Children {
		c.dump(t)
	}
	return t.String()
}

func (d *Dom) dump(parent treeprint.Tree) {
	if len(d.Children) == 0 {
		parent.AddNode(d.Root.String())
		return
	}
	branch := parent.AddBranch(d.Root.String())
	for _, c := range d.Children {
		c.dump(branch)
	}
}
