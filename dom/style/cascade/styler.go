package cascade

import (
	"errors"
	"fmt"

	"github.com/npillmayer/guistyle/css"
	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/styledtree"
	"github.com/npillmayer/guistyle/tree"
)

// Styler computes styles for Doms from a set of stylesheets.
type Styler struct {
	css      *cssom.Css
	defaults *style.PropertyMap
}

// NewStyler creates a styler for the stylesheets in c. Additional
// properties replace the built-in defaults, e.g. a default font size.
func NewStyler(c *cssom.Css, defaults ...css.Property) *Styler {
	return &Styler{
		css:      c,
		defaults: style.InitializeDefaultPropertyValues(defaults),
	}
}

// Css returns the stylesheets of s.
func (s *Styler) Css() *cssom.Css {
	return s.css
}

// Defaults returns the default property values of s.
func (s *Styler) Defaults() *style.PropertyMap {
	return s.defaults
}

// Style builds a styled tree for d and resolves the styles of every node.
// pseudo provides hover, active and focus states and may be nil.
func (s *Styler) Style(d *dom.Dom, pseudo styledtree.PseudoStates) *tree.Node[*styledtree.StyNode] {
	root := styledtree.Build(d, s.defaults, pseudo)
	if root == nil {
		tracer().Errorf("cannot style an empty Dom")
		return nil
	}
	s.resolve(root)
	return root
}

// Restyle re-reads the pseudo states of an already styled tree and
// resolves its styles again.
func (s *Styler) Restyle(root *tree.Node[*styledtree.StyNode], pseudo styledtree.PseudoStates) {
	if root == nil {
		return
	}
	root.Walk(func(n *tree.Node[*styledtree.StyNode], _ int) bool {
		sn := styledtree.Node(n)
		if pseudo != nil {
			sn.SetPseudoState(pseudo.PseudoState(sn.ID()))
		} else {
			sn.SetPseudoState(0)
		}
		return true
	})
	s.resolve(root)
}

// resolve works top-down, as resolving a node requires resolved parents.
func (s *Styler) resolve(root *tree.Node[*styledtree.StyNode]) {
	_, err := tree.NewWalker(root).TopDown(func(n, _ *tree.Node[*styledtree.StyNode], _ int) error {
		sn := styledtree.Node(n)
		sn.SetStyles(s.resolveNode(sn))
		return nil
	}).Nodes()
	if err != nil {
		tracer().Errorf("cascade: %v", err)
	}
}

// Declared returns the properties declared for a node, keyed by property
// type, with dynamic declarations replaced by the node's overrides.
func (s *Styler) Declared(sn *styledtree.StyNode) map[css.PropertyType]css.Property {
	declared := make(map[css.PropertyType]css.Property)
	nd := sn.NodeData()
	apply := func(decl cssom.Declaration) {
		p := decl.Property()
		if decl.IsDynamic() && nd != nil {
			if o, ok := nd.DynamicOverride(decl.DynamicID()); ok {
				if o.Type() != decl.Type() {
					tracer().Errorf("override %q of %s has type %s, ignored",
						decl.DynamicID(), sn, o.Type())
				} else {
					p = o
				}
			}
		}
		if p.IsValid() {
			declared[p.Type()] = p
		}
	}
	for _, m := range s.css.MatchingRules(sn) {
		tracer().Debugf("styling: %s matches %s (%v)", sn, m.Rule.Path, m.Specificity)
		for _, decl := range m.Rule.Declarations {
			apply(decl)
		}
	}
	if nd != nil {
		for _, decl := range nd.InlineStyle {
			apply(decl)
		}
	}
	return declared
}

func (s *Styler) resolveNode(sn *styledtree.StyNode) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	parent := sn.ParentStyNode()
	for t, declared := range s.Declared(sn) {
		var inherited css.Property
		if parent != nil {
			inherited = parent.PropertyValue(t)
		}
		resolved := css.Resolve(t, declared, inherited)
		tracer().P("key", t.Key()).Debugf("styling: %s resolves to %s", sn, resolved.ValueString())
		groupname := style.GroupNameFor(t)
		group := pmap.Group(groupname)
		if group == nil {
			group = style.NewPropertyGroup(groupname)
			group.Parent = s.enclosingGroup(parent, groupname)
			pmap.SetGroup(group)
		}
		group.Set(resolved)
	}
	return pmap
}

// enclosingGroup finds the nearest group of an ancestor with a given name.
// The stopper is the group of the default values.
func (s *Styler) enclosingGroup(sn *styledtree.StyNode, groupname string) *style.PropertyGroup {
	for ; sn != nil; sn = sn.ParentStyNode() {
		if g := sn.Styles().Group(groupname); g != nil {
			return g
		}
	}
	return s.defaults.Group(groupname)
}

// --- Property access ---------------------------------------------------------

// ErrNoStyles is returned for nodes which have not been styled.
var ErrNoStyles = errors.New("node has not been styled")

// GetCascadedProperty gets the value of a property. The search cascades to
// parent property groups, ending at the defaults.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
func GetCascadedProperty(sn *styledtree.StyNode, t css.PropertyType) (css.Property, error) {
	if sn == nil {
		return css.Property{}, ErrNoStyles
	}
	// key has to be found in a property group of type G. We start at the
	// styled node and walk upwards until we find a node with a group G
	// attached, then cascade along the group chain.
	groupname := style.GroupNameFor(t)
	var group *style.PropertyGroup
	for n := sn; n != nil && group == nil; n = n.ParentStyNode() {
		group = n.Styles().Group(groupname)
	}
	if group == nil {
		group = sn.Defaults().Group(groupname)
	}
	if group != nil {
		group = group.Cascade(t)
	}
	if group == nil {
		return css.DefaultFor(t), fmt.Errorf("cannot find ancestor with property group %s: %w",
			groupname, ErrNoStyles)
	}
	p, _ := group.Get(t)
	return p, nil
}

// GetProperty gets the resolved value of a property. If the property is not
// set locally on the style node and the property is inheritable, the search
// cascades to parent property groups.
func GetProperty(sn *styledtree.StyNode, t css.PropertyType) (css.Property, error) {
	if style.IsCascading(t) {
		return GetCascadedProperty(sn, t)
	}
	if sn == nil {
		return css.Property{}, ErrNoStyles
	}
	return sn.PropertyValue(t), nil
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, t css.PropertyType) (css.Property, bool) {
	return pmap.Property(t)
}
