package cssom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/guistyle/dom/w3cdom"
)

// ErrInvalidSelector is wrapped by errors from selector parsing.
var ErrInvalidSelector = errors.New("invalid CSS selector")

// NodeTypeTag is the type of a node, as used by type selectors.
type NodeTypeTag uint8

// Node types. The order of the constants is part of the binary interface.
const (
	TagBody NodeTypeTag = iota
	TagDiv
	TagP
	TagImg
	TagTexture
	TagIFrame
)

var nodeTypeTagNames = []string{"body", "div", "p", "img", "texture", "iframe"}

func (t NodeTypeTag) String() string {
	if int(t) < len(nodeTypeTagNames) {
		return nodeTypeTagNames[t]
	}
	return fmt.Sprintf("<invalid tag %d>", t)
}

// ParseNodeTypeTag parses a tag name, e.g. "div".
func ParseNodeTypeTag(s string) (NodeTypeTag, error) {
	s = strings.ToLower(s)
	for i, n := range nodeTypeTagNames {
		if n == s {
			return NodeTypeTag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown node type %q", ErrInvalidSelector, s)
}

// --- nth-child ---------------------------------------------------------------

// NthChildKind is the variant of a NthChild selector.
type NthChildKind uint8

// Variants of NthChild
const (
	NthNumber NthChildKind = iota
	NthEven
	NthOdd
	NthPattern
)

// NthChild is the argument of pseudo-class ':nth-child(…)'. Positions
// start at 1.
type NthChild struct {
	Kind   NthChildKind
	Number int // position for NthNumber
	Repeat int // a of 'an+b'
	Offset int // b of 'an+b'
}

// NthNumberOf selects the child at position n.
func NthNumberOf(n int) NthChild { return NthChild{Kind: NthNumber, Number: n} }

// NthPatternOf selects every child at position repeat*k + offset.
func NthPatternOf(repeat, offset int) NthChild {
	return NthChild{Kind: NthPattern, Repeat: repeat, Offset: offset}
}

// Matches checks a 1-based position. A pattern with repeat 0 matches nothing.
func (n NthChild) Matches(pos int) bool {
	switch n.Kind {
	case NthNumber:
		return pos == n.Number
	case NthEven:
		return pos%2 == 0
	case NthOdd:
		return pos%2 == 1
	case NthPattern:
		if n.Repeat <= 0 {
			return false
		}
		return pos >= n.Offset && (pos-n.Offset)%n.Repeat == 0
	}
	return false
}

func (n NthChild) String() string {
	switch n.Kind {
	case NthNumber:
		return strconv.Itoa(n.Number)
	case NthEven:
		return "even"
	case NthOdd:
		return "odd"
	}
	switch {
	case n.Offset > 0:
		return fmt.Sprintf("%dn+%d", n.Repeat, n.Offset)
	case n.Offset < 0:
		return fmt.Sprintf("%dn%d", n.Repeat, n.Offset)
	}
	return fmt.Sprintf("%dn", n.Repeat)
}

// ParseNthChild parses the argument of ':nth-child(…)': a number, "even",
// "odd" or a pattern like "2n+3".
func ParseNthChild(s string) (NthChild, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	switch s {
	case "":
		return NthChild{}, fmt.Errorf("%w: empty :nth-child()", ErrInvalidSelector)
	case "even":
		return NthChild{Kind: NthEven}, nil
	case "odd":
		return NthChild{Kind: NthOdd}, nil
	}
	i := strings.IndexByte(s, 'n')
	if i < 0 {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return NthChild{}, fmt.Errorf("%w: invalid :nth-child(%s)", ErrInvalidSelector, s)
		}
		return NthNumberOf(n), nil
	}
	repeat := 1
	if a := strings.TrimPrefix(s[:i], "+"); a != "" {
		r, err := strconv.Atoi(a)
		if err != nil || r < 0 {
			return NthChild{}, fmt.Errorf("%w: invalid :nth-child(%s)", ErrInvalidSelector, s)
		}
		repeat = r
	}
	offset := 0
	if b := s[i+1:]; b != "" {
		if b[0] != '+' && b[0] != '-' {
			return NthChild{}, fmt.Errorf("%w: invalid :nth-child(%s)", ErrInvalidSelector, s)
		}
		o, err := strconv.Atoi(b)
		if err != nil {
			return NthChild{}, fmt.Errorf("%w: invalid :nth-child(%s)", ErrInvalidSelector, s)
		}
		offset = o
	}
	return NthPatternOf(repeat, offset), nil
}

// --- Pseudo-classes ----------------------------------------------------------

// PseudoKind is the variant of a pseudo-class selector.
type PseudoKind uint8

// Pseudo-classes
const (
	PseudoFirst PseudoKind = iota
	PseudoLast
	PseudoNthChild
	PseudoHover
	PseudoActive
	PseudoFocus
)

var pseudoNames = []string{"first", "last", "nth-child", "hover", "active", "focus"}

// PseudoSelector is a pseudo-class, e.g. ':hover' or ':nth-child(2n+1)'.
type PseudoSelector struct {
	Kind PseudoKind
	Nth  NthChild // for PseudoNthChild
}

func (p PseudoSelector) String() string {
	if p.Kind == PseudoNthChild {
		return ":nth-child(" + p.Nth.String() + ")"
	}
	if int(p.Kind) < len(pseudoNames) {
		return ":" + pseudoNames[p.Kind]
	}
	return ":<invalid>"
}

// Matches checks a pseudo-class against a node.
func (p PseudoSelector) Matches(n w3cdom.Node) bool {
	switch p.Kind {
	case PseudoFirst:
		return n.ChildIndex() == 0
	case PseudoLast:
		return n.ChildIndex() == n.SiblingCount()-1
	case PseudoNthChild:
		return p.Nth.Matches(n.ChildIndex() + 1)
	case PseudoHover:
		return n.PseudoState().Has(w3cdom.Hover)
	case PseudoActive:
		return n.PseudoState().Has(w3cdom.Active)
	case PseudoFocus:
		return n.PseudoState().Has(w3cdom.Focus)
	}
	return false
}

func parsePseudo(name string, arg string, hasArg bool) (PseudoSelector, error) {
	switch name {
	case "first", "first-child":
		return PseudoSelector{Kind: PseudoFirst}, nil
	case "last", "last-child":
		return PseudoSelector{Kind: PseudoLast}, nil
	case "hover":
		return PseudoSelector{Kind: PseudoHover}, nil
	case "active":
		return PseudoSelector{Kind: PseudoActive}, nil
	case "focus":
		return PseudoSelector{Kind: PseudoFocus}, nil
	case "nth-child":
		if !hasArg {
			return PseudoSelector{}, fmt.Errorf("%w: :nth-child without argument", ErrInvalidSelector)
		}
		nth, err := ParseNthChild(arg)
		return PseudoSelector{Kind: PseudoNthChild, Nth: nth}, err
	}
	return PseudoSelector{}, fmt.Errorf("%w: unknown pseudo-class :%s", ErrInvalidSelector, name)
}

// --- Path selectors ----------------------------------------------------------

// SelectorKind is the variant of a PathSelector.
type SelectorKind uint8

// Variants of PathSelector. DirectChildren and Children are combinators.
const (
	SelectorGlobal SelectorKind = iota
	SelectorType
	SelectorClass
	SelectorID
	SelectorPseudo
	SelectorDirectChildren
	SelectorChildren
)

// PathSelector is one element of a selector path.
type PathSelector struct {
	Kind   SelectorKind
	Type   NodeTypeTag    // for SelectorType
	Name   string         // for SelectorClass and SelectorID
	Pseudo PseudoSelector // for SelectorPseudo
}

// Global is '*'.
func Global() PathSelector { return PathSelector{Kind: SelectorGlobal} }

// Type selects nodes of a type, e.g. 'div'.
func Type(t NodeTypeTag) PathSelector { return PathSelector{Kind: SelectorType, Type: t} }

// Class is '.name'.
func Class(name string) PathSelector { return PathSelector{Kind: SelectorClass, Name: name} }

// ID is '#name'.
func ID(name string) PathSelector { return PathSelector{Kind: SelectorID, Name: name} }

// Pseudo is a pseudo-class selector.
func Pseudo(p PseudoSelector) PathSelector { return PathSelector{Kind: SelectorPseudo, Pseudo: p} }

// DirectChildren is the combinator '>'.
func DirectChildren() PathSelector { return PathSelector{Kind: SelectorDirectChildren} }

// Children is the descendant combinator, i.e. white space.
func Children() PathSelector { return PathSelector{Kind: SelectorChildren} }

// IsCombinator is true for DirectChildren and Children.
func (s PathSelector) IsCombinator() bool {
	return s.Kind == SelectorDirectChildren || s.Kind == SelectorChildren
}

func (s PathSelector) String() string {
	switch s.Kind {
	case SelectorGlobal:
		return "*"
	case SelectorType:
		return s.Type.String()
	case SelectorClass:
		return "." + s.Name
	case SelectorID:
		return "#" + s.Name
	case SelectorPseudo:
		return s.Pseudo.String()
	case SelectorDirectChildren:
		return " > "
	case SelectorChildren:
		return " "
	}
	return "<invalid>"
}

// matches checks a simple (non-combinator) selector against a node.
func (s PathSelector) matches(n w3cdom.Node) bool {
	switch s.Kind {
	case SelectorGlobal:
		return true
	case SelectorType:
		return n.NodeName() == s.Type.String()
	case SelectorClass:
		return contains(n.Classes(), s.Name)
	case SelectorID:
		return contains(n.IDs(), s.Name)
	case SelectorPseudo:
		return s.Pseudo.Matches(n)
	}
	return false
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// --- Paths -------------------------------------------------------------------

// Path is a selector path like 'div > .a:hover p': compound selectors
// joined by combinators.
type Path struct {
	Selectors []PathSelector
}

// NewPath creates a path from selectors.
func NewPath(selectors ...PathSelector) Path {
	return Path{Selectors: selectors}
}

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p.Selectors {
		b.WriteString(s.String())
	}
	return b.String()
}

// Specificity is the specificity of a selector path: the number of id
// selectors, of class and pseudo-class selectors, and of type selectors.
type Specificity struct {
	IDs, Classes, Types int
}

// Less orders specificities lexicographically.
func (s Specificity) Less(other Specificity) bool {
	if s.IDs != other.IDs {
		return s.IDs < other.IDs
	}
	if s.Classes != other.Classes {
		return s.Classes < other.Classes
	}
	return s.Types < other.Types
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.IDs, s.Classes, s.Types)
}

// Specificity returns the specificity of p.
func (p Path) Specificity() Specificity {
	var spec Specificity
	for _, s := range p.Selectors {
		switch s.Kind {
		case SelectorID:
			spec.IDs++
		case SelectorClass, SelectorPseudo:
			spec.Classes++
		case SelectorType:
			spec.Types++
		}
	}
	return spec
}

// compounds splits p into compound selectors and the combinators between
// them.
func (p Path) compounds() ([][]PathSelector, []SelectorKind) {
	var groups [][]PathSelector
	var combinators []SelectorKind
	var current []PathSelector
	for _, s := range p.Selectors {
		if s.IsCombinator() {
			groups = append(groups, current)
			combinators = append(combinators, s.Kind)
			current = nil
			continue
		}
		current = append(current, s)
	}
	return append(groups, current), combinators
}

// Matches checks if node n is selected by p. Matching proceeds right to
// left: the rightmost compound selector has to match n, a DirectChildren
// combinator requires the compound to its left to match the parent, and a
// Children combinator requires it to match some ancestor.
func (p Path) Matches(n w3cdom.Node) bool {
	if len(p.Selectors) == 0 || n == nil {
		return false
	}
	groups, combinators := p.compounds()
	return matchFrom(groups, combinators, len(groups)-1, n)
}

func matchFrom(groups [][]PathSelector, combinators []SelectorKind, i int, n w3cdom.Node) bool {
	for _, s := range groups[i] {
		if !s.matches(n) {
			return false
		}
	}
	if i == 0 {
		return true
	}
	switch combinators[i-1] {
	case SelectorDirectChildren:
		parent := n.ParentNode()
		return parent != nil && matchFrom(groups, combinators, i-1, parent)
	case SelectorChildren:
		for a := n.ParentNode(); a != nil; a = a.ParentNode() {
			if matchFrom(groups, combinators, i-1, a) {
				return true
			}
		}
	}
	return false
}

// ParseSelector parses a single selector path (no comma-separated lists).
// Supported are '*', node types, '.class', '#id', the pseudo-classes
// :first, :last, :hover, :active, :focus and :nth-child(…), and the
// combinators '>' and white space.
func ParseSelector(input string) (Path, error) {
	s := []rune(strings.TrimSpace(input))
	if len(s) == 0 {
		return Path{}, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}
	var selectors []PathSelector
	var pending *PathSelector // combinator waiting for the next compound
	compoundOpen := false
	startCompound := func() error {
		if compoundOpen {
			return nil
		}
		if pending != nil {
			if len(selectors) == 0 {
				return fmt.Errorf("%w: %q starts with a combinator", ErrInvalidSelector, input)
			}
			selectors = append(selectors, *pending)
			pending = nil
		}
		compoundOpen = true
		return nil
	}
	for i := 0; i < len(s); {
		r := s[i]
		switch {
		case unicode.IsSpace(r):
			if compoundOpen {
				c := Children()
				pending = &c
			}
			compoundOpen = false
			i++
			continue
		case r == '>':
			if len(selectors) == 0 {
				return Path{}, fmt.Errorf("%w: %q starts with a combinator", ErrInvalidSelector, input)
			}
			if pending != nil && pending.Kind == SelectorDirectChildren {
				return Path{}, fmt.Errorf("%w: duplicate '>' in %q", ErrInvalidSelector, input)
			}
			c := DirectChildren()
			pending = &c
			compoundOpen = false
			i++
			continue
		}
		if err := startCompound(); err != nil {
			return Path{}, err
		}
		switch {
		case r == '*':
			selectors = append(selectors, Global())
			i++
		case r == '.' || r == '#':
			name, next := scanIdent(s, i+1)
			if name == "" {
				return Path{}, fmt.Errorf("%w: missing name after %q in %q", ErrInvalidSelector, r, input)
			}
			if r == '.' {
				selectors = append(selectors, Class(name))
			} else {
				selectors = append(selectors, ID(name))
			}
			i = next
		case r == ':':
			name, next := scanIdent(s, i+1)
			arg, hasArg := "", false
			if next < len(s) && s[next] == '(' {
				end := next + 1
				for end < len(s) && s[end] != ')' {
					end++
				}
				if end >= len(s) {
					return Path{}, fmt.Errorf("%w: unclosed parenthesis in %q", ErrInvalidSelector, input)
				}
				arg, hasArg = string(s[next+1:end]), true
				next = end + 1
			}
			pseudo, err := parsePseudo(strings.ToLower(name), arg, hasArg)
			if err != nil {
				return Path{}, err
			}
			selectors = append(selectors, Pseudo(pseudo))
			i = next
		case isIdentRune(r):
			name, next := scanIdent(s, i)
			tag, err := ParseNodeTypeTag(name)
			if err != nil {
				return Path{}, err
			}
			selectors = append(selectors, Type(tag))
			i = next
		default:
			return Path{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSelector, r, input)
		}
	}
	if pending != nil && pending.Kind == SelectorDirectChildren {
		return Path{}, fmt.Errorf("%w: %q ends with a combinator", ErrInvalidSelector, input)
	}
	return NewPath(selectors...), nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

func scanIdent(s []rune, i int) (string, int) {
	start := i
	for i < len(s) && isIdentRune(s[i]) {
		i++
	}
	return string(s[start:i]), i
}
