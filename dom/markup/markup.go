package markup

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/guistyle/dom"
	"github.com/npillmayer/guistyle/dom/style/cssom"
	"github.com/npillmayer/guistyle/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoBody is returned for markup without a body.
var ErrNoBody = errors.New("markup has no body")

// Document is a Dom together with the stylesheets found in its markup.
type Document struct {
	Dom *dom.Dom
	Css *cssom.Css
}

// ParseString reads a document from a string.
func ParseString(s string) (*Document, []*cssom.ParseError, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a document. Problems with CSS do not stop parsing; they are
// returned as a list. The error is set if the markup could not be read.
func Parse(r io.Reader) (*Document, []*cssom.ParseError, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading markup: %w", err)
	}
	body := findElement(atom.Body, root)
	if body == nil {
		return nil, nil, ErrNoBody
	}
	var errs []*cssom.ParseError
	c := cssom.NewCss()
	for _, styles := range douceuradapter.ExtractStyleElements(root) {
		sheet, e := cssom.Compile(styles)
		c.Stylesheets = append(c.Stylesheets, sheet)
		errs = append(errs, e...)
	}
	b := &builder{}
	d := b.element(body)
	errs = append(errs, b.errs...)
	tracer().Debugf("markup: %d nodes, %d stylesheets, %d errors", d.Size(), len(c.Stylesheets), len(errs))
	return &Document{Dom: d, Css: c}, errs, nil
}

type builder struct {
	errs []*cssom.ParseError
}

func (b *builder) element(h *html.Node) *dom.Dom {
	var d *dom.Dom
	switch h.DataAtom {
	case atom.Body:
		d = dom.Body()
	case atom.Div:
		d = dom.Div()
	case atom.P:
		return b.attributes(h, dom.Label(textContent(h)))
	case atom.Img:
		d = dom.Image(dom.ImageID(imageID(h)))
	default:
		tracer().Infof("markup: element <%s> is read as <div>", h.Data)
		d = dom.Div()
	}
	b.attributes(h, d)
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			if ch.DataAtom == atom.Style || ch.DataAtom == atom.Script {
				continue
			}
			d.AddChild(b.element(ch))
		case html.TextNode:
			if text := strings.TrimSpace(ch.Data); text != "" {
				d.AddChild(dom.Label(text))
			}
		}
	}
	return d
}

func (b *builder) attributes(h *html.Node, d *dom.Dom) *dom.Dom {
	for _, a := range h.Attr {
		switch a.Key {
		case "id":
			for _, id := range strings.Fields(a.Val) {
				d.AddID(id)
			}
		case "class":
			for _, class := range strings.Fields(a.Val) {
				d.AddClass(class)
			}
		case "draggable":
			if drag, err := strconv.ParseBool(a.Val); err == nil {
				d.SetDraggable(drag)
			}
		case "focusable":
			if focusable, err := strconv.ParseBool(a.Val); err == nil && focusable {
				d.SetTabIndex(dom.AutoTabIndex())
			}
		case "tabindex":
			if n, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil {
				d.SetTabIndex(tabIndex(n))
			} else {
				tracer().Infof("markup: illegal tabindex %q", a.Val)
			}
		case "style":
			b.errs = append(b.errs, d.AddInlineStyle(a.Val)...)
		}
	}
	return d
}

func tabIndex(n int) dom.TabIndex {
	switch {
	case n == 0:
		return dom.AutoTabIndex()
	case n > 0:
		return dom.OverrideInParent(uint32(n))
	}
	return dom.NoKeyboardFocus()
}

func imageID(h *html.Node) uint32 {
	for _, a := range h.Attr {
		if a.Key == "src" {
			if n, err := strconv.ParseUint(strings.TrimSpace(a.Val), 10, 32); err == nil {
				return uint32(n)
			}
			tracer().Infof("markup: image source %q is not an image id", a.Val)
		}
	}
	return 0
}

// textContent concatenates the text below h, with white space collapsed.
func textContent(h *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(h)
	return strings.Join(strings.Fields(b.String()), " ")
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
