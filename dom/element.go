package dom

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	nodes "github.com/shiroyk/domkit/html"
	"golang.org/x/net/html"
)

// Element https://dom.spec.whatwg.org/#interface-element
type Element struct{ node }

// TagName returns the upper-cased tag name for HTML elements.
func (e *Element) TagName() string { return e.NodeName() }

// LocalName returns the tag name as parsed.
func (e *Element) LocalName() string { return e.n.Data }

func (e *Element) GetAttribute(name string) (string, bool) { return nodes.Attr(e.n, name) }
func (e *Element) SetAttribute(name, value string)         { nodes.SetAttr(e.n, name, value) }
func (e *Element) RemoveAttribute(name string)             { nodes.RemoveAttr(e.n, name) }
func (e *Element) HasAttribute(name string) bool           { return nodes.HasAttr(e.n, name) }

// Attributes returns a copy of the attributes in document order.
func (e *Element) Attributes() []html.Attribute { return slices.Clone(e.n.Attr) }

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.GetAttribute("id")
	return id
}

// ClassName returns the class attribute.
func (e *Element) ClassName() string {
	class, _ := e.GetAttribute("class")
	return class
}

// ClassList returns the live token list of the class attribute.
func (e *Element) ClassList() *ClassList { return &ClassList{e.n} }

// FirstElementChild returns the first child element, or nil.
func (e *Element) FirstElementChild() *Element {
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return e.doc.WrapElement(c)
		}
	}
	return nil
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	var children []*Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, e.doc.WrapElement(c))
		}
	}
	return children
}

// QuerySelector returns the first descendant element matching the
// selector, or nil when there is none.
func (e *Element) QuerySelector(selector string) (*Element, error) {
	return querySelector(e.doc, e.n, selector)
}

// QuerySelectorAll returns all descendant elements matching the selector
// in document order.
func (e *Element) QuerySelectorAll(selector string) ([]*Element, error) {
	return querySelectorAll(e.doc, e.n, selector)
}

// Matches reports whether the element itself matches the selector.
func (e *Element) Matches(selector string) (bool, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return false, err
	}
	return sel.Match(e.n), nil
}

// QueryXPath returns the first node matching the xpath expression, or nil.
func (e *Element) QueryXPath(expr string) (Node, error) {
	n, err := nodes.QueryXPath(e.n, expr)
	if err != nil {
		return nil, err
	}
	return e.doc.Wrap(n), nil
}

// InnerHTML serializes the children of the element.
func (e *Element) InnerHTML() string {
	s, _ := nodes.InnerHTML(e.n)
	return s
}

// SetInnerHTML replaces the children with the parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	children, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return err
	}
	for e.n.FirstChild != nil {
		e.n.RemoveChild(e.n.FirstChild)
	}
	for _, c := range children {
		e.n.AppendChild(c)
	}
	return nil
}

// OuterHTML serializes the element itself.
func (e *Element) OuterHTML() string {
	s, _ := nodes.OuterHTML(e.n)
	return s
}

// CloneNode copies the element, with its descendants when deep is set.
// Listeners are not copied.
func (e *Element) CloneNode(deep bool) *Element {
	if deep {
		return e.doc.WrapElement(nodes.CloneNode(e.n))
	}
	return e.doc.WrapElement(&html.Node{
		Type:      e.n.Type,
		DataAtom:  e.n.DataAtom,
		Data:      e.n.Data,
		Namespace: e.n.Namespace,
		Attr:      slices.Clone(e.n.Attr),
	})
}

func querySelector(doc *Document, n *html.Node, selector string) (*Element, error) {
	found, err := querySelectorAll(doc, n, selector)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func querySelectorAll(doc *Document, n *html.Node, selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	found := goquery.NewDocumentFromNode(n).FindMatcher(sel).Nodes
	ret := make([]*Element, 0, len(found))
	for _, f := range found {
		ret = append(ret, doc.WrapElement(f))
	}
	return ret, nil
}
