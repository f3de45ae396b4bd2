package domkit

import (
	"github.com/shiroyk/domkit/dom"
	nodes "github.com/shiroyk/domkit/html"
	"github.com/shiroyk/domkit/selector"
)

// Builder creates elements in a Document.
type Builder struct {
	doc *dom.Document
}

// NewBuilder returns a Builder creating nodes in doc.
func NewBuilder(doc *dom.Document) *Builder {
	return &Builder{doc: doc}
}

// Document returns the Document of the builder.
func (b *Builder) Document() *dom.Document { return b.doc }

// S parses the markup and returns its first element, with the children
// appended in order.
func (b *Builder) S(markup string, children ...any) (*Element, error) {
	parsed, err := nodes.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	el := b.doc.WrapElement(nodes.FirstElement(parsed))
	if el == nil {
		return nil, ErrNoElement
	}

	if err = appendChildren(el, children); err != nil {
		return nil, err
	}
	return &Element{el}, nil
}

// H builds one element from a selector-like string such as
// `a.button[href="/home"]`: the tag defaults to div, every class token
// goes to the class list and every other attribute is set as is.
func (b *Builder) H(sel string, children ...any) (*Element, error) {
	desc, err := selector.Parse(sel)
	if err != nil {
		return nil, err
	}

	el := b.doc.CreateElement(desc.Tag)
	if len(desc.Classes) > 0 {
		if err = el.ClassList().Add(desc.Classes...); err != nil {
			return nil, err
		}
	}
	for _, attr := range desc.Attrs {
		el.SetAttribute(attr.Key, attr.Val)
	}

	if err = appendChildren(el, children); err != nil {
		return nil, err
	}
	return &Element{el}, nil
}

// T creates a text node.
func (b *Builder) T(content string) *dom.Text {
	return b.doc.CreateTextNode(content)
}

// FromString creates an Element from markup, see S.
func (b *Builder) FromString(markup string) (*Element, error) {
	return b.S(markup)
}

// S parses the markup in the default Document, see Builder.S.
func S(markup string, children ...any) (*Element, error) {
	return NewBuilder(dom.Default()).S(markup, children...)
}

// H builds an element in the default Document, see Builder.H.
func H(sel string, children ...any) (*Element, error) {
	return NewBuilder(dom.Default()).H(sel, children...)
}

// T creates a text node in the default Document.
func T(content string) *dom.Text {
	return dom.Default().CreateTextNode(content)
}

// FromString creates an Element from markup in the default Document.
func FromString(markup string) (*Element, error) {
	return S(markup)
}
