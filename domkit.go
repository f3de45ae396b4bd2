// Package domkit is a thin convenience layer over the dom package:
// building elements from markup or selector-like strings, class list
// helpers, child management and typed event registration.
//
// Every function forwards to the matching dom operation and adds no
// behaviour of its own; state lives in the nodes and in the listener
// tables of their dom.Document.
//
//	card, err := domkit.H("div.card[data-id=7]", domkit.T("hello"))
//	domkit.On(card.Element(), "click", domkit.NewListener(func(e dom.Event) {
//		domkit.ToggleClass(card.Element(), "active")
//	}))
package domkit

import (
	"errors"
	"fmt"

	"github.com/shiroyk/domkit/dom"
	"github.com/spf13/cast"
	"golang.org/x/net/html"
)

var (
	// ErrNoElement the markup has no element root.
	ErrNoElement = errors.New("markup has no element root")
	// ErrUnsupportedChild the value cannot be appended as a child node.
	ErrUnsupportedChild = errors.New("unsupported child")
)

// toNode converts a child argument to a node of doc: *Element and
// dom.Node are used as is, *html.Node is wrapped, strings and other
// scalar values become text nodes.
func toNode(doc *dom.Document, child any) (dom.Node, error) {
	switch c := child.(type) {
	case *Element:
		if c == nil {
			return nil, fmt.Errorf("%w: nil *Element", ErrUnsupportedChild)
		}
		return c.el, nil
	case dom.Node:
		return c, nil
	case *html.Node:
		if c == nil {
			return nil, fmt.Errorf("%w: nil *html.Node", ErrUnsupportedChild)
		}
		return doc.Wrap(c), nil
	case string:
		return doc.CreateTextNode(c), nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedChild)
	default:
		s, err := cast.ToStringE(child)
		if err != nil {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedChild, child)
		}
		return doc.CreateTextNode(s), nil
	}
}

func appendChildren(parent *dom.Element, children []any) error {
	for _, child := range children {
		n, err := toNode(parent.OwnerDocument(), child)
		if err != nil {
			return err
		}
		if err = parent.AppendChild(n); err != nil {
			return err
		}
	}
	return nil
}
