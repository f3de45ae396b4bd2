package dom

import (
	"errors"
	"log/slog"
	"strings"

	nodes "github.com/shiroyk/domkit/html"
	"golang.org/x/net/html"
)

var (
	// ErrHierarchyRequest the node cannot be inserted at the requested place.
	ErrHierarchyRequest = errors.New("hierarchy request error")
	// ErrNotFound the node is not a child of the parent.
	ErrNotFound = errors.New("node not found")
)

// Node defines the DOM Node interface
// https://dom.spec.whatwg.org/#interface-node
type Node interface {
	EventTarget

	// HTMLNode returns the underlying node
	HTMLNode() *html.Node
	// OwnerDocument returns the Document the node wrapper was created by
	OwnerDocument() *Document
	NodeName() string
	ParentNode() Node
	ParentElement() *Element
	FirstChild() Node
	ChildNodes() []Node
	HasChildNodes() bool
	// AppendChild moves child to the end of the children of the node
	AppendChild(child Node) error
	// Append appends the children in order
	Append(children ...Node) error
	RemoveChild(child Node) error
	// Remove detaches the node from its parent
	Remove()
	TextContent() string
	IsSameNode(other Node) bool
}

type node struct {
	n   *html.Node
	doc *Document
}

func (n node) HTMLNode() *html.Node       { return n.n }
func (n node) OwnerDocument() *Document   { return n.doc }
func (n node) HasChildNodes() bool        { return n.n.FirstChild != nil }
func (n node) ParentElement() *Element    { return n.doc.WrapElement(n.n.Parent) }
func (n node) Remove()                    { nodes.Detach(n.n) }
func (n node) IsSameNode(other Node) bool { return other != nil && other.HTMLNode() == n.n }

func (n node) NodeName() string {
	switch n.n.Type {
	case html.ElementNode:
		if n.n.Namespace == "" {
			return strings.ToUpper(n.n.Data)
		}
		return n.n.Data
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	default:
		return n.n.Data
	}
}

func (n node) ParentNode() Node {
	if n.n.Parent == nil {
		return nil
	}
	return n.doc.Wrap(n.n.Parent)
}

func (n node) FirstChild() Node {
	if n.n.FirstChild == nil {
		return nil
	}
	return n.doc.Wrap(n.n.FirstChild)
}

func (n node) ChildNodes() []Node {
	var children []Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, n.doc.Wrap(c))
	}
	return children
}

func (n node) AppendChild(child Node) error {
	if child == nil {
		return ErrHierarchyRequest
	}
	c := child.HTMLNode()
	if n.n.Type != html.ElementNode && n.n.Type != html.DocumentNode {
		return ErrHierarchyRequest
	}
	if c.Type == html.DocumentNode {
		return ErrHierarchyRequest
	}
	for p := n.n; p != nil; p = p.Parent {
		if p == c {
			return ErrHierarchyRequest
		}
	}
	nodes.Detach(c)
	n.n.AppendChild(c)
	return nil
}

func (n node) Append(children ...Node) error {
	for _, child := range children {
		if err := n.AppendChild(child); err != nil {
			return err
		}
	}
	return nil
}

func (n node) RemoveChild(child Node) error {
	if child == nil || child.HTMLNode().Parent != n.n {
		return ErrNotFound
	}
	n.n.RemoveChild(child.HTMLNode())
	return nil
}

func (n node) TextContent() string {
	switch n.n.Type {
	case html.DocumentNode, html.DoctypeNode:
		return ""
	case html.CommentNode:
		return n.n.Data
	default:
		return nodes.Text(n.n)
	}
}

// SetTextContent replaces the children of the node with a single text
// node, or sets the data of text and comment nodes.
func (n node) SetTextContent(data string) {
	switch n.n.Type {
	case html.TextNode, html.CommentNode:
		n.n.Data = data
	case html.ElementNode:
		for n.n.FirstChild != nil {
			n.n.RemoveChild(n.n.FirstChild)
		}
		if data != "" {
			n.n.AppendChild(nodes.NewText(data))
		}
	}
}

func (n node) AddEventListener(typ string, listener EventListener, opts AddEventListenerOptions) {
	addEventListener(n, typ, listener, opts)
}

func (n node) RemoveEventListener(typ string, listener EventListener, opts EventListenerOptions) {
	removeEventListener(n, typ, listener, opts)
}

// DispatchEvent dispatches the event with the node as target, the event
// propagates along the parent chain of the node.
func (n node) DispatchEvent(event Event) bool {
	return dispatchEvent(n.doc.Wrap(n.n), event)
}

func (n node) updateListeners(fn func(m listenerMap)) { updateListeners(n.n, fn) }

func (n node) listeners(typ string) []*registration { return nodeListeners(n.n, typ) }

func (n node) parentTarget() EventTarget {
	if n.n.Parent == nil {
		return nil
	}
	return n.doc.Wrap(n.n.Parent)
}

func (n node) logger() *slog.Logger { return n.doc.log }

// Text https://dom.spec.whatwg.org/#interface-text
type Text struct{ node }

// Data returns the text.
func (t *Text) Data() string { return t.n.Data }

// SetData replaces the text.
func (t *Text) SetData(data string) { t.n.Data = data }

// Comment https://dom.spec.whatwg.org/#interface-comment
type Comment struct{ node }

// Data returns the comment text.
func (c *Comment) Data() string { return c.n.Data }

// Container is a document or doctype node, as returned by Document.Parse.
type Container struct{ node }

// QuerySelector returns the first descendant element matching the selector.
func (c *Container) QuerySelector(selector string) (*Element, error) {
	return querySelector(c.doc, c.n, selector)
}

// QuerySelectorAll returns all descendant elements matching the selector.
func (c *Container) QuerySelectorAll(selector string) ([]*Element, error) {
	return querySelectorAll(c.doc, c.n, selector)
}

// QueryXPathAll returns every node matching the XPath expression.
func (c *Container) QueryXPathAll(expr string) ([]Node, error) {
	list, err := nodes.QueryXPathAll(c.n, expr)
	if err != nil {
		return nil, err
	}
	ret := make([]Node, len(list))
	for i, n := range list {
		ret[i] = c.doc.Wrap(n)
	}
	return ret, nil
}
