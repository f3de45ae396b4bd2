package dom

import (
	"log/slog"
	"slices"
	"sync"

	nodes "github.com/shiroyk/domkit/html"
	"golang.org/x/net/html"
)

// Document creates nodes and reports the errors returned by listeners
// of the nodes it created.
//
// Listeners are keyed by the underlying *html.Node in a process wide
// table, so every wrapper of the same node shares them, whichever
// Document created the wrapper. A node keeps its entry until its last
// listener is removed; call Release for nodes discarded with listeners
// still registered.
type Document struct {
	log *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger that reports errors returned by listeners.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) { d.log = logger }
}

// NewDocument creates a new Document.
func NewDocument(opts ...Option) *Document {
	d := new(Document)
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = slog.Default()
	}
	return d
}

var (
	defaultDocument     *Document
	defaultDocumentOnce sync.Once
)

// Default returns the process wide Document.
func Default() *Document {
	defaultDocumentOnce.Do(func() { defaultDocument = NewDocument() })
	return defaultDocument
}

// CreateElement creates a detached element with the tag name.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{node{nodes.NewElement(tag), d}}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Text {
	return &Text{node{nodes.NewText(data), d}}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *Comment {
	return &Comment{node{&html.Node{Type: html.CommentNode, Data: data}, d}}
}

// ParseHTML parses the markup as the children of a detached div and
// returns the resulting top-level nodes.
func (d *Document) ParseHTML(markup string) ([]Node, error) {
	parsed, err := nodes.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	ret := make([]Node, 0, len(parsed))
	for _, n := range parsed {
		ret = append(ret, d.Wrap(n))
	}
	return ret, nil
}

// Parse parses a whole document or a fragment and returns its root.
func (d *Document) Parse(markup string) (*Container, error) {
	root, err := nodes.Parse(markup)
	if err != nil {
		return nil, err
	}
	return &Container{node{root, d}}, nil
}

// Wrap returns the Node for an existing *html.Node.
func (d *Document) Wrap(n *html.Node) Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.ElementNode:
		return &Element{node{n, d}}
	case html.TextNode:
		return &Text{node{n, d}}
	case html.CommentNode:
		return &Comment{node{n, d}}
	default:
		return &Container{node{n, d}}
	}
}

// WrapElement returns the Element for an existing element node, nil otherwise.
func (d *Document) WrapElement(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node{n, d}}
}

// registry holds the listeners of every node.
var registry = struct {
	sync.Mutex
	m map[*html.Node]listenerMap
}{m: make(map[*html.Node]listenerMap)}

func updateListeners(n *html.Node, fn func(m listenerMap)) {
	registry.Lock()
	defer registry.Unlock()
	m, ok := registry.m[n]
	if !ok {
		m = make(listenerMap)
	}
	fn(m)
	if len(m) == 0 {
		delete(registry.m, n)
	} else if !ok {
		registry.m[n] = m
	}
}

func nodeListeners(n *html.Node, typ string) []*registration {
	registry.Lock()
	defer registry.Unlock()
	return slices.Clone(registry.m[n][typ])
}

// Release removes every listener registered on n and its descendants.
func Release(n Node) {
	if n == nil {
		return
	}
	var released []*registration
	registry.Lock()
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		for _, list := range registry.m[c] {
			released = append(released, list...)
		}
		delete(registry.m, c)
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	walk(n.HTMLNode())
	registry.Unlock()

	for _, r := range released {
		r.removed.Store(true)
		if r.stop != nil {
			r.stop()
		}
	}
}

