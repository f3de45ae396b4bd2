// Package html the html node helpers
package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var body = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// Parse as html or fragment
func Parse(str string) (*html.Node, error) {
	reader := strings.NewReader(str)
	z := html.NewTokenizer(reader)

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// no tag at all, treat it as a text fragment
			_, _ = reader.Seek(0, 0)
			nodes, err := html.ParseFragment(reader, body)
			if err != nil {
				return nil, err
			}
			return MergeNode(nodes), nil
		case html.TextToken, html.CommentToken:
			continue
		case html.StartTagToken:
			_, _ = reader.Seek(0, 0)
			name, _ := z.TagName()
			if string(name) == `html` {
				return html.Parse(reader)
			}
			nodes, err := html.ParseFragment(reader, body)
			if err != nil {
				return nil, err
			}
			return MergeNode(nodes), nil
		default:
			_, _ = reader.Seek(0, 0)
			return html.Parse(reader)
		}
	}
}

// ParseFragment parses the markup as the content of a detached div
// container, the same way innerHTML does. The returned nodes have no parent.
func ParseFragment(str string) ([]*html.Node, error) {
	return html.ParseFragment(strings.NewReader(str), NewElement("div"))
}

// FirstElement returns the first element node of nodes, or nil.
func FirstElement(nodes []*html.Node) *html.Node {
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// NewElement creates a detached element node.
func NewElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewText creates a detached text node.
func NewText(content string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: content}
}

// CloneNode deep clone the node
func CloneNode(n *html.Node) *html.Node {
	nn := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      make([]html.Attribute, len(n.Attr)),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nn.AppendChild(CloneNode(c))
	}
	copy(nn.Attr, n.Attr)
	return nn
}

// MergeNode wrap the nodes with html.ElementNode
func MergeNode(nodes []*html.Node) *html.Node {
	if len(nodes) == 0 {
		return &html.Node{Type: html.DocumentNode}
	}
	root := nodes[0].Parent
	if root == nil {
		root = &html.Node{Type: html.DocumentNode}
		for _, n := range nodes {
			root.AppendChild(n)
		}
	} else {
		root = &html.Node{
			Type:     root.Type,
			DataAtom: root.DataAtom,
			Data:     root.Data,
			Attr:     root.Attr,
		}
		for _, n := range nodes {
			root.AppendChild(CloneNode(n))
		}
	}
	return root
}

// Detach removes n from its parent, if any.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func attrName(n *html.Node, key string) string {
	if n.Namespace == "" {
		return strings.ToLower(key)
	}
	return key
}

// Attr returns the value of the attribute key.
func Attr(n *html.Node, key string) (string, bool) {
	key = attrName(n, key)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether n carries the attribute key.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets the attribute key, replacing the existing value in place.
func SetAttr(n *html.Node, key, val string) {
	key = attrName(n, key)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the attribute key, reports whether it existed.
func RemoveAttr(n *html.Node, key string) bool {
	key = attrName(n, key)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return true
		}
	}
	return false
}

// OuterHTML renders the node itself.
func OuterHTML(n *html.Node) (string, error) {
	return goquery.OuterHtml(goquery.NewDocumentFromNode(n).Selection)
}

// InnerHTML renders the children of the node.
func InnerHTML(n *html.Node) (string, error) {
	return goquery.NewDocumentFromNode(n).Html()
}

// Text returns the combined text content of the node and its descendants.
func Text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	return goquery.NewDocumentFromNode(n).Text()
}

// QueryXPath returns the first node matching the xpath expression.
// An attribute match is returned as a detached text node of its value.
func QueryXPath(n *html.Node, expr string) (*html.Node, error) {
	ex, err := xpath.Compile(expr)
	if err != nil {
		return nil, err
	}
	it := ex.Select(htmlquery.CreateXPathNavigator(n))
	if !it.MoveNext() {
		return nil, nil
	}
	return xpathNode(it.Current()), nil
}

// QueryXPathAll returns all nodes matching the xpath expression, see QueryXPath.
func QueryXPathAll(n *html.Node, expr string) ([]*html.Node, error) {
	ex, err := xpath.Compile(expr)
	if err != nil {
		return nil, err
	}
	var ret []*html.Node
	it := ex.Select(htmlquery.CreateXPathNavigator(n))
	for it.MoveNext() {
		ret = append(ret, xpathNode(it.Current()))
	}
	return ret, nil
}

func xpathNode(nav xpath.NodeNavigator) *html.Node {
	if nav.NodeType() == xpath.AttributeNode {
		return &html.Node{Type: html.TextNode, Data: nav.Value()}
	}
	return nav.(*htmlquery.NodeNavigator).Current()
}
