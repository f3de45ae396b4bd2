package dom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const content = `<div id="main">
	<ul id="url">
		<li id="a1" class="item"><a href="https://google.com" title="Google page">Google</a></li>
		<li id="a2" class="item"><a href="https://github.com" title="Github page">Github</a></li>
		<li id="a3" class="item selected"><a href="https://go.dev" title="Golang page">Golang</a></li>
	</ul>
	<p>text <b>bold</b></p>
</div>`

func parseMain(t *testing.T, doc *Document) *Element {
	children, err := doc.ParseHTML(content)
	require.NoError(t, err)
	require.NotEmpty(t, children)
	main, ok := children[0].(*Element)
	require.True(t, ok)
	return main
}

func TestElement(t *testing.T) {
	t.Parallel()
	doc := NewDocument()
	main := parseMain(t, doc)

	assert.Equal(t, "DIV", main.TagName())
	assert.Equal(t, "div", main.LocalName())
	assert.Equal(t, "main", main.ID())
	assert.Nil(t, main.ParentNode())
	assert.Len(t, main.Children(), 2)
	assert.Equal(t, "url", main.FirstElementChild().ID())
	assert.Equal(t, "#text", main.FirstChild().NodeName())

	t.Run("attributes", func(t *testing.T) {
		el := doc.CreateElement("span")
		el.SetAttribute("data-x", "1")
		v, ok := el.GetAttribute("data-x")
		assert.True(t, ok)
		assert.Equal(t, "1", v)
		el.RemoveAttribute("data-x")
		assert.False(t, el.HasAttribute("data-x"))
		assert.Empty(t, el.Attributes())
	})

	t.Run("querySelector", func(t *testing.T) {
		li, err := main.QuerySelector("li.selected")
		require.NoError(t, err)
		require.NotNil(t, li)
		assert.Equal(t, "a3", li.ID())

		none, err := main.QuerySelector("li.none")
		require.NoError(t, err)
		assert.Nil(t, none)

		self, err := main.QuerySelector("#main")
		require.NoError(t, err)
		assert.Nil(t, self)

		_, err = main.QuerySelector("li[")
		assert.Error(t, err)
	})

	t.Run("querySelectorAll", func(t *testing.T) {
		items, err := main.QuerySelectorAll("li.item > a")
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Google", items[0].TextContent())
		assert.Equal(t, "Golang", items[2].TextContent())

		none, err := main.QuerySelectorAll("table")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("matches", func(t *testing.T) {
		ok, err := main.Matches("div#main")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("xpath", func(t *testing.T) {
		n, err := main.QueryXPath(`//a[@title="Github page"]`)
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, "Github", n.TextContent())
	})

	t.Run("html", func(t *testing.T) {
		p, err := main.QuerySelector("p")
		require.NoError(t, err)
		assert.Equal(t, `text <b>bold</b>`, p.InnerHTML())
		assert.Equal(t, `<p>text <b>bold</b></p>`, p.OuterHTML())
		assert.Equal(t, "text bold", p.TextContent())
	})
}

func TestNode(t *testing.T) {
	t.Parallel()
	doc := NewDocument()

	t.Run("append", func(t *testing.T) {
		parent := doc.CreateElement("div")
		a := doc.CreateElement("a")
		text := doc.CreateTextNode("hello")
		require.NoError(t, parent.Append(a, text))

		children := parent.ChildNodes()
		require.Len(t, children, 2)
		assert.True(t, children[0].IsSameNode(a))
		assert.True(t, children[1].IsSameNode(text))
		assert.True(t, a.ParentElement().IsSameNode(parent))
		assert.Equal(t, `<div><a></a>hello</div>`, parent.OuterHTML())
	})

	t.Run("move", func(t *testing.T) {
		first := doc.CreateElement("div")
		second := doc.CreateElement("div")
		child := doc.CreateElement("span")
		require.NoError(t, first.AppendChild(child))
		require.NoError(t, second.AppendChild(child))
		assert.False(t, first.HasChildNodes())
		assert.True(t, child.ParentNode().IsSameNode(second))
	})

	t.Run("hierarchy", func(t *testing.T) {
		parent := doc.CreateElement("div")
		child := doc.CreateElement("div")
		require.NoError(t, parent.AppendChild(child))
		assert.ErrorIs(t, child.AppendChild(parent), ErrHierarchyRequest)
		assert.ErrorIs(t, parent.AppendChild(parent), ErrHierarchyRequest)
		assert.ErrorIs(t, doc.CreateTextNode("x").AppendChild(child), ErrHierarchyRequest)
	})

	t.Run("remove", func(t *testing.T) {
		parent := doc.CreateElement("ul")
		child := doc.CreateElement("li")
		require.NoError(t, parent.AppendChild(child))
		child.Remove()
		assert.False(t, parent.HasChildNodes())
		assert.Nil(t, child.ParentNode())
		child.Remove()

		assert.ErrorIs(t, parent.RemoveChild(child), ErrNotFound)
		require.NoError(t, parent.AppendChild(child))
		require.NoError(t, parent.RemoveChild(child))
	})

	t.Run("innerHTML", func(t *testing.T) {
		el := doc.CreateElement("div")
		el.SetTextContent("old")
		require.NoError(t, el.SetInnerHTML(`<i>new</i>`))
		assert.Equal(t, `<i>new</i>`, el.InnerHTML())
		el.SetTextContent("")
		assert.False(t, el.HasChildNodes())
	})

	t.Run("clone", func(t *testing.T) {
		el := doc.CreateElement("div")
		el.SetAttribute("class", "a")
		require.NoError(t, el.Append(doc.CreateTextNode("x")))
		assert.Equal(t, `<div class="a">x</div>`, el.CloneNode(true).OuterHTML())
		assert.Equal(t, `<div class="a"></div>`, el.CloneNode(false).OuterHTML())
	})
}

func TestNodeEvents(t *testing.T) {
	t.Parallel()
	doc := NewDocument()
	main := parseMain(t, doc)

	link, err := main.QuerySelector("#a2 a")
	require.NoError(t, err)

	var path []string
	record := func(name string) EventListener {
		return NewEventListener(func(e Event) error {
			path = append(path, name+":"+e.EventPhase().String())
			assert.True(t, e.Target().(Node).IsSameNode(link))
			return nil
		})
	}

	main.AddEventListener("click", record("main"), AddEventListenerOptions{EventListenerOptions: EventListenerOptions{Capture: true}})
	main.AddEventListener("click", record("main"), AddEventListenerOptions{})
	link.AddEventListener("click", record("link"), AddEventListenerOptions{})

	// another wrapper of the same node shares the listeners
	again, err := main.QuerySelector("a[title='Github page']")
	require.NoError(t, err)
	assert.NotSame(t, link, again)

	again.DispatchEvent(NewMouseEvent("click", MouseEventInit{EventInit: EventInit{Bubbles: true}}))
	assert.Equal(t, []string{"main:capturing", "link:at-target", "main:bubbling"}, path)

	path = nil
	link.Remove()
	link.DispatchEvent(NewEvent("click", EventInit{Bubbles: true}))
	assert.Equal(t, []string{"link:at-target"}, path)
}

func TestNodeEventsAcrossDocuments(t *testing.T) {
	t.Parallel()
	parent := NewDocument().CreateElement("nav")
	child := NewDocument().CreateElement("a")
	require.NoError(t, parent.AppendChild(child))

	count := 0
	parent.AddEventListener("click", NewEventListener(func(Event) error {
		count++
		return nil
	}), AddEventListenerOptions{})

	child.DispatchEvent(NewEvent("click", EventInit{Bubbles: true}))
	child.ParentElement().DispatchEvent(NewEvent("click"))
	assert.Equal(t, 2, count)
}

func TestRelease(t *testing.T) {
	t.Parallel()
	doc := NewDocument()
	main := parseMain(t, doc)
	link, err := main.QuerySelector("a")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	count := 0
	listener := NewEventListener(func(Event) error {
		count++
		return nil
	})
	main.AddEventListener("click", listener, AddEventListenerOptions{})
	link.AddEventListener("click", listener, AddEventListenerOptions{Signal: ctx})

	Release(main)
	assert.Empty(t, main.listeners("click"))
	assert.Empty(t, link.listeners("click"))

	link.DispatchEvent(NewEvent("click", EventInit{Bubbles: true}))
	assert.Zero(t, count)
	Release(nil)
}

func TestKeyboardEvent(t *testing.T) {
	t.Parallel()
	doc := NewDocument()
	input := doc.CreateElement("input")
	var key string
	input.AddEventListener("keydown", NewEventListener(func(e Event) error {
		key = e.(*KeyboardEvent).Key
		return nil
	}), AddEventListenerOptions{})

	input.DispatchEvent(NewKeyboardEvent("keydown", KeyboardEventInit{Key: "Enter", Code: "Enter"}))
	assert.Equal(t, "Enter", key)
}

func TestContainer(t *testing.T) {
	t.Parallel()
	doc := NewDocument()
	root, err := doc.Parse(`<html><body>` + content + `</body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "#document", root.NodeName())

	items, err := root.QuerySelectorAll("li")
	require.NoError(t, err)
	assert.Len(t, items, 3)

	titles, err := root.QueryXPathAll(`//a/@title`)
	require.NoError(t, err)
	require.Len(t, titles, 3)
	assert.Equal(t, "Golang page", titles[2].TextContent())

	_, err = root.QueryXPathAll(`//a[`)
	assert.Error(t, err)
}
