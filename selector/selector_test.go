package selector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		selector string
		want     Descriptor
	}{
		{"div.a.b[data-x=1]", Descriptor{Tag: "div", Classes: []string{"a", "b"}, Attrs: []Attr{{"data-x", "1"}}}},
		{".a", Descriptor{Tag: "div", Classes: []string{"a"}}},
		{"", Descriptor{Tag: "div"}},
		{"*", Descriptor{Tag: "div"}},
		{"SPAN", Descriptor{Tag: "span"}},
		{"input#name[type=text][disabled]", Descriptor{Tag: "input", Attrs: []Attr{{"id", "name"}, {"type", "text"}, {"disabled", ""}}}},
		{`a[title="hello world"]`, Descriptor{Tag: "a", Attrs: []Attr{{"title", "hello world"}}}},
		{`a[title='it"s']`, Descriptor{Tag: "a", Attrs: []Attr{{"title", `it"s`}}}},
		{`a[ href = /x ]`, Descriptor{Tag: "a", Attrs: []Attr{{"href", "/x"}}}},
		{`p[class="x y"].z`, Descriptor{Tag: "p", Classes: []string{"x", "y", "z"}}},
		{`div.md\:flex`, Descriptor{Tag: "div", Classes: []string{"md:flex"}}},
		{`  li.item  `, Descriptor{Tag: "li", Classes: []string{"item"}}},
		{`div[data-label="a]b"]`, Descriptor{Tag: "div", Attrs: []Attr{{"data-label", "a]b"}}}},
	}

	for _, c := range testCases {
		t.Run(c.selector, func(t *testing.T) {
			d, err := Parse(c.selector)
			require.NoError(t, err)
			assert.Equal(t, c.want, *d)
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	unsupported := []string{
		"div p",
		"div>p",
		"div + p",
		"div~p",
		"a, b",
		"a:hover",
		"a[href^=http]",
	}
	for _, s := range unsupported {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrUnsupported)
		})
	}

	malformed := []string{
		"div.",
		"div#",
		"div[",
		"div[x=1",
		`div[x="1]`,
		"div[=1]",
		`div.a\`,
		"div!",
	}
	for _, s := range malformed {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			require.Error(t, err)
			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
			assert.False(t, errors.Is(err, ErrUnsupported))
			assert.Equal(t, s, syntaxErr.Selector)
		})
	}
}
