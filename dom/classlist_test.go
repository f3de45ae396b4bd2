package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassList(t *testing.T) {
	t.Parallel()
	doc := NewDocument()

	t.Run("add", func(t *testing.T) {
		el := doc.CreateElement("div")
		list := el.ClassList()
		require.NoError(t, list.Add("a", "b"))
		require.NoError(t, list.Add("a"))
		assert.Equal(t, []string{"a", "b"}, list.Values())
		assert.Equal(t, "a b", el.ClassName())
		assert.Equal(t, 2, list.Len())
		item, ok := list.Item(1)
		assert.True(t, ok)
		assert.Equal(t, "b", item)
		_, ok = list.Item(2)
		assert.False(t, ok)
	})

	t.Run("duplicates in attribute", func(t *testing.T) {
		el := doc.CreateElement("div")
		el.SetAttribute("class", "  a b  a ")
		assert.Equal(t, []string{"a", "b"}, el.ClassList().Values())
		assert.True(t, el.ClassList().Contains("b"))
		require.NoError(t, el.ClassList().Add("c"))
		assert.Equal(t, "a b c", el.ClassName())
	})

	t.Run("remove", func(t *testing.T) {
		el := doc.CreateElement("div")
		list := el.ClassList()
		require.NoError(t, list.Remove("a"))
		assert.False(t, el.HasAttribute("class"))

		require.NoError(t, list.Add("a", "b", "c"))
		require.NoError(t, list.Remove("b", "x"))
		assert.Equal(t, "a c", list.String())
		require.NoError(t, list.Remove("a", "c"))
		assert.True(t, el.HasAttribute("class"))
		assert.Equal(t, "", el.ClassName())
	})

	t.Run("toggle", func(t *testing.T) {
		list := doc.CreateElement("div").ClassList()
		on, err := list.Toggle("a")
		require.NoError(t, err)
		assert.True(t, on)
		on, err = list.Toggle("a")
		require.NoError(t, err)
		assert.False(t, on)

		on, _ = list.Toggle("b", true)
		assert.True(t, on)
		on, _ = list.Toggle("b", true)
		assert.True(t, on)
		on, _ = list.Toggle("b", false)
		assert.False(t, on)
		on, _ = list.Toggle("c", false)
		assert.False(t, on)
		assert.Empty(t, list.Values())
	})

	t.Run("replace", func(t *testing.T) {
		el := doc.CreateElement("div")
		el.SetAttribute("class", "a b c")
		list := el.ClassList()

		ok, err := list.Replace("b", "x")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a x c", el.ClassName())

		ok, _ = list.Replace("c", "a")
		assert.True(t, ok)
		assert.Equal(t, "a x", el.ClassName())

		ok, _ = list.Replace("a", "x")
		assert.True(t, ok)
		assert.Equal(t, "x", el.ClassName())

		ok, _ = list.Replace("x", "x")
		assert.True(t, ok)
		assert.Equal(t, "x", el.ClassName())

		ok, _ = list.Replace("none", "y")
		assert.False(t, ok)
	})

	t.Run("invalid token", func(t *testing.T) {
		el := doc.CreateElement("div")
		list := el.ClassList()
		assert.ErrorIs(t, list.Add("a", ""), ErrSyntax)
		assert.ErrorIs(t, list.Add("a b"), ErrInvalidCharacter)
		assert.ErrorIs(t, list.Remove("\t"), ErrInvalidCharacter)
		_, err := list.Toggle("")
		assert.ErrorIs(t, err, ErrSyntax)
		assert.False(t, el.HasAttribute("class"))
	})
}
