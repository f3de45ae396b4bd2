package dom

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	nodes "github.com/shiroyk/domkit/html"
	"golang.org/x/net/html"
)

var (
	// ErrSyntax an empty token was given.
	ErrSyntax = errors.New("syntax error")
	// ErrInvalidCharacter a token contains whitespace.
	ErrInvalidCharacter = errors.New("invalid character error")
)

// ClassList is the DOMTokenList of the class attribute
// https://dom.spec.whatwg.org/#interface-domtokenlist
type ClassList struct {
	n *html.Node
}

// Values returns the ordered set of classes.
func (c *ClassList) Values() []string {
	class, _ := nodes.Attr(c.n, "class")
	var set []string
	for _, token := range strings.Fields(class) {
		if !slices.Contains(set, token) {
			set = append(set, token)
		}
	}
	return set
}

// Len returns the number of distinct classes.
func (c *ClassList) Len() int { return len(c.Values()) }

// Item returns the class at index i.
func (c *ClassList) Item(i int) (string, bool) {
	values := c.Values()
	if i < 0 || i >= len(values) {
		return "", false
	}
	return values[i], true
}

// Contains reports whether the class is present.
func (c *ClassList) Contains(token string) bool {
	return slices.Contains(c.Values(), token)
}

// Add adds the classes, already present classes are ignored.
func (c *ClassList) Add(tokens ...string) error {
	if err := validateTokens(tokens...); err != nil {
		return err
	}
	set := c.Values()
	for _, token := range tokens {
		if !slices.Contains(set, token) {
			set = append(set, token)
		}
	}
	c.update(set)
	return nil
}

// Remove removes the classes, absent classes are ignored.
func (c *ClassList) Remove(tokens ...string) error {
	if err := validateTokens(tokens...); err != nil {
		return err
	}
	set := slices.DeleteFunc(c.Values(), func(s string) bool {
		return slices.Contains(tokens, s)
	})
	c.update(set)
	return nil
}

// Toggle removes the class if present, adds it otherwise. With force
// the class is only added (true) or only removed (false).
// It returns whether the class is present afterwards.
func (c *ClassList) Toggle(token string, force ...bool) (bool, error) {
	if err := validateTokens(token); err != nil {
		return false, err
	}
	set := c.Values()
	if i := slices.Index(set, token); i >= 0 {
		if len(force) == 0 || !force[0] {
			c.update(slices.Delete(set, i, i+1))
			return false, nil
		}
		return true, nil
	}
	if len(force) == 0 || force[0] {
		c.update(append(set, token))
		return true, nil
	}
	return false, nil
}

// Replace replaces token with newToken, reports whether token was present.
func (c *ClassList) Replace(token, newToken string) (bool, error) {
	if err := validateTokens(token, newToken); err != nil {
		return false, err
	}
	set := c.Values()
	i := slices.Index(set, token)
	if i < 0 {
		return false, nil
	}
	switch j := slices.Index(set, newToken); {
	case j < 0:
		set[i] = newToken
	case j < i:
		set = slices.Delete(set, i, i+1)
	case j > i:
		set[i] = newToken
		set = slices.Delete(set, j, j+1)
	}
	c.update(set)
	return true, nil
}

// String returns the class attribute value.
func (c *ClassList) String() string {
	class, _ := nodes.Attr(c.n, "class")
	return class
}

func (c *ClassList) update(set []string) {
	if len(set) == 0 && !nodes.HasAttr(c.n, "class") {
		return
	}
	nodes.SetAttr(c.n, "class", strings.Join(set, " "))
}

func validateTokens(tokens ...string) error {
	for _, token := range tokens {
		if token == "" {
			return fmt.Errorf("%w: the token provided must not be empty", ErrSyntax)
		}
		if strings.ContainsAny(token, " \t\n\r\f") {
			return fmt.Errorf("%w: the token provided (%q) contains HTML space characters", ErrInvalidCharacter, token)
		}
	}
	return nil
}
