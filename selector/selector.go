// Package selector parses flat selector-like strings such as
// `input.large#name[type=text][disabled]` into element descriptors.
// Only a single compound selector is understood: combinators, groups
// and pseudo-classes are rejected with ErrUnsupported.
package selector

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTag is used when the selector carries no tag name.
const DefaultTag = "div"

// ErrUnsupported is returned for selector syntax that cannot describe
// a single element.
var ErrUnsupported = errors.New("unsupported selector syntax")

// SyntaxError reports a malformed selector.
type SyntaxError struct {
	Selector string
	Offset   int
	Msg      string
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("selector %q: %s at offset %d", e.Selector, e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Attr an attribute token.
type Attr struct {
	Key string
	Val string
}

// Descriptor the element described by a selector.
type Descriptor struct {
	Tag     string
	Classes []string
	Attrs   []Attr
}

// Parse tokenizes the selector into a Descriptor.
// `#id` becomes an id attribute and `[class=...]` contributes to Classes.
func Parse(s string) (*Descriptor, error) {
	z := &tokenizer{src: s, s: strings.TrimSpace(s)}
	return z.parse()
}

type tokenizer struct {
	src string
	s   string
	pos int
}

func (z *tokenizer) errorf(err error, format string, args ...any) error {
	return &SyntaxError{Selector: z.src, Offset: z.pos, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (z *tokenizer) parse() (*Descriptor, error) {
	d := new(Descriptor)

	if z.pos < len(z.s) {
		if z.s[z.pos] == '*' {
			z.pos++
		} else if isNameByte(z.s[z.pos]) || z.s[z.pos] == '\\' {
			tag, err := z.ident()
			if err != nil {
				return nil, err
			}
			d.Tag = strings.ToLower(tag)
		}
	}

	for z.pos < len(z.s) {
		ch := z.s[z.pos]
		switch ch {
		case '.':
			z.pos++
			class, err := z.ident()
			if err != nil {
				return nil, err
			}
			d.Classes = append(d.Classes, class)
		case '#':
			z.pos++
			id, err := z.ident()
			if err != nil {
				return nil, err
			}
			d.Attrs = append(d.Attrs, Attr{Key: "id", Val: id})
		case '[':
			z.pos++
			attr, err := z.attr()
			if err != nil {
				return nil, err
			}
			if attr.Key == "class" {
				d.Classes = append(d.Classes, strings.Fields(attr.Val)...)
				continue
			}
			d.Attrs = append(d.Attrs, attr)
		case ' ', '\t', '\n', '\r', '\f', '>', '+', '~':
			return nil, z.errorf(ErrUnsupported, "combinator %q", ch)
		case ',':
			return nil, z.errorf(ErrUnsupported, "selector group")
		case ':':
			return nil, z.errorf(ErrUnsupported, "pseudo-class")
		default:
			return nil, z.errorf(nil, "unexpected character %q", ch)
		}
	}

	if d.Tag == "" {
		d.Tag = DefaultTag
	}
	return d, nil
}

// ident reads a name token, resolving backslash escapes.
func (z *tokenizer) ident() (string, error) {
	var name strings.Builder
	for z.pos < len(z.s) {
		ch := z.s[z.pos]
		if ch == '\\' {
			z.pos++
			if z.pos >= len(z.s) {
				return "", z.errorf(nil, "unterminated escape")
			}
			name.WriteByte(z.s[z.pos])
			z.pos++
			continue
		}
		if !isNameByte(ch) {
			break
		}
		name.WriteByte(ch)
		z.pos++
	}
	if name.Len() == 0 {
		return "", z.errorf(nil, "expected name")
	}
	return name.String(), nil
}

// attr reads `name]`, `name=value]` or `name="value"]`; the opening
// bracket is already consumed.
func (z *tokenizer) attr() (attr Attr, err error) {
	z.skipSpace()
	if attr.Key, err = z.ident(); err != nil {
		return
	}
	attr.Key = strings.ToLower(attr.Key)
	z.skipSpace()

	if z.pos >= len(z.s) {
		return attr, z.errorf(nil, "unterminated attribute")
	}

	switch ch := z.s[z.pos]; ch {
	case ']':
		z.pos++
		return attr, nil
	case '=':
		z.pos++
	case '~', '|', '^', '$', '*':
		return attr, z.errorf(ErrUnsupported, "attribute operator %q", ch)
	default:
		return attr, z.errorf(nil, "unexpected character %q", ch)
	}

	z.skipSpace()
	if attr.Val, err = z.value(); err != nil {
		return
	}
	z.skipSpace()

	if z.pos >= len(z.s) || z.s[z.pos] != ']' {
		return attr, z.errorf(nil, "unterminated attribute")
	}
	z.pos++
	return attr, nil
}

type quoteState int

const (
	commonState quoteState = iota
	singleQuoteState
	doubleQuoteState
)

// value reads a quoted or bare attribute value.
func (z *tokenizer) value() (string, error) {
	var val strings.Builder
	state := commonState

	if z.pos < len(z.s) {
		switch z.s[z.pos] {
		case '\'':
			state = singleQuoteState
			z.pos++
		case '"':
			state = doubleQuoteState
			z.pos++
		}
	}

	for z.pos < len(z.s) {
		ch := z.s[z.pos]
		switch {
		case ch == '\\':
			z.pos++
			if z.pos >= len(z.s) {
				return "", z.errorf(nil, "unterminated escape")
			}
			val.WriteByte(z.s[z.pos])
			z.pos++
			continue
		case state == singleQuoteState && ch == '\'',
			state == doubleQuoteState && ch == '"':
			z.pos++
			return val.String(), nil
		case state == commonState && (ch == ']' || isSpace(ch)):
			return val.String(), nil
		}
		val.WriteByte(ch)
		z.pos++
	}

	if state != commonState {
		return "", z.errorf(nil, "attribute value quote not closed")
	}
	return val.String(), nil
}

func (z *tokenizer) skipSpace() {
	for z.pos < len(z.s) && isSpace(z.s[z.pos]) {
		z.pos++
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isNameByte(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' || ch == '-' || ch == '_' || ch >= 0x80
}
