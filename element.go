package domkit

import "github.com/shiroyk/domkit/dom"

// Element wraps a *dom.Element with the helpers of this package as
// methods.
type Element struct {
	el *dom.Element
}

// Wrap returns the Element handle of el, nil if el is nil.
func Wrap(el *dom.Element) *Element {
	if el == nil {
		return nil
	}
	return &Element{el}
}

// Element returns the wrapped element.
func (e *Element) Element() *dom.Element { return e.el }

func (e *Element) AddClass(classes ...string) error    { return AddClass(e.el, classes...) }
func (e *Element) RemoveClass(classes ...string) error { return RemoveClass(e.el, classes...) }
func (e *Element) ToggleClass(classes ...string) error { return ToggleClass(e.el, classes...) }
func (e *Element) HasClass(class string) bool          { return HasClass(e.el, class) }

// Append appends the children in order, see S for the accepted values.
func (e *Element) Append(children ...any) error {
	return appendChildren(e.el, children)
}

// Empty removes every child node.
func (e *Element) Empty() { Empty(e.el) }

// Remove detaches the element from its parent.
func (e *Element) Remove() { e.el.Remove() }

func (e *Element) Emit(event dom.Event) bool { return Emit(e.el, event) }

func (e *Element) EmitCustom(name string, params ...any) bool {
	return EmitCustom(e.el, name, params...)
}

func (e *Element) On(event string, listener Listener, opts ...Options) {
	On(e.el, event, listener, opts...)
}

func (e *Element) OnEach(events []string, listener Listener, opts ...Options) {
	OnEach(e.el, events, listener, opts...)
}

func (e *Element) Off(event string, listener Listener, opts ...Options) {
	Off(e.el, event, listener, opts...)
}

func (e *Element) Once(event string, listener Listener, opts ...Options) {
	Once(e.el, event, listener, opts...)
}

// Query returns the first descendant matching the CSS selector, nil
// if none match.
func (e *Element) Query(selector string) (*Element, error) {
	el, err := e.el.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	return Wrap(el), nil
}

// QueryAll returns every descendant matching the CSS selector in
// document order.
func (e *Element) QueryAll(selector string) ([]*Element, error) {
	list, err := e.el.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	ret := make([]*Element, len(list))
	for i, el := range list {
		ret[i] = &Element{el}
	}
	return ret, nil
}

// HTML returns the outer HTML of the element.
func (e *Element) HTML() string { return e.el.OuterHTML() }

// String implements fmt.Stringer.
func (e *Element) String() string { return e.HTML() }
