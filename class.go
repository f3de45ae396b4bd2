package domkit

import "github.com/shiroyk/domkit/dom"

// AddClass adds the classes to the element, existing ones are kept once.
func AddClass(el *dom.Element, classes ...string) error {
	return el.ClassList().Add(classes...)
}

// RemoveClass removes the classes from the element.
func RemoveClass(el *dom.Element, classes ...string) error {
	return el.ClassList().Remove(classes...)
}

// ToggleClass toggles each class in order.
func ToggleClass(el *dom.Element, classes ...string) error {
	list := el.ClassList()
	for _, class := range classes {
		if _, err := list.Toggle(class); err != nil {
			return err
		}
	}
	return nil
}

// HasClass reports whether the element has the class.
func HasClass(el *dom.Element, class string) bool {
	return el.ClassList().Contains(class)
}

// Empty removes every child node of n.
func Empty(n dom.Node) {
	for n.HasChildNodes() {
		n.FirstChild().Remove()
	}
}
