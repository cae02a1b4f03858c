package boomixml

import "iter"

// Attr is an attribute keyed by its local name.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of a parsed process definition. Namespaces are not
// tracked: names are local names.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// Attr returns the value of the first attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the element carries the attribute at all.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// All yields e and every descendant in document order.
func (e *Element) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		e.walk(yield)
	}
}

func (e *Element) walk(yield func(*Element) bool) bool {
	if !yield(e) {
		return false
	}
	for _, child := range e.Children {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}

// WithAttr yields every element in the tree that has the named attribute.
func (e *Element) WithAttr(name string) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for el := range e.All() {
			if el.HasAttr(name) && !yield(el) {
				return
			}
		}
	}
}

// Count returns the number of elements in the tree rooted at e.
func (e *Element) Count() int {
	n := 0
	for range e.All() {
		n++
	}
	return n
}
