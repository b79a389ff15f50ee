package record

// Collection holds the records of one kind in document order, indexed by XRef.
type Collection[T any] struct {
	items []*T
	index map[XRef]int
}

// Append adds r under x. It returns false, leaving the collection
// unchanged, when x is already present.
func (c *Collection[T]) Append(x XRef, r *T) bool {
	if c.index == nil {
		c.index = make(map[XRef]int)
	}
	if _, dup := c.index[x]; dup {
		return false
	}
	c.index[x] = len(c.items)
	c.items = append(c.items, r)
	return true
}

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the i-th record in document order.
func (c *Collection[T]) At(i int) *T { return c.items[i] }

// All returns the records in document order. The slice must not be modified.
func (c *Collection[T]) All() []*T { return c.items }

// IndexOf returns the position of the record named x.
func (c *Collection[T]) IndexOf(x XRef) (int, bool) {
	i, ok := c.index[x]
	return i, ok
}

// Lookup returns the record named x.
func (c *Collection[T]) Lookup(x XRef) (*T, bool) {
	i, ok := c.index[x]
	if !ok {
		return nil, false
	}
	return c.items[i], true
}

// Get dereferences a resolved pointer. It returns false for pointers that
// are unset, still pending, or dangling.
func (c *Collection[T]) Get(p Pointer[T]) (*T, bool) {
	if !p.Resolved() || p.index < 0 || p.index >= len(c.items) {
		return nil, false
	}
	return c.items[p.index], true
}
