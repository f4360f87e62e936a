package triemap

// IsEmpty reports whether no entry is stored at or below this node. It
// walks the whole subtree, so it is not O(1); a node emptied by Remove
// but still referenced by its parent reports empty correctly.
func (m *trieMap[T]) IsEmpty() bool {
	for _, child := range m.children {
		if !child.IsEmpty() {
			return false
		}
	}
	return len(m.values) == 0
}

// Size counts the entries stored in the whole subtree.
func (m *trieMap[T]) Size() int {
	size := len(m.values)
	for _, child := range m.children {
		size += child.Size()
	}
	return size
}

// ContainsValue reports whether value is stored anywhere in the subtree,
// comparing with ==. Stops at the first match.
func (m *trieMap[T]) ContainsValue(value T) bool {
	for _, v := range m.values {
		if v == value {
			return true
		}
	}
	for _, child := range m.children {
		if child.ContainsValue(value) {
			return true
		}
	}
	return false
}

// Keys returns every stored key, in no particular order.
func (m *trieMap[T]) Keys() []string {
	keys := make([]string, 0)
	return m.appendKeys(keys, "")
}

func (m *trieMap[T]) appendKeys(keys []string, prefix string) []string {
	for c := range m.values {
		keys = append(keys, appendChar(prefix, c))
	}
	for c, child := range m.children {
		keys = child.appendKeys(keys, appendChar(prefix, c))
	}
	return keys
}

// Clear drops this node's values and children, abandoning the whole
// subtree.
func (m *trieMap[T]) Clear() {
	m.values = nil
	m.children = nil
}

// Entries would produce a live view of all (key, value) pairs. It is not
// implemented and always fails with ErrUnsupported, on purpose: callers
// must not come to depend on a snapshot standing in for a live view.
func (m *trieMap[T]) Entries() (map[string]T, error) {
	return nil, ErrUnsupported
}

// Values would produce a view of the stored values in isolation. Not
// implemented; always fails with ErrUnsupported.
func (m *trieMap[T]) Values() ([]T, error) {
	return nil, ErrUnsupported
}
