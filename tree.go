package triemap

// Get returns the value stored under key. The boolean reports whether an
// entry exists, so a stored zero value is distinguishable from absence.
// Read-only; allocates nothing.
func (m *trieMap[T]) Get(key string) (T, bool, error) {
	if key == "" {
		var zero T
		return zero, false, ErrEmptyKey
	}
	v, ok := m.get(key)
	return v, ok, nil
}

func (m *trieMap[T]) get(key string) (T, bool) {
	c := key[0]
	if len(key) == 1 {
		v, ok := m.values[c]
		return v, ok
	}
	if child, ok := m.children[c]; ok {
		return child.get(key[1:])
	}
	var zero T
	return zero, false
}

// ContainsKey reports whether an entry exists under key. Exact: an entry
// whose value is the zero of T still counts.
func (m *trieMap[T]) ContainsKey(key string) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Put stores value under key, creating intermediate nodes on demand, one
// per character past any already-shared prefix. It returns the value it
// replaced, if any; at most one value lives under each distinct key.
func (m *trieMap[T]) Put(key string, value T) (T, bool, error) {
	if key == "" {
		var zero T
		return zero, false, ErrEmptyKey
	}
	prev, replaced := m.put(key, value)
	return prev, replaced, nil
}

func (m *trieMap[T]) put(key string, value T) (T, bool) {
	c := key[0]
	if len(key) == 1 {
		prev, replaced := m.values[c]
		if m.values == nil {
			m.values = make(map[byte]T)
		}
		m.values[c] = value
		return prev, replaced
	}
	child, ok := m.children[c]
	if !ok {
		child = newTrieMap[T]()
		if m.children == nil {
			m.children = make(map[byte]*trieMap[T])
		}
		m.children[c] = child
	}
	return child.put(key[1:], value)
}

// PutAll inserts every entry of the source map by repeated Put. The batch
// is not atomic: an empty key aborts with ErrEmptyKey and leaves the
// entries inserted before it applied.
func (m *trieMap[T]) PutAll(entries map[string]T) error {
	for key, value := range entries {
		if _, _, err := m.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the entry stored under key and returns its value. A key
// whose path does not exist yields no value, never a fault. Pruning is
// local: when the node that held the value becomes entirely empty its own
// maps are dropped, but the parent keeps its edge to the emptied node.
// That stale edge costs a little memory until Clear and nothing else;
// emptiness, size and enumeration stay correct.
func (m *trieMap[T]) Remove(key string) (T, bool, error) {
	if key == "" {
		var zero T
		return zero, false, ErrEmptyKey
	}
	prev, removed := m.remove(key)
	return prev, removed, nil
}

func (m *trieMap[T]) remove(key string) (T, bool) {
	c := key[0]
	if len(key) > 1 {
		child, ok := m.children[c]
		if !ok {
			var zero T
			return zero, false
		}
		return child.remove(key[1:])
	}
	prev, ok := m.values[c]
	if !ok {
		return prev, false
	}
	delete(m.values, c)
	if m.IsEmpty() {
		m.Clear()
	}
	return prev, true
}

// KeysWithPrefix returns every stored key beginning with prefix, in no
// particular order. The empty prefix selects all keys. The match is exact
// on characters; there are no wildcards.
func (m *trieMap[T]) KeysWithPrefix(prefix string) []string {
	keys := make([]string, 0)
	return m.prefixKeys(keys, "", prefix)
}

func (m *trieMap[T]) prefixKeys(keys []string, walked, rest string) []string {
	if rest == "" {
		return m.appendKeys(keys, walked)
	}
	c := rest[0]
	if len(rest) == 1 {
		// the key equal to the prefix itself ends in this node
		if _, ok := m.values[c]; ok {
			keys = append(keys, appendChar(walked, c))
		}
	}
	if child, ok := m.children[c]; ok {
		keys = child.prefixKeys(keys, appendChar(walked, c), rest[1:])
	}
	return keys
}

// ForEach walks every entry, in no particular order, until fn returns
// false.
func (m *trieMap[T]) ForEach(fn Visitor[T]) {
	m.forEach("", fn)
}

func (m *trieMap[T]) forEach(prefix string, fn Visitor[T]) traverseAction {
	for c, v := range m.values {
		if !fn(appendChar(prefix, c), v) {
			return traverseStop
		}
	}
	for c, child := range m.children {
		if child.forEach(appendChar(prefix, c), fn) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

func (m *trieMap[T]) Iterator() Iterator[T] {
	it := &iterator[T]{
		depth: []*iteratorLevel[T]{newIteratorLevel(m, "")},
	}
	it.next()
	return it
}

func newIteratorLevel[T comparable](node *trieMap[T], prefix string) *iteratorLevel[T] {
	return &iteratorLevel[T]{
		node:     node,
		prefix:   prefix,
		values:   charsOf(node.values),
		children: charsOf(node.children),
	}
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && len(it.depth) > 0
}

func (it *iterator[T]) Next() (string, T, error) {
	if !it.HasNext() {
		var zero T
		return "", zero, ErrNoMoreEntries
	}
	level := it.depth[len(it.depth)-1]
	c := level.values[0]
	level.values = level.values[1:]
	key := appendChar(level.prefix, c)
	value := level.node.values[c]
	it.next()
	return key, value, nil
}

// next pops exhausted levels and descends into pending children until the
// top level has a value ready, or the stack runs out. After it returns,
// either HasNext is false or the top level's next value is the next entry.
func (it *iterator[T]) next() {
	for len(it.depth) > 0 {
		level := it.depth[len(it.depth)-1]
		if len(level.values) > 0 {
			return
		}
		if len(level.children) > 0 {
			c := level.children[0]
			level.children = level.children[1:]
			child := level.node.children[c]
			it.depth = append(it.depth, newIteratorLevel(child, appendChar(level.prefix, c)))
			continue
		}
		it.depth = it.depth[:len(it.depth)-1]
	}
}
