package triemap

import (
	"errors"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	// ErrEmptyKey is returned by every keyed operation given an empty key.
	ErrEmptyKey = errors.New("The key must be a non-empty string")

	// ErrUnsupported is returned by the entry and value view operations,
	// which this container does not implement.
	ErrUnsupported = errors.New("This operation is not supported")

	// ErrNoMoreEntries is returned by Next once the iterator is exhausted.
	ErrNoMoreEntries = errors.New("There are no more entries in the trie")
)

type (
	traverseAction int

	// trieMap is one trie node and, through the root, the whole container.
	// values holds entries whose key ends exactly one character below this
	// node; children holds one subtrie per next character for all longer
	// keys. Both maps start nil and are allocated on first insertion.
	trieMap[T comparable] struct {
		values   map[byte]T
		children map[byte]*trieMap[T]
	}

	iteratorLevel[T comparable] struct {
		node     *trieMap[T]
		prefix   string
		values   []byte
		children []byte
	}

	iterator[T comparable] struct {
		depth []*iteratorLevel[T]
	}
)

func newTrieMap[T comparable]() *trieMap[T] {
	return &trieMap[T]{}
}

// appendChar extends a key prefix by one raw character. string(c) would
// re-encode characters above 0x7f as multi-byte runes and corrupt the key.
func appendChar(prefix string, c byte) string {
	return prefix + string([]byte{c})
}

func charsOf[V any](m map[byte]V) []byte {
	if len(m) == 0 {
		return nil
	}
	cs := make([]byte, 0, len(m))
	for c := range m {
		cs = append(cs, c)
	}
	return cs
}
