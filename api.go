package triemap

// Map is an associative container keyed by strings, backed by a
// character-indexed trie so that shared key prefixes are stored once.
// Keyed operations cost O(len(key)) in the key length, independent of
// how many entries are stored. The empty string is never a valid key;
// every keyed operation rejects it with ErrEmptyKey.
//
// A Map is not safe for concurrent use: callers that mutate it from
// several goroutines must synchronize externally.
type Map[T comparable] interface {
	Get(key string) (T, bool, error)
	Put(key string, value T) (T, bool, error)
	PutAll(entries map[string]T) error
	Remove(key string) (T, bool, error)
	ContainsKey(key string) (bool, error)
	ContainsValue(value T) bool
	Keys() []string
	KeysWithPrefix(prefix string) []string
	ForEach(fn Visitor[T])
	Iterator() Iterator[T]
	Entries() (map[string]T, error)
	Values() ([]T, error)
	Size() int
	IsEmpty() bool
	Clear()
}

// Iterator walks the entries of a Map in no particular order. Next
// returns ErrNoMoreEntries once the iterator is exhausted. Mutating
// the Map while iterating is undefined.
type Iterator[T comparable] interface {
	HasNext() bool
	Next() (string, T, error)
}

// Visitor receives one entry per ForEach step; returning false stops
// the walk.
type Visitor[T comparable] func(key string, value T) bool

func New[T comparable]() Map[T] {
	return &trieMap[T]{}
}
