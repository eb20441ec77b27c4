package freelist

// Key is a handle into a SafeFreeList branded with B.
//
// Keys of lists with different brands are different types, so passing a
// key to the wrong list does not compile.
type Key[B any] struct {
	_     [0]B
	index int
}

// Index returns the slot index behind k, for diagnostics.
func (k Key[B]) Index() int {
	return k.index
}

// SafeFreeList wraps FreeList with branded keys. It adds no runtime state
// or checks; the brand exists only in the type system.
type SafeFreeList[T, B any] struct {
	inner *FreeList[T]
}

// NewSafeFreeList creates an empty SafeFreeList whose keys are branded
// with the type of brand. Only the type of brand matters. T must be given
// explicitly and B is inferred:
//
//	type graphNodes struct{}
//	nodes := freelist.NewSafeFreeList[Node](64, graphNodes{})
//
// # Safety
//
// The caller must use a brand type that no other live SafeFreeList uses,
// typically one declared locally next to the call. This is not checked.
// If two lists share a brand, their keys are interchangeable and the
// guarantee that keys only reach the list that issued them is lost.
func NewSafeFreeList[T, B any](capacity int, _ B, opts ...Option) *SafeFreeList[T, B] {
	return &SafeFreeList[T, B]{inner: New[T](capacity, opts...)}
}

// Alloc stores value and returns its key. See FreeList.Alloc: on a full
// list value is discarded and ok is false.
func (s *SafeFreeList[T, B]) Alloc(value T) (key Key[B], ok bool) {
	index, ok := s.inner.Alloc(value)
	if !ok {
		return Key[B]{}, false
	}
	return Key[B]{index: index}, true
}

// Free removes the value at key and returns it. key must not be used
// afterwards; a second Free of the same key corrupts the list.
func (s *SafeFreeList[T, B]) Free(key Key[B]) T {
	return s.inner.Free(key.index)
}

// Get returns a copy of the value at key.
func (s *SafeFreeList[T, B]) Get(key Key[B]) T {
	return s.inner.Get(key.index)
}

// GetMut returns a pointer to the value at key. The pointer must not
// outlive the key and must not overlap other access to the same key.
func (s *SafeFreeList[T, B]) GetMut(key Key[B]) *T {
	return s.inner.GetMut(key.index)
}

// SizeHint returns an upper bound on the number of values contained.
func (s *SafeFreeList[T, B]) SizeHint() int {
	return s.inner.SizeHint()
}

// IsFull reports whether there is no free slot left.
func (s *SafeFreeList[T, B]) IsFull() bool {
	return s.inner.IsFull()
}

// Cap returns the fixed capacity of the list.
func (s *SafeFreeList[T, B]) Cap() int {
	return s.inner.Cap()
}

// Clear removes all values. Every key issued so far becomes invalid.
func (s *SafeFreeList[T, B]) Clear() {
	s.inner.Clear()
}

// Release clears the list and drops its storage.
func (s *SafeFreeList[T, B]) Release() {
	s.inner.Release()
}

func (s *SafeFreeList[T, B]) String() string {
	return "SafeFreeList { inner: " + s.inner.String() + " }"
}
