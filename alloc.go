package freelist

import (
	"context"
	"fmt"
	"log/slog"
)

// Alloc stores value in a free slot and returns its key.
//
// If the list is full, Alloc returns ok == false and value is discarded:
// Drop is called on it if T is a Dropper. Check IsFull beforehand if the
// value must not be lost.
//
// It panics with ErrReleased if the list has been released.
func (l *FreeList[T]) Alloc(value T) (key int, ok bool) {
	if l.next < len(l.slots) {
		// Reuse the most recently freed slot.
		key = l.next
		l.next = l.slots[key].next
	} else {
		if l.high >= len(l.slots) {
			return 0, l.allocFull(value)
		}
		key = l.high
		l.high++
	}
	l.slots[key].value = value
	return key, true
}

// allocFull handles Alloc on a full or released list. It always reports false.
func (l *FreeList[T]) allocFull(value T) bool {
	l.panicIfReleased()
	if l.drop {
		// Drop through the preallocated spare so value stays on the stack.
		*l.spare = value
		dropValue(l.spare)
		var zero T
		*l.spare = zero
	}
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "freelist: full, value discarded",
		slog.Int("capacity", len(l.slots)),
		slog.Int("high", l.high))
	return false
}

// Free removes the value at key and returns it. Drop is not called; the
// caller takes ownership of the returned value.
//
// key must have been returned by Alloc on this same list and must not
// have been freed since. This is not checked. Freeing a key twice, or a
// key that was never allocated, links the slot into the free chain a
// second time and corrupts the list: later Allocs will hand the same slot
// to two owners. Build with -tags freelist_strict to turn such misuse
// into a panic at O(N) cost per call.
func (l *FreeList[T]) Free(key int) T {
	if strict {
		l.mustBeAllocated(key)
	}
	s := &l.slots[key]
	value := s.value
	var zero T
	s.value = zero
	s.next = l.next
	l.next = key
	return value
}

// Get returns a copy of the value at key.
//
// key must have been returned by Alloc on this same list and must not
// have been freed since. This is not checked outside strict builds; a
// freed key yields whatever the slot holds, normally the zero value.
func (l *FreeList[T]) Get(key int) T {
	if strict {
		l.mustBeAllocated(key)
	}
	return l.slots[key].value
}

// GetMut returns a pointer to the value at key.
//
// The same contract as Get applies. In addition the pointer is only valid
// until key is freed or the list is cleared or released, and it must not
// be used while any other access to the same key is in progress.
func (l *FreeList[T]) GetMut(key int) *T {
	if strict {
		l.mustBeAllocated(key)
	}
	return &l.slots[key].value
}

// mustBeAllocated panics with ErrNotAllocated if key is not live.
func (l *FreeList[T]) mustBeAllocated(key int) {
	if l.IsFree(key) {
		l.logger.LogAttrs(context.Background(), slog.LevelError, "freelist: access to unallocated key",
			slog.Int("key", key),
			slog.Int("high", l.high))
		panic(fmt.Errorf("%w: key %d", ErrNotAllocated, key))
	}
}
