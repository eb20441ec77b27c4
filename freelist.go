// Package freelist implements a fixed-capacity slot allocator.
// Values of one type live in a single backing slice allocated by New;
// freed slots are threaded into an intrusive free list and reused LIFO.
package freelist

import (
	"context"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// slot holds either a live value or the index of the next free slot.
// Which one is meaningful is decided by the list invariants, not by a tag.
type slot[T any] struct {
	value T
	next  int
}

// FreeList is a fixed-capacity free list. Not goroutine-safe.
//
// All operations are O(1) unless noted otherwise. The zero value is not
// usable; create lists with New.
type FreeList[T any] struct {
	next  int // head of the free chain, len(slots) when empty
	high  int // high-water mark, slots[high:] are uninitialized
	slots []slot[T]

	// marks is scratch space for Clear and the diagnostics, sized to the
	// capacity so they never allocate.
	marks *bitset.BitSet

	// spare receives values rejected by a full list while they are dropped.
	// Only set when T is a Dropper.
	spare *T

	drop     bool // T implements Dropper
	pointers bool // T contains pointers and must be zeroed on removal
	released bool

	logger *slog.Logger
}

// New creates an empty FreeList holding at most capacity values.
// It panics with ErrInvalidCapacity if capacity is negative.
func New[T any](capacity int, opts ...Option) *FreeList[T] {
	if capacity < 0 {
		panic(ErrInvalidCapacity)
	}
	o := applyOptions(opts)
	l := &FreeList[T]{
		next:     capacity,
		slots:    make([]slot[T], capacity),
		marks:    bitset.New(uint(capacity)),
		drop:     implementsDropper[T](),
		pointers: hasPointers[T](),
		logger:   o.logger,
	}
	if l.drop {
		l.spare = new(T)
	}
	return l
}

// Cap returns the fixed capacity of the list.
func (l *FreeList[T]) Cap() int {
	return len(l.slots)
}

// SizeHint returns an upper bound on the number of values contained.
// The actual count is less than or equal to this. It is the high-water
// mark: freeing a value does not lower it, and reusing a freed slot does
// not raise it. Only Clear resets it to zero.
func (l *FreeList[T]) SizeHint() int {
	return l.high
}

// IsFull reports whether there is no free slot left.
func (l *FreeList[T]) IsFull() bool {
	return l.high == len(l.slots) && l.next == len(l.slots)
}

// IsFree reports whether key does not name a live value.
// Solely intended for verification: it walks the free chain.
//
// Time complexity: worst case O(N).
func (l *FreeList[T]) IsFree(key int) bool {
	if key < 0 || key >= l.high {
		return true
	}
	for next := l.next; next < len(l.slots); next = l.slots[next].next {
		if next == key {
			return true
		}
	}
	return false
}

// needsTeardown reports whether removing values requires per-slot work.
func (l *FreeList[T]) needsTeardown() bool {
	return l.drop || l.pointers
}

// Clear removes all values, calling Drop on each live value if T is a
// Dropper. The backing storage is kept for reuse.
//
// Time complexity: O(1) if T holds no pointers and is not a Dropper,
// otherwise O(N).
func (l *FreeList[T]) Clear() {
	l.panicIfReleased()
	if l.needsTeardown() {
		dropped := 0
		if l.drop {
			l.markFree()
			for i := 0; i < l.high; i++ {
				if !l.marks.Test(uint(i)) {
					dropValue(&l.slots[i].value)
					dropped++
				}
			}
		}
		if l.pointers {
			var zero T
			for i := 0; i < l.high; i++ {
				l.slots[i].value = zero
			}
		}
		l.logger.LogAttrs(context.Background(), slog.LevelDebug, "freelist: cleared",
			slog.Int("high", l.high),
			slog.Int("dropped", dropped))
	}
	l.high = 0
	l.next = len(l.slots)
}

// Release clears the list and drops its storage, making it unusable.
// Any subsequent Alloc, Clear or Release panics with ErrReleased, and
// slot accessors panic with an index out of range.
func (l *FreeList[T]) Release() {
	l.panicIfReleased()
	if l.needsTeardown() {
		l.Clear()
	}
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "freelist: released",
		slog.Int("capacity", len(l.slots)))
	l.slots = nil
	l.marks = nil
	l.spare = nil
	l.next = 0
	l.high = 0
	l.released = true
}

// markFree resets marks and sets the bit of every slot on the free chain.
func (l *FreeList[T]) markFree() {
	l.marks.ClearAll()
	for next := l.next; next < len(l.slots); next = l.slots[next].next {
		l.marks.Set(uint(next))
	}
}

// panicIfReleased panics if the list has been released.
func (l *FreeList[T]) panicIfReleased() {
	if l.released {
		panic(ErrReleased)
	}
}
