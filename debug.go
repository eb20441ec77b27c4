package freelist

import (
	"fmt"
	"iter"
	"strings"
)

// SlotState classifies a slot in a diagnostic dump.
type SlotState uint8

const (
	// SlotUninit is a slot at or above the high-water mark.
	SlotUninit SlotState = iota
	// SlotFree is a slot on the free chain.
	SlotFree
	// SlotValue is a slot holding a live value.
	SlotValue
)

func (s SlotState) String() string {
	switch s {
	case SlotUninit:
		return "Uninit"
	case SlotFree:
		return "Free"
	case SlotValue:
		return "Value"
	default:
		return fmt.Sprintf("SlotState(%d)", uint8(s))
	}
}

// Slot is one entry of a diagnostic dump.
type Slot[T any] struct {
	State SlotState
	Value T   // set for SlotValue
	Next  int // set for SlotFree; Cap() marks the end of the chain
}

func (s Slot[T]) String() string {
	switch s.State {
	case SlotValue:
		return fmt.Sprintf("Value(%v)", s.Value)
	case SlotFree:
		return fmt.Sprintf("Free(%d)", s.Next)
	default:
		return s.State.String()
	}
}

// FreeChain yields the free chain from its head, in reuse order.
func (l *FreeList[T]) FreeChain() iter.Seq[int] {
	return func(yield func(int) bool) {
		for next := l.next; next < len(l.slots); next = l.slots[next].next {
			if !yield(next) {
				return
			}
		}
	}
}

// Slots returns the state of every slot. It allocates and is O(N).
func (l *FreeList[T]) Slots() []Slot[T] {
	slots := make([]Slot[T], len(l.slots))
	if l.high == 0 {
		return slots
	}
	l.markFree()
	for i := 0; i < l.high; i++ {
		if l.marks.Test(uint(i)) {
			slots[i] = Slot[T]{State: SlotFree, Next: l.slots[i].next}
		} else {
			slots[i] = Slot[T]{State: SlotValue, Value: l.slots[i].value}
		}
	}
	return slots
}

// String formats the list as its chain head, high-water mark and slots:
//
//	FreeList { next: 4, high: 5, data: [Value(3), Free(8), Value(7), Value(4), Free(1), Uninit, Uninit, Uninit] }
func (l *FreeList[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FreeList { next: %d, high: %d, data: [", l.next, l.high)
	for i, s := range l.Slots() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString("] }")
	return b.String()
}
