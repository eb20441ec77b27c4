package freelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNoAllocationsAfterNew checks that no operation allocates once the
// list has been constructed.
func TestNoAllocationsAfterNew(t *testing.T) {
	drops := 0
	x := 1

	ints := New[int](4)
	full := New[int](1)
	full.Alloc(1)
	ptrs := New[*int](4)
	droppers := New[dropCounted](4)
	fullDroppers := New[dropCounted](1)
	fullDroppers.Alloc(dropCounted{&drops})

	type brand struct{}
	safe := NewSafeFreeList[int](4, brand{})

	tests := []struct {
		name string
		fn   func()
	}{
		{"Alloc/fresh", func() {
			ints.Clear()
			ints.Alloc(1)
		}},
		{"Alloc/reuse+Free", func() {
			key, _ := ints.Alloc(2)
			ints.Free(key)
		}},
		{"Alloc/full", func() {
			full.Alloc(2)
		}},
		{"Alloc/full Dropper", func() {
			fullDroppers.Alloc(dropCounted{&drops})
		}},
		{"Get+GetMut", func() {
			*ints.GetMut(0) = ints.Get(0) + 1
		}},
		{"Clear/pointer-free", func() {
			ints.Alloc(1)
			ints.Alloc(2)
			ints.Clear()
		}},
		{"Clear/pointers", func() {
			ptrs.Alloc(&x)
			key, _ := ptrs.Alloc(&x)
			ptrs.Free(key)
			ptrs.Clear()
		}},
		{"Clear/Dropper", func() {
			droppers.Alloc(dropCounted{&drops})
			key, _ := droppers.Alloc(dropCounted{&drops})
			droppers.Free(key)
			droppers.Clear()
		}},
		{"Metrics", func() {
			_ = droppers.Metrics()
		}},
		{"SafeFreeList", func() {
			key, ok := safe.Alloc(3)
			if ok {
				*safe.GetMut(key) = safe.Get(key) + 1
				safe.Free(key)
			}
			_ = safe.IsFull()
			_ = safe.SizeHint()
			safe.Clear()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, testing.AllocsPerRun(100, tt.fn))
		})
	}

	require.Positive(t, drops, "the Dropper cases must actually drop")
}
