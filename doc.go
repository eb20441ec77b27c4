// Package freelist implements a fixed-capacity slot allocator (free list) for Go.
//
// # Overview
//
// A FreeList stores values of a single type in a backing slice allocated
// once by New. Alloc hands out an integer key for a free slot, and Free
// gives the slot back. Freed slots are threaded into an intrusive singly
// linked list and reused last-in first-out, so no operation after New
// grows the storage or allocates. This is useful for:
//
//   - Arena-style graphs, entity tables and interners with integer handles
//   - Bounded pools of objects addressed by index instead of pointer
//   - Hot paths that must not allocate after start-up
//
// # Basic Usage
//
//	list := freelist.New[int](16)
//	defer list.Release()
//
//	key, ok := list.Alloc(8)
//	if !ok {
//		// full: the value was discarded
//	}
//	v := list.Get(key)     // 8
//	*list.GetMut(key) = 2  // update in place
//	v = list.Free(key)     // 2, the slot is reusable now
//
// # Keys Are Unchecked
//
// Keys are plain indexes and the list does not remember which of them are
// live. Free, Get and GetMut trust the caller: the key must come from
// Alloc on the same list and must not have been freed since. Freeing a key
// twice corrupts the free chain and makes later Allocs hand one slot to
// two owners. Building with
//
//	go build -tags freelist_strict
//
// makes Free, Get and GetMut verify their key with an O(N) scan and panic
// with ErrNotAllocated on misuse.
//
// # Branded Keys
//
// SafeFreeList removes the cross-list variant of that mistake at compile
// time. Its keys carry a brand type chosen by the caller, and keys of two
// lists with different brands cannot be mixed:
//
//	type users struct{}
//	type groups struct{}
//	u := freelist.NewSafeFreeList[string](8, users{})
//	g := freelist.NewSafeFreeList[string](8, groups{})
//	k, _ := u.Alloc("ada")
//	g.Get(k) // does not compile
//
// Brands cost nothing at run time, and uniqueness of the brand type is the
// caller's responsibility.
//
// # Teardown
//
// Element types implementing Dropper are dropped exactly once when the
// list discards them: on Alloc into a full list, and for every live value
// at Clear or Release. Values that contain pointers are zeroed on removal
// so the garbage collector can reclaim what they referenced. For other
// types Clear is O(1).
//
// # Thread Safety
//
// A FreeList has no internal locking. Concurrent reads through Get are
// safe; any Alloc, Free, GetMut, Clear or Release must be serialized with
// every other access by the caller.
//
// # Diagnostics
//
// String, Slots and FreeChain expose the per-slot state and the free chain,
// and Metrics reports an exact live count. All of them are O(N):
//
//	fmt.Println(list)
//	// FreeList { next: 4, high: 5, data: [Value(3), Free(8), Value(7), Value(4), Free(1), Uninit, Uninit, Uninit] }
package freelist
