package freelist

import (
	"testing"
)

// BenchmarkRealisticUsage tests scenarios where a free list should excel
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Entity churn, half the live set replaced every round
	type entity struct {
		ID  int64
		Pos [3]float64
		HP  int32
	}

	b.Run("EntityChurn/FreeList", func(b *testing.B) {
		l := New[entity](1024)
		keys := make([]int, 0, 1024)
		for i := 0; i < 1024; i++ {
			key, _ := l.Alloc(entity{ID: int64(i)})
			keys = append(keys, key)
		}
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < len(keys); j += 2 {
				l.Free(keys[j])
			}
			for j := 0; j < len(keys); j += 2 {
				keys[j], _ = l.Alloc(entity{ID: int64(i), HP: 100})
			}
		}
	})

	b.Run("EntityChurn/Map", func(b *testing.B) {
		m := make(map[int]*entity, 1024)
		for i := 0; i < 1024; i++ {
			m[i] = &entity{ID: int64(i)}
		}
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 1024; j += 2 {
				delete(m, j)
			}
			for j := 0; j < 1024; j += 2 {
				m[j] = &entity{ID: int64(i), HP: 100}
			}
		}
	})

	// Test 2: Graph nodes addressed by index, rebuilt every round
	type node struct {
		Value int64
		Edges [4]int32
	}

	b.Run("GraphRebuild/FreeList", func(b *testing.B) {
		l := New[node](4096)
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			prev := -1
			for j := 0; j < 4096; j++ {
				key, _ := l.Alloc(node{Value: int64(j)})
				if prev >= 0 {
					l.GetMut(prev).Edges[0] = int32(key)
				}
				prev = key
			}
			l.Clear() // O(1): node holds no pointers
		}
	})

	b.Run("GraphRebuild/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var nodes []*node
			for j := 0; j < 4096; j++ {
				n := &node{Value: int64(j)}
				if len(nodes) > 0 {
					nodes[len(nodes)-1].Edges[0] = int32(j)
				}
				nodes = append(nodes, n)
			}
		}
	})
}

func BenchmarkClear(b *testing.B) {
	b.Run("PointerFree", func(b *testing.B) {
		l := New[int64](4096)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 4096; j++ {
				l.Alloc(int64(j))
			}
			l.Clear()
		}
	})

	b.Run("Dropper", func(b *testing.B) {
		drops := 0
		l := New[dropCounted](4096)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 4096; j++ {
				l.Alloc(dropCounted{&drops})
			}
			for j := 0; j < 4096; j += 4 {
				l.Free(j)
			}
			l.Clear()
		}
	})
}

func BenchmarkIsFree(b *testing.B) {
	l := New[int](1024)
	for i := 0; i < 1024; i++ {
		l.Alloc(i)
	}
	for i := 0; i < 1024; i += 2 {
		l.Free(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.IsFree(i % 1024)
	}
}
