package freelist

// Metrics returns a snapshot of list statistics.
//
// Unlike SizeHint, Live is an exact count; computing it walks the free
// chain, so Metrics is O(N) and not meant for hot paths. A released list
// reports zero metrics.
func (l *FreeList[T]) Metrics() Metrics {
	if l.released {
		return Metrics{}
	}
	capacity := len(l.slots)
	l.markFree()
	free := int(l.marks.Count())
	m := Metrics{
		Capacity:  capacity,
		HighWater: l.high,
		Live:      l.high - free,
		Free:      free,
		Uninit:    capacity - l.high,
	}
	if capacity > 0 {
		m.Utilization = float64(m.Live) / float64(capacity)
	}
	return m
}

// Metrics contains statistical information about a free list.
type Metrics struct {
	Capacity    int     // Fixed number of slots
	HighWater   int     // Slots ever touched since the last Clear (SizeHint)
	Live        int     // Slots holding a value
	Free        int     // Slots on the free chain
	Uninit      int     // Slots at or above the high-water mark
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}

// Metrics returns a snapshot of the inner list statistics.
func (s *SafeFreeList[T, B]) Metrics() Metrics {
	return s.inner.Metrics()
}
