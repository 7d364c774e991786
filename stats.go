package chash

// Stats describes how entries are spread over the buckets of a table.
type Stats struct {
	Capacity     int
	Entries      int
	UsedBuckets  int
	LongestChain int
}

// LoadFactor is the average chain length over all buckets.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.Capacity)
}

// Stats walks every chain. It is O(capacity + entries).
func (t *Table[V]) Stats() Stats {
	s := Stats{Capacity: len(t.buckets), Entries: t.size}
	for _, head := range t.buckets {
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		if n > 0 {
			s.UsedBuckets++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	return s
}
