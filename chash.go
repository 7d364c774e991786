package chash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrClosed is returned by Close on a table that was already closed. Any
// other operation on a closed table panics with it.
var ErrClosed = errors.New("table is closed")

// entry is one node of a bucket chain. It owns its key copy and the node
// after it; the value belongs to the caller.
type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// release drops everything the entry references. The caller's value is not
// touched, only the reference to it.
func (e *entry[V]) release() {
	var zero V
	e.key = ""
	e.value = zero
	e.next = nil
}

// Table is a fixed-capacity hash table using separate chaining
type Table[V any] struct {
	buckets  []*entry[V]
	capacity uint32
	hash     HashFunc
	size     int
	log      logrus.FieldLogger
	rec      recorder
}

// New creates an empty table with every bucket empty
func New[V any](opts ...Option) (*Table[V], error) {
	o := buildOptions(opts)
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table options: %w", err)
	}

	t := &Table[V]{
		buckets:  make([]*entry[V], o.Capacity),
		capacity: uint32(o.Capacity),
		hash:     o.HashFunc,
		log:      o.Logger,
		rec:      recorder{m: o.Metrics},
	}

	t.log.WithField("capacity", o.Capacity).Debug("table created")
	t.rec.entries(0)
	return t, nil
}

// Index returns the bucket a key hashes to
func (t *Table[V]) Index(key string) int {
	return bucketIndex(t.hash(key), t.capacity)
}

// Insert adds key with value at the head of its bucket chain. Existing
// entries with the same key are kept and shadowed by the new one.
func (t *Table[V]) Insert(key string, value V) {
	t.mustBeLive()

	i := t.Index(key)
	t.buckets[i] = &entry[V]{
		key:   strings.Clone(key),
		value: value,
		next:  t.buckets[i],
	}
	t.size++

	t.rec.incr("insert")
	t.rec.incr("entry", "alloc")
	t.rec.entries(t.size)
}

// Get returns the most recently inserted value for key
func (t *Table[V]) Get(key string) (V, bool) {
	t.mustBeLive()

	for e := t.buckets[t.Index(key)]; e != nil; e = e.next {
		if e.key == key {
			t.rec.incr("get", "hit")
			return e.value, true
		}
	}

	t.rec.incr("get", "miss")
	var zero V
	return zero, false
}

// Remove unlinks the most recent entry for key and reports whether one was
// found. Older entries with the same key become visible to Get again.
func (t *Table[V]) Remove(key string) bool {
	t.mustBeLive()

	i := t.Index(key)
	var prev *entry[V]
	for cur := t.buckets[i]; cur != nil; prev, cur = cur, cur.next {
		if cur.key != key {
			continue
		}

		if prev == nil {
			t.buckets[i] = cur.next
		} else {
			prev.next = cur.next
		}
		cur.release()
		t.size--

		t.rec.incr("remove", "hit")
		t.rec.incr("entry", "release")
		t.rec.entries(t.size)
		return true
	}

	t.rec.incr("remove", "miss")
	return false
}

// Len returns the number of entries, counting shadowed duplicates
func (t *Table[V]) Len() int {
	return t.size
}

// Capacity returns the bucket count, or zero once the table is closed
func (t *Table[V]) Capacity() int {
	return len(t.buckets)
}

// Close releases every entry of every bucket in chain order and then the
// bucket slice itself. Values are left to the caller.
func (t *Table[V]) Close() error {
	if t.buckets == nil {
		return ErrClosed
	}

	released := 0
	for i, head := range t.buckets {
		for e := head; e != nil; {
			next := e.next
			e.release()
			released++
			t.rec.incr("entry", "release")
			e = next
		}
		t.buckets[i] = nil
	}
	t.buckets = nil
	t.size = 0

	t.rec.entries(0)
	t.log.WithField("released", released).Debug("table closed")
	return nil
}

func (t *Table[V]) mustBeLive() {
	if t.buckets == nil {
		panic(ErrClosed)
	}
}
