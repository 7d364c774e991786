/*
Package chash provides an in-memory hash table with a fixed bucket count and
separate chaining.

Table maps string keys to values of any type. The number of buckets is chosen
when the table is created and never changes; keys that land in the same bucket
are kept in a singly linked chain.

Basic usage:

	import "github.com/theflywheel/chash"

	// Create a table with 100 buckets
	t, err := chash.New[int](chash.WithCapacity(100))
	if err != nil {
		log.Fatal(err)
	}
	defer t.Close()

	t.Insert("foo", 1)
	t.Insert("bar", 3)
	t.Insert("foo", 2)

	v, ok := t.Get("foo") // 2, true
	t.Remove("foo")
	v, ok = t.Get("foo") // 1, true

Features:

  - Fixed bucket count, set once through WithCapacity (default 100)
  - Values of any type through a type parameter; the table never owns them
  - Default Polynomial31 hash (acc*31 + byte, uint32 wraparound), or XXHash
  - Optional go-metrics instrumentation and logrus lifecycle logging
  - Synced wrapper for sharing a table between goroutines

Implementation Details:

Insert always prepends a new entry to its bucket chain without looking for an
existing entry with the same key. Get returns the first match from the chain
head, so the most recent Insert for a key wins. Remove unlinks only that first
match; an older entry for the same key becomes visible again.

Each entry holds its own copy of the key. Close walks every chain, releases
every entry, and drops the bucket slice. Using a table after Close panics with
ErrClosed.

A Table does no locking. Use Synced, or serialize access yourself, when more
than one goroutine touches a table.
*/
package chash
