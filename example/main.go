package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chash"
)

func main() {
	log.SetLevel(log.DebugLevel)

	t, err := chash.New[int](chash.WithCapacity(chash.DefaultCapacity))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer t.Close()

	t.Insert("foo", 1)
	t.Insert("bar", 3)
	t.Insert("foo", 2)

	for _, key := range []string{"foo", "bar", "baz"} {
		if v, found := t.Get(key); found {
			fmt.Printf("%s => %d (bucket %d)\n", key, v, t.Index(key))
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// The second "foo" shadows the first until it is removed
	t.Remove("foo")
	if v, found := t.Get("foo"); found {
		fmt.Printf("After one remove: foo => %d\n", v)
	}
	t.Remove("foo")
	if _, found := t.Get("foo"); !found {
		fmt.Println("After two removes: foo not found")
	}
	if !t.Remove("foo") {
		fmt.Println("Third remove: key not found")
	}

	for i := 0; i < 25_000; i++ {
		t.Insert(fmt.Sprintf("user:%d", i), i)
	}

	s := t.Stats()
	fmt.Printf("%s entries in %d buckets, load factor %.2f, longest chain %d\n",
		humanize.Comma(int64(s.Entries)), s.Capacity, s.LoadFactor(), s.LongestChain)

	fmt.Println("Example completed successfully")
}
