package hoard_test

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/calder/hoard"
)

func ExampleCache() {
	cache := hoard.New[string, int](
		hoard.WithMaxSize[string, int](100),
		hoard.WithExpiry[string, int](5*time.Minute),
	)

	cache.Set("answer", 42)

	if v, ok := cache.Peek("answer"); ok {
		fmt.Println(v)
	}
	// Output: 42
}

func ExampleWithProducer() {
	ctx := context.Background()
	cache := hoard.New[string, string](
		hoard.WithProducer(func(_ context.Context, key string) (string, error) {
			fmt.Println("producing", key)
			return "value of " + key, nil
		}),
	)

	// first read produces and stores
	v, _ := cache.Get(ctx, "user-123")
	fmt.Println(v)

	// second read is served from the cache
	v, _ = cache.Get(ctx, "user-123")
	fmt.Println(v)

	// Output:
	// producing user-123
	// value of user-123
	// value of user-123
}

func ExampleWithBulkProducer() {
	ctx := context.Background()
	cache := hoard.New[int, string](
		hoard.WithBulkProducer(func(_ context.Context, key int) (map[int]string, error) {
			fmt.Println("bulk refresh for", key)
			out := map[int]string{key: strconv.Itoa(key * key)}
			for k := 0; k < 5; k++ {
				out[k] = strconv.Itoa(k * k)
			}
			return out, nil
		}),
	)

	v, _ := cache.Get(ctx, 3)
	fmt.Println(v)

	// 4 was part of the batch, so no second refresh happens
	v, _ = cache.Get(ctx, 4)
	fmt.Println(v)

	// Output:
	// bulk refresh for 3
	// 9
	// 16
}

func ExampleMemoize2() {
	ctx := context.Background()
	add := hoard.Memoize2(func(x, y int) (int, error) {
		fmt.Printf("computing %d+%d\n", x, y)
		return x + y, nil
	})

	v, _ := add.Call(ctx, 1, 2)
	fmt.Println(v)

	v, _ = add.Call(ctx, 1, 2) // memoized, not recomputed
	fmt.Println(v)

	add.Delete(1, 2)
	v, _ = add.Call(ctx, 1, 2)
	fmt.Println(v)

	// Output:
	// computing 1+2
	// 3
	// 3
	// computing 1+2
	// 3
}

func ExampleCache_strategies() {
	ctx := context.Background()

	// LRU keeps what was touched most recently
	lru := hoard.New[string, int](hoard.WithMaxSize[string, int](2))
	lru.Set("a", 1)
	lru.Set("b", 2)
	lru.Get(ctx, "a") // a is now most recently used
	lru.Set("c", 3)   // evicts b
	fmt.Println("LRU has b:", lru.Has("b"))

	// FIFO ignores access order
	fifo := hoard.New[string, int](
		hoard.WithMaxSize[string, int](2),
		hoard.WithStrategy[string, int](hoard.FIFO),
	)
	fifo.Set("a", 1)
	fifo.Set("b", 2)
	fifo.Get(ctx, "a")
	fifo.Set("c", 3) // evicts a
	fmt.Println("FIFO has a:", fifo.Has("a"))

	// Output:
	// LRU has b: false
	// FIFO has a: false
}

func ExampleCache_Clean() {
	cache := hoard.New[string, int](
		hoard.WithExpiry[string, int](time.Nanosecond),
	)

	cache.Set("a", 1)
	cache.Set("b", 2)
	time.Sleep(time.Millisecond)

	fmt.Println("removed:", cache.Clean())
	// Output: removed: 2
}
