package hoard

import (
	"context"
	"strconv"
	"testing"
)

func BenchmarkCache_Peek(b *testing.B) {
	cache := New[string, int](WithMaxSize[string, int](1000))

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		cache.Set(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Peek(keys[i%100])
	}
}

func BenchmarkCache_Get(b *testing.B) {
	ctx := context.Background()
	cache := New[string, int](
		WithMaxSize[string, int](1000),
		WithProducer[string, int](func(_ context.Context, key string) (int, error) {
			return len(key), nil
		}),
	)

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(ctx, keys[i%100])
	}
}

func BenchmarkCache_Set(b *testing.B) {
	cache := New[string, int]()

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Set(keys[i], i)
	}
}

func BenchmarkCache_SetWithEviction(b *testing.B) {
	cache := New[string, int](WithMaxSize[string, int](100))

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Set(keys[i], i)
	}
}

func BenchmarkCache_Parallel(b *testing.B) {
	cache := New[string, int](WithMaxSize[string, int](1000))

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		cache.Set(keys[i], i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				cache.Peek(keys[i%100])
			} else {
				cache.Set(keys[i%100], i)
			}
			i++
		}
	})
}

func BenchmarkCache_Strategies(b *testing.B) {
	strategies := []struct {
		name     string
		strategy Strategy
	}{
		{"LRU", LRU},
		{"LFU", LFU},
		{"FIFO", FIFO},
	}

	for _, tc := range strategies {
		b.Run(tc.name, func(b *testing.B) {
			cache := New[string, int](
				WithMaxSize[string, int](100),
				WithStrategy[string, int](tc.strategy),
			)

			keys := make([]string, 200)
			for i := range keys {
				keys[i] = strconv.Itoa(i)
			}

			for i := 0; i < 100; i++ {
				cache.Set(keys[i], i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := keys[i%200]
				if _, ok := cache.Peek(key); !ok {
					cache.Set(key, i)
				}
			}
		})
	}
}

func BenchmarkMemoize2(b *testing.B) {
	ctx := context.Background()
	add := Memoize2(func(x, y int) (int, error) {
		return x + y, nil
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		add.Call(ctx, i%100, i%10)
	}
}
