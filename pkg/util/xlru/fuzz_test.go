package xlru

import (
	"testing"
	"time"
)

func FuzzCache_Ops(f *testing.F) {
	f.Add("10.0.0.0/24", 254, uint8(0))
	f.Add("", 0, uint8(1))
	f.Add("0.0.0.0/0", -1, uint8(2))
	f.Add("255.255.255.255/32", 1, uint8(3))

	// 设计决策: 所有迭代共享一个实例，验证长期混合操作下不 panic、
	// 不破坏一致性；单实例也让语料彼此作用，比每轮新建覆盖更多状态。
	cache, err := New[string, int](Config{Size: 64, TTL: time.Minute})
	if err != nil {
		f.Fatalf("New failed: %v", err)
	}
	f.Cleanup(cache.Close)

	f.Fuzz(func(t *testing.T, key string, value int, op uint8) {
		switch op % 4 {
		case 0:
			cache.Set(key, value)
			if got, ok := cache.Get(key); !ok || got != value {
				t.Errorf("Get(%q) right after Set = %d, %v; want %d, true", key, got, ok, value)
			}
		case 1:
			cache.Get(key)
		case 2:
			cache.Delete(key)
			if _, ok := cache.Get(key); ok {
				t.Errorf("Get(%q) after Delete should miss", key)
			}
		case 3:
			if n := cache.Len(); n < 0 || n > 64 {
				t.Errorf("Len = %d, outside [0, 64]", n)
			}
		}
	})
}

func FuzzNew_Config(f *testing.F) {
	f.Add(1, int64(time.Minute))
	f.Add(0, int64(0))
	f.Add(-5, int64(-time.Hour))
	f.Add(maxEntries+1, int64(time.Second))

	f.Fuzz(func(t *testing.T, size int, ttlNanos int64) {
		cache, err := New[string, int](Config{Size: size, TTL: time.Duration(ttlNanos)})
		if err != nil {
			return
		}
		// 合法配置下基本操作不得 panic
		cache.Set("k", 1)
		cache.Get("k")
		cache.Len()
		cache.Delete("k")
		cache.Close()
	})
}
