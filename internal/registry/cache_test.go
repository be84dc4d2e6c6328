package registry

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestGetOrComputeCachesResult(t *testing.T) {
	c := New[reflect.Type, int]()
	calls := 0
	key := reflect.TypeOf(0)

	for i := 0; i < 3; i++ {
		v, err := GetOrCompute(c, key, key.String(), func() (int, error) {
			calls++
			return 42, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 42 {
			t.Fatalf("got %d, want 42", v)
		}
	}

	if calls != 1 {
		t.Fatalf("fn called %d times, want 1", calls)
	}
}

func TestGetOrComputeConcurrentCollapsesToOneWinner(t *testing.T) {
	c := New[reflect.Type, int]()
	key := reflect.TypeOf("")
	var calls int32
	var mu sync.Mutex

	var wg sync.WaitGroup
	results := make([]int, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := GetOrCompute(c, key, key.String(), func() (int, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return 7, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		if v != 7 {
			t.Fatalf("got %d, want 7", v)
		}
	}
	if calls == 0 {
		t.Fatal("fn never called")
	}
}

func TestGetOrComputeErrorNotCached(t *testing.T) {
	c := New[reflect.Type, int]()
	key := reflect.TypeOf(int8(0))
	boom := errors.New("boom")
	attempts := 0

	_, err := GetOrCompute(c, key, key.String(), func() (int, error) {
		attempts++
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}

	v, err := GetOrCompute(c, key, key.String(), func() (int, error) {
		attempts++
		return 5, nil
	})
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
	if attempts != 2 {
		t.Fatalf("fn called %d times, want 2", attempts)
	}
}

func TestLazySetDoesNotOverwrite(t *testing.T) {
	c := New[reflect.Type, string]()
	key := reflect.TypeOf(false)

	c.LazySet(key, "first")
	c.LazySet(key, "second")

	v, ok := c.Get(key)
	if !ok || v != "first" {
		t.Fatalf("got (%q, %v), want (\"first\", true)", v, ok)
	}
}

func TestSetOverwritesForOverride(t *testing.T) {
	c := New[reflect.Type, string]()
	key := reflect.TypeOf(float64(0))

	c.Set(key, "original")
	c.Set(key, "overridden")

	v, ok := c.Get(key)
	if !ok || v != "overridden" {
		t.Fatalf("got (%q, %v), want (\"overridden\", true)", v, ok)
	}
}
