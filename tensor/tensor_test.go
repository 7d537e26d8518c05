package tensor

import (
	"reflect"
	"sync"
	"testing"
)

func TestIndexing(t *testing.T) {
	x := New([4]int{2, 3, 1, 1})
	x.Set(0, 0, 0, 0, 1)
	x.Set(0, 1, 0, 0, 2)
	x.Set(1, 2, 0, 0, 9)
	if v := x.At(0, 1, 0, 0); v != 2 {
		t.Error("got", v, "expect", 2)
	}
	if v := x.At(1, 2, 0, 0); v != 9 {
		t.Error("got", v, "expect", 9)
	}
}

func TestFromSlicePanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on size mismatch")
		}
	}()
	FromSlice([4]int{2, 2, 1, 1}, []float32{1, 2, 3})
}

func TestReshapePreservesData(t *testing.T) {
	x := FromSlice([4]int{4, 1, 1, 1}, []float32{1, 2, 3, 4})
	y := x.Reshape([4]int{2, 2, 1, 1})
	if !reflect.DeepEqual(y.Data, x.Data) {
		t.Error("got", y.Data, "expect", x.Data)
	}
	if y.At(1, 0, 0, 0) != 3 {
		t.Error("got", y.At(1, 0, 0, 0), "expect", 3)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	x := FromSlice([4]int{2, 1, 1, 1}, []float32{1, 2})
	y := x.Clone()
	y.Set(0, 0, 0, 0, 99)
	if x.At(0, 0, 0, 0) != 1 {
		t.Error("clone mutated original: got", x.At(0, 0, 0, 0))
	}
}

func TestAddAtomicConcurrent(t *testing.T) {
	x := New([4]int{1, 1, 1, 1})
	var wg sync.WaitGroup
	const n = 1000
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			x.AddAtomic4(0, 0, 0, 0, 1)
		}()
	}
	wg.Wait()
	if got := x.At(0, 0, 0, 0); got != n {
		t.Error("got", got, "expect", n)
	}
}
