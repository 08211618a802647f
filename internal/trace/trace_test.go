package trace

import (
	"errors"
	"testing"
)

func TestCursorWalk(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"})

	if c.Pos() != -1 {
		t.Fatalf("expected position -1, got %d", c.Pos())
	}
	if _, ok := c.Current(); ok {
		t.Error("expected no current frame before Next")
	}

	var got []string
	for c.Next() {
		f, _ := c.Current()
		got = append(got, f)
	}
	if len(got) != 3 || got[2] != "c" {
		t.Errorf("expected [a b c], got %v", got)
	}
	if !c.Done() {
		t.Error("expected cursor done")
	}
	if c.Next() {
		t.Error("expected Next past the end to fail")
	}
	if f, _ := c.Current(); f != "c" {
		t.Errorf("expected cursor to stay on last frame, got %s", f)
	}
}

func TestCursorPrevSeekReset(t *testing.T) {
	c := NewCursor([]int{10, 20, 30})

	if c.Prev() {
		t.Error("expected Prev before start to fail")
	}
	if err := c.Seek(2); err != nil {
		t.Fatalf("seek failed: %v", err)
	}
	if !c.Prev() {
		t.Fatal("expected Prev to succeed")
	}
	if f, _ := c.Current(); f != 20 {
		t.Errorf("expected 20, got %d", f)
	}

	if err := c.Seek(3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if err := c.Seek(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}

	c.Reset()
	if c.Pos() != -1 {
		t.Errorf("expected reset to -1, got %d", c.Pos())
	}
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor[int](nil)

	if c.Next() {
		t.Error("expected Next on empty cursor to fail")
	}
	if !c.Done() {
		t.Error("expected empty cursor to be done")
	}
}

func TestVerify(t *testing.T) {
	input := []int{2, 1}
	good := Trace[int]{
		{Kind: KindCompare, Array: []int{2, 1}, Comparing: []int{0, 1}, Swapping: []int{}},
		{Kind: KindSwap, Array: []int{1, 2}, Comparing: []int{}, Swapping: []int{0, 1}},
	}
	if err := Verify(input, good); err != nil {
		t.Errorf("expected valid trace, got %v", err)
	}

	tests := []struct {
		name string
		tr   Trace[int]
		step int
	}{
		{"write outside set", Trace[int]{
			{Kind: KindSwap, Array: []int{1, 2}, Comparing: []int{}, Swapping: []int{0}},
		}, 0},
		{"length change", Trace[int]{
			{Kind: KindCompare, Array: []int{2, 1}, Comparing: []int{}, Swapping: []int{}},
			{Kind: KindWrite, Array: []int{2}, Comparing: []int{}, Swapping: []int{0}},
		}, 1},
		{"position out of range", Trace[int]{
			{Kind: KindCompare, Array: []int{2, 1}, Comparing: []int{0, 5}, Swapping: []int{}},
		}, 0},
	}

	for _, tt := range tests {
		err := Verify(input, tt.tr)
		var se *StepError
		if !errors.As(err, &se) {
			t.Errorf("%s: expected StepError, got %v", tt.name, err)
			continue
		}
		if se.Step != tt.step {
			t.Errorf("%s: expected failure at step %d, got %d", tt.name, tt.step, se.Step)
		}
		if !errors.Is(err, ErrInconsistent) {
			t.Errorf("%s: expected ErrInconsistent, got %v", tt.name, err)
		}
	}

	lost := Trace[int]{
		{Kind: KindWrite, Array: []int{1, 1}, Comparing: []int{}, Swapping: []int{0}},
	}
	if err := Verify(input, lost); !errors.Is(err, ErrInconsistent) {
		t.Errorf("expected multiset failure, got %v", err)
	}
}

func TestRecorderStops(t *testing.T) {
	var got int
	r := NewRecorder(func(Step[int]) bool {
		got++
		return got < 2
	})

	for i := 0; i < 5; i++ {
		r.Emit(KindCompare, []int{1}, nil, nil)
	}
	if got != 2 {
		t.Errorf("expected sink to see 2 steps, got %d", got)
	}
	if !r.Stopped() {
		t.Error("expected recorder to be stopped")
	}
}

func TestEmitCopies(t *testing.T) {
	arr := []int{1, 2, 3}
	tr := Collect(func(r *Recorder[int]) {
		r.Emit(KindCompare, arr, []int{0}, nil)
		arr[0] = 99
		r.Emit(KindWrite, arr, nil, []int{0})
	})

	if tr[0].Array[0] != 1 {
		t.Errorf("expected snapshot to keep 1, got %d", tr[0].Array[0])
	}
	if tr[0].Swapping == nil || tr[1].Comparing == nil {
		t.Error("expected empty position sets to be non-nil")
	}
	if tr[0].Index != NotFound {
		t.Errorf("expected sort steps to carry NotFound, got %d", tr[0].Index)
	}
}

func TestTraceFinal(t *testing.T) {
	var empty Trace[int]
	if empty.Final() != nil {
		t.Error("expected nil final for empty trace")
	}
	tr := Trace[int]{{Array: []int{3, 4}}}
	final := tr.Final()
	final[0] = 0
	if tr[0].Array[0] != 3 {
		t.Error("Final must return a copy")
	}
}
