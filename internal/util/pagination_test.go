package util

import (
	"math"
	"strconv"
	"testing"
)

func TestParsePage(t *testing.T) {
	testCases := []struct {
		raw  string
		want int
	}{
		{"1", 1},
		{"7", 7},
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"1.5", 1},
	}

	for _, tc := range testCases {
		if got := ParsePage(tc.raw); got != tc.want {
			t.Errorf("ParsePage(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestPaginate(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5, 6, 7}

	got := Paginate(seq, 1, 3)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("page 1 = %v, want [1 2 3]", got)
	}

	got = Paginate(seq, 2, 3)
	if len(got) != 3 || got[0] != 4 {
		t.Errorf("page 2 = %v, want [4 5 6]", got)
	}

	// last page is partial and contains the last element
	got = Paginate(seq, 3, 3)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("page 3 = %v, want [7]", got)
	}

	// one past the last page is empty, not an error
	got = Paginate(seq, 4, 3)
	if len(got) != 0 {
		t.Errorf("page 4 = %v, want empty", got)
	}

	// far out of range
	got = Paginate(seq, 100, 3)
	if len(got) != 0 {
		t.Errorf("page 100 = %v, want empty", got)
	}

	// invalid page coerces to 1
	got = Paginate(seq, 0, 3)
	if len(got) != 3 || got[0] != 1 {
		t.Errorf("page 0 = %v, want [1 2 3]", got)
	}
}

func TestPaginate_Empty(t *testing.T) {
	got := Paginate([]int{}, 1, 5)
	if len(got) != 0 {
		t.Errorf("empty seq page 1 = %v, want empty", got)
	}
}

func TestPaginate_HugePage(t *testing.T) {
	// (page-1)*size wraps negative for these; they must still come back
	// empty instead of panicking on the slice bounds
	seq := []int{1, 2, 3}
	for _, page := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt / 2} {
		got := Paginate(seq, page, 10)
		if len(got) != 0 {
			t.Errorf("page %d = %v, want empty", page, got)
		}
	}

	if HasNext(3, math.MaxInt, 10) {
		t.Error("HasNext(3, MaxInt, 10) = true, want false")
	}

	items, meta := PageOf(seq, math.MaxInt, 10)
	if len(items) != 0 || meta.HasNext || !meta.HasPrev {
		t.Errorf("PageOf MaxInt: items = %v, meta = %+v", items, meta)
	}
}

func TestParsePage_HugeValue(t *testing.T) {
	huge := strconv.Itoa(math.MaxInt)
	if got := ParsePage(huge); got != math.MaxInt {
		t.Errorf("ParsePage(%s) = %d", huge, got)
	}
	// past the int range falls back to 1
	if got := ParsePage(huge + "0"); got != 1 {
		t.Errorf("ParsePage(%s0) = %d, want 1", huge, got)
	}
}

func TestHasNext(t *testing.T) {
	testCases := []struct {
		total, page, size int
		want              bool
	}{
		{7, 1, 3, true},
		{7, 2, 3, true},
		{7, 3, 3, false},
		{6, 2, 3, false},
		{0, 1, 3, false},
	}

	for _, tc := range testCases {
		if got := HasNext(tc.total, tc.page, tc.size); got != tc.want {
			t.Errorf("HasNext(%d, %d, %d) = %v, want %v", tc.total, tc.page, tc.size, got, tc.want)
		}
	}
}

func TestHasPrev(t *testing.T) {
	if HasPrev(1) {
		t.Error("page 1 has no predecessor")
	}
	if !HasPrev(2) {
		t.Error("page 2 has a predecessor")
	}
}

func TestPageOf(t *testing.T) {
	seq := []string{"a", "b", "c", "d", "e"}

	items, meta := PageOf(seq, 2, 2)
	if len(items) != 2 || items[0] != "c" {
		t.Errorf("items = %v, want [c d]", items)
	}
	if meta.Number != 2 || meta.Total != 5 || !meta.HasNext || !meta.HasPrev {
		t.Errorf("meta = %+v", meta)
	}

	items, meta = PageOf(seq, 3, 2)
	if len(items) != 1 || items[0] != "e" {
		t.Errorf("items = %v, want [e]", items)
	}
	if meta.HasNext {
		t.Error("last page should not have next")
	}
}
