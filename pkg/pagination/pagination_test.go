package pagination

import (
	"testing"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateLastPartialPage(t *testing.T) {
	p := Paginate(intRange(25), 10, 3)
	if len(p.Items) != 5 {
		t.Fatalf("expected 5 items on the last page, got %d", len(p.Items))
	}
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", p.TotalPages)
	}
	if p.Items[0] != 20 || p.Items[4] != 24 {
		t.Fatalf("expected items 20..24, got %v", p.Items)
	}
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	items := intRange(37)
	p := Paginate(items, 10, 1)
	for page := 1; page <= p.TotalPages; page++ {
		got := Paginate(items, 10, page)
		if len(got.Items) > 10 {
			t.Fatalf("page %d holds %d items, exceeding the page size", page, len(got.Items))
		}
	}
}

func TestPaginateReconstructsOriginalList(t *testing.T) {
	items := intRange(37)
	first := Paginate(items, 10, 1)

	var joined []int
	for page := 1; page <= first.TotalPages; page++ {
		joined = append(joined, Paginate(items, 10, page).Items...)
	}

	if len(joined) != len(items) {
		t.Fatalf("expected %d items across all pages, got %d", len(items), len(joined))
	}
	for i := range items {
		if joined[i] != items[i] {
			t.Fatalf("page concatenation diverges at index %d: %d vs %d", i, joined[i], items[i])
		}
	}
}

func TestPaginateEmptyList(t *testing.T) {
	p := Paginate([]int{}, 10, 1)
	if len(p.Items) != 0 {
		t.Fatalf("expected no items, got %v", p.Items)
	}
	if p.TotalPages != 0 {
		t.Fatalf("expected 0 total pages for an empty list, got %d", p.TotalPages)
	}
}

func TestPaginateOutOfRangePages(t *testing.T) {
	items := intRange(10)
	cases := []struct {
		name string
		page int
	}{
		{name: "beyond the end", page: 4},
		{name: "zero page", page: 0},
		{name: "negative page", page: -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(items, 10, tc.page)
			if len(p.Items) != 0 {
				t.Fatalf("expected empty page, got %v", p.Items)
			}
			if p.TotalPages != 1 {
				t.Fatalf("expected 1 total page, got %d", p.TotalPages)
			}
		})
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	p := Paginate(intRange(30), 10, 3)
	if len(p.Items) != 10 {
		t.Fatalf("expected a full final page, got %d items", len(p.Items))
	}
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", p.TotalPages)
	}
}

func TestPaginateCopiesThePage(t *testing.T) {
	items := intRange(10)
	p := Paginate(items, 5, 1)
	p.Items[0] = 99
	if items[0] != 0 {
		t.Fatalf("mutating the page leaked into the source list")
	}
}

func TestNormalizePageSize(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultPageSize},
		{in: -3, want: DefaultPageSize},
		{in: 25, want: 25},
		{in: MaxPageSize, want: MaxPageSize},
		{in: MaxPageSize + 1, want: MaxPageSize},
	}
	for _, tc := range cases {
		if got := NormalizePageSize(tc.in); got != tc.want {
			t.Fatalf("NormalizePageSize(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
