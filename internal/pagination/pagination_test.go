package pagination

import (
	"math"
	"testing"
)

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		req        PageRequest
		want       []int
		totalPages int
	}{
		{"defaults", PageRequest{}, []int{1, 2, 3, 4, 5}, 1},
		{"first_page", PageRequest{Page: 1, PageSize: 2}, []int{1, 2}, 3},
		{"last_partial_page", PageRequest{Page: 3, PageSize: 2}, []int{5}, 3},
		{"past_end", PageRequest{Page: 4, PageSize: 2}, []int{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Slice(items, tt.req)

			if len(page.Data) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, page.Data)
			}
			for i := range tt.want {
				if page.Data[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, page.Data)
					break
				}
			}
			if page.TotalItems != 5 {
				t.Errorf("expected 5 total items, got %d", page.TotalItems)
			}
			if page.TotalPages != tt.totalPages {
				t.Errorf("expected %d pages, got %d", tt.totalPages, page.TotalPages)
			}
		})
	}
}

func TestSlice_Empty(t *testing.T) {
	page := Slice[string](nil, PageRequest{})
	if page.Data == nil {
		t.Error("expected empty, non-nil data")
	}
	if page.Page != 1 || page.PageSize != 20 || page.TotalPages != 0 {
		t.Errorf("unexpected metadata %+v", page)
	}
}

func TestSlice_OutOfRangePages(t *testing.T) {
	items := []int{1, 2, 3}

	tests := []struct {
		name string
		req  PageRequest
		page int
	}{
		{"offset_overflows", PageRequest{Page: math.MaxInt64/20 + 2, PageSize: 20}, math.MaxInt64/20 + 2},
		{"max_page", PageRequest{Page: math.MaxInt, PageSize: 100}, math.MaxInt},
		{"negative_page", PageRequest{Page: -4, PageSize: 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Slice(items, tt.req)

			if tt.page == 1 {
				if len(page.Data) != 2 {
					t.Errorf("expected first page, got %v", page.Data)
				}
			} else if len(page.Data) != 0 {
				t.Errorf("expected empty page, got %v", page.Data)
			}
			if page.Page != tt.page {
				t.Errorf("expected page %d, got %d", tt.page, page.Page)
			}
			if page.TotalItems != 3 {
				t.Errorf("expected 3 total items, got %d", page.TotalItems)
			}
		})
	}
}
