package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{1, 10, 0, 10},
		{3, 25, 50, 25},
		{0, 10, 0, 10},
		{2, 0, 10, 10},
		{1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		offset, limit := CalculateOffsetLimit(tt.page, tt.size)
		if offset != tt.wantOffset || limit != tt.wantLimit {
			t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
		}
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	if info.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", info.TotalPages)
	}
	if info.CurrentPage != 2 || info.PageSize != 10 || info.TotalItems != 25 {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestNewPaginationInfoEmpty(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("expected 1 total page for empty set, got %d", info.TotalPages)
	}
	if info.TotalItems != 0 {
		t.Errorf("expected 0 total items, got %d", info.TotalItems)
	}
}

func TestNewPaginationInfoClampsPage(t *testing.T) {
	info := NewPaginationInfo(5, 9, 10)
	if info.CurrentPage != 1 {
		t.Errorf("expected current page clamped to 1, got %d", info.CurrentPage)
	}
}
