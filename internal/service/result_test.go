package service

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name         string
		page, size   int
		total        int64
		wantPages    int64
	}{
		{"partial last page", 2, 5, 12, 3},
		{"exact fit", 1, 10, 30, 3},
		{"empty", 1, 10, 0, 0},
		{"single record", 1, 15, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.size, tc.total)
			if p.CurrentPage != tc.page {
				t.Errorf("CurrentPage = %d, want %d", p.CurrentPage, tc.page)
			}
			if p.PageSize != tc.size {
				t.Errorf("PageSize = %d, want %d", p.PageSize, tc.size)
			}
			if p.TotalRecords != tc.total {
				t.Errorf("TotalRecords = %d, want %d", p.TotalRecords, tc.total)
			}
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
		})
	}
}

func TestFailNormalizesZeroCode(t *testing.T) {
	res := Fail(0, "boom")
	if res.ErrorCode == 0 {
		t.Fatal("Fail must never produce a zero error code")
	}
}
