package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"empty set still one page", 0, 1, 20, 1, false, false},
		{"exact fit", 40, 1, 20, 2, true, false},
		{"partial last page", 41, 3, 20, 3, false, true},
		{"middle page", 100, 2, 20, 5, true, true},
		{"zero per page falls back", 100, 1, 0, 5, true, false},
		{"zero page falls back", 100, 0, 20, 5, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPagination(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.HasNext != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.wantNext)
			}
			if p.HasPrev != tc.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.wantPrev)
			}
		})
	}
}
