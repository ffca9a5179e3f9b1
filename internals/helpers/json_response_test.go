package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"primeira página cheia", 100, 1, 25, 4, true, false},
		{"última página", 100, 4, 25, 4, false, true},
		{"página do meio", 100, 2, 25, 4, true, true},
		{"resto vira página extra", 101, 1, 25, 5, true, false},
		{"sem registros", 0, 1, 25, 1, false, false},
		{"per_page inválido usa default", 40, 1, 0, 2, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext || p.HasPrev != tt.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tt.wantNext, tt.wantPrev)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}

func TestLenOf(t *testing.T) {
	if got := lenOf([]int{1, 2, 3}); got != 3 {
		t.Errorf("lenOf(slice) = %d, want 3", got)
	}
	if got := lenOf(nil); got != 0 {
		t.Errorf("lenOf(nil) = %d, want 0", got)
	}
	if got := lenOf(map[string]int{"a": 1}); got != 1 {
		t.Errorf("lenOf(map) = %d, want 1", got)
	}
	if got := lenOf(42); got != 0 {
		t.Errorf("lenOf(int) = %d, want 0", got)
	}
}
