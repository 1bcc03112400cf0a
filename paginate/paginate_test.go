package paginate

import "testing"

func TestPagesCeiling(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		perPage int
		pages   int
	}{
		{"exact multiple", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"fewer than one page", 3, 10, 1},
		{"empty list has zero pages", 0, 10, 0},
		{"perPage one", 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make([]int, tt.items)
			p, err := New(results, 1, tt.perPage)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Total != tt.items {
				t.Errorf("total = %d, want %d", p.Total, tt.items)
			}
			if p.Pages != tt.pages {
				t.Errorf("pages = %d, want %d", p.Pages, tt.pages)
			}
		})
	}
}

func TestZeroPerPageRejected(t *testing.T) {
	if _, err := New([]string{"a"}, 1, 0); err == nil {
		t.Fatal("expected error for perPage=0, got nil")
	}
	if _, err := New([]string{"a"}, 1, -5); err == nil {
		t.Fatal("expected error for negative perPage, got nil")
	}
}

func TestPageDefaultsToOne(t *testing.T) {
	p, err := New([]string{"a", "b"}, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Page != 1 {
		t.Errorf("page = %d, want 1", p.Page)
	}
}
