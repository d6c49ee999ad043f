package parser

import "testing"

func TestParseMenuRows(t *testing.T) {
	rows := [][]interface{}{
		{"category", "name", "sort"},
		{"Coffee"},
		{"", "Americano"},
		{"", "Latte", "5"},
		{},
		{"Tea", "Earl Grey"},
		{"", "Chamomile"},
	}

	menus, err := ParseMenuRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(menus) != 4 {
		t.Fatalf("expected 4 menus, got %d", len(menus))
	}

	want := []struct {
		name, category string
		sort           int
	}{
		{"Americano", "Coffee", 1},
		{"Latte", "Coffee", 5},
		{"Earl Grey", "Tea", 3},
		{"Chamomile", "Tea", 4},
	}
	for i, w := range want {
		m := menus[i]
		if m.Name != w.name || m.Category != w.category || m.SortOrder != w.sort {
			t.Errorf("menu %d: expected %+v, got %+v", i, w, m)
		}
	}
}

func TestParseMenuRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{"empty", nil},
		{"header only", [][]interface{}{{"category", "name"}}},
		{"no category", [][]interface{}{{"category", "name"}, {"", "Latte"}}},
		{"bad sort", [][]interface{}{{"category", "name"}, {"Coffee", "Latte", "x"}}},
		{"categories only", [][]interface{}{{"category", "name"}, {"Coffee"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMenuRows(tt.rows); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
