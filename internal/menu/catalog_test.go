package menu

import (
	"errors"
	"testing"

	"dhaba-orders/internal/models"
)

func TestDefault_HasFixedMenu(t *testing.T) {
	catalog := Default()

	items := catalog.Items()
	if len(items) != 5 {
		t.Fatalf("expected 5 menu items, got %d", len(items))
	}
	if items[0].Name != "Aloo Paratha" || items[0].Price != 50 {
		t.Errorf("unexpected first item: %+v", items[0])
	}

	// Order must be stable across calls.
	again := catalog.Items()
	for i := range items {
		if items[i] != again[i] {
			t.Errorf("item order changed between calls at index %d", i)
		}
	}
}

func TestFind(t *testing.T) {
	catalog := Default()

	item, err := catalog.Find("Dal Tadka")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if item.Price != 100 {
		t.Errorf("expected price 100, got %d", item.Price)
	}

	_, err = catalog.Find("Pizza")
	if err == nil {
		t.Fatalf("expected error for unknown item")
	}
	var notFoundErr models.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestNew_RejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []models.MenuItem
	}{
		{
			name: "duplicate names",
			items: []models.MenuItem{
				{Name: "Roti", Price: 20},
				{Name: "Roti", Price: 25},
			},
		},
		{
			name:  "empty name",
			items: []models.MenuItem{{Name: "", Price: 20}},
		},
		{
			name:  "negative price",
			items: []models.MenuItem{{Name: "Roti", Price: -5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.items); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}
