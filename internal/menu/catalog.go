package menu

import (
	"fmt"

	"dhaba-orders/internal/models"
)

// Catalog is the fixed, read-only menu. It is built once at startup and never
// mutated afterwards, so it is safe for concurrent readers.
type Catalog struct {
	items  []models.MenuItem
	byName map[string]models.MenuItem
}

// New builds a catalog from the given items. Item names must be unique.
func New(items []models.MenuItem) (*Catalog, error) {
	byName := make(map[string]models.MenuItem, len(items))
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("menu item with empty name")
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu item %q has negative price", item.Name)
		}
		if _, exists := byName[item.Name]; exists {
			return nil, fmt.Errorf("duplicate menu item %q", item.Name)
		}
		byName[item.Name] = item
	}

	return &Catalog{
		items:  append([]models.MenuItem(nil), items...),
		byName: byName,
	}, nil
}

// Default returns the counter's standard menu.
func Default() *Catalog {
	catalog, err := New([]models.MenuItem{
		{Name: "Aloo Paratha", Price: 50},
		{Name: "Paneer Paratha", Price: 80},
		{Name: "Mix Veg Sabji", Price: 120},
		{Name: "Dal Tadka", Price: 100},
		{Name: "Tandoori Roti", Price: 20},
	})
	if err != nil {
		panic(err)
	}
	return catalog
}

// Items returns the menu in its configured order.
func (c *Catalog) Items() []models.MenuItem {
	return append([]models.MenuItem(nil), c.items...)
}

// Find looks up a menu item by name.
func (c *Catalog) Find(name string) (models.MenuItem, error) {
	item, ok := c.byName[name]
	if !ok {
		return models.MenuItem{}, models.NotFoundError{Resource: "menu item", Name: name}
	}
	return item, nil
}
