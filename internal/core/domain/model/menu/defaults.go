package menu

// DefaultItems returns the menu the store is seeded with on first run.
func DefaultItems() []Item {
	names := []string{
		"Black (Hot)",
		"Black (Cold)",
		"White (Hot)",
		"White (Cold)",
		"Mocha (Hot)",
		"Mocha (Cold)",
		"Hot Chocolate",
		"Cold Chocolate",
		"Espresso Tonic",
		"Strawberry Latte",
		"Vanilla Latte",
		"Chocolate Cookies",
		"Strawberry Cookies",
	}

	items := make([]Item, 0, len(names))
	for i, name := range names {
		item, err := NewItem(int64(i+1), name)
		if err != nil {
			panic(err) // static data
		}
		items = append(items, item)
	}
	return items
}
