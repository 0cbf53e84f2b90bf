package order

import (
	"fmt"
	"strings"
)

// NoItemsSummary is what Summarize returns for an empty line list.
const NoItemsSummary = "No items"

// Summarize renders lines as "Name xQ" joined by ", ". Items whose id is not
// in names, for example because they were removed from the menu after the
// order was placed, are shown as "Item N".
func Summarize(lines []Line, names map[int64]string) string {
	if len(lines) == 0 {
		return NoItemsSummary
	}

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d", ItemName(line.ItemID(), names), line.Quantity()))
	}

	return strings.Join(parts, ", ")
}

// ItemName resolves an item id against names, falling back to "Item N".
func ItemName(itemID int64, names map[int64]string) string {
	if name, ok := names[itemID]; ok {
		return name
	}
	return fmt.Sprintf("Item %d", itemID)
}
