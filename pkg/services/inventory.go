package services

import (
	"fmt"
	"strings"
)

const inventoryNotFoundReply = "❌ Sorry, I couldn't find that product in the inventory."

// inventoryReply reports stock counts for inventory items mentioned in the
// message. Product name and brand match case-insensitively; product_id
// matches as a raw case-sensitive substring. The asymmetry is part of the
// lookup contract. Stock is the number of matching rows per product_id, not
// a quantity column.
func (s *ChatService) inventoryReply(msg string) string {
	type group struct {
		name  string
		brand string
		count int
	}
	grouped := make(map[string]*group)
	var order []string

	for _, item := range s.store.InventoryItems {
		if !inventoryItemMatches(msg, item.ProductName, item.ProductBrand, item.ProductID) {
			continue
		}
		g, ok := grouped[item.ProductID]
		if !ok {
			// First matching row wins the display name and brand; later
			// rows only bump the count.
			g = &group{name: item.ProductName, brand: item.ProductBrand}
			grouped[item.ProductID] = g
			order = append(order, item.ProductID)
		}
		g.count++
	}

	if len(order) == 0 {
		return inventoryNotFoundReply
	}

	blocks := make([]string, 0, len(order))
	for i, pid := range order {
		g := grouped[pid]
		brand := strings.TrimSpace(g.brand)
		if brand == "" {
			brand = "Unknown"
		}
		blocks = append(blocks, fmt.Sprintf(
			"%d. 🛍️ Product: %s\n   🏷️ Brand: %s\n   📦 Available: %d",
			i+1, g.name, brand, g.count))
	}
	return fmt.Sprintf("📦 Matching Inventory Items:\n\n%s", strings.Join(blocks, "\n\n"))
}

// inventoryItemMatches applies the three substring checks. Blank fields
// never match; the empty string is a substring of everything.
func inventoryItemMatches(msg, name, brand, productID string) bool {
	if name != "" && strings.Contains(msg, strings.ToLower(name)) {
		return true
	}
	if brand != "" && strings.Contains(msg, strings.ToLower(brand)) {
		return true
	}
	// Intentionally case-sensitive, unlike name and brand.
	if productID != "" && strings.Contains(msg, productID) {
		return true
	}
	return false
}
