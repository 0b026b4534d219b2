// Package models contains domain types for commerce-chat.
package models

// Product is a catalog entry from products.csv. All fields are carried as
// strings exactly as they appear in the source file; empty string means the
// column was absent or blank.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Category   string `json:"category"`
	Department string `json:"department"`
	SKU        string `json:"sku"`
}

// InventoryItem is a single physical unit from inventory_items.csv. Stock for
// a product is the number of rows carrying its product_id, not a quantity
// column.
type InventoryItem struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductBrand string `json:"product_brand"`
}
