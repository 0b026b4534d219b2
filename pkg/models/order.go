package models

// Order is a row from orders.csv. Orders are loaded for completeness and
// surfaced through store counts; the chat intents join against OrderItems
// directly.
type Order struct {
	OrderID   string `json:"order_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// OrderItem is a row from order_items.csv. OrderID and ProductID are
// informal foreign keys: nothing guarantees they resolve, and lookups must
// degrade to placeholder text when they don't.
//
// The lifecycle timestamps are optional; an empty string means the milestone
// has not happened.
type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	ProductID   string `json:"product_id"`
	Quantity    string `json:"quantity"`
	Status      string `json:"status"`
	ShippedAt   string `json:"shipped_at"`
	DeliveredAt string `json:"delivered_at"`
	ReturnedAt  string `json:"returned_at"`
}

// User is a row from users.csv, loaded for completeness only.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
