package services

import (
	"fmt"
	"regexp"
	"strings"
)

const orderIDPromptReply = "❗ Please provide a valid order ID to check status."

// digitRun matches the first contiguous run of decimal digits in a message.
var digitRun = regexp.MustCompile(`\d+`)

// orderStatusReply looks up every order item for the order id embedded in
// the message. The id is the first digit run, compared by exact string
// equality; "0042" and "42" are different orders.
func (s *ChatService) orderStatusReply(msg string) string {
	orderID := digitRun.FindString(msg)
	if orderID == "" {
		return orderIDPromptReply
	}

	var blocks []string
	for _, item := range s.store.OrderItems {
		if item.OrderID != orderID {
			continue
		}

		name, ok := s.productNameByID(item.ProductID)
		if !ok || name == "" {
			name = "Unknown Product"
		}
		status := item.Status
		if status == "" {
			status = "Unknown"
		}
		shipped := item.ShippedAt
		if shipped == "" {
			shipped = "Not shipped"
		}
		delivered := item.DeliveredAt
		if delivered == "" {
			delivered = "Not delivered"
		}
		returned := item.ReturnedAt
		if returned == "" {
			returned = "Not returned"
		}

		blocks = append(blocks, fmt.Sprintf(
			"• 🛍️ Product: %s\n  📦 Status: %s\n  🚚 Shipped At: %s\n  📬 Delivered At: %s\n  🔄 Returned At: %s",
			name, status, shipped, delivered, returned))
	}

	if len(blocks) == 0 {
		return fmt.Sprintf("❌ No order found with ID %s.", orderID)
	}

	return fmt.Sprintf("📦 Order Status for Order ID %s:\n\n%s", orderID, strings.Join(blocks, "\n\n"))
}
