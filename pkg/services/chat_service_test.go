package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/trovi-io/commerce-chat/pkg/models"
	"github.com/trovi-io/commerce-chat/pkg/store"
)

// testStore builds a small loaded store shared by the service tests.
func testStore() *store.Store {
	return &store.Store{
		Products: []models.Product{
			{ID: "1", Name: "Classic Denim Jacket", Brand: "Levi's"},
			{ID: "2", Name: "Running Shoes", Brand: "Nike"},
			{ID: "3", Name: "Wool Scarf", Brand: "Acme"},
		},
		OrderItems: []models.OrderItem{
			{OrderID: "1001", ProductID: "1", Quantity: "3", Status: "shipped", ShippedAt: "2024-01-02"},
			{OrderID: "1001", ProductID: "2", Quantity: "5", Status: "delivered", ShippedAt: "2024-01-02", DeliveredAt: "2024-01-05"},
			{OrderID: "2002", ProductID: "1", Quantity: "2", Status: "processing"},
		},
		InventoryItems: []models.InventoryItem{
			{ID: "i1", ProductID: "1", ProductName: "Classic Denim Jacket", ProductBrand: "Levi's"},
			{ID: "i2", ProductID: "1", ProductName: "Classic Denim Jacket", ProductBrand: "Levi's"},
			{ID: "i3", ProductID: "2", ProductName: "Running Shoes", ProductBrand: "Nike"},
		},
		DistributionCenters: []models.DistributionCenter{
			{ID: "DC1", Name: "Memphis TN", Latitude: "35.1174", Longitude: "-89.9711"},
			{ID: "DC2", Name: "Chicago IL", Latitude: "41.8369", Longitude: "-87.6847"},
		},
	}
}

func newTestService(s *store.Store) *ChatService {
	return NewChatService(s, zap.NewNop())
}

func TestReplyFallback(t *testing.T) {
	svc := newTestService(testStore())

	assert.Equal(t, FallbackReply, svc.Reply("hello there"))
	assert.Equal(t, FallbackReply, svc.Reply(""))
	assert.Equal(t, FallbackReply, svc.Reply("what can you do?"))
}

// Repeated identical requests against a static store must produce
// byte-identical replies.
func TestReplyIdempotent(t *testing.T) {
	svc := newTestService(testStore())

	messages := []string{
		"top products",
		"order 1001 status",
		"is the Running Shoes in stock?",
		"where is the Chicago IL distribution center",
		"gibberish",
	}
	for _, msg := range messages {
		first := svc.Reply(msg)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, svc.Reply(msg), "reply for %q changed between calls", msg)
		}
	}
}
