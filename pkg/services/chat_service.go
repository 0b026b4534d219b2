package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/trovi-io/commerce-chat/pkg/metrics"
	"github.com/trovi-io/commerce-chat/pkg/store"
)

// FallbackReply is returned when no intent rule matches the message.
const FallbackReply = "❓ Sorry, I didn't understand that. You can ask about 'top products', 'order status', or 'product stock'."

// ChatService answers chat messages by classifying them and running the
// matching lookup against the store. The store must be fully loaded before
// Reply is called; the handler layer gates on Store.Ready.
type ChatService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewChatService creates a chat service over a loaded store.
func NewChatService(store *store.Store, logger *zap.Logger) *ChatService {
	return &ChatService{store: store, logger: logger}
}

// Reply produces the text answer for a chat message. Every branch returns a
// user-facing reply; domain misses ("no such order") are replies, not
// errors.
func (s *ChatService) Reply(message string) string {
	msg := strings.ToLower(message)
	intent := Classify(msg)
	metrics.ChatRequestsTotal.WithLabelValues(string(intent)).Inc()
	s.logger.Debug("Classified chat message",
		zap.String("intent", string(intent)),
		zap.Int("message_len", len(message)))

	switch intent {
	case IntentDistributionCenter:
		return s.distributionCenterReply(msg)
	case IntentOrderStatus:
		return s.orderStatusReply(msg)
	case IntentTopProducts:
		return s.topProductsReply()
	case IntentInventory:
		return s.inventoryReply(msg)
	default:
		return FallbackReply
	}
}

// productNameByID resolves a product_id against the Products table, first
// match wins. There is no referential integrity in the source data, so
// callers substitute placeholder text when ok is false.
func (s *ChatService) productNameByID(id string) (string, bool) {
	for _, p := range s.store.Products {
		if p.ID == id {
			return p.Name, true
		}
	}
	return "", false
}
