package services

import "strings"

// Intent is the single classified purpose of an incoming chat message.
type Intent string

const (
	IntentDistributionCenter Intent = "distribution_center"
	IntentOrderStatus        Intent = "order_status"
	IntentTopProducts        Intent = "top_products"
	IntentInventory          Intent = "inventory"
	IntentUnknown            Intent = "unknown"
)

// intentRule pairs an intent with its keyword predicate. Rules are evaluated
// in order and the first match wins, so rule order is part of the contract:
// a message containing both "distribution" and "order status" is a
// distribution-center query.
type intentRule struct {
	intent Intent
	match  func(msg string) bool
}

var intentRules = []intentRule{
	{IntentDistributionCenter, func(msg string) bool {
		return strings.Contains(msg, "distribution center") || strings.Contains(msg, "distribution")
	}},
	{IntentOrderStatus, func(msg string) bool {
		return strings.Contains(msg, "order") && strings.Contains(msg, "status")
	}},
	{IntentTopProducts, func(msg string) bool {
		return strings.Contains(msg, "top") && strings.Contains(msg, "product")
	}},
	{IntentInventory, func(msg string) bool {
		return strings.Contains(msg, "stock") || strings.Contains(msg, "available") || strings.Contains(msg, "inventory")
	}},
}

// Classify returns the intent of a message. The message must already be
// lowercased; ClassifyMessage handles that for callers holding raw input.
func Classify(msg string) Intent {
	for _, rule := range intentRules {
		if rule.match(msg) {
			return rule.intent
		}
	}
	return IntentUnknown
}

// ClassifyMessage lowercases the raw message and classifies it.
func ClassifyMessage(message string) Intent {
	return Classify(strings.ToLower(message))
}
