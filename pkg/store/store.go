// Package store holds the in-memory e-commerce tables the chat service
// queries. Tables are filled exactly once at startup by Loader and are
// read-only afterwards, so request handling needs no locking; the only
// synchronized state is the readiness flag.
package store

import (
	"sync/atomic"

	"github.com/trovi-io/commerce-chat/pkg/models"
)

// Store is the immutable-after-load table set. Construct with New, fill via
// Loader, then share a read-only reference with the request layer.
type Store struct {
	Products            []models.Product
	Orders              []models.Order
	OrderItems          []models.OrderItem
	InventoryItems      []models.InventoryItem
	Users               []models.User
	DistributionCenters []models.DistributionCenter

	ready atomic.Bool
}

// New creates an empty store. It is not ready until a Loader finishes.
func New() *Store {
	return &Store{}
}

// Ready reports whether all ingestion streams have completed. Requests
// arriving earlier would observe partially-empty tables, so the handler
// layer answers them with a warming-up reply instead of a lookup.
func (s *Store) Ready() bool {
	return s.ready.Load()
}

// markReady is called by Loader after every stream has finished.
func (s *Store) markReady() {
	s.ready.Store(true)
}

// Counts returns per-table row counts, keyed by source file stem. Before
// the store is ready it reports zeros rather than racing the loader
// goroutines; the slice headers are only safe to read once markReady has
// published them.
func (s *Store) Counts() map[string]int {
	if !s.ready.Load() {
		return map[string]int{
			"products":             0,
			"orders":               0,
			"order_items":          0,
			"inventory_items":      0,
			"users":                0,
			"distribution_centers": 0,
		}
	}
	return map[string]int{
		"products":             len(s.Products),
		"orders":               len(s.Orders),
		"order_items":          len(s.OrderItems),
		"inventory_items":      len(s.InventoryItems),
		"users":                len(s.Users),
		"distribution_centers": len(s.DistributionCenters),
	}
}
