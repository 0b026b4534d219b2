package store

import (
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/trovi-io/commerce-chat/pkg/metrics"
	"github.com/trovi-io/commerce-chat/pkg/models"
)

// Loader ingests the six CSV files into a Store. Each file is one
// independent stream; streams run concurrently and a failure in one does not
// stop the others.
type Loader struct {
	store  *Store
	logger *zap.Logger
}

// NewLoader creates a loader that fills the given store.
func NewLoader(store *Store, logger *zap.Logger) *Loader {
	return &Loader{store: store, logger: logger}
}

// LoadAll ingests every CSV file under dataDir and marks the store ready
// once all streams have finished, whether or not they succeeded. It blocks
// until then; callers that want serving to start immediately run it in a
// goroutine and gate lookups on Store.Ready.
func (l *Loader) LoadAll(dataDir string) {
	streams := []struct {
		file string
		load func([]row)
	}{
		{"products.csv", l.loadProducts},
		{"orders.csv", l.loadOrders},
		{"order_items.csv", l.loadOrderItems},
		{"inventory_items.csv", l.loadInventoryItems},
		{"users.csv", l.loadUsers},
		{"distribution_centers.csv", l.loadDistributionCenters},
	}

	var wg sync.WaitGroup
	for _, s := range streams {
		wg.Add(1)
		go func(file string, load func([]row)) {
			defer wg.Done()
			table := strings.TrimSuffix(file, ".csv")

			rows, err := readCSV(filepath.Join(dataDir, file))
			if err != nil {
				metrics.LoadFailuresTotal.WithLabelValues(table).Inc()
				l.logger.Error("Failed to load CSV file",
					zap.String("file", file),
					zap.Error(err))
				return
			}

			load(rows)
			metrics.RowsLoadedTotal.WithLabelValues(table).Add(float64(len(rows)))
			l.logger.Info("CSV file loaded",
				zap.String("file", file),
				zap.Int("rows", len(rows)))
		}(s.file, s.load)
	}

	wg.Wait()
	l.store.markReady()
	l.logger.Info("Data store ready", zap.Any("counts", l.store.Counts()))
}

func (l *Loader) loadProducts(rows []row) {
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Product{
			ID:         r.get("id"),
			Name:       r.get("name"),
			Brand:      r.get("brand"),
			Category:   r.get("category"),
			Department: r.get("department"),
			SKU:        r.get("sku"),
		})
	}
	l.store.Products = out
}

func (l *Loader) loadOrders(rows []row) {
	out := make([]models.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Order{
			OrderID:   r.get("order_id"),
			UserID:    r.get("user_id"),
			Status:    r.get("status"),
			CreatedAt: r.get("created_at"),
		})
	}
	l.store.Orders = out
}

func (l *Loader) loadOrderItems(rows []row) {
	out := make([]models.OrderItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.OrderItem{
			ID:          r.get("id"),
			OrderID:     r.get("order_id"),
			ProductID:   r.get("product_id"),
			Quantity:    r.get("quantity"),
			Status:      r.get("status"),
			ShippedAt:   r.get("shipped_at"),
			DeliveredAt: r.get("delivered_at"),
			ReturnedAt:  r.get("returned_at"),
		})
	}
	l.store.OrderItems = out
}

func (l *Loader) loadInventoryItems(rows []row) {
	out := make([]models.InventoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.InventoryItem{
			ID:           r.get("id"),
			ProductID:    r.get("product_id"),
			ProductName:  r.get("product_name"),
			ProductBrand: r.get("product_brand"),
		})
	}
	l.store.InventoryItems = out
}

func (l *Loader) loadUsers(rows []row) {
	out := make([]models.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.User{
			ID:        r.get("id"),
			FirstName: r.get("first_name"),
			LastName:  r.get("last_name"),
			Email:     r.get("email"),
		})
	}
	l.store.Users = out
}

func (l *Loader) loadDistributionCenters(rows []row) {
	out := make([]models.DistributionCenter, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.DistributionCenter{
			ID:        r.get("id"),
			Name:      r.get("name"),
			Latitude:  r.get("latitude"),
			Longitude: r.get("longitude"),
		})
	}
	l.store.DistributionCenters = out
}
