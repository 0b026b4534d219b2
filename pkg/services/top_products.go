package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const topProductsLimit = 5

// topProductsReply reports the best-selling products across all order items.
// This is a global query; the message content beyond the intent keywords is
// ignored.
//
// Quantities that are blank or fail to parse as base-10 integers contribute
// zero but still register the product, so a product whose every quantity is
// malformed shows up with 0 sold rather than vanishing.
func (s *ChatService) topProductsReply() string {
	totals := make(map[string]int)
	var firstSeen []string

	for _, item := range s.store.OrderItems {
		if _, seen := totals[item.ProductID]; !seen {
			totals[item.ProductID] = 0
			firstSeen = append(firstSeen, item.ProductID)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(item.Quantity))
		if err != nil {
			continue
		}
		totals[item.ProductID] += qty
	}

	type ranked struct {
		name      string
		totalSold int
	}
	rankings := make([]ranked, 0, len(firstSeen))
	for _, pid := range firstSeen {
		name, ok := s.productNameByID(pid)
		if !ok || name == "" {
			name = "Unknown"
		}
		rankings = append(rankings, ranked{name: name, totalSold: totals[pid]})
	}

	// Stable sort: ties keep first-encounter order, which makes the reply
	// deterministic for a fixed table load order.
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].totalSold > rankings[j].totalSold
	})
	if len(rankings) > topProductsLimit {
		rankings = rankings[:topProductsLimit]
	}

	lines := make([]string, 0, len(rankings))
	for _, r := range rankings {
		lines = append(lines, fmt.Sprintf("• %s: %d sold", r.name, r.totalSold))
	}
	return fmt.Sprintf("🏆 Top 5 Best-Selling Products:\n%s", strings.Join(lines, "\n"))
}
