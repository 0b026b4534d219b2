package services

import (
	"fmt"
	"strings"
)

const centerNotFoundReply = "❌ I couldn't find a matching distribution center."

// distributionCenterReply finds the first center whose name or id appears in
// the message. Name and id matching is case-insensitive (the message is
// already lowercased). Records with blank name and id are skipped rather
// than matching everything via the empty substring.
func (s *ChatService) distributionCenterReply(msg string) string {
	for _, dc := range s.store.DistributionCenters {
		if dc.Name != "" && strings.Contains(msg, strings.ToLower(dc.Name)) {
			return formatCenter(dc.Name, dc.ID, dc.Latitude, dc.Longitude)
		}
		if dc.ID != "" && strings.Contains(msg, strings.ToLower(dc.ID)) {
			return formatCenter(dc.Name, dc.ID, dc.Latitude, dc.Longitude)
		}
	}
	return centerNotFoundReply
}

// formatCenter renders coordinates verbatim as strings; the service never
// parses them as numbers.
func formatCenter(name, id, lat, lon string) string {
	return fmt.Sprintf("🏢 Distribution Center Details:\n\n📍 Name: %s\n🆔 ID: %s\n🌐 Location: (%s, %s)", name, id, lat, lon)
}
