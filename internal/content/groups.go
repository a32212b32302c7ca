package content

import (
	"bytes"
	"encoding/json"
	"strings"

	"visualvibe_backend/internal/models"
)

// OrderedGroups is a JSON object of named buckets whose key order is the
// insertion order, not the map iteration order. The team listing depends on
// this: departments appear in the order they first occur in the sorted rows.
type OrderedGroups[T any] struct {
	keys    []string
	buckets map[string][]T
}

// NewOrderedGroups returns a grouping pre-seeded with the given keys, each
// holding an empty bucket. Pre-seeded keys always marshal, even when empty.
func NewOrderedGroups[T any](keys ...string) *OrderedGroups[T] {
	g := &OrderedGroups[T]{
		buckets: make(map[string][]T, len(keys)),
	}
	for _, key := range keys {
		g.keys = append(g.keys, key)
		g.buckets[key] = make([]T, 0)
	}
	return g
}

// Add appends item to the bucket for key, creating the bucket on first
// sight. Relative order within a bucket follows the call order.
func (g *OrderedGroups[T]) Add(key string, item T) {
	if _, ok := g.buckets[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.buckets[key] = append(g.buckets[key], item)
}

// AddToExisting appends item only when the bucket for key was pre-seeded,
// and reports whether the item was placed.
func (g *OrderedGroups[T]) AddToExisting(key string, item T) bool {
	if _, ok := g.buckets[key]; !ok {
		return false
	}
	g.buckets[key] = append(g.buckets[key], item)
	return true
}

// Keys returns the bucket keys in insertion order.
func (g *OrderedGroups[T]) Keys() []string {
	return g.keys
}

// Bucket returns the items stored under key.
func (g *OrderedGroups[T]) Bucket(key string) []T {
	return g.buckets[key]
}

// MarshalJSON writes the buckets as a JSON object preserving key order.
func (g *OrderedGroups[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		bucketJSON, err := json.Marshal(g.buckets[key])
		if err != nil {
			return nil, err
		}
		buf.Write(bucketJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GroupTeamByCategory partitions an already-sorted member list into buckets
// keyed by category, in order of first appearance. Single pass, stable.
func GroupTeamByCategory(members []models.TeamMember) *OrderedGroups[models.TeamMember] {
	grouped := NewOrderedGroups[models.TeamMember]()
	for _, member := range members {
		grouped.Add(member.Category, member)
	}
	return grouped
}

// GroupGraphicsByType partitions graphic designs into the fixed 2D/3D
// buckets keyed by the trimmed, uppercased design_type. Items matching
// neither bucket are returned by title so the caller can log them; they are
// excluded from the grouped response, which the frontend renders as exactly
// two tabs.
func GroupGraphicsByType(items []models.GraphicDesign) (*OrderedGroups[models.GraphicDesign], []string) {
	grouped := NewOrderedGroups[models.GraphicDesign]("2D", "3D")

	var dropped []string
	for _, item := range items {
		designType := strings.ToUpper(strings.TrimSpace(item.DesignType))
		if !grouped.AddToExisting(designType, item) {
			dropped = append(dropped, item.Title)
		}
	}
	return grouped, dropped
}
