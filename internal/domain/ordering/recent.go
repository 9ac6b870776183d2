package ordering

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultRecentCapacity bounds the recently-added list
const DefaultRecentCapacity = 10

// RecentProducts is a bounded most-recent-first list of product ids,
// deduplicated by id. Recording is a best-effort side effect of adding a
// product and must never fail the primary action.
type RecentProducts struct {
	mu       sync.Mutex
	capacity int
	ids      []uuid.UUID
}

// NewRecentProducts creates a recent-products ring with the given capacity;
// capacities < 1 fall back to the default.
func NewRecentProducts(capacity int) *RecentProducts {
	if capacity < 1 {
		capacity = DefaultRecentCapacity
	}
	return &RecentProducts{capacity: capacity}
}

// Record moves the product to the front, dropping the oldest entry when full
func (r *RecentProducts) Record(productID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uuid.UUID, 0, r.capacity)
	out = append(out, productID)
	for _, id := range r.ids {
		if id == productID {
			continue
		}
		if len(out) == r.capacity {
			break
		}
		out = append(out, id)
	}
	r.ids = out
}

// IDs returns the product ids, most recent first
func (r *RecentProducts) IDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uuid.UUID, len(r.ids))
	copy(out, r.ids)
	return out
}
