// Package cart implements the in-memory cart aggregator: an ordered list of
// line items plus a running total kept consistent across mutations.
package cart

import "time"

// Line is one product entry in the cart with its own quantity.
type Line struct {
	// ID is the product identifier, unique within a cart.
	ID string `json:"id"`

	// Title and Brand are display fields carried along for checkout.
	Title string `json:"title"`
	Brand string `json:"brand"`

	// Price is the unit price at the moment the line was added.
	Price float64 `json:"price"`

	// Quantity is the number of units, expected >= 1.
	Quantity int `json:"quantity"`
}

// State holds the cart contents for the current process. Items keep
// insertion order and are unique by Line.ID. Total always equals the sum of
// Price*Quantity over Items after every mutation.
//
// State is not safe for concurrent use; the hosting UI applies one mutation
// at a time.
type State struct {
	Items     []Line    `json:"items"`
	Total     float64   `json:"total"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User references the owning session (empty when nobody is signed in).
	User string `json:"user"`
}

// nowFn is a test seam for time.Now.
var nowFn = time.Now

// New returns an empty cart owned by user (may be empty).
func New(user string) *State {
	return &State{Items: []Line{}, User: user, UpdatedAt: nowFn()}
}

// AddItem merges candidate into the cart. If a line with the same ID already
// exists its quantity is incremented by candidate.Quantity and every other
// field of the existing line is retained; otherwise candidate is appended,
// preserving insertion order.
//
// No validation happens here: negative prices or zero quantities produce
// arithmetically consistent totals and are the caller's problem.
func (s *State) AddItem(candidate Line) {
	merged := false
	for i := range s.Items {
		if s.Items[i].ID == candidate.ID {
			s.Items[i].Quantity += candidate.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.Items = append(s.Items, candidate)
	}
	s.recompute()
}

// RemoveItem deletes the line matching id. Removing an absent id is a no-op,
// not an error.
func (s *State) RemoveItem(id string) {
	kept := s.Items[:0]
	for _, item := range s.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.Items = kept
	s.recompute()
}

// Clear empties the cart and resets the total. UpdatedAt is refreshed like
// on every other mutation.
func (s *State) Clear() {
	s.Items = []Line{}
	s.recompute()
}

// Len reports the number of distinct lines.
func (s *State) Len() int {
	return len(s.Items)
}

// recompute rescans all lines. Linear on every mutation; carts are small and
// a rescan cannot drift the way incremental arithmetic can.
func (s *State) recompute() {
	total := 0.0
	for _, item := range s.Items {
		total += item.Price * float64(item.Quantity)
	}
	s.Total = total
	s.UpdatedAt = nowFn()
}
