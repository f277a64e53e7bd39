// Package models defines the data shapes exchanged with the remote
// storefront backend.
package models

import "github.com/dmarquez/tiendita/internal/cart"

// Product is a catalog entry as served by the products node.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

// Order is what checkout submits and what the orders node returns.
type Order struct {
	// ID is a client-generated reference; the backend additionally assigns
	// its own key on POST.
	ID        string      `json:"id,omitempty"`
	Items     []cart.Line `json:"items"`
	User      string      `json:"user"`
	Total     float64     `json:"total"`
	CreatedAt string      `json:"createdAt"`
}

// Location is the delivery location stored per user.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	UpdatedAt string  `json:"updatedAt"`
}

// ProfileImage wraps the profile photo, carried as a base64 data URI.
type ProfileImage struct {
	Image string `json:"image"`
}

// Credentials is the identity endpoint's answer to signUp/signIn.
type Credentials struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	Token   string `json:"idToken"`
}
