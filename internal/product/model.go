package product

import "time"

// Product lifecycle states. Archived products stay readable for
// order history but disappear from the public catalog.
const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

type Product struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"seller_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	Unit         string    `json:"unit"` // kg | lb | unit | bundle ...
	PricePerUnit float64   `json:"price_per_unit"`
	Stock        int       `json:"stock"`
	Region       string    `json:"region"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Images      []string `json:"images,omitempty"`
	AvgRating   float64  `json:"avg_rating"`
	ReviewCount int      `json:"review_count"`
}
