package review

import "time"

type Review struct {
	ID        int       `json:"id"`
	ProductID string    `json:"product_id"`
	BuyerID   string    `json:"buyer_id"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary aggregates a product's reviews.
type Summary struct {
	ProductID string   `json:"product_id"`
	AvgRating float64  `json:"avg_rating"`
	Count     int      `json:"count"`
	Reviews   []Review `json:"reviews"`
}
