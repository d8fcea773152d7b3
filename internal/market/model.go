package market

import "time"

// Snapshot is the aggregated regional price picture for one
// product category, recomputed from recent price history.
type Snapshot struct {
	ID          int       `json:"id"`
	Category    string    `json:"category"`
	Region      string    `json:"region"`
	AvgPrice    float64   `json:"avg_price"`
	MedianPrice float64   `json:"median_price"`
	SampleSize  int       `json:"sample_size"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
