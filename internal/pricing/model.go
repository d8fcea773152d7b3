package pricing

import "github.com/JuanSebastianCG/agricoventa-sub002/internal/analytics"

// Positioning of a product against its regional market snapshot.
const (
	PositionUnderMarket = "UNDER_MARKET"
	PositionAverage     = "MARKET_AVERAGE"
	PositionPremium     = "PREMIUM"
)

// Suggestion is the read-only listing-price advice for a seller.
type Suggestion struct {
	ProductID    string  `json:"product_id"`
	Category     string  `json:"category"`
	Region       string  `json:"region"`
	CurrentPrice float64 `json:"current_price"`

	MarketAvg    float64 `json:"market_avg_price"`
	MarketMedian float64 `json:"market_median_price"`
	SampleSize   int     `json:"sample_size"`

	Positioning    string                `json:"positioning"`
	Trend          analytics.TrendResult `json:"trend"`
	SuggestedPrice float64               `json:"suggested_price"`
	Reason         string                `json:"reason"`
}
