package analytics

import (
	"math"
	"time"
)

// --------------------------------------------------
// PURE PRICE STATISTICS (NO db / NO http)
// --------------------------------------------------
// Every function takes plain slices and returns a plain
// result. Degenerate input (too few points, zero variance,
// zero totals) returns the documented neutral value instead
// of an error — sparse price histories are normal, not
// exceptional.

// TrendResult classifies the direction of a dated price series.
type TrendResult struct {
	Slope       float64 `json:"slope"`
	Correlation float64 `json:"correlation"`
	Trend       string  `json:"trend"` // increasing | decreasing | stable
}

// MonthlyBucket groups the prices observed in one calendar month (1-12).
type MonthlyBucket struct {
	Month  int
	Prices []float64
}

// SeasonalIndex is the month average relative to the overall average.
type SeasonalIndex struct {
	Month          int     `json:"month"`
	SeasonalIndex  float64 `json:"seasonal_index"`
	Interpretation string  `json:"interpretation"` // high | low | normal
}

// MarketObservation is one market's average price and traded volume.
type MarketObservation struct {
	Market       string  `json:"market"`
	AveragePrice float64 `json:"average_price"`
	Volume       float64 `json:"volume"`
}

// ConcentrationResult is the Herfindahl-Hirschman index over markets.
type ConcentrationResult struct {
	HHI            int    `json:"hhi"`
	Interpretation string `json:"interpretation"` // highly_concentrated | moderately_concentrated | competitive
}

// MovingAverage returns the trailing simple moving average,
// one value per position from window-1 to the end, each rounded
// to 2 decimals. Returns an empty slice when the series is
// shorter than the window.
func MovingAverage(prices []float64, window int) []float64 {
	if window < 1 || len(prices) < window {
		return []float64{}
	}

	out := make([]float64, 0, len(prices)-window+1)
	for i := window - 1; i < len(prices); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += prices[j]
		}
		out = append(out, roundTo(sum/float64(window), 2))
	}
	return out
}

// Volatility returns the population standard deviation rounded
// to 2 decimals, or 0 for fewer than 2 points.
func Volatility(prices []float64) float64 {
	if len(prices) < 2 {
		return 0
	}
	return roundTo(populationStdDev(prices, mean(prices)), 2)
}

// PriceTrend regresses price on day-offset from the first date
// (ordinary least squares) and classifies the slope.
// Mismatched or too-short input returns the neutral stable result.
func PriceTrend(prices []float64, dates []time.Time) TrendResult {
	neutral := TrendResult{Slope: 0, Correlation: 0, Trend: "stable"}

	if len(prices) < 2 || len(prices) != len(dates) {
		return neutral
	}

	// Day offsets keep the regressor small regardless of epoch.
	days := make([]float64, len(dates))
	for i, d := range dates {
		days[i] = d.Sub(dates[0]).Hours() / 24
	}

	n := float64(len(prices))
	var sumX, sumY, sumXY, sumXX float64
	for i := range prices {
		sumX += days[i]
		sumY += prices[i]
		sumXY += days[i] * prices[i]
		sumXX += days[i] * days[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// All observations on the same day.
		return neutral
	}

	slope := (n*sumXY - sumX*sumY) / denom
	correlation := pearson(days, prices)

	trend := "stable"
	if math.Abs(slope) >= 0.01 {
		if slope > 0 {
			trend = "increasing"
		} else {
			trend = "decreasing"
		}
	}

	return TrendResult{
		Slope:       roundTo(slope, 3),
		Correlation: roundTo(correlation, 3),
		Trend:       trend,
	}
}

// DetectAnomalies returns the indices whose absolute z-score
// reaches threshold, in ascending order. Fewer than 3 points or
// zero variance yields no anomalies. The comparison is inclusive
// so a point sitting exactly on the threshold is still flagged.
func DetectAnomalies(prices []float64, threshold float64) []int {
	if len(prices) < 3 {
		return []int{}
	}

	avg := mean(prices)
	sd := populationStdDev(prices, avg)
	if sd == 0 {
		return []int{}
	}

	anomalies := []int{}
	for i, p := range prices {
		if math.Abs((p-avg)/sd) >= threshold {
			anomalies = append(anomalies, i)
		}
	}
	return anomalies
}

// SeasonalIndices compares each month's average against the
// average over all pooled prices. An empty pool returns an empty
// slice rather than dividing by zero.
func SeasonalIndices(buckets []MonthlyBucket) []SeasonalIndex {
	var pooled []float64
	for _, b := range buckets {
		pooled = append(pooled, b.Prices...)
	}

	overall := mean(pooled)
	if overall == 0 {
		return []SeasonalIndex{}
	}

	out := make([]SeasonalIndex, 0, len(buckets))
	for _, b := range buckets {
		index := roundTo(mean(b.Prices)/overall, 3)

		interpretation := "normal"
		if index > 1.1 {
			interpretation = "high"
		} else if index < 0.9 {
			interpretation = "low"
		}

		out = append(out, SeasonalIndex{
			Month:          b.Month,
			SeasonalIndex:  index,
			Interpretation: interpretation,
		})
	}
	return out
}

// CrossPriceElasticity correlates the period-over-period
// percentage changes of two equal-length series, rounded to
// 3 decimals. Periods with a zero previous value or a non-finite
// change are skipped; no usable pairs yields 0.
func CrossPriceElasticity(seriesA, seriesB []float64) float64 {
	if len(seriesA) < 2 || len(seriesA) != len(seriesB) {
		return 0
	}

	var changesA, changesB []float64
	for i := 1; i < len(seriesA); i++ {
		if seriesA[i-1] == 0 || seriesB[i-1] == 0 {
			continue
		}
		da := (seriesA[i] - seriesA[i-1]) / seriesA[i-1] * 100
		db := (seriesB[i] - seriesB[i-1]) / seriesB[i-1] * 100
		if math.IsNaN(da) || math.IsInf(da, 0) || math.IsNaN(db) || math.IsInf(db, 0) {
			continue
		}
		changesA = append(changesA, da)
		changesB = append(changesB, db)
	}

	if len(changesA) == 0 {
		return 0
	}
	return roundTo(pearson(changesA, changesB), 3)
}

// Forecast applies single exponential smoothing and repeats the
// final smoothed level for the requested number of periods, each
// rounded to 2 decimals. A flat forecast: no trend or seasonality
// is propagated past the last level.
func Forecast(prices []float64, alpha float64, periods int) []float64 {
	if len(prices) == 0 {
		return []float64{}
	}

	smoothed := prices[0]
	for t := 1; t < len(prices); t++ {
		smoothed = alpha*prices[t] + (1-alpha)*smoothed
	}

	out := make([]float64, 0, periods)
	for i := 0; i < periods; i++ {
		out = append(out, roundTo(smoothed, 2))
	}
	return out
}

// MarketConcentration sums squared market-share percentages
// (Herfindahl-Hirschman) over the observations. Zero total volume
// is reported as a fully competitive market.
func MarketConcentration(observations []MarketObservation) ConcentrationResult {
	total := 0.0
	for _, o := range observations {
		total += o.Volume
	}
	if total == 0 {
		return ConcentrationResult{HHI: 0, Interpretation: "competitive"}
	}

	hhi := 0.0
	for _, o := range observations {
		share := o.Volume / total * 100
		hhi += share * share
	}

	interpretation := "competitive"
	if hhi > 2500 {
		interpretation = "highly_concentrated"
	} else if hhi > 1500 {
		interpretation = "moderately_concentrated"
	}

	return ConcentrationResult{
		HHI:            int(math.Round(hhi)),
		Interpretation: interpretation,
	}
}

// --------------------------------------------------
// SHARED ARITHMETIC
// --------------------------------------------------

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationStdDev(values []float64, avg float64) float64 {
	variance := 0.0
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// pearson returns 0 when either series has zero variance.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
	}

	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// roundTo keeps the per-function rounding contracts in one place.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
