package analytics

import (
	"context"
	"time"
)

// historyDays bounds every per-product query to the last year of
// observations; seasonal indices use the full history instead.
const historyDays = 365

// AnomalyPoint is one flagged observation in a product's series.
type AnomalyPoint struct {
	Index      int       `json:"index"`
	Price      float64   `json:"price"`
	ObservedOn time.Time `json:"observed_on"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ProductSeries exposes the raw dated series for other features.
func (s *Service) ProductSeries(
	ctx context.Context,
	productID string,
	days int,
) ([]float64, []time.Time, error) {
	return s.repo.ProductSeries(ctx, productID, days)
}

func (s *Service) MovingAverage(
	ctx context.Context,
	productID string,
	window int,
) ([]float64, error) {

	prices, _, err := s.repo.ProductSeries(ctx, productID, historyDays)
	if err != nil {
		return nil, err
	}
	return MovingAverage(prices, window), nil
}

func (s *Service) Volatility(ctx context.Context, productID string) (float64, error) {
	prices, _, err := s.repo.ProductSeries(ctx, productID, historyDays)
	if err != nil {
		return 0, err
	}
	return Volatility(prices), nil
}

func (s *Service) Trend(ctx context.Context, productID string) (TrendResult, error) {
	prices, dates, err := s.repo.ProductSeries(ctx, productID, historyDays)
	if err != nil {
		return TrendResult{}, err
	}
	return PriceTrend(prices, dates), nil
}

func (s *Service) Anomalies(
	ctx context.Context,
	productID string,
	threshold float64,
) ([]AnomalyPoint, error) {

	prices, dates, err := s.repo.ProductSeries(ctx, productID, historyDays)
	if err != nil {
		return nil, err
	}

	points := []AnomalyPoint{}
	for _, i := range DetectAnomalies(prices, threshold) {
		points = append(points, AnomalyPoint{
			Index:      i,
			Price:      prices[i],
			ObservedOn: dates[i],
		})
	}
	return points, nil
}

func (s *Service) Seasonal(ctx context.Context, productID string) ([]SeasonalIndex, error) {
	buckets, err := s.repo.MonthlyBuckets(ctx, productID)
	if err != nil {
		return nil, err
	}
	return SeasonalIndices(buckets), nil
}

func (s *Service) ForecastProduct(
	ctx context.Context,
	productID string,
	alpha float64,
	periods int,
) ([]float64, error) {

	prices, _, err := s.repo.ProductSeries(ctx, productID, historyDays)
	if err != nil {
		return nil, err
	}
	return Forecast(prices, alpha, periods), nil
}

func (s *Service) Elasticity(
	ctx context.Context,
	productA string,
	productB string,
) (float64, error) {

	seriesA, seriesB, err := s.repo.PairedSeries(ctx, productA, productB, historyDays)
	if err != nil {
		return 0, err
	}
	return CrossPriceElasticity(seriesA, seriesB), nil
}

func (s *Service) Concentration(
	ctx context.Context,
	category string,
	region string,
) (ConcentrationResult, error) {

	observations, err := s.repo.MarketObservations(ctx, category, region)
	if err != nil {
		return ConcentrationResult{}, err
	}
	return MarketConcentration(observations), nil
}
