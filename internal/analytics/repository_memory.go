package analytics

import (
	"context"
	"sort"
	"time"
)

// MemoryRepository backs tests and local development without Postgres.
type MemoryRepository struct {
	Series       map[string][]PricePoint
	Observations map[string][]MarketObservation // key: category|region
}

// PricePoint is one stored observation in the memory repository.
type PricePoint struct {
	Price      float64
	ObservedOn time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		Series:       map[string][]PricePoint{},
		Observations: map[string][]MarketObservation{},
	}
}

func (r *MemoryRepository) Add(productID string, price float64, observedOn time.Time) {
	r.Series[productID] = append(r.Series[productID], PricePoint{
		Price:      price,
		ObservedOn: observedOn,
	})
}

func (r *MemoryRepository) ProductSeries(
	ctx context.Context,
	productID string,
	days int,
) ([]float64, []time.Time, error) {

	points := append([]PricePoint(nil), r.Series[productID]...)
	sort.Slice(points, func(i, j int) bool {
		return points[i].ObservedOn.Before(points[j].ObservedOn)
	})

	var prices []float64
	var dates []time.Time
	for _, p := range points {
		prices = append(prices, p.Price)
		dates = append(dates, p.ObservedOn)
	}
	return prices, dates, nil
}

func (r *MemoryRepository) MonthlyBuckets(
	ctx context.Context,
	productID string,
) ([]MonthlyBucket, error) {

	byMonth := map[int][]float64{}
	for _, p := range r.Series[productID] {
		m := int(p.ObservedOn.Month())
		byMonth[m] = append(byMonth[m], p.Price)
	}

	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Ints(months)

	buckets := make([]MonthlyBucket, 0, len(months))
	for _, m := range months {
		buckets = append(buckets, MonthlyBucket{Month: m, Prices: byMonth[m]})
	}
	return buckets, nil
}

func (r *MemoryRepository) PairedSeries(
	ctx context.Context,
	productA string,
	productB string,
	days int,
) ([]float64, []float64, error) {

	byDayA := map[string]float64{}
	for _, p := range r.Series[productA] {
		byDayA[p.ObservedOn.Format("2006-01-02")] = p.Price
	}

	type pair struct {
		day  string
		a, b float64
	}
	var pairs []pair
	for _, p := range r.Series[productB] {
		day := p.ObservedOn.Format("2006-01-02")
		if a, ok := byDayA[day]; ok {
			pairs = append(pairs, pair{day: day, a: a, b: p.Price})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].day < pairs[j].day })

	var seriesA, seriesB []float64
	for _, p := range pairs {
		seriesA = append(seriesA, p.a)
		seriesB = append(seriesB, p.b)
	}
	return seriesA, seriesB, nil
}

func (r *MemoryRepository) MarketObservations(
	ctx context.Context,
	category string,
	region string,
) ([]MarketObservation, error) {
	return r.Observations[category+"|"+region], nil
}
