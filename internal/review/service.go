package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"
)

var (
	ErrNotPurchased  = errors.New("product must be delivered before reviewing")
	ErrAlreadyExists = errors.New("you already reviewed this product")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type Service struct {
	repo     Repository
	products core.ProductReader
	notifier core.Notifier
}

func NewService(repo Repository, products core.ProductReader, notifier core.Notifier) *Service {
	return &Service{repo: repo, products: products, notifier: notifier}
}

// --------------------------------------------------
// Create review (DELIVERED PURCHASE REQUIRED)
// --------------------------------------------------
func (s *Service) CreateReview(
	ctx context.Context,
	buyerID string,
	productID string,
	rating int,
	comment string,
) (*Review, error) {

	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, errors.New("product not found")
	}

	purchased, err := s.repo.HasDeliveredPurchase(ctx, buyerID, productID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, ErrNotPurchased
	}

	exists, err := s.repo.ExistsForBuyer(ctx, productID, buyerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	review := &Review{
		ProductID: productID,
		BuyerID:   buyerID,
		Rating:    rating,
		Comment:   comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	_ = s.notifier.Notify(
		ctx,
		p.SellerID,
		"NEW_REVIEW",
		fmt.Sprintf("%s received a %d-star review", p.Name, rating),
	)

	return review, nil
}

// --------------------------------------------------
// Product review summary
// --------------------------------------------------
func (s *Service) GetProductReviews(ctx context.Context, productID string) (*Summary, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ProductID: productID,
		Count:     len(reviews),
		Reviews:   reviews,
	}
	if summary.Reviews == nil {
		summary.Reviews = []Review{}
	}

	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		summary.AvgRating = float64(sum) / float64(len(reviews))
	}

	return summary, nil
}
