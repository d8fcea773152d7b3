package product

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrUnauthorized = errors.New("unauthorized")
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Create product (SELLER)
// --------------------------------------------------
func (s *Service) CreateProduct(
	ctx context.Context,
	sellerID string,
	p *Product,
) (*Product, error) {

	if p.Name == "" || p.Category == "" || p.Unit == "" || p.Region == "" {
		return nil, errors.New("missing required fields")
	}
	if p.PricePerUnit <= 0 {
		return nil, errors.New("price_per_unit must be positive")
	}
	if p.Stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}

	p.SellerID = sellerID
	p.Status = StatusActive

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// --------------------------------------------------
// Update product (OWNER ONLY)
// --------------------------------------------------
func (s *Service) UpdateProduct(
	ctx context.Context,
	productID string,
	sellerID string,
	p *Product,
) (*Product, error) {

	existing, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrNotFound
	}
	if existing.SellerID != sellerID {
		return nil, ErrUnauthorized
	}

	if p.PricePerUnit <= 0 {
		return nil, errors.New("price_per_unit must be positive")
	}
	if p.Stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}

	p.ID = productID
	p.SellerID = sellerID

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, productID)
}

// --------------------------------------------------
// Archive product (OWNER ONLY)
// --------------------------------------------------
func (s *Service) ArchiveProduct(
	ctx context.Context,
	productID string,
	sellerID string,
) error {

	existing, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return ErrNotFound
	}
	if existing.SellerID != sellerID {
		return ErrUnauthorized
	}

	return s.repo.SetStatus(ctx, productID, StatusArchived)
}

// --------------------------------------------------
// Public catalog
// --------------------------------------------------
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, category, region string) ([]*Product, error) {
	return s.repo.List(ctx, category, region)
}

func (s *Service) ListMyProducts(ctx context.Context, sellerID string) ([]*Product, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

// --------------------------------------------------
// Image upload (OWNER ONLY)
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	productID string,
	sellerID string,
	file multipart.File,
	filename string,
) (string, error) {

	existing, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return "", ErrNotFound
	}
	if existing.SellerID != sellerID {
		return "", ErrUnauthorized
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"products/%s/%s%s",
		productID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.AddImage(ctx, productID, url); err != nil {
		return "", err
	}
	return url, nil
}

// --------------------------------------------------
// core.ProductReader (used by cart / order / review / pricing)
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, productID string) (*core.ProductInfo, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrNotFound
	}

	return &core.ProductInfo{
		ID:           p.ID,
		SellerID:     p.SellerID,
		Name:         p.Name,
		Category:     p.Category,
		Region:       p.Region,
		Unit:         p.Unit,
		PricePerUnit: p.PricePerUnit,
		Stock:        p.Stock,
		Status:       p.Status,
	}, nil
}

func (s *Service) IsOwner(ctx context.Context, productID, userID string) (bool, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return false, ErrNotFound
	}
	return p.SellerID == userID, nil
}
