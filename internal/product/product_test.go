package product

import (
	"context"
	"testing"
)

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	return NewService(repo, nil), repo
}

func validProduct() *Product {
	return &Product{
		Name:         "Café orgánico",
		Category:     "coffee",
		Unit:         "kg",
		PricePerUnit: 25000,
		Stock:        40,
		Region:       "Huila",
	}
}

func TestCreateProductSetsOwnerAndStatus(t *testing.T) {
	service, _ := newTestService()

	p, err := service.CreateProduct(context.Background(), "seller-1", validProduct())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.SellerID != "seller-1" {
		t.Errorf("expected seller-1, got %s", p.SellerID)
	}
	if p.Status != StatusActive {
		t.Errorf("expected ACTIVE, got %s", p.Status)
	}
	if p.ID == "" {
		t.Error("expected generated id")
	}
}

func TestCreateProductValidation(t *testing.T) {
	service, _ := newTestService()

	bad := validProduct()
	bad.PricePerUnit = 0

	if _, err := service.CreateProduct(context.Background(), "seller-1", bad); err == nil {
		t.Fatal("expected error for non-positive price")
	}

	bad = validProduct()
	bad.Name = ""
	if _, err := service.CreateProduct(context.Background(), "seller-1", bad); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestUpdateProductRejectsNonOwner(t *testing.T) {
	service, _ := newTestService()

	p, _ := service.CreateProduct(context.Background(), "seller-1", validProduct())

	_, err := service.UpdateProduct(context.Background(), p.ID, "seller-2", validProduct())
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestArchiveRemovesFromPublicList(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	p, _ := service.CreateProduct(ctx, "seller-1", validProduct())

	if err := service.ArchiveProduct(ctx, p.ID, "seller-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := service.ListProducts(ctx, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, lp := range listed {
		if lp.ID == p.ID {
			t.Fatal("archived product still listed publicly")
		}
	}

	// Seller still sees it
	mine, _ := service.ListMyProducts(ctx, "seller-1")
	if len(mine) != 1 {
		t.Fatalf("expected 1 product for seller, got %d", len(mine))
	}
}

func TestListFiltersByCategoryAndRegion(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	coffee := validProduct()
	service.CreateProduct(ctx, "seller-1", coffee)

	banana := validProduct()
	banana.Name = "Banano"
	banana.Category = "fruit"
	banana.Region = "Antioquia"
	service.CreateProduct(ctx, "seller-1", banana)

	got, _ := service.ListProducts(ctx, "fruit", "")
	if len(got) != 1 || got[0].Category != "fruit" {
		t.Fatalf("category filter failed: %+v", got)
	}

	got, _ = service.ListProducts(ctx, "", "Huila")
	if len(got) != 1 || got[0].Region != "Huila" {
		t.Fatalf("region filter failed: %+v", got)
	}
}

func TestProductReaderView(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	p, _ := service.CreateProduct(ctx, "seller-1", validProduct())

	info, err := service.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.PricePerUnit != 25000 || info.Stock != 40 {
		t.Fatalf("unexpected reader view: %+v", info)
	}

	owner, _ := service.IsOwner(ctx, p.ID, "seller-1")
	if !owner {
		t.Fatal("expected seller-1 to own product")
	}
	owner, _ = service.IsOwner(ctx, p.ID, "seller-2")
	if owner {
		t.Fatal("seller-2 must not own product")
	}
}
