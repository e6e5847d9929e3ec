package repository

import (
	"context"
	"testing"

	"github.com/kazeph/storefront-api/internal/domain"
)

func TestMemoryCatalogGetAll(t *testing.T) {
	c := NewMemoryCatalog()

	products, err := c.GetAll(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("Expected seeded products, got none")
	}

	for _, p := range products {
		if p.ID == "" || p.Name == "" || p.BasePrice == "" {
			t.Fatalf("Seeded product %+v is missing required fields", p)
		}
	}
}

func TestMemoryCatalogGetByID(t *testing.T) {
	c := NewMemoryCatalog()

	product, err := c.GetByID(context.Background(), "kaze-arc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if product.Name != "KAZE Arc" {
		t.Fatalf("Expected KAZE Arc, got %q", product.Name)
	}
}

func TestMemoryCatalogGetByIDNotFound(t *testing.T) {
	c := NewMemoryCatalog()

	_, err := c.GetByID(context.Background(), "does-not-exist")
	if err != domain.ErrProductNotFound {
		t.Fatalf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestFixtureCatalog(t *testing.T) {
	c := NewFixtureCatalog([]*domain.Product{
		{ID: "fixture-1", Name: "Fixture", BasePrice: "₱100"},
	})

	product, err := c.GetByID(context.Background(), "fixture-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if product.Name != "Fixture" {
		t.Fatalf("Expected Fixture, got %q", product.Name)
	}
}
