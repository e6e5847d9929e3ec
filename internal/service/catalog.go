package service

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/kazeph/storefront-api/internal/domain"
	"github.com/kazeph/storefront-api/internal/repository"
)

type CatalogService interface {
	ListProducts(ctx context.Context) (domain.Products, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type catalogService struct {
	catalog repository.Catalog
	logger  hclog.Logger
}

func NewCatalogService(catalog repository.Catalog, logger hclog.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) (domain.Products, error) {
	s.logger.Debug("Listing all products")

	products, err := s.catalog.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to get products", "error", err)
		return nil, err
	}

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.logger.Debug("Getting product", "id", id)

	product, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if err != domain.ErrProductNotFound {
			s.logger.Error("Unable to get the product", "id", id, "error", err)
		}
		return nil, err
	}

	return product, nil
}
