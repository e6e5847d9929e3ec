package repository

import (
	"context"
	"sync"

	"github.com/kazeph/storefront-api/internal/domain"
)

// Catalog is the read-only view of the product list. The storefront never
// writes to it at runtime; the product set is fixed at construction.
type Catalog interface {
	GetAll(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type memoryCatalog struct {
	products []*domain.Product
	mutex    sync.RWMutex
}

// NewMemoryCatalog returns a Catalog seeded with the KAZE product range.
func NewMemoryCatalog() Catalog {
	return &memoryCatalog{products: defaultProducts()}
}

// NewFixtureCatalog returns a Catalog over the given products. Intended for
// tests and alternative seeds.
func NewFixtureCatalog(products []*domain.Product) Catalog {
	return &memoryCatalog{products: products}
}

func (c *memoryCatalog) GetAll(ctx context.Context) ([]*domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.products, nil
}

func (c *memoryCatalog) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, product := range c.products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, domain.ErrProductNotFound
}

func defaultProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:          "kaze-arc",
			Name:        "KAZE Arc",
			Description: "Rechargeable arc-frame desk fan with brushless motor and 12h battery life.",
			Status:      domain.StatusPreOrder,
			BasePrice:   "₱399",
			Image:       "https://www.kaze.ph/images/front-and-back.webp",
			Rating:      4.7,
			Specs: []domain.Spec{
				{Label: "Battery", Value: "4,000 mAh"},
				{Label: "Runtime", Value: "Up to 12 hours"},
				{Label: "Charging", Value: "USB-C"},
			},
		},
		{
			ID:            "pb-10000",
			Name:          "PowerMax 10,000 mAh",
			Description:   "Slim 10,000 mAh powerbank with fast USB-A/USB-C output and LED indicators.",
			Status:        domain.StatusAvailable,
			BasePrice:     "₱1,499",
			Discounted:    true,
			DiscountPrice: "₱1,299",
			Image:         "https://www.kaze.ph/images/powerbank-10000.webp",
			Rating:        4.6,
			Specs: []domain.Spec{
				{Label: "Capacity", Value: "10,000 mAh"},
				{Label: "Output", Value: "USB-A / USB-C 18W"},
				{Label: "Weight", Value: "210 g"},
			},
		},
		{
			ID:          "pb-20000",
			Name:        "PowerMax 20,000 mAh",
			Description: "High-capacity 20,000 mAh with PD 20W USB-C fast charge and dual USB-A.",
			Status:      domain.StatusAvailable,
			BasePrice:   "₱2,499",
			Image:       "https://www.kaze.ph/images/powerbank-20000.webp",
			Rating:      4.8,
			Specs: []domain.Spec{
				{Label: "Capacity", Value: "20,000 mAh"},
				{Label: "Output", Value: "PD 20W USB-C / dual USB-A"},
				{Label: "Weight", Value: "390 g"},
			},
		},
		{
			ID:          "pb-mag-5000",
			Name:        "MagCharge 5,000 mAh (MagSafe)",
			Description: "Snap-on magnetic 5,000 mAh for iPhone with pass-through charging.",
			Status:      domain.StatusSoldOut,
			BasePrice:   "₱1,999",
			Image:       "https://www.kaze.ph/images/magcharge-5000.webp",
			Rating:      4.5,
			Specs: []domain.Spec{
				{Label: "Capacity", Value: "5,000 mAh"},
				{Label: "Mount", Value: "MagSafe magnetic"},
			},
		},
	}
}
