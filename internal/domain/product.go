package domain

// ProductStatus describes the availability of a product in the catalog.
// A product is always in exactly one state.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "available"
	StatusSoldOut   ProductStatus = "sold-out"
	StatusPreOrder  ProductStatus = "pre-order"
)

// Spec is a single label/value entry on a product's spec sheet. Display only.
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product represents the product model
//
// swagger:model
type Product struct {
	// The ID of the product
	//
	// required: true
	// example: kaze-arc
	ID string `json:"id"`

	// The name of the product
	//
	// required: true
	// example: KAZE Arc
	Name string `json:"name" validate:"required"`

	// The description of the product
	//
	// required: false
	Description string `json:"description"`

	// The availability status of the product
	//
	// required: true
	// enum: available,sold-out,pre-order
	Status ProductStatus `json:"status"`

	// The base price as shown on the storefront, currency formatted
	//
	// required: true
	// example: ₱1,499
	BasePrice string `json:"basePrice"`

	// Whether the discount price is currently in effect
	//
	// required: false
	Discounted bool `json:"discounted"`

	// The discount price, currency formatted; effective only when discounted
	//
	// required: false
	// example: ₱1,299
	DiscountPrice string `json:"discountPrice,omitempty"`

	// The product image URL
	//
	// required: false
	Image string `json:"img"`

	// The average buyer rating
	//
	// required: false
	// example: 4.6
	Rating float64 `json:"rating"`

	// The ordered spec sheet entries
	//
	// required: false
	Specs []Spec `json:"specs,omitempty"`
}

// Products is a collection of Product
type Products []*Product
