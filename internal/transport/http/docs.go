// Package classification of KAZE Storefront API
//
// # Documentation for the KAZE Storefront API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/kazeph/storefront-api/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// A list of products
// swagger:response productsResponse
type productsResponseWrapper struct {
	// The full product catalog
	// in: body
	Body []domain.Product
}

// Data structure representing a single product
// swagger:response productResponse
type productResponseWrapper struct {
	// A single product
	// in: body
	Body domain.Product
}

// Health status of the service
// swagger:response healthResponse
type healthResponseWrapper struct {
	// Service status
	// in: body
	Body struct {
		Status string `json:"status"`
	}
}

// Result of a demo checkout
// swagger:response checkoutResponse
type checkoutResponseWrapper struct {
	// Demo checkout confirmation
	// in: body
	Body checkoutResponse
}

// Terminal dispatch state for a placed order
// swagger:response orderResponse
type orderResponseWrapper struct {
	// Dispatch outcome and draft totals
	// in: body
	Body orderResponse
}

// swagger:parameters getProductByID
type productIDParamsWrapper struct {
	// The ID of the product
	// in: path
	// required: true
	ID string `json:"id"`
}

// swagger:parameters placeOrder
type orderBodyParamsWrapper struct {
	// Order submission with product, quantity, channel and buyer fields.
	// in: body
	// required: true
	Body orderRequest
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}
