package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/kazeph/storefront-api/internal/dispatch"
	"github.com/kazeph/storefront-api/internal/domain"
	"github.com/kazeph/storefront-api/internal/service"
)

type StorefrontHandler struct {
	catalogService service.CatalogService
	orderService   service.OrderService
	logger         hclog.Logger
}

func NewStorefrontHandler(
	cs service.CatalogService,
	os service.OrderService,
	logger hclog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		catalogService: cs,
		orderService:   os,
		logger:         logger,
	}
}

// checkoutRequest mirrors the demo checkout body: a non-empty cart and an
// email are required, nothing else is looked at.
type checkoutRequest struct {
	Items []json.RawMessage `json:"items"`
	Email string            `json:"email"`
}

type checkoutResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// orderRequest is the body accepted by the order dispatch endpoint.
type orderRequest struct {
	Product string `json:"product"`
	Qty     int    `json:"qty"`
	Channel string `json:"channel"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// orderResponse echoes the draft totals alongside the dispatch outcome so
// the UI can word its confirmation without recomputing anything.
type orderResponse struct {
	dispatch.Result
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
	PreOrder  bool    `json:"preOrder"`
}

// Health handles GET /api/health
//
// swagger:route GET /api/health health healthCheck
//
// Returns the service health status.
//
// Responses:
//
//	200: healthResponse
func (h *StorefrontHandler) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// GetProducts handles GET /api/products
//
// swagger:route GET /api/products products listProducts
//
// Returns the full product catalog.
//
// Responses:
//
//	200: productsResponse
//	500: errorResponse
func (h *StorefrontHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("Error getting products", "error", err)
		writeError(w, http.StatusInternalServerError, "Error getting products")
		return
	}

	json.NewEncoder(w).Encode(products)
}

// GetProductByID handles GET /api/products/{id}
//
// swagger:route GET /api/products/{id} products getProductByID
//
// Returns a product by ID.
//
// Responses:
//
//	200: productResponse
//	404: errorResponse
func (h *StorefrontHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		if err == domain.ErrProductNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("Error getting product", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Error getting product")
		return
	}

	json.NewEncoder(w).Encode(product)
}

// Checkout handles POST /api/checkout
//
// swagger:route POST /api/checkout checkout demoCheckout
//
// Demo checkout endpoint. Issues a random order identifier without any real
// payment processing.
//
// Responses:
//
//	200: checkoutResponse
//	400: errorResponse
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Items) == 0 || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Missing items or email")
		return
	}

	orderID := "ORDER-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])

	h.logger.Info("Demo checkout completed", "order_id", orderID, "items", len(req.Items))

	json.NewEncoder(w).Encode(checkoutResponse{
		Success: true,
		OrderID: orderID,
		Message: "Demo checkout complete. No real charge made.",
	})
}

// PlaceOrder handles POST /api/orders
//
// swagger:route POST /api/orders orders placeOrder
//
// Composes an order draft and dispatches it through the selected channel.
// Rejected and failed dispatches are still 200 responses; the terminal state
// travels in the payload.
//
// Responses:
//
//	200: orderResponse
//	400: errorResponse
//	404: errorResponse
func (h *StorefrontHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Product == "" {
		writeError(w, http.StatusBadRequest, "Missing product")
		return
	}

	channel := dispatch.Channel(req.Channel)
	if channel == "" {
		channel = dispatch.ChannelMessaging
	}

	buyer := domain.Buyer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	draft, result, err := h.orderService.PlaceOrder(r.Context(), req.Product, req.Qty, buyer, channel)
	if err != nil {
		if err == domain.ErrProductNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("Error placing order", "product", req.Product, "error", err)
		writeError(w, http.StatusInternalServerError, "Error placing order")
		return
	}

	json.NewEncoder(w).Encode(orderResponse{
		Result:    result,
		Qty:       draft.Quantity,
		UnitPrice: draft.UnitPrice,
		Total:     draft.Total,
		PreOrder:  draft.PreOrder(),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}
