package domain

import (
	"strconv"
	"strings"
)

// Buyer holds the contact details collected at checkout. All fields are
// optional at composition time; the dispatch channel decides which must be
// present. No field is format-validated.
type Buyer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderDraft is an in-memory proposed order. It is never persisted and never
// mutated after ComposeOrder returns; callers compose a fresh draft whenever
// the quantity, buyer or product changes.
type OrderDraft struct {
	Product   *Product `json:"product"`
	Quantity  int      `json:"qty"`
	UnitPrice float64  `json:"unitPrice"`
	Total     float64  `json:"total"`
	Buyer     Buyer    `json:"buyer"`
}

// ComposeOrder builds a draft for the given product, quantity and buyer.
// Quantities below 1 are clamped to 1. The unit price is resolved once,
// here; later catalog changes do not affect an in-flight draft.
func ComposeOrder(p *Product, quantity int, buyer Buyer) OrderDraft {
	if quantity < 1 {
		quantity = 1
	}

	unit := ResolveUnitPrice(p)

	return OrderDraft{
		Product:   p,
		Quantity:  quantity,
		UnitPrice: unit,
		Total:     unit * float64(quantity),
		Buyer:     buyer,
	}
}

// PreOrder reports whether the draft is for a pre-order product.
func (d OrderDraft) PreOrder() bool {
	return d.Product != nil && d.Product.Status == StatusPreOrder
}

// Summary returns the human-readable order lines in a fixed order: greeting,
// product, quantity, prices, any buyer fields that are present, signature.
// Absent buyer fields are omitted entirely, never shown blank.
func (d OrderDraft) Summary() []string {
	greeting := "Hi KAZE Team! I'd like to place an order:"
	if d.PreOrder() {
		greeting = "Hi KAZE Team! I'd like to place a pre-order:"
	}

	productName := ""
	if d.Product != nil {
		productName = d.Product.Name
	}

	lines := []string{
		greeting,
		"• Product: " + productName,
		"• Quantity: " + strconv.Itoa(d.Quantity),
		"• Unit Price: " + FormatPHP(d.UnitPrice),
		"• Total: " + FormatPHP(d.Total),
	}

	if d.Buyer.Name != "" {
		lines = append(lines, "• Name: "+d.Buyer.Name)
	}
	if d.Buyer.Phone != "" {
		lines = append(lines, "• Phone: "+d.Buyer.Phone)
	}
	if d.Buyer.Email != "" {
		lines = append(lines, "• Email: "+d.Buyer.Email)
	}
	if d.Buyer.Address != "" {
		lines = append(lines, "• Address: "+d.Buyer.Address)
	}

	lines = append(lines, "— Sent from KAZE site")

	return lines
}

// SummaryText joins the summary lines with line breaks.
func (d OrderDraft) SummaryText() string {
	return strings.Join(d.Summary(), "\n")
}
