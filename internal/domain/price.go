package domain

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// phpPrinter localizes number output the same way the storefront UI does.
var phpPrinter = message.NewPrinter(language.MustParse("en-PH"))

// ResolveUnitPrice returns the effective unit price for a product. The
// discount price wins whenever the product is flagged as discounted.
// Currency symbols and grouping separators are stripped before parsing.
// An empty or unparsable price resolves to 0 so a bad catalog entry can
// never block checkout.
func ResolveUnitPrice(p *Product) float64 {
	if p == nil {
		return 0
	}

	raw := p.BasePrice
	if p.Discounted {
		raw = p.DiscountPrice
	}

	var sb strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}

	price, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0
	}

	return price
}

// FormatPHP renders an amount in Philippine pesos with grouping separators
// and exactly two decimal places.
func FormatPHP(amount float64) string {
	return phpPrinter.Sprintf("₱%.2f", amount)
}
