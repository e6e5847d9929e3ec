package domain

import "testing"

func TestResolveUnitPrice(t *testing.T) {
	testCases := []struct {
		name    string
		product *Product
		want    float64
	}{
		{"Plain peso price", &Product{BasePrice: "₱399"}, 399},
		{"Grouped thousands", &Product{BasePrice: "₱1,499"}, 1499},
		{"Decimal price", &Product{BasePrice: "₱1,299.50"}, 1299.50},
		{"Discount price wins when discounted", &Product{BasePrice: "₱399", Discounted: true, DiscountPrice: "₱299"}, 299},
		{"Base price wins when not discounted", &Product{BasePrice: "₱399", DiscountPrice: "₱299"}, 399},
		{"Empty price", &Product{BasePrice: ""}, 0},
		{"Unparsable price", &Product{BasePrice: "TBA"}, 0},
		{"Discounted with empty discount price", &Product{BasePrice: "₱399", Discounted: true}, 0},
		{"Nil product", nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveUnitPrice(tc.product)

			if got != tc.want {
				t.Fatalf("Expected price %v, got %v", tc.want, got)
			}
			if got < 0 {
				t.Fatalf("Resolved price must never be negative, got %v", got)
			}
		})
	}
}

func TestResolveUnitPriceIsDeterministic(t *testing.T) {
	p := &Product{BasePrice: "₱1,499", Discounted: true, DiscountPrice: "₱1,299"}

	first := ResolveUnitPrice(p)
	second := ResolveUnitPrice(p)

	if first != second {
		t.Fatalf("Expected identical results, got %v and %v", first, second)
	}
}

func TestFormatPHP(t *testing.T) {
	testCases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"Whole amount", 798, "₱798.00"},
		{"Grouped amount", 12500, "₱12,500.00"},
		{"Zero", 0, "₱0.00"},
		{"Rounded decimals", 1299.5, "₱1,299.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatPHP(tc.amount)

			if got != tc.want {
				t.Fatalf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
