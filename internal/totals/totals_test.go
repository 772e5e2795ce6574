package totals_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/totals"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestCompute(t *testing.T) {
	coca := domain.CartLine{ItemID: "1", Name: "Coca Cola 500ml", UnitPrice: decimal.RequireFromString("2.50"), Quantity: 2}
	pan := domain.CartLine{ItemID: "2", Name: "Pan Integral", UnitPrice: decimal.RequireFromString("1.80"), Quantity: 1}

	tests := []struct {
		name         string
		lines        []domain.CartLine
		tax          totals.TaxFunc
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}{
		{
			name:         "sample sale without tax: ok",
			lines:        []domain.CartLine{coca, pan},
			tax:          totals.ZeroTax,
			wantSubtotal: "6.80",
			wantTax:      "0.00",
			wantTotal:    "6.80",
		},
		{
			name:         "empty cart: ok",
			lines:        nil,
			wantSubtotal: "0.00",
			wantTax:      "0.00",
			wantTotal:    "0.00",
		},
		{
			name:         "flat 21% rate rounds to cents: ok",
			lines:        []domain.CartLine{coca, pan},
			tax:          totals.RateTax(decimal.RequireFromString("0.21")),
			wantSubtotal: "6.80",
			wantTax:      "1.43",
			wantTotal:    "8.23",
		},
		{
			name:         "zero rate: ok",
			lines:        []domain.CartLine{pan},
			tax:          totals.RateTax(decimal.Zero),
			wantSubtotal: "1.80",
			wantTax:      "0.00",
			wantTotal:    "1.80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := totals.NewCalculator(currency.USD, tt.tax).Compute(tt.lines)

			assert.Equal(t, tt.wantSubtotal, got.Subtotal.Amount.StringFixed(2))
			assert.Equal(t, tt.wantTax, got.Tax.Amount.StringFixed(2))
			assert.Equal(t, tt.wantTotal, got.Total.Amount.StringFixed(2))
			assert.Equal(t, "USD", got.Total.Currency.String())
		})
	}
}

func TestComputeInvariants(t *testing.T) {
	calc := totals.NewCalculator(currency.EUR, totals.RateTax(decimal.RequireFromString("0.07")))

	for range 50 {
		lines := randomLines()

		first := calc.Compute(lines)
		second := calc.Compute(lines)

		assert.Empty(t, cmp.Diff(first, second, cmp.Comparer(func(x, y domain.Money) bool {
			return x.Currency == y.Currency && x.Amount.Equal(y.Amount) && x.Amount.Exponent() == y.Amount.Exponent()
		})))
		assert.True(t, first.Subtotal.Amount.Add(first.Tax.Amount).Equal(first.Total.Amount))

		sum := decimal.Zero
		for _, l := range lines {
			sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		assert.True(t, sum.Equal(first.Subtotal.Amount))
	}
}

func TestNilTaxFuncDefaultsToZero(t *testing.T) {
	got := totals.NewCalculator(currency.USD, nil).Compute([]domain.CartLine{
		{ItemID: "x", UnitPrice: decimal.RequireFromString("0.95"), Quantity: 3},
	})

	assert.Equal(t, "2.85", got.Total.Amount.StringFixed(2))
	assert.True(t, got.Tax.Amount.IsZero())
}

func randomLines() []domain.CartLine {
	lines := make([]domain.CartLine, gofakeit.IntRange(0, 8))
	for i := range lines {
		lines[i] = domain.CartLine{
			ItemID:    gofakeit.UUID(),
			Name:      gofakeit.ProductName(),
			UnitPrice: decimal.NewFromFloat(gofakeit.Price(0, 50)).Round(2),
			Quantity:  gofakeit.IntRange(1, 10),
		}
	}
	return lines
}
