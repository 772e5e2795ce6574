package totals

import (
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// TaxFunc derives the tax owed on a subtotal.
type TaxFunc func(subtotal decimal.Decimal) decimal.Decimal

// ZeroTax is the register default: no tax is charged.
func ZeroTax(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// RateTax charges a flat fraction of the subtotal, rounded half away from zero to cents.
func RateTax(rate decimal.Decimal) TaxFunc {
	if rate.IsZero() {
		return ZeroTax
	}
	return func(subtotal decimal.Decimal) decimal.Decimal {
		return subtotal.Mul(rate).Round(2)
	}
}

type Calculator struct {
	unit currency.Unit
	tax  TaxFunc
}

func NewCalculator(unit currency.Unit, tax TaxFunc) Calculator {
	if tax == nil {
		tax = ZeroTax
	}
	return Calculator{unit: unit, tax: tax}
}

func (c Calculator) Currency() currency.Unit {
	return c.unit
}

// Compute is pure: the same lines always produce the same totals.
func (c Calculator) Compute(lines []domain.CartLine) domain.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	tax := ZeroTax(subtotal)
	if c.tax != nil {
		tax = c.tax(subtotal)
	}

	return domain.Totals{
		Subtotal: domain.NewMoney(subtotal, c.unit),
		Tax:      domain.NewMoney(tax, c.unit),
		Total:    domain.NewMoney(subtotal.Add(tax), c.unit),
	}
}
