package salessvc

import (
	"time"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
)

var hundred = decimal.NewFromInt(100)

// LineTotal is unitPrice*quantity less the promotion's discount when the
// promotion is active at now. The result is never negative and is rounded
// to cents.
func LineTotal(unitPrice float64, quantity int, promo *catalogmodels.Promotion, now time.Time) float64 {
	qty := decimal.NewFromInt(int64(quantity))
	subtotal := decimal.NewFromFloat(unitPrice).Mul(qty)

	final := subtotal
	if promo != nil && promo.ActiveAt(now) {
		value := decimal.NewFromFloat(promo.DiscountValue)
		switch promo.DiscountType {
		case catalogmodels.DiscountPercent:
			final = subtotal.Sub(subtotal.Mul(value).Div(hundred))
		case catalogmodels.DiscountAmount:
			final = subtotal.Sub(value.Mul(qty))
		}
		if final.IsNegative() {
			final = decimal.Zero
		}
	}
	return toCents(final)
}

// Delta is after-before in cents, so repeated $inc updates do not drift.
func Delta(before, after float64) float64 {
	return toCents(decimal.NewFromFloat(after).Sub(decimal.NewFromFloat(before)))
}

func toCents(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
