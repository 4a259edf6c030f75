package booking

import "math"

// TaxRate is the flat taxes-and-fees surcharge applied to every fare.
const TaxRate = 0.15

// Amount is the charge sent to the payment provider: base fare plus
// surcharge, rounded to cents.
func Amount(basePrice float64) float64 {
	return math.Round(basePrice*(1+TaxRate)*100) / 100
}

// DisplayTaxes is the whole-unit surcharge shown in the fare summary.
func DisplayTaxes(basePrice float64) float64 {
	return math.Round(basePrice * TaxRate)
}

// DisplayTotal is base fare plus DisplayTaxes. It can differ from Amount
// by the rounding of the surcharge.
func DisplayTotal(basePrice float64) float64 {
	return basePrice + DisplayTaxes(basePrice)
}
