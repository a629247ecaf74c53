package rentbuy

import (
	"math"
)

// Transfer tax brackets for Montreal, from
// http://equipemckenzie.com/outils/calcul-de-taxe-de-bienvenue
var transferTaxBrackets = []struct {
	lower, upper float64
	rate         float64
}{
	{0, 50e3, 0.005},
	{50e3, 250e3, 0.01},
	{250e3, 500e3, 0.015},
	{500e3, 1e6, 0.02},
	{1e6, math.Inf(1), 0.025},
}

// TransferTax returns the one-time tax due on a house purchase. Each bracket
// taxes the part of the price above its lower bound at the bracket rate.
func TransferTax(price float64) float64 {
	var amount float64
	for _, b := range transferTaxBrackets {
		if price <= b.lower {
			break
		}
		amount += b.rate * (math.Min(price, b.upper) - b.lower)
	}
	return amount
}

// Montreal 2022 property tax components.
const (
	taxeFonciereGenerale      = 0.005712
	tauxDettesAnciennesVilles = 0.000281
	taxeSpecialeEau           = 0.000975
	taxeRelativeARTM          = 0.000023

	// MunicipalTaxRate is applied to the current house value every month.
	MunicipalTaxRate = taxeFonciereGenerale + tauxDettesAnciennesVilles + taxeSpecialeEau + taxeRelativeARTM
)
