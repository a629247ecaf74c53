package rentbuy

import (
	"math"
)

// A Mortgage is a fixed-rate loan repaid by a constant monthly payment over a
// fixed number of months. Each month the payment is deducted first, then
// interest accrues on the remainder, so the balance reaches zero exactly at
// the end of the term.
type Mortgage struct {
	payment float64
	rate    float64
	balance *Series
}

func NewMortgage(start Month, principal, monthlyRate float64, months int) *Mortgage {
	return &Mortgage{
		payment: AnnuityPayment(principal, monthlyRate, months),
		rate:    monthlyRate,
		balance: NewSeries(start, principal),
	}
}

// AnnuityPayment returns the constant monthly payment that amortizes the
// principal over the given number of months, with payments due at the start
// of each month.
func AnnuityPayment(principal, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	discount := 1 / (1 + monthlyRate)
	coeff := (1 - math.Pow(discount, float64(months))) / (1 - discount)
	return principal / coeff
}

func (m *Mortgage) Payment() float64 {
	return m.payment
}

// Balance is the amount still owed in the current month.
func (m *Mortgage) Balance() float64 {
	return m.balance.Last()
}

func (m *Mortgage) Advance() {
	m.balance.addLast(-m.payment)
	m.balance.Append(m.balance.Last() * (1 + m.rate))
}

func (m *Mortgage) Balances() *Series {
	return m.balance
}
