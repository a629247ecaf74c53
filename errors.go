package rentbuy

import (
	"fmt"
)

// Payment kinds reported by AffordabilityError.
const (
	PaymentRent     = "rent"
	PaymentMortgage = "mortgage"
)

// An AffordabilityError means a month's housing payment exceeded the housing
// budget plus all remaining capital, so the simulated strategy cannot continue.
type AffordabilityError struct {
	Month     Month
	Payment   string
	Required  float64
	Available float64
}

func (e *AffordabilityError) Error() string {
	return fmt.Sprintf("%s too expensive in %s: payment is $%.2f and housing budget + remaining capital is $%.2f",
		e.Payment, e.Month, e.Required, e.Available)
}

// An InsufficientFundsError means a withdrawal asked for more than the asset
// held at the time.
type InsufficientFundsError struct {
	Month     Month
	Requested float64
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient capital in %s: need an extra $%.2f", e.Month, e.Requested-e.Available)
}

// A DownpaymentError reports a downpayment that exceeds the initial capital,
// or one below the minimum fraction of the house price. When both hold, the
// capital violation is reported.
type DownpaymentError struct {
	Downpayment float64
	Capital     float64
	HousePrice  float64
}

// Ratio is the downpayment as a fraction of the house price.
func (e *DownpaymentError) Ratio() float64 {
	return e.Downpayment / e.HousePrice
}

func (e *DownpaymentError) Error() string {
	if e.Downpayment > e.Capital {
		return fmt.Sprintf("downpayment exceeds initial capital ($%.2f > $%.2f)", e.Downpayment, e.Capital)
	}
	return fmt.Sprintf("downpayment is less than %.0f%% of house price (only %.2f%%)",
		MinDownpaymentRatio*100, e.Ratio()*100)
}
