package rentbuy // import "lachine.dev/rentbuy"

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultHorizon is twenty-five years of months.
	DefaultHorizon = 25 * 12

	// MinDownpaymentRatio is the smallest accepted downpayment as a
	// fraction of the house price.
	MinDownpaymentRatio = 0.2
)

// A Scenario describes one household's situation: the money at hand, the
// monthly housing budget, and the terms of the rental and purchase options
// to project. Amounts are dollars, rates are yearly fractions.
type Scenario struct {
	Capital           float64
	HousingBudget     float64
	MonthlyRent       float64
	HousePrice        float64
	Downpayment       float64
	HousingGrowthRate float64
	RentGrowthRate    float64
	MortgageRate      float64
	ReturnRate        float64
	Horizon           int   // months
	Start             Month // zero means the current month
}

// Validate checks the scenario before simulation. A scenario describes both
// the renting and the buying option, so the purchase fields are required
// either way.
func (s Scenario) Validate() error {
	if s.Horizon < 1 {
		return fmt.Errorf("horizon must be at least one month (got %d)", s.Horizon)
	}
	if s.HousePrice <= 0 {
		return fmt.Errorf("house price must be positive (got %.2f)", s.HousePrice)
	}
	if s.Downpayment > s.Capital {
		return &DownpaymentError{Downpayment: s.Downpayment, Capital: s.Capital, HousePrice: s.HousePrice}
	}
	if s.Downpayment/s.HousePrice < MinDownpaymentRatio {
		return &DownpaymentError{Downpayment: s.Downpayment, Capital: s.Capital, HousePrice: s.HousePrice}
	}
	return nil
}

func (s Scenario) startMonth() Month {
	if s.Start == 0 {
		return MonthOf(time.Now())
	}
	return s.Start
}

// MonthlyRate converts a yearly rate to the equivalent compounding monthly
// rate.
func MonthlyRate(yearlyRate float64) float64 {
	return math.Pow(1+yearlyRate, 1.0/12) - 1
}
