package rentbuy

import (
	"go.uber.org/zap"
)

// A RentOutcome holds the projected series for the renting strategy: the
// rent owed each month and the capital left invested after paying it.
type RentOutcome struct {
	Capital *Series
	Rent    *Series
}

// A BuyOutcome holds the projected series for the buying strategy, plus the
// one-time transfer tax and the constant monthly mortgage payment.
type BuyOutcome struct {
	Capital      *Series
	House        *Series
	Mortgage     *Series
	MunicipalTax *Series
	NetPosition  *Series
	TransferTax  float64
	Payment      float64
}

// A Comparison is the result of projecting both strategies for one scenario.
type Comparison struct {
	Scenario Scenario
	Renting  *RentOutcome
	Buying   *BuyOutcome
}

// SimulateRenting projects the renting strategy month by month: pay rent out
// of the housing budget, invest whatever remains, and draw on capital when
// the budget falls short.
func SimulateRenting(logger *zap.Logger, sc Scenario) (*RentOutcome, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	start := sc.startMonth()
	logger.Debug("simulating renting",
		zap.Stringer("start", start),
		zap.Int("horizon", sc.Horizon),
		zap.Float64("capital", sc.Capital),
		zap.Float64("rent", sc.MonthlyRent),
	)

	rent := SteppedSeries(start, sc.MonthlyRent, sc.RentGrowthRate, sc.Horizon)
	budget := SteppedSeries(start, sc.HousingBudget, sc.HousingGrowthRate, sc.Horizon)
	capital := NewAsset(start, sc.Capital, MonthlyRate(sc.ReturnRate))

	for n := 0; n < sc.Horizon; n++ {
		curRent, curBudget := rent.at(n), budget.at(n)
		available := capital.Value() + curBudget
		if curRent > available {
			return nil, &AffordabilityError{
				Month:     start.Add(n),
				Payment:   PaymentRent,
				Required:  curRent,
				Available: available,
			}
		}
		if curRent <= curBudget {
			capital.Invest(curBudget - curRent)
		} else if err := capital.Withdraw(curRent - curBudget); err != nil {
			return nil, err
		}
		capital.Advance()
	}

	values := capital.Values()
	values.truncate(sc.Horizon)
	return &RentOutcome{Capital: values, Rent: rent}, nil
}

// SimulateBuying projects the buying strategy: pay the downpayment and the
// transfer tax up front, then each month pay the mortgage and the municipal
// taxes out of the housing budget, investing or withdrawing the difference.
func SimulateBuying(logger *zap.Logger, sc Scenario) (*BuyOutcome, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	start := sc.startMonth()

	capital, house, mortgage, transferTax, err := buySetup(sc, start)
	if err != nil {
		return nil, err
	}
	logger.Debug("simulating buying",
		zap.Stringer("start", start),
		zap.Int("horizon", sc.Horizon),
		zap.Float64("principal", sc.HousePrice-sc.Downpayment),
		zap.Float64("payment", mortgage.Payment()),
		zap.Float64("transferTax", transferTax),
	)

	budget := SteppedSeries(start, sc.HousingBudget, sc.HousingGrowthRate, sc.Horizon)
	municipal := &Series{start: start}
	net := &Series{start: start}

	for n := 0; n < sc.Horizon; n++ {
		tax := MunicipalTaxRate * house.Value()
		municipal.Append(tax)

		curBudget := budget.at(n)
		available := capital.Value() + curBudget
		amountToPay := mortgage.Payment() + tax
		if mortgage.Payment() > available {
			return nil, &AffordabilityError{
				Month:     start.Add(n),
				Payment:   PaymentMortgage,
				Required:  mortgage.Payment(),
				Available: available,
			}
		}
		if amountToPay <= curBudget {
			capital.Invest(curBudget - amountToPay)
		} else if err := capital.Withdraw(amountToPay - curBudget); err != nil {
			return nil, err
		}

		capital.Advance()
		mortgage.Advance()
		house.Advance()
		net.Append(capital.Values().at(n) + house.Values().at(n) - mortgage.Balances().at(n))
	}

	capitalValues := capital.Values()
	capitalValues.truncate(sc.Horizon)
	houseValues := house.Values()
	houseValues.truncate(sc.Horizon)
	balances := mortgage.Balances()
	balances.truncate(sc.Horizon)

	return &BuyOutcome{
		Capital:      capitalValues,
		House:        houseValues,
		Mortgage:     balances,
		MunicipalTax: municipal,
		NetPosition:  net,
		TransferTax:  transferTax,
		Payment:      mortgage.Payment(),
	}, nil
}

// buySetup seeds the purchase: capital net of the downpayment and the
// transfer tax, the house at its purchase price, and the mortgage for the
// remainder over the whole horizon.
func buySetup(sc Scenario, start Month) (capital, house *Asset, mortgage *Mortgage, transferTax float64, err error) {
	capital = NewAsset(start, sc.Capital, MonthlyRate(sc.ReturnRate))
	if err := capital.Withdraw(sc.Downpayment); err != nil {
		return nil, nil, nil, 0, err
	}
	house = NewAsset(start, sc.HousePrice, MonthlyRate(sc.HousingGrowthRate))
	mortgage = NewMortgage(start, sc.HousePrice-sc.Downpayment, MonthlyRate(sc.MortgageRate), sc.Horizon)
	transferTax = TransferTax(sc.HousePrice)
	if err := capital.Withdraw(transferTax); err != nil {
		return nil, nil, nil, 0, err
	}
	return capital, house, mortgage, transferTax, nil
}

// Compare projects both strategies independently for the same scenario.
func Compare(logger *zap.Logger, sc Scenario) (*Comparison, error) {
	renting, err := SimulateRenting(logger, sc)
	if err != nil {
		return nil, err
	}
	buying, err := SimulateBuying(logger, sc)
	if err != nil {
		return nil, err
	}
	return &Comparison{Scenario: sc, Renting: renting, Buying: buying}, nil
}

// Breakeven returns the first month in which the buying net position reaches
// the renting capital, if there is one.
func (c *Comparison) Breakeven() (Month, bool) {
	net := c.Buying.NetPosition
	for m := net.Start(); m <= net.End(); m = m.Add(1) {
		nv, _ := net.At(m)
		rv, ok := c.Renting.Capital.At(m)
		if !ok {
			break
		}
		if nv >= rv {
			return m, true
		}
	}
	return 0, false
}

// TotalRentPaid is the rent paid over the whole horizon.
func (c *Comparison) TotalRentPaid() float64 {
	return c.Renting.Rent.Sum()
}

// TotalInterest is the interest part of all mortgage payments over the whole
// horizon.
func (c *Comparison) TotalInterest() float64 {
	principal := c.Scenario.HousePrice - c.Scenario.Downpayment
	return c.Buying.Payment*float64(c.Scenario.Horizon) - principal
}

// TotalMunicipalTax is the municipal taxes paid over the whole horizon.
func (c *Comparison) TotalMunicipalTax() float64 {
	return c.Buying.MunicipalTax.Sum()
}
