package rentbuy

// An Asset is a holding that compounds by a fixed monthly rate. Deposits and
// withdrawals apply to the current month; Advance closes the month and opens
// the next one with the grown value.
type Asset struct {
	rate   float64
	values *Series
}

func NewAsset(start Month, initial, monthlyRate float64) *Asset {
	return &Asset{
		rate:   monthlyRate,
		values: NewSeries(start, initial),
	}
}

// Value is the asset's value in the current month.
func (a *Asset) Value() float64 {
	return a.values.Last()
}

func (a *Asset) Invest(amount float64) {
	a.values.addLast(amount)
}

func (a *Asset) Withdraw(amount float64) error {
	if amount > a.values.Last() {
		return &InsufficientFundsError{
			Month:     a.values.End(),
			Requested: amount,
			Available: a.values.Last(),
		}
	}
	a.values.addLast(-amount)
	return nil
}

func (a *Asset) Advance() {
	a.values.Append(a.values.Last() * (1 + a.rate))
}

func (a *Asset) Values() *Series {
	return a.values
}
