package rentbuy

import (
	"math"
)

// A Series holds one value per month over a contiguous range of months.
type Series struct {
	start Month
	vals  []float64
}

func NewSeries(start Month, initial float64) *Series {
	return &Series{start: start, vals: []float64{initial}}
}

// SteppedSeries projects an amount that is adjusted by a yearly rate once
// every twelve months: the value at month n is initial*(1+rate)^(n/12),
// constant within each year of the projection.
func SteppedSeries(start Month, initial, yearlyRate float64, months int) *Series {
	s := &Series{start: start, vals: make([]float64, months)}
	for n := range s.vals {
		s.vals[n] = initial * math.Pow(1+yearlyRate, float64(n/12))
	}
	return s
}

func (s *Series) Start() Month {
	return s.start
}

// End returns the last month the series has a value for.
func (s *Series) End() Month {
	return s.start.Add(len(s.vals) - 1)
}

func (s *Series) Len() int {
	return len(s.vals)
}

func (s *Series) At(m Month) (float64, bool) {
	i := m.Sub(s.start)
	if i < 0 || i >= len(s.vals) {
		return 0, false
	}
	return s.vals[i], true
}

// Last returns the value for the most recent month.
func (s *Series) Last() float64 {
	return s.vals[len(s.vals)-1]
}

func (s *Series) Append(v float64) {
	s.vals = append(s.vals, v)
}

func (s *Series) Sum() float64 {
	var sum float64
	for _, v := range s.vals {
		sum += v
	}
	return sum
}

func (s *Series) at(i int) float64 {
	return s.vals[i]
}

func (s *Series) addLast(delta float64) {
	s.vals[len(s.vals)-1] += delta
}

func (s *Series) truncate(n int) {
	if n < len(s.vals) {
		s.vals = s.vals[:n]
	}
}
