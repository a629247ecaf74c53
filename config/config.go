// Package config loads rent-or-buy scenarios from a YAML file.
package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/viper"

	"lachine.dev/rentbuy"
)

// defaults are merged into every scenario before it is built.
var defaults = Scenario{
	HorizonMonths: rentbuy.DefaultHorizon,
}

type Config struct {
	Scenarios []Scenario `mapstructure:"scenarios"`
}

// A Scenario is the file form of one household situation. Amounts are
// dollars, rates are yearly fractions, and the optional start month is in
// "2006-01" form.
type Scenario struct {
	Name              string  `mapstructure:"name"`
	Capital           float64 `mapstructure:"capital"`
	HousingBudget     float64 `mapstructure:"housing_budget"`
	MonthlyRent       float64 `mapstructure:"monthly_rent"`
	HousePrice        float64 `mapstructure:"house_price"`
	Downpayment       float64 `mapstructure:"downpayment"`
	HousingGrowthRate float64 `mapstructure:"housing_growth_rate"`
	RentGrowthRate    float64 `mapstructure:"rent_growth_rate"`
	MortgageRate      float64 `mapstructure:"mortgage_rate"`
	ReturnRate        float64 `mapstructure:"return_rate"`
	HorizonMonths     int     `mapstructure:"horizon_months"`
	Start             string  `mapstructure:"start"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return &cfg, nil
}

// Scenario returns the named scenario, or the first one for an empty name.
func (c *Config) Scenario(name string) (*Scenario, error) {
	if name == "" {
		return &c.Scenarios[0], nil
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("no scenario named %q", name)
}

// Build fills in the defaults and converts to the simulation input.
func (s Scenario) Build() (rentbuy.Scenario, error) {
	if err := mergo.Merge(&s, defaults); err != nil {
		return rentbuy.Scenario{}, err
	}
	sc := rentbuy.Scenario{
		Capital:           s.Capital,
		HousingBudget:     s.HousingBudget,
		MonthlyRent:       s.MonthlyRent,
		HousePrice:        s.HousePrice,
		Downpayment:       s.Downpayment,
		HousingGrowthRate: s.HousingGrowthRate,
		RentGrowthRate:    s.RentGrowthRate,
		MortgageRate:      s.MortgageRate,
		ReturnRate:        s.ReturnRate,
		Horizon:           s.HorizonMonths,
	}
	if s.Start != "" {
		start, err := rentbuy.ParseMonth(s.Start)
		if err != nil {
			return rentbuy.Scenario{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		sc.Start = start
	}
	return sc, nil
}
