// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
	"math/big"

	"github.com/imdario/mergo"
	"github.com/shopspring/decimal"
)

type GeneralChainConfig struct {
	Name      string  `mapstructure:"name"`
	Id        *uint64 `mapstructure:"id"`
	Endpoint  string  `mapstructure:"endpoint"`
	Type      string  `mapstructure:"type"`
	Blocktime uint64  `mapstructure:"blocktime" default:"12"`
}

func (c *GeneralChainConfig) Validate() error {
	// viper defaults to 0 for not specified ints
	if c.Id == nil {
		return fmt.Errorf("required field chain.Id empty for chain %v", c.Name)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	return nil
}

// SwapOverrides are the per chain swap parameters. Fields left empty are
// taken from the global swap configuration.
type SwapOverrides struct {
	Finality    uint64 `mapstructure:"finality"`
	DepositRate string `mapstructure:"depositRate"`
	DepositMin  string `mapstructure:"depositMin"`
}

// Merge fills the unset overrides with defaults.
func (o *SwapOverrides) Merge(defaults SwapOverrides) error {
	return mergo.Merge(o, defaults)
}

// DepositRatePerMille converts the deposit rate into thousandths, flooring the remainder.
func (o *SwapOverrides) DepositRatePerMille() (uint64, error) {
	rate, err := decimal.NewFromString(o.DepositRate)
	if err != nil {
		return 0, fmt.Errorf("invalid deposit rate %s: %w", o.DepositRate, err)
	}
	if rate.IsNegative() {
		return 0, fmt.Errorf("deposit rate %s is negative", o.DepositRate)
	}

	return uint64(rate.Mul(decimal.NewFromInt(1000)).Floor().IntPart()), nil
}

func (o *SwapOverrides) DepositMinAmount() (*big.Int, error) {
	minAmount, ok := new(big.Int).SetString(o.DepositMin, 10)
	if !ok || minAmount.Sign() < 0 {
		return nil, fmt.Errorf("invalid minimum deposit %s", o.DepositMin)
	}
	return minAmount, nil
}
