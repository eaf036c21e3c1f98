// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package deposit

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const PER_MILLE = 1000

var ErrInvalidAmount = errors.New("amount must be positive")

type Config struct {
	Chain string
	// RatePerMille is the deposit rate in thousandths of the escrowed amount
	RatePerMille uint64
	MinAmount    *big.Int
}

func (c Config) Validate() error {
	if c.MinAmount == nil || c.MinAmount.Sign() < 0 {
		return fmt.Errorf("minimum deposit for chain %s must be non-negative", c.Chain)
	}
	return nil
}

// EscrowFunding is the amount a resolver locks on the destination chain:
// the escrowed amount plus the safety deposit.
type EscrowFunding struct {
	Amount      *big.Int
	Deposit     *big.Int
	TotalAmount *big.Int
	Resolver    common.Address
}

type Calculator struct {
	config Config
}

func NewCalculator(config Config) *Calculator {
	return &Calculator{
		config: config,
	}
}

// Compute returns max(amount * rate / 1000, minimum).
func (c *Calculator) Compute(amount *big.Int) *big.Int {
	deposit := new(big.Int).Mul(amount, new(big.Int).SetUint64(c.config.RatePerMille))
	deposit.Div(deposit, big.NewInt(PER_MILLE))

	if c.config.MinAmount != nil && deposit.Cmp(c.config.MinAmount) < 0 {
		deposit = new(big.Int).Set(c.config.MinAmount)
	}
	return deposit
}

func (c *Calculator) CreateEscrowWithDeposit(amount *big.Int, resolver common.Address) (*EscrowFunding, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	deposit := c.Compute(amount)
	total := new(big.Int).Add(amount, deposit)
	log.Debug().
		Str("chain", c.config.Chain).
		Str("resolver", resolver.Hex()).
		Str("amount", amount.String()).
		Str("deposit", deposit.String()).
		Msg("Calculated safety deposit")

	return &EscrowFunding{
		Amount:      new(big.Int).Set(amount),
		Deposit:     deposit,
		TotalAmount: total,
		Resolver:    resolver,
	}, nil
}
