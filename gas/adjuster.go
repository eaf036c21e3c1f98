// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package gas

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	HISTORY_SIZE = 100
)

type BaseFeeFetcher interface {
	BaseFee(ctx context.Context, chainID uint64) (*big.Int, error)
}

type Config struct {
	Enabled                      bool
	VolatilityThreshold          decimal.Decimal
	AdjustmentFactor             decimal.Decimal
	ExecutionThresholdMultiplier decimal.Decimal
	HistorySize                  int
}

// Adjuster keeps a bounded base fee history per chain and scales order
// prices when the current base fee deviates from the historical average.
type Adjuster struct {
	config  Config
	fetcher BaseFeeFetcher

	lock    sync.Mutex
	history map[uint64][]*big.Int
}

func NewAdjuster(config Config, fetcher BaseFeeFetcher) *Adjuster {
	if config.HistorySize <= 0 {
		config.HistorySize = HISTORY_SIZE
	}

	return &Adjuster{
		config:  config,
		fetcher: fetcher,
		history: make(map[uint64][]*big.Int),
	}
}

// AdjustPrice records the current base fee of the chain and returns the price
// scaled by the volatility against the average of the previous samples.
func (a *Adjuster) AdjustPrice(ctx context.Context, originalPrice decimal.Decimal, chainID uint64) (decimal.Decimal, error) {
	if !a.config.Enabled {
		return originalPrice, nil
	}

	baseFee, err := a.fetcher.BaseFee(ctx, chainID)
	if err != nil {
		return originalPrice, fmt.Errorf("failed fetching base fee for chain %d: %w", chainID, err)
	}

	volatility, ok := a.observe(chainID, baseFee)
	if !ok {
		log.Debug().Uint64("chainID", chainID).Msg("Insufficient gas history, keeping original price")
		return originalPrice, nil
	}

	if volatility.Abs().LessThanOrEqual(a.config.VolatilityThreshold) {
		return originalPrice, nil
	}

	adjusted := originalPrice.Mul(decimal.NewFromInt(1).Add(volatility.Mul(a.config.AdjustmentFactor)))
	log.Info().
		Uint64("chainID", chainID).
		Str("baseFee", baseFee.String()).
		Str("volatility", volatility.String()).
		Str("originalPrice", originalPrice.String()).
		Str("adjustedPrice", adjusted.String()).
		Msg("Adjusted price for gas volatility")
	return adjusted, nil
}

// observe appends the sample to the chain history and returns the volatility
// of the sample against the average of the history before the append.
func (a *Adjuster) observe(chainID uint64, sample *big.Int) (decimal.Decimal, bool) {
	a.lock.Lock()
	defer a.lock.Unlock()

	history := a.history[chainID]
	average, ok := Average(history)

	history = append(history, new(big.Int).Set(sample))
	if len(history) > a.config.HistorySize {
		history = history[len(history)-a.config.HistorySize:]
	}
	a.history[chainID] = history

	if !ok {
		return decimal.Zero, false
	}
	return Volatility(sample, average), true
}

// ShouldExecute reports whether the gas adjusted order price still covers
// gasPrice scaled by the execution threshold multiplier.
func (a *Adjuster) ShouldExecute(ctx context.Context, orderPrice decimal.Decimal, gasPrice *big.Int, chainID uint64) (bool, error) {
	adjusted, err := a.AdjustPrice(ctx, orderPrice, chainID)
	if err != nil {
		return false, err
	}

	threshold := decimal.NewFromBigInt(gasPrice, 0).Mul(a.config.ExecutionThresholdMultiplier)
	return adjusted.GreaterThanOrEqual(threshold), nil
}

// History returns a copy of the recorded samples for the chain.
func (a *Adjuster) History(chainID uint64) []*big.Int {
	a.lock.Lock()
	defer a.lock.Unlock()

	history := make([]*big.Int, len(a.history[chainID]))
	for i, sample := range a.history[chainID] {
		history[i] = new(big.Int).Set(sample)
	}
	return history
}

// Average is the exact mean of the samples. It reports false for an
// empty slice.
func Average(samples []*big.Int) (decimal.Decimal, bool) {
	if len(samples) == 0 {
		return decimal.Zero, false
	}

	sum := big.NewInt(0)
	for _, sample := range samples {
		sum.Add(sum, sample)
	}
	return decimal.NewFromBigInt(sum, 0).Div(decimal.NewFromInt(int64(len(samples)))), true
}

// Volatility is (current - average) / average, zero for a zero average.
func Volatility(current *big.Int, average decimal.Decimal) decimal.Decimal {
	if average.IsZero() {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(current, 0).Sub(average).Div(average)
}
