package price

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/config"
)

type PriceFetcher interface {
	TokenPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

type TokenStore interface {
	ConfigByChain(chainID uint64) (config.TokenConfig, error)
}

// RateSource derives the market exchange rate between the swap assets of two
// chains from their USD prices.
type RateSource struct {
	prices PriceFetcher
	tokens TokenStore
}

func NewRateSource(prices PriceFetcher, tokens TokenStore) *RateSource {
	return &RateSource{
		prices: prices,
		tokens: tokens,
	}
}

// MarketRate returns how many destination base units one source base unit
// is worth.
func (r *RateSource) MarketRate(ctx context.Context, sourceChain uint64, destinationChain uint64) (decimal.Decimal, error) {
	source, err := r.tokens.ConfigByChain(sourceChain)
	if err != nil {
		return decimal.Zero, err
	}
	destination, err := r.tokens.ConfigByChain(destinationChain)
	if err != nil {
		return decimal.Zero, err
	}

	sourcePrice, err := r.prices.TokenPrice(ctx, source.Symbol)
	if err != nil {
		return decimal.Zero, err
	}
	destinationPrice, err := r.prices.TokenPrice(ctx, destination.Symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if !destinationPrice.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid %s price %s", destination.Symbol, destinationPrice)
	}

	rate := sourcePrice.Div(destinationPrice).
		Shift(int32(destination.Decimals) - int32(source.Decimals))
	log.Debug().
		Str("source", source.Symbol).
		Str("destination", destination.Symbol).
		Str("rate", rate.String()).
		Msg("Calculated market rate")
	return rate, nil
}
