package config

import (
	"fmt"
)

// TokenConfig describes the swap asset of a chain.
type TokenConfig struct {
	Symbol   string `mapstructure:"symbol"`
	Decimals uint8  `mapstructure:"decimals"`
}

type TokenStore struct {
	Tokens map[uint64]TokenConfig
}

func (s *TokenStore) ConfigByChain(chainID uint64) (TokenConfig, error) {
	c, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no token for chain %d", chainID)
	}

	return c, nil
}

func (s *TokenStore) ConfigBySymbol(symbol string) (uint64, TokenConfig, error) {
	for chainID, c := range s.Tokens {
		if c.Symbol == symbol {
			return chainID, c, nil
		}
	}

	return 0, TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
}
