// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/sprinter-htlc/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig
	Escrow             common.Address
	Key                string
	Swap               chain.SwapOverrides

	ReceiptRetryInterval time.Duration
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Escrow                   string              `mapstructure:"escrow"`
	Key                      string              `mapstructure:"key"`
	Swap                     chain.SwapOverrides `mapstructure:"swap"`

	ReceiptRetryInterval uint64 `mapstructure:"receiptRetryInterval" default:"2"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.Id)
	}
	if !common.IsHexAddress(c.Escrow) {
		return fmt.Errorf("invalid escrow address %s for chain %v", c.Escrow, *c.Id)
	}
	if c.Key == "" {
		return fmt.Errorf("required field chain.Key empty for chain %v", *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config. Swap parameters missing on the chain are taken from
// swapDefaults.
func NewEVMConfig(chainConfig map[string]interface{}, swapDefaults chain.SwapOverrides) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	err = c.Swap.Merge(swapDefaults)
	if err != nil {
		return nil, err
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Escrow:             common.HexToAddress(c.Escrow),
		Key:                c.Key,
		Swap:               c.Swap,
		// nolint:gosec
		ReceiptRetryInterval: time.Duration(c.ReceiptRetryInterval) * time.Second,
	}, nil
}
