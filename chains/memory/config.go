// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package memory

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/sprinter-htlc/config/chain"
)

type MemoryConfig struct {
	GeneralChainConfig chain.GeneralChainConfig
	Maker              common.Address
	Swap               chain.SwapOverrides
}

type RawMemoryConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Maker                    string              `mapstructure:"maker"`
	Swap                     chain.SwapOverrides `mapstructure:"swap"`
}

func (c *RawMemoryConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if !common.IsHexAddress(c.Maker) {
		return fmt.Errorf("invalid maker address %s for chain %v", c.Maker, *c.Id)
	}
	if c.Blocktime == 0 {
		return fmt.Errorf("blocktime must be positive for chain %v", *c.Id)
	}
	return nil
}

// NewMemoryConfig decodes the config of an in-process ledger chain.
func NewMemoryConfig(chainConfig map[string]interface{}, swapDefaults chain.SwapOverrides) (*MemoryConfig, error) {
	var c RawMemoryConfig
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

	return &MemoryConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Maker:              common.HexToAddress(c.Maker),
		Swap:               c.Swap,
	}, nil
}

// BlockInterval is the pace at which the ledger produces blocks.
func (c *MemoryConfig) BlockInterval() time.Duration {
	// nolint:gosec
	return time.Duration(c.GeneralChainConfig.Blocktime) * time.Second
}
