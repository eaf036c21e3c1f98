// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-htlc/chains/evm/calls/consts"
)

type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// EscrowState is the decoded getEscrow result.
type EscrowState struct {
	Maker           common.Address
	Taker           common.Address
	TotalAmount     *big.Int
	RemainingAmount *big.Int
	HashLock        common.Hash
	TimeLock        *big.Int
	Completed       bool
	Refunded        bool
	CreatedAt       *big.Int
	SuiOrderHash    string
}

type EscrowContract struct {
	abi     abi.ABI
	address common.Address
	caller  ContractCaller
}

func NewEscrowContract(caller ContractCaller, address common.Address) *EscrowContract {
	return &EscrowContract{
		abi:     consts.EscrowABI,
		address: address,
		caller:  caller,
	}
}

func (c *EscrowContract) Address() common.Address {
	return c.address
}

// CreateEscrowData packs the createEscrow call. The escrowed amount is sent as tx value.
func (c *EscrowContract) CreateEscrowData(hashLock common.Hash, timeLock *big.Int, taker common.Address, orderID string) ([]byte, error) {
	return c.abi.Pack("createEscrow", hashLock, timeLock, taker, orderID)
}

func (c *EscrowContract) FillEscrowData(escrowID common.Hash, amount *big.Int, secret common.Hash) ([]byte, error) {
	return c.abi.Pack("fillEscrow", escrowID, amount, secret)
}

func (c *EscrowContract) RefundEscrowData(escrowID common.Hash) ([]byte, error) {
	return c.abi.Pack("refundEscrow", escrowID)
}

func (c *EscrowContract) Escrow(ctx context.Context, escrowID common.Hash) (*EscrowState, error) {
	input, err := c.abi.Pack("getEscrow", escrowID)
	if err != nil {
		return nil, err
	}

	output, err := c.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: input,
	}, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.abi.Unpack("getEscrow", output)
	if err != nil {
		return nil, err
	}
	if len(res) != 10 {
		return nil, fmt.Errorf("unexpected getEscrow output length %d", len(res))
	}

	return &EscrowState{
		Maker:           *abi.ConvertType(res[0], new(common.Address)).(*common.Address),
		Taker:           *abi.ConvertType(res[1], new(common.Address)).(*common.Address),
		TotalAmount:     *abi.ConvertType(res[2], new(*big.Int)).(**big.Int),
		RemainingAmount: *abi.ConvertType(res[3], new(*big.Int)).(**big.Int),
		HashLock:        common.Hash(*abi.ConvertType(res[4], new([32]byte)).(*[32]byte)),
		TimeLock:        *abi.ConvertType(res[5], new(*big.Int)).(**big.Int),
		Completed:       *abi.ConvertType(res[6], new(bool)).(*bool),
		Refunded:        *abi.ConvertType(res[7], new(bool)).(*bool),
		CreatedAt:       *abi.ConvertType(res[8], new(*big.Int)).(**big.Int),
		SuiOrderHash:    *abi.ConvertType(res[9], new(string)).(*string),
	}, nil
}
