// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrEscrowNotFound    = errors.New("escrow not found")
	ErrEscrowRefunded    = errors.New("escrow refunded")
	ErrEscrowCompleted   = errors.New("escrow completed")
	ErrInvalidSecret     = errors.New("secret does not open hashlock")
	ErrTimelockExpired   = errors.New("escrow timelock expired")
	ErrTimelockActive    = errors.New("escrow timelock still active")
	ErrAmountExceeded    = errors.New("fill amount exceeds remaining escrow amount")
	ErrAdapterNotFound   = errors.New("no escrow adapter for chain")
	ErrBaseFeeNotSupport = errors.New("chain adapter does not provide base fee")
)

// Escrow mirrors the on-chain state of a hashlock/timelock escrow.
type Escrow struct {
	ID              common.Hash
	Maker           common.Address
	Taker           common.Address
	TotalAmount     *big.Int
	RemainingAmount *big.Int
	Hashlock        common.Hash
	Timelock        time.Time
	Completed       bool
	Refunded        bool
	CreatedAt       time.Time
	OrderID         string
}

// Validate checks the escrow invariants: remaining never exceeds the total
// and a refunded escrow is never completed.
func (e *Escrow) Validate() error {
	if e.TotalAmount == nil || e.RemainingAmount == nil {
		return fmt.Errorf("escrow %s amounts not set", e.ID.Hex())
	}
	if e.RemainingAmount.Sign() < 0 || e.RemainingAmount.Cmp(e.TotalAmount) > 0 {
		return fmt.Errorf("escrow %s remaining amount %s out of range", e.ID.Hex(), e.RemainingAmount)
	}
	if e.Completed && e.Refunded {
		return fmt.Errorf("escrow %s both completed and refunded", e.ID.Hex())
	}
	return nil
}

type EscrowParams struct {
	Hashlock common.Hash
	Timelock time.Time
	Amount   *big.Int
	Taker    common.Address
	OrderID  string
}

// Receipt is the inclusion proof of an escrow transaction.
type Receipt struct {
	EscrowID    common.Hash
	TxHash      common.Hash
	BlockNumber uint64
}

// EscrowAdapter is the chain specific side of an atomic swap.
type EscrowAdapter interface {
	CreateEscrow(ctx context.Context, params EscrowParams) (*Receipt, error)
	FillEscrow(ctx context.Context, id common.Hash, amount *big.Int, secret common.Hash) (*Receipt, error)
	GetEscrow(ctx context.Context, id common.Hash) (*Escrow, error)
	CurrentFinalityDepth(ctx context.Context, chainID uint64, referenceBlock uint64) (uint64, error)
}

type BaseFeeReader interface {
	BaseFee(ctx context.Context, chainID uint64) (*big.Int, error)
}

// Adapters routes calls to the escrow adapter of each chain.
type Adapters map[uint64]EscrowAdapter

func (a Adapters) Adapter(chainID uint64) (EscrowAdapter, error) {
	adapter, ok := a[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAdapterNotFound, chainID)
	}
	return adapter, nil
}

func (a Adapters) CurrentFinalityDepth(ctx context.Context, chainID uint64, referenceBlock uint64) (uint64, error) {
	adapter, err := a.Adapter(chainID)
	if err != nil {
		return 0, err
	}
	return adapter.CurrentFinalityDepth(ctx, chainID, referenceBlock)
}

func (a Adapters) BaseFee(ctx context.Context, chainID uint64) (*big.Int, error) {
	adapter, err := a.Adapter(chainID)
	if err != nil {
		return nil, err
	}

	reader, ok := adapter.(BaseFeeReader)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBaseFeeNotSupport, chainID)
	}
	return reader.BaseFee(ctx, chainID)
}
