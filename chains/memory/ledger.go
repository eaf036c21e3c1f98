// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package memory

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-htlc/chains"
	"github.com/sprintertech/sprinter-htlc/secrets"
)

// Ledger is an in-process escrow chain. It enforces the hashlock and
// timelock rules of the escrow contract and is used for local runs and tests.
type Ledger struct {
	chainID uint64
	maker   common.Address
	now     func() time.Time

	lock    sync.Mutex
	head    uint64
	nonce   uint64
	baseFee *big.Int
	escrows map[common.Hash]*chains.Escrow
}

func NewLedger(chainID uint64, maker common.Address, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}

	return &Ledger{
		chainID: chainID,
		maker:   maker,
		now:     now,
		baseFee: big.NewInt(30_000_000_000),
		escrows: make(map[common.Hash]*chains.Escrow),
	}
}

func (l *Ledger) CreateEscrow(ctx context.Context, params chains.EscrowParams) (*chains.Receipt, error) {
	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("invalid escrow amount")
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if !params.Timelock.After(l.now()) {
		return nil, chains.ErrTimelockExpired
	}

	l.head++
	l.nonce++
	id := l.escrowID(params)
	escrow := &chains.Escrow{
		ID:              id,
		Maker:           l.maker,
		Taker:           params.Taker,
		TotalAmount:     new(big.Int).Set(params.Amount),
		RemainingAmount: new(big.Int).Set(params.Amount),
		Hashlock:        params.Hashlock,
		Timelock:        params.Timelock,
		CreatedAt:       l.now(),
		OrderID:         params.OrderID,
	}
	l.escrows[id] = escrow

	log.Debug().Uint64("chainID", l.chainID).Str("escrowID", id.Hex()).Msg("Created escrow")
	return l.receipt(id), nil
}

func (l *Ledger) FillEscrow(ctx context.Context, id common.Hash, amount *big.Int, secret common.Hash) (*chains.Receipt, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	escrow, ok := l.escrows[id]
	if !ok {
		return nil, chains.ErrEscrowNotFound
	}
	switch {
	case escrow.Refunded:
		return nil, chains.ErrEscrowRefunded
	case escrow.Completed:
		return nil, chains.ErrEscrowCompleted
	case !l.now().Before(escrow.Timelock):
		return nil, chains.ErrTimelockExpired
	case !secrets.VerifyHashLock(secret, escrow.Hashlock):
		return nil, chains.ErrInvalidSecret
	case amount == nil || amount.Sign() <= 0 || amount.Cmp(escrow.RemainingAmount) > 0:
		return nil, chains.ErrAmountExceeded
	}

	l.head++
	escrow.RemainingAmount.Sub(escrow.RemainingAmount, amount)
	if escrow.RemainingAmount.Sign() == 0 {
		escrow.Completed = true
	}
	return l.receipt(id), nil
}

// Refund returns the remaining funds of an escrow once its timelock passed.
func (l *Ledger) Refund(ctx context.Context, id common.Hash) (*chains.Receipt, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	escrow, ok := l.escrows[id]
	if !ok {
		return nil, chains.ErrEscrowNotFound
	}
	if escrow.Completed {
		return nil, chains.ErrEscrowCompleted
	}
	if escrow.Refunded {
		return nil, chains.ErrEscrowRefunded
	}
	if l.now().Before(escrow.Timelock) {
		return nil, chains.ErrTimelockActive
	}

	l.head++
	escrow.Refunded = true
	return l.receipt(id), nil
}

func (l *Ledger) GetEscrow(ctx context.Context, id common.Hash) (*chains.Escrow, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	escrow, ok := l.escrows[id]
	if !ok {
		return nil, chains.ErrEscrowNotFound
	}

	snapshot := *escrow
	snapshot.TotalAmount = new(big.Int).Set(escrow.TotalAmount)
	snapshot.RemainingAmount = new(big.Int).Set(escrow.RemainingAmount)
	return &snapshot, nil
}

func (l *Ledger) CurrentFinalityDepth(ctx context.Context, chainID uint64, referenceBlock uint64) (uint64, error) {
	if chainID != l.chainID {
		return 0, fmt.Errorf("ledger serves chain %d, not %d", l.chainID, chainID)
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if referenceBlock > l.head {
		return 0, nil
	}
	return l.head - referenceBlock, nil
}

func (l *Ledger) BaseFee(ctx context.Context, chainID uint64) (*big.Int, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return new(big.Int).Set(l.baseFee), nil
}

// SetBaseFee changes the base fee reported for new blocks.
func (l *Ledger) SetBaseFee(baseFee *big.Int) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.baseFee = new(big.Int).Set(baseFee)
}

// Mine appends empty blocks to the chain.
func (l *Ledger) Mine(blocks uint64) uint64 {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.head += blocks
	return l.head
}

// Produce mines a block every interval until the context is cancelled.
func (l *Ledger) Produce(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Mine(1)
		case <-ctx.Done():
			return
		}
	}
}

func (l *Ledger) escrowID(params chains.EscrowParams) common.Hash {
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, l.nonce)
	return crypto.Keccak256Hash(
		l.maker.Bytes(),
		params.Taker.Bytes(),
		common.LeftPadBytes(params.Amount.Bytes(), 32),
		params.Hashlock.Bytes(),
		nonce,
	)
}

func (l *Ledger) receipt(id common.Hash) *chains.Receipt {
	txNonce := make([]byte, 8)
	binary.BigEndian.PutUint64(txNonce, l.head)
	return &chains.Receipt{
		EscrowID:    id,
		TxHash:      crypto.Keccak256Hash(id.Bytes(), txNonce),
		BlockNumber: l.head,
	}
}
