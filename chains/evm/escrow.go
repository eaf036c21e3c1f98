// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-htlc/chains"
	"github.com/sprintertech/sprinter-htlc/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-htlc/chains/evm/calls/events"
)

type Client interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*ethTypes.Header, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethTypes.Receipt, error)
}

// TxSender signs and broadcasts transactions on behalf of the coordinator.
type TxSender interface {
	From() common.Address
	SendTransaction(ctx context.Context, to common.Address, data []byte, value *big.Int) (common.Hash, error)
}

// EscrowClient is the escrow adapter of an EVM chain.
type EscrowClient struct {
	chainID       uint64
	client        Client
	sender        TxSender
	contract      *contracts.EscrowContract
	parser        *events.Parser
	retryInterval time.Duration
	now           func() time.Time
}

func NewEscrowClient(
	chainID uint64,
	client Client,
	sender TxSender,
	escrow common.Address,
	retryInterval time.Duration,
) *EscrowClient {
	return &EscrowClient{
		chainID:       chainID,
		client:        client,
		sender:        sender,
		contract:      contracts.NewEscrowContract(client, escrow),
		parser:        events.NewParser(),
		retryInterval: retryInterval,
		now:           time.Now,
	}
}

func (c *EscrowClient) CreateEscrow(ctx context.Context, params chains.EscrowParams) (*chains.Receipt, error) {
	timelock := big.NewInt(params.Timelock.Unix())
	data, err := c.contract.CreateEscrowData(params.Hashlock, timelock, params.Taker, params.OrderID)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, data, params.Amount)
	if err != nil {
		return nil, err
	}

	escrowID := c.escrowID(receipt, params, timelock)
	log.Info().
		Uint64("chainID", c.chainID).
		Str("escrowID", escrowID.Hex()).
		Str("tx", receipt.TxHash.Hex()).
		Msg("Created escrow")
	return &chains.Receipt{
		EscrowID:    escrowID,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

func (c *EscrowClient) FillEscrow(ctx context.Context, id common.Hash, amount *big.Int, secret common.Hash) (*chains.Receipt, error) {
	data, err := c.contract.FillEscrowData(id, amount, secret)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, data, nil)
	if err != nil {
		return nil, err
	}

	if fill, err := c.parser.EscrowFilled(receipt, c.contract.Address()); err == nil {
		log.Debug().
			Str("escrowID", id.Hex()).
			Str("remaining", fmt.Sprint(fill.RemainingAmount)).
			Msg("Escrow filled")
	}
	return &chains.Receipt{
		EscrowID:    id,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

func (c *EscrowClient) GetEscrow(ctx context.Context, id common.Hash) (*chains.Escrow, error) {
	state, err := c.contract.Escrow(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.Maker == (common.Address{}) {
		return nil, fmt.Errorf("%w: %s", chains.ErrEscrowNotFound, id.Hex())
	}

	return &chains.Escrow{
		ID:              id,
		Maker:           state.Maker,
		Taker:           state.Taker,
		TotalAmount:     state.TotalAmount,
		RemainingAmount: state.RemainingAmount,
		Hashlock:        state.HashLock,
		Timelock:        time.Unix(state.TimeLock.Int64(), 0),
		Completed:       state.Completed,
		Refunded:        state.Refunded,
		CreatedAt:       time.Unix(state.CreatedAt.Int64(), 0),
		OrderID:         state.SuiOrderHash,
	}, nil
}

func (c *EscrowClient) CurrentFinalityDepth(ctx context.Context, chainID uint64, referenceBlock uint64) (uint64, error) {
	head, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}
	if head < referenceBlock {
		return 0, nil
	}
	return head - referenceBlock, nil
}

// BaseFee returns the base fee of the latest block.
func (c *EscrowClient) BaseFee(ctx context.Context, chainID uint64) (*big.Int, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	if header.BaseFee == nil {
		return nil, fmt.Errorf("chain %d has no base fee", c.chainID)
	}
	return header.BaseFee, nil
}

func (c *EscrowClient) transact(ctx context.Context, data []byte, value *big.Int) (*ethTypes.Receipt, error) {
	hash, err := c.sender.SendTransaction(ctx, c.contract.Address(), data, value)
	if err != nil {
		return nil, err
	}

	receipt, err := c.waitForReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	if receipt.Status != ethTypes.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted", hash.Hex())
	}
	return receipt, nil
}

func (c *EscrowClient) waitForReceipt(ctx context.Context, hash common.Hash) (*ethTypes.Receipt, error) {
	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			log.Warn().Msgf("Error fetching transaction receipt: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timed out waiting for receipt of %s", hash.Hex())
		case <-time.After(c.retryInterval):
		}
	}
}

func (c *EscrowClient) escrowID(receipt *ethTypes.Receipt, params chains.EscrowParams, timelock *big.Int) common.Hash {
	created, err := c.parser.EscrowCreated(receipt, c.contract.Address())
	if err == nil {
		return created.EscrowID
	}

	log.Warn().Msgf("Could not read escrow id from logs, deriving it: %s", err)
	return DeriveEscrowID(
		c.sender.From(),
		params.Taker,
		params.Amount,
		params.Hashlock,
		timelock,
		big.NewInt(c.now().Unix()),
		receipt.BlockNumber,
	)
}

// DeriveEscrowID computes the escrow id the contract assigns:
// keccak256(abi.encodePacked(maker, taker, amount, hashLock, timeLock, timestamp, block)).
func DeriveEscrowID(
	maker common.Address,
	taker common.Address,
	amount *big.Int,
	hashlock common.Hash,
	timelock *big.Int,
	timestamp *big.Int,
	block *big.Int,
) common.Hash {
	return crypto.Keccak256Hash(
		maker.Bytes(),
		taker.Bytes(),
		math.U256Bytes(new(big.Int).Set(amount)),
		hashlock.Bytes(),
		math.U256Bytes(new(big.Int).Set(timelock)),
		math.U256Bytes(new(big.Int).Set(timestamp)),
		math.U256Bytes(new(big.Int).Set(block)),
	)
}
