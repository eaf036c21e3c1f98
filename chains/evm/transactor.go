// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type TransactorClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*ethTypes.Header, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *ethTypes.Transaction) error
}

// KeyTransactor signs dynamic fee transactions with a local private key.
type KeyTransactor struct {
	client TransactorClient
	key    *ecdsa.PrivateKey
	from   common.Address

	lock sync.Mutex
}

func NewKeyTransactor(client TransactorClient, hexKey string) (*KeyTransactor, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, err
	}

	return &KeyTransactor{
		client: client,
		key:    key,
		from:   crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (t *KeyTransactor) From() common.Address {
	return t.from
}

func (t *KeyTransactor) SendTransaction(ctx context.Context, to common.Address, data []byte, value *big.Int) (common.Hash, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if value == nil {
		value = big.NewInt(0)
	}

	chainID, err := t.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	nonce, err := t.client.PendingNonceAt(ctx, t.from)
	if err != nil {
		return common.Hash{}, err
	}
	tip, err := t.client.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	head, err := t.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, err
	}
	gas, err := t.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  t.from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return common.Hash{}, err
	}

	baseFee := head.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(baseFee, big.NewInt(2)))
	tx := ethTypes.NewTx(&ethTypes.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      data,
	})
	signed, err := ethTypes.SignTx(tx, ethTypes.LatestSignerForChainID(chainID), t.key)
	if err != nil {
		return common.Hash{}, err
	}

	err = t.client.SendTransaction(ctx, signed)
	if err != nil {
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}
