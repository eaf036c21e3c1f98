// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	EscrowCreatedSig         EventSig = "EscrowCreated(bytes32,address,address,uint256,bytes32,uint256,string)"
	EscrowPartiallyFilledSig EventSig = "EscrowPartiallyFilled(bytes32,address,uint256,uint256,bytes32,string)"
	EscrowCompletedSig       EventSig = "EscrowCompleted(bytes32,address,bytes32,string)"
)

// EscrowCreated holds the escrow creation event data
type EscrowCreated struct {
	EscrowID common.Hash
	Maker    common.Address
	Taker    common.Address

	Amount       *big.Int
	HashLock     [32]byte
	TimeLock     *big.Int
	SuiOrderHash string
}

// EscrowFilled holds the data of a partial or final escrow fill
type EscrowFilled struct {
	EscrowID common.Hash
	Resolver common.Address

	Amount          *big.Int
	RemainingAmount *big.Int
	Secret          [32]byte
	SuiOrderHash    string
}
