// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-htlc/chains/evm/calls/consts"
)

// Parser decodes escrow events out of transaction receipts.
type Parser struct {
	abi abi.ABI
}

func NewParser() *Parser {
	return &Parser{
		abi: consts.EscrowABI,
	}
}

// EscrowCreated returns the creation event emitted by the escrow contract in the receipt.
func (p *Parser) EscrowCreated(receipt *ethTypes.Receipt, contract common.Address) (*EscrowCreated, error) {
	for _, l := range receipt.Logs {
		if l.Address != contract || len(l.Topics) != 4 || l.Topics[0] != EscrowCreatedSig.GetTopic() {
			continue
		}

		ec, err := p.UnpackEscrowCreated(l)
		if err != nil {
			log.Err(err).Msgf("failed unpacking escrow created event log")
			continue
		}
		return ec, nil
	}

	return nil, fmt.Errorf("no escrow created event in tx %s", receipt.TxHash.Hex())
}

func (p *Parser) UnpackEscrowCreated(l *ethTypes.Log) (*EscrowCreated, error) {
	var ec EscrowCreated

	err := p.abi.UnpackIntoInterface(&ec, "EscrowCreated", l.Data)
	if err != nil {
		return nil, err
	}

	ec.EscrowID = l.Topics[1]
	ec.Maker = common.BytesToAddress(l.Topics[2].Bytes())
	ec.Taker = common.BytesToAddress(l.Topics[3].Bytes())
	return &ec, nil
}

// EscrowFilled returns the partial fill or completion event of the escrow in the receipt.
func (p *Parser) EscrowFilled(receipt *ethTypes.Receipt, contract common.Address) (*EscrowFilled, error) {
	for _, l := range receipt.Logs {
		if l.Address != contract || len(l.Topics) != 3 {
			continue
		}

		var ef EscrowFilled
		var err error
		switch l.Topics[0] {
		case EscrowPartiallyFilledSig.GetTopic():
			err = p.abi.UnpackIntoInterface(&ef, "EscrowPartiallyFilled", l.Data)
		case EscrowCompletedSig.GetTopic():
			err = p.abi.UnpackIntoInterface(&ef, "EscrowCompleted", l.Data)
		default:
			continue
		}
		if err != nil {
			log.Err(err).Msgf("failed unpacking escrow fill event log")
			continue
		}

		ef.EscrowID = l.Topics[1]
		ef.Resolver = common.BytesToAddress(l.Topics[2].Bytes())
		return &ef, nil
	}

	return nil, fmt.Errorf("no escrow fill event in tx %s", receipt.TxHash.Hex())
}
