// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package coordinator

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/auction"
	"github.com/sprintertech/sprinter-htlc/chains"
	"github.com/sprintertech/sprinter-htlc/secrets"
)

type Status string

const (
	Pending         Status = "pending"
	Auction         Status = "auction"
	PartiallyFilled Status = "partially_filled"
	Filled          Status = "filled"
	Expired         Status = "expired"
)

// Terminal reports whether no further fills can be admitted.
func (s Status) Terminal() bool {
	return s == Filled || s == Expired
}

type FillStatus string

const (
	FillAdmitted       FillStatus = "admitted"
	FillSecretReleased FillStatus = "secret_released"
	FillCancelled      FillStatus = "cancelled"
	FillCompleted      FillStatus = "completed"
)

func (s FillStatus) Terminal() bool {
	return s == FillCancelled || s == FillCompleted
}

type Route struct {
	SourceChain       uint64   `json:"sourceChain"`
	DestinationChain  uint64   `json:"destinationChain"`
	SourceAmount      *big.Int `json:"sourceAmount"`
	DestinationAmount *big.Int `json:"destinationAmount"`
}

func (r Route) Validate() error {
	if r.SourceChain == r.DestinationChain {
		return fmt.Errorf("source and destination chain are both %d", r.SourceChain)
	}
	if r.SourceAmount == nil || r.SourceAmount.Sign() <= 0 {
		return fmt.Errorf("source amount must be positive")
	}
	if r.DestinationAmount == nil || r.DestinationAmount.Sign() <= 0 {
		return fmt.Errorf("destination amount must be positive")
	}
	return nil
}

// DestinationShare converts a source chain amount into the proportional
// destination chain amount.
func (r Route) DestinationShare(sourceAmount *big.Int) *big.Int {
	share := new(big.Int).Mul(sourceAmount, r.DestinationAmount)
	return share.Div(share, r.SourceAmount)
}

type Fill struct {
	Index             int             `json:"index"`
	Resolver          common.Address  `json:"resolver"`
	Amount            *big.Int        `json:"amount"`
	DestinationAmount *big.Int        `json:"destinationAmount"`
	SecretIndex       int             `json:"secretIndex"`
	Hashlock          common.Hash     `json:"hashlock"`
	Deposit           *big.Int        `json:"deposit"`
	Escrow            chains.Receipt  `json:"escrow"`
	Rate              decimal.Decimal `json:"rate"`
	Status            FillStatus      `json:"status"`
	DepositReleased   bool            `json:"depositReleased"`
	AdmittedAt        time.Time       `json:"admittedAt"`
}

type Order struct {
	ID         string          `json:"id"`
	Maker      common.Address  `json:"maker"`
	Route      Route           `json:"route"`
	Auction    auction.Config  `json:"auction"`
	MarketRate decimal.Decimal `json:"marketRate"`
	CreatedAt  time.Time       `json:"createdAt"`
	// Timelock is the absolute expiry of the destination escrows
	Timelock time.Time `json:"timelock"`
	// SourceEscrow locks the maker funds under the hashlock of the last
	// secret until SourceTimelock
	SourceEscrow    chains.Receipt `json:"sourceEscrow"`
	SourceTimelock  time.Time      `json:"sourceTimelock"`
	Status          Status         `json:"status"`
	RemainingAmount *big.Int       `json:"remainingAmount"`
	MerkleRoot      common.Hash    `json:"merkleRoot"`
	Segments        uint           `json:"segments"`
	TreeDepth       uint           `json:"treeDepth"`
	SafetyDeposit   *big.Int       `json:"safetyDeposit"`
	Fills           []Fill         `json:"fills"`

	tree *secrets.Tree
}

// FilledAmount is the sum of all admitted fill amounts.
func (o *Order) FilledAmount() *big.Int {
	filled := big.NewInt(0)
	for _, f := range o.Fills {
		filled.Add(filled, f.Amount)
	}
	return filled
}

func (o *Order) lastSecretIndex() int {
	last := -1
	for _, f := range o.Fills {
		if f.SecretIndex > last {
			last = f.SecretIndex
		}
	}
	return last
}

func (o *Order) settled() bool {
	for _, f := range o.Fills {
		if !f.Status.Terminal() {
			return false
		}
	}
	return true
}

func (o *Order) copy() *Order {
	c := *o
	c.Route.SourceAmount = new(big.Int).Set(o.Route.SourceAmount)
	c.Route.DestinationAmount = new(big.Int).Set(o.Route.DestinationAmount)
	c.RemainingAmount = new(big.Int).Set(o.RemainingAmount)
	c.SafetyDeposit = new(big.Int).Set(o.SafetyDeposit)
	c.tree = nil

	c.Fills = make([]Fill, len(o.Fills))
	for i, f := range o.Fills {
		f.Amount = new(big.Int).Set(f.Amount)
		f.DestinationAmount = new(big.Int).Set(f.DestinationAmount)
		f.Deposit = new(big.Int).Set(f.Deposit)
		c.Fills[i] = f
	}
	return &c
}

type SubmitRequest struct {
	Maker common.Address
	Route Route
	// Auction overrides the default auction parameters when set
	Auction *auction.Config
	// MarketRate is taken from the rate source or the route amounts when zero
	MarketRate decimal.Decimal
	// Segments overrides the default number of secret segments when non zero
	Segments uint
}

type FillRequest struct {
	OrderID  string
	Resolver common.Address
	// Amount is denominated in the source chain asset
	Amount       *big.Int
	ResolverCost decimal.Decimal
	// GasCost is the resolver's execution cost on the destination chain,
	// the gas check is skipped when nil
	GasCost *big.Int
}

func (r FillRequest) Validate() error {
	if r.OrderID == "" {
		return fmt.Errorf("missing order id")
	}
	if r.Amount == nil || r.Amount.Sign() <= 0 {
		return fmt.Errorf("fill amount must be positive")
	}
	if r.ResolverCost.IsNegative() {
		return fmt.Errorf("resolver cost is negative")
	}
	if r.GasCost != nil && r.GasCost.Sign() < 0 {
		return fmt.Errorf("gas cost is negative")
	}
	return nil
}

// Admission is an accepted fill whose secret has not been released yet.
type Admission struct {
	OrderID     string          `json:"orderId"`
	FillIndex   int             `json:"fillIndex"`
	SecretIndex int             `json:"secretIndex"`
	Hashlock    common.Hash     `json:"hashlock"`
	Proof       secrets.Proof   `json:"proof"`
	Escrow      chains.Receipt  `json:"escrow"`
	Deposit     *big.Int        `json:"deposit"`
	TotalAmount *big.Int        `json:"totalAmount"`
	Rate        decimal.Decimal `json:"rate"`

	operationID string
	release     context.Context
}

// FillSecret is a secret released to a resolver for one fill.
type FillSecret struct {
	OrderID     string         `json:"orderId"`
	FillIndex   int            `json:"fillIndex"`
	SecretIndex int            `json:"secretIndex"`
	Resolver    common.Address `json:"resolver"`
	Secret      common.Hash    `json:"secret"`
	Proof       secrets.Proof  `json:"proof"`
	Root        common.Hash    `json:"root"`
}

type FillTicket struct {
	Admission
	Secret common.Hash `json:"secret"`
}
