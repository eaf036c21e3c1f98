// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const (
	POLL_INTERVAL = time.Second * 5
)

var (
	ErrNotWhitelisted = errors.New("resolver not whitelisted")
	ErrExpired        = errors.New("secret release deadline passed")
	ErrCancelled      = errors.New("secret release cancelled")
	ErrUnknownChain   = errors.New("no finality depth configured for chain")
)

type DepthFetcher interface {
	// CurrentFinalityDepth returns the number of blocks built on top of referenceBlock.
	CurrentFinalityDepth(ctx context.Context, chainID uint64, referenceBlock uint64) (uint64, error)
}

type State string

const (
	AwaitingFinality State = "awaiting_finality"
	Finalized        State = "finalized"
	Released         State = "released"
)

type Config struct {
	// Confirmations is the required finality depth per chain id
	Confirmations      map[uint64]uint64
	SecretSharingDelay time.Duration
	Whitelist          []common.Address
	PollInterval       time.Duration
}

// Checkpoint is a block on a chain that must reach finality.
type Checkpoint struct {
	ChainID        uint64
	ReferenceBlock uint64
}

type Request struct {
	OrderID        string
	FillIndex      int
	ChainID        uint64
	ReferenceBlock uint64
	// Checkpoints are waited for after the reference block, usually the
	// escrow of the counterparty chain
	Checkpoints []Checkpoint
	Secret      common.Hash
	Resolver    common.Address
	// Deadline bounds the whole wait, usually the order timelock
	Deadline time.Time
}

type key struct {
	orderID   string
	chainID   uint64
	fillIndex int
}

// Gate withholds secrets until the escrow chain reached finality and the
// disclosure delay elapsed.
type Gate struct {
	config  Config
	fetcher DepthFetcher

	lock   sync.RWMutex
	states map[key]State
}

func NewGate(config Config, fetcher DepthFetcher) *Gate {
	if config.PollInterval <= 0 {
		config.PollInterval = POLL_INTERVAL
	}

	return &Gate{
		config:  config,
		fetcher: fetcher,
		states:  make(map[key]State),
	}
}

// IsWhitelisted reports whether the resolver may receive secrets. An empty
// whitelist admits every resolver.
func (g *Gate) IsWhitelisted(resolver common.Address) bool {
	if len(g.config.Whitelist) == 0 {
		return true
	}
	return slices.Contains(g.config.Whitelist, resolver)
}

// RequiredDepth returns the finality depth configured for the chain.
func (g *Gate) RequiredDepth(chainID uint64) (uint64, error) {
	depth, ok := g.config.Confirmations[chainID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownChain, chainID)
	}
	return depth, nil
}

// WaitForFinality blocks until referenceBlock on the chain is buried under the
// configured number of blocks.
func (g *Gate) WaitForFinality(ctx context.Context, chainID uint64, referenceBlock uint64) error {
	required, err := g.RequiredDepth(chainID)
	if err != nil {
		return err
	}

	for {
		depth, err := g.fetcher.CurrentFinalityDepth(ctx, chainID, referenceBlock)
		if err != nil {
			log.Warn().Uint64("chainID", chainID).Msgf("Error fetching finality depth: %s", err)
		} else if depth >= required {
			return nil
		} else {
			log.Debug().
				Uint64("chainID", chainID).
				Uint64("referenceBlock", referenceBlock).
				Msgf("Waiting for finality %d/%d", depth, required)
		}

		if err := sleep(ctx, g.config.PollInterval); err != nil {
			return err
		}
	}
}

// ReleaseSecret returns the secret once the chain is final and the disclosure
// delay passed. The wait is aborted when the context is cancelled or the
// request deadline passes.
func (g *Gate) ReleaseSecret(ctx context.Context, req Request) (common.Hash, error) {
	if !g.IsWhitelisted(req.Resolver) {
		return common.Hash{}, ErrNotWhitelisted
	}

	if !req.Deadline.IsZero() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, req.Deadline)
		defer cancel()
	}

	k := key{orderID: req.OrderID, chainID: req.ChainID, fillIndex: req.FillIndex}
	g.setState(k, AwaitingFinality)
	defer g.clearState(k)

	checkpoints := append([]Checkpoint{{ChainID: req.ChainID, ReferenceBlock: req.ReferenceBlock}}, req.Checkpoints...)
	for _, checkpoint := range checkpoints {
		err := g.WaitForFinality(ctx, checkpoint.ChainID, checkpoint.ReferenceBlock)
		if err != nil {
			return common.Hash{}, waitError(err)
		}
	}
	g.setState(k, Finalized)

	log.Debug().
		Str("orderID", req.OrderID).
		Int("fill", req.FillIndex).
		Uint64("chainID", req.ChainID).
		Msgf("Chains final, delaying secret disclosure by %s", g.config.SecretSharingDelay)
	if err := sleep(ctx, g.config.SecretSharingDelay); err != nil {
		return common.Hash{}, waitError(err)
	}

	g.setState(k, Released)
	log.Info().
		Str("orderID", req.OrderID).
		Str("resolver", req.Resolver.Hex()).
		Msg("Released secret")
	return req.Secret, nil
}

// State returns the release state of a fill of the order on the chain.
func (g *Gate) State(orderID string, chainID uint64, fillIndex int) (State, bool) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	state, ok := g.states[key{orderID: orderID, chainID: chainID, fillIndex: fillIndex}]
	return state, ok
}

// Forget drops the release state kept for the order.
func (g *Gate) Forget(orderID string) {
	g.lock.Lock()
	defer g.lock.Unlock()

	for k := range g.states {
		if k.orderID == orderID {
			delete(g.states, k)
		}
	}
}

func (g *Gate) setState(k key, state State) {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.states[k] = state
}

func (g *Gate) clearState(k key) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.states[k] != Released {
		delete(g.states, k)
	}
}

func waitError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrExpired
	case errors.Is(err, context.Canceled):
		return ErrCancelled
	default:
		return err
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
