// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package coordinator

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/auction"
	"github.com/sprintertech/sprinter-htlc/chains"
	"github.com/sprintertech/sprinter-htlc/finality"
	"github.com/sprintertech/sprinter-htlc/secrets"
	"github.com/sprintertech/sprinter-htlc/security"
)

// RequestFill admits the fill and blocks until its secret is released.
func (c *Coordinator) RequestFill(ctx context.Context, req FillRequest) (*FillTicket, error) {
	admission, err := c.AdmitFill(ctx, req)
	if err != nil {
		return nil, err
	}

	return c.ReleaseFillSecret(ctx, admission)
}

// AdmitFill validates the fill against the order, locks the destination
// escrow and records the fill. The secret is released separately by
// ReleaseFillSecret. Rejected fills leave the order untouched.
func (c *Coordinator) AdmitFill(ctx context.Context, req FillRequest) (*Admission, error) {
	admission, err := c.admitFill(ctx, req)
	if err != nil {
		c.metrics.TrackFillRejected(KindOf(err))
		log.Debug().
			Str("orderID", req.OrderID).
			Str("resolver", req.Resolver.Hex()).
			Msgf("Fill rejected: %s", err)
		return nil, err
	}

	return admission, nil
}

func (c *Coordinator) admitFill(ctx context.Context, req FillRequest) (*Admission, error) {
	if err := req.Validate(); err != nil {
		return nil, reject(Validation, req.OrderID, fmt.Errorf("%w: %s", ErrInvalidFill, err))
	}
	if !c.gate.IsWhitelisted(req.Resolver) {
		return nil, reject(Authorization, req.OrderID, finality.ErrNotWhitelisted)
	}

	entry, err := c.entry(req.OrderID)
	if err != nil {
		return nil, err
	}

	route := entry.order.Route
	destinationAmount := route.DestinationShare(req.Amount)
	if destinationAmount.Sign() <= 0 {
		return nil, reject(Validation, req.OrderID, fmt.Errorf("%w: fill too small for destination asset", ErrInvalidFill))
	}

	operationID := fillOperationID(req.OrderID, req.Resolver)
	if err := c.guard.Check(operationID, req.Resolver, security.ResolverAction); err != nil {
		return nil, c.securityRejection(req.OrderID, err)
	}
	admitted := false
	defer func() {
		if !admitted {
			c.guard.Release(operationID)
		}
	}()

	entry.lock.Lock()
	defer entry.lock.Unlock()
	order := entry.order

	switch order.Status {
	case Pending:
		return nil, reject(Validation, order.ID, ErrNotBroadcast)
	case Filled:
		return nil, reject(Fatal, order.ID, ErrOrderFilled)
	case Expired:
		return nil, reject(Fatal, order.ID, ErrExpired)
	}

	pricer := auction.NewPricer(order.Auction, c.now)
	if pricer.Status(order.CreatedAt) == auction.StatusExpired {
		c.expireLocked(entry)
		return nil, reject(Fatal, order.ID, ErrExpired)
	}

	rate := pricer.CurrentRate(order.CreatedAt, order.MarketRate)
	if !pricer.IsProfitable(rate, req.ResolverCost) {
		return nil, reject(Economic, order.ID, fmt.Errorf("%w: rate %s, cost %s", ErrNotProfitable, rate, req.ResolverCost))
	}
	if req.Amount.Cmp(order.RemainingAmount) > 0 {
		return nil, reject(Validation, order.ID, fmt.Errorf("%w: requested %s, remaining %s", ErrInsufficientRemaining, req.Amount, order.RemainingAmount))
	}

	filledAfter := new(big.Int).Sub(order.Route.SourceAmount, order.RemainingAmount)
	filledAfter.Add(filledAfter, req.Amount)
	percentage := decimal.NewFromBigInt(filledAfter, 2).Div(decimal.NewFromBigInt(order.Route.SourceAmount, 0))
	secret, secretIndex, err := order.tree.SecretForFill(percentage)
	if err != nil {
		return nil, reject(Fatal, order.ID, err)
	}
	if secretIndex <= order.lastSecretIndex() {
		return nil, reject(Validation, order.ID, fmt.Errorf("%w: segment %d", ErrSegmentConsumed, secretIndex))
	}
	proof, err := order.tree.Proof(secretIndex)
	if err != nil {
		return nil, reject(Fatal, order.ID, err)
	}

	// last check before funds move, it records a base fee sample
	if req.GasCost != nil {
		ok, err := c.adjuster.ShouldExecute(ctx, decimal.NewFromBigInt(destinationAmount, 0), req.GasCost, route.DestinationChain)
		if err != nil {
			return nil, reject(External, order.ID, err)
		}
		if !ok {
			return nil, reject(Economic, order.ID, ErrGasUnfavourable)
		}
	}

	funding, err := c.deposits[route.DestinationChain].CreateEscrowWithDeposit(destinationAmount, req.Resolver)
	if err != nil {
		return nil, reject(Validation, order.ID, err)
	}
	adapter, err := c.adapters.Adapter(route.DestinationChain)
	if err != nil {
		return nil, reject(Fatal, order.ID, err)
	}
	hashlock := secrets.HashLock(secret)
	receipt, err := adapter.CreateEscrow(ctx, chains.EscrowParams{
		Hashlock: hashlock,
		Timelock: order.Timelock,
		Amount:   funding.TotalAmount,
		Taker:    order.Maker,
		OrderID:  order.ID,
	})
	if err != nil {
		return nil, reject(External, order.ID, fmt.Errorf("failed creating destination escrow: %w", err))
	}

	fill := Fill{
		Index:             len(order.Fills),
		Resolver:          req.Resolver,
		Amount:            new(big.Int).Set(req.Amount),
		DestinationAmount: destinationAmount,
		SecretIndex:       secretIndex,
		Hashlock:          hashlock,
		Deposit:           funding.Deposit,
		Escrow:            *receipt,
		Rate:              rate,
		Status:            FillAdmitted,
		AdmittedAt:        c.now(),
	}
	order.Fills = append(order.Fills, fill)
	order.RemainingAmount.Sub(order.RemainingAmount, req.Amount)
	order.SafetyDeposit.Add(order.SafetyDeposit, funding.Deposit)
	if order.RemainingAmount.Sign() == 0 {
		order.Status = Filled
	} else {
		order.Status = PartiallyFilled
	}

	release, cancel := context.WithCancel(context.Background())
	entry.pending[fill.Index] = pendingRelease{ctx: release, cancel: cancel}
	admitted = true

	c.metrics.TrackFillAdmitted(order.Route)
	log.Info().
		Str("orderID", order.ID).
		Str("resolver", req.Resolver.Hex()).
		Int("fill", fill.Index).
		Int("secretIndex", secretIndex).
		Str("amount", req.Amount.String()).
		Str("remaining", order.RemainingAmount.String()).
		Str("rate", rate.String()).
		Str("escrowID", receipt.EscrowID.Hex()).
		Msg("Fill admitted")
	return &Admission{
		OrderID:     order.ID,
		FillIndex:   fill.Index,
		SecretIndex: secretIndex,
		Hashlock:    hashlock,
		Proof:       proof,
		Escrow:      *receipt,
		Deposit:     new(big.Int).Set(funding.Deposit),
		TotalAmount: new(big.Int).Set(funding.TotalAmount),
		Rate:        rate,
		operationID: operationID,
		release:     release,
	}, nil
}

// ReadmitFill prepares a new secret release for an admitted fill whose
// previous release was interrupted by a pause or a cancelled caller. Only
// the resolver of the fill can readmit it.
func (c *Coordinator) ReadmitFill(ctx context.Context, orderID string, fillIndex int, resolver common.Address) (*Admission, error) {
	admission, err := c.readmitFill(orderID, fillIndex, resolver)
	if err != nil {
		c.metrics.TrackFillRejected(KindOf(err))
		return nil, err
	}

	return admission, nil
}

func (c *Coordinator) readmitFill(orderID string, fillIndex int, resolver common.Address) (*Admission, error) {
	entry, err := c.entry(orderID)
	if err != nil {
		return nil, err
	}

	operationID := fillOperationID(orderID, resolver)
	if err := c.guard.Check(operationID, resolver, security.ResolverAction); err != nil {
		return nil, c.securityRejection(orderID, err)
	}
	readmitted := false
	defer func() {
		if !readmitted {
			c.guard.Release(operationID)
		}
	}()

	entry.lock.Lock()
	defer entry.lock.Unlock()
	order := entry.order
	if fillIndex < 0 || fillIndex >= len(order.Fills) {
		return nil, reject(Validation, orderID, ErrFillNotFound)
	}
	fill := order.Fills[fillIndex]
	switch {
	case fill.Resolver != resolver:
		return nil, reject(Authorization, orderID, security.ErrAccessDenied)
	case order.Status == Expired:
		return nil, reject(Fatal, orderID, ErrExpired)
	case fill.Status != FillAdmitted:
		return nil, reject(Validation, orderID, fmt.Errorf("%w: fill is %s", ErrFillNotPending, fill.Status))
	}
	if _, ok := entry.pending[fillIndex]; ok {
		return nil, reject(Concurrency, orderID, ErrReleaseInProgress)
	}

	proof, err := order.tree.Proof(fill.SecretIndex)
	if err != nil {
		return nil, reject(Fatal, orderID, err)
	}

	release, cancel := context.WithCancel(context.Background())
	entry.pending[fillIndex] = pendingRelease{ctx: release, cancel: cancel}
	readmitted = true

	log.Info().
		Str("orderID", orderID).
		Str("resolver", resolver.Hex()).
		Int("fill", fillIndex).
		Msg("Fill readmitted for secret release")
	return &Admission{
		OrderID:     orderID,
		FillIndex:   fillIndex,
		SecretIndex: fill.SecretIndex,
		Hashlock:    fill.Hashlock,
		Proof:       proof,
		Escrow:      fill.Escrow,
		Deposit:     new(big.Int).Set(fill.Deposit),
		TotalAmount: new(big.Int).Add(fill.DestinationAmount, fill.Deposit),
		Rate:        fill.Rate,
		operationID: operationID,
		release:     release,
	}, nil
}

// ReleaseFillSecret waits for the source and destination escrows to become
// final and hands out the fill secret. A release interrupted by a pause or a
// cancelled ctx leaves the fill admitted so it can be readmitted. A release
// aborted by the order expiring cancels the fill.
func (c *Coordinator) ReleaseFillSecret(ctx context.Context, admission *Admission) (*FillTicket, error) {
	defer c.guard.Release(admission.operationID)

	c.lock.RLock()
	entry, ok := c.orders[admission.OrderID]
	c.lock.RUnlock()
	if !ok {
		return nil, reject(Fatal, admission.OrderID, ErrExpired)
	}

	entry.lock.Lock()
	order := entry.order
	if admission.FillIndex < 0 || admission.FillIndex >= len(order.Fills) {
		entry.lock.Unlock()
		return nil, reject(Validation, order.ID, ErrFillNotFound)
	}
	fill := order.Fills[admission.FillIndex]
	if fill.Status != FillAdmitted {
		c.dropPendingLocked(entry, fill.Index, admission.release)
		entry.lock.Unlock()
		return nil, reject(Validation, order.ID, fmt.Errorf("%w: fill is %s", ErrFillNotPending, fill.Status))
	}
	req := finality.Request{
		OrderID:        order.ID,
		FillIndex:      fill.Index,
		ChainID:        order.Route.DestinationChain,
		ReferenceBlock: fill.Escrow.BlockNumber,
		Checkpoints: []finality.Checkpoint{{
			ChainID:        order.Route.SourceChain,
			ReferenceBlock: order.SourceEscrow.BlockNumber,
		}},
		Secret:         order.tree.Secrets[fill.SecretIndex],
		Resolver:       fill.Resolver,
		Deadline:       order.Timelock,
	}
	root := order.MerkleRoot
	entry.lock.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if admission.release != nil {
		stop := context.AfterFunc(admission.release, cancel)
		defer stop()
	}

	fillID := fmt.Sprintf("%s:%d", admission.OrderID, admission.FillIndex)
	c.metrics.StartSecretRelease(fillID)
	secret, err := c.gate.ReleaseSecret(ctx, req)

	entry.lock.Lock()
	defer entry.lock.Unlock()
	c.dropPendingLocked(entry, admission.FillIndex, admission.release)

	stored := &entry.order.Fills[admission.FillIndex]
	if err != nil {
		rejection := c.releaseRejection(entry.order, err)
		if errors.Is(err, finality.ErrCancelled) && entry.order.Status != Expired {
			c.metrics.EndSecretRelease(fillID, FillAdmitted)
			log.Warn().
				Str("orderID", admission.OrderID).
				Int("fill", admission.FillIndex).
				Msgf("Secret release interrupted, fill can be readmitted: %s", rejection)
			return nil, rejection
		}

		stored.Status = FillCancelled
		c.metrics.EndSecretRelease(fillID, FillCancelled)
		log.Warn().
			Str("orderID", admission.OrderID).
			Int("fill", admission.FillIndex).
			Msgf("Secret release aborted: %s", rejection)
		c.archiveLocked(entry, false)
		return nil, rejection
	}

	stored.Status = FillSecretReleased
	c.metrics.EndSecretRelease(fillID, FillSecretReleased)

	fillSecret := FillSecret{
		OrderID:     admission.OrderID,
		FillIndex:   admission.FillIndex,
		SecretIndex: admission.SecretIndex,
		Resolver:    req.Resolver,
		Secret:      secret,
		Proof:       admission.Proof,
		Root:        root,
	}
	if c.secrets != nil {
		select {
		case c.secrets <- fillSecret:
		default:
			log.Warn().Str("orderID", admission.OrderID).Msg("Secret sink full, dropping released secret")
		}
	}

	return &FillTicket{
		Admission: *admission,
		Secret:    secret,
	}, nil
}

func (c *Coordinator) releaseRejection(order *Order, err error) error {
	switch {
	case errors.Is(err, finality.ErrExpired):
		return reject(Fatal, order.ID, fmt.Errorf("%w: %w", ErrExpired, err))
	case errors.Is(err, finality.ErrNotWhitelisted):
		return reject(Authorization, order.ID, err)
	case errors.Is(err, finality.ErrCancelled):
		if c.guard.Paused() {
			return reject(Authorization, order.ID, fmt.Errorf("%w: %w", ErrFillCancelled, security.ErrPaused))
		}
		if order.Status == Expired {
			return reject(Fatal, order.ID, fmt.Errorf("%w: %w", ErrFillCancelled, ErrExpired))
		}
		return reject(External, order.ID, ErrFillCancelled)
	default:
		return reject(External, order.ID, err)
	}
}

// CompleteFill settles the maker side of a fill whose secret was released
// and releases the resolver safety deposit.
func (c *Coordinator) CompleteFill(ctx context.Context, orderID string, fillIndex int) (*Fill, error) {
	entry, err := c.entry(orderID)
	if err != nil {
		return nil, err
	}

	entry.lock.Lock()
	defer entry.lock.Unlock()
	order := entry.order
	if fillIndex < 0 || fillIndex >= len(order.Fills) {
		return nil, reject(Validation, orderID, ErrFillNotFound)
	}

	fill := &order.Fills[fillIndex]
	switch fill.Status {
	case FillCompleted:
		return copyFill(fill), nil
	case FillCancelled:
		return nil, reject(Fatal, orderID, ErrFillCancelled)
	case FillAdmitted:
		return nil, reject(Validation, orderID, ErrSecretNotReleased)
	}

	adapter, err := c.adapters.Adapter(order.Route.DestinationChain)
	if err != nil {
		return nil, reject(Fatal, orderID, err)
	}
	escrow, err := adapter.GetEscrow(ctx, fill.Escrow.EscrowID)
	if err != nil {
		return nil, reject(External, orderID, err)
	}
	if escrow.Refunded {
		fill.Status = FillCancelled
		c.archiveLocked(entry, false)
		return nil, reject(Fatal, orderID, ErrEscrowRefunded)
	}

	withdrawn := new(big.Int).Sub(escrow.TotalAmount, escrow.RemainingAmount)
	if !escrow.Completed && withdrawn.Cmp(fill.DestinationAmount) < 0 {
		amount := new(big.Int).Sub(fill.DestinationAmount, withdrawn)
		_, err := adapter.FillEscrow(ctx, fill.Escrow.EscrowID, amount, order.tree.Secrets[fill.SecretIndex])
		if err != nil {
			return nil, reject(External, orderID, fmt.Errorf("failed withdrawing to maker: %w", err))
		}
	}

	fill.Status = FillCompleted
	fill.DepositReleased = true
	completed := copyFill(fill)
	log.Info().
		Str("orderID", orderID).
		Int("fill", fillIndex).
		Str("deposit", fill.Deposit.String()).
		Msg("Fill completed, safety deposit released")

	c.archiveLocked(entry, false)
	return completed, nil
}

// dropPendingLocked requires the entry lock. Only the release owning the
// given context is dropped, a newer readmission is left alone.
func (c *Coordinator) dropPendingLocked(entry *orderEntry, fillIndex int, release context.Context) {
	if pending, ok := entry.pending[fillIndex]; ok && pending.ctx == release {
		pending.cancel()
		delete(entry.pending, fillIndex)
	}
}

func copyFill(fill *Fill) *Fill {
	c := *fill
	c.Amount = new(big.Int).Set(fill.Amount)
	c.DestinationAmount = new(big.Int).Set(fill.DestinationAmount)
	c.Deposit = new(big.Int).Set(fill.Deposit)
	return &c
}

func fillOperationID(orderID string, resolver common.Address) string {
	return fmt.Sprintf("fill:%s:%s", orderID, resolver.Hex())
}
