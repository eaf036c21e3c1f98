// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/auction"
	"github.com/sprintertech/sprinter-htlc/chains"
	"github.com/sprintertech/sprinter-htlc/deposit"
	"github.com/sprintertech/sprinter-htlc/finality"
	"github.com/sprintertech/sprinter-htlc/secrets"
	"github.com/sprintertech/sprinter-htlc/security"
)

const (
	TIMELOCK_DURATION = time.Hour
)

type AccessGuard interface {
	Check(operationID string, user common.Address, action security.Action) error
	CheckAccess(user common.Address, action security.Action) bool
	Release(operationID string)
	Resolvers() []common.Address
	Pause()
	Resume()
	Paused() bool
	OnPause(callback func())
}

type SecretGenerator interface {
	Generate(segments uint) (*secrets.Tree, error)
}

type FinalityGate interface {
	IsWhitelisted(resolver common.Address) bool
	ReleaseSecret(ctx context.Context, req finality.Request) (common.Hash, error)
	Forget(orderID string)
}

type GasAdjuster interface {
	ShouldExecute(ctx context.Context, orderPrice decimal.Decimal, gasPrice *big.Int, chainID uint64) (bool, error)
}

type DepositCalculator interface {
	CreateEscrowWithDeposit(amount *big.Int, resolver common.Address) (*deposit.EscrowFunding, error)
}

type RateSource interface {
	MarketRate(ctx context.Context, sourceChain uint64, destinationChain uint64) (decimal.Decimal, error)
}

// Relay shares orders and fill events with resolvers.
type Relay interface {
	PublishOrder(ctx context.Context, order *Order) error
	NotifyResolver(ctx context.Context, resolver common.Address, order *Order) error
}

// Archive keeps finalized orders. Get returns nil data for unknown ids.
type Archive interface {
	Put(id string, data []byte) error
	Get(id string) ([]byte, error)
}

type Metrics interface {
	TrackOrderSubmitted(route Route)
	TrackOrderFinalized(route Route, status Status)
	TrackFillAdmitted(route Route)
	TrackFillRejected(kind Kind)
	StartSecretRelease(fillID string)
	EndSecretRelease(fillID string, status FillStatus)
}

type Config struct {
	Auction  auction.Config
	Segments uint
	// TimelockDuration is added to the auction end to get the destination
	// escrow timelock and once more to get the source escrow timelock
	TimelockDuration time.Duration
	// NotifyResolvers sends every broadcast order to each whitelisted resolver
	NotifyResolvers bool
}

type orderEntry struct {
	lock    sync.Mutex
	order   *Order
	pending map[int]pendingRelease
}

type pendingRelease struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// Coordinator drives orders from submission through the auction and partial
// fills until they are filled or expired.
type Coordinator struct {
	config    Config
	adapters  chains.Adapters
	guard     AccessGuard
	generator SecretGenerator
	gate      FinalityGate
	adjuster  GasAdjuster
	deposits  map[uint64]DepositCalculator
	relay     Relay
	archive   Archive
	metrics   Metrics

	rates   RateSource
	secrets chan FillSecret
	now     func() time.Time

	lock   sync.RWMutex
	orders map[string]*orderEntry
}

type Option func(*Coordinator)

func WithRateSource(rates RateSource) Option {
	return func(c *Coordinator) {
		c.rates = rates
	}
}

// WithSecretSink forwards every released secret to the channel.
func WithSecretSink(sink chan FillSecret) Option {
	return func(c *Coordinator) {
		c.secrets = sink
	}
}

func WithMetrics(metrics Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = metrics
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

func NewCoordinator(
	config Config,
	adapters chains.Adapters,
	guard AccessGuard,
	generator SecretGenerator,
	gate FinalityGate,
	adjuster GasAdjuster,
	deposits map[uint64]DepositCalculator,
	relay Relay,
	archive Archive,
	opts ...Option,
) *Coordinator {
	if config.TimelockDuration <= 0 {
		config.TimelockDuration = TIMELOCK_DURATION
	}

	c := &Coordinator{
		config:    config,
		adapters:  adapters,
		guard:     guard,
		generator: generator,
		gate:      gate,
		adjuster:  adjuster,
		deposits:  deposits,
		relay:     relay,
		archive:   archive,
		metrics:   noopMetrics{},
		now:       time.Now,
		orders:    make(map[string]*orderEntry),
	}
	for _, opt := range opts {
		opt(c)
	}

	guard.OnPause(c.cancelPending)
	return c
}

// SubmitOrder validates the order, commits to a fresh secret tree, locks
// the maker funds in the source escrow and registers the order in Pending
// state.
func (c *Coordinator) SubmitOrder(ctx context.Context, req SubmitRequest) (*Order, error) {
	if err := req.Route.Validate(); err != nil {
		return nil, reject(Validation, "", fmt.Errorf("%w: %s", ErrInvalidOrder, err))
	}
	sourceAdapter, err := c.adapters.Adapter(req.Route.SourceChain)
	if err != nil {
		return nil, reject(Validation, "", fmt.Errorf("%w: %w", ErrInvalidOrder, err))
	}
	if _, err := c.adapters.Adapter(req.Route.DestinationChain); err != nil {
		return nil, reject(Validation, "", fmt.Errorf("%w: %w", ErrInvalidOrder, err))
	}
	if _, ok := c.deposits[req.Route.DestinationChain]; !ok {
		return nil, reject(Validation, "", fmt.Errorf("%w: no safety deposit configured for chain %d", ErrInvalidOrder, req.Route.DestinationChain))
	}

	auctionConfig := c.config.Auction
	if req.Auction != nil {
		auctionConfig = *req.Auction
	}
	if err := auctionConfig.Validate(); err != nil {
		return nil, reject(Validation, "", fmt.Errorf("%w: %s", ErrInvalidOrder, err))
	}
	if req.MarketRate.IsNegative() {
		return nil, reject(Validation, "", fmt.Errorf("%w: negative market rate", ErrInvalidOrder))
	}

	id := uuid.NewString()
	operationID := submitOperationID(req.Maker)
	if err := c.guard.Check(operationID, req.Maker, security.MakerAction); err != nil {
		return nil, c.securityRejection(id, err)
	}
	defer c.guard.Release(operationID)

	marketRate, err := c.marketRate(ctx, req)
	if err != nil {
		return nil, reject(External, id, err)
	}

	segments := c.config.Segments
	if req.Segments != 0 {
		segments = req.Segments
	}
	tree, err := c.generator.Generate(segments)
	if err != nil {
		return nil, reject(Validation, id, fmt.Errorf("%w: %s", ErrInvalidOrder, err))
	}

	createdAt := c.now()
	pricer := auction.NewPricer(auctionConfig, c.now)
	timelock := pricer.EndTime(createdAt).Add(c.config.TimelockDuration)
	sourceTimelock := timelock.Add(c.config.TimelockDuration)
	sourceEscrow, err := sourceAdapter.CreateEscrow(ctx, chains.EscrowParams{
		Hashlock: secrets.HashLock(tree.Secrets[len(tree.Secrets)-1]),
		Timelock: sourceTimelock,
		Amount:   req.Route.SourceAmount,
		OrderID:  id,
	})
	if err != nil {
		return nil, reject(External, id, fmt.Errorf("failed creating source escrow: %w", err))
	}

	order := &Order{
		ID:    id,
		Maker: req.Maker,
		Route: Route{
			SourceChain:       req.Route.SourceChain,
			DestinationChain:  req.Route.DestinationChain,
			SourceAmount:      new(big.Int).Set(req.Route.SourceAmount),
			DestinationAmount: new(big.Int).Set(req.Route.DestinationAmount),
		},
		Auction:         auctionConfig,
		MarketRate:      marketRate,
		CreatedAt:       createdAt,
		Timelock:        timelock,
		SourceEscrow:    *sourceEscrow,
		SourceTimelock:  sourceTimelock,
		Status:          Pending,
		RemainingAmount: new(big.Int).Set(req.Route.SourceAmount),
		MerkleRoot:      tree.Root,
		Segments:        tree.Segments,
		TreeDepth:       tree.Depth,
		SafetyDeposit:   big.NewInt(0),
		Fills:           []Fill{},
		tree:            tree,
	}

	c.lock.Lock()
	c.orders[id] = &orderEntry{
		order:   order,
		pending: make(map[int]pendingRelease),
	}
	c.lock.Unlock()

	c.metrics.TrackOrderSubmitted(order.Route)
	log.Info().
		Str("orderID", id).
		Str("maker", req.Maker.Hex()).
		Uint64("sourceChain", order.Route.SourceChain).
		Uint64("destinationChain", order.Route.DestinationChain).
		Str("sourceAmount", order.Route.SourceAmount.String()).
		Str("marketRate", marketRate.String()).
		Str("sourceEscrowID", sourceEscrow.EscrowID.Hex()).
		Msg("Order submitted")
	return order.copy(), nil
}

func (c *Coordinator) marketRate(ctx context.Context, req SubmitRequest) (decimal.Decimal, error) {
	if req.MarketRate.IsPositive() {
		return req.MarketRate, nil
	}

	if c.rates != nil {
		rate, err := c.rates.MarketRate(ctx, req.Route.SourceChain, req.Route.DestinationChain)
		if err == nil && rate.IsPositive() {
			return rate, nil
		}
		log.Warn().Msgf("Market rate unavailable, using order amounts: %v", err)
	}

	return decimal.NewFromBigInt(req.Route.DestinationAmount, 0).
		Div(decimal.NewFromBigInt(req.Route.SourceAmount, 0)), nil
}

// Broadcast opens the auction and shares the order with resolvers.
func (c *Coordinator) Broadcast(ctx context.Context, orderID string) error {
	if c.guard.Paused() {
		return reject(Authorization, orderID, security.ErrPaused)
	}

	entry, err := c.entry(orderID)
	if err != nil {
		return err
	}

	entry.lock.Lock()
	switch entry.order.Status {
	case Pending:
	case Filled, Expired:
		entry.lock.Unlock()
		return reject(Fatal, orderID, fmt.Errorf("%w: order is %s", ErrAlreadyBroadcast, entry.order.Status))
	default:
		entry.lock.Unlock()
		return reject(Validation, orderID, ErrAlreadyBroadcast)
	}
	entry.order.Status = Auction
	order := entry.order.copy()
	entry.lock.Unlock()

	log.Info().Str("orderID", orderID).Msg("Order broadcast, auction open")
	if err := c.relay.PublishOrder(ctx, order); err != nil {
		log.Warn().Str("orderID", orderID).Msgf("Failed publishing order: %s", err)
	}
	if !c.config.NotifyResolvers {
		return nil
	}
	for _, resolver := range c.guard.Resolvers() {
		if err := c.relay.NotifyResolver(ctx, resolver, order); err != nil {
			log.Warn().Str("orderID", orderID).Str("resolver", resolver.Hex()).Msgf("Failed notifying resolver: %s", err)
		}
	}
	return nil
}

// Order returns a snapshot of an active or archived order.
func (c *Coordinator) Order(orderID string) (*Order, error) {
	c.lock.RLock()
	entry, ok := c.orders[orderID]
	c.lock.RUnlock()
	if ok {
		entry.lock.Lock()
		defer entry.lock.Unlock()
		return entry.order.copy(), nil
	}

	order, err := c.archived(orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Orders returns snapshots of all active orders.
func (c *Coordinator) Orders() []*Order {
	entries := c.entries()
	orders := make([]*Order, 0, len(entries))
	for _, entry := range entries {
		entry.lock.Lock()
		orders = append(orders, entry.order.copy())
		entry.lock.Unlock()
	}
	return orders
}

// CurrentRate returns the auction rate an order offers right now.
func (c *Coordinator) CurrentRate(orderID string) (decimal.Decimal, auction.Status, error) {
	order, err := c.Order(orderID)
	if err != nil {
		return decimal.Zero, "", err
	}

	pricer := auction.NewPricer(order.Auction, c.now)
	return pricer.CurrentRate(order.CreatedAt, order.MarketRate), pricer.Status(order.CreatedAt), nil
}

func (c *Coordinator) entry(orderID string) (*orderEntry, error) {
	c.lock.RLock()
	entry, ok := c.orders[orderID]
	c.lock.RUnlock()
	if ok {
		return entry, nil
	}

	order, err := c.archived(orderID)
	if err != nil {
		return nil, err
	}
	return nil, reject(Fatal, orderID, fmt.Errorf("order is %s", order.Status))
}

func (c *Coordinator) archived(orderID string) (*Order, error) {
	data, err := c.archive.Get(orderID)
	if err != nil {
		return nil, reject(External, orderID, err)
	}
	if data == nil {
		return nil, reject(Validation, orderID, ErrOrderNotFound)
	}

	order := &Order{}
	if err := json.Unmarshal(data, order); err != nil {
		return nil, reject(External, orderID, err)
	}
	return order, nil
}

// archiveLocked moves a finalized order with only settled fills out of
// the active set. The entry lock must be held.
func (c *Coordinator) archiveLocked(entry *orderEntry, force bool) {
	order := entry.order
	if !order.Status.Terminal() || (!force && !order.settled()) {
		return
	}

	data, err := json.Marshal(order)
	if err != nil {
		log.Error().Str("orderID", order.ID).Msgf("Failed encoding order for archive: %s", err)
		return
	}
	if err := c.archive.Put(order.ID, data); err != nil {
		log.Error().Str("orderID", order.ID).Msgf("Failed archiving order: %s", err)
		return
	}

	c.lock.Lock()
	delete(c.orders, order.ID)
	c.lock.Unlock()
	c.gate.Forget(order.ID)
	if order.Status == Filled {
		c.metrics.TrackOrderFinalized(order.Route, Filled)
	}

	log.Info().Str("orderID", order.ID).Str("status", string(order.Status)).Msg("Order archived")
}

func (c *Coordinator) securityRejection(orderID string, err error) error {
	switch {
	case errors.Is(err, security.ErrReentrancy):
		return reject(Concurrency, orderID, err)
	default:
		return reject(Authorization, orderID, err)
	}
}

func submitOperationID(maker common.Address) string {
	return fmt.Sprintf("submit:%s", maker.Hex())
}

type noopMetrics struct{}

func (noopMetrics) TrackOrderSubmitted(Route) {}
func (noopMetrics) TrackOrderFinalized(Route, Status) {}
func (noopMetrics) TrackFillAdmitted(Route) {}
func (noopMetrics) TrackFillRejected(Kind) {}
func (noopMetrics) StartSecretRelease(string) {}
func (noopMetrics) EndSecretRelease(string, FillStatus) {}
