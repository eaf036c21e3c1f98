// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package coordinator_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/auction"
	"github.com/sprintertech/sprinter-htlc/chains"
	"github.com/sprintertech/sprinter-htlc/chains/memory"
	"github.com/sprintertech/sprinter-htlc/coordinator"
	mock_coordinator "github.com/sprintertech/sprinter-htlc/coordinator/mock"
	"github.com/sprintertech/sprinter-htlc/deposit"
	"github.com/sprintertech/sprinter-htlc/finality"
	"github.com/sprintertech/sprinter-htlc/gas"
	"github.com/sprintertech/sprinter-htlc/secrets"
	"github.com/sprintertech/sprinter-htlc/security"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	SOURCE_CHAIN      = 1
	DESTINATION_CHAIN = 2
)

var (
	admin    = common.HexToAddress("0xad")
	maker    = common.HexToAddress("0x3a")
	resolver = common.HexToAddress("0xbe")
)

type clock struct {
	lock sync.Mutex
	now  time.Time
}

func (c *clock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
}

type CoordinatorTestSuite struct {
	suite.Suite

	mockRelay   *mock_coordinator.MockRelay
	mockArchive *mock_coordinator.MockArchive
	clock        *clock
	ledger       *memory.Ledger
	sourceLedger *memory.Ledger
	adapters     chains.Adapters
	guard        *security.Guard
	adjuster     *gas.Adjuster
	secretSink  chan coordinator.FillSecret
	coordinator *coordinator.Coordinator
	cancel      context.CancelFunc
}

func TestRunCoordinatorTestSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func (s *CoordinatorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockRelay = mock_coordinator.NewMockRelay(ctrl)
	s.mockArchive = mock_coordinator.NewMockArchive(ctrl)
	s.clock = &clock{now: time.Now().Truncate(time.Second)}
	s.ledger = memory.NewLedger(DESTINATION_CHAIN, resolver, s.clock.Now)
	s.sourceLedger = memory.NewLedger(SOURCE_CHAIN, maker, s.clock.Now)
	s.adapters = chains.Adapters{
		SOURCE_CHAIN:      s.sourceLedger,
		DESTINATION_CHAIN: s.ledger,
	}
	s.secretSink = make(chan coordinator.FillSecret, 10)
	s.guard = security.NewGuard(security.Config{
		ReentrancyProtection: true,
		EmergencyPause:       true,
		Admins:               []common.Address{admin},
	})
	go s.guard.Start()

	_, s.cancel = context.WithCancel(context.Background())
	s.coordinator = s.newCoordinator(coordinator.Config{}, nil)
}

func (s *CoordinatorTestSuite) TearDownTest() {
	s.cancel()
	s.guard.Stop()
}

func (s *CoordinatorTestSuite) newCoordinator(config coordinator.Config, whitelist []common.Address) *coordinator.Coordinator {
	config.Auction = auction.Config{
		Duration:              time.Hour,
		StartRateMultiplier:   decimal.RequireFromString("1.2"),
		MinimumReturnRate:     decimal.RequireFromString("0.8"),
		DecreaseRatePerMinute: decimal.RequireFromString("0.01"),
	}
	config.Segments = 3
	config.TimelockDuration = time.Hour

	gate := finality.NewGate(finality.Config{
		Confirmations: map[uint64]uint64{SOURCE_CHAIN: 2, DESTINATION_CHAIN: 2},
		Whitelist:     whitelist,
		PollInterval:  time.Millisecond * 5,
	}, s.adapters)
	s.adjuster = gas.NewAdjuster(gas.Config{
		Enabled:                      true,
		VolatilityThreshold:          decimal.RequireFromString("0.2"),
		AdjustmentFactor:             decimal.RequireFromString("0.5"),
		ExecutionThresholdMultiplier: decimal.RequireFromString("1.1"),
	}, s.adapters)
	deposits := map[uint64]coordinator.DepositCalculator{
		DESTINATION_CHAIN: deposit.NewCalculator(deposit.Config{
			Chain:        "destination",
			RatePerMille: 10,
			MinAmount:    big.NewInt(1),
		}),
	}

	return coordinator.NewCoordinator(
		config,
		s.adapters,
		s.guard,
		secrets.NewGenerator(secrets.Config{Depth: 2, Segments: 3, ReusePrevention: true}),
		gate,
		s.adjuster,
		deposits,
		s.mockRelay,
		s.mockArchive,
		coordinator.WithClock(s.clock.Now),
		coordinator.WithSecretSink(s.secretSink),
	)
}

// produce mines blocks on both chains in the background so escrows reach finality.
func (s *CoordinatorTestSuite) produce() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel()
	s.cancel = cancel
	go s.ledger.Produce(ctx, time.Millisecond)
	go s.sourceLedger.Produce(ctx, time.Millisecond)
}

func (s *CoordinatorTestSuite) route() coordinator.Route {
	return coordinator.Route{
		SourceChain:       SOURCE_CHAIN,
		DestinationChain:  DESTINATION_CHAIN,
		SourceAmount:      big.NewInt(100),
		DestinationAmount: big.NewInt(200),
	}
}

func (s *CoordinatorTestSuite) submitAndBroadcast(c *coordinator.Coordinator) *coordinator.Order {
	order, err := c.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: coordinator.Route{
			SourceChain:       SOURCE_CHAIN,
			DestinationChain:  DESTINATION_CHAIN,
			SourceAmount:      big.NewInt(100),
			DestinationAmount: big.NewInt(200),
		},
	})
	s.Nil(err)

	s.mockRelay.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(nil)
	err = c.Broadcast(context.Background(), order.ID)
	s.Nil(err)
	return order
}

func (s *CoordinatorTestSuite) fill(orderID string, amount int64) coordinator.FillRequest {
	return coordinator.FillRequest{
		OrderID:      orderID,
		Resolver:     resolver,
		Amount:       big.NewInt(amount),
		ResolverCost: decimal.NewFromInt(1),
	}
}

func (s *CoordinatorTestSuite) kind(err error) coordinator.Kind {
	var rejection *coordinator.RejectionError
	s.True(errors.As(err, &rejection), "%v is not a rejection", err)
	return rejection.Kind
}

func (s *CoordinatorTestSuite) Test_SubmitOrder_InvalidRoute() {
	_, err := s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: coordinator.Route{
			SourceChain:       DESTINATION_CHAIN,
			DestinationChain:  DESTINATION_CHAIN,
			SourceAmount:      big.NewInt(100),
			DestinationAmount: big.NewInt(200),
		},
	})

	s.ErrorIs(err, coordinator.ErrInvalidOrder)
	s.Equal(coordinator.Validation, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_SubmitOrder_UnknownDestinationChain() {
	_, err := s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: coordinator.Route{
			SourceChain:       SOURCE_CHAIN,
			DestinationChain:  5,
			SourceAmount:      big.NewInt(100),
			DestinationAmount: big.NewInt(200),
		},
	})

	s.ErrorIs(err, chains.ErrAdapterNotFound)
	s.Equal(coordinator.Validation, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_SubmitOrder_UnknownSourceChain() {
	route := s.route()
	route.SourceChain = 5

	_, err := s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: route,
	})

	s.ErrorIs(err, chains.ErrAdapterNotFound)
	s.Equal(coordinator.Validation, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_SubmitOrder_ZeroMaker() {
	_, err := s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Route: s.route(),
	})

	s.ErrorIs(err, security.ErrAccessDenied)
	s.Equal(coordinator.Authorization, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_SubmitOrder_Paused() {
	err := s.coordinator.Pause(admin)
	s.Nil(err)

	_, err = s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: s.route(),
	})

	s.ErrorIs(err, security.ErrPaused)
	s.Equal(coordinator.Authorization, s.kind(err))
	s.Empty(s.coordinator.Orders())
}

func (s *CoordinatorTestSuite) Test_SubmitOrder_LocksSourceEscrow() {
	order, err := s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: s.route(),
	})
	s.Nil(err)

	s.Equal(s.clock.Now().Add(3*time.Hour), order.SourceTimelock)
	s.True(order.SourceTimelock.After(order.Timelock))
	escrow, err := s.sourceLedger.GetEscrow(context.Background(), order.SourceEscrow.EscrowID)
	s.Nil(err)
	s.Equal(big.NewInt(100), escrow.TotalAmount)
	s.Equal(maker, escrow.Maker)
	s.Equal(order.ID, escrow.OrderID)
	s.Equal(order.SourceTimelock, escrow.Timelock)
	s.NotEqual(common.Hash{}, escrow.Hashlock)

	s.produce()
	s.mockRelay.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(nil)
	err = s.coordinator.Broadcast(context.Background(), order.ID)
	s.Nil(err)
	ticket, err := s.coordinator.RequestFill(context.Background(), s.fill(order.ID, 100))
	s.Nil(err)
	s.Equal(3, ticket.SecretIndex)
	s.Equal(secrets.HashLock(ticket.Secret), escrow.Hashlock)
}

func (s *CoordinatorTestSuite) Test_SubmitOrder_ValidOrder() {
	order, err := s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: coordinator.Route{
			SourceChain:       SOURCE_CHAIN,
			DestinationChain:  DESTINATION_CHAIN,
			SourceAmount:      big.NewInt(100),
			DestinationAmount: big.NewInt(200),
		},
	})

	s.Nil(err)
	s.Equal(coordinator.Pending, order.Status)
	s.Equal(big.NewInt(100), order.RemainingAmount)
	s.True(order.MarketRate.Equal(decimal.NewFromInt(2)))
	s.Equal(s.clock.Now().Add(2*time.Hour), order.Timelock)
	s.Equal(uint(3), order.Segments)
	s.NotEqual(common.Hash{}, order.MerkleRoot)
}

func (s *CoordinatorTestSuite) Test_Broadcast_Twice() {
	order := s.submitAndBroadcast(s.coordinator)

	err := s.coordinator.Broadcast(context.Background(), order.ID)

	s.ErrorIs(err, coordinator.ErrAlreadyBroadcast)
	s.Equal(coordinator.Validation, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_Broadcast_NotifiesResolvers() {
	second := common.HexToAddress("0xbf")
	s.guard.Stop()
	s.guard = security.NewGuard(security.Config{
		ReentrancyProtection: true,
		Resolvers:            []common.Address{resolver, second},
	})
	go s.guard.Start()
	c := s.newCoordinator(coordinator.Config{NotifyResolvers: true}, nil)
	s.mockRelay.EXPECT().NotifyResolver(gomock.Any(), resolver, gomock.Any()).Return(nil)
	s.mockRelay.EXPECT().NotifyResolver(gomock.Any(), second, gomock.Any()).Return(errors.New("unreachable"))

	order := s.submitAndBroadcast(c)

	stored, err := c.Order(order.ID)
	s.Nil(err)
	s.Equal(coordinator.Auction, stored.Status)
}

func (s *CoordinatorTestSuite) Test_AdmitFill_NotBroadcast() {
	order, err := s.coordinator.SubmitOrder(context.Background(), coordinator.SubmitRequest{
		Maker: maker,
		Route: coordinator.Route{
			SourceChain:       SOURCE_CHAIN,
			DestinationChain:  DESTINATION_CHAIN,
			SourceAmount:      big.NewInt(100),
			DestinationAmount: big.NewInt(200),
		},
	})
	s.Nil(err)

	_, err = s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 10))

	s.ErrorIs(err, coordinator.ErrNotBroadcast)
}

func (s *CoordinatorTestSuite) Test_AdmitFill_UnknownOrder() {
	s.mockArchive.EXPECT().Get("missing").Return(nil, nil)

	_, err := s.coordinator.AdmitFill(context.Background(), s.fill("missing", 10))

	s.ErrorIs(err, coordinator.ErrOrderNotFound)
	s.Equal(coordinator.Validation, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_RequestFill_PartialFillsUntilFilled() {
	s.produce()
	order := s.submitAndBroadcast(s.coordinator)

	first, err := s.coordinator.RequestFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)
	s.Equal(1, first.SecretIndex)
	s.True(secrets.Verify(first.Secret, order.MerkleRoot, first.Proof))
	s.True(secrets.VerifyHashLock(first.Secret, first.Hashlock))
	s.Equal(big.NewInt(1), first.Deposit)
	s.Equal(big.NewInt(81), first.TotalAmount)

	second, err := s.coordinator.RequestFill(context.Background(), s.fill(order.ID, 60))
	s.Nil(err)
	s.Equal(3, second.SecretIndex)
	s.True(secrets.Verify(second.Secret, order.MerkleRoot, second.Proof))

	filled, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(coordinator.Filled, filled.Status)
	s.Equal(int64(0), filled.RemainingAmount.Int64())
	s.Len(filled.Fills, 2)
	s.Equal(coordinator.FillSecretReleased, filled.Fills[0].Status)
	s.Equal(big.NewInt(80), filled.Fills[0].DestinationAmount)
	s.Equal(big.NewInt(2), filled.SafetyDeposit)

	_, err = s.coordinator.RequestFill(context.Background(), s.fill(order.ID, 1))
	s.ErrorIs(err, coordinator.ErrOrderFilled)
	s.Equal(coordinator.Fatal, s.kind(err))

	unchanged, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(filled, unchanged)

	released := <-s.secretSink
	s.Equal(first.Secret, released.Secret)
	s.Equal(order.MerkleRoot, released.Root)
}

func (s *CoordinatorTestSuite) Test_AdmitFill_ExceedsRemaining() {
	order := s.submitAndBroadcast(s.coordinator)

	_, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 101))

	s.ErrorIs(err, coordinator.ErrInsufficientRemaining)
	s.Equal(coordinator.Validation, s.kind(err))
	unchanged, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(big.NewInt(100), unchanged.RemainingAmount)
	s.Empty(unchanged.Fills)
}

func (s *CoordinatorTestSuite) Test_AdmitFill_SegmentAlreadyConsumed() {
	order := s.submitAndBroadcast(s.coordinator)
	other := common.HexToAddress("0xbf")

	admission, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 10))
	s.Nil(err)
	s.Equal(0, admission.SecretIndex)

	req := s.fill(order.ID, 10)
	req.Resolver = other
	_, err = s.coordinator.AdmitFill(context.Background(), req)

	s.ErrorIs(err, coordinator.ErrSegmentConsumed)
	unchanged, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(big.NewInt(90), unchanged.RemainingAmount)
	s.Len(unchanged.Fills, 1)
}

func (s *CoordinatorTestSuite) Test_AdmitFill_NotProfitable() {
	order := s.submitAndBroadcast(s.coordinator)
	req := s.fill(order.ID, 40)
	req.ResolverCost = decimal.NewFromInt(3)

	_, err := s.coordinator.AdmitFill(context.Background(), req)

	s.ErrorIs(err, coordinator.ErrNotProfitable)
	s.Equal(coordinator.Economic, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_AdmitFill_GasUnfavourable() {
	order := s.submitAndBroadcast(s.coordinator)
	req := s.fill(order.ID, 40)
	req.GasCost = big.NewInt(1000)

	_, err := s.coordinator.AdmitFill(context.Background(), req)

	s.ErrorIs(err, coordinator.ErrGasUnfavourable)
	s.Equal(coordinator.Economic, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_AdmitFill_GasFavourable() {
	order := s.submitAndBroadcast(s.coordinator)
	req := s.fill(order.ID, 40)
	req.GasCost = big.NewInt(10)

	_, err := s.coordinator.AdmitFill(context.Background(), req)

	s.Nil(err)
}

func (s *CoordinatorTestSuite) Test_AdmitFill_NotWhitelisted() {
	c := s.newCoordinator(coordinator.Config{}, []common.Address{common.HexToAddress("0xbf")})
	order := s.submitAndBroadcast(c)

	_, err := c.AdmitFill(context.Background(), s.fill(order.ID, 40))

	s.ErrorIs(err, finality.ErrNotWhitelisted)
	s.Equal(coordinator.Authorization, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_AdmitFill_SameResolverInProgress() {
	order := s.submitAndBroadcast(s.coordinator)

	_, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)
	_, err = s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))

	s.ErrorIs(err, security.ErrReentrancy)
	s.Equal(coordinator.Concurrency, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_AdmitFill_ConcurrentFillsNeverOverfill() {
	order := s.submitAndBroadcast(s.coordinator)

	var wg sync.WaitGroup
	var lock sync.Mutex
	admitted := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := s.fill(order.ID, 30)
			req.Resolver = common.BigToAddress(big.NewInt(int64(0x100 + i)))
			_, err := s.coordinator.AdmitFill(context.Background(), req)
			if err == nil {
				lock.Lock()
				admitted++
				lock.Unlock()
			}
		}(i)
	}
	wg.Wait()

	stored, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(3, admitted)
	s.Len(stored.Fills, 3)
	s.Equal(big.NewInt(10), stored.RemainingAmount)
	total := new(big.Int).Add(stored.RemainingAmount, stored.FilledAmount())
	s.Equal(big.NewInt(100), total)
	for i := 1; i < len(stored.Fills); i++ {
		s.Greater(stored.Fills[i].SecretIndex, stored.Fills[i-1].SecretIndex)
	}
}

func (s *CoordinatorTestSuite) Test_AdmitFill_AmountsAreConserved() {
	order := s.submitAndBroadcast(s.coordinator)

	for i, amount := range []int64{5, 30, 200, 30, 1, 40, 35} {
		req := s.fill(order.ID, amount)
		req.Resolver = common.BigToAddress(big.NewInt(int64(0x100 + i)))
		_, _ = s.coordinator.AdmitFill(context.Background(), req)

		stored, err := s.coordinator.Order(order.ID)
		s.Nil(err)
		s.True(stored.RemainingAmount.Sign() >= 0)
		total := new(big.Int).Add(stored.RemainingAmount, stored.FilledAmount())
		s.Equal(big.NewInt(100), total)
	}
}

func (s *CoordinatorTestSuite) Test_Pause_CancelsPendingReleaseAndBlocksFills() {
	order := s.submitAndBroadcast(s.coordinator)
	admission, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)

	result := make(chan error)
	go func() {
		_, err := s.coordinator.ReleaseFillSecret(context.Background(), admission)
		result <- err
	}()

	err = s.coordinator.Pause(resolver)
	s.ErrorIs(err, security.ErrAccessDenied)
	err = s.coordinator.Pause(admin)
	s.Nil(err)

	err = <-result
	s.ErrorIs(err, coordinator.ErrFillCancelled)
	s.Equal(coordinator.Authorization, s.kind(err))

	req := s.fill(order.ID, 30)
	req.Resolver = common.HexToAddress("0xbf")
	_, err = s.coordinator.AdmitFill(context.Background(), req)
	s.ErrorIs(err, security.ErrPaused)

	stored, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(coordinator.FillAdmitted, stored.Fills[0].Status)
	s.Equal(big.NewInt(60), stored.RemainingAmount)

	err = s.coordinator.Resume(admin)
	s.Nil(err)
	_, err = s.coordinator.AdmitFill(context.Background(), req)
	s.Nil(err)

	s.produce()
	readmission, err := s.coordinator.ReadmitFill(context.Background(), order.ID, 0, resolver)
	s.Nil(err)
	s.Equal(admission.SecretIndex, readmission.SecretIndex)
	s.Equal(admission.TotalAmount, readmission.TotalAmount)
	ticket, err := s.coordinator.ReleaseFillSecret(context.Background(), readmission)
	s.Nil(err)
	s.True(secrets.VerifyHashLock(ticket.Secret, admission.Hashlock))

	stored, err = s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(coordinator.FillSecretReleased, stored.Fills[0].Status)
}

func (s *CoordinatorTestSuite) Test_Pause_FullFillIsReleasedAfterResume() {
	order := s.submitAndBroadcast(s.coordinator)
	admission, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 100))
	s.Nil(err)

	result := make(chan error)
	go func() {
		_, err := s.coordinator.ReleaseFillSecret(context.Background(), admission)
		result <- err
	}()
	err = s.coordinator.Pause(admin)
	s.Nil(err)
	err = <-result
	s.ErrorIs(err, coordinator.ErrFillCancelled)

	stored, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(coordinator.Filled, stored.Status)
	s.Equal(coordinator.FillAdmitted, stored.Fills[0].Status)
	s.Len(s.coordinator.Orders(), 1)

	_, err = s.coordinator.ReadmitFill(context.Background(), order.ID, 0, resolver)
	s.ErrorIs(err, security.ErrPaused)

	err = s.coordinator.Resume(admin)
	s.Nil(err)
	s.produce()
	readmission, err := s.coordinator.ReadmitFill(context.Background(), order.ID, 0, resolver)
	s.Nil(err)
	_, err = s.coordinator.ReleaseFillSecret(context.Background(), readmission)
	s.Nil(err)

	s.mockArchive.EXPECT().Put(order.ID, gomock.Any()).Return(nil)
	fill, err := s.coordinator.CompleteFill(context.Background(), order.ID, 0)
	s.Nil(err)
	s.Equal(coordinator.FillCompleted, fill.Status)
	s.Empty(s.coordinator.Orders())
}

func (s *CoordinatorTestSuite) Test_ReadmitFill_OtherResolver() {
	order := s.submitAndBroadcast(s.coordinator)
	_, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)

	_, err = s.coordinator.ReadmitFill(context.Background(), order.ID, 0, common.HexToAddress("0xbf"))

	s.ErrorIs(err, security.ErrAccessDenied)
	s.Equal(coordinator.Authorization, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_ReadmitFill_ReleaseInProgress() {
	order := s.submitAndBroadcast(s.coordinator)
	_, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)

	// the admission holds the reentrancy marker until its release returns
	_, err = s.coordinator.ReadmitFill(context.Background(), order.ID, 0, resolver)

	s.ErrorIs(err, security.ErrReentrancy)
	s.Equal(coordinator.Concurrency, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_ReadmitFill_AlreadyReleased() {
	s.produce()
	order := s.submitAndBroadcast(s.coordinator)
	_, err := s.coordinator.RequestFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)

	_, err = s.coordinator.ReadmitFill(context.Background(), order.ID, 0, resolver)

	s.ErrorIs(err, coordinator.ErrFillNotPending)
	s.Equal(coordinator.Validation, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_ReleaseFillSecret_WaitsForSourceFinality() {
	order := s.submitAndBroadcast(s.coordinator)
	admission, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)
	s.ledger.Mine(10)

	result := make(chan error)
	go func() {
		_, err := s.coordinator.ReleaseFillSecret(context.Background(), admission)
		result <- err
	}()

	select {
	case <-result:
		s.Fail("secret released before the source escrow was final")
	case <-time.After(50 * time.Millisecond):
	}

	s.sourceLedger.Mine(10)
	err = <-result
	s.Nil(err)
}

func (s *CoordinatorTestSuite) Test_AdmitFill_RejectedFillLeavesGasHistory() {
	order := s.submitAndBroadcast(s.coordinator)
	req := s.fill(order.ID, 40)
	req.GasCost = big.NewInt(10)

	_, err := s.coordinator.AdmitFill(context.Background(), req)
	s.Nil(err)
	_, err = s.coordinator.AdmitFill(context.Background(), req)
	s.ErrorIs(err, security.ErrReentrancy)
	s.Len(s.adjuster.History(DESTINATION_CHAIN), 1)

	req.ResolverCost = decimal.NewFromInt(3)
	req.Resolver = common.HexToAddress("0xbf")
	_, err = s.coordinator.AdmitFill(context.Background(), req)
	s.ErrorIs(err, coordinator.ErrNotProfitable)
	s.Len(s.adjuster.History(DESTINATION_CHAIN), 1)

	err = s.coordinator.Pause(admin)
	s.Nil(err)
	req.ResolverCost = decimal.NewFromInt(1)
	_, err = s.coordinator.AdmitFill(context.Background(), req)
	s.ErrorIs(err, security.ErrPaused)
	s.Len(s.adjuster.History(DESTINATION_CHAIN), 1)
}

func (s *CoordinatorTestSuite) Test_TimeoutExpire_AuctionActive() {
	order := s.submitAndBroadcast(s.coordinator)

	err := s.coordinator.TimeoutExpire(context.Background(), order.ID)

	s.ErrorIs(err, coordinator.ErrAuctionActive)
}

func (s *CoordinatorTestSuite) Test_TimeoutExpire_ArchivesOrder() {
	order := s.submitAndBroadcast(s.coordinator)
	var archived []byte
	s.mockArchive.EXPECT().Put(order.ID, gomock.Any()).DoAndReturn(func(id string, data []byte) error {
		archived = data
		return nil
	})
	s.clock.Advance(time.Hour)

	err := s.coordinator.TimeoutExpire(context.Background(), order.ID)
	s.Nil(err)

	s.mockArchive.EXPECT().Get(order.ID).DoAndReturn(func(id string) ([]byte, error) {
		return archived, nil
	}).Times(2)
	stored, err := s.coordinator.Order(order.ID)
	s.Nil(err)
	s.Equal(coordinator.Expired, stored.Status)
	s.Equal(order.MerkleRoot, stored.MerkleRoot)

	_, err = s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))
	s.Equal(coordinator.Fatal, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_TimeoutExpire_CancelsPendingRelease() {
	order := s.submitAndBroadcast(s.coordinator)
	admission, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))
	s.Nil(err)
	archived := make(chan struct{})
	s.mockArchive.EXPECT().Put(order.ID, gomock.Any()).DoAndReturn(func(id string, data []byte) error {
		close(archived)
		return nil
	})

	result := make(chan error)
	go func() {
		_, err := s.coordinator.ReleaseFillSecret(context.Background(), admission)
		result <- err
	}()
	s.clock.Advance(time.Hour)
	err = s.coordinator.TimeoutExpire(context.Background(), order.ID)
	s.Nil(err)

	err = <-result
	s.ErrorIs(err, coordinator.ErrFillCancelled)
	s.ErrorIs(err, coordinator.ErrExpired)
	s.Equal(coordinator.Fatal, s.kind(err))
	<-archived
}

func (s *CoordinatorTestSuite) Test_AdmitFill_AfterAuctionEnd() {
	order := s.submitAndBroadcast(s.coordinator)
	s.mockArchive.EXPECT().Put(order.ID, gomock.Any()).Return(nil)
	s.clock.Advance(time.Hour)

	_, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 40))

	s.ErrorIs(err, coordinator.ErrExpired)
	s.Equal(coordinator.Fatal, s.kind(err))
}

func (s *CoordinatorTestSuite) Test_Sweep_ExpiresElapsedAuctions() {
	first := s.submitAndBroadcast(s.coordinator)
	second := s.submitAndBroadcast(s.coordinator)
	s.mockArchive.EXPECT().Put(first.ID, gomock.Any()).Return(nil)
	s.mockArchive.EXPECT().Put(second.ID, gomock.Any()).Return(nil)

	s.coordinator.Sweep()
	s.Len(s.coordinator.Orders(), 2)

	s.clock.Advance(time.Hour)
	s.coordinator.Sweep()

	s.Empty(s.coordinator.Orders())
}

func (s *CoordinatorTestSuite) Test_CompleteFill_ReleasesDeposit() {
	s.produce()
	order := s.submitAndBroadcast(s.coordinator)
	admission, err := s.coordinator.AdmitFill(context.Background(), s.fill(order.ID, 100))
	s.Nil(err)

	_, err = s.coordinator.CompleteFill(context.Background(), order.ID, 0)
	s.ErrorIs(err, coordinator.ErrSecretNotReleased)

	_, err = s.coordinator.ReleaseFillSecret(context.Background(), admission)
	s.Nil(err)

	s.mockArchive.EXPECT().Put(order.ID, gomock.Any()).Return(nil)
	fill, err := s.coordinator.CompleteFill(context.Background(), order.ID, 0)

	s.Nil(err)
	s.Equal(coordinator.FillCompleted, fill.Status)
	s.True(fill.DepositReleased)
	escrow, err := s.ledger.GetEscrow(context.Background(), admission.Escrow.EscrowID)
	s.Nil(err)
	s.Equal(admission.Deposit, escrow.RemainingAmount)
	s.Empty(s.coordinator.Orders())
}

func (s *CoordinatorTestSuite) Test_CompleteFill_UnknownFill() {
	order := s.submitAndBroadcast(s.coordinator)

	_, err := s.coordinator.CompleteFill(context.Background(), order.ID, 3)

	s.ErrorIs(err, coordinator.ErrFillNotFound)
}

func (s *CoordinatorTestSuite) Test_CurrentRate() {
	order := s.submitAndBroadcast(s.coordinator)
	s.clock.Advance(10 * time.Minute)

	rate, status, err := s.coordinator.CurrentRate(order.ID)

	s.Nil(err)
	s.Equal(auction.StatusActive, status)
	s.True(rate.Equal(decimal.RequireFromString("2.3")), rate.String())
}
