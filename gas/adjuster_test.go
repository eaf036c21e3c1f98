// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package gas_test

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/gas"
	mock_gas "github.com/sprintertech/sprinter-htlc/gas/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const chainID = uint64(1)

func gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e9))
}

type AdjusterTestSuite struct {
	suite.Suite

	mockFetcher *mock_gas.MockBaseFeeFetcher
	adjuster    *gas.Adjuster
}

func TestRunAdjusterTestSuite(t *testing.T) {
	suite.Run(t, new(AdjusterTestSuite))
}

func (s *AdjusterTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockFetcher = mock_gas.NewMockBaseFeeFetcher(ctrl)
	s.adjuster = gas.NewAdjuster(gas.Config{
		Enabled:                      true,
		VolatilityThreshold:          decimal.RequireFromString("0.2"),
		AdjustmentFactor:             decimal.RequireFromString("1.5"),
		ExecutionThresholdMultiplier: decimal.RequireFromString("1.2"),
	}, s.mockFetcher)
}

func (s *AdjusterTestSuite) Test_AdjustPrice_Disabled() {
	adjuster := gas.NewAdjuster(gas.Config{}, s.mockFetcher)

	price, err := adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(5), chainID)

	s.Nil(err)
	s.True(price.Equal(decimal.NewFromInt(5)))
	s.Len(adjuster.History(chainID), 0)
}

func (s *AdjusterTestSuite) Test_AdjustPrice_FetchError() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(nil, fmt.Errorf("error"))

	_, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(5), chainID)

	s.NotNil(err)
	s.Len(s.adjuster.History(chainID), 0)
}

func (s *AdjusterTestSuite) Test_AdjustPrice_EmptyHistoryKeepsPrice() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(100), nil)

	price, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(5), chainID)

	s.Nil(err)
	s.True(price.Equal(decimal.NewFromInt(5)))
	s.Equal([]*big.Int{gwei(100)}, s.adjuster.History(chainID))
}

func (s *AdjusterTestSuite) Test_AdjustPrice_BelowThresholdKeepsPrice() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(100), nil)
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(110), nil)

	_, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(5), chainID)
	s.Nil(err)
	price, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(5), chainID)

	s.Nil(err)
	s.True(price.Equal(decimal.NewFromInt(5)))
}

func (s *AdjusterTestSuite) Test_AdjustPrice_MeasuredAgainstPreUpdateAverage() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(100), nil)
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(150), nil)

	_, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(2), chainID)
	s.Nil(err)
	price, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(2), chainID)

	// volatility 0.5 against the average of 100, 2 * (1 + 0.5 * 1.5)
	s.Nil(err)
	s.True(price.Equal(decimal.RequireFromString("3.5")), price.String())
	s.Equal([]*big.Int{gwei(100), gwei(150)}, s.adjuster.History(chainID))
}

func (s *AdjusterTestSuite) Test_AdjustPrice_NegativeVolatilityLowersPrice() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(100), nil)
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(60), nil)

	_, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(2), chainID)
	s.Nil(err)
	price, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(2), chainID)

	s.Nil(err)
	s.True(price.Equal(decimal.RequireFromString("0.8")), price.String())
}

func (s *AdjusterTestSuite) Test_AdjustPrice_HistoryBounded() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(100), nil).Times(gas.HISTORY_SIZE)
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(101), nil).Times(5)

	for i := 0; i < gas.HISTORY_SIZE+5; i++ {
		_, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(1), chainID)
		s.Nil(err)
	}

	history := s.adjuster.History(chainID)
	s.Len(history, gas.HISTORY_SIZE)
	s.Equal(gwei(100), history[0])
	s.Equal(gwei(101), history[len(history)-1])
}

func (s *AdjusterTestSuite) Test_AdjustPrice_HistoryPerChain() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), uint64(1)).Return(gwei(100), nil)
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), uint64(2)).Return(gwei(300), nil)

	_, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(1), 1)
	s.Nil(err)
	_, err = s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(1), 2)
	s.Nil(err)

	s.Len(s.adjuster.History(1), 1)
	s.Len(s.adjuster.History(2), 1)
}

func (s *AdjusterTestSuite) Test_AdjustPrice_ConcurrentCallsKeepEverySample() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(100), nil).Times(50)

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(1), chainID)
		}()
	}
	wg.Wait()

	s.Len(s.adjuster.History(chainID), 50)
}

func (s *AdjusterTestSuite) Test_ShouldExecute() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(gwei(100), nil).Times(2)

	execute, err := s.adjuster.ShouldExecute(context.Background(), decimal.NewFromInt(120), big.NewInt(100), chainID)
	s.Nil(err)
	s.True(execute)

	execute, err = s.adjuster.ShouldExecute(context.Background(), decimal.NewFromInt(119), big.NewInt(100), chainID)
	s.Nil(err)
	s.False(execute)
}

func (s *AdjusterTestSuite) Test_AdjustPrice_SmallBaseFees() {
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(big.NewInt(1), nil)
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(big.NewInt(2), nil)
	s.mockFetcher.EXPECT().BaseFee(gomock.Any(), chainID).Return(big.NewInt(3), nil)

	for i := 0; i < 2; i++ {
		_, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(2), chainID)
		s.Nil(err)
	}
	price, err := s.adjuster.AdjustPrice(context.Background(), decimal.NewFromInt(2), chainID)

	// volatility 1 against the average of 1.5 wei, 2 * (1 + 1 * 1.5)
	s.Nil(err)
	s.True(price.Equal(decimal.NewFromInt(5)), price.String())
}

func (s *AdjusterTestSuite) Test_Volatility_ZeroAverage() {
	s.True(gas.Volatility(big.NewInt(10), decimal.Zero).IsZero())
}

func (s *AdjusterTestSuite) Test_Average() {
	average, ok := gas.Average([]*big.Int{big.NewInt(2), big.NewInt(3)})
	s.True(ok)
	s.True(average.Equal(decimal.RequireFromString("2.5")), average.String())

	_, ok = gas.Average(nil)
	s.False(ok)
}
