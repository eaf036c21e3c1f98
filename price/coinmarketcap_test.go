package price_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/price"
	"github.com/stretchr/testify/suite"
)

type CoinmarketcapAPITestSuite struct {
	suite.Suite
	api        *price.CoinmarketcapAPI
	testServer *httptest.Server
	calls      atomic.Int64
}

func TestRunCoinmarketcapAPITestSuite(t *testing.T) {
	suite.Run(t, new(CoinmarketcapAPITestSuite))
}

func (s *CoinmarketcapAPITestSuite) SetupTest() {
	s.calls.Store(0)
	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		if r.URL.Path == "/v1/cryptocurrency/quotes/latest" && r.URL.Query().Get("symbol") == "ETH" {
			s.Equal("test-api-key", r.Header.Get("X-CMC_PRO_API_KEY"))
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"status":{"error_code":0},"data":{"ETH":{"quote":{"USD":{"price":2500.25}}}}}`)
			return
		}
		if r.URL.Query().Get("symbol") == "ERR" {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"status":{"error_code":1002,"error_message":"API key missing"}}`)
			return
		}

		w.WriteHeader(http.StatusBadRequest)
	}))

	s.api = price.NewCoinmarketcapAPI(s.testServer.URL, "test-api-key")
}

func (s *CoinmarketcapAPITestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_Success() {
	price, err := s.api.TokenPrice(context.Background(), "ETH")

	s.Nil(err)
	s.True(price.Equal(decimal.RequireFromString("2500.25")))
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_Cached() {
	_, err := s.api.TokenPrice(context.Background(), "ETH")
	s.Nil(err)
	_, err = s.api.TokenPrice(context.Background(), "ETH")
	s.Nil(err)

	s.Equal(int64(1), s.calls.Load())
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_InvalidSymbol() {
	price, err := s.api.TokenPrice(context.Background(), "INVALID")

	s.NotNil(err)
	s.True(price.IsZero())
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_ResponseError() {
	_, err := s.api.TokenPrice(context.Background(), "ERR")

	s.NotNil(err)
	s.Contains(err.Error(), "1002")
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_APIError() {
	s.testServer.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"status": {"error_code": 500, "error_message": "Internal Server Error"}}`)
	})

	price, err := s.api.TokenPrice(context.Background(), "ETH")
	s.NotNil(err)
	s.Contains(err.Error(), "HTTP request failed with status code 500")
	s.True(price.IsZero())
}
