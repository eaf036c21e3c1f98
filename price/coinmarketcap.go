package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/shopspring/decimal"
)

const (
	PRICE_TTL = time.Minute
)

type CoinmarketcapResponse struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
	Data map[string]struct {
		Quote struct {
			USD struct {
				Price decimal.Decimal `json:"price"`
			} `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

type CoinmarketcapAPI struct {
	url    string
	apiKey string
	client *http.Client
	prices *ttlcache.Cache[string, decimal.Decimal]
}

func NewCoinmarketcapAPI(url string, apiKey string) *CoinmarketcapAPI {
	return &CoinmarketcapAPI{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
		prices: ttlcache.New(
			ttlcache.WithTTL[string, decimal.Decimal](PRICE_TTL),
		),
	}
}

// TokenPrice returns the USD price of the token. Prices are reused for
// PRICE_TTL.
func (c *CoinmarketcapAPI) TokenPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if cached := c.prices.Get(symbol); cached != nil && !cached.IsExpired() {
		return cached.Value(), nil
	}

	url := fmt.Sprintf("%s/v1/cryptocurrency/quotes/latest?symbol=%s", c.url, symbol)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("HTTP request failed with status code %d", resp.StatusCode)
	}

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, err
	}
	var cmcResponse CoinmarketcapResponse
	err = json.Unmarshal(response, &cmcResponse)
	if err != nil {
		return decimal.Zero, err
	}

	if cmcResponse.Status.ErrorCode != 0 {
		return decimal.Zero, fmt.Errorf("API Error: %d - %s", cmcResponse.Status.ErrorCode, cmcResponse.Status.ErrorMessage)
	}
	quote, ok := cmcResponse.Data[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("no quote for %s", symbol)
	}

	c.prices.Set(symbol, quote.Quote.USD.Price, ttlcache.DefaultTTL)
	return quote.Quote.USD.Price, nil
}
