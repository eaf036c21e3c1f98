// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package auction

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusWaiting Status = "waiting"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

var minute = decimal.NewFromInt(60)

// Config holds the Dutch auction parameters of a single order.
type Config struct {
	StartDelay            time.Duration   `json:"startDelay"`
	Duration              time.Duration   `json:"duration"`
	StartRateMultiplier   decimal.Decimal `json:"startRateMultiplier"`
	MinimumReturnRate     decimal.Decimal `json:"minimumReturnRate"`
	DecreaseRatePerMinute decimal.Decimal `json:"decreaseRatePerMinute"`
	PriceCurveSegments    uint            `json:"priceCurveSegments"`
}

func (c Config) Validate() error {
	if c.StartDelay < 0 {
		return fmt.Errorf("auction start delay %s is negative", c.StartDelay)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("auction duration %s must be positive", c.Duration)
	}
	if !c.StartRateMultiplier.IsPositive() {
		return fmt.Errorf("start rate multiplier %s must be positive", c.StartRateMultiplier)
	}
	if c.MinimumReturnRate.IsNegative() {
		return fmt.Errorf("minimum return rate %s is negative", c.MinimumReturnRate)
	}
	if c.MinimumReturnRate.GreaterThan(c.StartRateMultiplier) {
		return fmt.Errorf("minimum return rate %s exceeds start rate multiplier %s", c.MinimumReturnRate, c.StartRateMultiplier)
	}
	if c.DecreaseRatePerMinute.IsNegative() {
		return fmt.Errorf("decrease rate %s is negative", c.DecreaseRatePerMinute)
	}
	return nil
}

// Pricer computes the resolver facing rate of an order over time. It holds no
// state apart from its configuration and clock.
type Pricer struct {
	config Config
	now    func() time.Time
}

func NewPricer(config Config, now func() time.Time) *Pricer {
	if now == nil {
		now = time.Now
	}

	return &Pricer{
		config: config,
		now:    now,
	}
}

// StartTime is the moment the rate starts decaying.
func (p *Pricer) StartTime(createdAt time.Time) time.Time {
	return createdAt.Add(p.config.StartDelay)
}

// EndTime is the moment the auction expires.
func (p *Pricer) EndTime(createdAt time.Time) time.Time {
	return p.StartTime(createdAt).Add(p.config.Duration)
}

// CurrentRate returns marketRate * startRateMultiplier before the auction starts,
// after which the rate decays linearly per elapsed minute down to
// marketRate * minimumReturnRate.
func (p *Pricer) CurrentRate(createdAt time.Time, marketRate decimal.Decimal) decimal.Decimal {
	now := p.now()
	startRate := marketRate.Mul(p.config.StartRateMultiplier)

	start := p.StartTime(createdAt)
	if now.Before(start) {
		return startRate
	}

	elapsedMinutes := decimal.NewFromInt(int64(now.Sub(start) / time.Second)).Div(minute)
	decrease := elapsedMinutes.Mul(p.config.DecreaseRatePerMinute)
	floor := marketRate.Mul(p.config.MinimumReturnRate)
	rate := decimal.Max(startRate.Sub(decrease), floor)

	log.Debug().
		Str("marketRate", marketRate.String()).
		Str("elapsedMinutes", elapsedMinutes.String()).
		Str("rate", rate.String()).
		Str("floor", floor.String()).
		Msg("Calculated auction rate")
	return rate
}

// IsProfitable reports whether the rate covers the resolver cost.
func (p *Pricer) IsProfitable(rate decimal.Decimal, resolverCost decimal.Decimal) bool {
	return rate.GreaterThanOrEqual(resolverCost)
}

func (p *Pricer) Status(createdAt time.Time) Status {
	now := p.now()
	if now.Before(p.StartTime(createdAt)) {
		return StatusWaiting
	}
	if now.Before(p.EndTime(createdAt)) {
		return StatusActive
	}

	return StatusExpired
}
