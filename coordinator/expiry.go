// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package coordinator

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-htlc/auction"
	"github.com/sprintertech/sprinter-htlc/security"
)

// TimeoutExpire moves an order whose auction elapsed to Expired and cancels
// all pending secret releases.
func (c *Coordinator) TimeoutExpire(ctx context.Context, orderID string) error {
	entry, err := c.entry(orderID)
	if err != nil {
		return err
	}

	entry.lock.Lock()
	defer entry.lock.Unlock()
	switch entry.order.Status {
	case Expired:
		return nil
	case Filled:
		return reject(Fatal, orderID, ErrOrderFilled)
	}

	pricer := auction.NewPricer(entry.order.Auction, c.now)
	if pricer.Status(entry.order.CreatedAt) != auction.StatusExpired {
		return reject(Validation, orderID, ErrAuctionActive)
	}

	c.expireLocked(entry)
	return nil
}

// expireLocked requires the entry lock.
func (c *Coordinator) expireLocked(entry *orderEntry) {
	order := entry.order
	order.Status = Expired
	for i, release := range entry.pending {
		release.cancel()
		delete(entry.pending, i)
	}

	c.metrics.TrackOrderFinalized(order.Route, Expired)
	log.Info().
		Str("orderID", order.ID).
		Str("remaining", order.RemainingAmount.String()).
		Int("fills", len(order.Fills)).
		Msg("Order expired")
	c.archiveLocked(entry, false)
}

// Monitor expires elapsed auctions and archives orders past their timelock
// every interval until ctx is cancelled.
func (c *Coordinator) Monitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

func (c *Coordinator) Sweep() {
	now := c.now()
	for _, entry := range c.entries() {
		entry.lock.Lock()
		order := entry.order
		pricer := auction.NewPricer(order.Auction, c.now)
		switch {
		case !order.Status.Terminal() && pricer.Status(order.CreatedAt) == auction.StatusExpired:
			c.expireLocked(entry)
		case order.Status.Terminal() && !now.Before(order.Timelock):
			c.archiveLocked(entry, true)
		}
		entry.lock.Unlock()
	}
}

// Pause halts fill admission and cancels every pending secret release.
func (c *Coordinator) Pause(user common.Address) error {
	if !c.guard.CheckAccess(user, security.PauseAction) {
		return reject(Authorization, "", security.ErrAccessDenied)
	}

	c.guard.Pause()
	return nil
}

// Resume lifts the pause. Releases cancelled while paused are not restarted.
func (c *Coordinator) Resume(user common.Address) error {
	if !c.guard.CheckAccess(user, security.PauseAction) {
		return reject(Authorization, "", security.ErrAccessDenied)
	}

	c.guard.Resume()
	return nil
}

func (c *Coordinator) Paused() bool {
	return c.guard.Paused()
}

func (c *Coordinator) cancelPending() {
	for _, entry := range c.entries() {
		entry.lock.Lock()
		for i, release := range entry.pending {
			release.cancel()
			delete(entry.pending, i)
		}
		entry.lock.Unlock()
	}
}

func (c *Coordinator) entries() []*orderEntry {
	c.lock.RLock()
	defer c.lock.RUnlock()

	entries := make([]*orderEntry, 0, len(c.orders))
	for _, entry := range c.orders {
		entries = append(entries, entry)
	}
	return entries
}
