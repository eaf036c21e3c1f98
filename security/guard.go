// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package security

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const (
	REENTRANCY_COOLDOWN = time.Minute
)

type Action string

const (
	AdminAction    Action = "admin"
	ResolverAction Action = "resolver"
	PauseAction    Action = "pause"
	// MakerAction is open to any non zero address
	MakerAction Action = "maker"
)

var (
	ErrPaused       = errors.New("operations are paused")
	ErrReentrancy   = errors.New("operation already in progress")
	ErrAccessDenied = errors.New("access denied")
)

type Config struct {
	ReentrancyProtection bool
	ReentrancyCooldown   time.Duration
	EmergencyPause       bool
	Admins               []common.Address
	Resolvers            []common.Address
	// PauseGuardian defaults to the first admin when empty
	PauseGuardian common.Address
}

// Guard serializes operations per id, gates actions by role and
// carries the global pause flag.
type Guard struct {
	config Config

	lock       sync.Mutex
	inProgress *ttlcache.Cache[string, time.Time]

	pauseLock sync.RWMutex
	paused    bool
	onPause   []func()
}

func NewGuard(config Config) *Guard {
	if config.ReentrancyCooldown == 0 {
		config.ReentrancyCooldown = REENTRANCY_COOLDOWN
	}
	if config.PauseGuardian == (common.Address{}) && len(config.Admins) > 0 {
		config.PauseGuardian = config.Admins[0]
	}

	return &Guard{
		config: config,
		inProgress: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](config.ReentrancyCooldown),
		),
	}
}

// Start runs the expiry loop of reentrancy markers until Stop is called.
func (g *Guard) Start() {
	g.inProgress.Start()
}

func (g *Guard) Stop() {
	g.inProgress.Stop()
}

// CheckReentrancy marks the operation as in progress and returns false if
// it already was. Markers are released by Release or after the cool-down.
func (g *Guard) CheckReentrancy(operationID string) bool {
	if !g.config.ReentrancyProtection {
		return true
	}

	g.lock.Lock()
	defer g.lock.Unlock()

	if g.inProgress.Has(operationID) {
		log.Warn().Str("operationID", operationID).Msg("Reentrancy attempt rejected")
		return false
	}

	g.inProgress.Set(operationID, time.Now(), ttlcache.DefaultTTL)
	return true
}

// Release clears the in progress marker of the operation.
func (g *Guard) Release(operationID string) {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.inProgress.Delete(operationID)
}

func (g *Guard) CheckAccess(user common.Address, action Action) bool {
	switch action {
	case AdminAction:
		return g.isAdmin(user)
	case ResolverAction:
		return g.IsResolver(user)
	case PauseAction:
		return user == g.config.PauseGuardian || g.isAdmin(user)
	case MakerAction:
		return user != (common.Address{})
	default:
		return false
	}
}

// IsResolver reports whether the user may fill orders. An empty whitelist
// admits everyone.
func (g *Guard) IsResolver(user common.Address) bool {
	if len(g.config.Resolvers) == 0 {
		return true
	}
	return slices.Contains(g.config.Resolvers, user)
}

// Resolvers returns the configured resolver whitelist.
func (g *Guard) Resolvers() []common.Address {
	return slices.Clone(g.config.Resolvers)
}

func (g *Guard) isAdmin(user common.Address) bool {
	return slices.Contains(g.config.Admins, user)
}

// Pause stops all state changing operations. It is a no-op when emergency
// pause is disabled.
func (g *Guard) Pause() {
	if !g.config.EmergencyPause {
		log.Warn().Msg("Emergency pause is disabled, ignoring pause request")
		return
	}

	g.pauseLock.Lock()
	g.paused = true
	callbacks := slices.Clone(g.onPause)
	g.pauseLock.Unlock()

	log.Warn().Msg("Operations paused")
	for _, callback := range callbacks {
		callback()
	}
}

func (g *Guard) Resume() {
	if !g.config.EmergencyPause {
		log.Warn().Msg("Emergency pause is disabled, ignoring resume request")
		return
	}

	g.pauseLock.Lock()
	g.paused = false
	g.pauseLock.Unlock()

	log.Info().Msg("Operations resumed")
}

func (g *Guard) Paused() bool {
	g.pauseLock.RLock()
	defer g.pauseLock.RUnlock()

	return g.paused
}

// OnPause registers a callback invoked every time operations get paused.
func (g *Guard) OnPause(callback func()) {
	g.pauseLock.Lock()
	defer g.pauseLock.Unlock()

	g.onPause = append(g.onPause, callback)
}

// Check runs the pause, reentrancy and access checks in that order. The
// reentrancy marker is released if the access check fails.
func (g *Guard) Check(operationID string, user common.Address, action Action) error {
	if g.Paused() {
		return ErrPaused
	}
	if !g.CheckReentrancy(operationID) {
		return ErrReentrancy
	}
	if !g.CheckAccess(user, action) {
		g.Release(operationID)
		return ErrAccessDenied
	}

	return nil
}

func (g *Guard) PerformSecurityCheck(operationID string, user common.Address, action Action) bool {
	return g.Check(operationID, user, action) == nil
}
