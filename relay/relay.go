// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-htlc/coordinator"
)

type Config struct {
	// Enabled switches between NATS and log only relaying
	Enabled         bool
	NotifyResolvers bool
	URL             string
	SubjectPrefix   string
	Timeout         time.Duration
}

type Publisher interface {
	Publish(subject string, data []byte) error
}

// Connect opens a reconnecting NATS connection.
func Connect(config Config) (*nats.Conn, error) {
	conn, err := nats.Connect(config.URL,
		nats.Timeout(config.Timeout),
		nats.ReconnectWait(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Msgf("NATS connection lost: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Msgf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed connecting to NATS: %w", err)
	}

	return conn, nil
}

// NATSRelay shares orders and released secrets with resolvers over NATS
// subjects.
type NATSRelay struct {
	publisher Publisher
	prefix    string
}

func NewNATSRelay(publisher Publisher, prefix string) *NATSRelay {
	return &NATSRelay{
		publisher: publisher,
		prefix:    prefix,
	}
}

func (r *NATSRelay) PublishOrder(ctx context.Context, order *coordinator.Order) error {
	subject := fmt.Sprintf("%s.orders.%d.%d", r.prefix, order.Route.SourceChain, order.Route.DestinationChain)
	return r.publish(subject, order)
}

func (r *NATSRelay) NotifyResolver(ctx context.Context, resolver common.Address, order *coordinator.Order) error {
	return r.publish(r.resolverSubject(resolver, "orders"), order)
}

// PublishSecret delivers a released secret to the resolver of the fill.
func (r *NATSRelay) PublishSecret(secret coordinator.FillSecret) error {
	return r.publish(r.resolverSubject(secret.Resolver, "secrets"), secret)
}

func (r *NATSRelay) resolverSubject(resolver common.Address, kind string) string {
	return fmt.Sprintf("%s.resolvers.%s.%s", r.prefix, strings.ToLower(resolver.Hex()), kind)
}

func (r *NATSRelay) publish(subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	err = r.publisher.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("failed publishing to %s: %w", subject, err)
	}

	log.Debug().Str("subject", subject).Msgf("Published %d bytes", len(data))
	return nil
}

// LogRelay only logs orders. It is used when the relay service is disabled.
type LogRelay struct{}

func (LogRelay) PublishOrder(ctx context.Context, order *coordinator.Order) error {
	log.Info().
		Str("orderID", order.ID).
		Uint64("sourceChain", order.Route.SourceChain).
		Uint64("destinationChain", order.Route.DestinationChain).
		Str("merkleRoot", order.MerkleRoot.Hex()).
		Msg("Relay disabled, order not shared")
	return nil
}

func (LogRelay) NotifyResolver(ctx context.Context, resolver common.Address, order *coordinator.Order) error {
	log.Debug().Str("orderID", order.ID).Str("resolver", resolver.Hex()).Msg("Relay disabled, resolver not notified")
	return nil
}

func (LogRelay) PublishSecret(secret coordinator.FillSecret) error {
	return nil
}
