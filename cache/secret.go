package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-htlc/coordinator"
)

const (
	SECRET_TTL = time.Hour * 2
)

type SecretPublisher interface {
	PublishSecret(secret coordinator.FillSecret) error
}

// SecretCache keeps released fill secrets so resolvers can fetch them
// after the release completed.
type SecretCache struct {
	secretCache *ttlcache.Cache[string, coordinator.FillSecret]
	publisher   SecretPublisher
}

func NewSecretCache(publisher SecretPublisher) *SecretCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, coordinator.FillSecret](SECRET_TTL),
	)

	return &SecretCache{
		secretCache: cache,
		publisher:   publisher,
	}
}

func (s *SecretCache) Secret(orderID string, fillIndex int) (coordinator.FillSecret, error) {
	secret := s.secretCache.Get(secretID(orderID, fillIndex))
	if secret == nil {
		return coordinator.FillSecret{}, fmt.Errorf("no secret released for fill %d of order %s", fillIndex, orderID)
	}

	return secret.Value(), nil
}

// Watch stores every secret received on secretChn and forwards it to the
// publisher until ctx is cancelled.
func (s *SecretCache) Watch(ctx context.Context, secretChn chan coordinator.FillSecret) {
	go s.secretCache.Start()

	for {
		select {
		case secret := <-secretChn:
			{
				s.secretCache.Set(secretID(secret.OrderID, secret.FillIndex), secret, ttlcache.DefaultTTL)
				log.Debug().Msgf("Cached secret for fill %d of order %s", secret.FillIndex, secret.OrderID)

				err := s.publisher.PublishSecret(secret)
				if err != nil {
					log.Warn().Str("orderID", secret.OrderID).Msgf("Failed to publish secret: %s", err)
				}
			}
		case <-ctx.Done():
			{
				s.secretCache.Stop()
				return
			}
		}
	}
}

func secretID(orderID string, fillIndex int) string {
	return fmt.Sprintf("%s:%d", orderID, fillIndex)
}
