// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package secrets

import (
	"crypto/rand"
	"io"
	"math/bits"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Depth           uint
	Segments        uint
	ReusePrevention bool
}

// RequiredDepth is the depth of a tree holding segments+1 leaves.
func RequiredDepth(segments uint) uint {
	leaves := segments + 1
	if leaves <= 1 {
		return 0
	}

	return uint(bits.Len(leaves - 1))
}

// Generator creates secret trees. With reuse prevention enabled it remembers
// every secret it has issued and never issues the same value twice.
type Generator struct {
	config Config
	random io.Reader

	lock sync.Mutex
	used map[common.Hash]struct{}
}

func NewGenerator(config Config) *Generator {
	if config.Depth != RequiredDepth(config.Segments) {
		log.Warn().Msgf(
			"Configured secret tree depth %d differs from depth %d required by %d segments",
			config.Depth, RequiredDepth(config.Segments), config.Segments)
	}

	return &Generator{
		config: config,
		random: rand.Reader,
		used:   make(map[common.Hash]struct{}),
	}
}

// NewGeneratorWithSource is used to inject a deterministic randomness source.
func NewGeneratorWithSource(config Config, random io.Reader) *Generator {
	g := NewGenerator(config)
	g.random = random
	return g
}

// Generate creates segments+1 secrets and the tree committing to them.
func (g *Generator) Generate(segments uint) (*Tree, error) {
	if segments == 0 {
		return nil, ErrInvalidSegments
	}

	g.lock.Lock()
	defer g.lock.Unlock()

	secrets := make([]common.Hash, 0, segments+1)
	for i := uint(0); i <= segments; i++ {
		secret, err := g.nextSecret()
		if err != nil {
			return nil, err
		}

		secrets = append(secrets, secret)
	}

	tree, err := NewTree(secrets, segments, g.config.Depth)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Uint("segments", segments).
		Int("secrets", len(secrets)).
		Uint("depth", g.config.Depth).
		Str("root", tree.Root.Hex()).
		Bool("reusePrevention", g.config.ReusePrevention).
		Msg("Generated secret tree")
	return tree, nil
}

// GenerateDefault creates a tree with the configured number of segments.
func (g *Generator) GenerateDefault() (*Tree, error) {
	return g.Generate(g.config.Segments)
}

func (g *Generator) nextSecret() (common.Hash, error) {
	for {
		var secret common.Hash
		if _, err := io.ReadFull(g.random, secret[:]); err != nil {
			return common.Hash{}, err
		}

		if !g.config.ReusePrevention {
			return secret, nil
		}

		if _, ok := g.used[secret]; ok {
			continue
		}

		g.used[secret] = struct{}{}
		return secret, nil
	}
}
