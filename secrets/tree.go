// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package secrets

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

const (
	// MAX_PROOF_LENGTH bounds the number of siblings accepted during verification.
	MAX_PROOF_LENGTH = 64
)

var (
	ErrEmptySecrets    = errors.New("secret list is empty")
	ErrInvalidSegments = errors.New("segments must be greater than zero")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

// Tree is the commitment over the N+1 secrets of a partially fillable order.
type Tree struct {
	Secrets  []common.Hash
	Root     common.Hash
	Depth    uint
	Segments uint

	// levels[0] holds the leaves, the last level holds the root
	levels [][]common.Hash
}

// ProofNode is a sibling hash on the path from a leaf to the root. Left
// is true when the sibling is concatenated on the left side.
type ProofNode struct {
	Hash common.Hash `json:"hash"`
	Left bool        `json:"left"`
}

type Proof []ProofNode

// NewTree builds the commitment over already generated secrets.
func NewTree(secrets []common.Hash, segments uint, depth uint) (*Tree, error) {
	if len(secrets) == 0 {
		return nil, ErrEmptySecrets
	}

	leaves := make([]common.Hash, len(secrets))
	for i, s := range secrets {
		leaves[i] = Leaf(s)
	}

	levels := buildLevels(leaves)
	return &Tree{
		Secrets:  secrets,
		Root:     levels[len(levels)-1][0],
		Depth:    depth,
		Segments: segments,
		levels:   levels,
	}, nil
}

// Leaf hashes a raw secret into a tree leaf.
func Leaf(secret common.Hash) common.Hash {
	return crypto.Keccak256Hash(secret.Bytes())
}

// Node hashes two children into their parent.
func Node(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash(left.Bytes(), right.Bytes())
}

// buildLevels reduces the leaves level by level until a single root remains.
// An odd tail is paired with itself.
func buildLevels(leaves []common.Hash) [][]common.Hash {
	levels := [][]common.Hash{leaves}
	current := leaves
	for len(current) > 1 {
		next := make([]common.Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			left := current[i]
			right := left
			if i+1 < len(current) {
				right = current[i+1]
			}
			next = append(next, Node(left, right))
		}

		levels = append(levels, next)
		current = next
	}

	return levels
}

// Proof returns the sibling path for the leaf at index.
func (t *Tree) Proof(index int) (Proof, error) {
	if index < 0 || index >= len(t.Secrets) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	proof := make(Proof, 0, len(t.levels)-1)
	for _, level := range t.levels[:len(t.levels)-1] {
		var sibling ProofNode
		if index%2 == 0 {
			sibling.Hash = level[index]
			if index+1 < len(level) {
				sibling.Hash = level[index+1]
			}
		} else {
			sibling.Hash = level[index-1]
			sibling.Left = true
		}

		proof = append(proof, sibling)
		index /= 2
	}

	return proof, nil
}

// SecretForFill returns the secret mapped to the cumulative fill percentage
// together with its index.
func (t *Tree) SecretForFill(percentage decimal.Decimal) (common.Hash, int, error) {
	index, err := IndexForFill(len(t.Secrets), percentage)
	if err != nil {
		return common.Hash{}, 0, err
	}

	return t.Secrets[index], index, nil
}

// IndexForFill maps a fill percentage to floor(p * N / 100) clamped to [0, N],
// where N is secretCount - 1.
func IndexForFill(secretCount int, percentage decimal.Decimal) (int, error) {
	if secretCount == 0 {
		return 0, ErrEmptySecrets
	}

	n := int64(secretCount - 1)
	index := percentage.Mul(decimal.NewFromInt(n)).Div(decimal.NewFromInt(100)).Floor().IntPart()
	if index < 0 {
		return 0, nil
	}
	if index > n {
		return int(n), nil
	}

	return int(index), nil
}

// SecretForFill picks the secret for the fill percentage out of secrets.
func SecretForFill(secrets []common.Hash, percentage decimal.Decimal) (common.Hash, error) {
	index, err := IndexForFill(len(secrets), percentage)
	if err != nil {
		return common.Hash{}, err
	}

	return secrets[index], nil
}

// Verify reconstructs the root from the secret and the proof. Empty or
// oversized proofs are never valid.
func Verify(secret common.Hash, root common.Hash, proof Proof) bool {
	if len(proof) == 0 || len(proof) > MAX_PROOF_LENGTH {
		return false
	}

	current := Leaf(secret)
	for _, sibling := range proof {
		if sibling.Left {
			current = Node(sibling.Hash, current)
		} else {
			current = Node(current, sibling.Hash)
		}
	}

	return current == root
}

// HashLock computes the hashlock committed in an escrow for the secret.
func HashLock(secret common.Hash) common.Hash {
	return Leaf(secret)
}

// VerifyHashLock checks that the secret opens the hashlock.
func VerifyHashLock(secret common.Hash, hashlock common.Hash) bool {
	return HashLock(secret) == hashlock
}
