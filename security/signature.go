// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package security

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MAX_DEADLINE_WINDOW bounds how far ahead a signed request deadline can be.
const MAX_DEADLINE_WINDOW = 10 * time.Minute

const SIGNATURE_DOMAIN = "sprinter-htlc"

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrDeadlineExpired  = errors.New("request deadline expired")
	ErrDeadlineTooFar   = errors.New("request deadline too far in the future")
)

// Authorization is the deadline and EIP-191 signature a caller attaches to
// a request to prove it controls the address it acts for.
type Authorization struct {
	Deadline  uint64
	Signature []byte
}

// RequestDigest returns the EIP-191 personal message hash of the action, its
// deadline and the request fields.
func RequestDigest(action string, deadline uint64, fields ...string) []byte {
	parts := append([]string{SIGNATURE_DOMAIN, action, strconv.FormatUint(deadline, 10)}, fields...)
	return accounts.TextHash([]byte(strings.Join(parts, ":")))
}

// RecoverSigner returns the address that signed the digest. Both the 0/1 and
// the 27/28 recovery id encodings are accepted.
func RecoverSigner(digest []byte, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(signature))
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubkey, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pubkey), nil
}

// VerifyRequest checks the authorization deadline against now and that the
// signature over the action and fields was made by signer.
func VerifyRequest(now time.Time, signer common.Address, auth Authorization, action string, fields ...string) error {
	deadline := time.Unix(int64(auth.Deadline), 0)
	if !deadline.After(now) {
		return ErrDeadlineExpired
	}
	if deadline.After(now.Add(MAX_DEADLINE_WINDOW)) {
		return ErrDeadlineTooFar
	}

	recovered, err := RecoverSigner(RequestDigest(action, auth.Deadline, fields...), auth.Signature)
	if err != nil {
		return err
	}
	if recovered != signer {
		return fmt.Errorf("%w: signed by %s", ErrInvalidSignature, recovered.Hex())
	}

	return nil
}
