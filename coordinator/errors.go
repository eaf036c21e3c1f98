// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package coordinator

import (
	"errors"
	"fmt"
)

type Kind string

const (
	Validation    Kind = "validation"
	Authorization Kind = "authorization"
	Concurrency   Kind = "concurrency"
	Economic      Kind = "economic"
	External      Kind = "external"
	Fatal         Kind = "fatal"
)

var (
	ErrInvalidOrder          = errors.New("invalid order")
	ErrInvalidFill           = errors.New("invalid fill request")
	ErrOrderNotFound         = errors.New("order not found")
	ErrFillNotFound          = errors.New("fill not found")
	ErrOrderFilled           = errors.New("order already filled")
	ErrExpired               = errors.New("order expired")
	ErrAuctionActive         = errors.New("auction still active")
	ErrNotBroadcast          = errors.New("order not broadcast")
	ErrAlreadyBroadcast      = errors.New("order already broadcast")
	ErrInsufficientRemaining = errors.New("fill amount exceeds remaining amount")
	ErrSegmentConsumed       = errors.New("fill does not reach an unused secret segment")
	ErrNotProfitable         = errors.New("auction rate does not cover resolver cost")
	ErrGasUnfavourable       = errors.New("gas adjusted price below execution threshold")
	ErrSecretNotReleased     = errors.New("fill secret not released")
	ErrFillCancelled         = errors.New("fill secret release cancelled")
	ErrFillNotPending        = errors.New("fill is not awaiting its secret")
	ErrReleaseInProgress     = errors.New("fill secret release already in progress")
	ErrEscrowRefunded        = errors.New("fill escrow refunded")
)

// RejectionError is returned for every rejected operation. Kind tells the
// caller whether retrying can succeed.
type RejectionError struct {
	Kind    Kind
	OrderID string
	Err     error
}

func (e *RejectionError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error for order %s: %s", e.Kind, e.OrderID, e.Err)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

func reject(kind Kind, orderID string, err error) error {
	return &RejectionError{
		Kind:    kind,
		OrderID: orderID,
		Err:     err,
	}
}

// KindOf returns the rejection kind of err, External for errors that
// are not rejections.
func KindOf(err error) Kind {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Kind
	}
	return External
}
