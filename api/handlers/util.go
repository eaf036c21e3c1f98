package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sprintertech/sprinter-htlc/coordinator"
	"github.com/sprintertech/sprinter-htlc/security"
)

// Actions named in signed requests.
const (
	PAUSE_ACTION   = "pause"
	RESUME_ACTION  = "resume"
	FILL_ACTION    = "fill"
	RELEASE_ACTION = "release"
	SECRET_ACTION  = "secret"
)

// Signed carries the authorization of a request. The signature is the
// EIP-191 personal signature of security.RequestDigest.
type Signed struct {
	Deadline  uint64 `json:"deadline"`
	Signature string `json:"signature"`
}

type BigInt struct {
	*big.Int
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", b.String())), nil
}

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
		Kind   string `json:"kind,omitempty"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	var rejection *coordinator.RejectionError
	if errors.As(err, &rejection) {
		resp.Kind = string(rejection.Kind)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func JSONResponse(w http.ResponseWriter, v interface{}, code int) {
	data, err := json.Marshal(v)
	if err != nil {
		JSONError(w, fmt.Errorf("failed encoding response: %s", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// CoordinatorError writes the coordinator error with the status code
// matching its rejection kind.
func CoordinatorError(w http.ResponseWriter, err error) {
	JSONError(w, err, statusCode(err))
}

func statusCode(err error) int {
	if errors.Is(err, coordinator.ErrOrderNotFound) || errors.Is(err, coordinator.ErrFillNotFound) {
		return http.StatusNotFound
	}

	switch coordinator.KindOf(err) {
	case coordinator.Validation:
		return http.StatusBadRequest
	case coordinator.Authorization:
		return http.StatusForbidden
	case coordinator.Concurrency, coordinator.Fatal:
		return http.StatusConflict
	case coordinator.Economic:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func parseAddress(field string, value string) (common.Address, error) {
	if value == "" {
		return common.Address{}, fmt.Errorf("missing field '%s'", field)
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("field '%s' invalid", field)
	}
	return common.HexToAddress(value), nil
}

func parseFillIndex(vars map[string]string) (int, error) {
	index, err := strconv.Atoi(vars["fillIndex"])
	if err != nil || index < 0 {
		return 0, fmt.Errorf("fill index invalid")
	}
	return index, nil
}

// authorize verifies that signer signed the action and fields with a
// deadline that has not passed.
func authorize(signer common.Address, signed Signed, action string, fields ...string) error {
	signature, err := hexutil.Decode(signed.Signature)
	if err != nil {
		return fmt.Errorf("field 'signature' invalid: %w", err)
	}

	return security.VerifyRequest(time.Now(), signer, security.Authorization{
		Deadline:  signed.Deadline,
		Signature: signature,
	}, action, fields...)
}
