package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/coordinator"
)

type FillCoordinator interface {
	AdmitFill(ctx context.Context, req coordinator.FillRequest) (*coordinator.Admission, error)
	ReleaseFillSecret(ctx context.Context, admission *coordinator.Admission) (*coordinator.FillTicket, error)
	ReadmitFill(ctx context.Context, orderID string, fillIndex int, resolver common.Address) (*coordinator.Admission, error)
	CompleteFill(ctx context.Context, orderID string, fillIndex int) (*coordinator.Fill, error)
}

type SecretStore interface {
	Secret(orderID string, fillIndex int) (coordinator.FillSecret, error)
}

type FillBody struct {
	Signed
	Resolver     string          `json:"resolver"`
	Amount       *BigInt         `json:"amount"`
	ResolverCost decimal.Decimal `json:"resolverCost"`
	GasCost      *BigInt         `json:"gasCost"`
}

type ReleaseBody struct {
	Signed
	Resolver string `json:"resolver"`
}

type FillHandler struct {
	ctx         context.Context
	coordinator FillCoordinator
	secrets     SecretStore
}

// NewFillHandler creates the fill handler. Secret releases started by the
// handler outlive the request and are bound to ctx.
func NewFillHandler(ctx context.Context, coordinator FillCoordinator, secrets SecretStore) *FillHandler {
	return &FillHandler{
		ctx:         ctx,
		coordinator: coordinator,
		secrets:     secrets,
	}
}

// HandleFill admits the fill and returns status code 202 with the escrow
// details. The secret is released in the background once the source and
// destination escrows are final. The body must be signed by the resolver
// over the order id and amount.
func (h *FillHandler) HandleFill(w http.ResponseWriter, r *http.Request) {
	b := &FillBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	req, err := h.fillRequest(b, vars)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	err = authorize(req.Resolver, b.Signed, FILL_ACTION, req.OrderID, req.Amount.String())
	if err != nil {
		JSONError(w, fmt.Errorf("unauthorized: %w", err), http.StatusUnauthorized)
		return
	}

	admission, err := h.coordinator.AdmitFill(r.Context(), req)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	go h.release(admission)

	JSONResponse(w, admission, http.StatusAccepted)
}

// HandleRelease restarts the secret release of an admitted fill whose
// previous release was interrupted by a pause. The body must be signed by
// the resolver of the fill.
func (h *FillHandler) HandleRelease(w http.ResponseWriter, r *http.Request) {
	b := &ReleaseBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	orderID := vars["orderId"]
	if orderID == "" {
		JSONError(w, fmt.Errorf("missing 'orderId'"), http.StatusBadRequest)
		return
	}
	fillIndex, err := parseFillIndex(vars)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	resolver, err := parseAddress("resolver", b.Resolver)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	err = authorize(resolver, b.Signed, RELEASE_ACTION, orderID, strconv.Itoa(fillIndex))
	if err != nil {
		JSONError(w, fmt.Errorf("unauthorized: %w", err), http.StatusUnauthorized)
		return
	}

	admission, err := h.coordinator.ReadmitFill(r.Context(), orderID, fillIndex, resolver)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	go h.release(admission)

	JSONResponse(w, admission, http.StatusAccepted)
}

// HandleComplete withdraws the destination escrow for the maker and
// releases the resolver's safety deposit
func (h *FillHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]
	if orderID == "" {
		JSONError(w, fmt.Errorf("missing 'orderId'"), http.StatusBadRequest)
		return
	}
	fillIndex, err := parseFillIndex(vars)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	fill, err := h.coordinator.CompleteFill(r.Context(), orderID, fillIndex)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	JSONResponse(w, fill, http.StatusOK)
}

// HandleSecret returns a released fill secret to the resolver of the fill.
// The resolver signs the order id and fill index and passes the deadline
// and signature as query parameters.
func (h *FillHandler) HandleSecret(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]
	if orderID == "" {
		JSONError(w, fmt.Errorf("missing 'orderId'"), http.StatusBadRequest)
		return
	}
	fillIndex, err := parseFillIndex(vars)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	query := r.URL.Query()
	resolver, err := parseAddress("resolver", query.Get("resolver"))
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	deadline, err := strconv.ParseUint(query.Get("deadline"), 10, 64)
	if err != nil {
		JSONError(w, fmt.Errorf("field 'deadline' invalid"), http.StatusBadRequest)
		return
	}
	err = authorize(resolver, Signed{Deadline: deadline, Signature: query.Get("signature")}, SECRET_ACTION, orderID, strconv.Itoa(fillIndex))
	if err != nil {
		JSONError(w, fmt.Errorf("unauthorized: %w", err), http.StatusUnauthorized)
		return
	}

	secret, err := h.secrets.Secret(orderID, fillIndex)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}
	if secret.Resolver != resolver {
		JSONError(w, fmt.Errorf("secret not released to %s", resolver.Hex()), http.StatusForbidden)
		return
	}

	JSONResponse(w, secret, http.StatusOK)
}

func (h *FillHandler) release(admission *coordinator.Admission) {
	_, err := h.coordinator.ReleaseFillSecret(h.ctx, admission)
	if err != nil {
		log.Warn().
			Str("orderID", admission.OrderID).
			Int("fillIndex", admission.FillIndex).
			Msgf("Secret release failed: %s", err)
	}
}

func (h *FillHandler) fillRequest(b *FillBody, vars map[string]string) (coordinator.FillRequest, error) {
	orderID := vars["orderId"]
	if orderID == "" {
		return coordinator.FillRequest{}, fmt.Errorf("missing 'orderId'")
	}
	resolver, err := parseAddress("resolver", b.Resolver)
	if err != nil {
		return coordinator.FillRequest{}, err
	}
	if b.Amount == nil {
		return coordinator.FillRequest{}, fmt.Errorf("missing field 'amount'")
	}

	req := coordinator.FillRequest{
		OrderID:      orderID,
		Resolver:     resolver,
		Amount:       b.Amount.Int,
		ResolverCost: b.ResolverCost,
	}
	if b.GasCost != nil {
		req.GasCost = b.GasCost.Int
	}
	return req, nil
}
