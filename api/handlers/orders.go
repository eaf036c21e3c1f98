package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/auction"
	"github.com/sprintertech/sprinter-htlc/coordinator"
)

type OrderCoordinator interface {
	SubmitOrder(ctx context.Context, req coordinator.SubmitRequest) (*coordinator.Order, error)
	Broadcast(ctx context.Context, orderID string) error
	Order(orderID string) (*coordinator.Order, error)
	CurrentRate(orderID string) (decimal.Decimal, auction.Status, error)
}

type OrderBody struct {
	Maker             string          `json:"maker"`
	SourceChain       uint64          `json:"sourceChain"`
	DestinationChain  uint64          `json:"destinationChain"`
	SourceAmount      *BigInt         `json:"sourceAmount"`
	DestinationAmount *BigInt         `json:"destinationAmount"`
	MarketRate        decimal.Decimal `json:"marketRate"`
	Segments          uint            `json:"segments"`
}

type RateResponse struct {
	OrderID string          `json:"orderId"`
	Rate    decimal.Decimal `json:"rate"`
	Status  auction.Status  `json:"status"`
}

type OrderHandler struct {
	coordinator OrderCoordinator
}

func NewOrderHandler(coordinator OrderCoordinator) *OrderHandler {
	return &OrderHandler{
		coordinator: coordinator,
	}
}

// HandleSubmit registers a new order and returns it with status code 201
func (h *OrderHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	b := &OrderBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	req, err := h.submitRequest(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	order, err := h.coordinator.SubmitOrder(r.Context(), req)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	JSONResponse(w, order, http.StatusCreated)
}

// HandleBroadcast starts the auction of a pending order
func (h *OrderHandler) HandleBroadcast(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		JSONError(w, fmt.Errorf("missing 'orderId'"), http.StatusBadRequest)
		return
	}

	err := h.coordinator.Broadcast(r.Context(), orderID)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		JSONError(w, fmt.Errorf("missing 'orderId'"), http.StatusBadRequest)
		return
	}

	order, err := h.coordinator.Order(orderID)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	JSONResponse(w, order, http.StatusOK)
}

// HandleRate returns the current auction rate of the order
func (h *OrderHandler) HandleRate(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		JSONError(w, fmt.Errorf("missing 'orderId'"), http.StatusBadRequest)
		return
	}

	rate, status, err := h.coordinator.CurrentRate(orderID)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	JSONResponse(w, RateResponse{
		OrderID: orderID,
		Rate:    rate,
		Status:  status,
	}, http.StatusOK)
}

func (h *OrderHandler) submitRequest(b *OrderBody) (coordinator.SubmitRequest, error) {
	maker, err := parseAddress("maker", b.Maker)
	if err != nil {
		return coordinator.SubmitRequest{}, err
	}
	if b.SourceChain == 0 {
		return coordinator.SubmitRequest{}, fmt.Errorf("missing field 'sourceChain'")
	}
	if b.DestinationChain == 0 {
		return coordinator.SubmitRequest{}, fmt.Errorf("missing field 'destinationChain'")
	}
	if b.SourceAmount == nil {
		return coordinator.SubmitRequest{}, fmt.Errorf("missing field 'sourceAmount'")
	}
	if b.DestinationAmount == nil {
		return coordinator.SubmitRequest{}, fmt.Errorf("missing field 'destinationAmount'")
	}

	return coordinator.SubmitRequest{
		Maker: maker,
		Route: coordinator.Route{
			SourceChain:       b.SourceChain,
			DestinationChain:  b.DestinationChain,
			SourceAmount:      b.SourceAmount.Int,
			DestinationAmount: b.DestinationAmount.Int,
		},
		MarketRate: b.MarketRate,
		Segments:   b.Segments,
	}, nil
}
