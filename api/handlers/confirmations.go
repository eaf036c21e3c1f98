package handlers

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/gorilla/mux"
)

type ConfirmationsResponse struct {
	ChainID       uint64 `json:"chainId"`
	Confirmations uint64 `json:"confirmations"`
}

type ConfirmationsHandler struct {
	confirmationsByChain map[uint64]uint64
}

func NewConfirmationsHandler(confirmationsByChain map[uint64]uint64) *ConfirmationsHandler {
	return &ConfirmationsHandler{
		confirmationsByChain: confirmationsByChain,
	}
}

// HandleRequest returns the finality depth an escrow on the requested chain
// needs before its secret is released
func (h *ConfirmationsHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	confirmations, ok := h.confirmationsByChain[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("no confirmations for chainID: %d", chainId.Uint64()), http.StatusNotFound)
		return
	}

	JSONResponse(w, ConfirmationsResponse{
		ChainID:       chainId.Uint64(),
		Confirmations: confirmations,
	}, http.StatusOK)
}
