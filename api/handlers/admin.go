package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
)

type Pauser interface {
	Pause(user common.Address) error
	Resume(user common.Address) error
}

type AdminBody struct {
	Signed
	User string `json:"user"`
}

type AdminHandler struct {
	pauser Pauser
}

func NewAdminHandler(pauser Pauser) *AdminHandler {
	return &AdminHandler{
		pauser: pauser,
	}
}

// HandlePause stops fills and cancels pending secret releases. The body
// must be signed by the admin.
func (h *AdminHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, PAUSE_ACTION, h.pauser.Pause)
}

func (h *AdminHandler) HandleResume(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, RESUME_ACTION, h.pauser.Resume)
}

func (h *AdminHandler) handle(w http.ResponseWriter, r *http.Request, name string, action func(common.Address) error) {
	b := &AdminBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	user, err := parseAddress("user", b.User)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	err = authorize(user, b.Signed, name)
	if err != nil {
		JSONError(w, fmt.Errorf("unauthorized: %w", err), http.StatusUnauthorized)
		return
	}

	err = action(user)
	if err != nil {
		CoordinatorError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
