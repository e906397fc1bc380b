package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// views returns the open session's read side or answers 409.
func (h *Handler) views(w http.ResponseWriter, r *http.Request) (service.WalletViews, bool) {
	v, ok := h.session.Views()
	if !ok {
		writeError(w, r, service.ErrSessionClosed, "wallets requested while session is closed")
		return nil, false
	}
	return v, true
}

func walletID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil || id == "" {
		writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidWalletID, chi.URLParam(r, "id")), "bad wallet id")
		return "", false
	}
	return id, true
}

// getWallets lists the wallets of the open session. ?tracked=true limits
// the list to the enabled currencies.
func (h *Handler) getWallets(w http.ResponseWriter, r *http.Request) {
	v, ok := h.views(w, r)
	if !ok {
		return
	}

	var opts []service.ViewOption
	if raw := r.URL.Query().Get("tracked"); raw != "" {
		tracked, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "invalid `tracked` parameter", http.StatusBadRequest)
			return
		}
		if tracked {
			opts = append(opts, service.FilterTracked())
		}
	}

	wallets := v.WalletsSnapshot(opts...)
	if wallets == nil {
		wallets = []models.WalletView{}
	}
	utils.WriteJSON(w, wallets, http.StatusOK)
}

func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	id, ok := walletID(w, r)
	if !ok {
		return
	}
	v, ok := h.views(w, r)
	if !ok {
		return
	}

	wallet, found := v.WalletSnapshot(id)
	if !found {
		writeError(w, r, fmt.Errorf("%w: %s", service.ErrUnknownWallet, id), "wallet lookup failed")
		return
	}
	utils.WriteJSON(w, wallet, http.StatusOK)
}

func (h *Handler) getTransfers(w http.ResponseWriter, r *http.Request) {
	id, ok := walletID(w, r)
	if !ok {
		return
	}
	v, ok := h.views(w, r)
	if !ok {
		return
	}

	transfers, found := v.TransfersSnapshot(id)
	if !found {
		writeError(w, r, fmt.Errorf("%w: %s", service.ErrUnknownWallet, id), "transfer lookup failed")
		return
	}
	if transfers == nil {
		transfers = []models.TransferView{}
	}
	utils.WriteJSON(w, transfers, http.StatusOK)
}

func (h *Handler) getWalletState(w http.ResponseWriter, r *http.Request) {
	id, ok := walletID(w, r)
	if !ok {
		return
	}
	v, ok := h.views(w, r)
	if !ok {
		return
	}

	state, found := v.WalletStateSnapshot(id)
	if !found {
		writeError(w, r, fmt.Errorf("%w: %s", service.ErrUnknownWallet, id), "wallet state lookup failed")
		return
	}
	utils.WriteJSON(w, state, http.StatusOK)
}

// initializeWallet retries network activation allowing account creation.
func (h *Handler) initializeWallet(w http.ResponseWriter, r *http.Request) {
	id, ok := walletID(w, r)
	if !ok {
		return
	}

	state, err := h.session.InitializeWallet(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "wallet initialization failed")
		return
	}
	utils.WriteJSON(w, models.WalletStateFrom(state), http.StatusOK)
}

func (h *Handler) setEnabledWallets(w http.ResponseWriter, r *http.Request) {
	var req models.EnabledWalletsRequest
	if !decodeJSON(w, r, &req) || !h.validate(w, r, &req) {
		return
	}

	if err := h.selection.SetEnabledWallets(r.Context(), req.CurrencyIDs); err != nil {
		writeError(w, r, err, "enabled wallets not saved")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setWalletMode(w http.ResponseWriter, r *http.Request) {
	id, ok := walletID(w, r)
	if !ok {
		return
	}

	var req models.WalletModeRequest
	if !decodeJSON(w, r, &req) || !h.validate(w, r, &req) {
		return
	}

	if err := h.selection.SetWalletMode(r.Context(), id, req.Mode); err != nil {
		writeError(w, r, err, "wallet mode not saved")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
