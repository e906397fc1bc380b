package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func (h *Handler) getUserState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.auth.State(r.Context()), http.StatusOK)
}

// setup creates the account. An empty body or phrase generates a new
// phrase which is returned once.
func (h *Handler) setup(w http.ResponseWriter, r *http.Request) {
	var req models.SetupRequest
	if !decodeOptionalJSON(w, r, &req) || !h.validate(w, r, &req, validators.FieldOptionalPhrase) {
		return
	}

	cred, err := h.auth.Setup(r.Context(), []byte(req.Phrase))
	if err != nil {
		writeError(w, r, err, "account setup failed")
		return
	}

	resp := models.SetupResponse{CreationTime: cred.CreationTime.Unix()}
	if req.Phrase == "" {
		resp.Phrase = string(cred.Phrase)
	}
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) getMigrationStatus(w http.ResponseWriter, r *http.Request) {
	resp := models.MigrationStatusResponse{Required: h.auth.IsMigrationRequired(r.Context())}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) migrate(w http.ResponseWriter, r *http.Request) {
	migrated, err := h.auth.Migrate(r.Context())
	if err != nil {
		writeError(w, r, err, "legacy migration failed")
		return
	}
	utils.WriteJSON(w, models.MigrationResponse{Migrated: migrated}, http.StatusOK)
}

func (h *Handler) configurePIN(w http.ResponseWriter, r *http.Request) {
	var req models.PINRequest
	if !decodeJSON(w, r, &req) || !h.validate(w, r, &req, validators.FieldPIN) {
		return
	}

	if err := h.auth.ConfigurePIN(r.Context(), req.PIN); err != nil {
		writeError(w, r, err, "pin setup failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// verifyPIN answers 200 for both outcomes; a wrong PIN is not an error.
func (h *Handler) verifyPIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.PINRequest
	if !decodeJSON(w, r, &req) || !h.validate(w, r, &req, validators.FieldPINCandidate) {
		return
	}

	verified, err := h.auth.VerifyPIN(ctx, req.PIN)
	if err != nil {
		writeError(w, r, err, "pin verification failed")
		return
	}

	utils.WriteJSON(w, models.PINVerification{
		Verified: verified,
		State:    h.auth.State(ctx),
	}, http.StatusOK)
}

func (h *Handler) clearPIN(w http.ResponseWriter, r *http.Request) {
	var req models.ClearPINRequest
	if !decodeJSON(w, r, &req) || !h.validate(w, r, &req) {
		return
	}

	if err := h.auth.ClearPIN(r.Context(), []byte(req.Phrase)); err != nil {
		writeError(w, r, err, "pin removal failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	h.auth.Lock()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	h.auth.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAuthPrompt(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]bool{"pending": h.prompt.Pending()}, http.StatusOK)
}

func (h *Handler) resolveAuthPrompt(w http.ResponseWriter, r *http.Request) {
	var req models.AuthDecision
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.prompt.Resolve(req.Approved); err != nil {
		writeError(w, r, err, "auth prompt not resolved")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// wipe drops the engine state first so no session outlives the credential.
func (h *Handler) wipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.session.Wipe(); err != nil {
		writeError(w, r, err, "engine wipe failed")
		return
	}
	if err := h.auth.Wipe(r.Context()); err != nil {
		writeError(w, r, err, "credential wipe failed")
		return
	}

	log.Info().Msg("wallet wiped")
	w.WriteHeader(http.StatusNoContent)
}

// validate answers 400 with the validation message when v is rejected.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request, v any, fields ...string) bool {
	if err := h.validator.Validate(r.Context(), v, fields...); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("request rejected by validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
	return false
}
