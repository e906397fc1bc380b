package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrPhraseAlreadyExists: http.StatusConflict,
	service.ErrSessionClosed:       http.StatusConflict,

	service.ErrInvalidPhrase:      http.StatusBadRequest,
	service.ErrInvalidPIN:         http.StatusBadRequest,
	store.ErrInvalidSyncMode:      http.StatusBadRequest,
	ErrInvalidWalletID:            http.StatusBadRequest,
	service.ErrPhraseMismatch:     http.StatusForbidden,
	service.ErrAuthDenied:         http.StatusForbidden,
	service.ErrAuthRequired:       http.StatusUnauthorized,
	store.ErrUserNotAuthenticated: http.StatusUnauthorized,
	service.ErrPhraseNotFound:     http.StatusNotFound,
	service.ErrNoPendingPrompt:    http.StatusNotFound,
	service.ErrNoAccount:          http.StatusNotFound,
	service.ErrUnknownWallet:      http.StatusNotFound,

	service.ErrStorageUnavailable: http.StatusServiceUnavailable,
	context.DeadlineExceeded:      http.StatusGatewayTimeout,

	service.ErrFailedToGeneratePhrase:    http.StatusInternalServerError,
	service.ErrFailedToPersistPhrase:     http.StatusInternalServerError,
	service.ErrFailedToCreateAccount:     http.StatusInternalServerError,
	service.ErrFailedToCreateAPIKey:      http.StatusInternalServerError,
	service.ErrFailedToCreateValidWallet: http.StatusInternalServerError,
	service.ErrMigrationFailed:           http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server errors
// hide the error text from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}
	log.Warn().Err(err).Msg(msg)
	http.Error(w, err.Error(), status)
}
