package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
)

// withControlToken rejects requests whose bearer token differs from the
// configured control token. An empty control token disables the check.
func (h *Handler) withControlToken(next http.Handler) http.Handler {
	if h.controlToken == "" {
		return next
	}

	expected := []byte(h.controlToken)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("control token missing")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
			log.Warn().Msg("control token mismatch")
			http.Error(w, ErrInvalidControlToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
