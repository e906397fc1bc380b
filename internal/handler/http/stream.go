package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// streamUserState pushes every user state as a server-sent event until
// the client goes away. Disabled countdown ticks are included.
func (h *Handler) streamUserState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Msg("response writer does not support flushing")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for state := range h.auth.StateChanges(ctx, true) {
		data, err := json.Marshal(state)
		if err != nil {
			log.Err(err).Msg("user state not encoded")
			return
		}
		if _, err = fmt.Fprintf(w, "event: state\ndata: %s\n\n", data); err != nil {
			log.Debug().Err(err).Msg("state stream closed by client")
			return
		}
		flusher.Flush()
	}
}
