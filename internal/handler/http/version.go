package http

import (
	"io"
	"net/http"

	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
)

// getServerVersion answers with the plain-text application version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, serverVersion); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing version response")
	}
}
