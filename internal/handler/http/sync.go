package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/memehoueibib/securecode-platform-sub001/internal/app"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/utils"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

func (h *Handler) syncUserData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	userID := chi.URLParam(r, "userID")
	requester := models.Identity{UserID: requesterID, Role: utils.GetRoleFromContext(ctx)}

	synced, err := h.services.SyncService.SyncUserData(ctx, requester, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, synced, http.StatusOK)
}

func (h *Handler) getSyncStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.AnalyticsService.GetSyncStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
