package http

import (
	"errors"
	"net/http"

	"github.com/memehoueibib/securecode-platform-sub001/internal/app"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrAccessDenied:            {http.StatusForbidden, app.MsgAccessDenied},
	service.ErrAdminOnly:               {http.StatusForbidden, app.MsgAdminOnly},

	store.ErrLoginAlreadyExists: {http.StatusConflict, app.MsgLoginAlreadyExists},
	store.ErrNoUserWasFound:     {http.StatusNotFound, app.MsgUserNotFound},

	store.ErrBuildingSQLQuery: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingQuery:   {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrScanningRow:      {http.StatusInternalServerError, app.MsgInternalServerError},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponses {
		if errors.Is(err, target) {
			return resp
		}
	}
	return internalErrorResponse
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and replies with the status and message it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	http.Error(w, resp.message, resp.status)
}
