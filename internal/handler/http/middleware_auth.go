package http

import (
	"net/http"

	"github.com/memehoueibib/securecode-platform-sub001/internal/app"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/internal/utils"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user id and role in the
// request context (see [utils.WithUser]).
//
// Requests without a valid token are rejected with 401 Unauthorized and the
// [app.MsgTokenIsExpiredOrInvalid] body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetRoleFromContext(r.Context()) != models.RoleAdmin {
			writeError(w, r, service.ErrAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from an "Authorization: Bearer
// <token>" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return tokenString, nil
}
