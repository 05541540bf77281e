package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/memehoueibib/securecode-platform-sub001/internal/config"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/utils"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

const userAgent = "securecode-client"

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient(userAgent)
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/user/register and keeps the bearer token from the Authorization header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/user/login and keeps the bearer token from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&found).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	h.SetToken(token)
	return found, nil
}

// SyncUserData implements [ServerAdapter]. It POSTs to /api/sync/{userID}.
func (h *httpServerAdapter) SyncUserData(ctx context.Context, userID string) (models.SyncResponse, error) {
	var sr models.SyncResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("userID", userID).
		SetResult(&sr).
		Post("/api/sync/{userID}")
	if err != nil {
		h.logger.Debug().Err(err).Str("user_id", userID).Msg("sync request failed")
		return models.SyncResponse{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	return sr, nil
}

// GetSyncStats implements [ServerAdapter]. It GETs /api/admin/sync-stats.
func (h *httpServerAdapter) GetSyncStats(ctx context.Context) (models.SyncStats, error) {
	var stats models.SyncStats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/admin/sync-stats")
	if err != nil {
		return models.SyncStats{}, fmt.Errorf("sync stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncStats{}, err
	}

	return stats, nil
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version/ and
// returns the plain-text body.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
