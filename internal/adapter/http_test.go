// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/memehoueibib/securecode-platform-sub001/internal/config"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://api.example.com/", "https://api.example.com", false},
		{"http://", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/login", r.URL.Path)

		var body models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body.Login)
		assert.Equal(t, "secret", body.Password)

		w.Header().Set("Authorization", "Bearer header.payload.sig")
		writeJSON(t, w, http.StatusOK, models.User{UserID: "u1", Login: body.Login, Name: "Alice", Role: models.RoleUser})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Equal(t, "header.payload.sig", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong login or password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "a", Password: "b"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestRegister_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/register", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.User{UserID: "u1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "a", Password: "b"})

	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "login already exists")
}

// ── SyncUserData ────────────────────────────────────────────────────────────

func TestSyncUserData_Success(t *testing.T) {
	syncedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/u1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.SyncResponse{
			Record:   models.UserRecord{UserID: "u1", ScansUsed: 3, ScanLimit: 10},
			SyncedAt: syncedAt,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	got, err := a.SyncUserData(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.Record.UserID)
	assert.Equal(t, 3, got.Record.ScansUsed)
	assert.True(t, syncedAt.Equal(got.SyncedAt))
}

func TestSyncUserData_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusGatewayTimeout, ErrGatewayTimeout},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).SyncUserData(context.Background(), "u1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSyncUserData_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SyncUserData(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestSyncUserData_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).SyncUserData(context.Background(), "u1")
	require.Error(t, err)
	for _, sentinel := range []error{ErrUnauthorized, ErrForbidden, ErrNotFound} {
		assert.False(t, errors.Is(err, sentinel))
	}
}

func TestSyncUserData_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).SyncUserData(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
}

// ── admin and version ───────────────────────────────────────────────────────

func TestGetSyncStats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/sync-stats", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.SyncStats{TotalSyncs: 12, DistinctUsers: 4})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetSyncStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalSyncs)
	assert.Equal(t, int64(4), got.DistinctUsers)
}

func TestGetServerVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}
