package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one and that zero fields never erase earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

func TestBuild_NegativeSyncIntervalRejected(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncInterval: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_SyncIntervalIsThirtySeconds(t *testing.T) {
	cfg, err := newConfigBuilder(nil).withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultLocalStoragePath, cfg.Storage.Local.Path)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("WORKERS_SYNC_INTERVAL", "45s")

	b := newConfigBuilder(nil).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 45*time.Second, b.configs[0].Workers.SyncInterval)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "soon")

	b := newConfigBuilder(nil).withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "45s")

	cfg, err := newConfigBuilder([]string{"-sync-interval", "10s"}).
		withDefaults().
		withEnv().
		withFlags().
		build()

	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Workers.SyncInterval)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder([]string{"-unknown"}).withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_OverridesFlags(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Workers.SyncInterval = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder([]string{"-c", path, "-sync-interval", "10s"}).
		withDefaults().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestNewClientConfig_Valid(t *testing.T) {
	cfg, err := newClientConfig(defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.False(t, cfg.Workers.TrackManualSync)
}

func TestNewClientConfig_MissingAddress(t *testing.T) {
	base := defaultConfig()
	base.Adapter.HTTPAddress = ""

	_, err := newClientConfig(base)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestNewClientConfig_ZeroInterval(t *testing.T) {
	base := defaultConfig()
	base.Workers.SyncInterval = 0

	_, err := newClientConfig(base)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestNewServerConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name: "valid",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = "localhost:8080"
				cfg.Storage.DB.DSN = "postgres://localhost/db"
				cfg.App.TokenSignKey = "secret"
			},
		},
		{
			name: "no listener",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.DSN = "postgres://localhost/db"
				cfg.App.TokenSignKey = "secret"
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "no dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.GRPCAddress = "localhost:9090"
				cfg.App.TokenSignKey = "secret"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "no sign key",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = "localhost:8080"
				cfg.Storage.DB.DSN = "postgres://localhost/db"
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := defaultConfig()
			tt.mutate(base)

			_, err := newServerConfig(base)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
