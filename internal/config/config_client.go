package config

import (
	"fmt"
)

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter Adapter
	// Storage contains the local cache settings.
	Storage ClientStorage
	// Workers contains the background sync tracker settings.
	Workers Workers
	// Client contains the dashboard settings.
	Client Client
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Local holds the SQLite cache settings.
	Local Local
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Storage: ClientStorage{Local: cfg.Storage.Local},
		Workers: cfg.Workers,
		Client:  cfg.Client,
	}

	return clientCfg, clientCfg.validate()
}
