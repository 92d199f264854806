package storage

import "github.com/sirupsen/logrus"

// BuildClient connects to redis, or falls back to the in-memory client when REDIS_ADDR is empty.
func BuildClient() (Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if !cfg.IsConfigured() {
		logrus.Warn("REDIS_ADDR is not set, dialogs and sessions are kept in memory")
		return NewMemoryClient(), nil
	}

	return NewClient(cfg)
}
