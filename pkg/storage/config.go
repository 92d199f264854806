package storage

import (
	"perfumeHelper/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// RedisConfig points to the redis server keeping dialogs and login sessions.
// Without REDIS_ADDR they are kept in process memory and lost on restart.
type RedisConfig struct {
	Addr string `envconfig:"REDIS_ADDR"`
	Pass string `envconfig:"REDIS_PASS"`
	DB   int    `envconfig:"REDIS_DB" default:"0"`
}

func (c *RedisConfig) IsConfigured() bool {
	return c.Addr != ""
}

func (c *RedisConfig) Validate() *errs.Multi {
	e := errs.NewMulti()

	if !c.IsConfigured() {
		e.Err("REDIS_ADDR cannot be empty")
	}

	if c.DB < 0 {
		e.Errf("REDIS_DB should not be negative, got %d", c.DB)
	}

	return e
}

func LoadConfig() (*RedisConfig, error) {
	cfg := new(RedisConfig)

	err := envconfig.Process("redis", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load storage config")
	}

	return cfg, nil
}
