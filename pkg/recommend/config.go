package recommend

import (
	"time"

	"perfumeHelper/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	DialogTTL    time.Duration `envconfig:"DIALOG_TTL" default:"30m"`
	HistoryLimit int           `envconfig:"HISTORY_LIMIT" default:"5"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.DialogTTL <= 0 {
		e.Errf("DIALOG_TTL should be positive, got %s", c.DialogTTL)
	}

	if c.HistoryLimit <= 0 {
		e.Errf("HISTORY_LIMIT should be positive, got %d", c.HistoryLimit)
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("recommend", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recommend config")
	}

	return cfg, nil
}
