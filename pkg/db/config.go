package db

import (
	"perfumeHelper/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	ConnString string `envconfig:"MYSQL_CONN_STRING"`
}

// IsConfigured tells if history should be stored at all, the database is optional.
func (c *Config) IsConfigured() bool {
	return c.ConnString != ""
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.ConnString == "" {
		e.Err("MYSQL_CONN_STRING cannot be empty")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("mysql", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load mysql config")
	}

	return cfg, nil
}
