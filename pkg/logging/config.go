package logging

import (
	"perfumeHelper/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		e.Errf("LOG_LEVEL %q is not a valid log level", c.LogLevel)
	}

	return e
}

// Level falls back to info for unparseable values.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("log", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logging config")
	}

	return cfg, nil
}
