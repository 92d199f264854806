package auth

import (
	"encoding/json"
	"strings"
	"time"

	"perfumeHelper/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// ConfiguredUsers is decoded from the AUTH_USERS json array.
type ConfiguredUsers []ConfiguredUser

func (cu *ConfiguredUsers) Decode(value string) error {
	if strings.TrimSpace(value) == "" {
		*cu = nil
		return nil
	}

	users := ConfiguredUsers{}
	err := json.Unmarshal([]byte(value), &users)
	if err != nil {
		return errors.Wrap(err, "AUTH_USERS should be a json array of users")
	}

	*cu = users

	return nil
}

type Config struct {
	Disabled        bool            `envconfig:"AUTH_DISABLED"`
	Users           ConfiguredUsers `envconfig:"AUTH_USERS"`
	SessionDuration time.Duration   `envconfig:"AUTH_SESSION_DURATION" default:"24h"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()
	if c.Disabled {
		return e
	}

	if len(c.Users) == 0 {
		e.Err("AUTH_USERS cannot be empty unless AUTH_DISABLED is set")
	}

	if c.SessionDuration < 0 {
		e.Errf("AUTH_SESSION_DURATION should not be negative, got %s", c.SessionDuration)
	}

	seen := map[string]bool{}
	for _, u := range c.Users {
		e.Add(u.Validate())

		key := GenerateUserCacheKey(u.PlatformName, u.Login)
		if seen[key] {
			e.Errf("user %q of platform %q is listed twice in AUTH_USERS", u.Login, u.PlatformName)
		}
		seen[key] = true
	}

	return e
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)

	err := envconfig.Process("auth", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load auth config")
	}

	return cfg, nil
}
