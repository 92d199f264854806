package auth

import (
	"context"

	"github.com/sirupsen/logrus"
)

// MigrateUsers copies configured users into storage, already known users keep their state.
func MigrateUsers(ctx context.Context, cfg *Config, us *UserStorage) error {
	log := logrus.WithContext(ctx)
	log.Debug("Will migrate configured users to db")

	for _, u := range cfg.Users {
		cachedUser, err := us.Find(ctx, u.PlatformName, u.Login)
		if err != nil {
			return err
		}

		if cachedUser != nil && cachedUser.PasswordHash == u.PasswordHash {
			continue
		}

		err = us.Save(ctx, &CachedUser{
			Login:        u.Login,
			PlatformName: u.PlatformName,
			PasswordHash: u.PasswordHash,
			State:        UserUnverified,
		})
		if err != nil {
			return err
		}

		log.Debugf("saved user %q to cache", u.Login)
	}

	return nil
}
