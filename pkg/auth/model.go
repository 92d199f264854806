package auth

import (
	"fmt"
	"time"

	"perfumeHelper/pkg/errs"
)

type UserState uint

const (
	UserUnverified UserState = iota
	UserVerified
)

// ConfiguredUser comes from AUTH_USERS.
type ConfiguredUser struct {
	Login        string `json:"login"`
	PlatformName string `json:"platform"`
	PasswordHash string `json:"password_hash"`
}

func (u ConfiguredUser) Validate() error {
	multiErr := errs.NewMulti()
	if u.Login == "" {
		multiErr.Err("login field cannot be empty in one of users in AUTH_USERS")
	}
	if u.PlatformName == "" {
		multiErr.Err("platform field cannot be empty in one of users in AUTH_USERS")
	}
	if u.PasswordHash == "" {
		multiErr.Err("password_hash field cannot be empty in one of users in AUTH_USERS")
	}

	return multiErr.ErrOrNil()
}

type CachedUser struct {
	Login        string    `json:"login"`
	PlatformName string    `json:"platform"`
	PasswordHash string    `json:"password_hash"`
	State        UserState `json:"state"`
	LoginTill    int64     `json:"login_till"`
}

// HasSession tells if the user logged in and the session did not expire by now.
func (u *CachedUser) HasSession(now time.Time) bool {
	if u == nil || u.State != UserVerified {
		return false
	}

	return u.LoginTill == 0 || u.LoginTill > now.Unix()
}

func (u *CachedUser) String() string {
	if u == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s/%s (state %d)", u.PlatformName, u.Login, u.State)
}
