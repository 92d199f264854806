package auth

import (
	"context"

	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	usersDomain    = "users"
	usersVersion   = "v1"
	requestUserKey = "authUser"
)

func GenerateUserCacheKey(platform, login string) string {
	return storage.GenerateCacheKey(usersVersion, platform, usersDomain, login)
}

// UserFromRequest returns the user the middleware found for the sender, nil for strangers.
func UserFromRequest(req *msg.Request) *CachedUser {
	u, _ := req.Meta[requestUserKey].(*CachedUser)

	return u
}

// UserStorage keeps users with their password hashes, those never reach the debug log.
type UserStorage struct {
	db storage.Client
}

func NewUserStorage(db storage.Client) *UserStorage {
	return &UserStorage{db: db}
}

func (us *UserStorage) Save(ctx context.Context, u *CachedUser) error {
	return us.db.Save(hidden(ctx), GenerateUserCacheKey(u.PlatformName, u.Login), u, 0)
}

func (us *UserStorage) Find(ctx context.Context, platform, login string) (*CachedUser, error) {
	u := new(CachedUser)

	found, err := us.db.Load(hidden(ctx), GenerateUserCacheKey(platform, login), u)
	if err != nil || !found {
		return nil, err
	}

	return u, nil
}

func hidden(ctx context.Context) context.Context {
	return context.WithValue(ctx, storage.IsNotLoggableContentCtxKey, true)
}

// UserMiddleware attaches the stored sender to the request, the login handler decides what to do with it.
type UserMiddleware struct {
	us  *UserStorage
	cfg *Config
}

func NewUserMiddleware(us *UserStorage, cfg *Config) *UserMiddleware {
	return &UserMiddleware{us: us, cfg: cfg}
}

func (um UserMiddleware) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	if um.cfg.Disabled {
		return nil, nil
	}

	login := req.Sender.GetID()
	if req.Platform == "" || login == "" {
		return nil, errors.Errorf("cannot identify sender %q of platform %q", login, req.Platform)
	}

	u, err := um.us.Find(ctx, req.Platform, login)
	if err != nil {
		return nil, err
	}

	if u != nil {
		logrus.WithContext(ctx).Debugf("request from %s", u)
		req.Meta[requestUserKey] = u
	}

	return nil, nil
}
