package auth

import (
	"context"

	"perfumeHelper/pkg/storage"
)

type Handlers struct {
	Middleware *UserMiddleware
	Login      *LoginHandler
	Logout     *LogoutHandler
}

func BuildHandlers(ctx context.Context, db storage.Client) (*Handlers, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return NewHandlers(ctx, cfg, db)
}

func NewHandlers(ctx context.Context, cfg *Config, db storage.Client) (*Handlers, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	us := NewUserStorage(db)

	err := MigrateUsers(ctx, cfg, us)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Middleware: NewUserMiddleware(us, cfg),
		Login:      NewLoginHandler(us, cfg),
		Logout:     NewLogoutHandler(us, cfg),
	}, nil
}
