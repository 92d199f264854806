package cmd

import (
	"context"

	"perfumeHelper/pkg/auth"
	"perfumeHelper/pkg/db"
	"perfumeHelper/pkg/help"
	"perfumeHelper/pkg/migrate"
	"perfumeHelper/pkg/monitoring"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/recommend"
	"perfumeHelper/pkg/storage"
	"perfumeHelper/pkg/telegram"

	"github.com/sirupsen/logrus"
)

// BuildRecorder connects to the history database if it's configured.
func BuildRecorder(applyMigrations bool) (monitoring.Recorder, error) {
	cfg, err := db.LoadConfig()
	if err != nil {
		return nil, err
	}

	if !cfg.IsConfigured() {
		logrus.Debug("MYSQL_CONN_STRING is not set, recommendations history is disabled")
		return monitoring.NoopRecorder{}, nil
	}

	conn, err := db.NewConn(cfg)
	if err != nil {
		return nil, err
	}

	if applyMigrations {
		err = migrate.Execute(conn)
		if err != nil {
			return nil, err
		}
	}

	return monitoring.NewGormRecorder(conn), nil
}

func BuildMessageRouter(ctx context.Context, store storage.Client, recorder monitoring.Recorder) (*msg.Router, error) {
	recommendCfg, err := recommend.LoadConfig()
	if err != nil {
		return nil, err
	}

	validationErr := recommendCfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	authHandlers, err := auth.BuildHandlers(ctx, store)
	if err != nil {
		return nil, err
	}

	return NewMessageRouter(recommendCfg, authHandlers, store, recorder), nil
}

func NewMessageRouter(
	recommendCfg *recommend.Config,
	authHandlers *auth.Handlers,
	store storage.Client,
	recorder monitoring.Recorder,
) *msg.Router {
	service := recommend.NewService(recorder)
	dialogs := recommend.NewDialogStorage(store, recommendCfg.DialogTTL)

	dialogHandler := recommend.NewDialogHandler(service, dialogs)
	cancelHandler := recommend.NewCancelHandler(dialogs)
	historyHandler := recommend.NewHistoryHandler(service, recommendCfg.HistoryLimit)

	startHandler := &telegram.StartHandler{Options: []string{recommend.PerfumeCommand}}

	helpHandler := &help.Handler{
		Providers: []help.Provider{
			dialogHandler,
			cancelHandler,
			historyHandler,
			authHandlers.Login,
			authHandlers.Logout,
		},
	}

	r := &msg.Router{
		Handlers: []msg.Handler{
			startHandler,
			authHandlers.Login,
			helpHandler,
			authHandlers.Logout,
			cancelHandler,
			historyHandler,
			dialogHandler,
			&unknownHandler{},
		},
	}

	r.UseMiddleware(authHandlers.Middleware)

	return r
}
