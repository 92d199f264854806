package auth

import (
	"context"
	"fmt"

	"perfumeHelper/pkg/help"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/utils"

	"github.com/sirupsen/logrus"
)

type LogoutHandler struct {
	us      *UserStorage
	cfg     *Config
	command string
}

func NewLogoutHandler(us *UserStorage, cfg *Config) *LogoutHandler {
	return &LogoutHandler{
		us:      us,
		cfg:     cfg,
		command: "/logout",
	}
}

func (h *LogoutHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return !h.cfg.Disabled && utils.MatchesCommand(req.Message, h.command), nil
}

func (h *LogoutHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	user := UserFromRequest(req)

	if user == nil {
		log.Warnf("user not found, will do nothing")
		return msg.NewSuccessResponse("User not found", nil), nil
	}

	user.State = UserUnverified
	user.LoginTill = 0

	err := h.us.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	return msg.NewSuccessResponse("Logout success", nil), nil
}

func (h *LogoutHandler) GetHelp(context.Context, *msg.Request) help.Result {
	if h.cfg.Disabled {
		return help.Result{}
	}

	text := fmt.Sprintf("%s: to logout from the system", h.command)

	return help.Result{Text: text}
}
