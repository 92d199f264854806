package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"perfumeHelper/pkg/help"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/utils"

	logging "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const loginCommand = "/login"

type LoginHandler struct {
	us  *UserStorage
	cfg *Config
	now func() time.Time
}

func NewLoginHandler(us *UserStorage, cfg *Config) *LoginHandler {
	return &LoginHandler{
		us:  us,
		cfg: cfg,
		now: time.Now,
	}
}

func (h *LoginHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	user := UserFromRequest(req)

	if user == nil {
		return msg.NewErrorResponse("your user is unknown"), nil
	}

	return h.handleNotVerifiedUser(ctx, req, user)
}

func (h *LoginHandler) handleNotVerifiedUser(
	ctx context.Context,
	req *msg.Request,
	user *CachedUser,
) (*msg.Response, error) {
	log := logging.WithContext(ctx)

	password := req.Message
	if utils.MatchesCommand(req.Message, loginCommand) {
		_, args := utils.SplitCommand(req.Message)
		password = strings.Join(args, " ")
	}

	log.Debugf("checking password for user %q", req.Sender.GetID())
	if !h.checkPassword(password, user) {
		log.Debugf("password for user %q is not correct", req.Sender.GetID())
		return msg.NewErrorResponse(
			fmt.Sprintf("please provide a valid password to access the bot functions, e.g. %s <password>", loginCommand),
		), nil
	}
	log.Debugf("password for user %q is correct", req.Sender.GetID())

	user.State = UserVerified
	user.LoginTill = 0
	if h.cfg.SessionDuration > 0 {
		user.LoginTill = h.now().Add(h.cfg.SessionDuration).Unix()
	}

	err := h.us.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	opts := (&msg.Options{}).WithIsResponseToHiddenMessage()

	return msg.NewSuccessResponse(
		"Password is correct, you can continue using bot. Will delete the message with password for security reasons.",
		opts,
	), nil
}

func (h *LoginHandler) checkPassword(candidatePassword string, user *CachedUser) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidatePassword))

	return err == nil
}

// CanHandle intercepts every message of a user without a valid session.
func (h *LoginHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	if h.cfg.Disabled {
		return false, nil
	}

	return !UserFromRequest(req).HasSession(h.now()), nil
}

func (h *LoginHandler) GetHelp(context.Context, *msg.Request) help.Result {
	if h.cfg.Disabled {
		return help.Result{}
	}

	return help.Result{Text: fmt.Sprintf("%s <password>: to start a session", loginCommand)}
}
