package telegram

import (
	"context"
	"fmt"

	"perfumeHelper/pkg/cli"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/utils"
)

const startCommand = "/start"

type StartHandler struct {
	Options []string
}

func (sh *StartHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return utils.MatchesCommand(req.Message, startCommand), nil
}

func (sh *StartHandler) Handle(_ context.Context, req *msg.Request) (*msg.Response, error) {
	name := "there"
	if req.Sender != nil && req.Sender.FirstName != "" {
		name = req.Sender.FirstName
	}

	text := fmt.Sprintf("Hi %s!\n%s\n%s\nSend /help to see what I can do.", name, cli.Banner, cli.Subtitle)

	return msg.NewSuccessResponse(text, (&msg.Options{}).WithPredefinedResponse(sh.Options...)), nil
}
