package recommend

import (
	"context"
	"fmt"

	"perfumeHelper/pkg/help"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/utils"
)

const CancelCommand = "/cancel"

type CancelHandler struct {
	dialogs *DialogStorage
}

func NewCancelHandler(dialogs *DialogStorage) *CancelHandler {
	return &CancelHandler{dialogs: dialogs}
}

func (ch *CancelHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return utils.MatchesCommand(req.Message, CancelCommand), nil
}

func (ch *CancelHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	who := RequesterFromReq(req)

	state, err := ch.dialogs.Load(ctx, who)
	if err != nil {
		return nil, err
	}

	opts := (&msg.Options{}).WithRemovedKeyboard()

	if state == nil {
		return msg.NewSuccessResponse("Nothing to cancel", opts), nil
	}

	err = ch.dialogs.Delete(ctx, who)
	if err != nil {
		return nil, err
	}

	return msg.NewSuccessResponse("Cancelled", opts), nil
}

func (ch *CancelHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: fmt.Sprintf("%s: to stop the current perfume questions", CancelCommand)}
}
