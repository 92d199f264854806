package cmd

import (
	"context"
	"fmt"

	"perfumeHelper/pkg/msg"
)

// unknownHandler is the last resort of the router.
type unknownHandler struct{}

func (uh *unknownHandler) CanHandle(context.Context, *msg.Request) (bool, error) {
	return true, nil
}

func (uh *unknownHandler) Handle(_ context.Context, req *msg.Request) (*msg.Response, error) {
	return msg.NewErrorResponse(fmt.Sprintf("unsupported message %q, send /help to see the list of commands", req.Message)), nil
}
