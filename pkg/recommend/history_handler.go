package recommend

import (
	"context"
	"fmt"
	"strings"

	"perfumeHelper/pkg/help"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/utils"
)

const HistoryCommand = "/history"

type HistoryHandler struct {
	service *Service
	limit   int
}

func NewHistoryHandler(service *Service, limit int) *HistoryHandler {
	return &HistoryHandler{
		service: service,
		limit:   limit,
	}
}

func (hh *HistoryHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return utils.MatchesCommand(req.Message, HistoryCommand), nil
}

func (hh *HistoryHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	if !hh.service.HasHistory() {
		return msg.NewErrorResponse("History is not available"), nil
	}

	items, err := hh.service.History(ctx, RequesterFromReq(req), hh.limit)
	if err != nil {
		return nil, err
	}

	lines := []string{}
	for _, item := range items {
		if item.Error != "" || item.Weather == "" {
			continue
		}

		lines = append(lines, fmt.Sprintf(
			"%d. %s, %s: %s",
			len(lines)+1,
			item.CreatedAt.Format("2006-01-02 15:04"),
			item.Weather,
			strings.Join(item.PerfumeNames(), ", "),
		))
	}

	if len(lines) == 0 {
		return msg.NewSuccessResponse("You have no recommendations yet", nil), nil
	}

	return msg.NewSuccessResponse("Your last recommendations:\n"+strings.Join(lines, "\n"), nil), nil
}

func (hh *HistoryHandler) GetHelp(context.Context, *msg.Request) help.Result {
	if !hh.service.HasHistory() {
		return help.Result{}
	}

	return help.Result{
		Text:             fmt.Sprintf("%s: to show your last recommendations", HistoryCommand),
		PredefinedOption: HistoryCommand,
	}
}
