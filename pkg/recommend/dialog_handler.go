package recommend

import (
	"context"
	"fmt"
	"strings"

	"perfumeHelper/pkg/cli"
	"perfumeHelper/pkg/help"
	"perfumeHelper/pkg/msg"
	"perfumeHelper/pkg/perfume"
	"perfumeHelper/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	PerfumeCommand = "/perfume"

	genderQuestion      = "Enter gender (male/female):"
	temperatureQuestion = "Enter temperature in °C (example 22):"
	rainyQuestion       = "Is it rainy? (yes/no):"
)

var usageMessage = fmt.Sprintf("Usage: %s <male|female> <temperature> [yes|no]", PerfumeCommand)

func RequesterFromReq(req *msg.Request) Requester {
	return Requester{
		Platform: req.Platform,
		UserID:   req.Sender.GetID(),
	}
}

// DialogHandler serves "/perfume male 22 yes" in one go or asks the three questions one by one.
type DialogHandler struct {
	service *Service
	dialogs *DialogStorage
}

func NewDialogHandler(service *Service, dialogs *DialogStorage) *DialogHandler {
	return &DialogHandler{
		service: service,
		dialogs: dialogs,
	}
}

func (dh *DialogHandler) CanHandle(ctx context.Context, req *msg.Request) (bool, error) {
	if utils.MatchesCommand(req.Message, PerfumeCommand) {
		return true, nil
	}

	if cmd, _ := utils.SplitCommand(req.Message); cmd != "" {
		return false, nil
	}

	state, err := dh.dialogs.Load(ctx, RequesterFromReq(req))
	if err != nil {
		return false, err
	}

	return state != nil, nil
}

func (dh *DialogHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	who := RequesterFromReq(req)

	if utils.MatchesCommand(req.Message, PerfumeCommand) {
		return dh.handleCommand(ctx, who, req)
	}

	state, err := dh.dialogs.Load(ctx, who)
	if err != nil {
		return nil, err
	}

	if state == nil {
		return msg.NewErrorResponse(usageMessage), nil
	}

	return dh.handleDialogStep(ctx, who, state, req.Message)
}

func (dh *DialogHandler) handleCommand(ctx context.Context, who Requester, req *msg.Request) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	_, args := utils.SplitCommand(req.Message)

	switch len(args) {
	case 0:
		log.Debugf("starting perfume dialog for user %q", who.UserID)
		return dh.askGender(ctx, who)
	case 2, 3:
	default:
		return msg.NewErrorResponse(usageMessage), nil
	}

	err := dh.dialogs.Delete(ctx, who)
	if err != nil {
		return nil, err
	}

	tempC, err := cli.ParseTemperature(args[1])
	if err != nil {
		return inputErrorResponse(err), nil
	}

	rainy := false
	if len(args) == 3 {
		rainy = cli.ParseRainy(args[2])
	}

	return dh.suggest(ctx, who, perfume.Request{
		Gender:      args[0],
		Temperature: tempC,
		Rainy:       rainy,
	})
}

func (dh *DialogHandler) handleDialogStep(ctx context.Context, who Requester, state *DialogState, answer string) (*msg.Response, error) {
	switch state.Step {
	case StepGender:
		g, err := perfume.NormalizeGender(answer)
		if err != nil {
			return inputErrorResponse(err), nil
		}

		state.Step = StepTemperature
		state.Gender = string(g)

		err = dh.dialogs.Save(ctx, who, state)
		if err != nil {
			return nil, err
		}

		return msg.NewSuccessResponse(temperatureQuestion, (&msg.Options{}).WithRemovedKeyboard()), nil
	case StepTemperature:
		_, err := cli.ParseTemperature(answer)
		if err != nil {
			return inputErrorResponse(err), nil
		}

		state.Step = StepRainy
		state.Temperature = strings.TrimSpace(answer)

		err = dh.dialogs.Save(ctx, who, state)
		if err != nil {
			return nil, err
		}

		return msg.NewSuccessResponse(rainyQuestion, (&msg.Options{}).WithPredefinedResponse("yes", "no")), nil
	case StepRainy:
		err := dh.dialogs.Delete(ctx, who)
		if err != nil {
			return nil, err
		}

		tempC, err := cli.ParseTemperature(state.Temperature)
		if err != nil {
			return inputErrorResponse(err), nil
		}

		return dh.suggest(ctx, who, perfume.Request{
			Gender:      state.Gender,
			Temperature: tempC,
			Rainy:       cli.ParseRainy(answer),
		})
	default:
		logrus.WithContext(ctx).Warnf("unknown dialog step %q of user %q, restarting", state.Step, who.UserID)
		return dh.askGender(ctx, who)
	}
}

func (dh *DialogHandler) askGender(ctx context.Context, who Requester) (*msg.Response, error) {
	err := dh.dialogs.Save(ctx, who, &DialogState{Step: StepGender})
	if err != nil {
		return nil, err
	}

	opts := (&msg.Options{}).WithPredefinedResponse(string(perfume.Male), string(perfume.Female))

	return msg.NewSuccessResponse(genderQuestion, opts), nil
}

func (dh *DialogHandler) suggest(ctx context.Context, who Requester, req perfume.Request) (*msg.Response, error) {
	suggestion, err := dh.service.Suggest(ctx, who, req)
	if errors.Is(err, perfume.ErrInvalidInput) {
		return inputErrorResponse(err), nil
	}
	if err != nil {
		return nil, err
	}

	return msg.NewSuccessResponse(cli.Render(suggestion), (&msg.Options{}).WithRemovedKeyboard()), nil
}

func (dh *DialogHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{
		Text:             fmt.Sprintf("%s: to pick a perfume for the weather, e.g. %s female 22 yes", PerfumeCommand, PerfumeCommand),
		PredefinedOption: PerfumeCommand,
	}
}

func inputErrorResponse(err error) *msg.Response {
	return msg.NewErrorResponse("Input error: " + err.Error())
}
