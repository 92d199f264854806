package telegram

import (
	"context"
	"fmt"

	"perfumeHelper/pkg/errs"
	"perfumeHelper/pkg/logging"
	"perfumeHelper/pkg/msg"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const Platform = "telegram"

type Bot struct {
	conf       *Config
	baseBot    *telebot.Bot
	msgHandler *msg.Router
}

func NewBot(c *Config, r *msg.Router) (*Bot, error) {
	validationErr := c.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	botApi, err := telebot.NewBot(telebot.Settings{
		Token:  c.APIToken,
		Poller: &telebot.LongPoller{Timeout: c.PollTimeout},
		OnError: func(err error, c telebot.Context) {
			errs.Handle(err, false)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &Bot{conf: c, baseBot: botApi, msgHandler: r}, nil
}

func messageToRequest(telegramMsg *telebot.Message) *msg.Request {
	sender := new(msg.Sender)
	if telegramMsg.Sender != nil {
		id := telegramMsg.Sender.Username
		if id == "" {
			id = fmt.Sprint(telegramMsg.Sender.ID)
		}

		sender.ID = id
		sender.LastName = telegramMsg.Sender.LastName
		sender.FirstName = telegramMsg.Sender.FirstName
	}

	var conversationID int64
	if telegramMsg.Chat != nil {
		conversationID = telegramMsg.Chat.ID
	}

	return &msg.Request{
		Platform: Platform,
		ID:       fmt.Sprint(telegramMsg.ID),
		Sender:   sender,
		Message:  telegramMsg.Text,
		Meta: map[string]interface{}{
			"timestamp":       telegramMsg.Unixtime,
			"conversation_id": conversationID,
		},
	}
}

func buildSendOptions(respMsg msg.ResponseMessage) *telebot.SendOptions {
	senderOpts := &telebot.SendOptions{
		ParseMode: telebot.ModeDefault,
	}

	predefined := respMsg.Options.GetPredefinedResponses()
	switch {
	case len(predefined) > 0:
		markup := &telebot.ReplyMarkup{
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		}

		btns := make([]telebot.Btn, 0, len(predefined))
		for _, p := range predefined {
			btns = append(btns, markup.Text(p.Text))
		}
		markup.Reply(markup.Row(btns...))

		senderOpts.ReplyMarkup = markup
	case respMsg.Options.ShouldRemoveKeyboard():
		senderOpts.ReplyMarkup = &telebot.ReplyMarkup{RemoveKeyboard: true}
	}

	return senderOpts
}

func formatMessage(respMsg msg.ResponseMessage) string {
	if respMsg.Type == msg.Error {
		return `❗` + respMsg.Message + `❗`
	}

	return respMsg.Message
}

func (b *Bot) processResponse(
	ctx context.Context,
	telegramMsg telebot.Context,
	resp *msg.Response,
) error {
	log := logrus.WithContext(ctx)

	if resp == nil || len(resp.Messages) == 0 {
		log.Info("response is empty, will send nothing to the sender")
		return nil
	}

	for _, respMsg := range resp.Messages {
		if respMsg.Message == "" {
			continue
		}

		senderOpts := buildSendOptions(respMsg)
		log.Debugf("telegram message:\n%q", respMsg.Message)

		_, err := b.baseBot.Send(telegramMsg.Recipient(), formatMessage(respMsg), senderOpts)
		if err != nil {
			return errors.Wrapf(err, "failed to send message:\n%s", respMsg.Message)
		}

		if respMsg.Options.IsResponseToHiddenMessage() {
			originalMsg := telegramMsg.Message()
			deleteErr := b.baseBot.Delete(originalMsg)
			if deleteErr != nil {
				log.Errorf("failed to delete user message %d: %v", originalMsg.ID, deleteErr)
			} else {
				log.Infof("deleted user message %d as it contained a sensitive data", originalMsg.ID)
			}
		}
	}

	return nil
}

func (b *Bot) handle(ctx context.Context, c telebot.Context) error {
	log := logrus.WithContext(ctx)

	if c.Message() == nil {
		log.Debug("got telegram update without a message, skipping")
		return nil
	}

	log.Debugf("got telegram message: %q", c.Text())

	req := messageToRequest(c.Message())

	resp, err := b.msgHandler.Route(ctx, req)
	if err != nil {
		_, sendErr := b.baseBot.Send(c.Recipient(), "Unexpected error", &telebot.SendOptions{})
		if sendErr != nil {
			log.Errorf("failed to send error message to the sender: %v", sendErr)
		}

		return err
	}

	return b.processResponse(ctx, c, resp)
}

func (b *Bot) Start() {
	b.baseBot.Handle(telebot.OnText, func(c telebot.Context) error {
		ctx, cancel := context.WithCancel(logging.WithTrackingId(context.Background()))
		defer cancel()

		return b.handle(ctx, c)
	})

	b.baseBot.Start()
}

func (b *Bot) Stop() {
	logrus.Info("will stop telegram bot")
	b.baseBot.Stop()
	logrus.Info("stopped telegram bot")
}
