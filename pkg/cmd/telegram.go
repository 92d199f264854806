package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"perfumeHelper/pkg/storage"
	"perfumeHelper/pkg/telegram"

	logging "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Starts a Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.BuildClient()
		if err != nil {
			return err
		}
		defer db.Close()

		recorder, err := BuildRecorder(true)
		if err != nil {
			return err
		}

		msgRouter, err := BuildMessageRouter(cmd.Context(), db, recorder)
		if err != nil {
			return err
		}

		bot, err := telegram.BuildBot(msgRouter)
		if err != nil {
			return err
		}
		go bot.Start()

		logging.Info("started telegram bot")

		waitForSignal(bot)

		return nil
	},
}

func initTelegramCmd() {
	rootCmd.AddCommand(telegramCmd)
}

func waitForSignal(server *telegram.Bot) {
	terminateSignals := make(chan os.Signal, 1)

	signal.Notify(terminateSignals, syscall.SIGINT, syscall.SIGTERM)

	s := <-terminateSignals
	logging.Infof("Got one of stop signals, shutting down bot gracefully, SIGNAL NAME : %v", s)
	server.Stop()
}
