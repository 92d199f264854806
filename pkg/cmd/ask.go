package cmd

import (
	"os"
	"os/user"

	"perfumeHelper/pkg/cli"
	"perfumeHelper/pkg/logging"
	"perfumeHelper/pkg/recommend"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const cliPlatform = "cli"

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Asks for gender, temperature and rain and recommends perfumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		recorder, err := BuildRecorder(false)
		if err != nil {
			return err
		}

		session := &cli.Session{
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
			ShowPrompts: isInteractive(cmd),
			Suggester: recommend.RequesterSuggester{
				Service: recommend.NewService(recorder),
				Requester: recommend.Requester{
					Platform: cliPlatform,
					UserID:   localUserName(),
				},
			},
		}

		return session.Run(logging.WithTrackingId(cmd.Context()), answersFromFlags(cmd))
	},
}

func initAskCmd() {
	askCmd.Flags().StringP("gender", "g", "", "gender: male/female (m, man, f, woman are accepted too)")
	askCmd.Flags().StringP("temperature", "t", "", "temperature in °C, e.g. 22")
	askCmd.Flags().StringP("rainy", "r", "", "is it rainy: yes/no")

	rootCmd.AddCommand(askCmd)
}

func answersFromFlags(cmd *cobra.Command) cli.Answers {
	answers := cli.Answers{}

	flagValue := func(name string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}

		v, _ := cmd.Flags().GetString(name)
		return &v
	}

	answers.Gender = flagValue("gender")
	answers.Temperature = flagValue("temperature")
	answers.Rainy = flagValue("rainy")

	return answers
}

// isInteractive hides prompts when the answers are piped in.
func isInteractive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func localUserName() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "local"
	}

	return u.Username
}
