package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var bcryptCmd = &cobra.Command{
	Use:   "bcrypt",
	Short: "Generates bcrypt hash from the prompted password input, use it in AUTH_USERS",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), "Enter password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintln(cmd.OutOrStdout())

		hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
		if err != nil {
			return errors.WithStack(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(hashedPassword))

		return nil
	},
}

func initBcryptCmd() {
	rootCmd.AddCommand(bcryptCmd)
}
