package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of perfumeHelper",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "perfumeHelper Version:\n%s\n", Version)
	},
}

func initVersionCmd() {
	rootCmd.AddCommand(versionCmd)
}
