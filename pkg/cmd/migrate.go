package cmd

import (
	"perfumeHelper/pkg/db"
	"perfumeHelper/pkg/migrate"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Applies the recommendations history schema to MYSQL_CONN_STRING",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := db.LoadConfig()
		if err != nil {
			return err
		}

		conn, err := db.NewConn(cfg)
		if err != nil {
			return err
		}

		return migrate.Execute(conn)
	},
}

func initMigrateCmd() {
	rootCmd.AddCommand(migrateCmd)
}
