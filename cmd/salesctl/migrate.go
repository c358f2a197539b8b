package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/sqldb"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações pendentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := sqldb.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
			}
			defer conn.Close()

			version, err := sqldb.Migrate(conn)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"driver":  cfg.Database.Driver,
				"version": version,
			}).Info("Migrações aplicadas")

			return nil
		},
	}
}
