package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/usecases/importing"
)

func generateCmd() *cobra.Command {
	var (
		count     int
		seed      uint64
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Substitui as vendas por dados sintéticos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("--count deve ser positivo: %d", count)
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			conn, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			service := importing.NewService(repository.NewSalesRepository(conn), batchSize)
			bar := newProgressBar(count, "Gerando vendas")

			written, err := service.Generate(cmd.Context(), importing.NewGenerator(seed), count, func(n int) { _ = bar.Set(n) })
			_ = bar.Finish()
			if err != nil {
				return fmt.Errorf("geração interrompida após %d vendas: %w", written, err)
			}

			logrus.WithFields(logrus.Fields{
				"written": written,
				"seed":    seed,
			}).Info("Dados sintéticos gerados")

			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 500, "quantidade de vendas")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "semente do gerador (0 usa o relógio)")
	cmd.Flags().IntVar(&batchSize, "batch-size", importing.DefaultBatchSize, "vendas por transação")

	return cmd
}
