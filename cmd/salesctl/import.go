package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/usecases/importing"
)

func importCmd() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "import <arquivo.csv>",
		Short: "Substitui as vendas pelo conteúdo de um CSV",
		Long: `Lê o CSV de vendas (cabeçalhos como "Customer Name", "Final Amount", "Tags"),
aplica valores padrão às colunas ausentes e grava em lotes.
As vendas existentes são removidas antes da importação.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("erro ao abrir %s: %w", args[0], err)
			}
			defer file.Close()

			conn, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			service := importing.NewService(repository.NewSalesRepository(conn), batchSize)

			// total desconhecido: barra em modo spinner
			bar := newProgressBar(-1, "Importando vendas")
			startTime := time.Now()

			written, err := service.ImportCSV(cmd.Context(), file, func(n int) { _ = bar.Set(n) })
			_ = bar.Finish()
			if err != nil {
				return fmt.Errorf("importação interrompida após %d vendas: %w", written, err)
			}

			logrus.WithFields(logrus.Fields{
				"file":     args[0],
				"written":  written,
				"duration": time.Since(startTime).String(),
			}).Info("Importação concluída")

			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", importing.DefaultBatchSize, "vendas por transação")

	return cmd
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
