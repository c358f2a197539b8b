package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/sqldb"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

var (
	cfg      *config.Config
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "salesctl",
		Short: "Ferramentas de carga e diagnóstico da base de vendas",
		Long: `salesctl prepara a base usada pela API de vendas: aplica migrações,
importa o CSV de vendas, gera dados sintéticos e mostra as queries
montadas para uma query string da listagem.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "nível de log (sobrescreve LOG_LEVEL)")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(explainCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("Sinal de interrupção recebido, encerrando")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.NewConfig()
	if err != nil {
		return err
	}

	level := cfg.App.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log.Configure(level)

	return nil
}

// openDatabase abre o banco configurado já com as migrações aplicadas
func openDatabase(ctx context.Context) (*sqldb.Connection, error) {
	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}

	if _, err := sqldb.Migrate(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}
