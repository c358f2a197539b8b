package sqldb

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/migrations"
	"github.com/vfg2006/retail-sales-api/internal/config"
)

// Migrate aplica as migrações pendentes do dialeto da conexão e retorna a versão final.
// A instância do migrate não é fechada, pois isso fecharia o *sql.DB compartilhado.
func Migrate(conn *Connection) (uint, error) {
	source, err := iofs.New(migrations.FS, conn.Driver())
	if err != nil {
		return 0, fmt.Errorf("erro ao abrir scripts de migração: %w", err)
	}

	var driver database.Driver
	switch conn.Driver() {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(conn.DB, &postgres.Config{})
	case config.DriverSQLite:
		driver, err = sqlite3.WithInstance(conn.DB, &sqlite3.Config{})
	default:
		return 0, fmt.Errorf("driver sem suporte a migrações: %s", conn.Driver())
	}
	if err != nil {
		return 0, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, conn.Driver(), driver)
	if err != nil {
		return 0, fmt.Errorf("erro ao inicializar migrate: %w", err)
	}

	before, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("erro ao ler versão atual: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	after, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("erro ao ler versão final: %w", err)
	}
	if dirty {
		return after, fmt.Errorf("banco em estado dirty na versão %d", after)
	}

	logrus.WithFields(logrus.Fields{
		"driver":         conn.Driver(),
		"version_before": before,
		"version_after":  after,
	}).Info("Migrações aplicadas")

	return after, nil
}
