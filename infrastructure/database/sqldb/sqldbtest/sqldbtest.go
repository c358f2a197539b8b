package sqldbtest

import (
	"database/sql"
	"testing"

	"github.com/vfg2006/retail-sales-api/infrastructure/database/sqldb"
	"github.com/vfg2006/retail-sales-api/internal/config"
)

// NewSQLite abre um banco sqlite em memória com todas as migrações aplicadas.
// Uma única conexão garante que todas as consultas vejam o mesmo banco.
func NewSQLite(t testing.TB) *sqldb.Connection {
	t.Helper()

	db, err := sql.Open(config.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("falha ao abrir sqlite em memória: %v", err)
	}
	db.SetMaxOpenConns(1)

	conn := sqldb.Wrap(db, config.DriverSQLite)
	if _, err := sqldb.Migrate(conn); err != nil {
		_ = db.Close()
		t.Fatalf("falha ao migrar banco de teste: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return conn
}
