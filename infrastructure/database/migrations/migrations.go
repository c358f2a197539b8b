package migrations

import "embed"

// FS contém os scripts de migração de cada dialeto, em diretórios com o nome do driver
//
//go:embed sqlite3/*.sql postgres/*.sql
var FS embed.FS
