package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	FacetCache FacetCache `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"required"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port" validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver" validate:"oneof=sqlite3 postgres"`
	Path         string `mapstructure:"database_path" validate:"required_if=Driver sqlite3"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url" validate:"required_if=Driver postgres"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns" validate:"gte=1"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type FacetCache struct {
	Enabled      bool   `mapstructure:"facet_cache_enabled"`
	CronSchedule string `mapstructure:"facet_cache_refresh_cron" validate:"required_if=Enabled true"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "10000")
	viper.SetDefault("REQUEST_TIMEOUT", "15s")

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_PATH", "database.sqlite")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	// Cache de facetas desligado: facetas calculadas a cada requisição
	viper.SetDefault("FACET_CACHE_ENABLED", false)
	viper.SetDefault("FACET_CACHE_REFRESH_CRON", "*/5 * * * *") // a cada 5 minutos

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	config.Database.DSN = buildDSN(config.Database)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return config, nil
}

func buildDSN(db Database) string {
	if db.Driver == DriverPostgres {
		return fmt.Sprintf(
			"%s://%s:%s@%s",
			db.Driver,
			db.User,
			db.Password,
			db.URL,
		)
	}

	// WAL permite leituras concorrentes (contagem, dados e facetas em paralelo)
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", db.Path)
}

// loadEnvFile carrega o primeiro .env encontrado no diretório atual ou nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
