package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/sqldb"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/api"
	"github.com/vfg2006/retail-sales-api/internal/api/handler"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/scheduler"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	salesRepo := repository.NewSalesRepository(conn)
	queryBuilder := repository.NewSalesQueryBuilder(conn.PlaceholderFormat())
	facetService := faceting.NewService(salesRepo)

	var (
		facetResolver faceting.Resolver = facetService
		facetCacheJob handler.FacetCacheJob
	)

	if cfg.FacetCache.Enabled {
		cachedResolver := faceting.NewCachedResolver(facetService)
		refreshService := scheduler.NewFacetRefreshService(cachedResolver, cfg)

		if err := refreshService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador do cache de facetas")
		} else {
			logrus.Info("Agendador do cache de facetas iniciado com sucesso")
		}

		facetResolver = cachedResolver
		facetCacheJob = refreshService
	}

	salesLister := listing.NewService(queryBuilder, salesRepo, facetResolver)

	server, err := api.New(cfg, salesLister, facetResolver, facetCacheJob)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre o banco configurado e aplica as migrações pendentes
func dbconn(ctx context.Context, dbConfig config.Database) *sqldb.Connection {
	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")

	if dbConfig.AutoMigrate {
		version, err := sqldb.Migrate(conn)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.WithField("version", version).Info("Migrações aplicadas")
	}

	return conn
}
