package bootstrap

import (
	"github.com/muhammadchandra19/stock-data/pkg/config"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
)

// Bootstrap holds the wired components of the stock-data processes.
type Bootstrap struct {
	Usecase    Usecase
	Repository Repository
	Rest       Rest
	Logger     logger.Interface
	Config     *config.Config

	// Postgres is the long-lived connection used by the generator.
	Postgres postgresql.PostgreSQLClient
	// Connector opens per-request connections for the query service.
	Connector postgresql.Connector
}

// BootstrapConfig is the config for the bootstrap. Either Postgres, Connector or
// both may be set; components whose dependency is missing are left nil.
type BootstrapConfig struct {
	Postgres  postgresql.PostgreSQLClient
	Connector postgresql.Connector
	Logger    logger.Interface
	Config    *config.Config
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(cfg BootstrapConfig) Bootstrap {
	b.Postgres = cfg.Postgres
	b.Connector = cfg.Connector
	b.Logger = cfg.Logger
	b.Config = cfg.Config

	b.registerRepository()
	b.registerUsecase()
	b.registerRest()

	return *b
}
