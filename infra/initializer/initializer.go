// Package initializer wires configuration, logging, the database connection,
// and the service graph for the entrypoints under cmd/.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/adamfarahx/finance-analytics-db/config"
	"github.com/adamfarahx/finance-analytics-db/infra"
	infrarepo "github.com/adamfarahx/finance-analytics-db/infra/repository"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	authsvc "github.com/adamfarahx/finance-analytics-db/pkg/service/auth"
	budgetsvc "github.com/adamfarahx/finance-analytics-db/pkg/service/budget"
	ledgersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/ledger"
	schedulersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/scheduler"
	usersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/user"
	"gorm.io/gorm"
)

// Deps carries all initialized application dependencies.
type Deps struct {
	Config    *config.AppConfig
	Logger    *slog.Logger
	DB        *gorm.DB
	Uow       repository.UnitOfWork
	Ledger    *ledgersvc.Service
	Scheduler *schedulersvc.Service
	Budget    *budgetsvc.Service
	User      *usersvc.Service
	Auth      *authsvc.Service
}

// InitializeDependencies loads configuration, sets up the logger, connects to
// the database, migrates the schema, and builds the service graph.
func InitializeDependencies(envFilePath ...string) (*Deps, error) {
	logger := slog.Default()
	cfg, err := config.Load(logger, envFilePath...)
	if err != nil {
		return nil, fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger = setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepo.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	ledger := ledgersvc.New(uow, logger)

	return &Deps{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Uow:       uow,
		Ledger:    ledger,
		Scheduler: schedulersvc.New(uow, ledger, logger),
		Budget:    budgetsvc.New(uow, logger),
		User:      usersvc.New(uow, logger),
		Auth:      authsvc.New(uow, cfg.Jwt, logger),
	}, nil
}
