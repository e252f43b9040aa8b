package main

import (
	"fmt"

	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	"github.com/adamfarahx/finance-analytics-db/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	deps, err := initializer.InitializeDependencies(".env")
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.NewApp(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Logger.Info(
		"starting server",
		"env", deps.Config.Env,
		"address", addr,
	)

	return app.Listen(addr)
}
