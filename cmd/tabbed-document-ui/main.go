package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"tabbed-document-ui/internal/app"
	"tabbed-document-ui/internal/config"
	"tabbed-document-ui/internal/logger"
	"tabbed-document-ui/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewConsoleLogger(zerolog.InfoLevel).Fatal("Main", err, nil)
	}

	log, err := logger.FromConfig(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		logger.NewConsoleLogger(zerolog.InfoLevel).Fatal("Main", err, nil)
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("Main", err, nil)
	}

	fmt.Println("done")
}

// run returns only after every handler has been unbound.
func run(cfg config.Config, log logger.Logger) error {
	application := app.NewApplication(cfg, log, app.DefaultRuntime)

	if err := application.Initialize(); err != nil {
		return err
	}

	if _, err := application.BuildUI(); err != nil {
		return err
	}
	defer application.Destroy()

	signals := shutdown.NewManager(log, application)
	signals.Listen()
	defer signals.Close()

	return application.Run()
}
