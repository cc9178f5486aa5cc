package main

import (
	"github.com/videobrief/backend/internal/config"
	"github.com/videobrief/backend/internal/server"
	"github.com/videobrief/backend/internal/util"
	"github.com/videobrief/backend/pkg/logger"
	"github.com/videobrief/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", "err", err)
	}

	server.Init(cfg)
}
