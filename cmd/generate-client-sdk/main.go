// Command generate-client-sdk runs the OpenAPI generator against the local
// contract to produce the typescript-axios client SDK in ./src/client-sdk.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/williamokano/contract_sync/pkg/config"
	"github.com/williamokano/contract_sync/pkg/generator"
	"github.com/williamokano/contract_sync/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logger.Init("info", "console")
		logger.Get().Fatal().Err(err).Msg("failed to load .env file")
	}

	tool, err := config.LoadToolConfig()
	if err != nil {
		logger.Init("info", "console")
		logger.Get().Fatal().Err(err).Msg("failed to read tool settings")
	}

	logger.Init(tool.LogLevel, tool.LogFormat)
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.New(generator.Config{
		CLI:    tool.GeneratorCLI,
		Target: tool.GeneratorTarget,
	}, *log)

	if _, err := gen.Generate(ctx, tool.ContractPath, tool.SDKOutputDir); err != nil {
		event := log.Error().Err(err)
		var exitErr *generator.ExitError
		if errors.As(err, &exitErr) {
			event = event.Int("exit_code", exitErr.Code)
		}
		event.Msg("error generating client SDK")
		stop()
		os.Exit(1)
	}
}
