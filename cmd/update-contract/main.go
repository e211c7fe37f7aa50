// Command update-contract downloads the BFF OpenAPI contract from S3 and
// saves it as ./openapi-bff.yaml (override with CONTRACT_PATH).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/williamokano/contract_sync/pkg/config"
	"github.com/williamokano/contract_sync/pkg/contract"
	"github.com/williamokano/contract_sync/pkg/logger"
	"github.com/williamokano/contract_sync/pkg/storage"
	"github.com/williamokano/contract_sync/pkg/storage/s3"
)

func main() {
	// .env must be loaded before any setting is read
	dotEnvErr := config.LoadDotEnv()

	tool, err := config.LoadToolConfig()
	if err != nil {
		logger.Init("info", "console")
		logger.Get().Fatal().Err(err).Msg("failed to read tool settings")
	}

	logger.Init(tool.LogLevel, tool.LogFormat)
	log := logger.Get()

	if dotEnvErr != nil {
		log.Fatal().Err(dotEnvErr).Msg("failed to load .env file")
	}

	cfg, err := config.LoadContractConfig(config.EnvLookup)
	if err != nil {
		log.Fatal().Err(err).Msg("missing S3 configuration")
	}

	log.Info().
		Str("bucket", cfg.Bucket).
		Str("key", cfg.Key).
		Str("region", cfg.Region).
		Str("credentials", cfg.S3().CredentialSource()).
		Interface("sources", cfg.Sources).
		Msg("resolved contract configuration")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := s3.New(ctx, cfg.S3(), *log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize S3 client")
	}
	defer backend.Close()

	if _, err := contract.Update(ctx, backend, cfg.Key, tool.ContractPath, *log); err != nil {
		event := log.Error()
		if storage.IsTransportError(err) {
			event = event.Str("hint", "check credentials, bucket and key")
		}
		event.Err(err).Msg("error downloading file from S3")
		stop()
		os.Exit(1)
	}
}
