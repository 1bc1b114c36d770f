// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package handoff

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/contrib/fiberzerolog"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/sink"
	"github.com/mfosterrox/demo-config-sub002/internal/utils"
)

var (
	service     *fiber.App
	logger      *zerolog.Logger
	handoffSink sink.Sink
)

// Listen serves the handoff sink over HTTP so workflow stages running on
// different hosts can share values. The sink must be initialized first.
func Listen(port int, s sink.Sink) {
	handoffSink = s

	if logger == nil {
		logger = createLogger()
	}

	if service == nil {
		setupService(logger)
	}

	utils.RegisterShutdownHook(func() {
		timeout := 30 * time.Second
		logger.Info().Dur("timeout", timeout).Msg("Shutting down handoff service...")
		if err := service.ShutdownWithTimeout(timeout); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown handoff service gracefully")
		}
	}, 1)

	logger.Info().Int("port", port).Msg("Starting handoff service...")
	if err := service.Listen(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatal().Err(err).Msg("Failed to start handoff service")
	}
}

func setupService(logger *zerolog.Logger) {
	service = fiber.New(fiber.Config{
		DisableStartupMessage: log.Logger.GetLevel() != zerolog.DebugLevel,
	})

	service.Use(fiberzerolog.New(fiberzerolog.Config{
		Logger: logger,
	}))

	v1 := service.Group("/api/v1")

	var security = config.Current.Handoff.Security
	if security.Enabled {
		v1.Use(newAuthHandler(security.TrustedIssuers))
		v1.Use(withTrustedClients(security.TrustedClients))
	}

	v1.Get("/values", listKeys)
	v1.Get("/values/:key", getValue)
	v1.Put("/values/:key", putValue)
	v1.Delete("/values/:key", deleteValue)
}

func createLogger() *zerolog.Logger {
	logger := log.Logger.With().Str("logger", "handoff").Logger()

	lvl, err := zerolog.ParseLevel(config.Current.Handoff.LogLevel)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid log level for handoff service, defaulting to info")
		lvl = zerolog.InfoLevel
	}

	logger = logger.Level(lvl)

	if lvl == zerolog.DebugLevel {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	return &logger
}
