// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/utils"
)

var server *http.Server

// ExposeMetrics serves the registry for the duration of a run. Long installs
// poll for many minutes; this is the only observation point meanwhile.
func ExposeMetrics() {
	var mux = http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Timeout: config.Current.Metrics.Timeout,
	}))

	server = &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Current.Metrics.Port),
		Handler: mux,
	}

	utils.RegisterShutdownHook(func() {
		_ = server.Shutdown(context.Background())
	}, 3)

	log.Info().Msgf("Metrics will be exposed on port: %d", config.Current.Metrics.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Could not expose metrics")
	}
}
