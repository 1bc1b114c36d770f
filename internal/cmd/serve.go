// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/handoff"
	"github.com/mfosterrox/demo-config-sub002/internal/metrics"
	"github.com/mfosterrox/demo-config-sub002/internal/sink"
	"github.com/mfosterrox/demo-config-sub002/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the handoff values of previous stages over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		sink.SetupSink()

		if config.Current.Metrics.Enabled {
			go metrics.ExposeMetrics()
		}

		go handoff.Listen(config.Current.Handoff.Port, sink.CurrentSink)
		utils.WaitForExit()
	},
}
