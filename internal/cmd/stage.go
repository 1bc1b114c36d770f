// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/k8s"
	"github.com/mfosterrox/demo-config-sub002/internal/metrics"
	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
	"github.com/mfosterrox/demo-config-sub002/internal/sink"
	"github.com/mfosterrox/demo-config-sub002/internal/workflow"
)

// stageFunc is one install or teardown stage of the demo lifecycle.
type stageFunc func(w *workflow.Workflow, ctx context.Context) ([]reconcile.Result, error)

// runStage builds the cluster client and the handoff sink, runs one stage
// and exits with the convergence code of the run.
func runStage(cmd *cobra.Command, stage string, run stageFunc) {
	applyOverrides(cmd)

	var kubeConfigPath, _ = cmd.Flags().GetString("kubeconfig")
	var dryRun, _ = cmd.Flags().GetBool("dry-run")

	kubernetesClient, err := k8s.CreateClient(kubeConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create kubernetes client!")
	}

	sink.SetupSink()

	if config.Current.Metrics.Enabled {
		go metrics.ExposeMetrics()
	}

	var w = workflow.New(kubernetesClient, sink.CurrentSink, dryRun)
	results, err := run(w, cmd.Context())
	workflow.Summarize(stage, results, err)
	sink.CurrentSink.Shutdown()

	if code := workflow.ExitCode(results, err); code != workflow.ExitConverged {
		os.Exit(code)
	}
}

// applyOverrides folds the persistent flags into the loaded configuration
// before any stage reads it.
func applyOverrides(cmd *cobra.Command) {
	if namespace, _ := cmd.Flags().GetString("namespace"); len(namespace) > 0 {
		config.Current.Namespace = namespace
		config.Current.SSL.Namespace = namespace
		config.Current.Central.Namespace = namespace
		config.Current.Apps.Namespace = namespace
	}
}
