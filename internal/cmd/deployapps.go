// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
	"github.com/mfosterrox/demo-config-sub002/internal/workflow"
)

var deployAppsCmd = &cobra.Command{
	Use:   "deploy-apps",
	Short: "Applies the vulnerable demo application manifests and waits for rollout",
	Run: func(cmd *cobra.Command, args []string) {
		runStage(cmd, "deploy-apps", func(w *workflow.Workflow, ctx context.Context) ([]reconcile.Result, error) {
			return w.DeployApps(ctx)
		})
	},
}
