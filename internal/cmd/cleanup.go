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

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Removes every demo-managed resource and namespace from the cluster",
	Run: func(cmd *cobra.Command, args []string) {
		runStage(cmd, "cleanup", func(w *workflow.Workflow, ctx context.Context) ([]reconcile.Result, error) {
			return w.Cleanup(ctx)
		})
	},
}
