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

var installOperatorCmd = &cobra.Command{
	Use:   "install-operator",
	Short: "Subscribes the RHACS and compliance operators and waits for a deployed Central",
	Run: func(cmd *cobra.Command, args []string) {
		runStage(cmd, "install-operator", func(w *workflow.Workflow, ctx context.Context) ([]reconcile.Result, error) {
			return w.InstallOperators(ctx)
		})
	},
}
