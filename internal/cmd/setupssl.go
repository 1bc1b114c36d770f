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

var setupSslCmd = &cobra.Command{
	Use:   "setup-ssl",
	Short: "Provisions a self-signed issuer and certificate for the demo ingress",
	Run: func(cmd *cobra.Command, args []string) {
		runStage(cmd, "setup-ssl", func(w *workflow.Workflow, ctx context.Context) ([]reconcile.Result, error) {
			return w.SetupSSL(ctx)
		})
	},
}
