// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
)

// Process exit codes of the CLI.
const (
	ExitConverged = 0
	ExitFatal     = 1
	ExitPartial   = 2
)

// ExitCode maps a finished run to the process exit code: fatal errors and
// missed readiness are 1, resources still terminating (or transiently failed)
// are 2, full convergence is 0.
func ExitCode(results []reconcile.Result, err error) int {
	if err != nil {
		return ExitFatal
	}

	var code = ExitConverged
	for _, result := range results {
		if reconcile.Fatal(result.Err) || errors.Is(result.Err, reconcile.ErrConvergenceTimeout) {
			return ExitFatal
		}
		if !result.Converged() {
			code = ExitPartial
		}
	}
	return code
}

// Summarize reports the full outcome of a run without masking partial
// success: one line per non-converged object, one closing count line.
func Summarize(stage string, results []reconcile.Result, err error) {
	var counts = make(map[reconcile.Outcome]int)
	for _, result := range results {
		counts[result.Outcome]++

		if !result.Converged() {
			log.Warn().
				Fields(result.Ref.Fields()).
				Str("outcome", string(result.Outcome)).
				Str("reason", result.Reason).
				Msg("Not converged")
		}
	}

	var fields = map[string]any{"stage": stage, "total": len(results)}
	for outcome, count := range counts {
		fields[string(outcome)] = count
	}

	if err != nil {
		log.Error().Fields(fields).Err(err).Msg("Run aborted")
		return
	}
	log.Info().Fields(fields).Msg("Run finished")
}

func logSinkError(operation string, key string, err error) {
	log.Error().Str("operation", operation).Str("key", key).Err(err).Msg("Sink operation failed")
}
