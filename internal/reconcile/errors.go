// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

var (
	// ErrConnectivity covers everything that makes the whole run pointless:
	// unreachable API server, rejected credentials, server-side unavailability.
	ErrConnectivity = errors.New("cluster unreachable or authentication failed")

	// ErrPermission is raised when the cluster denies a verb the workflow needs.
	ErrPermission = errors.New("insufficient permissions")

	// ErrTerminatingTimeout marks an object that is still finalizing after its
	// wait budget. Not fatal; the caller may escalate to finalizer removal.
	ErrTerminatingTimeout = errors.New("resource still terminating")

	// ErrConvergenceTimeout marks a present-state wait that never became ready.
	ErrConvergenceTimeout = errors.New("timed out waiting for readiness")
)

// Fatal reports whether an error must abort the entire task set. Individual
// resource failures are not fatal; losing the cluster is.
func Fatal(err error) bool {
	return errors.Is(err, ErrConnectivity) || errors.Is(err, ErrPermission)
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case apierrors.IsForbidden(err):
		return fmt.Errorf("%w: %w", ErrPermission, err)
	case apierrors.IsUnauthorized(err),
		apierrors.IsServiceUnavailable(err),
		apierrors.IsServerTimeout(err),
		apierrors.IsUnexpectedServerError(err):
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	// Non-API errors come from the transport layer before any status could be
	// produced, which means the cluster was never reached.
	var statusErr *apierrors.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	return err
}
