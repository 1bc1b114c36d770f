// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestClassifyForbiddenIsPermission(t *testing.T) {
	var err = classify(apierrors.NewForbidden(schema.GroupResource{Resource: "centrals"}, "demo", errors.New("rbac")))
	assert.ErrorIs(t, err, ErrPermission)
	assert.True(t, Fatal(err))
}

func TestClassifyUnauthorizedIsConnectivity(t *testing.T) {
	var err = classify(apierrors.NewUnauthorized("token expired"))
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.True(t, Fatal(err))
}

func TestClassifyTransportErrorIsConnectivity(t *testing.T) {
	var err = classify(&net.OpError{Op: "dial", Err: errors.New("connection refused")})
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.True(t, Fatal(err))
}

func TestClassifyKeepsPerResourceErrors(t *testing.T) {
	var cases = []error{
		apierrors.NewInternalError(fmt.Errorf("etcd hiccup")),
		apierrors.NewConflict(schema.GroupResource{Resource: "centrals"}, "demo", errors.New("conflict")),
		apierrors.NewBadRequest("bad spec"),
	}

	for _, original := range cases {
		var err = classify(original)
		assert.False(t, Fatal(err), "expected %v to stay non-fatal", original)
	}
}

func TestFatalIgnoresTimeouts(t *testing.T) {
	assert.False(t, Fatal(ErrTerminatingTimeout))
	assert.False(t, Fatal(ErrConvergenceTimeout))
	assert.False(t, Fatal(nil))
}
