// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

const defaultInterval = 5 * time.Second

// Poll is the single bounded-wait primitive shared by every convergence
// check: fixed interval, hard timeout, immediate first probe.
type Poll struct {
	Interval time.Duration
	Timeout  time.Duration
}

func (p Poll) Until(ctx context.Context, condition wait.ConditionWithContextFunc) error {
	var interval = p.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return wait.PollUntilContextTimeout(ctx, interval, p.Timeout, true, condition)
}
