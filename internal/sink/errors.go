// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import "errors"

var (
	ErrUnknownSinkType = errors.New("unknown sink type")
	ErrKeyNotFound     = errors.New("key not found")
)
