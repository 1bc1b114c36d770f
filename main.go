// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/mfosterrox/demo-config-sub002/internal/cmd"
	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

func main() {
	_ = config.Current
	cmd.Execute()
}
