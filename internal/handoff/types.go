// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package handoff

type ValueResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type KeysResponse struct {
	Keys  []string `json:"keys"`
	Count int      `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
}
