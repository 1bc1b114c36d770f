// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMongoSinkRoundTrip(t *testing.T) {
	var s = new(MongoSink)
	s.Initialize()
	defer s.Shutdown()

	exerciseSink(t, s)
}

func TestMongoSinkSetOverwrites(t *testing.T) {
	var s = new(MongoSink)
	s.Initialize()
	defer s.Shutdown()

	assert.NoError(t, s.Set("central.endpoint", "https://old.example.com"))
	assert.NoError(t, s.Set("central.endpoint", "https://new.example.com"))
	defer func() { _ = s.Delete("central.endpoint") }()

	value, err := s.Get("central.endpoint")
	assert.NoError(t, err)
	assert.Equal(t, "https://new.example.com", value)

	keys, err := s.Keys()
	assert.NoError(t, err)
	assert.Len(t, keys, 1)
}
