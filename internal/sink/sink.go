// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

// Sink is the key/value handoff between independently invoked workflow
// stages: endpoint URLs, secret names, tokens. It replaces any reliance on
// the operator's shell environment.
type Sink interface {
	Initialize()
	Set(key string, value string) error
	Get(key string) (string, error)
	Delete(key string) error
	Keys() ([]string, error)
	Shutdown()
	Connected() bool
}

var CurrentSink Sink

func SetupSink() {
	var sinkType = config.Current.Sink.Type

	sink, err := createSink(sinkType)
	if err != nil {
		log.Fatal().Str("type", sinkType).Err(err).Msg("Could not create sink!")
	}

	sink.Initialize()
	CurrentSink = sink
}

func createSink(sinkType string) (Sink, error) {
	switch strings.ToLower(sinkType) {

	case "file":
		return new(FileSink), nil

	case "redis":
		return new(RedisSink), nil

	case "mongo":
		return new(MongoSink), nil

	case "dummy":
		return new(DummySink), nil

	default:
		return nil, ErrUnknownSinkType

	}
}
