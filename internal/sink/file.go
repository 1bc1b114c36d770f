// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"sigs.k8s.io/yaml"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

// FileSink keeps handoff values in a small YAML file next to the tool. It is
// the default backend and the replacement for appending exports to a shell
// profile.
type FileSink struct {
	path string
}

func (s *FileSink) Initialize() {
	s.path = config.Current.Sink.File.Path

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.write(map[string]string{}); err != nil {
			log.Fatal().Str("path", s.path).Err(err).Msg("Could not create sink file!")
		}
	}

	if _, err := s.read(); err != nil {
		log.Fatal().Str("path", s.path).Err(err).Msg("Could not read sink file!")
	}

	log.Debug().Str("path", s.path).Msg("File sink ready")
}

func (s *FileSink) Set(key string, value string) error {
	values, err := s.read()
	if err != nil {
		return err
	}

	values[key] = value
	return s.write(values)
}

func (s *FileSink) Get(key string) (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *FileSink) Delete(key string) error {
	values, err := s.read()
	if err != nil {
		return err
	}

	delete(values, key)
	return s.write(values)
}

func (s *FileSink) Keys() ([]string, error) {
	values, err := s.read()
	if err != nil {
		return nil, err
	}
	return maps.Keys(values), nil
}

func (s *FileSink) Shutdown() {
	// Nothing to implement here!
}

func (s *FileSink) Connected() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *FileSink) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var values = make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *FileSink) write(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
