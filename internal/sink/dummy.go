// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import "golang.org/x/exp/maps"

// DummySink is an in-memory sink for tests and dry runs.
type DummySink struct {
	Values      map[string]string
	SetCalls    int
	DeleteCalls int
}

func (s *DummySink) Initialize() {
	s.Values = make(map[string]string)
}

func (s *DummySink) Set(key string, value string) error {
	s.SetCalls++
	s.Values[key] = value
	return nil
}

func (s *DummySink) Get(key string) (string, error) {
	value, ok := s.Values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *DummySink) Delete(key string) error {
	s.DeleteCalls++
	delete(s.Values, key)
	return nil
}

func (s *DummySink) Keys() ([]string, error) {
	return maps.Keys(s.Values), nil
}

func (s *DummySink) Shutdown() {
	// Nothing to implement here!
}

func (s *DummySink) Connected() bool {
	return s.Values != nil
}
