// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"os"
	"testing"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/test"
)

func TestMain(m *testing.M) {
	test.InstallLogRecorder()

	test.SetupDocker(&test.Options{
		MongoDb: true,
		Redis:   true,
	})

	config.Current = test.BuildBaseTestConfig()

	code := m.Run()

	test.TeardownDocker()
	os.Exit(code)
}

// exerciseSink runs the common contract every backend has to satisfy.
func exerciseSink(t *testing.T, s Sink) {
	t.Helper()

	if err := s.Set("central.endpoint", "https://central.stackrox.svc"); err != nil {
		t.Fatalf("set failed: %s", err)
	}

	value, err := s.Get("central.endpoint")
	if err != nil {
		t.Fatalf("get failed: %s", err)
	}
	if value != "https://central.stackrox.svc" {
		t.Fatalf("unexpected value: %s", value)
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("keys failed: %s", err)
	}
	if len(keys) != 1 || keys[0] != "central.endpoint" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if err := s.Delete("central.endpoint"); err != nil {
		t.Fatalf("delete failed: %s", err)
	}
	if _, err := s.Get("central.endpoint"); err != ErrKeyNotFound {
		t.Fatalf("expected ErrKeyNotFound, got: %v", err)
	}

	// deleting a missing key stays silent
	if err := s.Delete("central.endpoint"); err != nil {
		t.Fatalf("second delete failed: %s", err)
	}
}
