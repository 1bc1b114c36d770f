// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"fmt"
	"time"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

// BuildBaseTestConfig creates a base test configuration with short timeouts
// and the dummy sink. Individual test packages extend it as needed.
func BuildBaseTestConfig() *config.Configuration {
	testConfig := new(config.Configuration)

	testConfig.Namespace = "stackrox"
	testConfig.PollInterval = 10 * time.Millisecond
	testConfig.Sink.Type = "dummy"

	mongoHost := EnvOrDefault("MONGO_HOST", "localhost")
	mongoPort := EnvOrDefault("MONGO_PORT", "27017")
	testConfig.Sink.Mongo.Uri = fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort)
	testConfig.Sink.Mongo.Database = "demo"
	testConfig.Sink.Mongo.Collection = "handoff"

	testConfig.Sink.Redis.Host = EnvOrDefault("REDIS_HOST", "localhost")
	testConfig.Sink.Redis.Port = 6379
	testConfig.Sink.Redis.Prefix = "demo:"

	testConfig.SSL.Namespace = "stackrox"
	testConfig.SSL.IssuerName = "demo-selfsigned"
	testConfig.SSL.CertificateName = "demo-tls"
	testConfig.SSL.SecretName = "demo-tls-secret"
	testConfig.SSL.CommonName = "central.stackrox.svc"
	testConfig.SSL.WaitTimeout = 100 * time.Millisecond

	testConfig.Central.Name = "stackrox-central-services"
	testConfig.Central.Namespace = "stackrox"
	testConfig.Central.WaitTimeout = 100 * time.Millisecond

	testConfig.Apps.Namespace = "demo-apps"
	testConfig.Apps.WaitTimeout = 100 * time.Millisecond

	testConfig.Operators = config.DefaultOperators()
	for i := range testConfig.Operators {
		testConfig.Operators[i].WaitTimeout = 100 * time.Millisecond
	}

	testConfig.Cleanup.LabelSelector = "app.kubernetes.io/part-of=demo-config"
	testConfig.Cleanup.Targets = config.DefaultCleanupTargets()
	testConfig.Cleanup.Namespaces = []string{"stackrox"}
	testConfig.Cleanup.NamespaceWait = 100 * time.Millisecond

	return testConfig
}
