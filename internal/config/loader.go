// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var Current = LoadConfiguration()

func LoadConfiguration() *Configuration {
	setDefaults()
	var config = readConfig()
	applyLogLevel(config.LogLevel)
	return config
}

func setDefaults() {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetEnvPrefix("democonfig")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("namespace", "stackrox")
	viper.SetDefault("pollInterval", "5s")

	viper.SetDefault("sink.type", "file")
	viper.SetDefault("sink.file.path", "demo-config.yml")
	viper.SetDefault("sink.redis.host", "localhost")
	viper.SetDefault("sink.redis.port", 6379)
	viper.SetDefault("sink.redis.username", "")
	viper.SetDefault("sink.redis.password", "")
	viper.SetDefault("sink.redis.database", 0)
	viper.SetDefault("sink.redis.prefix", "demo-config:")
	viper.SetDefault("sink.mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("sink.mongo.database", "demo-config")
	viper.SetDefault("sink.mongo.collection", "handoff")

	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.port", 8081)
	viper.SetDefault("metrics.timeout", "30s")

	viper.SetDefault("handoff.port", 8080)
	viper.SetDefault("handoff.logLevel", "info")
	viper.SetDefault("handoff.security.enabled", false)

	viper.SetDefault("ssl.namespace", "stackrox")
	viper.SetDefault("ssl.issuerName", "demo-selfsigned")
	viper.SetDefault("ssl.certificateName", "central-tls")
	viper.SetDefault("ssl.secretName", "central-tls-secret")
	viper.SetDefault("ssl.commonName", "central.stackrox.svc")
	viper.SetDefault("ssl.waitTimeout", "5m")

	viper.SetDefault("central.name", "stackrox-central-services")
	viper.SetDefault("central.namespace", "stackrox")
	viper.SetDefault("central.waitTimeout", "15m")

	viper.SetDefault("apps.manifestDir", "manifests")
	viper.SetDefault("apps.namespace", "demo-apps")
	viper.SetDefault("apps.waitTimeout", "10m")

	viper.SetDefault("cleanup.labelSelector", "app.kubernetes.io/part-of=demo-config")
	viper.SetDefault("cleanup.forceFinalizers", true)
	viper.SetDefault("cleanup.namespaceWait", "2m")
}

func readConfig() *Configuration {
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			log.Fatal().Err(err).Msg("Could not read configuration!")
		}
	}

	viper.AutomaticEnv()

	var config Configuration
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal().Err(err).Msg("Could not unmarshal configuration!")
	}

	if len(config.Operators) == 0 {
		config.Operators = DefaultOperators()
	}
	if len(config.Cleanup.Targets) == 0 {
		config.Cleanup.Targets = DefaultCleanupTargets()
	}
	if len(config.Cleanup.Namespaces) == 0 {
		config.Cleanup.Namespaces = []string{"stackrox", "rhacs-operator", "demo-apps"}
	}

	return &config
}

func applyLogLevel(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
		log.Info().Msgf("Invalid log level %s. Info log level is used", logLevel)
	}

	log.Logger = zerolog.New(os.Stdout).Level(logLevel).With().Timestamp().Logger()
	if logLevel == zerolog.DebugLevel {
		log.Logger = log.Logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}
