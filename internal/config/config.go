// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

type Configuration struct {
	LogLevel     string        `mapstructure:"logLevel"`
	Kubeconfig   string        `mapstructure:"kubeconfig"`
	Namespace    string        `mapstructure:"namespace"`
	PollInterval time.Duration `mapstructure:"pollInterval"`
	Sink         struct {
		Type  string             `mapstructure:"type"`
		File  FileConfiguration  `mapstructure:"file"`
		Redis RedisConfiguration `mapstructure:"redis"`
		Mongo MongoConfiguration `mapstructure:"mongo"`
	} `mapstructure:"sink"`
	Metrics   MetricsConfiguration   `mapstructure:"metrics"`
	Handoff   HandoffConfiguration   `mapstructure:"handoff"`
	SSL       SSLConfiguration       `mapstructure:"ssl"`
	Operators []OperatorSubscription `mapstructure:"operators"`
	Central   CentralConfiguration   `mapstructure:"central"`
	Apps      AppsConfiguration      `mapstructure:"apps"`
	Cleanup   CleanupConfiguration   `mapstructure:"cleanup"`
}

type FileConfiguration struct {
	Path string `mapstructure:"path"`
}

type RedisConfiguration struct {
	Host     string `mapstructure:"host"`
	Port     uint   `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	Prefix   string `mapstructure:"prefix"`
}

type MongoConfiguration struct {
	Uri        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type MetricsConfiguration struct {
	Enabled bool          `mapstructure:"enabled"`
	Port    int           `mapstructure:"port"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type HandoffConfiguration struct {
	Port     int             `mapstructure:"port"`
	LogLevel string          `mapstructure:"logLevel"`
	Security HandoffSecurity `mapstructure:"security"`
}

type HandoffSecurity struct {
	Enabled        bool     `mapstructure:"enabled"`
	TrustedIssuers []string `mapstructure:"trustedIssuers"`
	TrustedClients []string `mapstructure:"trustedClients"`
}

type SSLConfiguration struct {
	Namespace       string        `mapstructure:"namespace"`
	IssuerName      string        `mapstructure:"issuerName"`
	CertificateName string        `mapstructure:"certificateName"`
	SecretName      string        `mapstructure:"secretName"`
	CommonName      string        `mapstructure:"commonName"`
	DnsNames        []string      `mapstructure:"dnsNames"`
	WaitTimeout     time.Duration `mapstructure:"waitTimeout"`
}

// OperatorSubscription describes one OLM operator installation.
type OperatorSubscription struct {
	Package             string        `mapstructure:"package"`
	Namespace           string        `mapstructure:"namespace"`
	Channel             string        `mapstructure:"channel"`
	Source              string        `mapstructure:"source"`
	SourceNamespace     string        `mapstructure:"sourceNamespace"`
	InstallPlanApproval string        `mapstructure:"installPlanApproval"`
	WaitTimeout         time.Duration `mapstructure:"waitTimeout"`
}

type CentralConfiguration struct {
	Name        string        `mapstructure:"name"`
	Namespace   string        `mapstructure:"namespace"`
	WaitTimeout time.Duration `mapstructure:"waitTimeout"`
}

type AppsConfiguration struct {
	ManifestDir string        `mapstructure:"manifestDir"`
	Namespace   string        `mapstructure:"namespace"`
	WaitTimeout time.Duration `mapstructure:"waitTimeout"`
}

type CleanupConfiguration struct {
	LabelSelector   string        `mapstructure:"labelSelector"`
	ForceFinalizers bool          `mapstructure:"forceFinalizers"`
	Targets         []Target      `mapstructure:"targets"`
	Namespaces      []string      `mapstructure:"namespaces"`
	NamespaceWait   time.Duration `mapstructure:"namespaceWait"`
}
