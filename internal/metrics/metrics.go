// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

var (
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	gauges   map[string]*prometheus.GaugeVec
)

const namespace = "democonfig"

func init() {
	registry = prometheus.NewRegistry()
	gauges = make(map[string]*prometheus.GaugeVec)

	outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_outcomes_total",
	}, []string{"resource", "outcome"})
	registry.MustRegister(outcomes)
}

func ObserveOutcome(resource string, outcome string) {
	outcomes.WithLabelValues(resource, outcome).Inc()
}

func GetOrCreate(name string, labels map[string]string) *prometheus.GaugeVec {
	var gaugeName = strings.ReplaceAll(name, ".", "_")

	gauge, ok := gauges[gaugeName]
	if !ok {
		gauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      gaugeName,
		}, maps.Keys(labels))

		gauges[gaugeName] = gauge
		if err := registry.Register(gauge); err != nil {
			log.Error().Err(err).
				Fields(map[string]any{
					"name": namespace + "_" + gaugeName,
				}).
				Msg("Could not create metric")
		}
	}

	return gauge
}
