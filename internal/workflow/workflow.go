// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/client-go/dynamic"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/metrics"
	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
	"github.com/mfosterrox/demo-config-sub002/internal/sink"
)

// Sink keys shared between independently invoked stages.
const (
	KeyTLSSecret          = "tls.secret"
	KeyTLSEndpoint        = "tls.endpoint"
	KeyCentralEndpoint    = "central.endpoint"
	KeyCentralAdminSecret = "central.adminSecret"
)

// Workflow wires one demo stage: a reconciler over the cluster, and the
// handoff sink for values later stages need.
type Workflow struct {
	client dynamic.Interface
	rec    *reconcile.Reconciler
	sink   sink.Sink
	runId  string
}

func New(client dynamic.Interface, handoff sink.Sink, dryRun bool) *Workflow {
	var w = &Workflow{
		client: client,
		rec:    reconcile.NewReconciler(client, config.Current.PollInterval, dryRun),
		sink:   handoff,
		runId:  uuid.NewString(),
	}

	metrics.GetOrCreate("run_info", map[string]string{"run_id": w.runId}).
		With(prometheus.Labels{"run_id": w.runId}).Set(1)

	return w
}

func (w *Workflow) record(key string, value string) {
	if err := w.sink.Set(key, value); err != nil {
		logSinkError("set", key, err)
	}
}

func (w *Workflow) forget(key string) {
	if err := w.sink.Delete(key); err != nil {
		logSinkError("delete", key, err)
	}
}
