// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	"context"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/reconcile"
)

// SetupSSL creates a self-signed issuer and a Certificate for the demo's TLS
// endpoint, waits for cert-manager to issue it, and records the resulting
// secret name in the sink for later stages.
func (w *Workflow) SetupSSL(ctx context.Context) ([]reconcile.Result, error) {
	var ssl = config.Current.SSL
	var results []reconcile.Result

	namespace, err := toUnstructured(buildNamespace(ssl.Namespace))
	if err != nil {
		return results, err
	}
	issuer, err := toUnstructured(buildIssuer(ssl))
	if err != nil {
		return results, err
	}
	certificate, err := toUnstructured(buildCertificate(ssl))
	if err != nil {
		return results, err
	}

	task := reconcile.Task{
		Name:    "setup-ssl",
		Desired: reconcile.StatePresent,
		Timeout: ssl.WaitTimeout,
		Refs: []reconcile.ResourceRef{
			{GVR: namespacesGVR, Name: ssl.Namespace, Object: namespace},
			{GVR: issuersGVR, Name: ssl.IssuerName, Namespace: ssl.Namespace, Object: issuer},
			{GVR: certificatesGVR, Name: ssl.CertificateName, Namespace: ssl.Namespace, Object: certificate},
		},
	}

	results, err = w.rec.Apply(ctx, task)
	if err != nil {
		return results, err
	}

	ready := w.rec.WaitReady(ctx, reconcile.ResourceRef{
		GVR:       certificatesGVR,
		Name:      ssl.CertificateName,
		Namespace: ssl.Namespace,
	}, "Ready", ssl.WaitTimeout)
	results = append(results, ready)

	// The TLS secret is the whole point of this stage; without it the later
	// stages cannot wire the endpoint.
	if ready.Failed() {
		return results, ready.Err
	}

	w.record(KeyTLSSecret, ssl.SecretName)
	w.record(KeyTLSEndpoint, "https://"+ssl.CommonName)

	return results, nil
}
