// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package workflow

import (
	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	cmmeta "github.com/cert-manager/cert-manager/pkg/apis/meta/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

func buildIssuer(ssl config.SSLConfiguration) *certmanagerv1.Issuer {
	return &certmanagerv1.Issuer{
		TypeMeta: metav1.TypeMeta{
			APIVersion: certmanagerv1.SchemeGroupVersion.String(),
			Kind:       "Issuer",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      ssl.IssuerName,
			Namespace: ssl.Namespace,
			Labels:    demoLabels(),
		},
		Spec: certmanagerv1.IssuerSpec{
			IssuerConfig: certmanagerv1.IssuerConfig{
				SelfSigned: &certmanagerv1.SelfSignedIssuer{},
			},
		},
	}
}

func buildCertificate(ssl config.SSLConfiguration) *certmanagerv1.Certificate {
	return &certmanagerv1.Certificate{
		TypeMeta: metav1.TypeMeta{
			APIVersion: certmanagerv1.SchemeGroupVersion.String(),
			Kind:       "Certificate",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      ssl.CertificateName,
			Namespace: ssl.Namespace,
			Labels:    demoLabels(),
		},
		Spec: certmanagerv1.CertificateSpec{
			SecretName: ssl.SecretName,
			CommonName: ssl.CommonName,
			DNSNames:   ssl.DnsNames,
			IssuerRef: cmmeta.ObjectReference{
				Kind: "Issuer",
				Name: ssl.IssuerName,
			},
		},
	}
}
