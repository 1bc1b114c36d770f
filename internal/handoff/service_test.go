// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package handoff

import (
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
	"github.com/mfosterrox/demo-config-sub002/internal/sink"
	"github.com/mfosterrox/demo-config-sub002/internal/test"
)

var dummySink *sink.DummySink

func TestMain(m *testing.M) {
	test.InstallLogRecorder()

	config.Current = test.BuildBaseTestConfig()
	config.Current.Handoff.LogLevel = "debug"
	config.Current.Handoff.Security.Enabled = false

	logger = createLogger()
	setupService(logger)

	os.Exit(m.Run())
}

func resetSink() {
	dummySink = new(sink.DummySink)
	dummySink.Initialize()
	handoffSink = dummySink
}

func TestGetValue(t *testing.T) {
	resetSink()
	dummySink.Values["central.endpoint"] = "https://central.stackrox.svc"

	response, err := service.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/values/central.endpoint", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body, _ := io.ReadAll(response.Body)
	assert.Contains(t, string(body), "https://central.stackrox.svc")
}

func TestGetValueNotFound(t *testing.T) {
	resetSink()

	response, err := service.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/values/unset", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}

func TestPutValue(t *testing.T) {
	resetSink()

	request := httptest.NewRequest(fiber.MethodPut, "/api/v1/values/tls.secret", strings.NewReader("demo-tls-secret"))
	response, err := service.Test(request)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Equal(t, "demo-tls-secret", dummySink.Values["tls.secret"])
}

func TestPutValueRejectsEmptyBody(t *testing.T) {
	resetSink()

	response, err := service.Test(httptest.NewRequest(fiber.MethodPut, "/api/v1/values/tls.secret", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	assert.Zero(t, dummySink.SetCalls)
}

func TestDeleteValueIsIdempotent(t *testing.T) {
	resetSink()
	dummySink.Values["tls.secret"] = "demo-tls-secret"

	for range 2 {
		response, err := service.Test(httptest.NewRequest(fiber.MethodDelete, "/api/v1/values/tls.secret", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	}
	assert.Empty(t, dummySink.Values)
}

func TestListKeys(t *testing.T) {
	resetSink()
	dummySink.Values["tls.secret"] = "demo-tls-secret"
	dummySink.Values["central.endpoint"] = "https://central.stackrox.svc"

	response, err := service.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/values", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	body, _ := io.ReadAll(response.Body)
	assert.Contains(t, string(body), "\"count\":2")
}
