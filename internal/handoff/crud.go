// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package handoff

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mfosterrox/demo-config-sub002/internal/sink"
)

// getValue handles GET requests for a single handoff value.
// Response: HTTP 200 with the value, or HTTP 404 when the key is unset.
func getValue(ctx *fiber.Ctx) error {
	key, err := getKeyFromContext(ctx)
	if err != nil {
		return err
	}

	value, err := handoffSink.Get(key)
	if errors.Is(err, sink.ErrKeyNotFound) {
		return handleNotFoundError(ctx, "Key not found")
	}
	if err != nil {
		logRequestError(err, "Get", key, "Failed to get value")
		return handleInternalServerError(ctx, "Failed to get value", err)
	}

	return ctx.Status(fiber.StatusOK).JSON(ValueResponse{Key: key, Value: value})
}

// putValue handles PUT requests that create or replace a handoff value.
// Request body: the raw value. Response: HTTP 200 with empty body.
func putValue(ctx *fiber.Ctx) error {
	key, err := getKeyFromContext(ctx)
	if err != nil {
		return err
	}

	var value = string(ctx.Body())
	if value == "" {
		return handleBadRequestError(ctx, "Empty value")
	}

	if err := handoffSink.Set(key, value); err != nil {
		logRequestError(err, "Put", key, "Failed to put value")
		return handleInternalServerError(ctx, "Failed to put value", err)
	}

	return ctx.Status(fiber.StatusOK).Send(nil)
}

// deleteValue handles DELETE requests for a handoff value. Deleting an unset
// key succeeds; absence is the desired state.
func deleteValue(ctx *fiber.Ctx) error {
	key, err := getKeyFromContext(ctx)
	if err != nil {
		return err
	}

	if err := handoffSink.Delete(key); err != nil {
		logRequestError(err, "Delete", key, "Failed to delete value")
		return handleInternalServerError(ctx, "Failed to delete value", err)
	}

	return ctx.Status(fiber.StatusOK).Send(nil)
}

// listKeys handles GET requests for the full key listing.
func listKeys(ctx *fiber.Ctx) error {
	keys, err := handoffSink.Keys()
	if err != nil {
		logRequestError(err, "List", "", "Failed to list keys")
		return handleInternalServerError(ctx, "Failed to list keys", err)
	}

	return ctx.Status(fiber.StatusOK).JSON(KeysResponse{Keys: keys, Count: len(keys)})
}
