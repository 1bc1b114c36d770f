// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package handoff

import (
	"slices"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// newAuthHandler validates bearer tokens against the JWKS endpoints of the
// trusted issuers.
func newAuthHandler(trustedIssuers []string) fiber.Handler {
	var jwkUrls = make([]string, 0, len(trustedIssuers))
	for _, issuer := range trustedIssuers {
		jwkUrls = append(jwkUrls, strings.TrimSuffix(issuer, "/")+"/.well-known/jwks.json")
	}

	return jwtware.New(jwtware.Config{
		JWKSetURLs: jwkUrls,
	})
}

func withTrustedClients(trustedClients []string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if len(trustedClients) > 0 {
			user, ok := ctx.Locals("user").(*jwt.Token)
			if !ok {
				return &fiber.Error{Code: fiber.StatusUnauthorized, Message: "Missing token"}
			}

			claims, ok := user.Claims.(jwt.MapClaims)
			if !ok {
				return &fiber.Error{Code: fiber.StatusUnauthorized, Message: "Invalid claims"}
			}

			clientId, _ := claims["clientId"].(string)
			if !slices.Contains(trustedClients, clientId) {
				return &fiber.Error{Code: fiber.StatusUnauthorized, Message: "Unauthorized client"}
			}
		}
		return ctx.Next()
	}
}

func getKeyFromContext(ctx *fiber.Ctx) (string, error) {
	key := ctx.Params("key")
	if key == "" {
		log.Warn().Str("url", ctx.Request().URI().String()).Msg("Failed to retrieve key from request")
		return "", &fiber.Error{
			Code:    fiber.StatusBadRequest,
			Message: "Missing key",
		}
	}
	return key, nil
}

func logRequestError(err error, operation string, key string, message string) {
	var event = log.Error().Err(err).Str("operation", operation)
	if key != "" {
		event = event.Str("key", key)
	}
	event.Msg(message)
}
