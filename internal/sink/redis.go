// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

type RedisSink struct {
	client *redis.Client
	prefix string
	ctx    context.Context
}

func (s *RedisSink) Initialize() {
	s.ctx = context.Background()
	s.prefix = config.Current.Sink.Redis.Prefix
	s.client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Current.Sink.Redis.Host, config.Current.Sink.Redis.Port),
		Username: config.Current.Sink.Redis.Username,
		Password: config.Current.Sink.Redis.Password,
		DB:       config.Current.Sink.Redis.Database,
	})

	log.Debug().Msg("Trying to reach redis...")
	status := s.client.Ping(s.ctx)
	if err := status.Err(); err != nil {
		log.Fatal().Err(err).Msg("Could not reach redis!")
	}

	log.Info().Msg("Redis connection established...")
}

func (s *RedisSink) Set(key string, value string) error {
	return s.client.Set(s.ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisSink) Get(key string) (string, error) {
	value, err := s.client.Get(s.ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return value, err
}

func (s *RedisSink) Delete(key string) error {
	return s.client.Del(s.ctx, s.prefix+key).Err()
}

func (s *RedisSink) Keys() ([]string, error) {
	keys, err := s.client.Keys(s.ctx, s.prefix+"*").Result()
	if err != nil {
		return nil, err
	}

	for i, key := range keys {
		keys[i] = strings.TrimPrefix(key, s.prefix)
	}
	return keys, nil
}

func (s *RedisSink) Shutdown() {
	if err := s.client.Close(); err != nil {
		log.Warn().Err(err).Msg("Could not close redis connection")
	}
}

func (s *RedisSink) Connected() bool {
	return s.client != nil && s.client.Ping(s.ctx).Err() == nil
}
