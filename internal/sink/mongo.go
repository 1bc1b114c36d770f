// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mfosterrox/demo-config-sub002/internal/config"
)

type MongoSink struct {
	client *mongo.Client
}

type handoffEntry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (s *MongoSink) Initialize() {
	var err error
	s.client, err = mongo.Connect(context.Background(), options.Client().ApplyURI(config.Current.Sink.Mongo.Uri))
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create mongo sink")
	}

	if err := s.client.Ping(context.Background(), nil); err != nil {
		log.Fatal().Err(err).Msg("Could not reach mongodb")
	}
}

func (s *MongoSink) Set(key string, value string) error {
	var filter = bson.M{"_id": key}
	_, err := s.collection().ReplaceOne(
		context.Background(),
		filter,
		handoffEntry{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoSink) Get(key string) (string, error) {
	var entry handoffEntry
	err := s.collection().FindOne(context.Background(), bson.M{"_id": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (s *MongoSink) Delete(key string) error {
	_, err := s.collection().DeleteOne(context.Background(), bson.M{"_id": key})
	return err
}

func (s *MongoSink) Keys() ([]string, error) {
	values, err := s.collection().Distinct(context.Background(), "_id", bson.M{})
	if err != nil {
		return nil, err
	}

	var keys = make([]string, 0, len(values))
	for _, value := range values {
		if key, ok := value.(string); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *MongoSink) Shutdown() {
	if err := s.client.Disconnect(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Could not disconnect from mongodb")
	}
}

func (s *MongoSink) Connected() bool {
	return s.client != nil && s.client.Ping(context.Background(), nil) == nil
}

func (s *MongoSink) collection() *mongo.Collection {
	return s.client.
		Database(config.Current.Sink.Mongo.Database).
		Collection(config.Current.Sink.Mongo.Collection)
}
