// Copyright 2025 Red Hat, Inc.
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"context"
	"fmt"
	"log"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	pool      *dockertest.Pool
	resources []*dockertest.Resource = make([]*dockertest.Resource, 0)

	redisHost string = EnvOrDefault("REDIS_HOST", "localhost")
	redisPort string = EnvOrDefault("REDIS_PORT", "6379")

	mongoHost string = EnvOrDefault("MONGO_HOST", "localhost")
	mongoPort string = EnvOrDefault("MONGO_PORT", "27017")

	alreadySetUp bool = false
)

type Options struct {
	MongoDb bool
	Redis   bool
}

func SetupDocker(opts *Options) {
	if alreadySetUp {
		return
	}

	log.Println("Setting up docker (missing images will be pulled, which might take some time)...")

	var err error
	if pool == nil {
		pool, err = dockertest.NewPool("")
		if err != nil {
			log.Fatalf("Could not create pool: %s", err)
		}
	}

	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not ping docker: %s", err)
	}

	if opts.MongoDb {
		if err := setupMongoDb(); err != nil {
			log.Fatalf("Could not setup mongodb: %s", err)
		}
	}

	if opts.Redis {
		if err := setupRedis(); err != nil {
			log.Fatalf("Could not setup redis: %s", err)
		}
	}

	err = pool.Retry(func() error {
		if opts.MongoDb {
			if err := pingMongoDb(); err != nil {
				return err
			}
		}

		if opts.Redis {
			if err := pingRedis(); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Fatalf("Readiness probe failed: %s", err)
	}

	alreadySetUp = true
}

func TeardownDocker() {
	for _, resource := range resources {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge container: %s", err)
		}
	}
}

func pingMongoDb() error {
	var ctx = context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort)))
	if err != nil {
		return err
	}

	return client.Ping(ctx, nil)
}

func setupMongoDb() error {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:         "demo-config-mongodb",
		Repository:   EnvOrDefault("MONGO_IMAGE", "mongo"),
		Tag:          EnvOrDefault("MONGO_TAG", "7.0.5-rc0"),
		ExposedPorts: []string{"27017/tcp"},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"27017/tcp": {{HostIP: "localhost", HostPort: mongoPort}},
		},
	}, configureTeardown)
	resources = append(resources, resource)
	return err
}

func setupRedis() error {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:         "demo-config-redis",
		Repository:   EnvOrDefault("REDIS_IMAGE", "redis"),
		Tag:          EnvOrDefault("REDIS_TAG", "7.2.4"),
		ExposedPorts: []string{"6379/tcp"},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379/tcp": {{HostIP: "localhost", HostPort: redisPort}},
		},
	}, configureTeardown)
	resources = append(resources, resource)
	return err
}

func pingRedis() error {
	var client = goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort),
	})
	defer client.Close()

	return client.Ping(context.Background()).Err()
}

func configureTeardown(config *docker.HostConfig) {
	config.AutoRemove = true
	config.RestartPolicy = docker.RestartPolicy{
		Name: "no",
	}
}
