//go:build integration

// Package testutil provides testcontainers setup for the integration tests of
// the MongoDB event journal.
package testutil

import (
	"context"
	"fmt"
	"os"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const defaultMongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer. The image can be
// overridden with MONGODB_TEST_IMAGE.
// Prefer GetSharedMongoDB with TestMain so a package starts one container.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := os.Getenv("MONGODB_TEST_IMAGE")
	if image == "" {
		image = defaultMongoImage
	}

	mongoContainer, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container != nil {
		if err := m.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}
