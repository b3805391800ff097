//go:build unit

package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"payout-api/pkg/config"
)

const (
	TestMongoDbUserName = "root"
	TestMongoDbPassword = "12345"

	TestMongoDbDatabaseName   = "payouts"
	TestMongoDbUserCollection = "users_affiliate"
)

func TestNewRepository(t *testing.T) {
	userRepository := NewRepository(nil, config.MongodbConfig{})

	assert.Implements(t, (*Repository)(nil), userRepository)
}

func TestRepository_InsertUser_FindUserWithEmail(t *testing.T) {
	ctx := context.Background()
	userRepository := setupRepository(t, ctx)

	t.Run("inserted user should be found by email", func(t *testing.T) {
		err := userRepository.InsertUser(ctx, &UserDocument{
			Id:       TestUserId,
			Email:    TestEmail,
			Password: "hashed-password",
			Role:     RoleAdmin,
		})
		require.NoError(t, err)

		user, err := userRepository.FindUserWithEmail(ctx, TestEmail)

		require.NoError(t, err)
		assert.Equal(t, TestUserId, user.Id)
		assert.Equal(t, RoleAdmin, user.Role)
	})

	t.Run("unknown email should return not found", func(t *testing.T) {
		user, err := userRepository.FindUserWithEmail(ctx, "ghost@example.com")

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func setupRepository(t *testing.T, ctx context.Context) Repository {
	container := setupMongoDbContainer(t, ctx)
	mongodbUri, err := container.Endpoint(ctx, "mongodb")
	if err != nil {
		t.Fatal(fmt.Errorf("failed to get endpoint: %w", err))
	}

	credentials := options.Client().
		ApplyURI(mongodbUri).
		SetAuth(options.Credential{
			Username: TestMongoDbUserName,
			Password: TestMongoDbPassword,
		})
	mongodbClient, err := mongo.Connect(ctx, credentials)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mongodbClient.Disconnect(ctx)
	})

	return NewRepository(mongodbClient, config.MongodbConfig{
		Uri:      mongodbUri,
		Username: TestMongoDbUserName,
		Password: TestMongoDbPassword,
		Database: TestMongoDbDatabaseName,
		Collections: map[string]string{
			config.MongodbUserCollection: TestMongoDbUserCollection,
		},
	})
}

func setupMongoDbContainer(t *testing.T, ctx context.Context) testcontainers.Container {
	req := testcontainers.ContainerRequest{
		Image: "mongo",
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestMongoDbUserName,
			"MONGO_INITDB_ROOT_PASSWORD": TestMongoDbPassword,
		},
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	return container
}
