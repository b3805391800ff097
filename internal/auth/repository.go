package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payout-api/pkg/cerror"
	"payout-api/pkg/config"
)

const queryTimeout = 10 * time.Second

type Repository interface {
	FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error)
	InsertUser(ctx context.Context, user *UserDocument) error
}

type repository struct {
	mongodbClient *mongo.Client
	config        config.MongodbConfig
}

func NewRepository(mongodbClient *mongo.Client, config config.MongodbConfig) Repository {
	return &repository{
		mongodbClient: mongodbClient,
		config:        config,
	}
}

func (r *repository) userCollection() *mongo.Collection {
	return r.mongodbClient.
		Database(r.config.Database).
		Collection(r.config.Collections[config.MongodbUserCollection])
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user UserDocument
	filter := bson.M{"email": email}
	err := r.userCollection().FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"user not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with email",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) InsertUser(ctx context.Context, user *UserDocument) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.userCollection().InsertOne(ctx, user)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	return nil
}
