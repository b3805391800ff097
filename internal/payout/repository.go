package payout

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"payout-api/pkg/cerror"
	"payout-api/pkg/config"
)

// queryTimeout bounds every store call so a stuck read surfaces as 503
// instead of hanging the request.
const queryTimeout = 10 * time.Second

type Repository interface {
	CountPayouts(ctx context.Context, predicate *Predicate) (int64, error)
	FindPayouts(ctx context.Context, predicate *Predicate, skip, limit int64) ([]PayoutDocument, error)
	FindPayoutsWithUserId(ctx context.Context, userId string) ([]PayoutDocument, error)
	UserExists(ctx context.Context, userId string) (bool, error)
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

func (r *repository) payoutCollection() *mongo.Collection {
	return r.mongodbClient.
		Database(r.config.Database).
		Collection(r.config.Collections[config.MongodbPayoutCollection])
}

func (r *repository) userCollection() *mongo.Collection {
	return r.mongodbClient.
		Database(r.config.Database).
		Collection(r.config.Collections[config.MongodbUserCollection])
}

func (r *repository) CountPayouts(ctx context.Context, predicate *Predicate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	totalDocs, err := r.payoutCollection().CountDocuments(ctx, predicateToFilter(predicate))
	if err != nil {
		return 0, storeError(err, "error occurred while count payouts")
	}

	return totalDocs, nil
}

func (r *repository) FindPayouts(
	ctx context.Context,
	predicate *Predicate,
	skip, limit int64,
) ([]PayoutDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// created DESC with _id ASC tie-break keeps pagination deterministic
	// across requests between writes.
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.payoutCollection().Find(ctx, predicateToFilter(predicate), findOptions)
	if err != nil {
		return nil, storeError(err, "error occurred while find payouts")
	}

	payouts := make([]PayoutDocument, 0, limit)
	err = cursor.All(ctx, &payouts)
	if err != nil {
		return nil, storeError(err, "error occurred while decode payouts")
	}

	return payouts, nil
}

func (r *repository) FindPayoutsWithUserId(ctx context.Context, userId string) ([]PayoutDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"userId": userId}
	cursor, err := r.payoutCollection().Find(ctx, filter)
	if err != nil {
		return nil, storeError(err, "error occurred while find payouts with user id")
	}

	var payouts []PayoutDocument
	err = cursor.All(ctx, &payouts)
	if err != nil {
		return nil, storeError(err, "error occurred while decode payouts with user id")
	}

	return payouts, nil
}

func (r *repository) UserExists(ctx context.Context, userId string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user UserDocument
	filter := bson.M{"_id": userId}
	err := r.userCollection().FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}

		return false, storeError(err, "error occurred while find user with id")
	}

	return true, nil
}

func predicateToFilter(predicate *Predicate) bson.M {
	filter := bson.M{}

	if len(predicate.Statuses) > 0 {
		statuses := make([]string, 0, len(predicate.Statuses))
		for _, status := range predicate.Statuses {
			statuses = append(statuses, string(status))
		}
		filter["status"] = bson.M{"$in": statuses}
	}

	if predicate.UserType != nil {
		filter["userType"] = string(*predicate.UserType)
	}

	created := bson.M{}
	if predicate.CreatedFrom != nil {
		created["$gte"] = *predicate.CreatedFrom
	}
	if predicate.CreatedTo != nil {
		created["$lte"] = *predicate.CreatedTo
	}
	if len(created) > 0 {
		filter["created"] = created
	}

	paymentDate := bson.M{}
	if predicate.PaymentFrom != nil {
		paymentDate["$gte"] = *predicate.PaymentFrom
	}
	if predicate.PaymentTo != nil {
		paymentDate["$lte"] = *predicate.PaymentTo
	}
	if len(paymentDate) > 0 {
		filter["paymentDate"] = paymentDate
	}

	return filter
}

func storeError(err error, logMessage string) *cerror.CustomError {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return cerror.NewError(
			fiber.StatusServiceUnavailable,
			"payout store is unavailable",
			zap.Error(err),
		)
	}

	return cerror.NewError(
		fiber.StatusInternalServerError,
		logMessage,
		zap.Error(err),
	)
}
