package users

import (
	"context"
	"fmt"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const userCacheExpiration = 5 * time.Minute

// UserMongoRepository reads the user directory. Profiles back the hot slot
// lookup path, so single-user reads go through a Redis read-through cache.
type UserMongoRepository struct {
	Collection *mongo.Collection
	RedisRepo  contracts.RedisRepository
	Log        *zap.Logger
}

func NewUserMongoRepository(db *mongo.Client, dbName string, redisRepo contracts.RedisRepository, logger *zap.Logger) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
		RedisRepo:  redisRepo,
		Log:        logger,
	}
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyUserCacheFormat, userID)
	if cached, err := r.RedisRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var user models.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return &user, nil
		}
	}

	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	if raw, err := json.Marshal(&user); err == nil {
		if err := r.RedisRepo.Set(ctx, cacheKey, string(raw), userCacheExpiration); err != nil {
			r.Log.Warn("UserMongoRepository.FindByID failed to cache user",
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(err),
			)
		}
	}
	return &user, nil
}

func (r *UserMongoRepository) FindActiveDermatologists(ctx context.Context) ([]models.User, error) {
	filter := bson.M{
		"role":   constvars.RoleTypeDermatologist,
		"active": true,
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var dermatologists []models.User
	if err := cursor.All(ctx, &dermatologists); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return dermatologists, nil
}
