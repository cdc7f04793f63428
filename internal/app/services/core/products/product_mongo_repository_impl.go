package products

import (
	"context"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductMongoRepository struct {
	Collection *mongo.Collection
}

func NewProductMongoRepository(db *mongo.Client, dbName string) contracts.ProductRepository {
	return &ProductMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProducts),
	}
}

func (r *ProductMongoRepository) FindActiveByIDs(ctx context.Context, productIDs []string) ([]models.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"_id":    bson.M{"$in": productIDs},
		"active": true,
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}
