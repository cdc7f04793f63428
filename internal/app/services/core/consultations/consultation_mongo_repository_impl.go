package consultations

import (
	"context"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (r *ConsultationMongoRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) (string, error) {
	if consultation.ID == "" {
		consultation.ID = primitive.NewObjectID().Hex()
	}
	consultation.CreatedAt = time.Now()
	consultation.UpdatedAt = consultation.CreatedAt

	_, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return consultation.ID, nil
}

func (r *ConsultationMongoRepository) FindByTicketID(ctx context.Context, ticketID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.Collection.FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) UpdateConsultation(ctx context.Context, consultation *models.Consultation) error {
	consultation.UpdatedAt = time.Now()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": consultation.ID}, consultation)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMongoDBUpdateDocument(mongo.ErrNoDocuments)
	}
	return nil
}
