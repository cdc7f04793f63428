package tickets

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TicketMongoRepository struct {
	Collection *mongo.Collection
}

func NewTicketMongoRepository(db *mongo.Client, dbName string) contracts.TicketRepository {
	return &TicketMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTickets),
	}
}

func (r *TicketMongoRepository) CreateTicket(ctx context.Context, ticket *models.Ticket) (string, error) {
	if ticket.ID == "" {
		ticket.ID = primitive.NewObjectID().Hex()
	}
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt

	_, err := r.Collection.InsertOne(ctx, ticket)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return ticket.ID, nil
}

func (r *TicketMongoRepository) FindByID(ctx context.Context, ticketID string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.Collection.FindOne(ctx, bson.M{"_id": ticketID}).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &ticket, nil
}

func (r *TicketMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Ticket, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *TicketMongoRepository) FindByDermatologistID(ctx context.Context, dermatologistID string) ([]models.Ticket, error) {
	// A dermatologist sees their assigned queue plus the unassigned pool.
	filter := bson.M{"$or": []bson.M{
		{"dermatologistId": dermatologistID},
		{"status": models.TicketStatusSubmitted},
	}}
	return r.findMany(ctx, filter)
}

func (r *TicketMongoRepository) FindAll(ctx context.Context) ([]models.Ticket, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *TicketMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Ticket, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var tickets []models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tickets, nil
}

func (r *TicketMongoRepository) UpdateTicket(ctx context.Context, ticket *models.Ticket) error {
	ticket.UpdatedAt = time.Now()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": ticket.ID}, ticket)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrTicketNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *TicketMongoRepository) PushMessage(ctx context.Context, ticketID string, message models.TicketMessage) error {
	update := bson.M{
		"$push": bson.M{"messages": message},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": ticketID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrTicketNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

// ClaimTicket assigns the ticket to the dermatologist only while it is still
// unassigned. The filter carries the precondition so two concurrent claims
// cannot both win.
func (r *TicketMongoRepository) ClaimTicket(ctx context.Context, ticketID, dermatologistID string) (*models.Ticket, error) {
	filter := bson.M{
		"_id":    ticketID,
		"status": models.TicketStatusSubmitted,
	}
	update := bson.M{"$set": bson.M{
		"status":          models.TicketStatusAssigned,
		"dermatologistId": dermatologistID,
		"updatedAt":       time.Now(),
	}}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *TicketMongoRepository) MarkSolved(ctx context.Context, ticketID, dermatologistID string, solvedAt time.Time) (*models.Ticket, error) {
	filter := bson.M{
		"_id":             ticketID,
		"status":          models.TicketStatusAnswered,
		"dermatologistId": dermatologistID,
	}
	update := bson.M{"$set": bson.M{
		"status":    models.TicketStatusSolved,
		"solvedAt":  solvedAt,
		"updatedAt": solvedAt,
	}}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *TicketMongoRepository) MarkPaid(ctx context.Context, ticketID, paymentID string, paidAt time.Time) (*models.Ticket, error) {
	filter := bson.M{
		"_id":           ticketID,
		"status":        models.TicketStatusSolved,
		"paymentStatus": models.PaymentStatusPending,
	}
	update := bson.M{"$set": bson.M{
		"status":        models.TicketStatusPaid,
		"paymentStatus": models.PaymentStatusPaid,
		"paymentId":     paymentID,
		"paymentDate":   paidAt,
		"updatedAt":     paidAt,
	}}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *TicketMongoRepository) CloseTicket(ctx context.Context, ticketID string, closedAt time.Time) (*models.Ticket, error) {
	filter := bson.M{
		"_id":    ticketID,
		"status": models.TicketStatusPaid,
	}
	update := bson.M{"$set": bson.M{
		"status":    models.TicketStatusClosed,
		"closedAt":  closedAt,
		"updatedAt": closedAt,
	}}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *TicketMongoRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Ticket, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ticket models.Ticket
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &ticket, nil
}
