package bookings

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

const ensureIndexTimeout = 10 * time.Second

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

// NewBookingMongoRepository ensures the partial unique index that backs the
// slot claim: at most one booking in an active status per dermatologist and
// start time. Terminal bookings fall out of the index, so a cancelled slot
// can be rebooked.
func NewBookingMongoRepository(db *mongo.Client, dbName string) (contracts.BookingRepository, error) {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionBookings)

	ctx, cancel := context.WithTimeout(context.Background(), ensureIndexTimeout)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dermatologistId", Value: 1}, {Key: "scheduledAt", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": bson.M{"$in": models.ActiveBookingStatuses}}),
	})
	if err != nil {
		return nil, exceptions.ErrMongoDBCreateIndex(err)
	}

	return &BookingMongoRepository{Collection: collection}, nil
}

// CreateIfSlotFree claims the slot with a single conditional upsert: the
// filter matches an active booking on the same dermatologist and start time,
// and $setOnInsert only fires when no such booking exists. Two concurrent
// requests for the same slot race on the partial unique index; the loser's
// upsert fails with a duplicate key, which reports the slot as taken.
func (r *BookingMongoRepository) CreateIfSlotFree(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	filter := bson.M{
		"dermatologistId": booking.DermatologistID,
		"scheduledAt":     booking.ScheduledAt,
		"status":          bson.M{"$in": models.ActiveBookingStatuses},
	}
	update := bson.M{"$setOnInsert": booking}

	result, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", nil
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if result.UpsertedCount == 0 {
		return "", nil
	}
	return booking.ID, nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *BookingMongoRepository) FindByDermatologistID(ctx context.Context, dermatologistID string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"dermatologistId": dermatologistID})
}

func (r *BookingMongoRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *BookingMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindActiveStartTimesByDate(ctx context.Context, dermatologistID string, dayStart, dayEnd time.Time) ([]time.Time, error) {
	filter := bson.M{
		"dermatologistId": dermatologistID,
		"status":          bson.M{"$in": models.ActiveBookingStatuses},
		"scheduledAt":     bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	projection := options.Find().SetProjection(bson.M{"scheduledAt": 1})
	cursor, err := r.Collection.Find(ctx, filter, projection)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	startTimes := make([]time.Time, 0, len(bookings))
	for _, booking := range bookings {
		startTimes = append(startTimes, booking.ScheduledAt)
	}
	return startTimes, nil
}

func (r *BookingMongoRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	booking.UpdatedAt = time.Now()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrBookingNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *BookingMongoRepository) StartIfConfirmed(ctx context.Context, bookingID, meetingID, meetingLink string) (*models.Booking, error) {
	filter := bson.M{
		"_id":    bookingID,
		"status": models.BookingStatusConfirmed,
	}
	set := bson.M{
		"status":    models.BookingStatusInProgress,
		"updatedAt": time.Now(),
	}
	if meetingID != "" {
		set["meetingId"] = meetingID
		set["meetingLink"] = meetingLink
	}
	return r.findOneAndUpdate(ctx, filter, bson.M{"$set": set})
}

func (r *BookingMongoRepository) MarkPaid(ctx context.Context, bookingID, paymentID string, paidAt time.Time) (*models.Booking, error) {
	filter := bson.M{
		"_id":           bookingID,
		"status":        models.BookingStatusCompleted,
		"paymentStatus": models.PaymentStatusPending,
	}
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentStatusPaid,
		"paymentId":     paymentID,
		"paymentDate":   paidAt,
		"updatedAt":     paidAt,
	}}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *BookingMongoRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Booking, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &booking, nil
}
