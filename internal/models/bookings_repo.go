package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"festa/internal/apperrors"
)

type BookingsRepo interface {
	FindOverlapping(ctx context.Context, venueId uuid.UUID, start, end time.Time) ([]*VenueBooking, error)
	CreateBooking(ctx context.Context, booking *VenueBooking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*VenueBooking, error)
	ListBookingsByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*VenueBooking, int64, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error
	AcquireLock(ctx context.Context, lockId string, ttl time.Duration) error
	ReleaseLock(ctx context.Context, lockId string) error
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

// FindOverlapping returns non-canceled bookings whose closed date range
// intersects [start, end]. The overlap rule is boundary-inclusive:
// existing.start <= end AND existing.end >= start.
func (mdb *MongodbRepo) FindOverlapping(ctx context.Context, venueId uuid.UUID, start, end time.Time) ([]*VenueBooking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	filter := bson.M{
		"venue_id":   venueId,
		"status":     bson.M{"$ne": BookingStatusCanceled},
		"start_date": bson.M{"$lte": end},
		"end_date":   bson.M{"$gte": start},
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Persistence("failed to query overlapping bookings", err)
	}
	defer cursor.Close(ctx)

	var bookings []*VenueBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, apperrors.Persistence("failed to decode bookings", err)
	}
	return bookings, nil
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *VenueBooking) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}
	if _, err := col.InsertOne(ctx, booking); err != nil {
		return apperrors.Persistence("failed to insert booking", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*VenueBooking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	var booking VenueBooking
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("booking", id.String())
		}
		return nil, apperrors.Persistence("failed to fetch booking", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*VenueBooking, int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, 0, apperrors.Persistence("error getting collection", err)
	}

	filter := bson.M{"user_id": userId}
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Persistence("failed to count bookings", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Persistence("failed to list bookings", err)
	}
	defer cursor.Close(ctx)

	var bookings []*VenueBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, apperrors.Persistence("failed to decode bookings", err)
	}
	return bookings, total, nil
}

func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	if err != nil {
		return apperrors.Persistence("failed to update booking status", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("booking", id.String())
	}
	return nil
}

// AcquireLock inserts an advisory lock document. The unique _id turns
// concurrent attempts on the same slot into a first-writer-wins race; the
// TTL index on expires_at reaps locks left behind by crashed requests.
func (mdb *MongodbRepo) AcquireLock(ctx context.Context, lockId string, ttl time.Duration) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingLocksColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}

	now := time.Now()
	lock := BookingLock{
		ID:        lockId,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	if _, err := col.InsertOne(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("venue is currently being booked by another request, try again")
		}
		return apperrors.Persistence("failed to acquire booking lock", err)
	}
	return nil
}

func (mdb *MongodbRepo) ReleaseLock(ctx context.Context, lockId string) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingLocksColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}
	if _, err := col.DeleteOne(ctx, bson.M{"_id": lockId}); err != nil {
		return apperrors.Persistence("failed to release booking lock", err)
	}
	return nil
}
