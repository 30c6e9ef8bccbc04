package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"festa/internal/apperrors"
	"festa/internal/geo"
)

// VenueQuery is the database-level part of a venue search: budget and
// capacity translate to range filters, Box is the geo pre-filter.
type VenueQuery struct {
	MaxPricePerDay float64
	MinCapacity    int
	Box            *geo.BoundingBox
}

func (q VenueQuery) filter() bson.M {
	filter := bson.M{"status": VenueStatusActive}
	if q.MaxPricePerDay > 0 {
		filter["price_per_day"] = bson.M{"$lte": q.MaxPricePerDay}
	}
	if q.MinCapacity > 0 {
		filter["capacity"] = bson.M{"$gte": q.MinCapacity}
	}
	if q.Box != nil {
		filter["coordinates.lat"] = bson.M{"$gte": q.Box.MinLat, "$lte": q.Box.MaxLat}
		filter["coordinates.lng"] = bson.M{"$gte": q.Box.MinLng, "$lte": q.Box.MaxLng}
	}
	return filter
}

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int64, error)
	ListVenuesByHost(ctx context.Context, hostId uuid.UUID, offset, limit int) ([]*Venue, int64, error)
	UpdateVenue(ctx context.Context, venueId uuid.UUID, updates map[string]interface{}) (*Venue, error)
	DeleteVenue(ctx context.Context, hostId, venueId uuid.UUID) error
	QueryVenues(ctx context.Context, query VenueQuery, skip, limit int64) ([]*Venue, error)
	CountVenues(ctx context.Context, query VenueQuery) (int64, error)
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	if _, err := col.InsertOne(ctx, venue); err != nil {
		return nil, apperrors.Persistence("failed to insert venue", err)
	}
	return venue, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	var venue Venue
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("venue", id.String())
		}
		return nil, apperrors.Persistence("failed to fetch venue", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int64, error) {
	return mdb.listVenues(ctx, bson.M{"status": VenueStatusActive}, offset, limit)
}

func (mdb *MongodbRepo) ListVenuesByHost(ctx context.Context, hostId uuid.UUID, offset, limit int) ([]*Venue, int64, error) {
	return mdb.listVenues(ctx, bson.M{"host_id": hostId}, offset, limit)
}

func (mdb *MongodbRepo) listVenues(ctx context.Context, filter bson.M, offset, limit int) ([]*Venue, int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, 0, apperrors.Persistence("error getting collection", err)
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Persistence("failed to count venues", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Persistence("failed to list venues", err)
	}
	defer cursor.Close(ctx)

	var venues []*Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, 0, apperrors.Persistence("failed to decode venues", err)
	}
	return venues, total, nil
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, venueId uuid.UUID, updates map[string]interface{}) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	updates["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var venue Venue
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": venueId}, bson.M{"$set": updates}, opts).Decode(&venue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("venue", venueId.String())
		}
		return nil, apperrors.Persistence("failed to update venue", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, hostId, venueId uuid.UUID) error {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": venueId, "host_id": hostId})
	if err != nil {
		return apperrors.Persistence("failed to delete venue", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound("venue", venueId.String())
	}
	return nil
}

// QueryVenues pages through the filtered set in _id order so repeated
// queries see stable page boundaries.
func (mdb *MongodbRepo) QueryVenues(ctx context.Context, query VenueQuery, skip, limit int64) ([]*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := col.Find(ctx, query.filter(), opts)
	if err != nil {
		return nil, apperrors.Persistence("failed to query venues", err)
	}
	defer cursor.Close(ctx)

	var venues []*Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, apperrors.Persistence("failed to decode venues", err)
	}
	return venues, nil
}

// CountVenues counts matches for budget/capacity only; the caller strips any
// geo box so pagination totals reflect the whole filtered set.
func (mdb *MongodbRepo) CountVenues(ctx context.Context, query VenueQuery) (int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return 0, apperrors.Persistence("error getting collection", err)
	}

	total, err := col.CountDocuments(ctx, query.filter())
	if err != nil {
		return 0, apperrors.Persistence(fmt.Sprintf("failed to count venues matching %+v", query), err)
	}
	return total, nil
}
