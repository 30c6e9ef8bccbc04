package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"festa/internal/apperrors"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context, publicOnly bool, offset, limit int) ([]*Event, int64, error)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) error {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}
	if _, err := col.InsertOne(ctx, event); err != nil {
		return apperrors.Persistence("failed to insert event", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	var event Event
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("event", id.String())
		}
		return nil, apperrors.Persistence("failed to fetch event", err)
	}
	return &event, nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context, publicOnly bool, offset, limit int) ([]*Event, int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, 0, apperrors.Persistence("error getting collection", err)
	}

	filter := bson.M{}
	if publicOnly {
		filter["public"] = true
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Persistence("failed to count events", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Persistence("failed to list events", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, apperrors.Persistence("failed to decode events", err)
	}
	return events, total, nil
}
