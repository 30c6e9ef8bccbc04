package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates every index the repositories rely on. Called once
// at startup.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	type colIndexes struct {
		col     string
		indexes []mongo.IndexModel
	}

	all := []colIndexes{
		{
			col: UsersColName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("email_unique"),
				},
			},
		},
		{
			col: VenuesColName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "host_id", Value: 1}},
					Options: options.Index().SetName("host_id_idx"),
				},
				{
					Keys: bson.D{
						{Key: "price_per_day", Value: 1},
						{Key: "capacity", Value: 1},
					},
					Options: options.Index().SetName("price_capacity_idx"),
				},
				{
					Keys: bson.D{
						{Key: "coordinates.lat", Value: 1},
						{Key: "coordinates.lng", Value: 1},
					},
					Options: options.Index().SetName("coordinates_idx"),
				},
			},
		},
		{
			col: BookingsColName,
			indexes: []mongo.IndexModel{
				// Serves the overlap query: venue plus date range.
				{
					Keys: bson.D{
						{Key: "venue_id", Value: 1},
						{Key: "start_date", Value: 1},
						{Key: "end_date", Value: 1},
					},
					Options: options.Index().SetName("venue_dates_idx"),
				},
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetName("user_id_idx"),
				},
			},
		},
		{
			col: BookingLocksColName,
			indexes: []mongo.IndexModel{
				// Locks from crashed requests expire on their own.
				{
					Keys:    bson.D{{Key: "expires_at", Value: 1}},
					Options: options.Index().SetExpireAfterSeconds(0).SetName("expires_at_ttl"),
				},
			},
		},
		{
			col: PaymentsColName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "booking_id", Value: 1}},
					Options: options.Index().SetName("booking_id_idx"),
				},
			},
		},
		{
			col: ReviewsColName,
			indexes: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "venue_id", Value: 1},
						{Key: "created_at", Value: -1},
					},
					Options: options.Index().SetName("venue_created_idx"),
				},
			},
		},
		{
			col: FavouritesColName,
			indexes: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("user_id_unique"),
				},
			},
		},
	}

	for _, ci := range all {
		col, err := mdb.GetCollection(ctx, DbName, ci.col)
		if err != nil {
			return fmt.Errorf("error getting collection %s: %v", ci.col, err)
		}
		if _, err := col.Indexes().CreateMany(ctx, ci.indexes); err != nil {
			return fmt.Errorf("error creating indexes on %s: %v", ci.col, err)
		}
	}
	return nil
}
