package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ReviewsColName = "venue_reviews"

type VenueReview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID          `bson:"user_id" json:"user_id"`
	VenueID   uuid.UUID          `bson:"venue_id" json:"venue_id"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *VenueReview) (*VenueReview, error)
	GetReviewsByVenue(ctx context.Context, venueId uuid.UUID, limit int) ([]*VenueReview, error)
	DeleteReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID) error
}

func (r *VenueReview) BeforeCreate() {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *VenueReview) (*VenueReview, error) {
	if err := Validate.Struct(review); err != nil {
		return nil, fmt.Errorf("invalid review data: %w", err)
	}
	review.BeforeCreate()

	col, err := mdb.GetCollection(ctx, DbName, ReviewsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := col.InsertOne(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	return review, nil
}

func (mdb *MongodbRepo) GetReviewsByVenue(ctx context.Context, venueId uuid.UUID, limit int) ([]*VenueReview, error) {
	col, err := mdb.GetCollection(ctx, DbName, ReviewsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{"venue_id": venueId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var reviews []*VenueReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %v", err)
	}
	return reviews, nil
}

func (mdb *MongodbRepo) DeleteReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, ReviewsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": reviewId, "user_id": userId})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("review not found")
	}
	return nil
}
