package models

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"festa/internal/apperrors"
)

type PaymentsRepo interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetPaymentByBooking(ctx context.Context, bookingId uuid.UUID) (*Payment, error)
}

func (mdb *MongodbRepo) CreatePayment(ctx context.Context, payment *Payment) error {
	col, err := mdb.GetCollection(ctx, DbName, PaymentsColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}
	if _, err := col.InsertOne(ctx, payment); err != nil {
		return apperrors.Persistence("failed to insert payment", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	col, err := mdb.GetCollection(ctx, DbName, PaymentsColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	var payment Payment
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("payment", id.String())
		}
		return nil, apperrors.Persistence("failed to fetch payment", err)
	}
	return &payment, nil
}

func (mdb *MongodbRepo) GetPaymentByBooking(ctx context.Context, bookingId uuid.UUID) (*Payment, error) {
	col, err := mdb.GetCollection(ctx, DbName, PaymentsColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	var payment Payment
	if err := col.FindOne(ctx, bson.M{"booking_id": bookingId}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("payment", bookingId.String())
		}
		return nil, apperrors.Persistence("failed to fetch payment", err)
	}
	return &payment, nil
}
