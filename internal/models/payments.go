package models

import (
	"time"

	"github.com/google/uuid"
)

const PaymentsColName = "payments"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type Payment struct {
	ID        uuid.UUID     `bson:"_id" json:"id"`
	BookingID uuid.UUID     `bson:"booking_id" json:"booking_id"`
	Amount    float64       `bson:"amount" json:"amount"`
	Status    PaymentStatus `bson:"status" json:"status"`
	Method    string        `bson:"method" json:"method"`
	GatewayTx string        `bson:"gateway_tx,omitempty" json:"gateway_tx,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
