package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"festa/internal/apperrors"
)

// PaymentGateway is the narrow interface the booking orchestrator charges
// through. Implementations must be safe for concurrent use.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, method, reference string) (string, error)
	Void(ctx context.Context, txnId string) error
}

// SimulatedGateway approves every well-formed charge and hands back a
// generated transaction id. It stands in for a real gateway integration.
type SimulatedGateway struct {
	logger *slog.Logger
}

func NewSimulatedGateway(logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{logger: logger}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount float64, method, reference string) (string, error) {
	if amount <= 0 {
		return "", apperrors.ExternalService("payment declined: non-positive amount", nil)
	}
	if method == "" {
		method = "card"
	}

	txnId := fmt.Sprintf("txn_%d", time.Now().UnixNano())
	g.logger.Info("payment charged",
		"txn_id", txnId,
		"amount", amount,
		"method", method,
		"reference", reference,
	)
	return txnId, nil
}

func (g *SimulatedGateway) Void(ctx context.Context, txnId string) error {
	g.logger.Info("payment voided", "txn_id", txnId)
	return nil
}
