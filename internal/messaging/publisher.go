package messaging

import (
	"context"
	"time"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

// PurchaseStatusEvent is emitted on every state change of a submitted transaction
type PurchaseStatusEvent struct {
	ID           string                   `json:"id"`
	TxHash       string                   `json:"tx_hash"`
	Chain        domain.Chain             `json:"chain"`
	BuyerAddress string                   `json:"buyer_address"`
	RoundNumber  int                      `json:"round_number"`
	State        domain.VerificationState `json:"state"`
	Reason       string                   `json:"reason,omitempty"`
	Attempts     int                      `json:"attempts"`
	// Set once the purchase is in the ledger
	PurchaseID      string    `json:"purchase_id,omitempty"`
	TokensPurchased string    `json:"tokens_purchased,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishPurchaseStatus publishes a purchase status change to the message broker
	PublishPurchaseStatus(ctx context.Context, event *PurchaseStatusEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishPurchaseStatus(context.Context, *PurchaseStatusEvent) error {
	return nil
}

func (noopPublisher) Close() {}
