package booking

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// SubmissionRequest is the payload handed to the booking gateway.
type SubmissionRequest struct {
	ItemType    string
	ItemSlug    string
	OptionID    string
	Form        types.BookingFormData
	TotalAmount float64
	Currency    string
}

// Gateway is the port to the booking backend. The production wiring uses the
// simulated implementation below; tests inject a deterministic fake.
type Gateway interface {
	Submit(ctx context.Context, req SubmissionRequest) (*types.Confirmation, error)
}

// Ensure implementation satisfies the interface
var _ Gateway = (*SimulatedGateway)(nil)

// SimulatedGateway stands in for a real booking backend. It waits for a fixed
// delay and then fails a configurable fraction of submissions. This is a
// documented stub: swapping in a real backend only replaces this type.
type SimulatedGateway struct {
	delay       time.Duration
	failureRate float64
}

func NewSimulatedGateway(delay time.Duration, failureRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       delay,
		failureRate: failureRate,
	}
}

func (g *SimulatedGateway) Submit(ctx context.Context, req SubmissionRequest) (*types.Confirmation, error) {
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if rand.Float64() < g.failureRate {
		return nil, types.ErrSubmissionFailed
	}

	return &types.Confirmation{
		ID:               uuid.NewString(),
		ConfirmationCode: NewConfirmationCode(),
		Status:           string(types.BookingStatusConfirmed),
		TotalAmount:      req.TotalAmount,
		Currency:         req.Currency,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

const confirmationAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewConfirmationCode returns "RW" followed by 8 random base-36 upper chars.
func NewConfirmationCode() string {
	var b strings.Builder
	b.WriteString("RW")
	for range 8 {
		b.WriteByte(confirmationAlphabet[rand.IntN(len(confirmationAlphabet))])
	}
	return b.String()
}
