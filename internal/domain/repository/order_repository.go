package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

// OrderFilter carries the equality filters the store can answer directly.
// Derived filters (risk tier, keyword) are applied by the use case after
// classification.
type OrderFilter struct {
	Payment  string // "paid" | "unpaid" | ""
	Delivery string // "delivered" | "undelivered" | ""
	Dispute  string // dispute status, "any", "none", or ""
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListFiltered(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// ListDisputed returns orders whose dispute record is present (any status
	// other than none).
	ListDisputed(ctx context.Context) ([]*entity.Order, error)

	// ListUndelivered returns paid, not-yet-delivered orders, the raw input
	// for delivery-delay classification.
	ListUndelivered(ctx context.Context) ([]*entity.Order, error)

	// UpdateDispute writes the dispute record only if the stored dispute
	// status still equals expected (compare-and-swap). A mismatch fails with
	// a CONCURRENT_MODIFICATION error and leaves the order untouched.
	UpdateDispute(ctx context.Context, orderID string, expected entity.DisputeStatus, update entity.OrderDispute) (*entity.Order, error)
}
