package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type ActivityLogRepository interface {
	// Append inserts one immutable entry. Existing entries are never updated
	// or removed.
	Append(ctx context.Context, entry *entity.ActivityLogEntry) error

	// ListBySellerID returns a seller's entries ordered by createdAt
	// descending.
	ListBySellerID(ctx context.Context, sellerID string) ([]*entity.ActivityLogEntry, error)
}
