package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreActivityLogRepository struct {
	client *firestore.Client
}

func NewFirestoreActivityLogRepository(client *firestore.Client) repository.ActivityLogRepository {
	return &firestoreActivityLogRepository{
		client: client,
	}
}

func (r *firestoreActivityLogRepository) Append(ctx context.Context, entry *entity.ActivityLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	// Create, not Set: an existing entry must never be overwritten.
	_, err := r.client.Collection("seller_activity_logs").Doc(entry.ID).Create(ctx, entry)
	if err != nil {
		return errors.Internal("Failed to append activity log entry", err)
	}

	return nil
}

func (r *firestoreActivityLogRepository) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.ActivityLogEntry, error) {
	query := r.client.Collection("seller_activity_logs").
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var entries []*entity.ActivityLogEntry

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate activity log", err)
		}

		var entry entity.ActivityLogEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse activity log entry", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
