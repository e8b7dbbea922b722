package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListFiltered(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query

	switch filter.Payment {
	case "paid":
		query = query.Where("isPaid", "==", true)
	case "unpaid":
		query = query.Where("isPaid", "==", false)
	}

	switch filter.Delivery {
	case "delivered":
		query = query.Where("isDelivered", "==", true)
	case "undelivered":
		query = query.Where("isDelivered", "==", false)
	}

	switch filter.Dispute {
	case "":
	case "none":
		query = query.Where("dispute.status", "in", []string{"", string(entity.DisputeNone)})
	case "any":
		query = query.Where("dispute.status", "in", disputeStatusValues())
	default:
		query = query.Where("dispute.status", "==", filter.Dispute)
	}

	return r.collectOrders(ctx, query)
}

func (r *firestoreOrderRepository) ListDisputed(ctx context.Context) ([]*entity.Order, error) {
	query := r.client.Collection("orders").
		Where("dispute.status", "in", disputeStatusValues())
	return r.collectOrders(ctx, query)
}

func (r *firestoreOrderRepository) ListUndelivered(ctx context.Context) ([]*entity.Order, error) {
	query := r.client.Collection("orders").
		Where("isPaid", "==", true).
		Where("isDelivered", "==", false)
	return r.collectOrders(ctx, query)
}

func (r *firestoreOrderRepository) UpdateDispute(ctx context.Context, orderID string, expected entity.DisputeStatus, update entity.OrderDispute) (*entity.Order, error) {
	ref := r.client.Collection("orders").Doc(orderID)

	var updated entity.Order
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Order", err)
			}
			return errors.Internal("Failed to read order", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return errors.Internal("Failed to parse order data", err)
		}

		if order.Dispute.StatusOrNone() != expected {
			return errors.ConcurrentModification("order " + orderID)
		}

		now := time.Now()
		update.UpdatedAt = &now
		order.Dispute = update
		order.UpdatedAt = now

		if err := tx.Set(ref, &order); err != nil {
			return errors.Internal("Failed to write order dispute", err)
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *firestoreOrderRepository) collectOrders(ctx context.Context, query firestore.Query) ([]*entity.Order, error) {
	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

// Firestore "in" filters cannot express != none directly, so the disputed
// queries enumerate the live statuses instead.
func disputeStatusValues() []string {
	return []string{
		string(entity.DisputeOpen),
		string(entity.DisputeInReview),
		string(entity.DisputeResolved),
		string(entity.DisputeRejected),
	}
}
