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

type firestoreSellerRepository struct {
	client *firestore.Client
}

func NewFirestoreSellerRepository(client *firestore.Client) repository.SellerRepository {
	return &firestoreSellerRepository{
		client: client,
	}
}

func (r *firestoreSellerRepository) GetByID(ctx context.Context, id string) (*entity.SellerAccount, error) {
	doc, err := r.client.Collection("sellers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Seller", err)
		}
		return nil, errors.Internal("Failed to get seller", err)
	}

	var seller entity.SellerAccount
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Internal("Failed to parse seller data", err)
	}

	return &seller, nil
}

// The derived status is not stored, so the two non-approved_active shapes are
// fetched with separate equality queries and merged: suspended (isActive
// false) and pending (isActive true, isApproved false).
func (r *firestoreSellerRepository) ListNeedingAttention(ctx context.Context) ([]*entity.SellerAccount, error) {
	suspended, err := r.collectSellers(ctx, r.client.Collection("sellers").
		Where("isActive", "==", false))
	if err != nil {
		return nil, err
	}

	pending, err := r.collectSellers(ctx, r.client.Collection("sellers").
		Where("isActive", "==", true).
		Where("isApproved", "==", false))
	if err != nil {
		return nil, err
	}

	return append(suspended, pending...), nil
}

func (r *firestoreSellerRepository) UpdateFlags(ctx context.Context, sellerID string, expected, next entity.SellerFlags) (*entity.SellerAccount, error) {
	ref := r.client.Collection("sellers").Doc(sellerID)

	var updated entity.SellerAccount
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Seller", err)
			}
			return errors.Internal("Failed to read seller", err)
		}

		var seller entity.SellerAccount
		if err := doc.DataTo(&seller); err != nil {
			return errors.Internal("Failed to parse seller data", err)
		}

		if seller.Flags() != expected {
			return errors.ConcurrentModification("seller " + sellerID)
		}

		seller.IsApproved = next.IsApproved
		seller.IsActive = next.IsActive
		seller.UpdatedAt = time.Now()

		if err := tx.Set(ref, &seller); err != nil {
			return errors.Internal("Failed to write seller flags", err)
		}

		updated = seller
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *firestoreSellerRepository) collectSellers(ctx context.Context, query firestore.Query) ([]*entity.SellerAccount, error) {
	iter := query.Documents(ctx)
	var sellers []*entity.SellerAccount

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate sellers", err)
		}

		var seller entity.SellerAccount
		if err := doc.DataTo(&seller); err != nil {
			return nil, errors.Internal("Failed to parse seller data", err)
		}
		sellers = append(sellers, &seller)
	}

	return sellers, nil
}
