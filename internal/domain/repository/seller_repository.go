package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type SellerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.SellerAccount, error)

	// ListNeedingAttention returns sellers whose derived status is not
	// approved_active, i.e. pending and suspended accounts.
	ListNeedingAttention(ctx context.Context) ([]*entity.SellerAccount, error)

	// UpdateFlags writes the approval/active pair only if the stored flags
	// still equal expected (compare-and-swap). A mismatch fails with a
	// CONCURRENT_MODIFICATION error and leaves the account untouched.
	UpdateFlags(ctx context.Context, sellerID string, expected, next entity.SellerFlags) (*entity.SellerAccount, error)
}
