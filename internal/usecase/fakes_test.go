package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

// In-memory repository fakes. Writes go through the same compare-and-swap
// discipline as the Firestore adapters so conflict behavior is testable.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order

	listErr  error
	afterGet func() // fires once after GetByID, simulates a concurrent writer
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	order, ok := r.orders[id]
	var snapshot entity.Order
	if ok {
		snapshot = *order
	}
	r.mu.Unlock()

	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	if r.afterGet != nil {
		hook := r.afterGet
		r.afterGet = nil
		hook()
	}
	return &snapshot, nil
}

func (r *fakeOrderRepo) ListFiltered(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Order
	for _, order := range r.orders {
		if filter.Payment == "paid" && !order.IsPaid {
			continue
		}
		if filter.Payment == "unpaid" && order.IsPaid {
			continue
		}
		if filter.Delivery == "delivered" && !order.IsDelivered {
			continue
		}
		if filter.Delivery == "undelivered" && order.IsDelivered {
			continue
		}
		switch filter.Dispute {
		case "":
		case "none":
			if order.Dispute.StatusOrNone() != entity.DisputeNone {
				continue
			}
		case "any":
			if order.Dispute.StatusOrNone() == entity.DisputeNone {
				continue
			}
		default:
			if string(order.Dispute.StatusOrNone()) != filter.Dispute {
				continue
			}
		}
		snapshot := *order
		out = append(out, &snapshot)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListDisputed(ctx context.Context) ([]*entity.Order, error) {
	return r.ListFiltered(ctx, repository.OrderFilter{Dispute: "any"})
}

func (r *fakeOrderRepo) ListUndelivered(ctx context.Context) ([]*entity.Order, error) {
	return r.ListFiltered(ctx, repository.OrderFilter{Payment: "paid", Delivery: "undelivered"})
}

func (r *fakeOrderRepo) UpdateDispute(ctx context.Context, orderID string, expected entity.DisputeStatus, update entity.OrderDispute) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	if order.Dispute.StatusOrNone() != expected {
		return nil, errors.ConcurrentModification("order " + orderID)
	}

	now := time.Now()
	update.UpdatedAt = &now
	order.Dispute = update
	order.UpdatedAt = now

	snapshot := *order
	return &snapshot, nil
}

type fakeSellerRepo struct {
	mu      sync.Mutex
	sellers map[string]*entity.SellerAccount

	listErr  error
	afterGet func()
}

func newFakeSellerRepo(sellers ...*entity.SellerAccount) *fakeSellerRepo {
	repo := &fakeSellerRepo{sellers: make(map[string]*entity.SellerAccount)}
	for _, s := range sellers {
		repo.sellers[s.ID] = s
	}
	return repo
}

func (r *fakeSellerRepo) GetByID(ctx context.Context, id string) (*entity.SellerAccount, error) {
	r.mu.Lock()
	seller, ok := r.sellers[id]
	var snapshot entity.SellerAccount
	if ok {
		snapshot = *seller
	}
	r.mu.Unlock()

	if !ok {
		return nil, errors.NotFound("Seller", nil)
	}
	if r.afterGet != nil {
		hook := r.afterGet
		r.afterGet = nil
		hook()
	}
	return &snapshot, nil
}

func (r *fakeSellerRepo) ListNeedingAttention(ctx context.Context) ([]*entity.SellerAccount, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.SellerAccount
	for _, seller := range r.sellers {
		if seller.DerivedStatus() == entity.SellerApprovedActive {
			continue
		}
		snapshot := *seller
		out = append(out, &snapshot)
	}
	return out, nil
}

func (r *fakeSellerRepo) UpdateFlags(ctx context.Context, sellerID string, expected, next entity.SellerFlags) (*entity.SellerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seller, ok := r.sellers[sellerID]
	if !ok {
		return nil, errors.NotFound("Seller", nil)
	}
	if seller.Flags() != expected {
		return nil, errors.ConcurrentModification("seller " + sellerID)
	}

	seller.IsApproved = next.IsApproved
	seller.IsActive = next.IsActive
	seller.UpdatedAt = time.Now()

	snapshot := *seller
	return &snapshot, nil
}

// setFlags mutates the store directly, standing in for a concurrent writer.
func (r *fakeSellerRepo) setFlags(id string, flags entity.SellerFlags) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seller, ok := r.sellers[id]; ok {
		seller.IsApproved = flags.IsApproved
		seller.IsActive = flags.IsActive
	}
}

type fakeActivityLogRepo struct {
	mu      sync.Mutex
	entries []*entity.ActivityLogEntry
}

func newFakeActivityLogRepo() *fakeActivityLogRepo {
	return &fakeActivityLogRepo{}
}

func (r *fakeActivityLogRepo) Append(ctx context.Context, entry *entity.ActivityLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := *entry
	r.entries = append(r.entries, &snapshot)
	return nil
}

// setCreatedAt rewrites a stored entry's timestamp so ordering tests do not
// depend on wall-clock resolution.
func (r *fakeActivityLogRepo) setCreatedAt(id string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.entries {
		if entry.ID == id {
			entry.CreatedAt = at
		}
	}
}

func (r *fakeActivityLogRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.ActivityLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ActivityLogEntry
	for _, entry := range r.entries {
		if entry.SellerID != sellerID {
			continue
		}
		snapshot := *entry
		out = append(out, &snapshot)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
