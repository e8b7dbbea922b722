package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type AuditTrailUseCase struct {
	activityLogRepo repository.ActivityLogRepository
}

func NewAuditTrailUseCase(activityLogRepo repository.ActivityLogRepository) *AuditTrailUseCase {
	return &AuditTrailUseCase{
		activityLogRepo: activityLogRepo,
	}
}

// Record appends one immutable entry describing a seller status transition.
// The status-change label and severity are derived here so every log entry is
// classified the same way regardless of which path triggered the change.
func (uc *AuditTrailUseCase) Record(ctx context.Context, seller *entity.SellerAccount, adminID string, previous, current entity.SellerFlags, note string) (*entity.ActivityLogEntry, error) {
	entry := &entity.ActivityLogEntry{
		ID:       uuid.New().String(),
		SellerID: seller.ID,
		AdminID:  adminID,
		Action:   entity.ActivityStatusUpdate,
		Note:     note,
		Metadata: entity.ActivityMetadata{
			Previous:     previous,
			Current:      current,
			Severity:     severityFor(previous, current),
			StatusChange: statusChangeLabel(previous, current),
		},
		CreatedAt: time.Now(),
	}

	if err := uc.activityLogRepo.Append(ctx, entry); err != nil {
		return nil, errors.Internal("Failed to record seller activity", err)
	}

	return entry, nil
}

func (uc *AuditTrailUseCase) History(ctx context.Context, sellerID string) ([]*entity.ActivityLogEntry, error) {
	entries, err := uc.activityLogRepo.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, errors.Internal("Failed to load seller activity", err)
	}
	return entries, nil
}

// statusChangeLabel renders "<new>_from_<old>" over the derived states, e.g.
// "approved_active_from_pending".
func statusChangeLabel(previous, current entity.SellerFlags) string {
	return string(current.Derived()) + "_from_" + string(previous.Derived())
}

func severityFor(previous, current entity.SellerFlags) entity.ActivitySeverity {
	from := previous.Derived()
	to := current.Derived()

	switch {
	case from == to:
		// State repeats should not occur given dispatcher validation.
		return entity.SeverityLow
	case to == entity.SellerSuspended:
		return entity.SeverityHigh
	case from == entity.SellerSuspended:
		return entity.SeverityMedium
	case to == entity.SellerApprovedActive && from == entity.SellerPending:
		return entity.SeverityMedium
	default:
		return entity.SeverityLow
	}
}
