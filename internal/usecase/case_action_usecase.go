package usecase

import (
	"context"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/domain/service"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/logger"
)

type CaseAction string

const (
	ActionApprove  CaseAction = "approve"
	ActionSuspend  CaseAction = "suspend"
	ActionActivate CaseAction = "activate"
	ActionReview   CaseAction = "review"
	ActionResolve  CaseAction = "resolve"
	ActionReject   CaseAction = "reject"
)

// sellerTransitions is the seller state machine: each action is legal from
// exactly one derived state.
var sellerTransitions = map[CaseAction]struct {
	From entity.SellerStatus
	To   entity.SellerStatus
}{
	ActionApprove:  {From: entity.SellerPending, To: entity.SellerApprovedActive},
	ActionSuspend:  {From: entity.SellerApprovedActive, To: entity.SellerSuspended},
	ActionActivate: {From: entity.SellerSuspended, To: entity.SellerApprovedActive},
}

// disputeTransitions covers dispute and delivery cases; delivery cases reuse
// the dispute vocabulary once escalated.
var disputeTransitions = map[CaseAction]struct {
	From []entity.DisputeStatus
	To   entity.DisputeStatus
}{
	ActionReview:  {From: []entity.DisputeStatus{entity.DisputeOpen}, To: entity.DisputeInReview},
	ActionResolve: {From: []entity.DisputeStatus{entity.DisputeOpen, entity.DisputeInReview}, To: entity.DisputeResolved},
	ActionReject:  {From: []entity.DisputeStatus{entity.DisputeOpen, entity.DisputeInReview}, To: entity.DisputeRejected},
}

type CaseActionUseCase struct {
	orderRepo  repository.OrderRepository
	sellerRepo repository.SellerRepository
	auditTrail *AuditTrailUseCase
	thresholds service.RiskThresholds
	now        func() time.Time
}

func NewCaseActionUseCase(orderRepo repository.OrderRepository, sellerRepo repository.SellerRepository, auditTrail *AuditTrailUseCase, thresholds service.RiskThresholds) *CaseActionUseCase {
	return &CaseActionUseCase{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		auditTrail: auditTrail,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// Apply validates the requested action against the case's current derived
// state and performs a compare-and-swap write. A concurrent conflicting write
// surfaces as CONCURRENT_MODIFICATION and must be retried by the caller after
// refetching. Seller transitions are audited synchronously before returning.
func (uc *CaseActionUseCase) Apply(ctx context.Context, adminID, caseKey string, action CaseAction, note string) (*entity.Case, error) {
	source, sourceID, err := entity.ParseCaseKey(caseKey)
	if err != nil {
		return nil, errors.BadRequest("Invalid case key: "+caseKey, err)
	}

	var result *entity.Case
	switch source {
	case entity.CaseSourceSeller:
		result, err = uc.applySellerAction(ctx, adminID, sourceID, action, note)
	case entity.CaseSourceDispute, entity.CaseSourceDelivery:
		result, err = uc.applyOrderAction(ctx, source, sourceID, action, note)
	}
	if err != nil {
		return nil, err
	}

	logger.LogCaseAction(caseKey, string(action), adminID)
	return result, nil
}

func (uc *CaseActionUseCase) applySellerAction(ctx context.Context, adminID, sellerID string, action CaseAction, note string) (*entity.Case, error) {
	transition, ok := sellerTransitions[action]
	if !ok {
		return nil, errors.BadRequest("Action "+string(action)+" is not valid for seller cases", nil)
	}

	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	current := seller.DerivedStatus()
	if current != transition.From {
		return nil, errors.InvalidTransition("seller " + sellerID + ": cannot " + string(action) + " from state " + string(current))
	}

	previous := seller.Flags()
	next := flagsForStatus(transition.To, previous)

	updated, err := uc.sellerRepo.UpdateFlags(ctx, sellerID, previous, next)
	if err != nil {
		return nil, err
	}

	if _, err := uc.auditTrail.Record(ctx, updated, adminID, previous, next, note); err != nil {
		return nil, err
	}

	result := buildSellerCase(updated)
	result.Note = note
	return &result, nil
}

func (uc *CaseActionUseCase) applyOrderAction(ctx context.Context, source entity.CaseSource, orderID string, action CaseAction, note string) (*entity.Case, error) {
	transition, ok := disputeTransitions[action]
	if !ok {
		return nil, errors.BadRequest("Action "+string(action)+" is not valid for "+string(source)+" cases", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	stored := order.Dispute.StatusOrNone()
	current := stored
	if source == entity.CaseSourceDelivery && stored == entity.DisputeNone {
		if !order.IsPaid || order.IsDelivered {
			return nil, errors.NotFound("Delivery case", nil)
		}
		// First action on a delivery case escalates it; until then the case
		// reads as open.
		current = entity.DisputeOpen
	}
	if source == entity.CaseSourceDispute && stored == entity.DisputeNone {
		return nil, errors.NotFound("Dispute case", nil)
	}

	if current == entity.DisputeResolved || current == entity.DisputeRejected {
		return nil, errors.CaseClosed(entity.CaseKeyFor(source, orderID))
	}
	if !containsStatus(transition.From, current) {
		return nil, errors.InvalidTransition(string(source) + " case " + orderID + ": cannot " + string(action) + " from state " + string(current))
	}

	update := entity.OrderDispute{
		Status: transition.To,
		Note:   note,
		Origin: order.Dispute.Origin,
	}
	if source == entity.CaseSourceDelivery && stored == entity.DisputeNone {
		update.Origin = entity.DisputeOriginDelivery
	}
	if update.Origin == "" {
		update.Origin = entity.DisputeOriginBuyer
	}

	updated, err := uc.orderRepo.UpdateDispute(ctx, orderID, stored, update)
	if err != nil {
		return nil, err
	}

	risk := service.ClassifyOrderRisk(updated, uc.now(), uc.thresholds)
	var result entity.Case
	if source == entity.CaseSourceDelivery {
		result = buildDeliveryCase(updated, risk)
	} else {
		result = buildDisputeCase(updated, risk)
	}
	return &result, nil
}

// ApplySellerFlagDelta maps a requested {isApproved, isActive} delta onto the
// equivalent seller action and routes it through the same dispatcher and
// audit path as the case queue.
func (uc *CaseActionUseCase) ApplySellerFlagDelta(ctx context.Context, adminID, sellerID string, isApproved, isActive *bool, note string) (*entity.Case, error) {
	seller, err := uc.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	target := seller.Flags()
	if isApproved != nil {
		target.IsApproved = *isApproved
	}
	if isActive != nil {
		target.IsActive = *isActive
	}

	action, err := actionForDelta(seller.DerivedStatus(), target.Derived())
	if err != nil {
		return nil, err
	}

	return uc.Apply(ctx, adminID, entity.CaseKeyFor(entity.CaseSourceSeller, sellerID), action, note)
}

func actionForDelta(from, to entity.SellerStatus) (CaseAction, error) {
	for action, transition := range sellerTransitions {
		if transition.From == from && transition.To == to {
			return action, nil
		}
	}
	if from == to {
		return "", errors.InvalidTransition("seller status is already " + string(from))
	}
	return "", errors.InvalidTransition("no seller action moves " + string(from) + " to " + string(to))
}

func flagsForStatus(status entity.SellerStatus, current entity.SellerFlags) entity.SellerFlags {
	switch status {
	case entity.SellerApprovedActive:
		return entity.SellerFlags{IsApproved: true, IsActive: true}
	case entity.SellerSuspended:
		return entity.SellerFlags{IsApproved: current.IsApproved, IsActive: false}
	default:
		return entity.SellerFlags{IsApproved: false, IsActive: true}
	}
}

func containsStatus(statuses []entity.DisputeStatus, status entity.DisputeStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
