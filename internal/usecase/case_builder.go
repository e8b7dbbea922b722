package usecase

import (
	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/service"
)

// Case normalization lives here so the aggregator's read path and the
// dispatcher's post-action view produce the identical shape for the same
// underlying record.

func buildDisputeCase(order *entity.Order, risk service.RiskLevel) entity.Case {
	return entity.Case{
		CaseKey:    entity.CaseKeyFor(entity.CaseSourceDispute, order.ID),
		Source:     entity.CaseSourceDispute,
		SourceID:   order.ID,
		Subject:    "Dispute: " + orderSubject(order),
		ActorName:  order.BuyerName,
		ActorEmail: order.BuyerEmail,
		Status:     string(order.Dispute.StatusOrNone()),
		Priority:   disputePriority(risk),
		Amount:     order.TotalPrice,
		Note:       order.Dispute.Note,
		UpdatedAt:  order.UpdatedAt,
	}
}

func buildDeliveryCase(order *entity.Order, risk service.RiskLevel) entity.Case {
	// A delivery case an admin has not acted on yet has no dispute record;
	// it reads as open.
	status := entity.DisputeOpen
	if order.Dispute.StatusOrNone() != entity.DisputeNone {
		status = order.Dispute.StatusOrNone()
	}

	return entity.Case{
		CaseKey:    entity.CaseKeyFor(entity.CaseSourceDelivery, order.ID),
		Source:     entity.CaseSourceDelivery,
		SourceID:   order.ID,
		Subject:    "Delayed delivery: " + orderSubject(order),
		ActorName:  order.BuyerName,
		ActorEmail: order.BuyerEmail,
		Status:     string(status),
		Priority:   disputePriority(risk),
		Amount:     order.TotalPrice,
		Note:       order.Dispute.Note,
		UpdatedAt:  order.UpdatedAt,
	}
}

func buildSellerCase(seller *entity.SellerAccount) entity.Case {
	status := seller.DerivedStatus()

	subject := "Seller approval pending"
	priority := "low"
	if status == entity.SellerSuspended {
		subject = "Seller suspended"
		priority = "high"
	}
	if seller.StoreName != "" {
		subject += ": " + seller.StoreName
	}

	return entity.Case{
		CaseKey:    entity.CaseKeyFor(entity.CaseSourceSeller, seller.ID),
		Source:     entity.CaseSourceSeller,
		SourceID:   seller.ID,
		Subject:    subject,
		ActorName:  seller.Name,
		ActorEmail: seller.Email,
		Status:     string(status),
		Priority:   priority,
		UpdatedAt:  seller.UpdatedAt,
	}
}

func orderSubject(order *entity.Order) string {
	if len(order.Items) > 0 && order.Items[0].Title != "" {
		return order.Items[0].Title
	}
	return "order " + order.ID
}

func disputePriority(risk service.RiskLevel) string {
	if risk == service.RiskHigh {
		return "high"
	}
	return "medium"
}
