package handler

import (
	"lokapasar/internal/usecase"
)

var (
	adminOrderHandler   *AdminOrderHandler
	supportQueueHandler *SupportQueueHandler
	sellerHandler       *SellerHandler
	healthHandler       *HealthHandler
)

func Setup(
	adminOrderUseCase *usecase.AdminOrderUseCase,
	caseAggregator *usecase.CaseAggregatorUseCase,
	caseAction *usecase.CaseActionUseCase,
	auditTrail *usecase.AuditTrailUseCase,
) {
	adminOrderHandler = NewAdminOrderHandler(adminOrderUseCase)
	supportQueueHandler = NewSupportQueueHandler(caseAggregator, caseAction)
	sellerHandler = NewSellerHandler(caseAction, auditTrail)
	healthHandler = NewHealthHandler()
}

func GetAdminOrderHandler() *AdminOrderHandler {
	return adminOrderHandler
}

func GetSupportQueueHandler() *SupportQueueHandler {
	return supportQueueHandler
}

func GetSellerHandler() *SellerHandler {
	return sellerHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
