package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/domain/service"
	"lokapasar/pkg/errors"
)

type AdminOrderFilter struct {
	Payment  string
	Delivery string
	Dispute  string
	Risk     string
	Keyword  string
	Page     int
	Limit    int
}

// AdminOrderView is an order annotated with its derived risk tier for the
// admin console.
type AdminOrderView struct {
	entity.Order
	RiskLevel service.RiskLevel `json:"risk_level"`
}

type AdminOrderUseCase struct {
	orderRepo  repository.OrderRepository
	thresholds service.RiskThresholds
	now        func() time.Time
}

func NewAdminOrderUseCase(orderRepo repository.OrderRepository, thresholds service.RiskThresholds) *AdminOrderUseCase {
	return &AdminOrderUseCase{
		orderRepo:  orderRepo,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// List returns a risk-annotated order page. Equality filters are pushed to
// the store; risk and keyword are derived at read time, so they are applied
// (with pagination) over the classified set.
func (uc *AdminOrderUseCase) List(ctx context.Context, filter AdminOrderFilter) ([]AdminOrderView, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	orders, err := uc.orderRepo.ListFiltered(ctx, repository.OrderFilter{
		Payment:  filter.Payment,
		Delivery: filter.Delivery,
		Dispute:  filter.Dispute,
	})
	if err != nil {
		return nil, 0, errors.SourceUnavailable("orders", err)
	}

	now := uc.now()
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))

	views := make([]AdminOrderView, 0, len(orders))
	for _, order := range orders {
		risk := service.ClassifyOrderRisk(order, now, uc.thresholds)
		if filter.Risk != "" && string(risk) != filter.Risk {
			continue
		}
		if keyword != "" && !orderMatchesKeyword(order, keyword) {
			continue
		}
		views = append(views, AdminOrderView{Order: *order, RiskLevel: risk})
	}

	sort.Slice(views, func(i, j int) bool {
		if !views[i].UpdatedAt.Equal(views[j].UpdatedAt) {
			return views[i].UpdatedAt.After(views[j].UpdatedAt)
		}
		return views[i].ID < views[j].ID
	})

	total := int64(len(views))
	start := (filter.Page - 1) * filter.Limit
	if start > len(views) {
		start = len(views)
	}
	end := start + filter.Limit
	if end > len(views) {
		end = len(views)
	}

	return views[start:end], total, nil
}

func orderMatchesKeyword(order *entity.Order, keyword string) bool {
	fields := []string{order.ID, order.BuyerID, order.BuyerName, order.BuyerEmail}
	for _, item := range order.Items {
		fields = append(fields, item.Title)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}
