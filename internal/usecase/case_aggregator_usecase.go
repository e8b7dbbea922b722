package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/internal/domain/service"
	"lokapasar/pkg/errors"
)

type CaseFilter struct {
	Source  string
	Status  string
	Keyword string
	Page    int
	Limit   int
}

type CaseAggregatorUseCase struct {
	orderRepo  repository.OrderRepository
	sellerRepo repository.SellerRepository
	thresholds service.RiskThresholds
	now        func() time.Time
}

func NewCaseAggregatorUseCase(orderRepo repository.OrderRepository, sellerRepo repository.SellerRepository, thresholds service.RiskThresholds) *CaseAggregatorUseCase {
	return &CaseAggregatorUseCase{
		orderRepo:  orderRepo,
		sellerRepo: sellerRepo,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// List fans out to the three backing sources, normalizes everything into the
// common case shape, filters, sorts, and paginates. The summary is computed
// over the unfiltered set. If any one source fails the whole request fails;
// the admin must never see a shorter list that looks complete.
func (uc *CaseAggregatorUseCase) List(ctx context.Context, filter CaseFilter) (*entity.CasePage, error) {
	if filter.Source != "" && filter.Source != "all" {
		if _, err := entity.ParseCaseSource(filter.Source); err != nil {
			return nil, errors.BadRequest("Unknown case source: "+filter.Source, err)
		}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	var (
		disputed    []*entity.Order
		undelivered []*entity.Order
		sellers     []*entity.SellerAccount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		disputed, err = uc.orderRepo.ListDisputed(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		undelivered, err = uc.orderRepo.ListUndelivered(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sellers, err = uc.sellerRepo.ListNeedingAttention(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.SourceUnavailable("case queue", err)
	}

	now := uc.now()
	all := uc.normalize(disputed, undelivered, sellers, now)
	summary := summarize(all)

	filtered := applyCaseFilter(all, filter)

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].UpdatedAt.Equal(filtered[j].UpdatedAt) {
			return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
		}
		// Tie-break on the case key so pagination stays stable across equal
		// timestamps.
		return filtered[i].CaseKey < filtered[j].CaseKey
	})

	total := len(filtered)
	pages := (total + filter.Limit - 1) / filter.Limit
	start := (filter.Page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	return &entity.CasePage{
		Cases:   filtered[start:end],
		Total:   int64(total),
		Page:    filter.Page,
		Pages:   pages,
		Summary: summary,
	}, nil
}

func (uc *CaseAggregatorUseCase) normalize(disputed, undelivered []*entity.Order, sellers []*entity.SellerAccount, now time.Time) []entity.Case {
	var cases []entity.Case

	for _, order := range disputed {
		risk := service.ClassifyOrderRisk(order, now, uc.thresholds)
		if order.Dispute.Origin == entity.DisputeOriginDelivery {
			// Escalated delivery cases keep their delivery key.
			cases = append(cases, buildDeliveryCase(order, risk))
			continue
		}
		cases = append(cases, buildDisputeCase(order, risk))
	}

	for _, order := range undelivered {
		if order.Dispute.StatusOrNone() != entity.DisputeNone {
			// Already surfaced from the disputed query.
			continue
		}
		risk := service.ClassifyOrderRisk(order, now, uc.thresholds)
		if risk != service.RiskOverdue {
			continue
		}
		cases = append(cases, buildDeliveryCase(order, risk))
	}

	for _, seller := range sellers {
		if seller.DerivedStatus() == entity.SellerApprovedActive {
			continue
		}
		cases = append(cases, buildSellerCase(seller))
	}

	return cases
}

func applyCaseFilter(cases []entity.Case, filter CaseFilter) []entity.Case {
	filtered := make([]entity.Case, 0, len(cases))
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))

	for _, c := range cases {
		if filter.Source != "" && filter.Source != "all" && string(c.Source) != filter.Source {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if keyword != "" && !caseMatchesKeyword(c, keyword) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered
}

func caseMatchesKeyword(c entity.Case, keyword string) bool {
	for _, field := range []string{c.Subject, c.ActorName, c.ActorEmail, c.SourceID, c.CaseKey} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

func summarize(cases []entity.Case) entity.CaseSummary {
	summary := entity.CaseSummary{TotalCases: len(cases)}

	for _, c := range cases {
		switch c.Source {
		case entity.CaseSourceDispute:
			if c.Status == string(entity.DisputeOpen) || c.Status == string(entity.DisputeInReview) {
				summary.OpenDisputes++
			}
		case entity.CaseSourceDelivery:
			if c.Status == string(entity.DisputeOpen) || c.Status == string(entity.DisputeInReview) {
				summary.DelayedDeliveries++
			}
		case entity.CaseSourceSeller:
			if c.Status == string(entity.SellerSuspended) {
				summary.SuspendedSellers++
			} else {
				summary.PendingSellers++
			}
		}
	}

	return summary
}
