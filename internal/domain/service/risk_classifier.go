package service

import (
	"time"

	"lokapasar/internal/domain/entity"
)

type RiskLevel string

const (
	RiskNone        RiskLevel = "none"
	RiskWatch       RiskLevel = "watch"
	RiskOverdue     RiskLevel = "overdue"
	RiskHigh        RiskLevel = "high"
	RiskUnpaidAging RiskLevel = "unpaidAging"
)

// RiskThresholds are the day counts the classifier compares order age against.
// They are injected by the caller; config validates them at load time
// (non-negative, watch <= overdue).
type RiskThresholds struct {
	WatchDays       int
	OverdueDays     int
	HighRiskDays    int
	UnpaidAgingDays int
}

// ClassifyOrderRisk maps order signals to a risk tier. Pure and total: it
// never fails, and missing fields contribute no risk. First match wins, so an
// open dispute dominates the age-only signals.
func ClassifyOrderRisk(order *entity.Order, now time.Time, thresholds RiskThresholds) RiskLevel {
	if order == nil {
		return RiskNone
	}

	age := orderAgeDays(order.CreatedAt, now)

	if order.Dispute.IsOpen() && age >= thresholds.HighRiskDays {
		return RiskHigh
	}
	if !order.IsPaid && age >= thresholds.UnpaidAgingDays {
		return RiskUnpaidAging
	}
	if order.IsPaid && !order.IsDelivered && age >= thresholds.OverdueDays {
		return RiskOverdue
	}
	if order.IsPaid && !order.IsDelivered && age >= thresholds.WatchDays {
		return RiskWatch
	}
	return RiskNone
}

func orderAgeDays(createdAt, now time.Time) int {
	if createdAt.IsZero() || now.Before(createdAt) {
		return 0
	}
	return int(now.Sub(createdAt).Hours() / 24)
}
