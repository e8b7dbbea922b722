package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lokapasar/internal/domain/entity"
)

func testThresholds() RiskThresholds {
	return RiskThresholds{
		WatchDays:       3,
		OverdueDays:     7,
		HighRiskDays:    2,
		UnpaidAgingDays: 30,
	}
}

func orderAgedDays(days int, now time.Time) *entity.Order {
	return &entity.Order{
		ID:        "order-1",
		CreatedAt: now.AddDate(0, 0, -days),
	}
}

func TestClassifyOrderRisk(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		order *entity.Order
		want  RiskLevel
	}{
		{
			name: "unpaid order past aging threshold",
			order: func() *entity.Order {
				o := orderAgedDays(35, now)
				o.IsPaid = false
				o.Dispute.Status = entity.DisputeNone
				return o
			}(),
			want: RiskUnpaidAging,
		},
		{
			name: "open dispute dominates age-only signals",
			order: func() *entity.Order {
				o := orderAgedDays(2, now)
				o.IsPaid = true
				o.IsDelivered = false
				o.Dispute.Status = entity.DisputeOpen
				return o
			}(),
			want: RiskHigh,
		},
		{
			name: "in-review dispute also counts as high",
			order: func() *entity.Order {
				o := orderAgedDays(10, now)
				o.IsPaid = true
				o.Dispute.Status = entity.DisputeInReview
				return o
			}(),
			want: RiskHigh,
		},
		{
			name: "paid undelivered past overdue threshold",
			order: func() *entity.Order {
				o := orderAgedDays(8, now)
				o.IsPaid = true
				o.IsDelivered = false
				return o
			}(),
			want: RiskOverdue,
		},
		{
			name: "paid undelivered inside watch window",
			order: func() *entity.Order {
				o := orderAgedDays(4, now)
				o.IsPaid = true
				o.IsDelivered = false
				return o
			}(),
			want: RiskWatch,
		},
		{
			name: "paid delivered order never carries risk regardless of age",
			order: func() *entity.Order {
				o := orderAgedDays(400, now)
				o.IsPaid = true
				o.IsDelivered = true
				return o
			}(),
			want: RiskNone,
		},
		{
			name: "resolved dispute does not trigger the high tier",
			order: func() *entity.Order {
				o := orderAgedDays(10, now)
				o.IsPaid = true
				o.IsDelivered = true
				o.Dispute.Status = entity.DisputeResolved
				return o
			}(),
			want: RiskNone,
		},
		{
			name: "fresh unpaid order is not aging yet",
			order: func() *entity.Order {
				o := orderAgedDays(5, now)
				o.IsPaid = false
				return o
			}(),
			want: RiskNone,
		},
		{
			name:  "missing fields contribute no risk",
			order: &entity.Order{ID: "zero"},
			want:  RiskNone,
		},
		{
			name:  "nil order",
			order: nil,
			want:  RiskNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyOrderRisk(tt.order, now, testThresholds()))
		})
	}
}

func TestClassifyOrderRiskHighThresholdGatesDisputes(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Dispute opened on a brand-new order: below highRiskDays the age-only
	// rules take over.
	order := orderAgedDays(1, now)
	order.IsPaid = true
	order.IsDelivered = false
	order.Dispute.Status = entity.DisputeOpen

	thresholds := testThresholds()
	assert.Equal(t, RiskNone, ClassifyOrderRisk(order, now, thresholds))

	thresholds.HighRiskDays = 1
	assert.Equal(t, RiskHigh, ClassifyOrderRisk(order, now, thresholds))
}

func TestClassifyOrderRiskIsDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	order := orderAgedDays(8, now)
	order.IsPaid = true
	order.IsDelivered = false

	first := ClassifyOrderRisk(order, now, testThresholds())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyOrderRisk(order, now, testThresholds()))
	}
}
