package entity

import (
	"time"
)

type DisputeStatus string

const (
	DisputeNone     DisputeStatus = "none"
	DisputeOpen     DisputeStatus = "open"
	DisputeInReview DisputeStatus = "in_review"
	DisputeResolved DisputeStatus = "resolved"
	DisputeRejected DisputeStatus = "rejected"
)

// DisputeOrigin distinguishes buyer-filed disputes from delivery cases an
// admin escalated. An escalated delivery case keeps its delivery case key
// across reads even though the state lives on the dispute record.
const (
	DisputeOriginBuyer    = "buyer"
	DisputeOriginDelivery = "delivery"
)

type Order struct {
	ID         string      `json:"id" firestore:"id"`
	BuyerID    string      `json:"buyer_id" firestore:"buyerId"`
	BuyerName  string      `json:"buyer_name,omitempty" firestore:"buyerName,omitempty"`
	BuyerEmail string      `json:"buyer_email,omitempty" firestore:"buyerEmail,omitempty"`
	Items      []OrderItem `json:"items" firestore:"items"`
	TotalPrice float64     `json:"total_price" firestore:"totalPrice"`

	IsPaid      bool `json:"is_paid" firestore:"isPaid"`
	IsDelivered bool `json:"is_delivered" firestore:"isDelivered"`

	Dispute OrderDispute `json:"dispute" firestore:"dispute"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	PaidAt      *time.Time `json:"paid_at,omitempty" firestore:"paidAt,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	SellerID  string  `json:"seller_id" firestore:"sellerId"`
	Title     string  `json:"title" firestore:"title"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

// OrderDispute is the per-order dispute record. Mutated only through the case
// action path; payment and delivery flows never touch it.
type OrderDispute struct {
	Status    DisputeStatus `json:"status" firestore:"status"`
	Note      string        `json:"note,omitempty" firestore:"note,omitempty"`
	Origin    string        `json:"origin,omitempty" firestore:"origin,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty" firestore:"updatedAt,omitempty"`
}

// StatusOrNone normalizes a missing status to DisputeNone so orders written
// before the dispute record existed still classify cleanly.
func (d OrderDispute) StatusOrNone() DisputeStatus {
	if d.Status == "" {
		return DisputeNone
	}
	return d.Status
}

func (d OrderDispute) IsOpen() bool {
	s := d.StatusOrNone()
	return s == DisputeOpen || s == DisputeInReview
}
