package entity

import (
	"time"
)

type SellerStatus string

const (
	SellerPending        SellerStatus = "pending"
	SellerApprovedActive SellerStatus = "approved_active"
	SellerSuspended      SellerStatus = "suspended"
)

type SellerAccount struct {
	ID        string `json:"id" firestore:"id"`
	Name      string `json:"name" firestore:"name"`
	Email     string `json:"email" firestore:"email"`
	StoreName string `json:"store_name,omitempty" firestore:"storeName,omitempty"`

	IsApproved bool `json:"is_approved" firestore:"isApproved"`
	IsActive   bool `json:"is_active" firestore:"isActive"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// SellerFlags is the pair of booleans the seller status is derived from. It is
// the unit of compare-and-swap for seller status writes and the before/after
// snapshot stored on audit entries.
type SellerFlags struct {
	IsApproved bool `json:"is_approved" firestore:"isApproved"`
	IsActive   bool `json:"is_active" firestore:"isActive"`
}

func (f SellerFlags) Derived() SellerStatus {
	if !f.IsActive {
		return SellerSuspended
	}
	if !f.IsApproved {
		return SellerPending
	}
	return SellerApprovedActive
}

func (s *SellerAccount) Flags() SellerFlags {
	return SellerFlags{IsApproved: s.IsApproved, IsActive: s.IsActive}
}

func (s *SellerAccount) DerivedStatus() SellerStatus {
	return s.Flags().Derived()
}
