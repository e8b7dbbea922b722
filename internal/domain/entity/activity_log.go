package entity

import (
	"time"
)

type ActivityAction string

const (
	ActivityStatusUpdate ActivityAction = "STATUS_UPDATE"
	ActivityNote         ActivityAction = "NOTE"
)

type ActivitySeverity string

const (
	SeverityLow    ActivitySeverity = "low"
	SeverityMedium ActivitySeverity = "medium"
	SeverityHigh   ActivitySeverity = "high"
)

// ActivityLogEntry is one immutable record of a seller status change. Entries
// are append-only: never edited, never deleted.
type ActivityLogEntry struct {
	ID       string           `json:"id" firestore:"id"`
	SellerID string           `json:"seller_id" firestore:"sellerId"`
	AdminID  string           `json:"admin_id" firestore:"adminId"`
	Action   ActivityAction   `json:"action" firestore:"action"`
	Note     string           `json:"note,omitempty" firestore:"note,omitempty"`
	Metadata ActivityMetadata `json:"metadata" firestore:"metadata"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// ActivityMetadata keeps the before/after flag snapshots as a nested document
// so the pairing is never flattened away.
type ActivityMetadata struct {
	Previous     SellerFlags      `json:"previous" firestore:"previous"`
	Current      SellerFlags      `json:"current" firestore:"current"`
	Severity     ActivitySeverity `json:"severity" firestore:"severity"`
	StatusChange string           `json:"status_change" firestore:"statusChange"`
}
