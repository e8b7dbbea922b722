package entity

import (
	"fmt"
	"strings"
	"time"
)

// CaseSource tags which backing record a case was derived from. Unknown
// sources are rejected at the boundary, never silently ignored.
type CaseSource string

const (
	CaseSourceDispute  CaseSource = "dispute"
	CaseSourceDelivery CaseSource = "delivery"
	CaseSourceSeller   CaseSource = "seller"
)

func ParseCaseSource(s string) (CaseSource, error) {
	switch CaseSource(s) {
	case CaseSourceDispute, CaseSourceDelivery, CaseSourceSeller:
		return CaseSource(s), nil
	}
	return "", fmt.Errorf("unknown case source %q", s)
}

// Case is a derived, read-time view unifying a dispute, a delayed delivery, or
// a seller compliance issue. Cases are recomputed on every read and never
// stored.
type Case struct {
	CaseKey    string     `json:"case_key"`
	Source     CaseSource `json:"source"`
	SourceID   string     `json:"source_id"`
	Subject    string     `json:"subject"`
	ActorName  string     `json:"actor_name,omitempty"`
	ActorEmail string     `json:"actor_email,omitempty"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	Amount     float64    `json:"amount,omitempty"`
	Note       string     `json:"note,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CaseKeyFor builds the stable "source:id" identifier used for addressing a
// case across pagination and for compare-and-swap.
func CaseKeyFor(source CaseSource, sourceID string) string {
	return string(source) + ":" + sourceID
}

func ParseCaseKey(caseKey string) (CaseSource, string, error) {
	raw, id, ok := strings.Cut(caseKey, ":")
	if !ok || id == "" {
		return "", "", fmt.Errorf("malformed case key %q", caseKey)
	}
	source, err := ParseCaseSource(raw)
	if err != nil {
		return "", "", err
	}
	return source, id, nil
}

// CaseSummary is computed over the unfiltered case set so the console counters
// stay stable while the admin filters and paginates.
type CaseSummary struct {
	OpenDisputes      int `json:"open_disputes"`
	DelayedDeliveries int `json:"delayed_deliveries"`
	SuspendedSellers  int `json:"suspended_sellers"`
	PendingSellers    int `json:"pending_sellers"`
	TotalCases        int `json:"total_cases"`
}

type CasePage struct {
	Cases   []Case      `json:"cases"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	Summary CaseSummary `json:"summary"`
}
