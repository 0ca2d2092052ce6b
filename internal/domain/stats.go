package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusGroupCount is one dashboard bucket with its report count.
type StatusGroupCount struct {
	Group StatusGroup
	Count int
}

// CategoryCount is one category with its report count.
type CategoryCount struct {
	Category Category
	Count    int
}

// SeriesBucket is one time bucket of the tri-state report series.
// Rejected reports are not part of the series; the three states cover
// reports that are done, being worked on, or still waiting for a decision.
type SeriesBucket struct {
	Bucket     time.Time
	Done       int
	InProgress int
	Awaiting   int
}

// AgencyBudget is the budget rollup for one agency across its reports.
type AgencyBudget struct {
	AgencyID    uuid.UUID
	BudgetTotal int64
	BudgetUsed  int64
}
