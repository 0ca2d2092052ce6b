package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is a civic issue filed by a citizen. Its Status is mutated
// exclusively by the disposition service; every mutation appends exactly one
// TimelineEvent.
type Report struct {
	ID          uuid.UUID
	ReporterID  uuid.UUID
	Category    Category
	Title       string
	Description string
	Location    *string
	Status      ReportStatus

	// AgencyID is non-nil iff the report has been disposed to an agency.
	AgencyID *uuid.UUID

	// Admin annotations, set on dispose / reject.
	AdminNote       *string
	AdminVerifiedAt *time.Time
	AdminVerifiedBy *uuid.UUID

	// Agency annotations, set on verify. Cleared when the report is
	// re-disposed after an agency rejection.
	AgencyNote       *string
	AgencyVerifiedAt *time.Time
	AgencyVerifiedBy *uuid.UUID

	// Rejection metadata, set by admin or agency rejection.
	RejectionReason *string
	RejectedAt      *time.Time
	RejectedBy      *uuid.UUID

	// Completion metadata.
	CompletionNote *string
	CompletedAt    *time.Time

	// BudgetTotal is set once by the owning agency (SetBudget may overwrite
	// it while IN_PROGRESS). BudgetUsed accumulates and never decreases;
	// it never exceeds BudgetTotal once both are set.
	BudgetTotal *int64
	BudgetUsed  int64

	SupportCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the report is assigned to the given agency.
func (r *Report) OwnedBy(agencyID uuid.UUID) bool {
	return r.AgencyID != nil && *r.AgencyID == agencyID
}

// BudgetRemaining returns the unspent budget, or 0 if no budget is set.
func (r *Report) BudgetRemaining() int64 {
	if r.BudgetTotal == nil {
		return 0
	}
	return *r.BudgetTotal - r.BudgetUsed
}

// ReportFilter narrows report listings. Nil fields are not applied; a zero
// Limit means no paging.
type ReportFilter struct {
	Status     *ReportStatus
	Category   *Category
	AgencyID   *uuid.UUID
	ReporterID *uuid.UUID
	Limit      uint64
	Offset     uint64
}

// Support is a citizen endorsement of a report, unique per citizen per report.
type Support struct {
	ReportID  uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// ReportImage is a stored image reference, either attached at filing time or
// at completion. The bytes live in the object store; only the key is kept.
type ReportImage struct {
	ID         uuid.UUID
	ReportID   uuid.UUID
	ObjectKey  string
	Completion bool
	CreatedAt  time.Time
}
