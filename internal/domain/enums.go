package domain

// ReportStatus represents the workflow position of a report.
// It is the single source of truth for what may happen to the report next.
type ReportStatus string

const (
	StatusPendingVerification ReportStatus = "PENDING_VERIFICATION"
	StatusDisposed            ReportStatus = "DISPOSED"
	StatusVerifiedByAgency    ReportStatus = "VERIFIED_BY_AGENCY"
	StatusInProgress          ReportStatus = "IN_PROGRESS"
	StatusCompleted           ReportStatus = "COMPLETED"
	StatusRejected            ReportStatus = "REJECTED"
	StatusRejectedByAgency    ReportStatus = "REJECTED_BY_AGENCY"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case StatusPendingVerification, StatusDisposed, StatusVerifiedByAgency,
		StatusInProgress, StatusCompleted, StatusRejected, StatusRejectedByAgency:
		return true
	}
	return false
}

// IsTerminal reports whether no further workflow transitions are possible.
// Agency-level rejection is NOT terminal — it loops back to admin triage.
func (s ReportStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// StatusGroup is the coarse bucket used by dashboards.
type StatusGroup string

const (
	StatusGroupPending    StatusGroup = "PENDING"
	StatusGroupInProgress StatusGroup = "IN_PROGRESS"
	StatusGroupCompleted  StatusGroup = "COMPLETED"
	StatusGroupRejected   StatusGroup = "REJECTED"
)

// Group maps a status onto its dashboard bucket.
func (s ReportStatus) Group() StatusGroup {
	switch s {
	case StatusCompleted:
		return StatusGroupCompleted
	case StatusRejected:
		return StatusGroupRejected
	case StatusVerifiedByAgency, StatusInProgress:
		return StatusGroupInProgress
	default:
		// PENDING_VERIFICATION, DISPOSED and REJECTED_BY_AGENCY are all
		// awaiting a decision from somebody.
		return StatusGroupPending
	}
}

// Category is the fixed closed set of issue categories a citizen can file.
type Category string

const (
	CategoryJalan     Category = "JALAN"     // road
	CategoryJembatan  Category = "JEMBATAN"  // bridge
	CategorySekolah   Category = "SEKOLAH"   // school
	CategoryKesehatan Category = "KESEHATAN" // health
	CategoryAir       Category = "AIR"       // water
	CategoryListrik   Category = "LISTRIK"   // electricity
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryJalan, CategoryJembatan, CategorySekolah,
		CategoryKesehatan, CategoryAir, CategoryListrik:
		return true
	}
	return false
}

// Categories lists all valid categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryJalan, CategoryJembatan, CategorySekolah,
		CategoryKesehatan, CategoryAir, CategoryListrik,
	}
}

// AgencyType classifies an executing agency (dinas) by domain.
type AgencyType string

const (
	AgencyTypeInfrastructure  AgencyType = "INFRASTRUCTURE"
	AgencyTypeEducation       AgencyType = "EDUCATION"
	AgencyTypeHealth          AgencyType = "HEALTH"
	AgencyTypeEnergyResources AgencyType = "ENERGY_RESOURCES"
)

func (t AgencyType) String() string { return string(t) }

func (t AgencyType) IsValid() bool {
	switch t {
	case AgencyTypeInfrastructure, AgencyTypeEducation,
		AgencyTypeHealth, AgencyTypeEnergyResources:
		return true
	}
	return false
}

// EventType identifies the kind of timeline event, one per transition kind.
type EventType string

const (
	EventReportCreated    EventType = "REPORT_CREATED"
	EventDisposedToAgency EventType = "DISPOSED_TO_AGENCY"
	EventRejectedAdmin    EventType = "REJECTED_ADMIN"
	EventVerifiedAgency   EventType = "VERIFIED_AGENCY"
	EventRejectedAgency   EventType = "REJECTED_AGENCY"
	EventBudgetSet        EventType = "BUDGET_SET"
	EventBudgetSpent      EventType = "BUDGET_SPENT"
	EventCompleted        EventType = "COMPLETED"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventReportCreated, EventDisposedToAgency, EventRejectedAdmin,
		EventVerifiedAgency, EventRejectedAgency, EventBudgetSet,
		EventBudgetSpent, EventCompleted:
		return true
	}
	return false
}

// Role represents the authorization level of an actor.
type Role string

const (
	RoleCitizen Role = "USER"
	RoleAdmin   Role = "ADMIN"
	RoleAgency  Role = "DINAS"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleCitizen, RoleAdmin, RoleAgency:
		return true
	}
	return false
}
