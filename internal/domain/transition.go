package domain

import "slices"

// Operation is a workflow command against a report.
type Operation string

const (
	OperationDispose        Operation = "DISPOSE"
	OperationReject         Operation = "REJECT"
	OperationVerify         Operation = "VERIFY"
	OperationRejectByAgency Operation = "REJECT_BY_AGENCY"
	OperationSetBudget      Operation = "SET_BUDGET"
	OperationComplete       Operation = "COMPLETE"

	// OperationAddSpend records spending without moving the report; it is
	// not part of the transition table because it never changes status.
	OperationAddSpend Operation = "ADD_SPEND"
)

func (o Operation) String() string { return string(o) }

// TransitionRule describes one row of the state machine: who may perform the
// operation, from which statuses, where it lands, and which timeline event
// records it.
type TransitionRule struct {
	Role        Role
	Sources     []ReportStatus
	Destination ReportStatus
	Event       EventType
}

// transitionTable is the state machine as data. Operations missing from the
// table do not exist; source statuses missing from a rule are illegal. New
// transitions cannot bypass validation because this table is the only edge
// set the validator consults.
var transitionTable = map[Operation]TransitionRule{
	OperationDispose: {
		Role:        RoleAdmin,
		Sources:     []ReportStatus{StatusPendingVerification, StatusRejectedByAgency},
		Destination: StatusDisposed,
		Event:       EventDisposedToAgency,
	},
	OperationReject: {
		Role:        RoleAdmin,
		Sources:     []ReportStatus{StatusPendingVerification, StatusRejectedByAgency},
		Destination: StatusRejected,
		Event:       EventRejectedAdmin,
	},
	OperationVerify: {
		Role:        RoleAgency,
		Sources:     []ReportStatus{StatusDisposed},
		Destination: StatusVerifiedByAgency,
		Event:       EventVerifiedAgency,
	},
	OperationRejectByAgency: {
		Role:        RoleAgency,
		Sources:     []ReportStatus{StatusDisposed},
		Destination: StatusRejectedByAgency,
		Event:       EventRejectedAgency,
	},
	OperationSetBudget: {
		Role:        RoleAgency,
		Sources:     []ReportStatus{StatusVerifiedByAgency, StatusInProgress},
		Destination: StatusInProgress,
		Event:       EventBudgetSet,
	},
	OperationComplete: {
		Role:        RoleAgency,
		Sources:     []ReportStatus{StatusInProgress},
		Destination: StatusCompleted,
		Event:       EventCompleted,
	},
}

// RuleFor returns the transition rule for the given operation.
func RuleFor(op Operation) (TransitionRule, bool) {
	rule, ok := transitionTable[op]
	return rule, ok
}

// Operations lists all workflow operations in a stable order.
func Operations() []Operation {
	return []Operation{
		OperationDispose, OperationReject, OperationVerify,
		OperationRejectByAgency, OperationSetBudget, OperationComplete,
	}
}

// ValidateTransition decides whether actor may perform op on report.
//
// Checks run in a fixed order: role, then agency ownership, then source
// status. Ownership mismatch fails with ErrForbidden regardless of status;
// only a report in a legal source status passes with nil.
func ValidateTransition(op Operation, actor Actor, report *Report) error {
	rule, ok := transitionTable[op]
	if !ok {
		return &InvalidTransitionError{Status: report.Status, Operation: op}
	}

	if actor.Role != rule.Role {
		return ErrForbidden
	}

	if rule.Role == RoleAgency {
		if actor.AgencyID == nil || !report.OwnedBy(*actor.AgencyID) {
			return ErrForbidden
		}
	}

	if !slices.Contains(rule.Sources, report.Status) {
		return &InvalidTransitionError{Status: report.Status, Operation: op}
	}

	return nil
}
