package disposition

import (
	"strings"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

// DisposeInput holds the parameters for forwarding a report to an agency.
// AgencyID nil means "route by category".
type DisposeInput struct {
	ReportID uuid.UUID
	AgencyID *uuid.UUID
	Note     *string
}

// Validate checks all fields and collects all errors.
func (i DisposeInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	if i.AgencyID != nil && *i.AgencyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "agency_id", Message: "must not be the zero id"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > cfg.MaxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RejectInput holds the parameters for an admin rejection.
type RejectInput struct {
	ReportID uuid.UUID
	Reason   string
}

// Validate checks all fields and collects all errors.
func (i RejectInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if len(reason) > cfg.MaxNoteLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VerifyInput holds the parameters for an agency acknowledging a report.
type VerifyInput struct {
	ReportID uuid.UUID
	Note     *string
}

// Validate checks all fields and collects all errors.
func (i VerifyInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > cfg.MaxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RejectByAgencyInput holds the parameters for an agency bouncing a report
// back to admin triage.
type RejectByAgencyInput struct {
	ReportID uuid.UUID
	Reason   string
}

// Validate checks all fields and collects all errors.
func (i RejectByAgencyInput) Validate(cfg Config) error {
	return RejectInput(i).Validate(cfg)
}

// SetBudgetInput holds the parameters for allocating a budget.
type SetBudgetInput struct {
	ReportID uuid.UUID
	Amount   int64
}

// Validate checks all fields and collects all errors.
func (i SetBudgetInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	if i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if i.Amount > cfg.MaxBudget {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "exceeds maximum budget"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddSpendInput holds the parameters for recording spending against the
// allocated budget.
type AddSpendInput struct {
	ReportID uuid.UUID
	Amount   int64
}

// Validate checks all fields and collects all errors.
func (i AddSpendInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	if i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompleteInput holds the parameters for closing out a report.
type CompleteInput struct {
	ReportID       uuid.UUID
	CompletionNote string
	ImageKeys      []string
}

// Validate checks all fields and collects all errors.
func (i CompleteInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.ReportID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	note := strings.TrimSpace(i.CompletionNote)
	if note == "" {
		errs = append(errs, domain.FieldError{Field: "completion_note", Message: "required"})
	}
	if len(note) > cfg.MaxNoteLen {
		errs = append(errs, domain.FieldError{Field: "completion_note", Message: "too long"})
	}
	if len(i.ImageKeys) > cfg.MaxImagesPerReport {
		errs = append(errs, domain.FieldError{Field: "images", Message: "too many images"})
	}
	for _, key := range i.ImageKeys {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, domain.FieldError{Field: "images", Message: "empty object key"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
