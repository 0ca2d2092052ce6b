package report

import (
	"strings"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

// CreateInput holds the parameters for filing a new report.
type CreateInput struct {
	Title       string
	Description string
	Category    domain.Category
	Location    *string
	ImageKeys   []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > cfg.MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(description) > cfg.MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
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

// ListInput narrows and pages a report listing.
type ListInput struct {
	Status     *domain.ReportStatus
	Category   *domain.Category
	AgencyID   *uuid.UUID
	ReporterID *uuid.UUID
	Limit      uint64
	Offset     uint64
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
