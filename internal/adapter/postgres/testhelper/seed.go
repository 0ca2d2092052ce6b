package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laporkota/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAgency creates an agency of the given type. Returns a filled domain.Agency.
func SeedAgency(t *testing.T, pool *pgxpool.Pool, agencyType domain.AgencyType) domain.Agency {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	agency := domain.Agency{
		ID:        uuid.New(),
		Name:      "Dinas " + string(agencyType) + " " + suffix,
		Type:      agencyType,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO agencies (id, name, type, created_at)
		 VALUES ($1, $2, $3, $4)`,
		agency.ID, agency.Name, string(agency.Type), agency.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAgency insert agency: %v", err)
	}

	return agency
}

// SeedUser creates a user with the given role. For domain.RoleAgency the
// agencyID must be non-nil; for other roles it must be nil (schema constraint).
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role, agencyID *uuid.UUID) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth",
		Role:         role,
		AgencyID:     agencyID,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, agency_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.AgencyID, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedReport creates a report owned by reporterID in the given status.
// agencyID may be nil for statuses before disposition. Returns a filled domain.Report.
func SeedReport(t *testing.T, pool *pgxpool.Pool, reporterID uuid.UUID, status domain.ReportStatus, agencyID *uuid.UUID) domain.Report {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	report := domain.Report{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		Category:    domain.CategoryJalan,
		Title:       "Jalan berlubang " + suffix,
		Description: "Lubang besar di jalan utama dekat pasar " + suffix,
		Status:      status,
		AgencyID:    agencyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reports (id, reporter_id, category, title, description, status, agency_id, budget_used, support_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		report.ID, report.ReporterID, string(report.Category), report.Title, report.Description,
		string(report.Status), report.AgencyID, report.BudgetUsed, report.SupportCount,
		report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport insert report: %v", err)
	}

	return report
}

// SeedTimelineEvent appends a timeline event for a report. Returns the filled event.
func SeedTimelineEvent(t *testing.T, pool *pgxpool.Pool, reportID, actorID uuid.UUID, eventType domain.EventType) domain.TimelineEvent {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.TimelineEvent{
		ID:        uuid.New(),
		ReportID:  reportID,
		ActorID:   actorID,
		Type:      eventType,
		Title:     "Event " + string(eventType),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO timeline_events (id, report_id, actor_id, type, title, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.ReportID, event.ActorID, string(event.Type), event.Title, event.Description, event.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTimelineEvent insert event: %v", err)
	}

	return event
}
