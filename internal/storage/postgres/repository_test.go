//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS engineers (
			id uuid PRIMARY KEY,
			full_name text NOT NULL,
			email text NOT NULL UNIQUE,
			phone text NOT NULL DEFAULT '',
			specialization text NOT NULL DEFAULT '',
			status text NOT NULL,
			home_lat double precision,
			home_lng double precision,
			coverage_radius_m integer NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS hazard_reports (
			id uuid PRIMARY KEY,
			hazard_type text NOT NULL,
			severity text NOT NULL,
			lat double precision,
			lng double precision,
			address text NOT NULL DEFAULT '',
			description text NOT NULL DEFAULT '',
			image_url text,
			status text NOT NULL,
			resolved boolean NOT NULL DEFAULT false,
			approved_by uuid,
			resolved_by uuid,
			rejection_reason text,
			resolution_notes text,
			reported_at timestamptz NOT NULL,
			approved_at timestamptz,
			resolved_at timestamptz
		);

		CREATE TABLE IF NOT EXISTS report_feedback (
			id uuid PRIMARY KEY,
			report_id uuid NOT NULL REFERENCES hazard_reports (id) ON DELETE CASCADE,
			feedback_type text NOT NULL,
			message text NOT NULL,
			reporter_name text,
			reporter_contact text,
			status text NOT NULL,
			response_notes text,
			responded_by uuid,
			responded_at timestamptz,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE report_feedback, hazard_reports, engineers`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// --- engineers ---

func TestEngineerRepo_Create_SetsDefaults(t *testing.T) {
	truncateAll(t)

	repo := NewEngineerRepo(testPool, testLogger())

	eng := &domain.Engineer{
		FullName: "A. Cruz",
		Email:    "cruz@example.com",
		Home:     &domain.Coordinate{Lat: 14.5995, Lng: 120.9842},
	}
	if err := repo.Create(context.Background(), eng); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if eng.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if eng.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}
	if eng.Status != domain.EngineerActive {
		t.Fatalf("expected default status=active got=%s", eng.Status)
	}
	if eng.CoverageRadiusMeters != domain.DefaultCoverageRadiusMeters {
		t.Fatalf("expected default radius=%d got=%d", domain.DefaultCoverageRadiusMeters, eng.CoverageRadiusMeters)
	}

	got, err := repo.Get(context.Background(), eng.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Home == nil || got.Home.Lat != eng.Home.Lat || got.Home.Lng != eng.Home.Lng {
		t.Fatalf("home round-trip mismatch: %+v", got.Home)
	}
}

func TestEngineerRepo_Create_UnlocatedRoundTrip(t *testing.T) {
	truncateAll(t)

	repo := NewEngineerRepo(testPool, testLogger())

	eng := &domain.Engineer{
		FullName: "B. Reyes",
		Email:    "reyes@example.com",
	}
	if err := repo.Create(context.Background(), eng); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), eng.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Home != nil {
		t.Fatalf("expected unlocated engineer, got %+v", got.Home)
	}
}

func TestEngineerRepo_Create_DuplicateEmail(t *testing.T) {
	truncateAll(t)

	repo := NewEngineerRepo(testPool, testLogger())

	first := &domain.Engineer{FullName: "A. Cruz", Email: "dup@example.com"}
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := &domain.Engineer{FullName: "B. Reyes", Email: "dup@example.com"}
	err := repo.Create(context.Background(), second)
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}
}

func TestEngineerRepo_Update_OK(t *testing.T) {
	truncateAll(t)

	repo := NewEngineerRepo(testPool, testLogger())

	eng := &domain.Engineer{FullName: "A. Cruz", Email: "cruz@example.com"}
	if err := repo.Create(context.Background(), eng); err != nil {
		t.Fatalf("Create: %v", err)
	}

	eng.Status = domain.EngineerInactive
	eng.Home = &domain.Coordinate{Lat: 15, Lng: 121}
	eng.CoverageRadiusMeters = 20000
	if err := repo.Update(context.Background(), eng); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), eng.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.EngineerInactive || got.CoverageRadiusMeters != 20000 {
		t.Fatalf("unexpected updated row: %+v", got)
	}
	if got.Home == nil || got.Home.Lat != 15 {
		t.Fatalf("home not updated: %+v", got.Home)
	}
}

func TestEngineerRepo_Update_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewEngineerRepo(testPool, testLogger())

	err := repo.Update(context.Background(), &domain.Engineer{
		ID:       uuid.New(),
		FullName: "Nobody",
		Email:    "nobody@example.com",
	})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestEngineerRepo_Delete(t *testing.T) {
	truncateAll(t)

	repo := NewEngineerRepo(testPool, testLogger())

	eng := &domain.Engineer{FullName: "A. Cruz", Email: "cruz@example.com"}
	if err := repo.Create(context.Background(), eng); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(context.Background(), eng.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(context.Background(), eng.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
	if err := repo.Delete(context.Background(), eng.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

// --- hazard reports ---

func TestReportRepo_CreateAndGet(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger())

	rep := &domain.HazardReport{
		HazardType: "pothole",
		Severity:   domain.SeverityHigh,
		Location:   &domain.Coordinate{Lat: 14.6, Lng: 120.98},
		Address:    "EDSA corner Shaw",
	}
	if err := repo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rep.Status != domain.ReportPending {
		t.Fatalf("expected default status=pending got=%s", rep.Status)
	}

	got, err := repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Location == nil || got.Location.Lat != 14.6 {
		t.Fatalf("location round-trip mismatch: %+v", got.Location)
	}
	if got.Resolved {
		t.Fatalf("new report must not be resolved")
	}
}

func TestReportRepo_List_NewestFirst(t *testing.T) {
	truncateAll(t)

	repo := NewReportRepo(testPool, testLogger())

	older := &domain.HazardReport{
		HazardType: "debris",
		Severity:   domain.SeverityMinor,
		ReportedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &domain.HazardReport{
		HazardType: "flooding",
		Severity:   domain.SeverityCritical,
		ReportedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, r := range []*domain.HazardReport{older, newer} {
		if err := repo.Create(context.Background(), r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows got=%d", len(list))
	}
	if list[0].ID != newer.ID {
		t.Fatalf("expected newest first")
	}
}

func TestReportRepo_UpdateDecisionAndResolution(t *testing.T) {
	truncateAll(t)

	engineers := NewEngineerRepo(testPool, testLogger())
	repo := NewReportRepo(testPool, testLogger())

	eng := &domain.Engineer{FullName: "A. Cruz", Email: "cruz@example.com"}
	if err := engineers.Create(context.Background(), eng); err != nil {
		t.Fatalf("Create engineer: %v", err)
	}

	rep := &domain.HazardReport{
		HazardType: "pothole",
		Severity:   domain.SeverityMedium,
		Location:   &domain.Coordinate{Lat: 14.6, Lng: 120.98},
	}
	if err := repo.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create report: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	rep.Status = domain.ReportApproved
	rep.ApprovedBy = &eng.ID
	rep.ApprovedAt = &now
	if err := repo.UpdateDecision(context.Background(), rep); err != nil {
		t.Fatalf("UpdateDecision: %v", err)
	}

	notes := "patched"
	rep.Resolved = true
	rep.ResolvedBy = &eng.ID
	rep.ResolvedAt = &now
	rep.ResolutionNotes = &notes
	if err := repo.UpdateResolution(context.Background(), rep); err != nil {
		t.Fatalf("UpdateResolution: %v", err)
	}

	got, err := repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.ReportApproved || !got.Resolved {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != eng.ID {
		t.Fatalf("approved_by mismatch")
	}
	if got.ResolutionNotes == nil || *got.ResolutionNotes != notes {
		t.Fatalf("resolution_notes mismatch")
	}

	// Unresolve clears the resolution fields but not the decision.
	rep.Resolved = false
	rep.ResolvedBy = nil
	rep.ResolvedAt = nil
	rep.ResolutionNotes = nil
	if err := repo.UpdateResolution(context.Background(), rep); err != nil {
		t.Fatalf("UpdateResolution (clear): %v", err)
	}
	got, err = repo.Get(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Resolved || got.ResolvedBy != nil || got.ResolutionNotes != nil {
		t.Fatalf("resolution not cleared: %+v", got)
	}
	if got.Status != domain.ReportApproved {
		t.Fatalf("decision must survive unresolve")
	}
}

// --- feedback ---

func TestFeedbackRepo_CreateListUpdate(t *testing.T) {
	truncateAll(t)

	reports := NewReportRepo(testPool, testLogger())
	repo := NewFeedbackRepo(testPool, testLogger())

	rep := &domain.HazardReport{HazardType: "pothole", Severity: domain.SeverityMinor}
	if err := reports.Create(context.Background(), rep); err != nil {
		t.Fatalf("Create report: %v", err)
	}

	fb := &domain.FeedbackReport{
		ReportID: rep.ID,
		Type:     domain.FeedbackStatusUpdate,
		Message:  "any progress?",
	}
	if err := repo.Create(context.Background(), fb); err != nil {
		t.Fatalf("Create feedback: %v", err)
	}
	if fb.Status != domain.FeedbackPending {
		t.Fatalf("expected default status=pending got=%s", fb.Status)
	}

	list, err := repo.ListByReport(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("ListByReport: %v", err)
	}
	if len(list) != 1 || list[0].ID != fb.ID {
		t.Fatalf("unexpected list: %+v", list)
	}

	responder := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	fb.Status = domain.FeedbackReviewed
	fb.RespondedBy = &responder
	fb.RespondedAt = &now
	if err := repo.UpdateStatus(context.Background(), fb); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := repo.Get(context.Background(), fb.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.FeedbackReviewed || got.RespondedBy == nil || *got.RespondedBy != responder {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestFeedbackRepo_UnknownParentReport(t *testing.T) {
	truncateAll(t)

	repo := NewFeedbackRepo(testPool, testLogger())

	fb := &domain.FeedbackReport{
		ReportID: uuid.New(),
		Type:     domain.FeedbackGeneralComment,
		Message:  "orphan",
	}
	err := repo.Create(context.Background(), fb)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a missing parent, got: %v", err)
	}
}
