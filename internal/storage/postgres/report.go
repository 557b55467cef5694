package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `id, hazard_type, severity, lat, lng, address, description,
	image_url, status, resolved, approved_by, resolved_by, rejection_reason,
	resolution_notes, reported_at, approved_at, resolved_at`

func (p *ReportRepo) Create(ctx context.Context, rep *domain.HazardReport) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO hazard_reports (id, hazard_type, severity, lat, lng, address,
			description, image_url, status, resolved, reported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if rep.ReportedAt.IsZero() {
		rep.ReportedAt = time.Now().UTC()
	}
	if rep.Status == "" {
		rep.Status = domain.ReportPending
	}

	lat, lng := splitCoordinate(rep.Location)

	_, err := p.pool.Exec(ctx, query,
		rep.ID,
		rep.HazardType,
		rep.Severity,
		lat,
		lng,
		rep.Address,
		rep.Description,
		rep.ImageURL,
		rep.Status,
		rep.Resolved,
		rep.ReportedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) List(ctx context.Context) ([]domain.HazardReport, error) {
	const op = "postgres.Report.List"

	query := fmt.Sprintf(`SELECT %s FROM hazard_reports ORDER BY reported_at DESC`, reportColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []domain.HazardReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.HazardReport, error) {
	const op = "postgres.Report.Get"

	query := fmt.Sprintf(`SELECT %s FROM hazard_reports WHERE id = $1`, reportColumns)

	rep, err := scanReport(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return rep, nil
}

// UpdateDecision persists the approve/reject axis of the state machine.
func (p *ReportRepo) UpdateDecision(ctx context.Context, rep *domain.HazardReport) error {
	const op = "postgres.Report.UpdateDecision"

	const query = `
		UPDATE hazard_reports
		SET status = $2,
			approved_by = $3,
			approved_at = $4,
			rejection_reason = $5
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		rep.ID,
		rep.Status,
		rep.ApprovedBy,
		rep.ApprovedAt,
		rep.RejectionReason,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", rep.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// UpdateResolution persists the independent resolved axis.
func (p *ReportRepo) UpdateResolution(ctx context.Context, rep *domain.HazardReport) error {
	const op = "postgres.Report.UpdateResolution"

	const query = `
		UPDATE hazard_reports
		SET resolved = $2,
			resolved_by = $3,
			resolved_at = $4,
			resolution_notes = $5
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		rep.ID,
		rep.Resolved,
		rep.ResolvedBy,
		rep.ResolvedAt,
		rep.ResolutionNotes,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", rep.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanReport(row pgx.Row) (*domain.HazardReport, error) {
	var (
		rep      domain.HazardReport
		lat, lng *float64
	)
	if err := row.Scan(
		&rep.ID,
		&rep.HazardType,
		&rep.Severity,
		&lat,
		&lng,
		&rep.Address,
		&rep.Description,
		&rep.ImageURL,
		&rep.Status,
		&rep.Resolved,
		&rep.ApprovedBy,
		&rep.ResolvedBy,
		&rep.RejectionReason,
		&rep.ResolutionNotes,
		&rep.ReportedAt,
		&rep.ApprovedAt,
		&rep.ResolvedAt,
	); err != nil {
		return nil, err
	}
	rep.Location = joinCoordinate(lat, lng)
	return &rep, nil
}
