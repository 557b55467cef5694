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

type FeedbackRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewFeedbackRepo(pool *pgxpool.Pool, logger *slog.Logger) *FeedbackRepo {
	return &FeedbackRepo{pool: pool, logger: logger}
}

const feedbackColumns = `id, report_id, feedback_type, message, reporter_name,
	reporter_contact, status, response_notes, responded_by, responded_at, created_at`

func (p *FeedbackRepo) Create(ctx context.Context, fb *domain.FeedbackReport) error {
	const op = "postgres.Feedback.Create"

	const query = `
		INSERT INTO report_feedback (id, report_id, feedback_type, message,
			reporter_name, reporter_contact, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}
	if fb.Status == "" {
		fb.Status = domain.FeedbackPending
	}

	_, err := p.pool.Exec(ctx, query,
		fb.ID,
		fb.ReportID,
		fb.Type,
		fb.Message,
		fb.ReporterName,
		fb.ReporterContact,
		fb.Status,
		fb.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *FeedbackRepo) Get(ctx context.Context, id uuid.UUID) (*domain.FeedbackReport, error) {
	const op = "postgres.Feedback.Get"

	query := fmt.Sprintf(`SELECT %s FROM report_feedback WHERE id = $1`, feedbackColumns)

	fb, err := scanFeedback(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return fb, nil
}

func (p *FeedbackRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.FeedbackReport, error) {
	const op = "postgres.Feedback.ListByReport"

	query := fmt.Sprintf(`SELECT %s FROM report_feedback WHERE report_id = $1 ORDER BY created_at DESC`, feedbackColumns)

	rows, err := p.pool.Query(ctx, query, reportID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var items []domain.FeedbackReport
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		items = append(items, *fb)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return items, nil
}

func (p *FeedbackRepo) UpdateStatus(ctx context.Context, fb *domain.FeedbackReport) error {
	const op = "postgres.Feedback.UpdateStatus"

	const query = `
		UPDATE report_feedback
		SET status = $2,
			response_notes = $3,
			responded_by = $4,
			responded_at = $5
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		fb.ID,
		fb.Status,
		fb.ResponseNotes,
		fb.RespondedBy,
		fb.RespondedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", fb.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanFeedback(row pgx.Row) (*domain.FeedbackReport, error) {
	var fb domain.FeedbackReport
	if err := row.Scan(
		&fb.ID,
		&fb.ReportID,
		&fb.Type,
		&fb.Message,
		&fb.ReporterName,
		&fb.ReporterContact,
		&fb.Status,
		&fb.ResponseNotes,
		&fb.RespondedBy,
		&fb.RespondedAt,
		&fb.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &fb, nil
}
