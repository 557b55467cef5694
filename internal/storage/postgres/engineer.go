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

type EngineerRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEngineerRepo(pool *pgxpool.Pool, logger *slog.Logger) *EngineerRepo {
	return &EngineerRepo{pool: pool, logger: logger}
}

const engineerColumns = `id, full_name, email, phone, specialization, status,
	home_lat, home_lng, coverage_radius_m, created_at`

func (p *EngineerRepo) Create(ctx context.Context, eng *domain.Engineer) error {
	const op = "postgres.Engineer.Create"

	const query = `
		INSERT INTO engineers (id, full_name, email, phone, specialization, status,
			home_lat, home_lng, coverage_radius_m, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if eng.ID == uuid.Nil {
		eng.ID = uuid.New()
	}
	if eng.CreatedAt.IsZero() {
		eng.CreatedAt = time.Now().UTC()
	}
	if eng.Status == "" {
		eng.Status = domain.EngineerActive
	}
	if eng.CoverageRadiusMeters <= 0 {
		eng.CoverageRadiusMeters = domain.DefaultCoverageRadiusMeters
	}

	lat, lng := splitCoordinate(eng.Home)

	_, err := p.pool.Exec(ctx, query,
		eng.ID,
		eng.FullName,
		eng.Email,
		eng.Phone,
		eng.Specialization,
		eng.Status,
		lat,
		lng,
		eng.CoverageRadiusMeters,
		eng.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *EngineerRepo) List(ctx context.Context) ([]domain.Engineer, error) {
	const op = "postgres.Engineer.List"

	query := fmt.Sprintf(`SELECT %s FROM engineers ORDER BY created_at`, engineerColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var engineers []domain.Engineer
	for rows.Next() {
		eng, err := scanEngineer(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		engineers = append(engineers, *eng)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return engineers, nil
}

func (p *EngineerRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Engineer, error) {
	const op = "postgres.Engineer.Get"

	query := fmt.Sprintf(`SELECT %s FROM engineers WHERE id = $1`, engineerColumns)

	eng, err := scanEngineer(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return eng, nil
}

func (p *EngineerRepo) Update(ctx context.Context, eng *domain.Engineer) error {
	const op = "postgres.Engineer.Update"

	const query = `
		UPDATE engineers
		SET full_name = $2,
			email = $3,
			phone = $4,
			specialization = $5,
			status = $6,
			home_lat = $7,
			home_lng = $8,
			coverage_radius_m = $9
		WHERE id = $1
	`

	lat, lng := splitCoordinate(eng.Home)

	cmd, err := p.pool.Exec(ctx, query,
		eng.ID,
		eng.FullName,
		eng.Email,
		eng.Phone,
		eng.Specialization,
		eng.Status,
		lat,
		lng,
		eng.CoverageRadiusMeters,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", eng.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// Delete removes the engineer row. Assignments are derived, never persisted,
// so this only excludes the engineer from future matching; past decisions
// keep their approved_by/resolved_by references on the reports themselves.
func (p *EngineerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Engineer.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM engineers WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanEngineer(row pgx.Row) (*domain.Engineer, error) {
	var (
		eng      domain.Engineer
		lat, lng *float64
	)
	if err := row.Scan(
		&eng.ID,
		&eng.FullName,
		&eng.Email,
		&eng.Phone,
		&eng.Specialization,
		&eng.Status,
		&lat,
		&lng,
		&eng.CoverageRadiusMeters,
		&eng.CreatedAt,
	); err != nil {
		return nil, err
	}
	eng.Home = joinCoordinate(lat, lng)
	return &eng, nil
}

func splitCoordinate(c *domain.Coordinate) (lat, lng *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Lat, &c.Lng
}

// joinCoordinate enforces both-or-none at the read boundary: a row with only
// one column set is treated as unlocated.
func joinCoordinate(lat, lng *float64) *domain.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}
	return &domain.Coordinate{Lat: *lat, Lng: *lng}
}
