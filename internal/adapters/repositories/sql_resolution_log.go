package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/platform/obs"
	"strings"

	"go.uber.org/zap"
)

// SQLResolutionLog is a PostgreSQL-backed ResolutionLog (pgx stdlib driver).
type SQLResolutionLog struct {
	DB     *sql.DB
	logger *zap.Logger
}

func NewSQLResolutionLog(db *sql.DB, logger *zap.Logger) *SQLResolutionLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLResolutionLog{DB: db, logger: logger}
}

// Store a single resolution outcome.
func (s *SQLResolutionLog) Record(ctx context.Context, rec domain.ResolutionRecord) (err error) {
	defer obs.Time(ctx, s.logger, "resolution_log.Record")(&err)

	if s.DB == nil {
		return errors.New("resolution log: db is nil")
	}
	if strings.TrimSpace(rec.Outcome) == "" {
		return errors.New("insert resolution log: outcome must not be empty")
	}

	q := `
	INSERT INTO resolution_log (origin, destination, outcome, duration_text, map_link, endpoint, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		rec.Origin,
		rec.Destination,
		rec.Outcome,
		rec.DurationText,
		nullString(rec.MapLink),
		rec.Endpoint,
		rec.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("insert resolution log: %w", err)
	}

	return nil
}

// Return up to limit outcomes, newest first.
func (s *SQLResolutionLog) Recent(ctx context.Context, limit int) (_ []domain.ResolutionRecord, err error) {
	defer obs.Time(ctx, s.logger, "resolution_log.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("resolution log: db is nil")
	}
	if limit <= 0 {
		return []domain.ResolutionRecord{}, nil
	}

	q := `
	SELECT id, origin, destination, outcome, duration_text, map_link, endpoint, created_at
    FROM resolution_log
    ORDER BY created_at DESC, id DESC
    LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list resolution log: query resolution_log table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ResolutionRecord, 0, limit)
	for rows.Next() {
		var rec domain.ResolutionRecord
		var link sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.Origin,
			&rec.Destination,
			&rec.Outcome,
			&rec.DurationText,
			&link,
			&rec.Endpoint,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list resolution log: scan rows: %w", err)
		}
		rec.MapLink = stringPtr(link)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resolution log: row iteration: %w", err)
	}

	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
