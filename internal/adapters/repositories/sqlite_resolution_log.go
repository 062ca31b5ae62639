package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/platform/obs"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SQLite backed ResolutionLog for local runs.
// Timestamps are stored as RFC 3339 text in UTC so ordering by created_at
// sorts chronologically.
type SqliteResolutionLog struct {
	DB     *sql.DB
	logger *zap.Logger
}

func NewSqliteResolutionLog(db *sql.DB, logger *zap.Logger) *SqliteResolutionLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SqliteResolutionLog{DB: db, logger: logger}
}

const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store a single resolution outcome.
func (s *SqliteResolutionLog) Record(ctx context.Context, rec domain.ResolutionRecord) (err error) {
	defer obs.Time(ctx, s.logger, "resolution_log.Record")(&err)

	if s.DB == nil {
		return errors.New("resolution log: db is nil")
	}
	if strings.TrimSpace(rec.Outcome) == "" {
		return errors.New("insert resolution log: outcome must not be empty")
	}

	q := `
	INSERT INTO resolution_log (
        origin,
        destination,
        outcome,
        duration_text,
        map_link,
        endpoint,
        created_at
    )
    VALUES (?, ?, ?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		rec.Origin,
		rec.Destination,
		rec.Outcome,
		rec.DurationText,
		nullString(rec.MapLink),
		rec.Endpoint,
		rec.CreatedAt.UTC().Format(sqliteTimeLayout),
	); err != nil {
		return fmt.Errorf("insert resolution log: %w", err)
	}

	return nil
}

// Return up to limit outcomes, newest first.
func (s *SqliteResolutionLog) Recent(ctx context.Context, limit int) (_ []domain.ResolutionRecord, err error) {
	defer obs.Time(ctx, s.logger, "resolution_log.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("resolution log: db is nil")
	}
	if limit <= 0 {
		return []domain.ResolutionRecord{}, nil
	}

	q := `
	SELECT 
        id,
        origin,
        destination,
        outcome,
        duration_text,
        map_link,
        endpoint,
        created_at
    FROM resolution_log
    ORDER BY created_at DESC, id DESC
    LIMIT ?;
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
		var created string
		if err := rows.Scan(
			&rec.ID,
			&rec.Origin,
			&rec.Destination,
			&rec.Outcome,
			&rec.DurationText,
			&link,
			&rec.Endpoint,
			&created,
		); err != nil {
			return nil, fmt.Errorf("list resolution log: scan rows: %w", err)
		}

		rec.CreatedAt, err = time.Parse(sqliteTimeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("list resolution log: parse created_at %q: %w", created, err)
		}
		rec.MapLink = stringPtr(link)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resolution log: row iteration: %w", err)
	}

	return out, nil
}
