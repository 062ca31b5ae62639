package ports

import (
	"context"
	"route-resolver-service/internal/domain"
)

// Port: a boundary for storing and listing resolution outcomes.
type ResolutionLog interface {
	// Store a single outcome.
	Record(ctx context.Context, rec domain.ResolutionRecord) error
	// Return the most recent outcomes, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ResolutionRecord, error)
}
