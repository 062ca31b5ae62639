package services

import (
	"context"
	"errors"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/platform/obs"
	"route-resolver-service/internal/ports"
	"time"

	"go.uber.org/zap"
)

// RouteResolver answers "how long from origin to destination" queries against
// an unreliable, dual-deployment upstream.
//
// Candidates are tried strictly in configured order, once each, and never in
// parallel. The first successful payload is extracted; when every candidate
// fails, the last failure is classified and returned. RouteResolver holds no
// per-query state and is safe for concurrent use.
type RouteResolver struct {
	endpoints *EndpointResolver
	fetcher   ports.RouteTextFetcher
	history   ports.ResolutionLog
	logger    *zap.Logger
	now       func() time.Time
}

// history may be nil, in which case outcomes are not recorded.
// A nil logger disables logging.
func NewRouteResolver(
	endpoints *EndpointResolver,
	fetcher ports.RouteTextFetcher,
	history ports.ResolutionLog,
	logger *zap.Logger,
) (*RouteResolver, error) {
	if endpoints == nil || endpoints.Len() == 0 {
		return nil, errors.New("route resolver: endpoints must be non-empty")
	}
	if fetcher == nil {
		return nil, errors.New("route resolver: fetcher must be non-nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RouteResolver{
		endpoints: endpoints,
		fetcher:   fetcher,
		history:   history,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Resolve runs one query. Exactly one of the returned values is non-nil; a
// non-nil error is always a *domain.ResolutionError.
//
// Blank input fails with KindInvalidInput before any network attempt.
// A cancelled ctx stops the fallback sequence; the caller may discard the result.
func (r *RouteResolver) Resolve(ctx context.Context, origin, destination string) (_ *domain.RouteInfo, err error) {
	defer obs.Time(ctx, r.logger, "routes.Resolve")(&err)

	info, err := r.resolve(ctx, origin, destination)
	r.record(ctx, origin, destination, info, err)
	return info, err
}

func (r *RouteResolver) resolve(ctx context.Context, origin, destination string) (*domain.RouteInfo, error) {
	o, d := domain.Place(origin), domain.Place(destination)
	if !o.Valid() || !d.Valid() {
		return nil, domain.NewResolutionError(domain.KindInvalidInput, nil)
	}

	var lastErr error
	for i, candidate := range r.endpoints.Candidates(o, d) {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		payload, err := r.fetcher.FetchRouteText(ctx, candidate)
		if err == nil {
			return &domain.RouteInfo{
				Origin:      origin,
				Destination: destination,
				RawPayload:  payload,
				Fields:      Extract(payload),
				Endpoint:    candidate.Name,
			}, nil
		}

		// Earlier failures are only logged; the caller sees the last one.
		lastErr = err
		r.logger.Warn("route candidate failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("candidate", candidate.Name),
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
	}

	return nil, Classify(lastErr)
}

// record stores the outcome when a history log is configured.
// Storage failures are logged and never change the resolution result.
func (r *RouteResolver) record(ctx context.Context, origin, destination string, info *domain.RouteInfo, err error) {
	if r.history == nil {
		return
	}

	rec := domain.NewResolutionRecord(origin, destination, info, err, r.now().UTC())
	if werr := r.history.Record(context.WithoutCancel(ctx), rec); werr != nil {
		r.logger.Warn("resolution log write failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.Error(werr),
		)
	}
}
