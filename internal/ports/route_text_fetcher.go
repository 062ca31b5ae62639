package ports

import (
	"context"
	"route-resolver-service/internal/domain"
)

// Contract for retrieving the raw route description text from one endpoint candidate.
type RouteTextFetcher interface {
	// Issue the request described by candidate and return the plain-text body.
	// Any non-2xx response or transport failure is returned as an error.
	FetchRouteText(ctx context.Context, candidate domain.EndpointCandidate) (string, error)
}
