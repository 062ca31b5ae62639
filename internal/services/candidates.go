package services

import (
	"errors"
	"fmt"
	"net/url"
	"route-resolver-service/internal/domain"
	"strings"
)

// Query parameter names understood by the upstream route text service.
const (
	ParamOrigin      = "origen"
	ParamDestination = "destino"
)

type endpoint struct {
	name string
	base *url.URL
}

// EndpointResolver turns the static endpoint templates into request targets.
//
// It performs no I/O and holds no per-query state. Each template yields
// exactly one candidate per query; there is no retry count beyond that.
type EndpointResolver struct {
	endpoints []endpoint
}

// Parse and check the configured templates. Order is preserved: the first
// template is the primary endpoint, later ones are fallbacks.
func NewEndpointResolver(templates []domain.EndpointTemplate) (*EndpointResolver, error) {
	if len(templates) == 0 {
		return nil, errors.New("endpoint resolver: at least one endpoint template is required")
	}

	endpoints := make([]endpoint, 0, len(templates))
	for i, t := range templates {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("endpoint resolver: template #%d: name must be non-empty", i+1)
		}

		u, err := parseTemplateURL(t.URL)
		if err != nil {
			return nil, fmt.Errorf("endpoint resolver: template %q: %w", name, err)
		}
		endpoints = append(endpoints, endpoint{name: name, base: u})
	}

	return &EndpointResolver{endpoints: endpoints}, nil
}

func parseTemplateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("url must be non-empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
		}
		if u.Host == "" {
			return nil, errors.New("absolute url has no host")
		}
		return u, nil
	}

	// Relative targets are resolved against the proxy base by the fetcher.
	if !strings.HasPrefix(u.Path, "/") {
		return nil, fmt.Errorf("relative url %q must start with /", raw)
	}
	return u, nil
}

// Return the number of configured endpoints.
func (r *EndpointResolver) Len() int { return len(r.endpoints) }

// Build one candidate per endpoint, in configured order.
// The slice is fresh on every call; nothing from earlier queries is remembered.
func (r *EndpointResolver) Candidates(origin, destination domain.Place) []domain.EndpointCandidate {
	out := make([]domain.EndpointCandidate, 0, len(r.endpoints))
	for _, e := range r.endpoints {
		target := *e.base
		q := target.Query()
		q.Set(ParamOrigin, origin.Trim().String())
		q.Set(ParamDestination, destination.Trim().String())
		target.RawQuery = q.Encode()

		out = append(out, domain.EndpointCandidate{Name: e.name, Target: &target})
	}
	return out
}
