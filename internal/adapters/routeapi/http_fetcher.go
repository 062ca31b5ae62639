package routeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/platform/obs"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	maxBodyBytes      = 1 << 20
	maxErrorBodyBytes = 512
)

// ErrBodyTooLarge is returned when a route text body exceeds the read cap.
var ErrBodyTooLarge = errors.New("route text body too large")

// HTTPFetcher implements RouteTextFetcher with a plain HTTP GET per candidate.
//
// It makes exactly one attempt per call; fallback between endpoints is the
// caller's job. Relative candidate targets (e.g. a dev-server proxy path) are
// resolved against ProxyBase. HTTPFetcher is safe for concurrent use.
type HTTPFetcher struct {
	session   *http.Client
	proxyBase *url.URL
	logger    *zap.Logger
}

// proxyBase may be empty when every candidate target is absolute.
func NewHTTPFetcher(proxyBase string, timeout time.Duration, logger *zap.Logger) (*HTTPFetcher, error) {
	if timeout <= 0 {
		return nil, errors.New("http fetcher: timeout must be positive")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &HTTPFetcher{
		session: &http.Client{Timeout: timeout},
		logger:  logger,
	}

	if strings.TrimSpace(proxyBase) != "" {
		u, err := url.Parse(strings.TrimSpace(proxyBase))
		if err != nil {
			return nil, fmt.Errorf("http fetcher: parse proxy base: %w", err)
		}
		if !u.IsAbs() {
			return nil, fmt.Errorf("http fetcher: proxy base %q must be absolute", proxyBase)
		}
		f.proxyBase = u
	}

	return f, nil
}

// Fetch the plain-text route description for one candidate.
func (f *HTTPFetcher) FetchRouteText(
	ctx context.Context,
	candidate domain.EndpointCandidate,
) (_ string, err error) {
	defer obs.Time(ctx, f.logger, "routeapi.Fetch."+candidate.Name)(&err)

	target, err := f.resolveTarget(candidate)
	if err != nil {
		return "", err
	}

	req, err := f.newRequest(ctx, target)
	if err != nil {
		return "", err
	}

	resp, err := f.do(req)
	if err != nil {
		return "", fmt.Errorf("fetch route text from %s: %w", candidate.Name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("fetch route text from %s: read body: %w", candidate.Name, err)
	}
	if len(body) > maxBodyBytes {
		return "", fmt.Errorf("fetch route text from %s: %w (limit %d bytes)", candidate.Name, ErrBodyTooLarge, maxBodyBytes)
	}

	return string(body), nil
}

func (f *HTTPFetcher) resolveTarget(candidate domain.EndpointCandidate) (*url.URL, error) {
	if candidate.Target == nil {
		return nil, fmt.Errorf("candidate %s: target is nil", candidate.Name)
	}
	if candidate.Target.IsAbs() {
		return candidate.Target, nil
	}
	if f.proxyBase == nil {
		return nil, fmt.Errorf("candidate %s: relative target %q needs a proxy base url", candidate.Name, candidate.Target)
	}
	return f.proxyBase.ResolveReference(candidate.Target), nil
}

func (f *HTTPFetcher) newRequest(ctx context.Context, target *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "text/plain")
	if reqID := obs.RequestID(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	return req, nil
}

// do sends req and turns every non-2xx answer into a *domain.StatusError.
func (f *HTTPFetcher) do(req *http.Request) (*http.Response, error) {
	resp, err := f.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		resp.Body.Close()
		return nil, &domain.StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
