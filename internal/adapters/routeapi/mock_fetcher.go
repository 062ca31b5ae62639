package routeapi

import (
	"context"
	"fmt"
	"route-resolver-service/internal/domain"
	"sync"
)

// Scripted answer for one candidate name.
type MockResponse struct {
	Body string
	Err  error
}

// MockFetcher answers by candidate name and records every call in order.
type MockFetcher struct {
	mu        sync.Mutex
	responses map[string]MockResponse
	calls     []string
}

func NewMockFetcher(responses map[string]MockResponse) *MockFetcher {
	m := make(map[string]MockResponse, len(responses))
	for k, v := range responses {
		m[k] = v
	}
	return &MockFetcher{responses: m}
}

func (m *MockFetcher) FetchRouteText(ctx context.Context, candidate domain.EndpointCandidate) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, candidate.Name)
	r, ok := m.responses[candidate.Name]
	m.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("no scripted response for candidate %q", candidate.Name)
	}
	return r.Body, r.Err
}

// Return the candidate names fetched so far, in call order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
