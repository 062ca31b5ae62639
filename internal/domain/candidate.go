package domain

import "net/url"

// Static description of one upstream route text endpoint.
// URL may be absolute ("http://localhost:8082/api/ruta") or relative
// ("/api2/ruta"); relative targets are resolved by the fetcher.
type EndpointTemplate struct {
	Name string
	URL  string
}

// EndpointCandidate is a fully built request target for one (origin, destination)
// pair against one EndpointTemplate.
type EndpointCandidate struct {
	Name   string
	Target *url.URL
}

func (c EndpointCandidate) String() string {
	if c.Target == nil {
		return c.Name
	}
	return c.Name + " " + c.Target.String()
}
