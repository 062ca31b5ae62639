package domain

// Sentinel placed in ExtractedFields.DurationText when the upstream text
// carries no recognisable hours/minutes phrase.
const DurationUnavailable = "unavailable"

// Structured fields recovered from an upstream free-text route description.
// DurationText is always set (possibly DurationUnavailable); MapLink is nil
// when the text contains no directions link.
type ExtractedFields struct {
	DurationText string
	MapLink      *string
}

// Report whether a duration phrase was recovered.
func (f ExtractedFields) HasDuration() bool {
	return f.DurationText != "" && f.DurationText != DurationUnavailable
}

// Return the map link, or "" when none was found.
func (f ExtractedFields) Link() string {
	if f.MapLink == nil {
		return ""
	}
	return *f.MapLink
}

// Represents a successfully resolved route query.
// Origin and Destination echo the caller's input for display; RawPayload is
// the transient upstream body and is never persisted.
type RouteInfo struct {
	Origin      string
	Destination string
	RawPayload  string
	Fields      ExtractedFields
	// Name of the endpoint candidate that answered.
	Endpoint string
}
