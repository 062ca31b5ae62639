package domain

import "time"

// Outcome value stored for successful resolutions; failures store their ErrorKind.
const OutcomeOK = "ok"

// Represents one stored resolution outcome.
// Records are write-only history for operators. They never feed back into
// resolution and never carry the raw upstream payload.
type ResolutionRecord struct {
	ID           int64
	Origin       string
	Destination  string
	Outcome      string
	DurationText string
	MapLink      *string
	Endpoint     string
	CreatedAt    time.Time
}

// Build the record for a finished resolution. Exactly one of info and err is non-nil.
func NewResolutionRecord(origin, destination string, info *RouteInfo, err error, at time.Time) ResolutionRecord {
	rec := ResolutionRecord{
		Origin:      origin,
		Destination: destination,
		CreatedAt:   at,
	}
	if err != nil {
		rec.Outcome = string(KindOf(err))
		return rec
	}

	rec.Outcome = OutcomeOK
	rec.DurationText = info.Fields.DurationText
	rec.MapLink = info.Fields.MapLink
	rec.Endpoint = info.Endpoint
	return rec
}
