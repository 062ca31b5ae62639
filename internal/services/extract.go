package services

import (
	"fmt"
	"regexp"
	"route-resolver-service/internal/domain"
)

// Whitespace as upstream text uses it: ASCII spaces plus vertical tab, the
// Unicode separators (NBSP included) and the BOM. RE2's \s is ASCII only.
const (
	spaceClass    = `[\s\v\p{Z}\x{FEFF}]`
	nonSpaceClass = `[^\s\v\p{Z}\x{FEFF}]`
)

var (
	// "<N> hora(s) y <M> minuto(s)", any case.
	durationPattern = regexp.MustCompile(`(?i)(\d+)` + spaceClass + `*horas?` + spaceClass + `*y` + spaceClass + `*(\d+)` + spaceClass + `*minutos?`)
	// Google Maps directions link up to the next whitespace.
	mapLinkPattern = regexp.MustCompile(`https://www\.google\.com/maps/dir/` + nonSpaceClass + `+`)
)

// Extract pulls the travel duration and directions link out of an upstream
// free-text route description.
//
// It never fails: a missing duration yields domain.DurationUnavailable and a
// missing link yields a nil MapLink. Both rules run independently.
func Extract(raw string) domain.ExtractedFields {
	return domain.ExtractedFields{
		DurationText: extractDuration(raw),
		MapLink:      extractMapLink(raw),
	}
}

func extractDuration(raw string) string {
	m := durationPattern.FindStringSubmatch(raw)
	if m == nil {
		return domain.DurationUnavailable
	}
	return fmt.Sprintf("%s horas y %s minutos", m[1], m[2])
}

func extractMapLink(raw string) *string {
	link := mapLinkPattern.FindString(raw)
	if link == "" {
		return nil
	}
	return &link
}
