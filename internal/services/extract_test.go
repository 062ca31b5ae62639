package services

import (
	"route-resolver-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plural", raw: "Duration: 3 horas y 45 minutos more text", want: "3 horas y 45 minutos"},
		{name: "singular", raw: "1 hora y 1 minuto", want: "1 horas y 1 minutos"},
		{name: "upper case", raw: "TOTAL 2 HORAS Y 5 MINUTOS", want: "2 horas y 5 minutos"},
		{name: "no spaces", raw: "4horasy10minutos", want: "4 horas y 10 minutos"},
		{name: "first match wins", raw: "1 hora y 2 minutos, luego 3 horas y 4 minutos", want: "1 horas y 2 minutos"},
		{name: "non-breaking spaces", raw: "3\u00a0horas\u00a0y\u00a045\u00a0minutos", want: "3 horas y 45 minutos"},
		{name: "unicode separators", raw: "1\u2028hora y\u3000 2\u202fminutos", want: "1 horas y 2 minutos"},
		{name: "no phrase", raw: "La ruta no tiene datos", want: domain.DurationUnavailable},
		{name: "minutes only", raw: "45 minutos", want: domain.DurationUnavailable},
		{name: "empty", raw: "", want: domain.DurationUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.raw)
			assert.Equal(t, tt.want, got.DurationText)
		})
	}
}

func TestExtractMapLink(t *testing.T) {
	raw := "Ver mapa: https://www.google.com/maps/dir/A/B/extra \nfin"
	got := Extract(raw)

	require.NotNil(t, got.MapLink)
	assert.Equal(t, "https://www.google.com/maps/dir/A/B/extra", *got.MapLink)
	assert.Equal(t, domain.DurationUnavailable, got.DurationText)
}

func TestExtractMapLinkStopsAtUnicodeSpace(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "non-breaking space", raw: "https://www.google.com/maps/dir/A/B\u00a0ver más"},
		{name: "line separator", raw: "https://www.google.com/maps/dir/A/B\u2028siguiente"},
		{name: "ideographic space", raw: "https://www.google.com/maps/dir/A/B\u3000fin"},
		{name: "byte order mark", raw: "https://www.google.com/maps/dir/A/B\ufeffx"},
		{name: "vertical tab", raw: "https://www.google.com/maps/dir/A/B\vx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.raw)
			assert.Equal(t, "https://www.google.com/maps/dir/A/B", got.Link())
		})
	}
}

func TestExtractMapLinkAtEndOfText(t *testing.T) {
	got := Extract("link https://www.google.com/maps/dir/Quito/Ambato")

	assert.Equal(t, "https://www.google.com/maps/dir/Quito/Ambato", got.Link())
}

func TestExtractNoLink(t *testing.T) {
	tests := []string{
		"",
		"http://www.google.com/maps/dir/A/B",
		"https://maps.example.com/dir/A/B",
		"https://www.google.com/maps/place/A",
	}

	for _, raw := range tests {
		got := Extract(raw)
		assert.Nil(t, got.MapLink, "raw=%q", raw)
	}
}

func TestExtractBoth(t *testing.T) {
	raw := "Quito -> Ambato: 2 horas y 30 minutos https://www.google.com/maps/dir/Quito/Ambato ok"
	got := Extract(raw)

	assert.True(t, got.HasDuration())
	assert.Equal(t, "2 horas y 30 minutos", got.DurationText)
	assert.Equal(t, "https://www.google.com/maps/dir/Quito/Ambato", got.Link())
}

func TestExtractIsIdempotent(t *testing.T) {
	raw := "5 horas y 0 minutos https://www.google.com/maps/dir/X/Y"

	first := Extract(raw)
	second := Extract(raw)

	assert.Equal(t, first, second)
}
