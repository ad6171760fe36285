package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
DTSTART;VALUE=DATE:20260101
SUMMARY;LANGUAGE=en-us:New Year's Day
DESCRIPTION:First day of the year.\nInformation provided by example.com
END:VEVENT
BEGIN:VEVENT
DTSTART;VALUE=DATE:20260504
SUMMARY:May Day Holiday
END:VEVENT
BEGIN:VEVENT
SUMMARY:No date, skipped
END:VEVENT
END:VCALENDAR
`

func TestParseICS(t *testing.T) {
	holidays := parseICS(sampleICS)
	require.Len(t, holidays, 2)

	assert.Equal(t, "2026-01-01", holidays[0].Date)
	assert.Equal(t, "New Year's Day", holidays[0].Name)
	assert.Equal(t, "First day of the year.", holidays[0].Description)

	assert.Equal(t, "2026-05-04", holidays[1].Date)
	assert.Equal(t, "May Day Holiday", holidays[1].Name)
	assert.Empty(t, holidays[1].Description)
}

func TestParseICSEmpty(t *testing.T) {
	assert.Empty(t, parseICS(""))
	assert.Empty(t, parseICS("BEGIN:VCALENDAR\nEND:VCALENDAR"))
}

func TestServiceCachesFeed(t *testing.T) {
	ctx := context.Background()

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sampleICS))
	}))
	defer server.Close()

	svc := NewService(server.Client(), server.URL)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "second call should be served from cache")
}

func TestServiceUpstreamFailure(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewService(server.Client(), server.URL)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrUpstream)
}
