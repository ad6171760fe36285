package holiday

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// cacheTTL is how long a fetched holiday list stays valid. Feeds change
// rarely, so a daily refresh is plenty.
const cacheTTL = 24 * time.Hour

type Service interface {
	List(ctx context.Context) ([]Holiday, error)
}

type service struct {
	client *http.Client
	url    string

	mu        sync.RWMutex
	cached    []Holiday
	fetchedAt time.Time
}

func NewService(client *http.Client, url string) Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &service{client: client, url: url}
}

func (s *service) List(ctx context.Context) ([]Holiday, error) {
	s.mu.RLock()
	if len(s.cached) > 0 && time.Since(s.fetchedAt) < cacheTTL {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have refreshed the cache while we waited.
	if len(s.cached) > 0 && time.Since(s.fetchedAt) < cacheTTL {
		return s.cached, nil
	}

	holidays, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = holidays
	s.fetchedAt = time.Now()
	return holidays, nil
}

func (s *service) fetch(ctx context.Context) ([]Holiday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, ErrUpstream
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUpstream
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrUpstream
	}

	return parseICS(string(body)), nil
}

// parseICS extracts DTSTART, SUMMARY and DESCRIPTION from VEVENT blocks.
// It is deliberately minimal and skips events without a date or summary.
func parseICS(content string) []Holiday {
	var holidays []Holiday
	var date, summary, description string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "DTSTART"):
			if _, value, ok := strings.Cut(line, ":"); ok && len(value) >= 8 {
				date = value[0:4] + "-" + value[4:6] + "-" + value[6:8]
			}
		case strings.HasPrefix(line, "SUMMARY"):
			if _, value, ok := strings.Cut(line, ":"); ok {
				summary = strings.TrimSpace(value)
			}
		case strings.HasPrefix(line, "DESCRIPTION:"):
			desc := strings.TrimPrefix(line, "DESCRIPTION:")
			desc = strings.ReplaceAll(desc, "\\n", " ")
			// Feeds append a provenance footer to every description.
			if idx := strings.Index(desc, "Information provided by"); idx != -1 {
				desc = desc[:idx]
			}
			description = strings.TrimSpace(desc)
		case line == "END:VEVENT":
			if date != "" && summary != "" {
				holidays = append(holidays, Holiday{
					Date:        date,
					Name:        summary,
					Description: description,
				})
			}
			date, summary, description = "", "", ""
		}
	}
	return holidays
}
