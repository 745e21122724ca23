package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
)

// FDSN lists channels from an FDSN station web service (format=text, level=channel).
// Params: baseURL|net|sta|loc|cha, with "*" or empty meaning "any".
type FDSN struct {
	name    string
	raw     string
	baseURL string
	query   url.Values

	newClient func() *http.Client
}

// NewFDSN builds an FDSN source from a parsed spec.
func NewFDSN(spec Spec) (*FDSN, error) {
	base := strings.TrimRight(spec.Param(0, ""), "/")
	if base == "" {
		return nil, fmt.Errorf("source %s: missing service URL", spec.Name)
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("source %s: invalid service URL: %w", spec.Name, err)
	}

	q := url.Values{}
	q.Set("level", "channel")
	q.Set("format", "text")
	for i, key := range []string{"net", "sta", "loc", "cha"} {
		if v := spec.Param(i+1, "*"); v != "*" {
			q.Set(key, v)
		}
	}

	return &FDSN{
		name:      spec.Name,
		raw:       spec.Raw,
		baseURL:   base,
		query:     q,
		newClient: cleanhttp.DefaultClient,
	}, nil
}

func (f *FDSN) Name() string         { return f.name }
func (f *FDSN) ConfigString() string { return f.raw }

// Establish prepares an HTTP client for one listing; connections are opened lazily.
func (f *FDSN) Establish(ctx context.Context) (Session, error) {
	return &stationSession{
		client:   f.newClient(),
		endpoint: f.baseURL + "/fdsnws/station/1/query?" + f.query.Encode(),
	}, nil
}

type stationSession struct {
	client   *http.Client
	endpoint string
}

// Channels queries the station service.
func (s *stationSession) Channels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return []string{}, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("station service returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return parseStationText(resp.Body)
}

// Close releases idle connections.
func (s *stationSession) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// parseStationText reads "Network|Station|Location|Channel|..." rows, keeping
// the first occurrence of each channel across epochs.
func parseStationText(r io.Reader) ([]string, error) {
	seen := make(map[string]bool)
	channels := []string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 4 {
			return nil, fmt.Errorf("malformed station row %q", line)
		}
		ch := FormatChannel(strings.TrimSpace(parts[1]), strings.TrimSpace(parts[3]), strings.TrimSpace(parts[0]), strings.TrimSpace(parts[2]))
		if !seen[ch] {
			seen[ch] = true
			channels = append(channels, ch)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return channels, nil
}
