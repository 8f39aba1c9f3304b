package crawler

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrDisallowed = errors.New("access disallowed by robots.txt")
)

// ValidateURL parses and verifies a user-supplied site URL. A missing
// scheme defaults to https, the host must resolve via DNS.
func ValidateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return nil, ErrInvalidURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	if _, err := net.LookupHost(u.Hostname()); err != nil {
		return nil, fmt.Errorf("%w: unknown host %q", ErrInvalidURL, u.Hostname())
	}

	return u, nil
}
