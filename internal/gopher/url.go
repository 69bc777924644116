package gopher

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// DefaultPort is the port gopher servers listen on when none is given.
const DefaultPort = "70"

// NormalizeURL parses user input into a gopher URL. A missing scheme
// defaults to gopher:// and a missing port defaults to 70.
func NormalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("gopher: empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "gopher://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("gopher: parse url: %w", err)
	}
	if u.Scheme != "gopher" {
		return nil, fmt.Errorf("gopher: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("gopher: url %q has no host", raw)
	}
	if u.Port() == "" {
		u.Host = net.JoinHostPort(u.Host, DefaultPort)
	}
	return u, nil
}

// hostPort returns the dial address for a gopher URL.
func hostPort(u *url.URL) string {
	port := u.Port()
	if port == "" {
		port = DefaultPort
	}
	return net.JoinHostPort(u.Hostname(), port)
}
