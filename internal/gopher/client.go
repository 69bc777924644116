package gopher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gopherburrow/burrow/internal/log"
)

// ErrServerError is returned when a server answers a request with an
// error entry instead of content. Gopher has no status codes, so this
// is the only failure signal the protocol carries.
var ErrServerError = errors.New("gopher: server reported an error")

// terminator marks the end of a menu or text response.
const terminator = "."

// DefaultTimeout bounds the dial and each read when the caller does
// not configure one.
const DefaultTimeout = 15 * time.Second

// Client fetches gopher resources over TCP.
type Client struct {
	timeout time.Duration
}

// NewClient creates a client. A zero timeout means DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{timeout: timeout}
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Fetch sends the selector for u (with an optional search query) and
// returns the raw response stream. The caller must close it.
func (c *Client) Fetch(ctx context.Context, u *url.URL, query string) (io.ReadCloser, error) {
	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "tcp", hostPort(u))
	if err != nil {
		return nil, fmt.Errorf("gopher: dial %s: %w", hostPort(u), err)
	}

	req := u.Path
	if query != "" {
		req += "\t" + query
	}

	_ = conn.SetDeadline(time.Now().Add(c.timeout))
	if _, err := conn.Write([]byte(req + "\r\n")); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("gopher: send selector: %w", err)
	}

	log.Debug("gopher: fetched %s", u)
	return conn, nil
}

// FetchMenu retrieves and parses a submenu (or search result) at u.
// Reading stops at the "." terminator or EOF.
//
// Servers report failures as a leading error entry in place of content,
// so the first line is sniffed and surfaced as ErrServerError.
func (c *Client) FetchMenu(ctx context.Context, u *url.URL, query string) ([]Entry, error) {
	body, err := c.Fetch(ctx, u, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSuffix(line, "\r") == terminator {
			break
		}

		entry := ParseEntry(line)
		if len(entries) == 0 && entry.Type == TypeError {
			return nil, fmt.Errorf("%w: %s", ErrServerError, entry.Label)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gopher: read menu: %w", err)
	}

	return entries, nil
}

// FetchText retrieves a text file at u as a slice of lines, stopping at
// the "." terminator or EOF. Error entries are sniffed the same way as
// for menus.
func (c *Client) FetchText(ctx context.Context, u *url.URL) ([]string, error) {
	body, err := c.Fetch(ctx, u, "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	var lines []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == terminator {
			break
		}

		if len(lines) == 0 {
			if entry := ParseEntry(line); entry.Type == TypeError {
				return nil, fmt.Errorf("%w: %s", ErrServerError, entry.Label)
			}
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gopher: read text: %w", err)
	}

	return lines, nil
}
