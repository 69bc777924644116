package gopher

import (
	"bufio"
	"context"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer accepts one connection, records the request line, and
// writes the canned response.
type fakeServer struct {
	addr     string
	requests chan string
}

func newFakeServer(t *testing.T, response string) *fakeServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	srv := &fakeServer{addr: ln.Addr().String(), requests: make(chan string, 1)}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		line, err := bufio.NewReader(conn).ReadString('\n')
		if err != nil {
			return
		}
		srv.requests <- line
		_, _ = conn.Write([]byte(response))
	}()
	return srv
}

func (s *fakeServer) url(t *testing.T, path string) *url.URL {
	t.Helper()
	u, err := url.Parse("gopher://" + s.addr + path)
	require.NoError(t, err)
	return u
}

func (s *fakeServer) request(t *testing.T) string {
	t.Helper()
	select {
	case req := <-s.requests:
		return req
	case <-time.After(2 * time.Second):
		t.Fatal("server saw no request")
		return ""
	}
}

func TestClient_FetchMenu(t *testing.T) {
	srv := newFakeServer(t,
		"iWelcome\tfake\t(NULL)\t0\r\n"+
			"1A directory\t/dir\texample.com\t70\r\n"+
			".\r\n"+
			"1Past the terminator\t/junk\texample.com\t70\r\n")

	c := NewClient(2 * time.Second)
	entries, err := c.FetchMenu(context.Background(), srv.url(t, "/"), "")
	require.NoError(t, err)

	assert.Equal(t, "/\r\n", srv.request(t))
	require.Len(t, entries, 2)
	assert.Equal(t, TypeInfo, entries[0].Type)
	assert.Equal(t, "A directory", entries[1].Label)
}

func TestClient_FetchMenu_QueryAppendedAsTab(t *testing.T) {
	srv := newFakeServer(t, "0Result\t/r\texample.com\t70\r\n.\r\n")

	c := NewClient(2 * time.Second)
	_, err := c.FetchMenu(context.Background(), srv.url(t, "/search"), "gophers")
	require.NoError(t, err)

	assert.Equal(t, "/search\tgophers\r\n", srv.request(t))
}

func TestClient_FetchMenu_ServerError(t *testing.T) {
	srv := newFakeServer(t, "3'/missing' not found\tfake\t(NULL)\t0\r\n.\r\n")

	c := NewClient(2 * time.Second)
	_, err := c.FetchMenu(context.Background(), srv.url(t, "/missing"), "")

	require.ErrorIs(t, err, ErrServerError)
	assert.Contains(t, err.Error(), "'/missing' not found")
}

func TestClient_FetchMenu_EOFWithoutTerminator(t *testing.T) {
	srv := newFakeServer(t, "1No terminator\t/x\texample.com\t70\r\n")

	c := NewClient(2 * time.Second)
	entries, err := c.FetchMenu(context.Background(), srv.url(t, "/"), "")

	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestClient_FetchText(t *testing.T) {
	srv := newFakeServer(t, "first line\r\n\r\nthird line\r\n.\r\nignored\r\n")

	c := NewClient(2 * time.Second)
	lines, err := c.FetchText(context.Background(), srv.url(t, "/0/readme"))

	require.NoError(t, err)
	assert.Equal(t, []string{"first line", "", "third line"}, lines)
}

func TestClient_FetchText_ServerError(t *testing.T) {
	srv := newFakeServer(t, "3no such file\tfake\t(NULL)\t0\r\n.\r\n")

	c := NewClient(2 * time.Second)
	_, err := c.FetchText(context.Background(), srv.url(t, "/0/missing"))

	require.ErrorIs(t, err, ErrServerError)
}

func TestClient_Fetch_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close()) // port is now closed

	u, err := url.Parse("gopher://" + addr + "/")
	require.NoError(t, err)

	c := NewClient(time.Second)
	_, err = c.FetchMenu(context.Background(), u, "")
	assert.Error(t, err)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient(0).Timeout())
	assert.Equal(t, time.Second, NewClient(time.Second).Timeout())
}
