package rest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/WongLynn/bitfinex-1/internal/logger"
	"github.com/stretchr/testify/require"
)

const (
	testKey    = "test-key"
	testSecret = "test-secret"
)

type capturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Payload decodes the X-BFX-PAYLOAD header.
func (r capturedRequest) Payload(t *testing.T) map[string]any {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(r.Header.Get(headerPayload))
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

type fakeExchange struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
}

func newFakeExchange(t *testing.T, status int, body string) *fakeExchange {
	t.Helper()
	f := &fakeExchange{t: t, status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeExchange) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, reply := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(reply))
}

func (f *fakeExchange) reply(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

func (f *fakeExchange) last() capturedRequest {
	f.t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.requests, "no request reached the fake exchange")
	return f.requests[len(f.requests)-1]
}

func (f *fakeExchange) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func testOptions(baseURL string, logs *bytes.Buffer) Options {
	opts := Options{BaseURL: baseURL + "/"}
	if logs != nil {
		opts.Log = logger.NewWithWriter(logs, "debug")
	}
	return opts
}

func newTestPublic(t *testing.T, f *fakeExchange) *Public {
	t.Helper()
	c, err := NewPublic(testOptions(f.server.URL, nil))
	require.NoError(t, err)
	return c
}

func newTestPrivate(t *testing.T, f *fakeExchange, now time.Time) *Private {
	t.Helper()
	c, err := NewPrivate(testKey, testSecret, testOptions(f.server.URL, nil))
	require.NoError(t, err)
	c.now = func() time.Time { return now }
	return c
}
