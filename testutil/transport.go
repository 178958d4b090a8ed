package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/restpipe/restpipe/httpclient"
)

// step is one scripted transport response.
type step struct {
	status int
	body   []byte
	err    error
	gate   <-chan struct{}
}

// StubTransport is a scripted httpclient.Transport for tests. Responses are
// consumed in order; every executed request is recorded for assertions.
type StubTransport struct {
	mu    sync.Mutex
	steps []step
	calls []httpclient.Request
}

// NewStubTransport creates an empty stub. Executing against an empty script
// fails the request.
func NewStubTransport() *StubTransport {
	return &StubTransport{}
}

// Respond scripts a response with the given status and body.
func (s *StubTransport) Respond(status int, body string) *StubTransport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step{status: status, body: []byte(body)})
	return s
}

// Fail scripts a transport-level failure.
func (s *StubTransport) Fail(err error) *StubTransport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step{err: err})
	return s
}

// RespondAfter scripts a response that is not produced until gate is closed
// or the request context is cancelled. Used to test cancellation races.
func (s *StubTransport) RespondAfter(gate <-chan struct{}, status int, body string) *StubTransport {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step{status: status, body: []byte(body), gate: gate})
	return s
}

// Execute implements httpclient.Transport.
func (s *StubTransport) Execute(ctx context.Context, req httpclient.Request) (*httpclient.RawResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	if len(s.steps) == 0 {
		s.mu.Unlock()
		return nil, httpclient.NewTransportError(fmt.Errorf("stub: unexpected request %s %s", req.Method, req.URL))
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	s.mu.Unlock()

	if st.gate != nil {
		select {
		case <-st.gate:
		case <-ctx.Done():
			return nil, httpclient.NewTransportError(ctx.Err())
		}
	}
	if st.err != nil {
		return nil, st.err
	}
	return &httpclient.RawResult{
		StatusCode: st.status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       st.body,
	}, nil
}

// Calls returns all executed requests in order.
func (s *StubTransport) Calls() []httpclient.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]httpclient.Request, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of executed requests.
func (s *StubTransport) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
