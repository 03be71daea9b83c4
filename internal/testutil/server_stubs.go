package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// ShutdownOrder records the names of servers in the order they were shut down.
type ShutdownOrder struct {
	mu    sync.Mutex
	names []string
}

func (o *ShutdownOrder) record(name string) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.names = append(o.names, name)
	o.mu.Unlock()
}

// Names returns a copy of the recorded shutdown sequence.
func (o *ShutdownOrder) Names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.names...)
}

// StubHTTPServer is a scripted stand-in for the API or metrics server.
// Name identifies it in Order when Shutdown runs.
type StubHTTPServer struct {
	Name          string
	Order         *ShutdownOrder
	AddrVal       string
	HandlerVal    http.Handler
	ListenErr     error
	ShutdownErr   error
	ListenCalls   int
	ShutdownCalls int
}

// NewFailingHTTPServer returns a server whose listener cannot bind.
func NewFailingHTTPServer(name string) *StubHTTPServer {
	return &StubHTTPServer{Name: name, AddrVal: ":0", ListenErr: errors.New("listen failure")}
}

// NewClosedHTTPServer returns a server that reports a clean close, as after Shutdown.
func NewClosedHTTPServer(name string, order *ShutdownOrder) *StubHTTPServer {
	return &StubHTTPServer{Name: name, Order: order, AddrVal: ":0", ListenErr: http.ErrServerClosed}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.ShutdownCalls++
	s.Order.record(s.Name)
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string { return s.AddrVal }

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// BlockingHTTPServer simulates an API server still draining a slow model
// call: Shutdown waits on Unblock or the shutdown deadline.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error { return nil }

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string          { return b.AddrVal }
func (b *BlockingHTTPServer) Handler() http.Handler { return b.HandlerVal }
