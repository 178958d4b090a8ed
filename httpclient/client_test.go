package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Execute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/users" {
			t.Errorf("path = %s, want /users", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["name"] != "user2" {
			t.Errorf("body name = %q", body["name"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":2}`))
	}))
	defer srv.Close()

	b, err := NewBuilder(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	req, err := b.NewRequest(http.MethodPost, "/users", map[string]string{"name": "user2"})
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	res, err := NewClient().Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want 201", res.StatusCode)
	}
	if string(res.Body) != `{"id":2}` {
		t.Errorf("body = %s", res.Body)
	}
	if res.Headers["Content-Type"] != "application/json" {
		t.Errorf("headers = %v", res.Headers)
	}
}

func TestClient_Execute_NoStatusClassification(t *testing.T) {
	// The transport must not reject non-2xx responses; that is Validate's job.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	b, _ := NewBuilder(Config{BaseURL: srv.URL})
	req, _ := b.NewRequest(http.MethodGet, "/todos", nil)

	res, err := NewClient().Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", res.StatusCode)
	}
}

func TestClient_Execute_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	b, _ := NewBuilder(Config{BaseURL: srv.URL})
	req, _ := b.NewRequest(http.MethodGet, "/todos", nil)

	_, err := NewClient().Execute(context.Background(), req)
	if !IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestClient_Execute_ContextCancel(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	b, _ := NewBuilder(Config{BaseURL: srv.URL})
	req, _ := b.NewRequest(http.MethodGet, "/todos", nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := NewClient().Execute(ctx, req)
		errCh <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errCh:
		if !IsTransport(err) {
			t.Fatalf("expected transport error after cancel, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Execute did not return after cancel")
	}
}

func TestClient_Execute_DescriptorTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	b, _ := NewBuilder(Config{BaseURL: srv.URL})
	req, _ := b.NewRequest(http.MethodGet, "/todos", nil, WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := NewClient().Execute(context.Background(), req)
	if !IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout not applied: took %v", elapsed)
	}
}
