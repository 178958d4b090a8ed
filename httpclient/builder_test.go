package httpclient

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

type testUser struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	VerifyPassword string `json:"verifyPassword"`
}

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(Config{BaseURL: "https://api.example.com"})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b
}

func TestNewBuilder_InvalidBase(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"relative", "/users"},
		{"no host", "https://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBuilder(Config{BaseURL: tt.baseURL}); err == nil {
				t.Fatalf("expected error for base %q", tt.baseURL)
			}
		})
	}
}

func TestNewRequest_Target(t *testing.T) {
	b := newTestBuilder(t)

	user := testUser{Name: "user2", Email: "user2@example.com", Password: "password2", VerifyPassword: "password2"}
	req, err := b.NewRequest(http.MethodPost, "/users", user)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}

	if req.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", req.Method)
	}
	if want := "https://api.example.com/users"; req.URL != want {
		t.Errorf("url = %s, want %s", req.URL, want)
	}

	var got testUser
	if err := json.Unmarshal(req.Body, &got); err != nil {
		t.Fatalf("body does not decode: %v", err)
	}
	if got != user {
		t.Errorf("body round-trip = %+v, want %+v", got, user)
	}
}

func TestNewRequest_CanonicalHeaders(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.NewRequest(http.MethodPost, "/users", testUser{Name: "a"})
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if req.Headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q", req.Headers["Content-Type"])
	}
	if req.Headers["Accept"] != "application/json" {
		t.Errorf("Accept = %q", req.Headers["Accept"])
	}
	if req.Headers["Cache-Control"] != "no-cache" {
		t.Errorf("Cache-Control = %q", req.Headers["Cache-Control"])
	}

	// Body-less requests carry no Content-Type.
	req, err = b.NewRequest(http.MethodGet, "/todos", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if _, ok := req.Headers["Content-Type"]; ok {
		t.Error("unexpected Content-Type on body-less request")
	}
	if req.Body != nil {
		t.Error("unexpected body on body-less request")
	}
}

func TestNewRequest_BasicAuth(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.NewRequest(http.MethodPost, "/login", nil,
		WithAuth(BasicAuth("user2@example.com", "password2")))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("user2@example.com:password2"))
	if got := req.Headers["Authorization"]; got != want {
		t.Errorf("Authorization = %q, want %q", got, want)
	}
}

func TestNewRequest_BearerAuth(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.NewRequest(http.MethodGet, "/todos", nil, WithAuth(BearerAuth("tok-abc")))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if got := req.Headers["Authorization"]; got != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want Bearer tok-abc", got)
	}
}

func TestNewRequest_InvalidBody(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.NewRequest(http.MethodPost, "/users", make(chan int))
	if !IsInvalidBody(err) {
		t.Fatalf("expected invalid_body error, got %v", err)
	}
}

func TestNewRequest_InvalidEndpoint(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.NewRequest(http.MethodGet, "/%zz", nil)
	if !IsInvalidEndpoint(err) {
		t.Fatalf("expected invalid_endpoint error, got %v", err)
	}
}

func TestNewRequest_HeaderOverride(t *testing.T) {
	b, err := NewBuilder(Config{
		BaseURL: "https://api.example.com",
		Headers: map[string]string{"X-Client": "restpipe"},
	})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	req, err := b.NewRequest(http.MethodGet, "/todos", nil, WithHeader("Accept", "text/plain"))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if req.Headers["X-Client"] != "restpipe" {
		t.Errorf("default header missing: %v", req.Headers)
	}
	if req.Headers["Accept"] != "text/plain" {
		t.Errorf("per-request header did not override: %q", req.Headers["Accept"])
	}
}

func TestNewRequest_Timeout(t *testing.T) {
	b := newTestBuilder(t)

	req, err := b.NewRequest(http.MethodGet, "/todos", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if req.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want default %v", req.Timeout, defaultTimeout)
	}

	req, err = b.NewRequest(http.MethodGet, "/todos", nil, WithTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if req.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", req.Timeout)
	}
}
