package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestClient_Do_SendsBearerQueryAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("authorization header = %q", got)
		}
		if got := r.URL.Query().Get("search"); got != "anna" {
			t.Errorf("search query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"name": "ok"})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/api/", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out struct {
		Name string `json:"name"`
	}
	err = c.Do(context.Background(), Request{
		Path:   "owners",
		Query:  url.Values{"search": {"anna"}},
		Bearer: "tok-1",
	}, &out)
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if out.Name != "ok" {
		t.Fatalf("expected decoded name, got %q", out.Name)
	}
}

func TestClient_Do_Non2xxBecomesHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Email already exists","error":"Conflict"}`))
	}))
	defer ts.Close()

	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodPost, ts.URL+"/owners", nil, map[string]string{"email": "x"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if StatusOf(err) != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", StatusOf(err), err)
	}
	he := err.(*HTTPError)
	if he.Message != "Email already exists" {
		t.Fatalf("unexpected message %q", he.Message)
	}
}

func TestClient_RelativePathRequiresBaseURL(t *testing.T) {
	c := New(0)
	if err := c.Do(context.Background(), Request{Path: "/owners"}, nil); err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
}
