package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/pricepulse-au/pricepulse-backend/pkg/errors"
)

func TestHTTPSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Name,ScreenSize\nFoo,55"))
	}))
	defer server.Close()

	source, err := NewHTTPSource(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if body != "Name,ScreenSize\nFoo,55" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestHTTPSourceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source, err := NewHTTPSource(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = source.Fetch(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestHTTPSourceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	source, err := NewHTTPSource(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = source.Fetch(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestNewHTTPSourceRequiresURL(t *testing.T) {
	if _, err := NewHTTPSource("   "); err == nil {
		t.Fatal("expected error for blank url")
	}
}

func TestFileSourceFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.csv")
	if err := os.WriteFile(path, []byte("header\nrow"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	source, err := NewFileSource(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if body != "header\nrow" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	source, err := NewFileSource(filepath.Join(t.TempDir(), "missing.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = source.Fetch(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
