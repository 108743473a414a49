package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"decoder/internal/source"
)

func TestRead_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "d.json")
	if err := os.WriteFile(p, []byte(`{"a":"b"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	b, err := source.New(nil).Read(context.Background(), p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != `{"a":"b"}` {
		t.Fatalf("got %q", b)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := source.New(nil).Read(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestRead_URL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"x":"y"}`))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("a", source.MaxSize+1)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	r := source.New(ts.Client())
	b, err := r.Read(context.Background(), ts.URL+"/ok")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != `{"x":"y"}` {
		t.Fatalf("got %q", b)
	}
	if _, err := r.Read(context.Background(), ts.URL+"/missing"); err == nil {
		t.Fatal("expected error on 404")
	}
	if _, err := r.Read(context.Background(), ts.URL+"/big"); err == nil {
		t.Fatal("expected error on oversized body")
	}
}

func TestIsURL(t *testing.T) {
	for s, want := range map[string]bool{
		"https://x.test/a": true,
		"http://x":         true,
		"./page.html":      false,
		"ftp://x":          false,
	} {
		if got := source.IsURL(s); got != want {
			t.Fatalf("IsURL(%q) = %v", s, got)
		}
	}
}
