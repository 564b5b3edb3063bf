package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "seoforge/1.0" {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		io.WriteString(w, "<html><body>hello</body></html>")
	}))
	defer srv.Close()

	got, err := NewFetcher(5*time.Second).GetHTML(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetHTML: %v", err)
	}
	if got != "<html><body>hello</body></html>" {
		t.Errorf("body = %q", got)
	}
}

func TestGetHTMLNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewFetcher(0).GetHTML(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 404")
	}
}

func TestGetHTMLContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := NewFetcher(0).GetHTML(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}
