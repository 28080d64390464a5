package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"  example.com  ", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/path", "https://example.com/path"},
		{"httpexample.com", "https://httpexample.com"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFetchSuccess(t *testing.T) {
	body := "<html>한글 포함 body</html>"
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	res, err := Default.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if res.Body != body {
		t.Errorf("body = %q, want %q", res.Body, body)
	}
	// Byte length of the UTF-8 body, not rune count or header value.
	if res.PageSize != len(body) {
		t.Errorf("pageSize = %d, want %d", res.PageSize, len(body))
	}
	if res.LoadTimeMs < 0 {
		t.Errorf("loadTimeMs = %d, want >= 0", res.LoadTimeMs)
	}
	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Errorf("request used User-Agent %q, want a browser identity", gotUA)
	}
}

func TestFetchFollowsRedirects(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("landed"))
	}))
	defer final.Close()
	hop := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusFound)
	}))
	defer hop.Close()

	res, err := Default.Fetch(context.Background(), hop.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if res.Body != "landed" {
		t.Errorf("body = %q, want redirect target body", res.Body)
	}
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Default.Fetch(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error %T, want *FetchError", err)
	}
	if fe.StatusCode != 404 {
		t.Errorf("status = %d, want 404", fe.StatusCode)
	}
	if fe.Error() != "HTTP 404: Not Found" {
		t.Errorf("message = %q, want \"HTTP 404: Not Found\"", fe.Error())
	}
}

func TestFetchTimeoutBounded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	client := NewClient(150 * time.Millisecond)
	start := time.Now()
	_, err := client.Fetch(context.Background(), srv.URL)
	elapsed := time.Since(start)

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("error %T, want *NetworkError", err)
	}
	if elapsed > time.Second {
		t.Errorf("fetch took %v, should fail close to the 150ms timeout", elapsed)
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	_, err := Default.Fetch(context.Background(), target)
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("error %T, want *NetworkError", err)
	}
}
