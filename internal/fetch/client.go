package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadscout/internal/proxy"
)

// DefaultTimeout bounds the whole fetch. Prospect sites are uncontrolled
// third-party servers; past 15 seconds the page is not worth scoring.
const DefaultTimeout = 15 * time.Second

type contextKey string

const proxyCtxKey contextKey = "proxyURL"

// FetchError is a non-2xx response from the target site.
type FetchError struct {
	StatusCode int
	Reason     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Reason)
}

// NetworkError is a timeout, DNS failure or refused connection: anything
// that prevented getting an HTTP status back at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// Result is the fetched page plus fetch telemetry. PageSize is the UTF-8
// byte length of the body, not the header-reported size.
type Result struct {
	URL        string
	Body       string
	LoadTimeMs int64
	PageSize   int
}

// Client fetches pages with a hard timeout, following redirects.
type Client struct {
	hc *http.Client
}

var userAgents = []string{
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

func getRandomUserAgent() string {
	return userAgents[rand.Intn(len(userAgents))]
}

// NewClient builds a fetch client. All clients share no state beyond the
// per-client connection pool, so concurrent analyses need no locking here.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: func(req *http.Request) (*url.URL, error) {
					if p, ok := req.Context().Value(proxyCtxKey).(*url.URL); ok && p != nil && p.Scheme != "socks5" {
						return p, nil
					}
					return nil, nil
				},
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					p, _ := ctx.Value(proxyCtxKey).(*url.URL)
					return proxy.DialContext(ctx, network, addr, 10*time.Second, p)
				},
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

var Default = NewClient(DefaultTimeout)

// Normalize trims the raw input and prefixes https:// when no scheme is given.
func Normalize(rawURL string) string {
	target := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}
	return target
}

// Fetch issues a single GET against the (normalized) URL with a browser-like
// identity and returns the body plus elapsed wall-clock time and byte size.
func (c *Client) Fetch(ctx context.Context, rawURL string) (Result, error) {
	target := Normalize(rawURL)

	var pURL *url.URL
	if proxy.Enabled() {
		pURL = proxy.Global.Next()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{}, &NetworkError{Err: err}
	}
	req.Header.Set("User-Agent", getRandomUserAgent())
	req = req.WithContext(context.WithValue(req.Context(), proxyCtxKey, pURL))

	if pURL != nil && proxy.Enabled() {
		select {
		case proxy.Semaphore <- struct{}{}:
		case <-req.Context().Done():
			return Result{}, &NetworkError{Err: req.Context().Err()}
		}
		defer func() { <-proxy.Semaphore }()
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return Result{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &FetchError{StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &NetworkError{Err: err}
	}

	return Result{
		URL:        target,
		Body:       string(body),
		LoadTimeMs: time.Since(start).Milliseconds(),
		PageSize:   len(body),
	}, nil
}
