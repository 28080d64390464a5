package proxy

import (
	"fmt"
	"net/url"
	"sync/atomic"
)

// Manager hands out proxies round-robin. Some Korean hosting providers
// (Cafe24 in particular) rate-limit datacenter IPs aggressively, so page
// fetches can optionally rotate through a proxy pool.
type Manager struct {
	proxies []*url.URL
	counter uint64
}

var Global *Manager
var Semaphore chan struct{}

// Init parses the proxy list and sizes the fetch concurrency semaphore.
// A limit <= 0 defaults to the pool size.
func Init(proxyList []string, limit int) error {
	var parsed []*url.URL

	for _, p := range proxyList {
		if p == "" {
			continue
		}
		u, err := url.Parse(p)
		if err != nil {
			return fmt.Errorf("invalid proxy URL '%s': %w", p, err)
		}
		parsed = append(parsed, u)
	}

	if limit <= 0 {
		limit = len(parsed)
		if limit == 0 {
			limit = 10 // Failsafe
		}
	}

	Semaphore = make(chan struct{}, limit)
	Global = &Manager{proxies: parsed}
	return nil
}

func (m *Manager) Next() *url.URL {
	if m == nil || len(m.proxies) == 0 {
		return nil
	}
	n := atomic.AddUint64(&m.counter, 1)
	return m.proxies[(n-1)%uint64(len(m.proxies))]
}

func Enabled() bool {
	return Global != nil && len(Global.proxies) > 0
}
