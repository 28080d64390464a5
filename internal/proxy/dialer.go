package proxy

import (
	"context"
	"net"
	"net/url"
	"time"

	netproxy "golang.org/x/net/proxy"
)

// DialContext dials the target either directly or through the given proxy.
// HTTP/HTTPS proxies are handled at the Transport level by the fetch client;
// this dialer exists for SOCKS5 pool entries, which net/http cannot route
// through Transport.Proxy alone on older configurations.
func DialContext(ctx context.Context, network, addr string, timeout time.Duration, pURL *url.URL) (net.Conn, error) {
	direct := &net.Dialer{Timeout: timeout}

	if pURL == nil || pURL.Scheme != "socks5" {
		return direct.DialContext(ctx, network, addr)
	}

	pdialer, err := netproxy.FromURL(pURL, direct)
	if err != nil {
		return nil, err
	}
	if cdialer, ok := pdialer.(netproxy.ContextDialer); ok {
		return cdialer.DialContext(ctx, network, addr)
	}
	return pdialer.Dial(network, addr)
}
