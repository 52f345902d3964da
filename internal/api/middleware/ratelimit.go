package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/ratelimit"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils/response"
)

// RateLimit allows limit requests per window for each client address under
// prefix. When the store fails the request is let through.
func RateLimit(limiter *ratelimit.Limiter, ips *ClientIPResolver, prefix string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := LoggerFromContext(r.Context())
			ip := ips.ClientIP(r)

			decision, err := limiter.Check(r.Context(), prefix+":"+ip, limit, window)
			if err != nil {
				logger.Error("Rate limit check failed, allowing request",
					slog.String("prefix", prefix),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if !decision.Allowed {
				metrics.RateLimited(prefix)
				logger.Warn("Rate limit exceeded",
					slog.String("prefix", prefix),
					slog.String("ip", ip),
					slog.Int("retryAfter", decision.RetryAfter))

				w.Header().Set("Retry-After", strconv.Itoa(decision.RetryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many requests. Please try again later.").
					WithDetail("retry after "+strconv.Itoa(decision.RetryAfter)+"s"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIPResolver decides which address a request is counted against.
// Forwarding headers are only believed when the connection comes from one of
// the trusted proxies.
type ClientIPResolver struct {
	trusted []netip.Prefix
}

// NewClientIPResolver accepts single addresses or CIDR ranges. With no
// proxies the connection address is always used.
func NewClientIPResolver(trustedProxies []string) (*ClientIPResolver, error) {
	res := &ClientIPResolver{trusted: make([]netip.Prefix, 0, len(trustedProxies))}

	for _, raw := range trustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
			}
			res.trusted = append(res.trusted, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", raw, err)
		}
		addr = addr.Unmap()
		res.trusted = append(res.trusted, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return res, nil
}

func (c *ClientIPResolver) isTrusted(addr netip.Addr) bool {
	if c == nil {
		return false
	}

	addr = addr.Unmap()
	for _, p := range c.trusted {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}

// ClientIP returns the connection address unless it is a trusted proxy. Behind
// a trusted proxy X-Forwarded-For is walked from the right and the first hop
// that is not itself a trusted proxy wins; X-Real-IP is the fallback.
func (c *ClientIPResolver) ClientIP(r *http.Request) string {
	host := remoteHost(r.RemoteAddr)

	peer, err := netip.ParseAddr(host)
	if err != nil || !c.isTrusted(peer) {
		return host
	}

	if forwarded := r.Header.Values("X-Forwarded-For"); len(forwarded) > 0 {
		hops := strings.Split(strings.Join(forwarded, ","), ",")

		var leftmost string
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			addr, err := netip.ParseAddr(hop)
			if err != nil {
				// the proxy chain is broken past this point
				break
			}
			leftmost = addr.Unmap().String()
			if !c.isTrusted(addr) {
				return leftmost
			}
		}

		if leftmost != "" {
			return leftmost
		}
	}

	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}

	return host
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}
