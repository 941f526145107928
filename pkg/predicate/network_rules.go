package predicate

import (
	"context"
	"net"
	"net/url"
	"time"

	"golang.org/x/net/idna"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/validit/pkg/rule"
)

// DefaultDNSTimeout bounds a single url_exists lookup.
const DefaultDNSTimeout = 3 * time.Second

// Resolver looks up the addresses of a host. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

var _ Resolver = (*net.Resolver)(nil)

// hostChecker resolves URL hosts, sharing in-flight lookups for the same host.
type hostChecker struct {
	resolver Resolver
	timeout  time.Duration
	group    singleflight.Group
}

func newHostChecker(resolver Resolver, timeout time.Duration) *hostChecker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if timeout <= 0 {
		timeout = DefaultDNSTimeout
	}
	return &hostChecker{resolver: resolver, timeout: timeout}
}

// exists reports whether the host part of rawURL resolves. Any lookup error,
// including a timeout, counts as "does not exist".
func (h *hostChecker) exists(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	if ip := net.ParseIP(host); ip != nil {
		return true
	}

	host, err = idna.Lookup.ToASCII(host)
	if err != nil {
		return false
	}

	ch := h.group.DoChan(host, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
		defer cancel()
		addrs, err := h.resolver.LookupHost(lookupCtx, host)
		return len(addrs) > 0, err
	})

	select {
	case <-ctx.Done():
		return false
	case res := <-ch:
		return res.Err == nil && res.Val.(bool)
	}
}

func (h *hostChecker) factory(_ rule.Param) (Check, error) {
	return func(ctx context.Context, _ string, value any) Outcome {
		if h.exists(ctx, asString(value)) {
			return Pass()
		}
		return Fail("url_exists", "")
	}, nil
}

// URLExists returns the url_exists factory using resolver and a per-lookup timeout.
// A nil resolver means net.DefaultResolver.
func URLExists(resolver Resolver, timeout time.Duration) Factory {
	return newHostChecker(resolver, timeout).factory
}
