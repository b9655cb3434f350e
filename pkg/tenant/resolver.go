package tenant

import (
	"net"
	"strings"
)

// Resolver derives a candidate subdomain from an HTTP Host value. It is
// pure: no I/O, no failure mode beyond "no subdomain here". The candidate
// it returns is only a string; a directory lookup upgrades it to a tenant.
type Resolver struct {
	loopback map[string]struct{}
}

// NewResolver creates a resolver. Hosts in loopbackHosts (for example
// "localhost") never carry a subdomain, so local development works
// without one.
func NewResolver(loopbackHosts []string) *Resolver {
	lb := make(map[string]struct{}, len(loopbackHosts))
	for _, h := range loopbackHosts {
		lb[Normalize(h)] = struct{}{}
	}
	return &Resolver{loopback: lb}
}

// ExtractSubdomain returns the candidate subdomain for hostHeader. Any
// port suffix is stripped first. Loopback aliases and hosts with fewer
// than three labels have no subdomain.
func (r *Resolver) ExtractSubdomain(hostHeader string) (string, bool) {
	host := hostHeader
	if h, _, err := net.SplitHostPort(hostHeader); err == nil {
		host = h
	}
	host = Normalize(host)
	if host == "" {
		return "", false
	}
	if _, ok := r.loopback[host]; ok {
		return "", false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return "", false
	}
	return labels[0], true
}

// Normalize canonicalizes a subdomain for lookup and comparison.
// Callers never compare un-normalized strings.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
