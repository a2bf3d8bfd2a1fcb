package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are consulted in order before RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolver extracts the client address from a request. Headers are only
// trustworthy behind a proxy that overwrites them; use NewResolver() with no
// headers when the server faces clients directly.
type Resolver struct {
	headers []string
}

func NewResolver(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

// IP returns the first valid address found in the trusted headers, then in
// RemoteAddr. For X-Forwarded-For the left-most valid entry wins. It returns
// "" when nothing parses.
func (res *Resolver) IP(r *http.Request) string {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// GetIP resolves the client address with DefaultHeaders.
func GetIP(r *http.Request) string {
	return NewResolver(DefaultHeaders...).IP(r)
}

// parseIP returns the canonical form of s, or "" if it is not an address.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
