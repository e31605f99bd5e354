// Package fetcher fetches article pages over HTTP and extracts their
// readable text for summarization.
package fetcher

import (
	"fmt"
	"net"
	"net/url"

	"texttools/internal/usecase/fetch"
)

// validateURL checks a URL before any HTTP request is made. It rejects
// non-http(s) schemes and, when denyPrivateIPs is set, any hostname that
// resolves to a private, loopback or link-local address. The latter is
// the SSRF guard: summarize-by-URL accepts arbitrary user input, and
// without it a caller could point the service at internal endpoints.
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", fetch.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", fetch.ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", fetch.ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", fetch.ErrInvalidURL, hostname, err)
	}

	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to %s", fetch.ErrPrivateIP, hostname, ip.String())
		}
	}

	return nil
}

// isPrivateIP reports whether ip falls in a loopback, private (RFC 1918
// / RFC 4193) or link-local range. Both IPv4 and IPv6 are covered.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
