package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownIP is the rate-limit key used when no client address can be
// derived at all.
const UnknownIP = "unknown"

// GetClientIP extracts the client IP for rate limiting. Forwarding
// headers are spoofable, so they are only honored when the deployment
// declares a trusted proxy in front of the service
// (TRUST_PROXY_HEADERS); otherwise only the socket address counts.
func GetClientIP(c *gin.Context, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		// X-Real-IP is set by single reverse proxies
		if ip := c.GetHeader("X-Real-IP"); ip != "" {
			return ip
		}

		// X-Forwarded-For can be a comma-separated list:
		// client, proxy1, proxy2, ... — the first entry is the client.
		if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
			ips := strings.Split(forwardedFor, ",")
			if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
				return clientIP
			}
		}
	}

	// Socket address only. gin's ClientIP() consults forwarding headers
	// on its own, which would bypass the trust switch above.
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil && host != "" {
		return host
	}
	if c.Request.RemoteAddr != "" {
		return c.Request.RemoteAddr
	}
	return UnknownIP
}
