package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/erp/shipping/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SwaggerProtection guards the API documentation routes.
//
// A disabled endpoint answers 404. AllowedIPs (plain IPs or CIDRs) is checked
// before authentication, and RequireAuth runs auth, which must not skip the
// /swagger prefix.
func SwaggerProtection(cfg config.SwaggerConfig, auth gin.HandlerFunc) gin.HandlerFunc {
	allowedIPs, allowedNets := parseAllowList(cfg.AllowedIPs)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			abortWithError(c, http.StatusNotFound, dto.ErrCodeNotFound, "API documentation is not available")
			return
		}

		if len(cfg.AllowedIPs) > 0 && !isIPAllowed(getClientIP(c), allowedIPs, allowedNets) {
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, "Access to API documentation is restricted")
			return
		}

		if cfg.RequireAuth && auth != nil {
			auth(c)
			if c.IsAborted() {
				return
			}
		}

		c.Next()
	}
}

// parseAllowList splits entries into single IPs and CIDR networks, dropping malformed ones
func parseAllowList(entries []string) ([]net.IP, []*net.IPNet) {
	var ips []net.IP
	var nets []*net.IPNet
	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			if _, network, err := net.ParseCIDR(entry); err == nil {
				nets = append(nets, network)
			}
			continue
		}
		if ip := net.ParseIP(entry); ip != nil {
			ips = append(ips, ip)
		}
	}
	return ips, nets
}

// getClientIP extracts the client IP, honouring gin's trusted proxy settings
func getClientIP(c *gin.Context) net.IP {
	if ip := net.ParseIP(c.ClientIP()); ip != nil {
		return ip
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have port
		host = c.Request.RemoteAddr
	}
	return net.ParseIP(host)
}

// isIPAllowed checks if the given IP is in the allowed list
func isIPAllowed(ip net.IP, allowedIPs []net.IP, allowedNets []*net.IPNet) bool {
	if ip == nil {
		return false
	}
	for _, allowedIP := range allowedIPs {
		if allowedIP.Equal(ip) {
			return true
		}
	}
	for _, network := range allowedNets {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
