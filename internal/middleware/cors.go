package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	corsAllowHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, " +
		AuthTokenHeader + ", MCP-Protocol-Version, MCP-Session-Id"
	corsAllowMethods = "POST, GET, OPTIONS, DELETE"
	mcpPathPrefix    = "/mcp"
)

// CorsParams lists who may call the API. Browsers are matched on the Origin
// header, the mobile app and scripts on their User-Agent prefix.
type CorsParams struct {
	AllowedOrigins []string
	TrustedAgents  []string
}

type corsPolicy struct {
	origins map[string]bool
	agents  []string
}

// allowOrigin returns the Access-Control-Allow-Origin value for r, or false
// when the request is rejected. MCP clients connect without an Origin.
func (p corsPolicy) allowOrigin(r *http.Request) (string, bool) {
	origin := r.Header.Get("Origin")
	if p.origins[origin] {
		return origin, true
	}
	if strings.HasPrefix(r.URL.Path, mcpPathPrefix) {
		if origin == "" {
			return "*", true
		}
		return origin, true
	}

	userAgent := r.Header.Get("User-Agent")
	for _, agent := range p.agents {
		if strings.HasPrefix(userAgent, agent) {
			return origin, true
		}
	}
	return "", false
}

func Cors(params CorsParams) func(next http.Handler) http.Handler {
	policy := corsPolicy{
		origins: make(map[string]bool, len(params.AllowedOrigins)),
		agents:  params.TrustedAgents,
	}
	for _, origin := range params.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			policy.origins[origin] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowOrigin, ok := policy.allowOrigin(r)
			if !ok {
				log.Warnf("cors: rejected %s [%s], origin [%s], agent [%s]",
					r.Method, r.URL.Path, r.Header.Get("Origin"), r.Header.Get("User-Agent"))
				w.WriteHeader(http.StatusForbidden)
				return
			}

			if allowOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)

			next.ServeHTTP(w, r)
		})
	}
}
