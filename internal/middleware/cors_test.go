package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCorsParams = CorsParams{
	AllowedOrigins: []string{"https://gymrank.2beens.online", " "},
	TrustedAgents:  []string{"GymRank/", "curl/"},
}

func TestCorsMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		origin         string
		userAgent      string
		path           string
		expectedOrigin string
		expectedStatus int
	}{
		{
			name:           "AllowedOrigin",
			origin:         "https://gymrank.2beens.online",
			path:           "/achievements",
			expectedOrigin: "https://gymrank.2beens.online",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NotAllowedOrigin",
			origin:         "https://www.notallowed.com",
			path:           "/achievements",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "AllowedUserAgent",
			userAgent:      "GymRank/1.4 (iOS)",
			path:           "/workouts",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "NotAllowedUserAgent",
			userAgent:      "UnknownAgent/1.0",
			path:           "/rank",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "UnknownOriginWithTrustedAgent",
			origin:         "https://www.notallowed.com",
			userAgent:      "curl/8.5.0",
			path:           "/rank",
			expectedOrigin: "https://www.notallowed.com",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "McpFromBrowser",
			origin:         "https://inspector.example",
			path:           "/mcp",
			expectedOrigin: "https://inspector.example",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "McpWithoutOrigin",
			userAgent:      "unknown-agent",
			path:           "/mcp",
			expectedOrigin: "*",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req, err := http.NewRequest("GET", tc.path, nil)
			require.NoError(t, err)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("User-Agent", tc.userAgent)

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			Cors(testCorsParams)(nextHandler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tc.expectedStatus == http.StatusOK {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), AuthTokenHeader)
			}
		})
	}
}
