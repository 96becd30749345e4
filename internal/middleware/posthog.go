package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lexfin/lexfin_backend/internal/utils"
)

// eventNameFromRoute turns a matched route into an analytics event name,
// e.g. "/api/v1/organizations/:organization_id/contracts" ->
// "api_v1_organizations_:organization_id_contracts". Unmatched routes (404s)
// yield "".
func eventNameFromRoute(c *gin.Context) string {
	return strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
}

// PosthogMiddleware captures one analytics event per successful authenticated
// request. Health probes are never tracked, and nothing is captured when the
// client is unconfigured.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if posthogClient == nil || !posthogClient.IsInitialized() {
			return
		}
		if c.Request.URL.Path == "/health" {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, authenticated := GetUserIDFromContext(c)
		if !authenticated {
			return
		}

		eventName := eventNameFromRoute(c)
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props["param_"+param.Key] = param.Value
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
