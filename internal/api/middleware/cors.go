package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS middleware from a comma-separated list of
// allowed origins. "*" allows every origin.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.DefaultConfig()

	if allowedDomains == "*" {
		conf.AllowAllOrigins = true
	} else {
		var origins []string
		for _, origin := range strings.Split(allowedDomains, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		conf.AllowOrigins = origins
	}

	return cors.New(conf)
}
