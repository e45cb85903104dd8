package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the booking front-end to call the JSON API. A "*" entry
// allows any origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        24 * time.Hour,
	}

	var allowed []string
	for _, o := range origins {
		o = strings.TrimSpace(o)
		switch {
		case o == "*":
			cfg.AllowAllOrigins = true
		case o != "":
			allowed = append(allowed, o)
		}
	}
	if !cfg.AllowAllOrigins {
		if len(allowed) == 0 {
			allowed = []string{"http://localhost:3000"}
		}
		cfg.AllowOrigins = allowed
	}
	return cors.New(cfg)
}
