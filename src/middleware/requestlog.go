package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/logger"
)

// RequestLogger logs one structured line per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		event := log.Info()
		if ctx.Writer.Status() >= 500 {
			event = log.Error()
		}
		event.
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
