package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"brewshop/internal/service/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ctxKey string

const sessionCtxKey ctxKey = "session_id"

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// sessionMiddleware resolves the bearer token to a session ID. When required
// is false a missing or unknown token simply leaves the request anonymous.
func sessionMiddleware(sessions SessionService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if required {
				writeError(c, http.StatusUnauthorized, "missing bearer token")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		id, err := sessions.Lookup(c.Request.Context(), token)
		if err != nil {
			if !required && errors.Is(err, session.ErrInvalidToken) {
				c.Next()
				return
			}
			status := http.StatusUnauthorized
			msg := "invalid or expired token"
			if !errors.Is(err, session.ErrInvalidToken) {
				status = http.StatusInternalServerError
				msg = "internal error"
			}
			writeError(c, status, msg)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), sessionCtxKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionID(c *gin.Context) (string, bool) {
	id, ok := c.Request.Context().Value(sessionCtxKey).(string)
	return id, ok && id != ""
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
