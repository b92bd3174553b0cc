// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lazyseq/lazy/internal/obslog"
)

const requestIDKey = "request_id"

// requestID assigns a google/uuid request ID to every request and threads
// it into the response header and logs — the same pattern kbukum-gokit's
// middleware.RequestID uses.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogging logs one zerolog event per request at info level,
// grounded on kbukum-gokit's middleware.Logging.
func requestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		obslog.Logger().Info().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}

// bearerClaims is the minimal claim set lazyserver issues and verifies.
type bearerClaims struct {
	gojwt.RegisteredClaims
}

// requireBearerToken validates an HS256 Bearer token against secret,
// aborting with 401 on failure — the same Bearer-extraction shape as
// kbukum-gokit's middleware.Auth, specialized to a single JWT secret
// instead of a pluggable auth.TokenValidator.
func requireBearerToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims := &bearerClaims{}
		_, err := gojwt.ParseWithClaims(parts[1], claims, func(t *gojwt.Token) (any, error) {
			return []byte(secret), nil
		}, gojwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Next()
	}
}

func zerologLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
