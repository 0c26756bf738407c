package middleware

import (
	"net/http"
	"strings"
	"time"

	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/pkg/apperror"
	"secure-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context keys set once a request clears authentication.
const (
	CtxMerchantID = "merchant_id"
)

// RequireAuth authenticates a request using whichever scheme the
// Authorization header carries (§4.J): HTTP Basic with a pk_/sk_ API
// key pair, or a Bearer JWT dashboard session token. Either path
// resolves a merchant_id onto the Gin context; nothing downstream
// needs to know which scheme was used.
func RequireAuth(authSvc ports.AuthService, tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		switch {
		case strings.HasPrefix(header, "Basic "):
			keyID, secret, ok := c.Request.BasicAuth()
			if !ok {
				response.Error(c, apperror.ErrAPIKeyInvalid())
				c.Abort()
				return
			}
			merchant, err := authSvc.AuthenticateAPIKey(c.Request.Context(), keyID, secret)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			c.Set(CtxMerchantID, merchant.ID)

		case strings.HasPrefix(header, "Bearer "):
			claims, err := tokenSvc.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Warn().Err(err).Msg("jwt validation failed")
				response.Error(c, apperror.ErrTokenInvalid())
				c.Abort()
				return
			}
			c.Set(CtxMerchantID, claims.MerchantID)

		default:
			response.Error(c, apperror.ErrAuthRequired())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger logs every HTTP request at a level derived from its
// response status.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery is a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorEnvelope{Error: response.ErrorBody{
					Code:    "INTERNAL_ERROR",
					Message: "internal server error",
				}})
			}
		}()
		c.Next()
	}
}
