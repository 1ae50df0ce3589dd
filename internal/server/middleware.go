package server

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muhammadolammi/futureframe/internal/identity"
	"github.com/muhammadolammi/futureframe/internal/profile"
)

const (
	ctxUserKey  = "user"
	ctxCacheKey = "profile_cache"

	headerRequestID = "X-Request-ID"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
	// Expose keeps Message on 5xx responses, which are otherwise replaced
	// by a generic message.
	Expose bool
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

func errorMiddleware(log zerolog.Logger) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Path()).Msg("panic recovered")
				err = Error(c, fiber.StatusInternalServerError, MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			log.Error().Err(err).Str("path", c.Path()).Int("status", status).Msg("request failed")
		}
		return Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, interface{}) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			return fiber.StatusInternalServerError, MessageInternalServerError, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		if status >= 500 && !appErr.Expose {
			return status, defaultMessageForStatus(status), nil
		}
		return status, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		return status, msg, nil
	}

	return fiber.StatusInternalServerError, MessageInternalServerError, nil
}

func accessLogMiddleware(log zerolog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(headerRequestID, rid)

		err := c.Next()

		log.Info().
			Str("rid", rid).
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("ua", c.Get(fiber.HeaderUserAgent)).
			Msg("HTTP access")

		return err
	}
}

// Authenticator verifies the identity provider's ID token.
type Authenticator interface {
	Verify(token string) (identity.User, error)
}

func authMiddleware(auth Authenticator) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Please log in to continue", nil, nil)
		}

		user, err := auth.Verify(token)
		if err != nil {
			if errors.Is(err, identity.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(ctxUserKey, user)
		return c.Next()
	}
}

// requestCacheMiddleware gives every request its own profile read cache.
func requestCacheMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(ctxCacheKey, profile.NewRequestCache())
		return c.Next()
	}
}

func currentUser(c fiber.Ctx) (identity.User, bool) {
	u, ok := c.Locals(ctxUserKey).(identity.User)
	return u, ok && u.Subject != ""
}

func requestCache(c fiber.Ctx) *profile.RequestCache {
	cache, _ := c.Locals(ctxCacheKey).(*profile.RequestCache)
	return cache
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
