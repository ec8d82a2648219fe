package middleware

import (
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/noemie-shop-go/logger"
	"github.com/Madhav-Gupta-28/noemie-shop-go/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "noemie_session"
	sessionKey    = "sessionID"
)

type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

// Session attaches an anonymous visitor session to every request. A missing,
// tampered or expired cookie starts a fresh session.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				claims, err := utils.ValidateSessionToken(cookie.Value, cfg.Secret)
				if err == nil {
					c.Set(sessionKey, claims.SessionID)
					return next(c)
				}
				logger.Debug().Err(err).Msg("discarding invalid session cookie")
			}

			sessionID := uuid.NewString()
			token, err := utils.GenerateSessionToken(sessionID, cfg.Secret, cfg.TTL)
			if err != nil {
				return err
			}

			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(cfg.TTL),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(sessionKey, sessionID)
			return next(c)
		}
	}
}

// SessionID returns the session attached by Session, or "".
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionKey).(string)
	return id
}
