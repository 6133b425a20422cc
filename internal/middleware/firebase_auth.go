package middleware

import (
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/blogify-app/backend/pkg/apperrors"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUID   = "firebaseUID"
	ContextKeyEmail = "firebaseEmail"
)

// FirebaseAuthMiddleware creates an Echo middleware to verify Firebase ID tokens
func FirebaseAuthMiddleware(authClient *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return apperrors.Unauthorized("Authorization header is missing")
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
				return apperrors.Unauthorized("Authorization header must be in Bearer format")
			}

			idToken := tokenParts[1]

			// Verify the ID token
			token, err := authClient.VerifyIDToken(c.Request().Context(), idToken)
			if err != nil {
				return apperrors.Unauthorized("Invalid or expired ID token")
			}

			// Store the verified identity in the context for later use
			c.Set(ContextKeyUID, token.UID)
			if email, ok := token.Claims["email"].(string); ok {
				c.Set(ContextKeyEmail, email)
			}

			return next(c)
		}
	}
}

// EmailMatchMiddleware rejects requests whose client-claimed email does
// not match the email in the verified token. The claim comes from the
// X-User-Email header, falling back to the email query parameter.
func EmailMatchMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			verified, _ := c.Get(ContextKeyEmail).(string)
			if verified == "" {
				return apperrors.Forbidden("token carries no email claim")
			}

			claimed := c.Request().Header.Get("X-User-Email")
			if claimed == "" {
				claimed = c.QueryParam("email")
			}
			if claimed == "" {
				return apperrors.Forbidden("client email claim is missing")
			}
			if !strings.EqualFold(claimed, verified) {
				return apperrors.Forbidden("email does not match the authenticated user")
			}

			return next(c)
		}
	}
}
