package middleware

import (
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExtractUserIDFromJWT moves the character id from the verified token that
// echo-jwt stored under "user" into the request context. Requests without a
// usable id pass through and are rejected by the handlers.
func ExtractUserIDFromJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok || token == nil {
				return next(c)
			}

			userID, err := idFromToken(token)
			if err != nil {
				return next(c)
			}

			ctx := ContextWithUserID(c.Request().Context(), userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// ParseToken verifies an HS256 token signed with key and returns its id claim.
func ParseToken(raw string, key []byte) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, errUnauthorized
	}

	token, err := jwtv5.Parse(raw, func(*jwtv5.Token) (any, error) {
		return key, nil
	}, jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, errUnauthorized
	}
	return idFromToken(token)
}

func idFromToken(token *jwtv5.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return uuid.Nil, errUnauthorized
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, errUnauthorized
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errUnauthorized
	}
	return userID, nil
}
