package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type userIDKey struct{}

// TokenFromTokenHeader reads a token sent as "Authorization: Token <token>".
func TokenFromTokenHeader(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 6 && strings.EqualFold(header[:6], "TOKEN ") {
		return strings.TrimSpace(header[6:])
	}
	return ""
}

// Verifier looks for a Bearer or Token authorization header and verifies it.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromHeader, TokenFromTokenHeader)
}

// AuthRequired rejects requests without a valid access token and stores the
// token's user id in the request context.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				response.HandleError(w, auth.ErrMissingToken)
				return
			}
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrMissingToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if tokenType != jwt.TokenTypeAccess || !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}

// UserID returns the authenticated user set by AuthRequired.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok
}
