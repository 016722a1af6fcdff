package auth

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is an unexported type used for context keys in this package.
// Using a package-private type means only this package can read or write
// identity values in the context — a plain string key could be shadowed by
// any package that happens to know it.
type contextKey string

const identityKey contextKey = "identity"

// RequireAuth enforces authentication on protected routes.
//
// The credential travels as `Authorization: Bearer <token>`. The gate
// distinguishes two failures:
//
//   - No credential at all → 401 Unauthorized ("unauthenticated": the
//     caller never presented anything to verify)
//   - A credential that fails verification — malformed, tampered, or
//     expired → 403 Forbidden (something was presented, and it's not
//     trustworthy)
//
// On success the verified Identity is stored in the request context for
// handlers to read via IdentityFromContext. The gate checks identity only;
// it does no per-record authorization. Every downstream operation scopes
// itself to the verified user ID, so an authenticated caller can never act
// on another user's record.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				http.Error(w, `{"error":"unauthenticated","message":"authentication token required"}`, http.StatusUnauthorized)
				return
			}

			identity, err := tokens.Verify(tokenStr)
			if err != nil {
				http.Error(w, `{"error":"forbidden","message":"invalid or expired token"}`, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext retrieves the verified caller identity set by
// RequireAuth. Returns (nil, false) on an unauthenticated request — which
// should never happen on a RequireAuth-protected route, but handlers check
// anyway rather than panic on a nil dereference.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok && id != nil
}

// bearerToken extracts the token from the Authorization header.
// Returns ok=false when the header is absent or not a Bearer credential —
// the "nothing presented" case, as opposed to a present-but-bad token.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
