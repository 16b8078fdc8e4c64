// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/carterperez-dev/inventory-api/internal/core"
)

const (
	IdentityKey contextKey = "identity"
)

// IdentityClaim is the identity payload carried inside a verified bearer
// token, attached to the request context by Authenticator.
type IdentityClaim struct {
	UserID    int64
	Email     string
	Username  string
	FirstName string
	LastName  string
	Role      string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*IdentityClaim, error)
}

// Authenticator gates protected routes. A request without a well-formed
// bearer header never reaches the handler, so no partial side effects can
// occur for unauthenticated requests.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("access token required"),
				)
				return
			}

			claim, err := verifier.Verify(r.Context(), token)
			if err != nil {
				core.JSONError(w, core.TokenInvalidError())
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, claim)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Decision is the outcome of a role check. Authorize performs no logging
// and writes to no output stream; callers decide whether the decision is
// worth recording.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize is pure set membership: no role hierarchy, no ordering.
func Authorize(role string, allowed map[string]struct{}) Decision {
	if role == "" {
		return Decision{Allowed: false, Reason: "no identity"}
	}

	if _, ok := allowed[role]; !ok {
		return Decision{Allowed: false, Reason: "role not in allowed set"}
	}

	return Decision{Allowed: true}
}

// RequireRole must be sequenced after Authenticator by the caller; it is
// not auto-chained so routes can opt into only one of the two.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claim := GetIdentity(r.Context())

			if claim == nil {
				core.JSONError(
					w,
					core.UnauthorizedError("authentication required"),
				)
				return
			}

			if decision := Authorize(claim.Role, roleSet); !decision.Allowed {
				core.JSONError(
					w,
					core.ForbiddenError("insufficient permissions"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetIdentity(ctx context.Context) *IdentityClaim {
	if claim, ok := ctx.Value(IdentityKey).(*IdentityClaim); ok {
		return claim
	}
	return nil
}

func GetUserID(ctx context.Context) int64 {
	if claim := GetIdentity(ctx); claim != nil {
		return claim.UserID
	}
	return 0
}

func GetUserRole(ctx context.Context) string {
	if claim := GetIdentity(ctx); claim != nil {
		return claim.Role
	}
	return ""
}
