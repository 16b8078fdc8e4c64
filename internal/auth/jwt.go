// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/inventory-api/internal/config"
	"github.com/carterperez-dev/inventory-api/internal/core"
	"github.com/carterperez-dev/inventory-api/internal/middleware"
)

// TokenManager issues and verifies HS256-signed bearer tokens. Tokens are
// stateless: a verified, unexpired token is always accepted, and logout is
// client-side disposal only.
type TokenManager struct {
	signingKey jwk.Key
	config     config.JWTConfig
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, core.ConfigError("jwt signing secret is not configured")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &TokenManager{
		signingKey: key,
		config:     cfg,
	}, nil
}

// Issue serializes the identity claim under a "user" key, stamps the
// standard timing claims, and signs the result. The password hash never
// enters the token.
func (m *TokenManager) Issue(claim middleware.IdentityClaim) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		IssuedAt(now).
		Expiration(now.Add(m.config.AccessTokenExpire)).
		Claim("user", map[string]any{
			"id":        claim.UserID,
			"email":     claim.Email,
			"username":  claim.Username,
			"firstName": claim.FirstName,
			"lastName":  claim.LastName,
			"role":      claim.Role,
		}).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.signingKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// Verify checks signature, expiry, issuer and audience. Every failure mode
// collapses into one invalid-token error so callers cannot distinguish a
// tampered token from an expired one.
func (m *TokenManager) Verify(
	ctx context.Context,
	tokenString string,
) (*middleware.IdentityClaim, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.signingKey),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var userClaim map[string]any
	if err := token.Get("user", &userClaim); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing user claim: %w",
			core.ErrTokenInvalid,
		)
	}

	claim, err := claimFromMap(userClaim)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	return claim, nil
}

func (m *TokenManager) TTL() time.Duration {
	return m.config.AccessTokenExpire
}

func claimFromMap(raw map[string]any) (*middleware.IdentityClaim, error) {
	id, ok := raw["id"].(float64)
	if !ok || id <= 0 {
		return nil, fmt.Errorf("malformed id claim")
	}

	role, ok := raw["role"].(string)
	if !ok || role == "" {
		return nil, fmt.Errorf("malformed role claim")
	}

	claim := &middleware.IdentityClaim{
		UserID: int64(id),
		Role:   role,
	}

	// The remaining fields are informational; a token minted before a
	// profile edit may carry stale values, which is fine for display.
	claim.Email, _ = raw["email"].(string)
	claim.Username, _ = raw["username"].(string)
	claim.FirstName, _ = raw["firstName"].(string)
	claim.LastName, _ = raw["lastName"].(string)

	return claim, nil
}
